package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "astoria.stats.v1.StatsService"

const (
	ResolveModifiersFullMethodName   = "/" + ServiceName + "/ResolveModifiers"
	ComputeTotalsFullMethodName      = "/" + ServiceName + "/ComputeTotals"
	GetCharacterTotalsFullMethodName = "/" + ServiceName + "/GetCharacterTotals"
	GetInventoryFullMethodName       = "/" + ServiceName + "/GetInventory"
	SaveInventoryFullMethodName      = "/" + ServiceName + "/SaveInventory"
)

// StatsServiceServer is implemented by Handler. Requests and responses are
// free-form structs so items keep whatever modifier shape they arrived with.
type StatsServiceServer interface {
	ResolveModifiers(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ComputeTotals(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacterTotals(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetInventory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveInventory(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterStatsServiceServer attaches srv to a gRPC server.
func RegisterStatsServiceServer(s grpc.ServiceRegistrar, srv StatsServiceServer) {
	s.RegisterService(&StatsServiceDesc, srv)
}

type unaryCall func(StatsServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StatsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StatsServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// StatsServiceDesc describes the service for grpc.Server registration.
var StatsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StatsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ResolveModifiers",
			Handler:    unaryHandler(ResolveModifiersFullMethodName, StatsServiceServer.ResolveModifiers),
		},
		{
			MethodName: "ComputeTotals",
			Handler:    unaryHandler(ComputeTotalsFullMethodName, StatsServiceServer.ComputeTotals),
		},
		{
			MethodName: "GetCharacterTotals",
			Handler:    unaryHandler(GetCharacterTotalsFullMethodName, StatsServiceServer.GetCharacterTotals),
		},
		{
			MethodName: "GetInventory",
			Handler:    unaryHandler(GetInventoryFullMethodName, StatsServiceServer.GetInventory),
		},
		{
			MethodName: "SaveInventory",
			Handler:    unaryHandler(SaveInventoryFullMethodName, StatsServiceServer.SaveInventory),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "astoria/stats/v1",
}

// StatsServiceClient is the client side of StatsServiceServer.
type StatsServiceClient interface {
	ResolveModifiers(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ComputeTotals(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetCharacterTotals(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetInventory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SaveInventory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type statsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStatsServiceClient(cc grpc.ClientConnInterface) StatsServiceClient {
	return &statsServiceClient{cc: cc}
}

func (c *statsServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statsServiceClient) ResolveModifiers(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ResolveModifiersFullMethodName, in, opts)
}

func (c *statsServiceClient) ComputeTotals(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ComputeTotalsFullMethodName, in, opts)
}

func (c *statsServiceClient) GetCharacterTotals(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetCharacterTotalsFullMethodName, in, opts)
}

func (c *statsServiceClient) GetInventory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetInventoryFullMethodName, in, opts)
}

func (c *statsServiceClient) SaveInventory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SaveInventoryFullMethodName, in, opts)
}
