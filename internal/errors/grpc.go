package errors

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain is stamped on every ErrorInfo detail this service emits.
const ErrorDomain = "stats.astoria"

// ToGRPCError converts err into a gRPC status error. Metadata rides along as
// an errdetails.ErrorInfo whose Reason is the error code.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) > 0 {
		info := &errdetails.ErrorInfo{
			Reason:   customErr.Code.String(),
			Domain:   ErrorDomain,
			Metadata: customErr.Meta,
		}
		if withDetails, detailErr := st.WithDetails(info); detailErr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

// FromGRPCError rebuilds an *Error from a status error received by a client.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			customErr.Meta = copyMeta(info.GetMetadata())
			break
		}
	}

	return customErr
}
