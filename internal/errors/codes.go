package errors

import "google.golang.org/grpc/codes"

// Code classifies an error independently of the transport it leaves through.
type Code string

const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

func (c Code) String() string {
	return string(c)
}

var grpcCodes = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
}

// GRPCCode returns the gRPC status code for c. Unknown codes map to Unknown.
func (c Code) GRPCCode() codes.Code {
	if gc, ok := grpcCodes[c]; ok {
		return gc
	}
	return codes.Unknown
}

// codeFromGRPC is the inverse of GRPCCode. Codes without a counterpart
// become CodeInternal.
func codeFromGRPC(gc codes.Code) Code {
	for c, mapped := range grpcCodes {
		if mapped == gc {
			return c
		}
	}
	return CodeInternal
}
