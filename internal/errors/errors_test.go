package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Saichiiro/astoria-sub001/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestErrorString() {
	s.Equal("NOT_FOUND: inventory not found", errors.NotFound("inventory not found").Error())

	cause := fmt.Errorf("redis: connection refused")
	wrapped := errors.Wrap(cause, "failed to load inventory")
	s.Equal("INTERNAL: failed to load inventory: redis: connection refused", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("inventory not found").WithMeta("character_id", "char-1")

	s.Equal("char-1", err.Meta["character_id"])
	s.Equal("char-1", errors.GetMeta(err)["character_id"])
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	base := errors.NotFound("record not found").WithMeta("character_id", "char-1")
	wrapped := errors.Wrap(base, "inventory not found")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("inventory not found", wrapped.Message)
	s.Equal("char-1", wrapped.Meta["character_id"])
	s.Equal(base, wrapped.Unwrap())

	wrapped.WithMeta("extra", "x")
	s.NotContains(base.Meta, "extra", "wrapping copies metadata")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("dial tcp: timeout"), errors.CodeUnavailable, "store unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.True(errors.IsUnavailable(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.NotFoundf("inventory for %s not found", "char-1")
	s.Equal(errors.CodeNotFound, err.Code)
	s.Equal("inventory for char-1 not found", err.Message)

	err = errors.InvalidArgumentf("item %d is not an object", 3)
	s.Equal("item 3 is not an object", err.Message)
}

func (s *ErrorsTestSuite) TestIsComparesCodes() {
	s.True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestHelpers() {
	notFound := errors.NotFound("x")
	wrapped := errors.Wrap(notFound, "y")
	plain := fmt.Errorf("plain")

	s.True(errors.IsNotFound(wrapped))
	s.False(errors.IsInvalidArgument(wrapped))
	s.True(errors.IsInternal(plain))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal("y", errors.GetMessage(wrapped))
	s.Equal("plain", errors.GetMessage(plain))
	s.Nil(errors.GetMeta(plain))
}

func (s *ErrorsTestSuite) TestToGRPCErrorCarriesErrorInfo() {
	err := errors.NotFound("inventory not found").WithMeta("character_id", "char-1")

	st, ok := status.FromError(errors.ToGRPCError(err))
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("inventory not found", st.Message())

	s.Require().Len(st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	s.Require().True(ok)
	s.Equal("NOT_FOUND", info.GetReason())
	s.Equal(errors.ErrorDomain, info.GetDomain())
	s.Equal("char-1", info.GetMetadata()["character_id"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorPlainAndStatusErrors() {
	st, _ := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Equal(codes.Internal, st.Code())

	original := status.Error(codes.Aborted, "kept")
	s.Equal(original, errors.ToGRPCError(original))

	s.NoError(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.InvalidArgument("bad item").WithMeta("field.items", "is required")

	back := errors.FromGRPCError(errors.ToGRPCError(err))

	s.Equal(errors.CodeInvalidArgument, errors.GetCode(back))
	s.Equal("bad item", errors.GetMessage(back))
	s.Equal("is required", errors.GetMeta(back)["field.items"])
}

func (s *ErrorsTestSuite) TestFromGRPCErrorUnknownCode() {
	back := errors.FromGRPCError(status.Error(codes.DataLoss, "lost"))
	s.Equal(errors.CodeInternal, errors.GetCode(back))

	plain := fmt.Errorf("not a status")
	s.Equal(plain, errors.FromGRPCError(plain))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeOK, codes.OK},
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
