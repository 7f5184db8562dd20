package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error.
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// GetCode returns the code of the first *Error in err's chain. Plain errors
// report CodeInternal and nil reports CodeOK.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

func GetMeta(err error) map[string]string {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage returns the caller-facing message, or err.Error() for plain errors.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}
