package pkgerror

import (
	"errors"
	"net/http"
)

type Code int

const (
	CodeInvalidInput Code = iota + 1
	CodeNotFound
	CodeUnavailable
	CodeInternal
)

// Business is an error the caller can act on; it maps to a 4xx/5xx status
// instead of a blanket 500.
type Business struct {
	msg  string
	code Code
}

func NewBusiness(msg string, code Code) *Business {
	return &Business{msg: msg, code: code}
}

func (b *Business) Error() string {
	return b.msg
}

func (b *Business) Code() Code {
	return b.code
}

// HTTPStatus maps an error to the status code it should be served with.
func HTTPStatus(err error) int {
	var business *Business
	if !errors.As(err, &business) {
		return http.StatusInternalServerError
	}
	switch business.Code() {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
