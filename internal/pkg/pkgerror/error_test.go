package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid input", NewBusiness("bad", CodeInvalidInput), http.StatusBadRequest},
		{"not found", NewBusiness("gone", CodeNotFound), http.StatusNotFound},
		{"unavailable", NewBusiness("down", CodeUnavailable), http.StatusServiceUnavailable},
		{"internal business", NewBusiness("oops", CodeInternal), http.StatusInternalServerError},
		{"plain error", errors.New("oops"), http.StatusInternalServerError},
		{"wrapped business", fmt.Errorf("handler: %w", NewBusiness("bad", CodeInvalidInput)), http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, HTTPStatus(tc.err))
		})
	}
}

func TestBusinessError(t *testing.T) {
	err := NewBusiness("origin is required", CodeInvalidInput)
	assert.Equal(t, "origin is required", err.Error())
	assert.Equal(t, CodeInvalidInput, err.Code())
}
