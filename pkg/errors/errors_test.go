package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorMessage(t *testing.T) {
	err := NewAPIError(http.StatusBadRequest, "email already registered", []byte(`{"message":"email already registered"}`))
	assert.Equal(t, "api error 400: email already registered", err.Error())

	bare := NewAPIError(http.StatusBadGateway, "", nil)
	assert.Equal(t, "api error 502", bare.Error())
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(NewAPIError(http.StatusUnauthorized, "unauthorized", nil)))
	assert.True(t, IsUnauthorized(ErrSessionExpired))
	assert.True(t, IsUnauthorized(fmt.Errorf("call failed: %w", NewAPIError(401, "", nil))))
	assert.False(t, IsUnauthorized(NewAPIError(http.StatusForbidden, "forbidden", nil)))
	assert.False(t, IsUnauthorized(fmt.Errorf("plain failure")))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, 404, StatusOf(NewAPIError(http.StatusNotFound, "", nil)))
	assert.True(t, IsNotFound(NewAPIError(http.StatusNotFound, "", nil)))
	assert.Equal(t, 0, StatusOf(fmt.Errorf("network down")))
}
