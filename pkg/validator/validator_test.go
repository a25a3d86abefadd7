package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestValidateOK(t *testing.T) {
	v := New()
	err := v.Validate(registerForm{Name: "A", Email: "a@b.com", Password: "longenough"})
	assert.NoError(t, err)
}

func TestValidateReportsEveryFailure(t *testing.T) {
	v := New()
	err := v.Validate(registerForm{Email: "not-an-email", Password: "short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name is required")
	assert.Contains(t, err.Error(), "Email must be a valid email")
	assert.Contains(t, err.Error(), "Password must be at least 8 characters")
}
