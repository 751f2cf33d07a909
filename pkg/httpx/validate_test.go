package httpx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin analyst viewer"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	err := Validate(sample{Email: "nope", Password: "short", Role: "root"})

	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "must be a valid email address", fe["email"])
	require.Equal(t, "must be at least 8 characters", fe["password"])
	require.Equal(t, "must be one of admin, analyst, viewer", fe["role"])
}

func TestValidateAcceptsValid(t *testing.T) {
	require.NoError(t, Validate(sample{Email: "a@example.com", Password: "long enough"}))
	require.NoError(t, Validate(sample{Email: "a@example.com", Password: "long enough", Role: "viewer"}))
}

func TestValidateRequired(t *testing.T) {
	err := Validate(sample{})

	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "is required", fe["email"])
	require.Equal(t, "is required", fe["password"])
	require.NotContains(t, fe, "role")
}
