package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookstore-storefront/pkg/validate"
)

type form struct {
	Login    string `form:"login" validate:"required"`
	Email    string `form:"email" validate:"omitempty,email"`
	Password string `form:"password" validate:"required"`
	Confirm  string `form:"confirmPassword" validate:"eqfield=Password"`
	Rating   int    `form:"rating" validate:"gte=1,lte=5"`
}

func TestFieldErrors(t *testing.T) {
	t.Parallel()
	v := validate.NewCustomValidator()

	err := v.Validate(form{Email: "nope", Password: "a", Confirm: "b", Rating: 7})
	require.Error(t, err)

	fields := validate.FieldErrors(err)
	require.Equal(t, map[string]string{
		"login":           "This field is required",
		"email":           "Invalid email address",
		"confirmPassword": "Values do not match",
		"rating":          "Must be at most 5",
	}, fields)
}

func TestFieldErrors_Valid(t *testing.T) {
	t.Parallel()
	v := validate.NewCustomValidator()

	require.NoError(t, v.Validate(form{Login: "l", Password: "p", Confirm: "p", Rating: 3}))
	require.Nil(t, validate.FieldErrors(nil))
}
