package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/session"
)

func TestParseRole(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want session.Role
	}{
		{in: "", want: session.RoleNone},
		{in: "2", want: session.RoleAdmin},
		{in: "admin", want: session.RoleAdmin},
		{in: "Admin", want: session.RoleAdmin},
		{in: " ADMIN ", want: session.RoleAdmin},
		{in: "1", want: session.RoleCustomer},
		{in: "customer", want: session.RoleCustomer},
		{in: "Manager", want: session.RoleCustomer},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, session.ParseRole(tt.in), tt.in)
	}
}

func TestRoleFromID(t *testing.T) {
	t.Parallel()
	one, two := 1, 2
	require.Equal(t, session.RoleAdmin, session.RoleFromID(&two))
	require.Equal(t, session.RoleCustomer, session.RoleFromID(&one))
	require.Equal(t, session.RoleCustomer, session.RoleFromID(nil))
}

func TestHasRole(t *testing.T) {
	t.Parallel()
	admin := session.Principal{Login: "a", Role: session.RoleAdmin}
	customer := session.Principal{Login: "c", Role: session.RoleCustomer}
	anonymous := session.Principal{Role: session.RoleAdmin}

	require.True(t, session.HasRole(admin, session.RoleAdmin))
	require.False(t, session.HasRole(customer, session.RoleAdmin))
	require.True(t, session.HasRole(customer, session.RoleCustomer))
	require.True(t, session.HasRole(customer, session.RoleNone))
	require.False(t, session.HasRole(anonymous, session.RoleAdmin))
	require.False(t, session.HasRole(anonymous, session.RoleNone))
}
