package openid_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookstore-storefront/pkg/openid"
)

func sign(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func TestParseHS256(t *testing.T) {
	t.Parallel()
	exp := time.Now().Add(time.Hour).Unix()
	tests := []struct {
		name      string
		claims    jwt.MapClaims
		signKey   string
		wantErr   bool
		wantID    int
		wantName  string
		wantRoles []string
	}{
		{
			name: "long claim names",
			claims: jwt.MapClaims{
				"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier": "12",
				"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name":           "alice",
				"http://schemas.microsoft.com/ws/2008/06/identity/claims/role":         "2",
				"exp": exp,
			},
			signKey:   "k",
			wantID:    12,
			wantName:  "alice",
			wantRoles: []string{"2"},
		},
		{
			name:      "short claim names",
			claims:    jwt.MapClaims{"sub": "7", "unique_name": "bob", "role": []interface{}{"Customer", "Reviewer"}, "exp": exp},
			signKey:   "k",
			wantID:    7,
			wantName:  "bob",
			wantRoles: []string{"Customer", "Reviewer"},
		},
		{
			name:    "wrong key",
			claims:  jwt.MapClaims{"sub": "7", "exp": exp},
			signKey: "other",
			wantErr: true,
		},
		{
			name:    "no expiry",
			claims:  jwt.MapClaims{"sub": "7", "unique_name": "root", "role": "Admin"},
			signKey: "k",
			wantErr: true,
		},
		{
			name:    "expired",
			claims:  jwt.MapClaims{"sub": "7", "exp": time.Now().Add(-time.Hour).Unix()},
			signKey: "k",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, err := openid.ParseHS256(sign(t, tt.claims, tt.signKey), []byte("k"))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, h.GetUserID())
			require.Equal(t, tt.wantName, h.GetName())
			require.Equal(t, tt.wantRoles, h.Roles())
		})
	}
}
