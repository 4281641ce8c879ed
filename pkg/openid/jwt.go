package openid

import (
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Claim names as the backend identity stack emits them, long form first.
const (
	claimNameIdentifier = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	claimName           = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	claimRole           = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
)

var (
	userIDKeys = []string{claimNameIdentifier, "nameid", "sub", "uid"}
	nameKeys   = []string{claimName, "unique_name", "name", "login", "preferred_username"}
	roleKeys   = []string{claimRole, "role", "roles"}
)

type JwtHelper struct {
	claims jwt.MapClaims
	roles  []string
}

func NewJwtHelper(claims jwt.MapClaims) *JwtHelper {
	return &JwtHelper{
		claims: claims,
		roles:  parseRoles(claims),
	}
}

// ParseHS256 verifies an HMAC-signed token with key and wraps its claims.
// Tokens without an exp claim are rejected.
func ParseHS256(token string, key []byte) (*JwtHelper, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse bearer token")
	}
	if !t.Valid {
		return nil, errors.New("bearer token is invalid")
	}
	return NewJwtHelper(claims), nil
}

func (j *JwtHelper) GetUserID() int {
	for _, key := range userIDKeys {
		switch v := j.claims[key].(type) {
		case string:
			if id, err := strconv.Atoi(v); err == nil {
				return id
			}
		case float64:
			return int(v)
		}
	}
	return 0
}

func (j *JwtHelper) GetName() string {
	for _, key := range nameKeys {
		if s, ok := j.claims[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func (j *JwtHelper) Roles() []string {
	return j.roles
}

// parseRoles accepts a single role or a list of roles under any known key.
func parseRoles(claims jwt.MapClaims) []string {
	roles := make([]string, 0)
	for _, key := range roleKeys {
		switch v := claims[key].(type) {
		case string:
			roles = append(roles, strings.Fields(v)...)
		case float64:
			roles = append(roles, strconv.Itoa(int(v)))
		case []interface{}:
			for _, r := range v {
				if s, ok := r.(string); ok {
					roles = append(roles, s)
				}
			}
		}
	}
	return roles
}
