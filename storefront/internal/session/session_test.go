package session_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookstore-storefront/storefront/config"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/apiclient"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/session"
)

func newManager(t *testing.T, cfg config.Session) *session.Manager {
	t.Helper()
	m, err := session.NewManager(cfg)
	require.NoError(t, err)
	return m
}

func signIn(t *testing.T, m *session.Manager, p session.Principal) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, m.SignIn(w, "backend-token", p))
	return w.Result().Cookies()
}

func requestWith(cookies ...*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func TestManager_SignIn(t *testing.T) {
	t.Parallel()
	m := newManager(t, config.Session{Secret: "s3cret", TTL: time.Hour, Secure: true})
	before := time.Now()
	cookies := signIn(t, m, session.Principal{UserID: 1, Login: "alice", Role: session.RoleAdmin})
	require.Len(t, cookies, 2)

	byName := map[string]*http.Cookie{}
	for _, c := range cookies {
		byName[c.Name] = c
		require.True(t, c.HttpOnly)
		require.True(t, c.Secure)
		require.Equal(t, http.SameSiteStrictMode, c.SameSite)
		require.Equal(t, "/", c.Path)
		require.Equal(t, 3600, c.MaxAge)
		require.WithinDuration(t, before.Add(time.Hour), c.Expires, 5*time.Second)
	}
	require.Equal(t, "backend-token", byName[session.TokenCookieName].Value)
	require.NotEmpty(t, byName[session.PrincipalCookieName].Value)

	p, st := m.Resolve(requestWith(cookies...))
	require.Equal(t, session.Cookie, st)
	require.Equal(t, session.Principal{UserID: 1, Login: "alice", Role: session.RoleAdmin}, p)
	require.Equal(t, "backend-token", apiclient.TokenFromRequest(requestWith(cookies...)))
}

func TestManager_SignInRejectsEmpty(t *testing.T) {
	t.Parallel()
	m := newManager(t, config.Session{Secret: "s"})
	require.Error(t, m.SignIn(httptest.NewRecorder(), "", session.Principal{Login: "a"}))
	require.Error(t, m.SignIn(httptest.NewRecorder(), "t", session.Principal{}))
}

func TestManager_SignOut(t *testing.T) {
	t.Parallel()
	m := newManager(t, config.Session{Secret: "s", TTL: time.Hour})
	w := httptest.NewRecorder()
	m.SignOut(w)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		require.Empty(t, c.Value)
		require.Equal(t, -1, c.MaxAge)
		require.True(t, c.Expires.Before(time.Now()))
	}

	// a browser drops MaxAge<0 cookies, so the next request carries none
	p, st := m.Resolve(requestWith())
	require.Equal(t, session.Anonymous, st)
	require.False(t, p.Authenticated())
}

func TestManager_Resolve(t *testing.T) {
	t.Parallel()
	m := newManager(t, config.Session{Secret: "s3cret", TTL: time.Hour, BearerKey: "backend-key"})
	other := newManager(t, config.Session{Secret: "different", TTL: time.Hour})
	good := signIn(t, m, session.Principal{UserID: 2, Login: "bob", Role: session.RoleCustomer})
	forged := signIn(t, other, session.Principal{UserID: 2, Login: "bob", Role: session.RoleAdmin})

	principalOf := func(cookies []*http.Cookie) *http.Cookie {
		for _, c := range cookies {
			if c.Name == session.PrincipalCookieName {
				return c
			}
		}
		return nil
	}
	tampered := *principalOf(good)
	tampered.Value = tampered.Value[:len(tampered.Value)-2] + "xx"

	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": 2, "login": "bob", "role": "customer", "iss": "storefront",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	bearer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"nameid": "5", "unique_name": "carol", "role": "2",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("backend-key"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"nameid": "1", "unique_name": "root", "role": "2",
	}).SignedString([]byte("backend-key"))
	require.NoError(t, err)

	tests := []struct {
		name      string
		req       *http.Request
		wantState session.State
		wantLogin string
		wantRole  session.Role
	}{
		{name: "no cookies", req: requestWith(), wantState: session.Anonymous},
		{name: "valid cookie", req: requestWith(principalOf(good)), wantState: session.Cookie, wantLogin: "bob", wantRole: session.RoleCustomer},
		{name: "tampered", req: requestWith(&tampered), wantState: session.Anonymous},
		{name: "foreign key", req: requestWith(principalOf(forged)), wantState: session.Anonymous},
		{name: "expired", req: requestWith(&http.Cookie{Name: session.PrincipalCookieName, Value: expiredToken}), wantState: session.Anonymous},
		{name: "garbage", req: requestWith(&http.Cookie{Name: session.PrincipalCookieName, Value: "abc"}), wantState: session.Anonymous},
		{
			name: "verified bearer",
			req: func() *http.Request {
				r := requestWith(principalOf(good))
				r.Header.Set("Authorization", "Bearer "+bearer)
				return r
			}(),
			wantState: session.BearerForwarded,
			wantLogin: "carol",
			wantRole:  session.RoleAdmin,
		},
		{
			name: "bearer without expiry",
			req: func() *http.Request {
				r := requestWith(principalOf(good))
				r.Header.Set("Authorization", "Bearer "+noExpiry)
				return r
			}(),
			wantState: session.BearerForwarded,
		},
		{
			name: "unverifiable bearer",
			req: func() *http.Request {
				r := requestWith()
				r.Header.Set("Authorization", "Bearer opaque")
				return r
			}(),
			wantState: session.BearerForwarded,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, st := m.Resolve(tt.req)
			require.Equal(t, tt.wantState, st, st.String())
			require.Equal(t, tt.wantLogin, p.Login)
			require.Equal(t, tt.wantRole, p.Role)
		})
	}
}

// The principal authorization is decided on and the token sent to the
// backend must come from the same credential.
func TestManager_ResolveMatchesForwardedToken(t *testing.T) {
	t.Parallel()
	m := newManager(t, config.Session{Secret: "s3cret", TTL: time.Hour, BearerKey: "backend-key"})
	customer := signIn(t, m, session.Principal{UserID: 2, Login: "bob", Role: session.RoleCustomer})

	adminBearer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"nameid": "1", "unique_name": "root", "role": "2",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("backend-key"))
	require.NoError(t, err)

	tests := []struct {
		name      string
		header    string
		wantState session.State
		wantLogin string
		wantToken string
	}{
		{name: "cookie only", wantState: session.Cookie, wantLogin: "bob", wantToken: "backend-token"},
		{name: "cookie and bearer", header: "Bearer " + adminBearer, wantState: session.BearerForwarded, wantLogin: "root", wantToken: adminBearer},
		{name: "cookie and empty bearer", header: "Bearer ", wantState: session.Cookie, wantLogin: "bob", wantToken: "backend-token"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := requestWith(customer...)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			p, st := m.Resolve(r)
			require.Equal(t, tt.wantState, st)
			require.Equal(t, tt.wantLogin, p.Login)
			require.Equal(t, tt.wantToken, apiclient.TokenFromRequest(r))
		})
	}
}

func TestManager_RandomSecret(t *testing.T) {
	t.Parallel()
	a := newManager(t, config.Session{})
	b := newManager(t, config.Session{})
	cookies := signIn(t, a, session.Principal{Login: "x"})
	_, st := b.Resolve(requestWith(cookies...))
	require.Equal(t, session.Anonymous, st)
}

func TestManager_InsecureCookie(t *testing.T) {
	t.Parallel()
	m := newManager(t, config.Session{Secret: "s", Secure: false})
	for _, c := range signIn(t, m, session.Principal{Login: "x"}) {
		require.False(t, c.Secure)
		require.True(t, strings.HasPrefix(c.Name, "jwt_token") || c.Name == session.PrincipalCookieName)
	}
}
