package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookstore-storefront/storefront/config"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/session"
)

func TestRequireRole(t *testing.T) {
	t.Parallel()
	m := newManager(t, config.Session{Secret: "s", TTL: time.Hour})
	admin := signIn(t, m, session.Principal{UserID: 1, Login: "root", Role: session.RoleAdmin})
	customer := signIn(t, m, session.Principal{UserID: 2, Login: "bob", Role: session.RoleCustomer})

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/Admin/Users", func(c echo.Context) error {
		p, _ := session.PrincipalFrom(c)
		return c.String(http.StatusOK, p.Login)
	}, session.RequireRole(session.RoleAdmin, "/Home/Login", "/Home/AccessDenied"))
	e.GET("/Customer/Cart", func(c echo.Context) error {
		return c.String(http.StatusOK, "cart")
	}, session.RequireAuth("/Home/Login"))

	tests := []struct {
		name         string
		path         string
		cookies      []*http.Cookie
		wantCode     int
		wantLocation string
		wantBody     string
	}{
		{name: "admin allowed", path: "/Admin/Users", cookies: admin, wantCode: http.StatusOK, wantBody: "root"},
		{name: "customer denied", path: "/Admin/Users", cookies: customer, wantCode: http.StatusFound, wantLocation: "/Home/AccessDenied?returnUrl=%2FAdmin%2FUsers"},
		{name: "anonymous to login", path: "/Admin/Users?page=2", wantCode: http.StatusFound, wantLocation: "/Home/Login?returnUrl=%2FAdmin%2FUsers%3Fpage%3D2"},
		{name: "customer cart", path: "/Customer/Cart", cookies: customer, wantCode: http.StatusOK, wantBody: "cart"},
		{name: "anonymous cart", path: "/Customer/Cart", wantCode: http.StatusFound, wantLocation: "/Home/Login?returnUrl=%2FCustomer%2FCart"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			for _, c := range tt.cookies {
				r.AddCookie(c)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)
			require.Equal(t, tt.wantCode, w.Code)
			require.Equal(t, tt.wantLocation, w.Header().Get(echo.HeaderLocation))
			if tt.wantBody != "" {
				require.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRequireAuth_Bearer(t *testing.T) {
	t.Parallel()
	m := newManager(t, config.Session{Secret: "s"})
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/Customer/Cart", func(c echo.Context) error {
		_, st := session.PrincipalFrom(c)
		return c.String(http.StatusOK, st.String())
	}, session.RequireAuth("/Home/Login"))

	r := httptest.NewRequest(http.MethodGet, "/Customer/Cart", http.NoBody)
	r.Header.Set("Authorization", "Bearer opaque")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "bearer", w.Body.String())
}

func TestLocalURL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{in: "", want: "/"},
		{in: "/Customer/Cart", want: "/Customer/Cart"},
		{in: "/Admin/Users?page=2", want: "/Admin/Users?page=2"},
		{in: "https://evil.example", want: "/"},
		{in: "//evil.example", want: "/"},
		{in: "/\\evil.example", want: "/"},
		{in: "relative", want: "/"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, session.LocalURL(tt.in), tt.in)
	}
}

func TestPrincipalFrom_NoMiddleware(t *testing.T) {
	t.Parallel()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody), httptest.NewRecorder())
	p, st := session.PrincipalFrom(c)
	require.Equal(t, session.Anonymous, st)
	require.False(t, p.Authenticated())
}
