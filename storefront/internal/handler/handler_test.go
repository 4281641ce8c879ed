package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookstore-storefront/storefront/config"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/apiclient"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/events"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/handler"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/session"

	service_mocks "github.com/Astemirdum/bookstore-storefront/storefront/internal/handler/mocks"
)

const csrfToken = "test-csrf-token"

type fixture struct {
	auth     *service_mocks.MockAuthService
	admin    *service_mocks.MockAdminService
	customer *service_mocks.MockCustomerService
	sessions *session.Manager
	e        *echo.Echo
}

func newFixture(t *testing.T, ctrl *gomock.Controller, publisher handler.Publisher) *fixture {
	t.Helper()
	return newFixtureWith(t, ctrl, publisher,
		config.API{BaseURL: "http://backend.test"},
		config.Session{Secret: "test-secret", TTL: time.Hour, Secure: true})
}

func newFixtureWith(t *testing.T, ctrl *gomock.Controller, publisher handler.Publisher, api config.API, sess config.Session) *fixture {
	t.Helper()
	clients, err := apiclient.NewFactory(api, zap.NewNop())
	require.NoError(t, err)
	sessions, err := session.NewManager(sess)
	require.NoError(t, err)
	if publisher == nil {
		publisher = events.Nop{}
	}

	f := &fixture{
		auth:     service_mocks.NewMockAuthService(ctrl),
		admin:    service_mocks.NewMockAdminService(ctrl),
		customer: service_mocks.NewMockCustomerService(ctrl),
		sessions: sessions,
	}
	h, err := handler.New(zap.NewExample().Named("test"), handler.Services{
		Auth:     f.auth,
		Admin:    f.admin,
		Customer: f.customer,
	}, clients, sessions, publisher)
	require.NoError(t, err)
	f.e = h.NewRouter()
	return f
}

func (f *fixture) signIn(t *testing.T, p session.Principal) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, f.sessions.SignIn(w, "backend-token", p))
	return w.Result().Cookies()
}

func (f *fixture) do(r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.e.ServeHTTP(w, r)
	return w
}

func get(path string, cookies ...*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

// post builds a form submission carrying a valid CSRF token.
func post(path string, values url.Values, cookies ...*http.Cookie) *http.Request {
	if values == nil {
		values = url.Values{}
	}
	values.Set("_csrf", csrfToken)
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	r.AddCookie(&http.Cookie{Name: "_csrf", Value: csrfToken})
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

var (
	adminUser    = session.Principal{UserID: 1, Login: "root", Role: session.RoleAdmin}
	customerUser = session.Principal{UserID: 2, Login: "bob", Role: session.RoleCustomer}
)

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	f := newFixture(t, c, nil)

	w := f.do(get("/manage/health"))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestHandler_Pages(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	f := newFixture(t, c, nil)

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{name: "home", path: "/", wantCode: http.StatusOK, wantBody: "Welcome to the bookstore"},
		{name: "home index", path: "/Home/Index", wantCode: http.StatusOK, wantBody: "Welcome to the bookstore"},
		{name: "login", path: "/Home/Login?returnUrl=%2FCustomer%2FCart", wantCode: http.StatusOK, wantBody: `value="/Customer/Cart"`},
		{name: "register", path: "/Home/Register", wantCode: http.StatusOK, wantBody: "confirmPassword"},
		{name: "access denied", path: "/Home/AccessDenied", wantCode: http.StatusForbidden, wantBody: "Access denied"},
		{name: "unknown", path: "/nowhere", wantCode: http.StatusNotFound, wantBody: "404"},
	}
	for _, tt := range tests {
		w := f.do(get(tt.path))
		require.Equal(t, tt.wantCode, w.Code, tt.name)
		require.Contains(t, w.Body.String(), tt.wantBody, tt.name)
	}
}

func TestHandler_CSRF(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	f := newFixture(t, c, nil)

	r := post("/Home/Login", url.Values{"login": {"alice"}, "password": {"x"}})
	r.Header.Del("Cookie")
	r.AddCookie(&http.Cookie{Name: "_csrf", Value: "another-token"})

	w := f.do(r)
	require.Equal(t, http.StatusForbidden, w.Code)
}
