package handler_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/errs"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/events"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/session"

	service_mocks "github.com/Astemirdum/bookstore-storefront/storefront/internal/handler/mocks"
)

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	adminID := 2
	type mockBehavior func(a *service_mocks.MockAuthService, p *service_mocks.MockPublisher)

	tests := []struct {
		name         string
		form         url.Values
		mockBehavior mockBehavior
		wantCode     int
		wantLocation string
		wantBody     string
		wantSession  bool
	}{
		{
			name: "ok",
			form: url.Values{"login": {"root"}, "password": {"hunter2"}, "returnUrl": {"/Admin/Users"}},
			mockBehavior: func(a *service_mocks.MockAuthService, p *service_mocks.MockPublisher) {
				a.EXPECT().Login(gomock.Any(), gomock.Any(), model.LoginRequest{Login: "root", Password: "hunter2"}).
					Return("backend-token", nil)
				a.EXPECT().UserByLogin(gomock.Any(), gomock.Any(), "root").
					Return(model.User{UserID: 1, Login: "root", RoleID: &adminID}, true)
				p.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ interface{}, ev events.Event) error {
						require.Equal(t, events.KindLogin, ev.Kind)
						require.Equal(t, "root", ev.Login)
						return nil
					})
			},
			wantCode:     http.StatusFound,
			wantLocation: "/Admin/Users",
			wantSession:  true,
		},
		{
			name: "external return url",
			form: url.Values{"login": {"bob"}, "password": {"pw"}, "returnUrl": {"https://evil.test/"}},
			mockBehavior: func(a *service_mocks.MockAuthService, p *service_mocks.MockPublisher) {
				a.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("backend-token", nil)
				a.EXPECT().UserByLogin(gomock.Any(), gomock.Any(), "bob").
					Return(model.User{UserID: 2, Login: "bob"}, true)
				p.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode:     http.StatusFound,
			wantLocation: "/",
			wantSession:  true,
		},
		{
			name: "invalid credentials",
			form: url.Values{"login": {"root"}, "password": {"hunter2"}},
			mockBehavior: func(a *service_mocks.MockAuthService, p *service_mocks.MockPublisher) {
				a.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.WithStack(errs.ErrInvalidCredentials))
			},
			wantCode: http.StatusOK,
			wantBody: "Invalid login or password",
		},
		{
			name: "user lookup failed",
			form: url.Values{"login": {"root"}, "password": {"hunter2"}},
			mockBehavior: func(a *service_mocks.MockAuthService, p *service_mocks.MockPublisher) {
				a.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("backend-token", nil)
				a.EXPECT().UserByLogin(gomock.Any(), gomock.Any(), "root").Return(model.User{}, false)
			},
			wantCode: http.StatusOK,
			wantBody: "Failed to get user data",
		},
		{
			name:         "missing password",
			form:         url.Values{"login": {"root"}},
			mockBehavior: func(a *service_mocks.MockAuthService, p *service_mocks.MockPublisher) {},
			wantCode:     http.StatusOK,
			wantBody:     "This field is required",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			pub := service_mocks.NewMockPublisher(c)
			f := newFixture(t, c, pub)
			tt.mockBehavior(f.auth, pub)

			w := f.do(post("/Home/Login", tt.form))

			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantLocation != "" {
				require.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
			require.Contains(t, w.Body.String(), tt.wantBody)
			require.NotContains(t, w.Body.String(), "hunter2")

			token := cookieNamed(w, session.TokenCookieName)
			principal := cookieNamed(w, session.PrincipalCookieName)
			if !tt.wantSession {
				require.Nil(t, token)
				require.Nil(t, principal)
				return
			}
			require.NotNil(t, token)
			require.NotNil(t, principal)
			require.Equal(t, "backend-token", token.Value)
			require.True(t, token.HttpOnly)
			require.True(t, token.Secure)
			require.Equal(t, http.SameSiteStrictMode, token.SameSite)
			require.WithinDuration(t, time.Now().Add(time.Hour), token.Expires, time.Minute)
		})
	}
}

func TestHandler_LoginSession(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	f := newFixture(t, c, nil)
	adminID := 2

	f.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("backend-token", nil)
	f.auth.EXPECT().UserByLogin(gomock.Any(), gomock.Any(), "root").
		Return(model.User{UserID: 1, Login: "root", RoleID: &adminID}, true)
	w := f.do(post("/Home/Login", url.Values{"login": {"root"}, "password": {"pw"}}))
	require.Equal(t, http.StatusFound, w.Code)

	f.admin.EXPECT().ListCategories(gomock.Any(), gomock.Any()).
		Return([]model.Category{{CategoryID: 1, CategoryName: "Science"}})
	w = f.do(get("/Admin/Categories", w.Result().Cookies()...))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Science")
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	type mockBehavior func(a *service_mocks.MockAuthService)

	valid := url.Values{
		"login":           {"carol"},
		"email":           {"carol@example.com"},
		"password":        {"secret"},
		"confirmPassword": {"secret"},
	}
	tests := []struct {
		name         string
		form         url.Values
		mockBehavior mockBehavior
		wantCode     int
		wantBody     string
		wantRole     session.Role
	}{
		{
			name: "ok without user lookup",
			form: valid,
			mockBehavior: func(a *service_mocks.MockAuthService) {
				a.EXPECT().Register(gomock.Any(), gomock.Any(), model.RegisterRequest{
					Login: "carol", Email: "carol@example.com", Password: "secret",
				}).Return("backend-token", nil)
				a.EXPECT().UserByLogin(gomock.Any(), gomock.Any(), "carol").Return(model.User{}, false)
			},
			wantCode: http.StatusFound,
			wantRole: session.RoleCustomer,
		},
		{
			name: "password mismatch",
			form: url.Values{
				"login":           {"carol"},
				"email":           {"carol@example.com"},
				"password":        {"secret"},
				"confirmPassword": {"other"},
			},
			mockBehavior: func(a *service_mocks.MockAuthService) {},
			wantCode:     http.StatusOK,
			wantBody:     "Values do not match",
		},
		{
			name: "bad email",
			form: url.Values{
				"login":           {"carol"},
				"email":           {"nope"},
				"password":        {"secret"},
				"confirmPassword": {"secret"},
			},
			mockBehavior: func(a *service_mocks.MockAuthService) {},
			wantCode:     http.StatusOK,
			wantBody:     "Invalid email address",
		},
		{
			name: "backend rejects",
			form: valid,
			mockBehavior: func(a *service_mocks.MockAuthService) {
				a.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("Login already taken"))
			},
			wantCode: http.StatusOK,
			wantBody: "Login already taken",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			f := newFixture(t, c, nil)
			tt.mockBehavior(f.auth)

			w := f.do(post("/Home/Register", tt.form))

			require.Equal(t, tt.wantCode, w.Code)
			require.Contains(t, w.Body.String(), tt.wantBody)
			require.NotContains(t, w.Body.String(), "secret")
			if tt.wantRole == "" {
				require.Nil(t, cookieNamed(w, session.PrincipalCookieName))
				return
			}
			require.Equal(t, "/", w.Header().Get("Location"))

			r := get("/", w.Result().Cookies()...)
			p, st := f.sessions.Resolve(r)
			require.Equal(t, session.Cookie, st)
			require.Equal(t, "carol", p.Login)
			require.Equal(t, tt.wantRole, p.Role)
		})
	}
}

func TestHandler_Logout(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	pub := service_mocks.NewMockPublisher(c)
	f := newFixture(t, c, pub)

	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, ev events.Event) error {
			require.Equal(t, events.KindLogout, ev.Kind)
			require.Equal(t, "bob", ev.Login)
			return nil
		})

	w := f.do(post("/Home/Logout", nil, f.signIn(t, customerUser)...))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	for _, name := range []string{session.TokenCookieName, session.PrincipalCookieName} {
		cookie := cookieNamed(w, name)
		require.NotNil(t, cookie, name)
		require.Empty(t, cookie.Value, name)
		require.Negative(t, cookie.MaxAge, name)
	}

	// without cookies the caller is anonymous again
	w = f.do(get("/Customer/Cart"))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/Home/Login?returnUrl=%2FCustomer%2FCart", w.Header().Get("Location"))
}

func TestHandler_LogoutAnonymous(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	pub := service_mocks.NewMockPublisher(c)
	f := newFixture(t, c, pub)

	w := f.do(get("/Home/Logout"))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
}
