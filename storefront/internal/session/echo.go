package session

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

const (
	principalKey = "session.principal"
	stateKey     = "session.state"

	ReturnURLParam = "returnUrl"
)

// Middleware resolves the caller once per request.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, st := m.Resolve(c.Request())
			c.Set(principalKey, p)
			c.Set(stateKey, st)
			return next(c)
		}
	}
}

func PrincipalFrom(c echo.Context) (Principal, State) {
	p, _ := c.Get(principalKey).(Principal)
	st, ok := c.Get(stateKey).(State)
	if !ok {
		return Principal{}, Anonymous
	}
	return p, st
}

// RequireAuth sends anonymous callers to loginPath with a returnUrl.
// A forwarded bearer counts as signed in; the backend checks it.
func RequireAuth(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, st := PrincipalFrom(c); st == Anonymous {
				return c.Redirect(http.StatusFound, LoginURL(loginPath, c.Request().URL.RequestURI()))
			}
			return next(c)
		}
	}
}

// RequireRole lets through only principals holding role.
// Anonymous callers go to login, everyone else to deniedPath.
func RequireRole(role Role, loginPath, deniedPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, st := PrincipalFrom(c)
			if st == Anonymous {
				return c.Redirect(http.StatusFound, LoginURL(loginPath, c.Request().URL.RequestURI()))
			}
			if !HasRole(p, role) {
				return c.Redirect(http.StatusFound, LoginURL(deniedPath, c.Request().URL.RequestURI()))
			}
			return next(c)
		}
	}
}

func LoginURL(loginPath, returnURL string) string {
	if returnURL == "" {
		return loginPath
	}
	return loginPath + "?" + url.Values{ReturnURLParam: {returnURL}}.Encode()
}

// LocalURL keeps only same-site relative paths, falling back to "/".
func LocalURL(raw string) string {
	if raw == "" {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" || raw[0] != '/' {
		return "/"
	}
	if len(raw) > 1 && (raw[1] == '/' || raw[1] == '\\') {
		return "/"
	}
	return raw
}
