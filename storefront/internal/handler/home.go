package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookstore-storefront/pkg/validate"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/events"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/session"
)

const (
	msgInvalidCredentials = "Invalid login or password"
	msgNoUserData         = "Failed to get user data"
	msgInvalidForm        = "Invalid form data"
)

type loginForm struct {
	Login     string `form:"login" validate:"required"`
	Password  string `form:"password" validate:"required"`
	ReturnURL string `form:"returnUrl"`
}

type registerForm struct {
	Login           string `form:"login" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

// authView never carries the submitted password back to the page.
type authView struct {
	Login     string
	Email     string
	ReturnURL string
	Errors    map[string]string
	Error     string
}

func (h *Handler) Index(c echo.Context) error {
	return h.render(c, http.StatusOK, "home", "Bookstore", nil)
}

func (h *Handler) AccessDenied(c echo.Context) error {
	return h.render(c, http.StatusForbidden, "denied", "Access denied", nil)
}

func (h *Handler) LoginPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "login", "Log in", authView{
		ReturnURL: c.QueryParam(session.ReturnURLParam),
	})
}

func (h *Handler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.render(c, http.StatusOK, "login", "Log in", authView{Error: msgInvalidForm})
	}
	view := authView{Login: form.Login, ReturnURL: form.ReturnURL}
	if err := c.Validate(&form); err != nil {
		view.Errors = validate.FieldErrors(err)
		return h.render(c, http.StatusOK, "login", "Log in", view)
	}

	ctx := c.Request().Context()
	token, err := h.authSvc.Login(ctx, h.clients.Client(""), model.LoginRequest{
		Login:    form.Login,
		Password: form.Password,
	})
	if err != nil {
		view.Error = msgInvalidCredentials
		return h.render(c, http.StatusOK, "login", "Log in", view)
	}

	user, ok := h.authSvc.UserByLogin(ctx, h.clients.Client(token), form.Login)
	if !ok {
		view.Error = msgNoUserData
		return h.render(c, http.StatusOK, "login", "Log in", view)
	}
	p := session.Principal{UserID: user.UserID, Login: user.Login, Role: session.RoleFromID(user.RoleID)}
	if p.Login == "" {
		p.Login = form.Login
	}
	if err := h.sessions.SignIn(c.Response(), token, p); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.log.Info("signed in", zap.String("login", p.Login), zap.String("role", string(p.Role)))
	h.publishAs(c, events.KindLogin, p.Login, "")

	return c.Redirect(http.StatusFound, session.LocalURL(form.ReturnURL))
}

func (h *Handler) RegisterPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "register", "Register", authView{})
}

func (h *Handler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return h.render(c, http.StatusOK, "register", "Register", authView{Error: msgInvalidForm})
	}
	view := authView{Login: form.Login, Email: form.Email}
	if err := c.Validate(&form); err != nil {
		view.Errors = validate.FieldErrors(err)
		return h.render(c, http.StatusOK, "register", "Register", view)
	}

	ctx := c.Request().Context()
	token, err := h.authSvc.Register(ctx, h.clients.Client(""), model.RegisterRequest{
		Login:    form.Login,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		view.Error = err.Error()
		return h.render(c, http.StatusOK, "register", "Register", view)
	}

	p := session.Principal{Login: form.Login, Role: session.RoleCustomer}
	if user, ok := h.authSvc.UserByLogin(ctx, h.clients.Client(token), form.Login); ok {
		p.UserID = user.UserID
		p.Role = session.RoleFromID(user.RoleID)
	}
	if err := h.sessions.SignIn(c.Response(), token, p); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.publishAs(c, events.KindRegister, p.Login, "")

	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c echo.Context) error {
	p, _ := session.PrincipalFrom(c)
	h.sessions.SignOut(c.Response())
	if p.Authenticated() {
		h.publishAs(c, events.KindLogout, p.Login, "")
	}
	return c.Redirect(http.StatusFound, "/")
}
