package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	mw "github.com/Astemirdum/bookstore-storefront/pkg/middleware"
	"github.com/Astemirdum/bookstore-storefront/pkg/validate"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/apiclient"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/events"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/session"
)

const (
	loginPath  = "/Home/Login"
	deniedPath = "/Home/AccessDenied"

	csrfField      = "_csrf"
	csrfContextKey = "csrf"
)

type Services struct {
	Auth     AuthService
	Admin    AdminService
	Customer CustomerService
}

type Handler struct {
	authSvc     AuthService
	adminSvc    AdminService
	customerSvc CustomerService
	clients     *apiclient.Factory
	sessions    *session.Manager
	events      Publisher
	renderer    *Renderer
	log         *zap.Logger
}

func New(log *zap.Logger, svc Services, clients *apiclient.Factory, sessions *session.Manager, publisher Publisher) (*Handler, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Handler{
		authSvc:     svc.Auth,
		adminSvc:    svc.Admin,
		customerSvc: svc.Customer,
		clients:     clients,
		sessions:    sessions,
		events:      publisher,
		renderer:    renderer,
		log:         log.Named("handler"),
	}, nil
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		webRPS  = 100
	)
	e.Renderer = h.renderer
	e.Validator = validate.NewCustomValidator()
	e.HTTPErrorHandler = h.errorHandler

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	web := e.Group("",
		mw.NewRequestID(),
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		mw.NewRateLimiter(webRPS),
		middleware.CSRFWithConfig(middleware.CSRFConfig{
			// a bearer call is resolved and forwarded on the bearer alone,
			// its cookies are never used
			Skipper: func(c echo.Context) bool {
				return apiclient.BearerToken(c.Request()) != ""
			},
			TokenLookup:    "form:" + csrfField,
			ContextKey:     csrfContextKey,
			CookieName:     csrfField,
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSecure:   h.sessions.Secure(),
			CookieSameSite: http.SameSiteStrictMode,
		}),
		h.sessions.Middleware(),
	)

	web.GET("/", h.Index)
	web.GET("/Home/Index", h.Index)
	web.GET("/Home/Login", h.LoginPage)
	web.POST("/Home/Login", h.Login)
	web.GET("/Home/Register", h.RegisterPage)
	web.POST("/Home/Register", h.Register)
	web.Match([]string{http.MethodGet, http.MethodPost}, "/Home/Logout", h.Logout)
	web.GET("/Home/AccessDenied", h.AccessDenied)

	customer := web.Group("/Customer", session.RequireAuth(loginPath))
	customer.GET("/Catalog", h.Catalog)
	customer.GET("/Product/:id", h.Product)
	customer.POST("/AddToCart", h.AddToCart)
	customer.GET("/Cart", h.Cart)
	customer.POST("/UpdateCart", h.UpdateCart)
	customer.POST("/AddReview", h.AddReview)
	customer.GET("/AverageRating/:id", h.AverageRating)

	h.registerAdmin(web.Group("/Admin", session.RequireRole(session.RoleAdmin, loginPath, deniedPath)))

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// client is the backend client carrying the caller's token.
func (h *Handler) client(c echo.Context) *apiclient.Client {
	return h.clients.FromRequest(c.Request())
}

func (h *Handler) publish(c echo.Context, kind events.Kind, target string) {
	p, _ := session.PrincipalFrom(c)
	h.publishAs(c, kind, p.Login, target)
}

func (h *Handler) publishAs(c echo.Context, kind events.Kind, login, target string) {
	if err := h.events.Publish(c.Request().Context(), events.New(kind, login, target)); err != nil {
		h.log.Warn("publish event", zap.String("kind", string(kind)), zap.Error(err))
	}
}

type errorView struct {
	Code    int
	Message string
}

func (h *Handler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			msg = m
		case error:
			msg = m.Error()
		default:
			msg = http.StatusText(code)
		}
	}
	if code >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("uri", c.Request().RequestURI), zap.Error(err))
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code) //nolint:errcheck
		return
	}
	if rerr := h.render(c, code, "error", http.StatusText(code), errorView{Code: code, Message: msg}); rerr != nil {
		h.log.Error("render error page", zap.Error(rerr))
		_ = c.String(code, msg) //nolint:errcheck
	}
}
