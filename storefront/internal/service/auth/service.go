package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/apiclient"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/errs"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
)

const basePath = "/api/AuthApi"

type Service struct {
	log *zap.Logger
}

func NewService(log *zap.Logger) *Service {
	return &Service{log: log.Named("auth")}
}

// Login exchanges credentials for a backend token.
// Every failure collapses into errs.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, c *apiclient.Client, req model.LoginRequest) (string, error) {
	var resp model.AuthResponse
	code, err := c.Post(ctx, basePath+"/login", req, &resp)
	if err != nil {
		s.log.Warn("login", zap.String("login", req.Login), zap.Int("status", code), zap.Error(err))
		return "", errs.ErrInvalidCredentials
	}
	if resp.Token == "" {
		s.log.Warn("login", zap.String("login", req.Login), zap.Error(errs.ErrEmptyToken))
		return "", errs.ErrInvalidCredentials
	}
	return resp.Token, nil
}

// Register creates an account. A rejected registration returns the
// backend's message text as the error.
func (s *Service) Register(ctx context.Context, c *apiclient.Client, req model.RegisterRequest) (string, error) {
	var resp model.AuthResponse
	code, err := c.Post(ctx, basePath+"/register", req, &resp)
	if err != nil {
		s.log.Warn("register", zap.String("login", req.Login), zap.Int("status", code), zap.Error(err))
		var se *apiclient.StatusError
		if errors.As(err, &se) && se.Body != "" {
			return "", errors.New(backendMessage(se.Body))
		}
		return "", errs.ErrDefault
	}
	if resp.Token == "" {
		return "", errs.ErrEmptyToken
	}
	return resp.Token, nil
}

func (s *Service) UserByLogin(ctx context.Context, c *apiclient.Client, login string) (model.User, bool) {
	var user model.User
	code, err := c.Get(ctx, apiclient.Path(basePath+"/user-by-login", login), nil, &user)
	if err != nil {
		if code != http.StatusNotFound {
			s.log.Warn("user by login", zap.String("login", login), zap.Int("status", code), zap.Error(err))
		}
		return model.User{}, false
	}
	return user, true
}

// backendMessage unwraps a JSON string body ("\"Login taken\"") to its text.
func backendMessage(body string) string {
	if len(body) >= 2 && strings.HasPrefix(body, `"`) && strings.HasSuffix(body, `"`) {
		return strings.ReplaceAll(body[1:len(body)-1], `\"`, `"`)
	}
	return body
}
