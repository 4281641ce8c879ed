package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookstore-storefront/storefront/config"
)

const (
	AuthorizationHeader = "Authorization"
	Bearer              = "Bearer "
	// TokenCookieName carries the backend-issued bearer token.
	TokenCookieName = "jwt_token"

	maxErrorBody = 512
)

// Factory hands out API clients bound to the configured base address.
// It is built once at startup and passed to whoever needs it.
type Factory struct {
	log     *zap.Logger
	client  *http.Client
	baseURL *url.URL
}

func NewFactory(cfg config.API, log *zap.Logger) (*Factory, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
	if err != nil {
		return nil, errors.Wrap(err, "parse api base url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("api base url %q must be absolute", cfg.BaseURL)
	}
	return &Factory{
		log: log.Named("apiclient"),
		client: &http.Client{
			Timeout: cfg.Timeout,
			// a 3xx is the API's answer, not a hop to follow
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		baseURL: base,
	}, nil
}

// Client returns a client that sends token as a bearer credential.
// An empty token yields an anonymous client.
func (f *Factory) Client(token string) *Client {
	return &Client{
		log:     f.log,
		http:    f.client,
		baseURL: f.baseURL,
		token:   token,
	}
}

// FromRequest picks the token of the inbound request, see TokenFromRequest.
func (f *Factory) FromRequest(r *http.Request) *Client {
	return f.Client(TokenFromRequest(r))
}

// TokenFromRequest returns the bearer header token when there is one and
// the jwt_token cookie otherwise. The session resolves callers in the same
// order, so the forwarded token is the one authorization was decided on.
func TokenFromRequest(r *http.Request) string {
	if token := BearerToken(r); token != "" {
		return token
	}
	if cookie, err := r.Cookie(TokenCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// BearerToken is the token of an "Authorization: Bearer" header, or "".
func BearerToken(r *http.Request) string {
	authorization := r.Header.Get(AuthorizationHeader)
	if !strings.HasPrefix(authorization, Bearer) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authorization, Bearer))
}

type Client struct {
	log     *zap.Logger
	http    *http.Client
	baseURL *url.URL
	token   string
}

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api status %d", e.Code)
	}
	return fmt.Sprintf("api status %d: %s", e.Code, e.Body)
}

func IsSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// Do sends body as JSON and decodes a successful answer into out.
// The status code is returned whenever the API answered, even with an error.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) (int, error) {
	u, err := c.baseURL.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return 0, errors.Wrapf(err, "build url %s", path)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(body); err != nil {
			return 0, errors.Wrap(err, "encode request")
		}
		reader = b
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return 0, errors.Wrap(err, "new request")
	}
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	}
	if c.token != "" {
		req.Header.Set(AuthorizationHeader, Bearer+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "%s %s", method, u.Path)
	}
	defer resp.Body.Close()

	if !IsSuccess(resp.StatusCode) {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck
		return resp.StatusCode, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	if out == nil {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, errors.Wrapf(err, "decode %s %s", method, u.Path)
	}
	return resp.StatusCode, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) (int, error) {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) (int, error) {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body any) (int, error) {
	return c.Do(ctx, http.MethodPut, path, nil, body, nil)
}

func (c *Client) Delete(ctx context.Context, path string) (int, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Send performs a write and reports success by status class only.
// The response body is ignored; failures are logged.
func (c *Client) Send(ctx context.Context, method, path string, body any) bool {
	code, err := c.Do(ctx, method, path, nil, body, nil)
	if err != nil {
		c.log.Warn("api write failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", code),
			zap.Error(err))
		return false
	}
	return IsSuccess(code)
}

// Path joins escaped segments: Path("api/admin/users", 7) -> "api/admin/users/7".
func Path(base string, segments ...any) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(base, "/"))
	for _, s := range segments {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(fmt.Sprint(s)))
	}
	return sb.String()
}
