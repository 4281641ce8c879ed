package session

import (
	"crypto/rand"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/bookstore-storefront/pkg/openid"
	"github.com/Astemirdum/bookstore-storefront/storefront/config"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/apiclient"
)

const (
	TokenCookieName     = apiclient.TokenCookieName
	PrincipalCookieName = "storefront_session"

	issuer = "storefront"
)

type claims struct {
	UserID int    `json:"uid"`
	Login  string `json:"login"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

// Manager writes and reads the two auth cookies: the backend token and a
// signed principal built from it.
type Manager struct {
	secret    []byte
	bearerKey []byte
	ttl       time.Duration
	secure    bool
	now       func() time.Time
}

// NewManager builds a Manager. An empty secret gets a random key, so
// sessions do not survive a restart.
func NewManager(cfg config.Session) (*Manager, error) {
	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := io.ReadFull(rand.Reader, secret); err != nil {
			return nil, errors.Wrap(err, "generate session secret")
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	m := &Manager{
		secret: secret,
		ttl:    ttl,
		secure: cfg.Secure,
		now:    time.Now,
	}
	if cfg.BearerKey != "" {
		m.bearerKey = []byte(cfg.BearerKey)
	}
	return m, nil
}

// Secure reports whether cookies are marked Secure.
func (m *Manager) Secure() bool {
	return m.secure
}

// SignIn stores token and a signed principal, both expiring after the TTL.
func (m *Manager) SignIn(w http.ResponseWriter, token string, p Principal) error {
	if token == "" {
		return errors.New("sign in: empty token")
	}
	if p.Login == "" {
		return errors.New("sign in: empty login")
	}
	now := m.now()
	expires := now.Add(m.ttl)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: p.UserID,
		Login:  p.Login,
		Role:   p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   p.Login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}).SignedString(m.secret)
	if err != nil {
		return errors.Wrap(err, "sign principal")
	}

	http.SetCookie(w, m.cookie(TokenCookieName, token, expires))
	http.SetCookie(w, m.cookie(PrincipalCookieName, signed, expires))
	return nil
}

func (m *Manager) SignOut(w http.ResponseWriter) {
	for _, name := range []string{TokenCookieName, PrincipalCookieName} {
		c := m.cookie(name, "", time.Unix(0, 0))
		c.MaxAge = -1
		http.SetCookie(w, c)
	}
}

func (m *Manager) cookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// Resolve works out who is calling. A bearer header wins over cookies,
// the same order apiclient.TokenFromRequest forwards in; a missing,
// tampered or expired principal cookie is Anonymous.
func (m *Manager) Resolve(r *http.Request) (Principal, State) {
	if token := apiclient.BearerToken(r); token != "" {
		return m.bearerPrincipal(token), BearerForwarded
	}

	c, err := r.Cookie(PrincipalCookieName)
	if err != nil || c.Value == "" {
		return Principal{}, Anonymous
	}
	p, err := m.parse(c.Value)
	if err != nil {
		return Principal{}, Anonymous
	}
	return p, Cookie
}

func (m *Manager) parse(value string) (Principal, error) {
	var cl claims
	t, err := jwt.ParseWithClaims(value, &cl, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Principal{}, errors.Wrap(err, "parse principal")
	}
	if !t.Valid || cl.Login == "" {
		return Principal{}, errors.New("principal is invalid")
	}
	return Principal{UserID: cl.UserID, Login: cl.Login, Role: ParseRole(string(cl.Role))}, nil
}

// bearerPrincipal reads identity from a forwarded token only when it can
// be verified; otherwise the caller stays unnamed and the backend decides.
func (m *Manager) bearerPrincipal(token string) Principal {
	if m.bearerKey == nil {
		return Principal{}
	}
	h, err := openid.ParseHS256(token, m.bearerKey)
	if err != nil {
		return Principal{}
	}
	p := Principal{UserID: h.GetUserID(), Login: h.GetName(), Role: RoleCustomer}
	for _, r := range h.Roles() {
		if ParseRole(r) == RoleAdmin {
			p.Role = RoleAdmin
			break
		}
	}
	if p.Login == "" {
		return Principal{}
	}
	return p
}
