package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	flashCookie = "flash"
	flashMaxAge = 60

	flashSuccess = "success"
	flashError   = "error"
)

// flash is a one-shot message carried across a redirect.
type flash struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func (h *Handler) setFlash(c echo.Context, kind, text string) {
	data, err := json.Marshal(flash{Kind: kind, Text: text})
	if err != nil {
		return
	}
	c.SetCookie(h.flashCookie(base64.RawURLEncoding.EncodeToString(data), flashMaxAge))
}

func (h *Handler) popFlash(c echo.Context) *flash {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(h.flashCookie("", -1))

	data, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var f flash
	if err := json.Unmarshal(data, &f); err != nil || f.Text == "" {
		return nil
	}
	return &f
}

func (h *Handler) flashCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.sessions.Secure(),
		SameSite: http.SameSiteStrictMode,
	}
}
