package handlers

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Flash is a one-shot notification carried across a redirect in a cookie.
type Flash struct {
	Level   string `json:"level"` // success | error | info
	Title   string `json:"title"`
	Message string `json:"message"`
}

func setFlash(c *fiber.Ctx, f Flash) {
	b, _ := json.Marshal(f)
	c.Cookie(&fiber.Cookie{
		Name:     "flash",
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func takeFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies("flash")
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:     "flash",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var f Flash
	if json.Unmarshal(b, &f) != nil {
		return nil
	}
	return &f
}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	if f := takeFlash(c); f != nil {
		data["Flash"] = f
	}
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}
