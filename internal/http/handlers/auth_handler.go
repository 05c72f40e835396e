package handlers

import (
	"time"

	applog "decoyauction/internal/log"
	"decoyauction/internal/services"
	"decoyauction/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // set true behind HTTPS
		})
	}
	return sid
}

// Login handles POST /admin/login. Authentication only; whether the account
// may manage anything is the allow-list policy's call on the next render.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).Render("admin_login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": csrfToken(c)})
	}
	if !validate.Password(pass) {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_password_format"})
		return c.Status(fiber.StatusUnauthorized).Render("admin_login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": csrfToken(c)})
	}

	if _, err := h.Auth.Login(sid, email, pass); err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("admin_login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": csrfToken(c)})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	setFlash(c, Flash{Level: "success", Title: "Welcome Admin!", Message: "Successfully logged in."})
	return c.Redirect("/admin")
}

// Logout invalidates the session; the admin page's push subscription dies
// with the connection when the browser leaves the page.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	setFlash(c, Flash{Level: "info", Title: "Logged Out", Message: "Successfully logged out from admin panel."})
	return c.Redirect("/admin")
}
