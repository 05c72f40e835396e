package handlers

import (
	"strings"

	applog "decoyauction/internal/log"
	"decoyauction/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin gates management routes behind the injected allow-list
// policy. GET /admin itself stays open so it can render the login form;
// everything under it goes through here.
func RequireAdmin(auth *services.AuthService, isAdmin services.AdminPolicy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := auth.CurrentUser(sid); err == nil && isAdmin(u) {
				c.Locals("user", u)
				return c.Next()
			}
		}
		applog.Security(c, "access.denied.admin", nil)
		// fetch/subscribe endpoints answer JSON; page routes fall back to the login form
		if c.Get("Upgrade") != "" || strings.HasPrefix(c.Path(), "/admin/orders") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
		}
		return c.Redirect("/admin")
	}
}
