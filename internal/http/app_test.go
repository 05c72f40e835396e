package handlers_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"decoyauction/internal/config"
	"decoyauction/internal/http/handlers"
	"decoyauction/internal/repos"
	"decoyauction/internal/services"
	"decoyauction/internal/ws"
)

// newTestApp wires the app the way main does, on an in-memory database with
// the default seed data (three demo cars, two admin accounts, one buyer).
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{AdminEmails: config.ParseAdminEmails("")}

	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}
	isAdmin := services.NewAllowlistPolicy(cfg.AdminEmails)

	hub := ws.NewHub()
	go hub.Run()

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	deps := handlers.NewDeps(db, cfg, hub)
	app.Get("/", deps.CarHandler.Index)
	app.Get("/car/:id", deps.CarHandler.Detail)
	app.Get("/contact", handlers.Contact)
	app.Post("/car/:id/order", deps.OrderHandler.Place)

	app.Get("/admin", deps.AdminHandler.Panel)
	app.Post("/admin/login", authH.Login)
	app.Post("/admin/logout", authH.Logout)

	gate := handlers.RequireAdmin(authSvc, isAdmin)
	app.Post("/admin/cars", gate, deps.AdminHandler.CreateCar)
	app.Post("/admin/cars/:id", gate, deps.AdminHandler.UpdateCar)
	app.Post("/admin/cars/:id/delete", gate, deps.AdminHandler.DeleteCar)
	app.Get("/admin/orders", gate, deps.AdminHandler.OrdersJSON)

	return app, db
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// decodeFlash unpacks the one-shot notification cookie set on redirects.
func decodeFlash(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	raw := extractCookie(resp, "flash")
	if raw == "" {
		return nil
	}
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		t.Fatalf("decode flash cookie: %v", err)
	}
	var f map[string]string
	if err := json.Unmarshal(b, &f); err != nil {
		t.Fatalf("unmarshal flash cookie: %v", err)
	}
	return f
}

func testTimeout(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}
