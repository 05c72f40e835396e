package handlers

import (
	"errors"
	"fmt"

	applog "decoyauction/internal/log"
	"decoyauction/internal/services"
	"decoyauction/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Catalog *services.CatalogService
	Orders  *services.OrderService
}

// Place handles POST /car/:id/order: one phone-number submission becomes one
// order record. A malformed phone never reaches the store; the form re-renders
// with the input retained.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		setFlash(c, Flash{Level: "error", Title: "Order Failed", Message: "Car not found."})
		return c.Redirect("/")
	}
	phone := c.FormValue("phone_number")

	order, car, err := h.Orders.Place(id, phone)
	switch {
	case errors.Is(err, services.ErrBadPhone):
		applog.Security(c, "validation.fail", map[string]any{"field": "phone_number"})
		car, gerr := h.Catalog.GetCar(id)
		if gerr != nil {
			setFlash(c, Flash{Level: "error", Title: "Order Failed", Message: "Car not found."})
			return c.Redirect("/")
		}
		return c.Status(fiber.StatusBadRequest).Render("car", fiber.Map{
			"Car":       car,
			"OrderErr":  err.Error(),
			"Phone":     phone,
			"ShowOrder": true,
			"CSRFToken": csrfToken(c),
		})
	case errors.Is(err, services.ErrCarNotFound):
		setFlash(c, Flash{Level: "error", Title: "Order Failed", Message: "Car not found."})
		return c.Redirect("/")
	case err != nil:
		applog.Error(c, "order.place.fail", err, map[string]any{"car_id": id})
		setFlash(c, Flash{Level: "error", Title: "Order Failed", Message: err.Error()})
		return c.Redirect("/car/" + id)
	}

	applog.Audit(c, "order.place", map[string]any{"order_id": order.ID, "car_id": car.ID})
	setFlash(c, Flash{
		Level:   "success",
		Title:   "Order Submitted!",
		Message: fmt.Sprintf("Your order for %s has been received. Our team will contact you at %s shortly.", car.Name, order.PhoneNumber),
	})
	return c.Redirect("/car/" + id)
}

func csrfToken(c *fiber.Ctx) string {
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		return tok
	}
	return c.Cookies("csrf_")
}
