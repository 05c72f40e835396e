package handlers

import (
	applog "decoyauction/internal/log"
	"decoyauction/internal/services"
	"decoyauction/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CarHandler struct {
	Catalog *services.CatalogService
}

// Index lists every car, newest first.
func (h *CarHandler) Index(c *fiber.Ctx) error {
	cars, err := h.Catalog.ListCars()
	if err != nil {
		applog.Error(c, "cars.list.fail", err, nil)
		return render(c, "home", fiber.Map{
			"LoadErr": "Error fetching cars: " + err.Error(),
		})
	}
	return render(c, "home", fiber.Map{"Cars": cars})
}

// Detail shows one car; an unknown id redirects home with a notification.
func (h *CarHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "car"})
		setFlash(c, Flash{Level: "error", Title: "Error fetching car details", Message: "Car not found."})
		return c.Redirect("/")
	}
	car, err := h.Catalog.GetCar(id)
	if err != nil {
		setFlash(c, Flash{Level: "error", Title: "Error fetching car details", Message: "Car not found."})
		return c.Redirect("/")
	}
	return render(c, "car", fiber.Map{"Car": car, "Phone": "", "ShowOrder": false})
}

func Contact(c *fiber.Ctx) error {
	return render(c, "contact", fiber.Map{})
}
