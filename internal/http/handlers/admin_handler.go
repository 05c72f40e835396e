package handlers

import (
	"decoyauction/internal/domain"
	applog "decoyauction/internal/log"
	"decoyauction/internal/repos"
	"decoyauction/internal/services"
	"decoyauction/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Catalog *services.CatalogService
	Orders  *repos.OrderRepo
	IsAdmin services.AdminPolicy
}

// Panel renders the management view for allow-listed admins and the login
// form for everyone else. An authenticated but non-allow-listed account gets
// the login form too: authorization is independent of authentication.
func (h *AdminHandler) Panel(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if !h.IsAdmin(u) {
		return render(c, "admin_login", fiber.Map{})
	}

	cars, err := h.Catalog.ListCars()
	if err != nil {
		applog.Error(c, "admin.cars.list.fail", err, nil)
		return render(c, "admin", fiber.Map{"LoadErr": "Error fetching cars: " + err.Error()})
	}
	orders, err := h.Orders.ListWithCars()
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return render(c, "admin", fiber.Map{"Cars": cars, "LoadErr": "Error fetching orders: " + err.Error()})
	}

	data := fiber.Map{"Cars": cars, "Orders": orders}
	if c.Query("new") != "" {
		data["ShowForm"] = true
		data["Form"] = fiber.Map{"Name": "", "Description": "", "Price": "", "ImageURL": "", "Country": ""}
	} else if eid, ok := validate.ID(c.Query("edit")); ok {
		if car, err := h.Catalog.GetCar(eid); err == nil {
			data["ShowForm"] = true
			data["EditID"] = car.ID
			data["Form"] = fiber.Map{
				"Name":        car.Name,
				"Description": car.Description,
				"Price":       car.Price,
				"ImageURL":    car.ImageURL,
				"Country":     car.Country,
			}
		}
	}
	return render(c, "admin", data)
}

// carForm validates the shared create/update form. On failure it returns a
// field-level message so the form can re-render with the input retained.
func carForm(c *fiber.Ctx) (services.CarInput, string) {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return services.CarInput{}, "Car name is required (max 100 characters)."
	}
	desc, ok := validate.Text(c.FormValue("description"), 2000)
	if !ok {
		return services.CarInput{}, "Description is required."
	}
	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return services.CarInput{}, "Price must be a positive number."
	}
	img, ok := validate.ImageURL(c.FormValue("image_url"))
	if !ok {
		return services.CarInput{}, "Image URL must be an absolute http(s) URL."
	}
	country, ok := validate.Text(c.FormValue("country"), 56)
	if !ok {
		return services.CarInput{}, "Country is required."
	}
	return services.CarInput{Name: name, Description: desc, Price: price, ImageURL: img, Country: country}, ""
}

func (h *AdminHandler) formValues(c *fiber.Ctx) fiber.Map {
	return fiber.Map{
		"Name":        c.FormValue("name"),
		"Description": c.FormValue("description"),
		"Price":       c.FormValue("price"),
		"ImageURL":    c.FormValue("image_url"),
		"Country":     c.FormValue("country"),
	}
}

// renderPanelWithForm re-renders the panel with the car form open, keeping
// the submitted values for correction.
func (h *AdminHandler) renderPanelWithForm(c *fiber.Ctx, editID, formErr string) error {
	cars, _ := h.Catalog.ListCars()
	orders, _ := h.Orders.ListWithCars()
	return c.Status(fiber.StatusBadRequest).Render("admin", fiber.Map{
		"Cars":      cars,
		"Orders":    orders,
		"User":      c.Locals("user"),
		"ShowForm":  true,
		"EditID":    editID,
		"FormErr":   formErr,
		"Form":      h.formValues(c),
		"CSRFToken": csrfToken(c),
	})
}

// POST /admin/cars
func (h *AdminHandler) CreateCar(c *fiber.Ctx) error {
	in, msg := carForm(c)
	if msg != "" {
		applog.Security(c, "validation.fail", map[string]any{"form": "car.create"})
		return h.renderPanelWithForm(c, "", msg)
	}
	car, err := h.Catalog.CreateCar(in)
	if err != nil {
		applog.Error(c, "admin.cars.create.fail", err, nil)
		setFlash(c, Flash{Level: "error", Title: "Error adding car", Message: err.Error()})
		return c.Redirect("/admin")
	}
	applog.Audit(c, "admin.cars.create", map[string]any{"car_id": car.ID})
	setFlash(c, Flash{Level: "success", Title: "Car Added!", Message: "New car has been added to the auction."})
	return c.Redirect("/admin")
}

// POST /admin/cars/:id
func (h *AdminHandler) UpdateCar(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid car id")
	}
	in, msg := carForm(c)
	if msg != "" {
		applog.Security(c, "validation.fail", map[string]any{"form": "car.update"})
		return h.renderPanelWithForm(c, id, msg)
	}
	car, err := h.Catalog.UpdateCar(id, in)
	if err != nil {
		applog.Error(c, "admin.cars.update.fail", err, map[string]any{"car_id": id})
		setFlash(c, Flash{Level: "error", Title: "Error updating car", Message: err.Error()})
		return c.Redirect("/admin")
	}
	applog.Audit(c, "admin.cars.update", map[string]any{"car_id": car.ID})
	setFlash(c, Flash{Level: "success", Title: "Car Updated!", Message: "Car details have been updated."})
	return c.Redirect("/admin")
}

// POST /admin/cars/:id/delete
func (h *AdminHandler) DeleteCar(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid car id")
	}
	if err := h.Catalog.DeleteCar(id); err != nil {
		applog.Error(c, "admin.cars.delete.fail", err, map[string]any{"car_id": id})
		setFlash(c, Flash{Level: "error", Title: "Error deleting car", Message: err.Error()})
		return c.Redirect("/admin")
	}
	applog.Audit(c, "admin.cars.delete", map[string]any{"car_id": id})
	setFlash(c, Flash{Level: "success", Title: "Car Deleted!", Message: "Car has been removed from the auction."})
	return c.Redirect("/admin")
}

// OrdersJSON is the reconcile fetch: the full order board with joined car
// fields, replacing whatever the push payload seeded client-side.
func (h *AdminHandler) OrdersJSON(c *fiber.Ctx) error {
	orders, err := h.Orders.ListWithCars()
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load orders"})
	}
	rows := make([]fiber.Map, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, fiber.Map{
			"id":           o.ID,
			"car_id":       o.CarID,
			"phone_number": o.PhoneNumber,
			"created_at":   o.CreatedAt,
			"car_name":     o.DisplayCarName(),
			"car_price":    o.DisplayCarPrice(),
			"car_found":    o.CarName.Valid,
		})
	}
	return c.JSON(fiber.Map{"orders": rows})
}
