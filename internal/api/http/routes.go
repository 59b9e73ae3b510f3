package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-widget/internal/view"
)

// Widget is the part of the view controller the routes need.
type Widget interface {
	Submit(name string) view.Ticket
	State() view.ViewState
}

// RegisterRoutes wires the page and the JSON API into the Fiber app.
func RegisterRoutes(app *fiber.App, widget Widget, page *PageRenderer, cities []string) {
	app.Get("/", func(c *fiber.Ctx) error {
		body, err := page.Page(cities)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
		}
		c.Type("html", "utf-8")
		return c.Send(body)
	})

	// Select change, search button and Enter all post this form.
	app.Post("/lookup", func(c *fiber.Ctx) error {
		widget.Submit(c.FormValue("city"))
		return c.Redirect("/", fiber.StatusSeeOther)
	})

	v1 := app.Group("/api/v1")

	v1.Post("/lookup", func(c *fiber.Ctx) error {
		var req lookupRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		t := widget.Submit(req.City)

		// 202 only when a fetch is in flight; rejected input is final.
		status := fiber.StatusOK
		if t.Started {
			status = fiber.StatusAccepted
		}
		return c.Status(status).JSON(lookupResponse{Ticket: t, State: widget.State()})
	})

	v1.Get("/state", func(c *fiber.Ctx) error {
		return c.JSON(widget.State())
	})

	v1.Get("/cities", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"cities": cities,
		})
	})
}

// lookupRequest is the body of POST /api/v1/lookup.
type lookupRequest struct {
	City string `json:"city" form:"city"`
}

type lookupResponse struct {
	Ticket view.Ticket    `json:"ticket"`
	State  view.ViewState `json:"state"`
}
