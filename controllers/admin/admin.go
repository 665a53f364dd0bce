package adminController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
)

// Controller serves the admin CRUD surface. Routes wrap it with the
// admin-only middleware, so handlers assume an authorized principal.
type Controller struct {
	Admin *services.AdminService
}

func New(admin *services.AdminService) *Controller {
	return &Controller{Admin: admin}
}

// Stats feeds the dashboard widgets.
func (ct *Controller) Stats(c *fiber.Ctx) error {
	stats, err := ct.Admin.Stats()
	if err != nil {
		return middleware.ServiceError(c, err, "Stats not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", stats)
}

func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}
