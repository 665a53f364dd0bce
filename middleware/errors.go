package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/services"
)

// ServiceError maps a service-layer error to the matching HTTP response.
// Anything outside the taxonomy is a storage or programming failure and
// surfaces as a 500; an empty result never lands here.
func ServiceError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, notFoundMsg, nil)
	case errors.Is(err, services.ErrForbidden):
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	case errors.Is(err, services.ErrUnauthorized):
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	case errors.Is(err, services.ErrConflict):
		return JsonResponse(c, fiber.StatusConflict, false, "Conflict with existing data!", nil)
	case errors.Is(err, services.ErrBadRequest):
		return JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	default:
		log.Printf("Internal error: %v", err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Internal server error!", nil)
	}
}
