package adminValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

// CreateUserRequest is the validated admin user-creation payload.
type CreateUserRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Role         string `json:"role" validate:"omitempty,oneof=ADMIN WORKER CUSTOMER"`
	IsSuperUser  bool   `json:"is_super_user"`
	DepartmentID uint   `json:"department_id"`
}

// UpdateUserRequest is the validated admin user-update payload. Empty
// strings keep stored values; an empty password never clears the hash.
type UpdateUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email" validate:"omitempty,email"`
	Password     string `json:"password" validate:"omitempty,min=8"`
	Role         string `json:"role" validate:"omitempty,oneof=ADMIN WORKER CUSTOMER"`
	IsSuperUser  *bool  `json:"is_super_user"`
	DepartmentID *uint  `json:"department_id"`
}

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := structErrors(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateUser", reqData)
		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := structErrors(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateUser", reqData)
		return c.Next()
	}
}
