package adminValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

var validate = validator.New()

// DepartmentRequest is the validated department create/update payload.
type DepartmentRequest struct {
	Name string `json:"name" validate:"required,min=2"`
	Code string `json:"code" validate:"required,min=2,max=20"`
}

func Department() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DepartmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Code = strings.ToUpper(strings.TrimSpace(reqData.Code))
		if errors := structErrors(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDepartment", reqData)
		return c.Next()
	}
}

func structErrors(s interface{}) map[string]string {
	errors := make(map[string]string)
	if err := validate.Struct(s); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				errors[field] = "This field is required!"
			case "email":
				errors[field] = "Invalid email format!"
			case "min":
				errors[field] = "Value is too short!"
			case "max":
				errors[field] = "Value is too long!"
			case "oneof":
				errors[field] = "Invalid value!"
			default:
				errors[field] = "Invalid value!"
			}
		}
	}
	return errors
}
