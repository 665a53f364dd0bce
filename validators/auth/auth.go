package authValidator

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

var validate = validator.New()

// SignupRequest is the validated signup payload.
type SignupRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	DepartmentCode string `json:"department_code"`
}

// SigninRequest is the validated signin payload.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := structErrors(reqData)

		if reqData.Password != "" {
			if msg := passwordRuleError(reqData.Password); msg != "" {
				errors["password"] = msg
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

func Signin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SigninRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := structErrors(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignin", reqData)
		return c.Next()
	}
}

// passwordRuleError enforces the password policy: at least 8 characters, one
// uppercase letter and one digit.
func passwordRuleError(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters long!"
	}
	hasUpper := false
	hasDigit := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasUpper {
		return "Password must contain at least one uppercase letter!"
	}
	if !hasDigit {
		return "Password must contain at least one number!"
	}
	return ""
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
			default:
				errors[field] = "Invalid value!"
			}
		}
	}
	return errors
}
