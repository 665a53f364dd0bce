package authController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	authValidator "lms/validators/auth"
)

// Controller serves signup, signin and the current-principal echo.
type Controller struct {
	Auth *services.AuthService
}

func New(auth *services.AuthService) *Controller {
	return &Controller{Auth: auth}
}

func (ct *Controller) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ct.Auth.Signup(services.SignupInput{
		Name:           reqData.Name,
		Email:          reqData.Email,
		Password:       reqData.Password,
		DepartmentCode: reqData.DepartmentCode,
	})
	if err == services.ErrConflict {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}
	if err == services.ErrBadRequest {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid department code!", nil)
	}
	if err != nil {
		return middleware.ServiceError(c, err, "User not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

func (ct *Controller) Signin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignin").(*authValidator.SigninRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, principal, err := ct.Auth.Signin(reqData.Email, reqData.Password)
	if err == services.ErrUnauthorized {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}
	if err != nil {
		return middleware.ServiceError(c, err, "User not found!")
	}

	token, err := middleware.GenerateJWT(principal)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign in!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Signed in successfully.", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":            user.ID,
			"name":          user.Name,
			"email":         user.Email,
			"role":          user.Role,
			"is_super_user": user.IsSuperUser,
			"departments":   principal.Departments,
		},
	})
}

// Me echoes the authenticated principal back to the client.
func (ct *Controller) Me(c *fiber.Ctx) error {
	principal := middleware.Principal(c)
	if principal == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Authenticated.", fiber.Map{
		"user_id":       principal.UserID,
		"email":         principal.Email,
		"role":          principal.Role,
		"is_super_user": principal.IsSuperUser,
		"departments":   principal.Departments,
	})
}
