package adminController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	"lms/utils"
	adminValidator "lms/validators/admin"
)

func (ct *Controller) ListUsers(c *fiber.Ctx) error {
	users, err := ct.Admin.ListUsers()
	if err != nil {
		return middleware.ServiceError(c, err, "User not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

func (ct *Controller) GetUser(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	user, err := ct.Admin.GetUser(id)
	if err != nil {
		return middleware.ServiceError(c, err, "User not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

func (ct *Controller) CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateUser").(*adminValidator.CreateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ct.Admin.CreateUser(services.CreateUserInput{
		Name:         reqData.Name,
		Email:        reqData.Email,
		Password:     reqData.Password,
		Role:         reqData.Role,
		IsSuperUser:  reqData.IsSuperUser,
		DepartmentID: reqData.DepartmentID,
	})
	if err == services.ErrConflict {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}
	if err != nil {
		return middleware.ServiceError(c, err, "User not found!")
	}

	go func(email, name, password string) {
		if err := utils.SendWelcomeEmail(email, name, password); err != nil {
			log.Printf("Error sending welcome email to %s: %v", email, err)
		}
	}(user.Email, user.Name, reqData.Password)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", user)
}

func (ct *Controller) UpdateUser(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}
	reqData, ok := c.Locals("validatedUpdateUser").(*adminValidator.UpdateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ct.Admin.UpdateUser(id, services.UpdateUserInput{
		Name:         reqData.Name,
		Email:        reqData.Email,
		Password:     reqData.Password,
		Role:         reqData.Role,
		IsSuperUser:  reqData.IsSuperUser,
		DepartmentID: reqData.DepartmentID,
	})
	if err == services.ErrConflict {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered by another user!", nil)
	}
	if err != nil {
		return middleware.ServiceError(c, err, "User not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
}

func (ct *Controller) DeleteUser(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	if err := ct.Admin.DeleteUser(id); err != nil {
		return middleware.ServiceError(c, err, "User not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}
