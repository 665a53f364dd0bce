package adminController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	adminValidator "lms/validators/admin"
)

func (ct *Controller) ListDepartments(c *fiber.Ctx) error {
	departments, err := ct.Admin.ListDepartments()
	if err != nil {
		return middleware.ServiceError(c, err, "Department not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Departments fetched successfully!", departments)
}

func (ct *Controller) CreateDepartment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDepartment").(*adminValidator.DepartmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	department, err := ct.Admin.CreateDepartment(reqData.Name, reqData.Code)
	if err == services.ErrConflict {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Code is already in use!", nil)
	}
	if err != nil {
		return middleware.ServiceError(c, err, "Department not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Department created successfully!", department)
}

func (ct *Controller) UpdateDepartment(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid department id!", nil)
	}
	reqData, ok := c.Locals("validatedDepartment").(*adminValidator.DepartmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	department, err := ct.Admin.UpdateDepartment(id, reqData.Name, reqData.Code)
	if err == services.ErrConflict {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Code is already in use by another department!", nil)
	}
	if err != nil {
		return middleware.ServiceError(c, err, "Department not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Department updated successfully!", department)
}

// DeleteDepartment refuses to remove a department that still has users.
func (ct *Controller) DeleteDepartment(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid department id!", nil)
	}

	err := ct.Admin.DeleteDepartment(id)
	if err == services.ErrConflict {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Cannot delete a department with linked users!", nil)
	}
	if err != nil {
		return middleware.ServiceError(c, err, "Department not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Department deleted successfully!", nil)
}
