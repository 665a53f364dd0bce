package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "lms/controllers/auth"
	"lms/middleware"
	authValidator "lms/validators/auth"
)

// SetupAuthRoutes sets up signup, signin and the current-user echo
func SetupAuthRoutes(app *fiber.App, ctrl *authController.Controller) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), ctrl.Signup)
	authGroup.Post("/signin", authValidator.Signin(), ctrl.Signin)
	authGroup.Get("/me", middleware.JWTMiddleware, ctrl.Me)
}
