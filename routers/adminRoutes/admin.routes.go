package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	adminController "lms/controllers/admin"
	"lms/middleware"
	adminValidator "lms/validators/admin"
)

// SetupAdminRoutes sets up the admin CRUD surface. Every route requires an
// authenticated admin (role ADMIN or superuser).
func SetupAdminRoutes(app *fiber.App, ctrl *adminController.Controller) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/stats", ctrl.Stats)

	deptGroup := adminGroup.Group("/departments")
	deptGroup.Get("/", ctrl.ListDepartments)
	deptGroup.Post("/", adminValidator.Department(), ctrl.CreateDepartment)
	deptGroup.Put("/:id", adminValidator.Department(), ctrl.UpdateDepartment)
	deptGroup.Delete("/:id", ctrl.DeleteDepartment)

	userGroup := adminGroup.Group("/users")
	userGroup.Get("/", ctrl.ListUsers)
	userGroup.Get("/:id", ctrl.GetUser)
	userGroup.Post("/", adminValidator.CreateUser(), ctrl.CreateUser)
	userGroup.Put("/:id", adminValidator.UpdateUser(), ctrl.UpdateUser)
	userGroup.Delete("/:id", ctrl.DeleteUser)

	videoGroup := adminGroup.Group("/videos")
	videoGroup.Get("/", ctrl.ListVideos)
	videoGroup.Get("/:id", ctrl.GetVideo)
	videoGroup.Post("/", adminValidator.CreateVideo(), ctrl.CreateVideo)
	videoGroup.Put("/:id", adminValidator.UpdateVideo(), ctrl.UpdateVideo)
	videoGroup.Delete("/:id", ctrl.DeleteVideo)
	videoGroup.Post("/:id/quiz", adminValidator.SaveQuiz(), ctrl.SaveQuiz)

	playlistGroup := adminGroup.Group("/playlists")
	playlistGroup.Get("/", ctrl.ListPlaylists)
	playlistGroup.Get("/:id", ctrl.GetPlaylist)
	playlistGroup.Post("/", adminValidator.CreatePlaylist(), ctrl.CreatePlaylist)
	playlistGroup.Put("/:id", adminValidator.UpdatePlaylist(), ctrl.UpdatePlaylist)
	playlistGroup.Delete("/:id", ctrl.DeletePlaylist)
}
