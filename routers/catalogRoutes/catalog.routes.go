package catalogRoutes

import (
	"github.com/gofiber/fiber/v2"

	catalogController "lms/controllers/catalog"
	"lms/middleware"
	catalogValidator "lms/validators/catalog"
)

// SetupCatalogRoutes sets up the learner-facing catalog, quiz and progress
// routes. Listings take an optional token so guests can browse public
// content; progress writes require one.
func SetupCatalogRoutes(app *fiber.App, ctrl *catalogController.Controller) {
	videoGroup := app.Group("/videos")

	videoGroup.Get("/", middleware.OptionalJWTMiddleware, ctrl.ListVideos)
	videoGroup.Get("/:id", middleware.OptionalJWTMiddleware, ctrl.GetVideo)

	// Quiz submission: guests get an ephemeral score, signed-in users get
	// their progress recorded.
	videoGroup.Post("/:id/quiz/submit", middleware.OptionalJWTMiddleware, catalogValidator.SubmitQuiz(), ctrl.SubmitQuiz)
	videoGroup.Post("/:id/watch-end", middleware.JWTMiddleware, ctrl.RecordWatchEnd)

	app.Get("/playlists", middleware.OptionalJWTMiddleware, ctrl.ListPlaylists)

	progressGroup := app.Group("/video-progress")
	progressGroup.Get("/", middleware.OptionalJWTMiddleware, ctrl.GetProgress)
	progressGroup.Post("/", middleware.JWTMiddleware, catalogValidator.UpsertProgress(), ctrl.UpsertProgress)
}
