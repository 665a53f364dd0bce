package catalogController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	catalogValidator "lms/validators/catalog"
)

// Controller serves the learner-facing catalog, quiz and progress endpoints.
type Controller struct {
	Catalog  *services.CatalogService
	Progress *services.ProgressService
	Quiz     *services.QuizService
}

func New(catalog *services.CatalogService, progress *services.ProgressService, quiz *services.QuizService) *Controller {
	return &Controller{Catalog: catalog, Progress: progress, Quiz: quiz}
}

// ListVideos returns the videos visible to the caller. Guests see public
// content; nothing visible is an empty list, not an error.
func (ct *Controller) ListVideos(c *fiber.Ctx) error {
	videos, err := ct.Catalog.ListVideos(middleware.Principal(c))
	if err != nil {
		return middleware.ServiceError(c, err, "Video not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", videos)
}

func (ct *Controller) GetVideo(c *fiber.Ctx) error {
	videoID, err := c.ParamsInt("id")
	if err != nil || videoID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video id!", nil)
	}

	video, err := ct.Catalog.GetVideo(middleware.Principal(c), uint(videoID))
	if err != nil {
		return middleware.ServiceError(c, err, "Video not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video fetched successfully!", video)
}

func (ct *Controller) ListPlaylists(c *fiber.Ctx) error {
	playlists, err := ct.Catalog.ListPlaylists(middleware.Principal(c))
	if err != nil {
		return middleware.ServiceError(c, err, "Playlist not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Playlists fetched successfully!", playlists)
}

// SubmitQuiz grades a submission. Guests get their score back but nothing is
// persisted for them.
func (ct *Controller) SubmitQuiz(c *fiber.Ctx) error {
	videoID, err := c.ParamsInt("id")
	if err != nil || videoID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video id!", nil)
	}

	reqData, ok := c.Locals("validatedQuizSubmission").(*catalogValidator.QuizSubmission)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := ct.Quiz.Submit(middleware.Principal(c), uint(videoID), reqData.Answers)
	if err != nil {
		return middleware.ServiceError(c, err, "Video not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", result)
}

// GetProgress returns stored progress; guests get the "not started" shape.
func (ct *Controller) GetProgress(c *fiber.Ctx) error {
	videoID := c.QueryInt("videoId")
	if videoID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "videoId is required!", nil)
	}

	progress, err := ct.Progress.Get(middleware.Principal(c), uint(videoID))
	if err != nil {
		return middleware.ServiceError(c, err, "Video not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}

// UpsertProgress merges a partial progress update for the caller.
func (ct *Controller) UpsertProgress(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgress").(*catalogValidator.ProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	progress, err := ct.Progress.Upsert(middleware.Principal(c), reqData.VideoID, services.ProgressUpdate{
		WatchedFully:  reqData.WatchedFully,
		QuizCompleted: reqData.QuizCompleted,
		QuizScore:     reqData.QuizScore,
	})
	if err != nil {
		return middleware.ServiceError(c, err, "Video not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated!", progress)
}

// RecordWatchEnd marks the video fully watched for the caller.
func (ct *Controller) RecordWatchEnd(c *fiber.Ctx) error {
	videoID, err := c.ParamsInt("id")
	if err != nil || videoID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video id!", nil)
	}

	progress, err := ct.Progress.RecordWatchEnd(middleware.Principal(c), uint(videoID))
	if err != nil {
		return middleware.ServiceError(c, err, "Video not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated!", progress)
}
