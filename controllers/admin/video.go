package adminController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	"lms/utils"
	adminValidator "lms/validators/admin"
)

func (ct *Controller) ListVideos(c *fiber.Ctx) error {
	videos, err := ct.Admin.ListAllVideos()
	if err != nil {
		return middleware.ServiceError(c, err, "Video not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", videos)
}

func (ct *Controller) GetVideo(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video id!", nil)
	}

	video, err := ct.Admin.GetVideoForEdit(id)
	if err != nil {
		return middleware.ServiceError(c, err, "Video not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video fetched successfully!", video)
}

func (ct *Controller) CreateVideo(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVideo").(*adminValidator.VideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Prefill the thumbnail from YouTube when the admin left it blank. The
	// oEmbed lookup is best effort; the service falls back to the derived
	// thumbnail URL.
	if reqData.Thumbnail == "" {
		if meta, err := utils.FetchVideoMetadata(reqData.YoutubeURL); err == nil {
			reqData.Thumbnail = meta.ThumbnailURL
			if reqData.Title == "" {
				reqData.Title = meta.Title
			}
		} else {
			log.Printf("oEmbed lookup failed for %s: %v", reqData.YoutubeURL, err)
		}
	}

	video, err := ct.Admin.CreateVideo(videoInput(reqData))
	if err == services.ErrBadRequest {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid YouTube URL!", nil)
	}
	if err != nil {
		return middleware.ServiceError(c, err, "Video not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video created successfully!", video)
}

func (ct *Controller) UpdateVideo(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video id!", nil)
	}
	reqData, ok := c.Locals("validatedVideo").(*adminValidator.VideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	video, err := ct.Admin.UpdateVideo(id, videoInput(reqData))
	if err == services.ErrBadRequest {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid YouTube URL!", nil)
	}
	if err != nil {
		return middleware.ServiceError(c, err, "Video not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video updated successfully!", video)
}

func (ct *Controller) DeleteVideo(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video id!", nil)
	}

	if err := ct.Admin.DeleteVideo(id); err != nil {
		return middleware.ServiceError(c, err, "Video not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video deleted successfully!", nil)
}

func (ct *Controller) SaveQuiz(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video id!", nil)
	}
	reqData, ok := c.Locals("validatedQuiz").(*adminValidator.QuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ct.Admin.SaveQuiz(id, reqData.Questions, reqData.Publish); err != nil {
		return middleware.ServiceError(c, err, "Video not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz saved successfully!", nil)
}

func videoInput(reqData *adminValidator.VideoRequest) services.VideoInput {
	return services.VideoInput{
		Title:              reqData.Title,
		Description:        reqData.Description,
		YoutubeURL:         reqData.YoutubeURL,
		Thumbnail:          reqData.Thumbnail,
		Duration:           reqData.Duration,
		IsPublished:        reqData.IsPublished,
		RequiresCompletion: reqData.RequiresCompletion,
		DepartmentIDs:      reqData.DepartmentIDs,
		UserIDs:            reqData.UserIDs,
	}
}
