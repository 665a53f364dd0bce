package adminValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

// VideoRequest is the validated video create/update payload. A supplied grant
// list is the complete desired set and replaces the stored one wholesale; an
// omitted list keeps the stored rows, same as playlists.
type VideoRequest struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	YoutubeURL         string `json:"youtube_url"`
	Thumbnail          string `json:"thumbnail"`
	Duration           int    `json:"duration"`
	IsPublished        *bool  `json:"is_published"`
	RequiresCompletion *bool  `json:"requires_completion"`
	DepartmentIDs      []uint `json:"department_ids"`
	UserIDs            []uint `json:"user_ids"`
}

func CreateVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VideoRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.YoutubeURL == "" {
			errors["youtube_url"] = "YouTube URL is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideo", reqData)
		return c.Next()
	}
}

func UpdateVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VideoRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedVideo", reqData)
		return c.Next()
	}
}
