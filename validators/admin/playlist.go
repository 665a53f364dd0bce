package adminValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

// PlaylistRequest is the validated playlist create/update payload. VideoIDs
// order defines playback order; nil lists on update keep the stored rows.
type PlaylistRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Thumbnail     string `json:"thumbnail"`
	IsPublished   *bool  `json:"is_published"`
	VideoIDs      []uint `json:"video_ids"`
	DepartmentIDs []uint `json:"department_ids"`
}

func CreatePlaylist() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PlaylistRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Title == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
		}

		c.Locals("validatedPlaylist", reqData)
		return c.Next()
	}
}

func UpdatePlaylist() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PlaylistRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedPlaylist", reqData)
		return c.Next()
	}
}
