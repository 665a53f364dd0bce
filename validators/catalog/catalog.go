package catalogValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

// QuizSubmission is the validated quiz answer payload. Keys are question
// ids; values are the selected option id (decimal string) or free text.
type QuizSubmission struct {
	Answers map[uint]string `json:"answers"`
}

// ProgressRequest is the validated progress write payload. Pointer fields
// absent from the request are merged as "unchanged".
type ProgressRequest struct {
	VideoID       uint  `json:"video_id"`
	WatchedFully  *bool `json:"watched_fully"`
	QuizCompleted *bool `json:"quiz_completed"`
	QuizScore     *int  `json:"quiz_score"`
}

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuizSubmission)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if reqData.Answers == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Answers are required!", nil)
		}

		c.Locals("validatedQuizSubmission", reqData)
		return c.Next()
	}
}

func UpsertProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.VideoID == 0 {
			errors["video_id"] = "Video id is required!"
		}
		if reqData.QuizScore != nil && (*reqData.QuizScore < 0 || *reqData.QuizScore > 100) {
			errors["quiz_score"] = "Score must be between 0 and 100!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
