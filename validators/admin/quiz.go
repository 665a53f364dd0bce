package adminValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models/catalog"
	"lms/services"
)

// QuizRequest is the validated quiz authoring payload. The question list
// fully replaces the video's existing set.
type QuizRequest struct {
	Questions []services.QuestionInput `json:"questions"`
	Publish   bool                     `json:"publish"`
}

func SaveQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		for i, q := range reqData.Questions {
			if q.Text == "" {
				errors["questions"] = "Question text is required!"
				break
			}
			if q.Type == catalog.QuestionMultipleChoice || q.Type == "" {
				correct := 0
				for _, o := range q.Options {
					if o.IsCorrect {
						correct++
					}
				}
				if correct > 1 {
					errors["questions"] = "A question may have at most one correct option!"
					break
				}
				if len(reqData.Questions[i].Options) < 2 {
					errors["questions"] = "Multiple choice questions need at least two options!"
					break
				}
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
