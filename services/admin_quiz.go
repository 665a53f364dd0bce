package services

import (
	"errors"

	"gorm.io/gorm"

	"lms/models/catalog"
)

// QuestionInput is one authored quiz question with its options.
type QuestionInput struct {
	Text    string        `json:"text"`
	Type    string        `json:"type"`
	Order   int           `json:"order"`
	Options []OptionInput `json:"options"`
}

// OptionInput is one authored answer choice.
type OptionInput struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// SaveQuiz replaces a video's entire question set with the submitted one.
// Existing questions and their options are deleted and the new list created
// in order, all in a single transaction. Publishing the video is an optional
// side effect of the same call.
func (s *AdminService) SaveQuiz(videoID uint, questions []QuestionInput, publish bool) error {
	var video catalog.Video
	if err := s.db.First(&video, videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteVideoQuestions(tx, videoID); err != nil {
			return err
		}

		for _, q := range questions {
			qType := q.Type
			if qType != catalog.QuestionTextInput {
				qType = catalog.QuestionMultipleChoice
			}
			question := catalog.QuizQuestion{
				VideoID: videoID,
				Text:    q.Text,
				Type:    qType,
				Order:   q.Order,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			for _, o := range q.Options {
				option := catalog.QuizOption{
					QuestionID: question.ID,
					Text:       o.Text,
					IsCorrect:  o.IsCorrect,
				}
				if err := tx.Create(&option).Error; err != nil {
					return err
				}
			}
		}

		if publish && !video.IsPublished {
			video.IsPublished = true
			return tx.Save(&video).Error
		}
		return nil
	})
}
