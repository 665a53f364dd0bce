package services

import (
	"errors"

	"gorm.io/gorm"

	"lms/access"
	"lms/models/catalog"
	"lms/quiz"
)

// QuizService grades submissions and writes the outcome through the progress
// tracker.
type QuizService struct {
	db       *gorm.DB
	progress *ProgressService
}

func NewQuizService(db *gorm.DB, progress *ProgressService) *QuizService {
	return &QuizService{db: db, progress: progress}
}

// SubmitResult is the graded outcome returned to the caller.
type SubmitResult struct {
	Correct int  `json:"correct"`
	Total   int  `json:"total"`
	Passed  bool `json:"passed"`
	Score   int  `json:"score"`
}

// Submit grades an answer map against the video's question set. For an
// authenticated principal the result is persisted: submitting a quiz implies
// the video was watched, and a pass completes the quiz facet. Guests get the
// graded result back but nothing is stored.
func (s *QuizService) Submit(p *access.Principal, videoID uint, answers map[uint]string) (*SubmitResult, error) {
	var video catalog.Video
	err := s.db.
		Preload("Questions.Options").
		First(&video, videoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	result := quiz.Grade(gradeInput(video.Questions), answers)
	score := quiz.Score(result)

	if p != nil {
		watched := true
		update := ProgressUpdate{
			WatchedFully: &watched,
			QuizScore:    &score,
		}
		if result.Passed {
			passed := true
			update.QuizCompleted = &passed
		}
		if _, err := s.progress.Upsert(p, videoID, update); err != nil {
			return nil, err
		}
	}

	return &SubmitResult{
		Correct: result.Correct,
		Total:   result.Total,
		Passed:  result.Passed,
		Score:   score,
	}, nil
}

func gradeInput(questions []catalog.QuizQuestion) []quiz.Question {
	input := make([]quiz.Question, len(questions))
	for i, q := range questions {
		gq := quiz.Question{ID: q.ID, Type: q.Type}
		for _, o := range q.Options {
			gq.Options = append(gq.Options, quiz.Option{ID: o.ID, IsCorrect: o.IsCorrect})
		}
		input[i] = gq
	}
	return input
}
