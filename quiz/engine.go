package quiz

import (
	"math"
	"strconv"
)

// PassThreshold is the fraction of multiple-choice questions that must be
// answered correctly to pass.
const PassThreshold = 0.7

// Option is an answer choice for a multiple-choice question.
type Option struct {
	ID        uint
	IsCorrect bool
}

// Question is a scorable (or free-text) quiz question.
type Question struct {
	ID      uint
	Type    string // MULTIPLE_CHOICE or TEXT_INPUT
	Options []Option
}

// Result is the outcome of grading one submission.
type Result struct {
	Correct int  `json:"correct"`
	Total   int  `json:"total"`
	Passed  bool `json:"passed"`
}

// Grade scores a submitted answer map against the question set. Answers map
// question id to the submitted value: the selected option id (as a decimal
// string) for multiple choice, free text otherwise. Only MULTIPLE_CHOICE
// questions count toward the total; free-text answers are kept for manual
// review and never auto-graded. A question without a correct option can never
// be answered correctly. A quiz with zero scorable questions always passes.
func Grade(questions []Question, answers map[uint]string) Result {
	res := Result{}
	for _, q := range questions {
		if q.Type != "MULTIPLE_CHOICE" {
			continue
		}
		res.Total++

		var correct *Option
		for i := range q.Options {
			if q.Options[i].IsCorrect {
				correct = &q.Options[i]
				break
			}
		}
		if correct == nil {
			continue
		}

		ans, ok := answers[q.ID]
		if !ok {
			continue
		}
		selected, err := strconv.ParseUint(ans, 10, 64)
		if err != nil {
			continue
		}
		if uint(selected) == correct.ID {
			res.Correct++
		}
	}

	res.Passed = res.Total == 0 || float64(res.Correct) >= float64(res.Total)*PassThreshold
	return res
}

// Score converts a result to a 0-100 integer score. An unscoreable quiz
// scores 100.
func Score(r Result) int {
	if r.Total == 0 {
		return 100
	}
	return int(math.Round(float64(r.Correct) / float64(r.Total) * 100))
}
