package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mcQuestions builds n multiple-choice questions. Question i has options
// 10*i+1 and 10*i+2, with the first one correct.
func mcQuestions(n int) []Question {
	questions := make([]Question, n)
	for i := range questions {
		base := uint(10*(i+1) + 1)
		questions[i] = Question{
			ID:   uint(i + 1),
			Type: "MULTIPLE_CHOICE",
			Options: []Option{
				{ID: base, IsCorrect: true},
				{ID: base + 1},
			},
		}
	}
	return questions
}

// answers selects the correct option for the first `right` questions and the
// wrong one for the rest.
func answers(questions []Question, right int) map[uint]string {
	out := make(map[uint]string)
	for i, q := range questions {
		opt := q.Options[1].ID
		if i < right {
			opt = q.Options[0].ID
		}
		out[q.ID] = fmt.Sprintf("%d", opt)
	}
	return out
}

func TestGradeThreshold(t *testing.T) {
	questions := mcQuestions(10)

	t.Run("seven of ten passes", func(t *testing.T) {
		res := Grade(questions, answers(questions, 7))
		assert.Equal(t, 7, res.Correct)
		assert.Equal(t, 10, res.Total)
		assert.True(t, res.Passed)
		assert.Equal(t, 70, Score(res))
	})

	t.Run("six of ten fails", func(t *testing.T) {
		res := Grade(questions, answers(questions, 6))
		assert.Equal(t, 6, res.Correct)
		assert.False(t, res.Passed)
		assert.Equal(t, 60, Score(res))
	})

	t.Run("perfect score", func(t *testing.T) {
		res := Grade(questions, answers(questions, 10))
		assert.True(t, res.Passed)
		assert.Equal(t, 100, Score(res))
	})
}

func TestGradeThresholdRounding(t *testing.T) {
	// 7/10 == 0.7 exactly; with 3 questions the threshold is 2.1, so 2
	// correct fails and 3 passes.
	questions := mcQuestions(3)

	res := Grade(questions, answers(questions, 2))
	assert.False(t, res.Passed)
	assert.Equal(t, 67, Score(res))

	res = Grade(questions, answers(questions, 3))
	assert.True(t, res.Passed)
}

func TestGradeZeroScorableQuestions(t *testing.T) {
	t.Run("empty quiz passes with score 100", func(t *testing.T) {
		res := Grade(nil, nil)
		assert.Equal(t, 0, res.Total)
		assert.True(t, res.Passed)
		assert.Equal(t, 100, Score(res))
	})

	t.Run("text-only quiz passes", func(t *testing.T) {
		questions := []Question{{ID: 1, Type: "TEXT_INPUT"}}
		res := Grade(questions, map[uint]string{1: "free text"})
		assert.Equal(t, 0, res.Total)
		assert.True(t, res.Passed)
	})
}

func TestGradeIgnoresTextQuestions(t *testing.T) {
	questions := append(mcQuestions(2), Question{ID: 99, Type: "TEXT_INPUT"})
	ans := answers(questions[:2], 2)
	ans[99] = "anything"

	res := Grade(questions, ans)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 2, res.Correct)
}

func TestGradeMalformedAnswers(t *testing.T) {
	questions := mcQuestions(1)

	t.Run("missing answer is wrong", func(t *testing.T) {
		res := Grade(questions, map[uint]string{})
		assert.Equal(t, 0, res.Correct)
		assert.Equal(t, 1, res.Total)
	})

	t.Run("non-numeric answer is wrong", func(t *testing.T) {
		res := Grade(questions, map[uint]string{1: "not-an-id"})
		assert.Equal(t, 0, res.Correct)
	})

	t.Run("unknown option id is wrong", func(t *testing.T) {
		res := Grade(questions, map[uint]string{1: "9999"})
		assert.Equal(t, 0, res.Correct)
	})
}

func TestGradeQuestionWithoutCorrectOption(t *testing.T) {
	questions := []Question{{
		ID:      1,
		Type:    "MULTIPLE_CHOICE",
		Options: []Option{{ID: 11}, {ID: 12}},
	}}

	res := Grade(questions, map[uint]string{1: "11"})
	assert.Equal(t, 0, res.Correct)
	assert.Equal(t, 1, res.Total)
	assert.False(t, res.Passed)
}
