package catalog

import "gorm.io/gorm"

// Question types
const (
	QuestionMultipleChoice = "MULTIPLE_CHOICE"
	QuestionTextInput      = "TEXT_INPUT"
)

// QuizQuestion belongs to exactly one video. Saving a video's question set
// replaces all of its questions, never diffs them.
type QuizQuestion struct {
	gorm.Model
	VideoID uint   `json:"video_id" gorm:"index;not null"`
	Text    string `json:"text" gorm:"type:text"`
	Type    string `json:"type" gorm:"default:'MULTIPLE_CHOICE'"` // MULTIPLE_CHOICE, TEXT_INPUT
	Order   int    `json:"order" gorm:"column:item_order;default:0"`

	Options []QuizOption `json:"options" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// QuizOption is an answer choice for a MULTIPLE_CHOICE question. The
// authoring surface enforces exactly one correct option; the grading engine
// tolerates zero.
type QuizOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text" gorm:"type:text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
}
