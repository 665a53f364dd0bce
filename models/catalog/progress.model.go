package catalog

import (
	"time"

	"gorm.io/gorm"
)

// VideoProgress tracks watch and quiz completion per user per video.
// One row per (user, video); progress writes are monotonic upserts and
// CompletedAt is set once when both facets become true.
type VideoProgress struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"uniqueIndex:idx_user_video;not null"`
	VideoID       uint       `json:"video_id" gorm:"uniqueIndex:idx_user_video;not null"`
	WatchedFully  bool       `json:"watched_fully" gorm:"default:false"`
	QuizCompleted bool       `json:"quiz_completed" gorm:"default:false"`
	QuizScore     int        `json:"quiz_score" gorm:"default:0"` // 0-100
	CompletedAt   *time.Time `json:"completed_at"`
}
