package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lms/access"
	"lms/models/catalog"
)

// ProgressService owns per-(user, video) watch/quiz state. All writes are
// monotonic upserts: booleans never regress from true to false and fields
// absent from a request stay untouched.
type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// ProgressUpdate is a partial progress write. Nil fields are left unchanged.
type ProgressUpdate struct {
	WatchedFully  *bool `json:"watched_fully"`
	QuizCompleted *bool `json:"quiz_completed"`
	QuizScore     *int  `json:"quiz_score"`
}

// Get returns the stored progress for a video. Anonymous callers get the
// zero "not started" shape rather than an error; reads soft-fail while
// writes hard-fail.
func (s *ProgressService) Get(p *access.Principal, videoID uint) (*catalog.VideoProgress, error) {
	if p == nil {
		return &catalog.VideoProgress{VideoID: videoID}, nil
	}
	var progress catalog.VideoProgress
	err := s.db.Where("user_id = ? AND video_id = ?", p.UserID, videoID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &catalog.VideoProgress{UserID: p.UserID, VideoID: videoID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Upsert merges a partial update into the (user, video) progress row,
// creating it on first contact. Concurrent writers serialize on a row lock
// so a merge never runs against a stale copy. CompletedAt is set exactly
// when both facets become true and never cleared afterwards.
func (s *ProgressService) Upsert(p *access.Principal, videoID uint, update ProgressUpdate) (*catalog.VideoProgress, error) {
	if !access.Authorize(p, access.ActionWriteProgress) {
		return nil, ErrUnauthorized
	}

	var video catalog.Video
	if err := s.db.Select("id").First(&video, videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var progress catalog.VideoProgress
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Ensure the row exists first; concurrent first contacts race on the
		// (user, video) unique index and DO NOTHING makes the loser fall
		// through to the locked read instead of erroring out.
		seed := catalog.VideoProgress{UserID: p.UserID, VideoID: videoID}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoNothing: true,
		}).Create(&seed).Error; err != nil {
			return err
		}

		// Row-lock the read so a concurrent upsert cannot merge onto a stale
		// copy and write a true boolean back to false.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND video_id = ?", p.UserID, videoID).
			First(&progress).Error; err != nil {
			return err
		}

		mergeProgress(&progress, update)

		if progress.WatchedFully && progress.QuizCompleted && progress.CompletedAt == nil {
			now := time.Now()
			progress.CompletedAt = &now
		}

		return tx.Save(&progress).Error
	})
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// RecordWatchEnd marks the video as fully watched for the principal.
func (s *ProgressService) RecordWatchEnd(p *access.Principal, videoID uint) (*catalog.VideoProgress, error) {
	watched := true
	return s.Upsert(p, videoID, ProgressUpdate{WatchedFully: &watched})
}

// mergeProgress applies the monotonic merge: a true boolean stays true even
// when the update carries an explicit false.
func mergeProgress(progress *catalog.VideoProgress, update ProgressUpdate) {
	if update.WatchedFully != nil && *update.WatchedFully {
		progress.WatchedFully = true
	}
	if update.QuizCompleted != nil && *update.QuizCompleted {
		progress.QuizCompleted = true
	}
	if update.QuizScore != nil {
		progress.QuizScore = *update.QuizScore
	}
}
