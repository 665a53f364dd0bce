package services

import (
	"errors"

	"gorm.io/gorm"

	"lms/models/catalog"
	"lms/utils"
)

// VideoInput carries video fields plus the complete desired grant sets.
// A supplied list replaces its grant table wholesale, never as a diff; a nil
// list on update keeps the stored rows, same as playlists.
type VideoInput struct {
	Title              string
	Description        string
	YoutubeURL         string
	Thumbnail          string
	Duration           int
	IsPublished        *bool
	RequiresCompletion *bool
	DepartmentIDs      []uint
	UserIDs            []uint
}

// AdminVideoItem is a video with its progress count for the admin listing.
type AdminVideoItem struct {
	catalog.Video
	ProgressCount int64 `json:"progress_count"`
}

// ListAllVideos returns every video regardless of publish state, with grants
// and question sets, newest first.
func (s *AdminService) ListAllVideos() ([]AdminVideoItem, error) {
	var videos []catalog.Video
	if err := s.db.
		Preload("Access.Department").
		Preload("Questions").
		Order("created_at desc").
		Find(&videos).Error; err != nil {
		return nil, err
	}

	items := make([]AdminVideoItem, len(videos))
	for i, v := range videos {
		items[i] = AdminVideoItem{Video: v}
		if err := s.db.Model(&catalog.VideoProgress{}).
			Where("video_id = ?", v.ID).
			Count(&items[i].ProgressCount).Error; err != nil {
			return nil, err
		}
	}
	return items, nil
}

// GetVideoForEdit returns one video with grants, assignments and the ordered
// question set.
func (s *AdminService) GetVideoForEdit(id uint) (*catalog.Video, error) {
	var video catalog.Video
	err := s.db.
		Preload("Access.Department").
		Preload("AssignedUsers.User").
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("item_order asc") }).
		Preload("Questions.Options").
		First(&video, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// CreateVideo creates a video and its grant rows in one transaction. The
// YouTube URL must be parseable; a missing thumbnail falls back to the
// YouTube-derived one.
func (s *AdminService) CreateVideo(in VideoInput) (*catalog.Video, error) {
	youtubeID := utils.ExtractYouTubeID(in.YoutubeURL)
	if youtubeID == "" {
		return nil, ErrBadRequest
	}
	thumbnail := in.Thumbnail
	if thumbnail == "" {
		thumbnail = utils.DefaultThumbnail(youtubeID)
	}

	video := catalog.Video{
		Title:              in.Title,
		Description:        in.Description,
		YoutubeURL:         in.YoutubeURL,
		Thumbnail:          thumbnail,
		Duration:           in.Duration,
		RequiresCompletion: true,
	}
	if in.IsPublished != nil {
		video.IsPublished = *in.IsPublished
	}
	if in.RequiresCompletion != nil {
		video.RequiresCompletion = *in.RequiresCompletion
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&video).Error; err != nil {
			return err
		}
		return createVideoGrants(tx, video.ID, in.DepartmentIDs, in.UserIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetVideoForEdit(video.ID)
}

// UpdateVideo updates fields and replaces both grant sets inside a single
// transaction so no reader observes a transiently empty grant set.
func (s *AdminService) UpdateVideo(id uint, in VideoInput) (*catalog.Video, error) {
	var video catalog.Video
	if err := s.db.First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Title != "" {
		video.Title = in.Title
	}
	if in.Description != "" {
		video.Description = in.Description
	}
	if in.YoutubeURL != "" {
		if utils.ExtractYouTubeID(in.YoutubeURL) == "" {
			return nil, ErrBadRequest
		}
		video.YoutubeURL = in.YoutubeURL
	}
	if in.Thumbnail != "" {
		video.Thumbnail = in.Thumbnail
	}
	if in.Duration > 0 {
		video.Duration = in.Duration
	}
	if in.IsPublished != nil {
		video.IsPublished = *in.IsPublished
	}
	if in.RequiresCompletion != nil {
		video.RequiresCompletion = *in.RequiresCompletion
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&video).Error; err != nil {
			return err
		}
		if in.DepartmentIDs != nil {
			if err := tx.Where("video_id = ?", id).Delete(&catalog.VideoAccess{}).Error; err != nil {
				return err
			}
			if err := createVideoDeptGrants(tx, id, in.DepartmentIDs); err != nil {
				return err
			}
		}
		if in.UserIDs != nil {
			if err := tx.Where("video_id = ?", id).Delete(&catalog.VideoUserAccess{}).Error; err != nil {
				return err
			}
			if err := createVideoUserGrants(tx, id, in.UserIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetVideoForEdit(id)
}

// DeleteVideo removes a video and all rows owned by it.
func (s *AdminService) DeleteVideo(id uint) error {
	var video catalog.Video
	if err := s.db.First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", id).Delete(&catalog.VideoAccess{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&catalog.VideoUserAccess{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&catalog.PlaylistVideo{}).Error; err != nil {
			return err
		}
		if err := deleteVideoQuestions(tx, id); err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&catalog.VideoProgress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&video).Error
	})
}

func createVideoGrants(tx *gorm.DB, videoID uint, departmentIDs, userIDs []uint) error {
	if err := createVideoDeptGrants(tx, videoID, departmentIDs); err != nil {
		return err
	}
	return createVideoUserGrants(tx, videoID, userIDs)
}

func createVideoDeptGrants(tx *gorm.DB, videoID uint, departmentIDs []uint) error {
	for _, deptID := range dedupe(departmentIDs) {
		if err := tx.Create(&catalog.VideoAccess{VideoID: videoID, DepartmentID: deptID}).Error; err != nil {
			return err
		}
	}
	return nil
}

func createVideoUserGrants(tx *gorm.DB, videoID uint, userIDs []uint) error {
	for _, userID := range dedupe(userIDs) {
		if err := tx.Create(&catalog.VideoUserAccess{VideoID: videoID, UserID: userID}).Error; err != nil {
			return err
		}
	}
	return nil
}

func deleteVideoQuestions(tx *gorm.DB, videoID uint) error {
	var questionIDs []uint
	if err := tx.Model(&catalog.QuizQuestion{}).
		Where("video_id = ?", videoID).
		Pluck("id", &questionIDs).Error; err != nil {
		return err
	}
	if len(questionIDs) > 0 {
		if err := tx.Where("question_id IN ?", questionIDs).Delete(&catalog.QuizOption{}).Error; err != nil {
			return err
		}
	}
	return tx.Where("video_id = ?", videoID).Delete(&catalog.QuizQuestion{}).Error
}
