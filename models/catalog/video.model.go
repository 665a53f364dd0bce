package catalog

import (
	"gorm.io/gorm"

	"lms/models"
)

// Video is a YouTube-hosted training video. A video with no department grants
// and no user grants is public once published.
type Video struct {
	gorm.Model
	Title              string `json:"title"`
	Description        string `json:"description" gorm:"type:text"`
	YoutubeURL         string `json:"youtube_url"`
	Thumbnail          string `json:"thumbnail"`
	Duration           int    `json:"duration" gorm:"default:0"` // seconds
	IsPublished        bool   `json:"is_published" gorm:"default:false"`
	RequiresCompletion bool   `json:"requires_completion" gorm:"default:true"`

	Access        []VideoAccess     `json:"access" gorm:"foreignKey:VideoID"`
	AssignedUsers []VideoUserAccess `json:"assigned_users" gorm:"foreignKey:VideoID"`
	Questions     []QuizQuestion    `json:"questions" gorm:"foreignKey:VideoID"`
}

// VideoAccess grants a department access to a video
type VideoAccess struct {
	gorm.Model
	VideoID      uint `json:"video_id" gorm:"index;not null"`
	DepartmentID uint `json:"department_id" gorm:"index;not null"`

	Department models.Department `json:"department" gorm:"foreignKey:DepartmentID"`
}

// VideoUserAccess grants an individual user access to a video
type VideoUserAccess struct {
	gorm.Model
	VideoID uint `json:"video_id" gorm:"index;not null"`
	UserID  uint `json:"user_id" gorm:"index;not null"`

	User models.User `json:"user" gorm:"foreignKey:UserID"`
}
