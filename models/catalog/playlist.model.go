package catalog

import (
	"gorm.io/gorm"

	"lms/models"
)

// Playlist is an ordered collection of videos with department-level grants.
// An empty grant set means public.
type Playlist struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Thumbnail   string `json:"thumbnail"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`

	Videos []PlaylistVideo  `json:"videos" gorm:"foreignKey:PlaylistID"`
	Access []PlaylistAccess `json:"access" gorm:"foreignKey:PlaylistID"`
}

// PlaylistVideo orders a video inside a playlist. Order values are dense and
// zero-based; membership updates reassign them from scratch.
type PlaylistVideo struct {
	gorm.Model
	PlaylistID uint `json:"playlist_id" gorm:"index;not null"`
	VideoID    uint `json:"video_id" gorm:"index;not null"`
	Order      int  `json:"order" gorm:"column:item_order;default:0"`

	Video Video `json:"video" gorm:"foreignKey:VideoID"`
}

// PlaylistAccess grants a department access to a playlist
type PlaylistAccess struct {
	gorm.Model
	PlaylistID   uint `json:"playlist_id" gorm:"index;not null"`
	DepartmentID uint `json:"department_id" gorm:"index;not null"`

	Department models.Department `json:"department" gorm:"foreignKey:DepartmentID"`
}
