package services

import (
	"errors"

	"gorm.io/gorm"

	"lms/models/catalog"
)

// PlaylistInput carries playlist fields plus the complete desired member and
// grant lists. Member order follows array position and is persisted as a
// dense zero-based index.
type PlaylistInput struct {
	Title         string
	Description   string
	Thumbnail     string
	IsPublished   *bool
	VideoIDs      []uint
	DepartmentIDs []uint
}

// ListAllPlaylists returns every playlist with ordered members and grants,
// newest first.
func (s *AdminService) ListAllPlaylists() ([]catalog.Playlist, error) {
	var playlists []catalog.Playlist
	if err := s.db.
		Preload("Videos", func(db *gorm.DB) *gorm.DB { return db.Order("item_order asc") }).
		Preload("Videos.Video").
		Preload("Access.Department").
		Order("created_at desc").
		Find(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}

// GetPlaylist returns one playlist with ordered members and grants.
func (s *AdminService) GetPlaylist(id uint) (*catalog.Playlist, error) {
	var playlist catalog.Playlist
	err := s.db.
		Preload("Videos", func(db *gorm.DB) *gorm.DB { return db.Order("item_order asc") }).
		Preload("Videos.Video").
		Preload("Access.Department").
		First(&playlist, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// CreatePlaylist creates a playlist with its members and grants in one
// transaction.
func (s *AdminService) CreatePlaylist(in PlaylistInput) (*catalog.Playlist, error) {
	playlist := catalog.Playlist{
		Title:       in.Title,
		Description: in.Description,
		Thumbnail:   in.Thumbnail,
	}
	if in.IsPublished != nil {
		playlist.IsPublished = *in.IsPublished
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&playlist).Error; err != nil {
			return err
		}
		if err := createPlaylistVideos(tx, playlist.ID, in.VideoIDs); err != nil {
			return err
		}
		return createPlaylistGrants(tx, playlist.ID, in.DepartmentIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetPlaylist(playlist.ID)
}

// UpdatePlaylist updates fields and, when lists are supplied, replaces the
// membership (reassigning dense order values) and the grant set, all in one
// transaction. Nil lists keep the stored rows.
func (s *AdminService) UpdatePlaylist(id uint, in PlaylistInput) (*catalog.Playlist, error) {
	var playlist catalog.Playlist
	if err := s.db.First(&playlist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Title != "" {
		playlist.Title = in.Title
	}
	if in.Description != "" {
		playlist.Description = in.Description
	}
	if in.Thumbnail != "" {
		playlist.Thumbnail = in.Thumbnail
	}
	if in.IsPublished != nil {
		playlist.IsPublished = *in.IsPublished
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&playlist).Error; err != nil {
			return err
		}
		if in.VideoIDs != nil {
			if err := tx.Where("playlist_id = ?", id).Delete(&catalog.PlaylistVideo{}).Error; err != nil {
				return err
			}
			if err := createPlaylistVideos(tx, id, in.VideoIDs); err != nil {
				return err
			}
		}
		if in.DepartmentIDs != nil {
			if err := tx.Where("playlist_id = ?", id).Delete(&catalog.PlaylistAccess{}).Error; err != nil {
				return err
			}
			if err := createPlaylistGrants(tx, id, in.DepartmentIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetPlaylist(id)
}

// DeletePlaylist removes a playlist and its join rows.
func (s *AdminService) DeletePlaylist(id uint) error {
	var playlist catalog.Playlist
	if err := s.db.First(&playlist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&catalog.PlaylistVideo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("playlist_id = ?", id).Delete(&catalog.PlaylistAccess{}).Error; err != nil {
			return err
		}
		return tx.Delete(&playlist).Error
	})
}

func createPlaylistVideos(tx *gorm.DB, playlistID uint, videoIDs []uint) error {
	for i, videoID := range dedupe(videoIDs) {
		row := catalog.PlaylistVideo{PlaylistID: playlistID, VideoID: videoID, Order: i}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func createPlaylistGrants(tx *gorm.DB, playlistID uint, departmentIDs []uint) error {
	for _, deptID := range dedupe(departmentIDs) {
		row := catalog.PlaylistAccess{PlaylistID: playlistID, DepartmentID: deptID}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
