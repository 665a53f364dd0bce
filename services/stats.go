package services

import (
	"lms/models"
	"lms/models/catalog"
)

// DashboardStats feeds the admin dashboard widgets.
type DashboardStats struct {
	ActiveVideos   int64 `json:"active_videos"`
	TotalPlaylists int64 `json:"total_playlists"`
	TotalUsers     int64 `json:"total_users"`
	CompletionRate int   `json:"completion_rate"` // percent of started videos fully completed
}

// Stats returns catalog counts and the overall completion rate computed from
// progress rows.
func (s *AdminService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&catalog.Video{}).Count(&stats.ActiveVideos).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&catalog.Playlist{}).Count(&stats.TotalPlaylists).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}

	var started, completed int64
	if err := s.db.Model(&catalog.VideoProgress{}).Count(&started).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&catalog.VideoProgress{}).
		Where("completed_at IS NOT NULL").
		Count(&completed).Error; err != nil {
		return nil, err
	}
	if started > 0 {
		stats.CompletionRate = int(completed * 100 / started)
	}
	return stats, nil
}
