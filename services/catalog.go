package services

import (
	"errors"

	"gorm.io/gorm"

	"lms/access"
	"lms/models/catalog"
)

// CatalogService serves learner-facing video and playlist reads, applying the
// access policy as query-level filters.
type CatalogService struct {
	db     *gorm.DB
	policy access.Policy
}

func NewCatalogService(db *gorm.DB, policy access.Policy) *CatalogService {
	return &CatalogService{db: db, policy: policy}
}

// VideoListItem is a video row enriched with the caller's progress.
type VideoListItem struct {
	catalog.Video
	HasQuiz      bool                   `json:"has_quiz"`
	UserProgress *catalog.VideoProgress `json:"user_progress"`
}

// VideoDetail is a full video with the caller's progress.
type VideoDetail struct {
	catalog.Video
	UserProgress *catalog.VideoProgress `json:"user_progress"`
}

// AccessInfo names a granted department in API responses.
type AccessInfo struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// PlaylistVideoItem is a playlist member visible to the caller.
type PlaylistVideoItem struct {
	ID           uint                   `json:"id"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Thumbnail    string                 `json:"thumbnail"`
	Order        int                    `json:"order"`
	IsPublished  bool                   `json:"is_published"`
	HasQuiz      bool                   `json:"has_quiz"`
	UserProgress *catalog.VideoProgress `json:"user_progress"`
}

// PlaylistListItem is a playlist with its members filtered to what the caller
// may see, in stored order.
type PlaylistListItem struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Thumbnail   string              `json:"thumbnail"`
	IsPublished bool                `json:"is_published"`
	Access      []AccessInfo        `json:"access"`
	Videos      []PlaylistVideoItem `json:"videos"`
}

// ListVideos returns the videos visible to the principal, newest first. The
// policy filter runs in the store; its output matches the single-item
// predicate for every row.
func (s *CatalogService) ListVideos(p *access.Principal) ([]VideoListItem, error) {
	cond, args := translateFilter(videoTarget, s.policy.VideoFilter(p))

	var videos []catalog.Video
	if err := s.db.
		Preload("Questions").
		Where(cond, args...).
		Order("videos.created_at desc").
		Find(&videos).Error; err != nil {
		return nil, err
	}

	progress, err := s.progressByVideo(p, videoIDs(videos))
	if err != nil {
		return nil, err
	}

	items := make([]VideoListItem, len(videos))
	for i, v := range videos {
		items[i] = VideoListItem{
			Video:        v,
			HasQuiz:      len(v.Questions) > 0,
			UserProgress: progress[v.ID],
		}
	}
	return items, nil
}

// GetVideo returns a single video if the principal may see it. Non-admin
// callers get ErrNotFound for missing and restricted videos alike, so the
// existence of restricted content is not leaked.
func (s *CatalogService) GetVideo(p *access.Principal, videoID uint) (*VideoDetail, error) {
	var video catalog.Video
	err := s.db.
		Preload("Access.Department").
		Preload("AssignedUsers.User").
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("item_order asc") }).
		Preload("Questions.Options").
		First(&video, videoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !s.policy.CanViewVideo(p, videoGrants(&video)) {
		return nil, ErrNotFound
	}

	detail := &VideoDetail{Video: video}
	if p != nil {
		var vp catalog.VideoProgress
		err := s.db.Where("user_id = ? AND video_id = ?", p.UserID, videoID).First(&vp).Error
		if err == nil {
			detail.UserProgress = &vp
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return detail, nil
}

// ListPlaylists returns the playlists visible to the principal with their
// member videos filtered to individually visible, published ones in stored
// order. Playlists left with zero visible members are suppressed. Admins see
// members unfiltered for authoring.
func (s *CatalogService) ListPlaylists(p *access.Principal) ([]PlaylistListItem, error) {
	cond, args := translateFilter(playlistTarget, s.policy.PlaylistFilter(p))

	var playlists []catalog.Playlist
	if err := s.db.
		Preload("Videos", func(db *gorm.DB) *gorm.DB { return db.Order("item_order asc") }).
		Preload("Videos.Video.Questions").
		Preload("Videos.Video.Access.Department").
		Preload("Videos.Video.AssignedUsers").
		Preload("Access.Department").
		Where(cond, args...).
		Order("playlists.created_at desc").
		Find(&playlists).Error; err != nil {
		return nil, err
	}

	var allVideoIDs []uint
	for _, pl := range playlists {
		for _, pv := range pl.Videos {
			allVideoIDs = append(allVideoIDs, pv.VideoID)
		}
	}
	progress, err := s.progressByVideo(p, allVideoIDs)
	if err != nil {
		return nil, err
	}

	admin := p.IsAdmin()
	items := make([]PlaylistListItem, 0, len(playlists))
	for _, pl := range playlists {
		item := PlaylistListItem{
			ID:          pl.ID,
			Title:       pl.Title,
			Description: pl.Description,
			Thumbnail:   pl.Thumbnail,
			IsPublished: pl.IsPublished,
			Access:      accessInfo(pl.Access),
			Videos:      []PlaylistVideoItem{},
		}
		for _, pv := range pl.Videos {
			v := pv.Video
			if !admin && !s.policy.CanViewVideo(p, videoGrants(&v)) {
				continue
			}
			item.Videos = append(item.Videos, PlaylistVideoItem{
				ID:           v.ID,
				Title:        v.Title,
				Description:  v.Description,
				Thumbnail:    v.Thumbnail,
				Order:        pv.Order,
				IsPublished:  v.IsPublished,
				HasQuiz:      len(v.Questions) > 0,
				UserProgress: progress[v.ID],
			})
		}
		// Playlists are never shown empty to learners.
		if !admin && len(item.Videos) == 0 {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *CatalogService) progressByVideo(p *access.Principal, ids []uint) (map[uint]*catalog.VideoProgress, error) {
	result := make(map[uint]*catalog.VideoProgress)
	if p == nil || len(ids) == 0 {
		return result, nil
	}
	var rows []catalog.VideoProgress
	if err := s.db.Where("user_id = ? AND video_id IN ?", p.UserID, ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		result[rows[i].VideoID] = &rows[i]
	}
	return result, nil
}

func videoGrants(v *catalog.Video) access.VideoGrants {
	g := access.VideoGrants{Published: v.IsPublished}
	for _, a := range v.Access {
		g.DeptCodes = append(g.DeptCodes, a.Department.Code)
	}
	for _, u := range v.AssignedUsers {
		g.UserIDs = append(g.UserIDs, u.UserID)
	}
	return g
}

func playlistGrants(l *catalog.Playlist) access.PlaylistGrants {
	g := access.PlaylistGrants{Published: l.IsPublished}
	for _, a := range l.Access {
		g.DeptCodes = append(g.DeptCodes, a.Department.Code)
	}
	return g
}

func accessInfo(grants []catalog.PlaylistAccess) []AccessInfo {
	info := make([]AccessInfo, len(grants))
	for i, a := range grants {
		info[i] = AccessInfo{Name: a.Department.Name, Code: a.Department.Code}
	}
	return info
}

func videoIDs(videos []catalog.Video) []uint {
	ids := make([]uint, len(videos))
	for i, v := range videos {
		ids[i] = v.ID
	}
	return ids
}
