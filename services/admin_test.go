package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lms/models"
	"lms/models/catalog"
)

func newAdminService(db *gorm.DB) *AdminService {
	return NewAdminService(db, bcrypt.MinCost)
}

func TestDepartmentCodeUniqueness(t *testing.T) {
	db := newTestDB(t)
	service := newAdminService(db)

	first, err := service.CreateDepartment("Engineering", "IT")
	require.NoError(t, err)

	_, err = service.CreateDepartment("Infra Team", "IT")
	assert.ErrorIs(t, err, ErrConflict)

	second, err := service.CreateDepartment("Human Resources", "HR")
	require.NoError(t, err)

	_, err = service.UpdateDepartment(second.ID, "Human Resources", "IT")
	assert.ErrorIs(t, err, ErrConflict)

	// Keeping its own code is not a collision.
	updated, err := service.UpdateDepartment(first.ID, "Platform", "IT")
	require.NoError(t, err)
	assert.Equal(t, "Platform", updated.Name)
}

func TestDeleteDepartmentGuard(t *testing.T) {
	db := newTestDB(t)
	service := newAdminService(db)

	dept := seedDepartment(t, db, "Engineering", "IT")
	user, _ := seedUser(t, db, "worker@example.com", "WORKER", dept)
	video := seedVideo(t, db, videoSpec{title: "intro", published: true, deptIDs: []uint{dept.ID}})

	t.Run("refused while members remain", func(t *testing.T) {
		assert.ErrorIs(t, service.DeleteDepartment(dept.ID), ErrConflict)
	})

	t.Run("deletes grants once empty", func(t *testing.T) {
		require.NoError(t, db.Where("user_id = ?", user.ID).Delete(&models.UserDepartment{}).Error)
		require.NoError(t, service.DeleteDepartment(dept.ID))

		var grants int64
		require.NoError(t, db.Model(&catalog.VideoAccess{}).Where("video_id = ?", video.ID).Count(&grants).Error)
		assert.Zero(t, grants)
	})

	t.Run("missing department is not found", func(t *testing.T) {
		assert.ErrorIs(t, service.DeleteDepartment(999), ErrNotFound)
	})
}

func TestCreateVideoValidatesURL(t *testing.T) {
	db := newTestDB(t)
	service := newAdminService(db)

	_, err := service.CreateVideo(VideoInput{Title: "bad", YoutubeURL: "https://example.com/not-youtube"})
	assert.ErrorIs(t, err, ErrBadRequest)

	video, err := service.CreateVideo(VideoInput{
		Title:      "good",
		YoutubeURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", video.Thumbnail)
	assert.False(t, video.IsPublished)
	assert.True(t, video.RequiresCompletion)
}

func TestVideoGrantReplace(t *testing.T) {
	db := newTestDB(t)
	service := newAdminService(db)

	it := seedDepartment(t, db, "Engineering", "IT")
	hr := seedDepartment(t, db, "Human Resources", "HR")
	user, _ := seedUser(t, db, "worker@example.com", "WORKER")

	video, err := service.CreateVideo(VideoInput{
		Title:         "intro",
		YoutubeURL:    "https://youtu.be/dQw4w9WgXcQ",
		DepartmentIDs: []uint{it.ID, it.ID},
		UserIDs:       []uint{user.ID},
	})
	require.NoError(t, err)

	t.Run("duplicate ids collapse to one grant", func(t *testing.T) {
		var grants int64
		require.NoError(t, db.Model(&catalog.VideoAccess{}).Where("video_id = ?", video.ID).Count(&grants).Error)
		assert.EqualValues(t, 1, grants)
	})

	t.Run("supplied list replaces, omitted list keeps stored rows", func(t *testing.T) {
		updated, err := service.UpdateVideo(video.ID, VideoInput{DepartmentIDs: []uint{hr.ID}})
		require.NoError(t, err)

		require.Len(t, updated.Access, 1)
		assert.Equal(t, "HR", updated.Access[0].Department.Code)
		require.Len(t, updated.AssignedUsers, 1, "nil user list keeps the assignment")
		assert.Equal(t, user.ID, updated.AssignedUsers[0].UserID)
	})

	t.Run("empty non-nil list clears its grant table", func(t *testing.T) {
		updated, err := service.UpdateVideo(video.ID, VideoInput{UserIDs: []uint{}})
		require.NoError(t, err)

		assert.Empty(t, updated.AssignedUsers)
		require.Len(t, updated.Access, 1, "nil department list keeps the grant")
	})

	t.Run("re-applying the same set is idempotent", func(t *testing.T) {
		updated, err := service.UpdateVideo(video.ID, VideoInput{DepartmentIDs: []uint{hr.ID}})
		require.NoError(t, err)
		assert.Len(t, updated.Access, 1)
	})
}

func TestDeleteVideoCascades(t *testing.T) {
	db := newTestDB(t)
	service := newAdminService(db)

	dept := seedDepartment(t, db, "Engineering", "IT")
	_, p := seedUser(t, db, "worker@example.com", "WORKER", dept)
	video := seedVideo(t, db, videoSpec{title: "intro", published: true, deptIDs: []uint{dept.ID}})
	seedQuiz(t, db, video.ID, 2)
	seedPlaylist(t, db, "course", true, []uint{video.ID}, nil)
	require.NoError(t, db.Create(&catalog.VideoProgress{UserID: p.UserID, VideoID: video.ID, WatchedFully: true}).Error)

	require.NoError(t, service.DeleteVideo(video.ID))

	for _, model := range []interface{}{
		&catalog.VideoAccess{},
		&catalog.PlaylistVideo{},
		&catalog.QuizQuestion{},
		&catalog.VideoProgress{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Where("video_id = ?", video.ID).Count(&count).Error)
		assert.Zero(t, count, "%T rows must be gone", model)
	}

	var options int64
	require.NoError(t, db.Model(&catalog.QuizOption{}).Count(&options).Error)
	assert.Zero(t, options)

	assert.ErrorIs(t, service.DeleteVideo(video.ID), ErrNotFound)
}

func TestPlaylistOrderFollowsInput(t *testing.T) {
	db := newTestDB(t)
	service := newAdminService(db)

	a := seedVideo(t, db, videoSpec{title: "a", published: true})
	b := seedVideo(t, db, videoSpec{title: "b", published: true})
	c := seedVideo(t, db, videoSpec{title: "c", published: true})

	playlist, err := service.CreatePlaylist(PlaylistInput{
		Title:    "course",
		VideoIDs: []uint{c.ID, a.ID, b.ID},
	})
	require.NoError(t, err)

	titles := func(p *catalog.Playlist) []string {
		out := make([]string, len(p.Videos))
		for i, pv := range p.Videos {
			assert.Equal(t, i, pv.Order, "order values are dense and zero-based")
			out[i] = pv.Video.Title
		}
		return out
	}

	assert.Equal(t, []string{"c", "a", "b"}, titles(playlist))

	t.Run("membership replace reassigns order from zero", func(t *testing.T) {
		updated, err := service.UpdatePlaylist(playlist.ID, PlaylistInput{VideoIDs: []uint{b.ID, c.ID}})
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "c"}, titles(updated))
	})

	t.Run("nil lists keep stored rows", func(t *testing.T) {
		updated, err := service.UpdatePlaylist(playlist.ID, PlaylistInput{Title: "renamed"})
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Title)
		assert.Equal(t, []string{"b", "c"}, titles(updated))
	})
}

func TestDeletePlaylistKeepsVideos(t *testing.T) {
	db := newTestDB(t)
	service := newAdminService(db)

	dept := seedDepartment(t, db, "Engineering", "IT")
	video := seedVideo(t, db, videoSpec{title: "a", published: true})
	playlist := seedPlaylist(t, db, "course", true, []uint{video.ID}, []uint{dept.ID})

	require.NoError(t, service.DeletePlaylist(playlist.ID))

	var members, grants, videos int64
	require.NoError(t, db.Model(&catalog.PlaylistVideo{}).Where("playlist_id = ?", playlist.ID).Count(&members).Error)
	require.NoError(t, db.Model(&catalog.PlaylistAccess{}).Where("playlist_id = ?", playlist.ID).Count(&grants).Error)
	require.NoError(t, db.Model(&catalog.Video{}).Count(&videos).Error)
	assert.Zero(t, members)
	assert.Zero(t, grants)
	assert.EqualValues(t, 1, videos, "member videos survive playlist deletion")
}

func TestSaveQuizReplacesQuestionSet(t *testing.T) {
	db := newTestDB(t)
	service := newAdminService(db)

	video := seedVideo(t, db, videoSpec{title: "intro"})
	seedQuiz(t, db, video.ID, 3)

	input := []QuestionInput{
		{Text: "new q1", Type: catalog.QuestionMultipleChoice, Order: 0, Options: []OptionInput{
			{Text: "yes", IsCorrect: true},
			{Text: "no"},
		}},
		{Text: "thoughts?", Type: catalog.QuestionTextInput, Order: 1},
	}
	require.NoError(t, service.SaveQuiz(video.ID, input, true))

	saved, err := service.GetVideoForEdit(video.ID)
	require.NoError(t, err)
	require.Len(t, saved.Questions, 2)
	assert.Equal(t, "new q1", saved.Questions[0].Text)
	assert.Equal(t, catalog.QuestionTextInput, saved.Questions[1].Type)
	assert.True(t, saved.IsPublished, "publish flag flips the video live")

	var options int64
	require.NoError(t, db.Model(&catalog.QuizOption{}).Count(&options).Error)
	assert.EqualValues(t, 2, options, "old options are gone")

	t.Run("unknown type defaults to multiple choice", func(t *testing.T) {
		require.NoError(t, service.SaveQuiz(video.ID, []QuestionInput{{Text: "q", Type: "BOGUS"}}, false))
		saved, err := service.GetVideoForEdit(video.ID)
		require.NoError(t, err)
		require.Len(t, saved.Questions, 1)
		assert.Equal(t, catalog.QuestionMultipleChoice, saved.Questions[0].Type)
	})

	t.Run("missing video is not found", func(t *testing.T) {
		assert.ErrorIs(t, service.SaveQuiz(999, nil, false), ErrNotFound)
	})
}

func TestAdminUserLifecycle(t *testing.T) {
	db := newTestDB(t)
	service := newAdminService(db)

	it := seedDepartment(t, db, "Engineering", "IT")
	hr := seedDepartment(t, db, "Human Resources", "HR")

	created, err := service.CreateUser(CreateUserInput{
		Name:         "Sam",
		Email:        "Sam@Example.com",
		Password:     "Password1",
		DepartmentID: it.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", created.Email)
	assert.Equal(t, models.RoleWorker, created.Role, "role defaults to worker")
	require.NotNil(t, created.Department)
	assert.Equal(t, "IT", created.Department.Code)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := service.CreateUser(CreateUserInput{Name: "Dup", Email: "sam@example.com", Password: "Password1"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("empty password keeps the stored hash", func(t *testing.T) {
		var before models.User
		require.NoError(t, db.First(&before, created.ID).Error)

		_, err := service.UpdateUser(created.ID, UpdateUserInput{Name: "Samuel"})
		require.NoError(t, err)

		var after models.User
		require.NoError(t, db.First(&after, created.ID).Error)
		assert.Equal(t, before.Password, after.Password)
		assert.Equal(t, "Samuel", after.Name)
	})

	t.Run("department membership replace and clear", func(t *testing.T) {
		hrID := hr.ID
		updated, err := service.UpdateUser(created.ID, UpdateUserInput{DepartmentID: &hrID})
		require.NoError(t, err)
		require.NotNil(t, updated.Department)
		assert.Equal(t, "HR", updated.Department.Code)

		var none uint
		updated, err = service.UpdateUser(created.ID, UpdateUserInput{DepartmentID: &none})
		require.NoError(t, err)
		assert.Nil(t, updated.Department)
	})

	t.Run("delete cascades user-owned rows", func(t *testing.T) {
		video := seedVideo(t, db, videoSpec{title: "intro", published: true, userIDs: []uint{created.ID}})
		require.NoError(t, db.Create(&catalog.VideoProgress{UserID: created.ID, VideoID: video.ID}).Error)

		require.NoError(t, service.DeleteUser(created.ID))

		var assignments, progress int64
		require.NoError(t, db.Model(&catalog.VideoUserAccess{}).Where("user_id = ?", created.ID).Count(&assignments).Error)
		require.NoError(t, db.Model(&catalog.VideoProgress{}).Where("user_id = ?", created.ID).Count(&progress).Error)
		assert.Zero(t, assignments)
		assert.Zero(t, progress)

		_, err := service.GetUser(created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDepartmentListCounts(t *testing.T) {
	db := newTestDB(t)
	service := newAdminService(db)

	it := seedDepartment(t, db, "Engineering", "IT")
	seedDepartment(t, db, "Human Resources", "HR")
	seedUser(t, db, "worker@example.com", "WORKER", it)
	seedVideo(t, db, videoSpec{title: "intro", published: true, deptIDs: []uint{it.ID}})

	items, err := service.ListDepartments()
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Ordered by name.
	assert.Equal(t, "Engineering", items[0].Name)
	assert.EqualValues(t, 1, items[0].UserCount)
	assert.EqualValues(t, 1, items[0].VideoAccessCount)
	assert.EqualValues(t, 0, items[1].UserCount)
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	service := newAdminService(db)
	progress := NewProgressService(db)

	_, p1 := seedUser(t, db, "a@example.com", "WORKER")
	_, p2 := seedUser(t, db, "b@example.com", "WORKER")
	v1 := seedVideo(t, db, videoSpec{title: "one", published: true})
	v2 := seedVideo(t, db, videoSpec{title: "two", published: true})
	seedPlaylist(t, db, "course", true, []uint{v1.ID}, nil)

	watched, done := true, true
	_, err := progress.Upsert(p1, v1.ID, ProgressUpdate{WatchedFully: &watched, QuizCompleted: &done})
	require.NoError(t, err)
	_, err = progress.Upsert(p2, v2.ID, ProgressUpdate{WatchedFully: &watched})
	require.NoError(t, err)

	stats, err := service.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.ActiveVideos)
	assert.EqualValues(t, 1, stats.TotalPlaylists)
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.Equal(t, 50, stats.CompletionRate)
}
