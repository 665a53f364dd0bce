package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/models/catalog"
)

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestProgressUpsertCreatesRow(t *testing.T) {
	db := newTestDB(t)
	service := NewProgressService(db)

	_, p := seedUser(t, db, "learner@example.com", "WORKER")
	video := seedVideo(t, db, videoSpec{title: "intro", published: true})

	progress, err := service.Upsert(p, video.ID, ProgressUpdate{WatchedFully: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, progress.WatchedFully)
	assert.False(t, progress.QuizCompleted)
	assert.Nil(t, progress.CompletedAt)

	var count int64
	require.NoError(t, db.Model(&catalog.VideoProgress{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProgressIsMonotonic(t *testing.T) {
	db := newTestDB(t)
	service := NewProgressService(db)

	_, p := seedUser(t, db, "learner@example.com", "WORKER")
	video := seedVideo(t, db, videoSpec{title: "intro", published: true})

	_, err := service.Upsert(p, video.ID, ProgressUpdate{WatchedFully: boolPtr(true)})
	require.NoError(t, err)

	t.Run("explicit false does not regress", func(t *testing.T) {
		progress, err := service.Upsert(p, video.ID, ProgressUpdate{WatchedFully: boolPtr(false)})
		require.NoError(t, err)
		assert.True(t, progress.WatchedFully)
	})

	t.Run("omitted fields stay untouched", func(t *testing.T) {
		progress, err := service.Upsert(p, video.ID, ProgressUpdate{QuizScore: intPtr(40)})
		require.NoError(t, err)
		assert.True(t, progress.WatchedFully)
		assert.Equal(t, 40, progress.QuizScore)
	})

	t.Run("score is overwritten when supplied", func(t *testing.T) {
		progress, err := service.Upsert(p, video.ID, ProgressUpdate{QuizScore: intPtr(90)})
		require.NoError(t, err)
		assert.Equal(t, 90, progress.QuizScore)

		progress, err = service.Upsert(p, video.ID, ProgressUpdate{QuizScore: intPtr(30)})
		require.NoError(t, err)
		assert.Equal(t, 30, progress.QuizScore)
	})
}

func TestProgressCompletedAt(t *testing.T) {
	db := newTestDB(t)
	service := NewProgressService(db)

	_, p := seedUser(t, db, "learner@example.com", "WORKER")
	video := seedVideo(t, db, videoSpec{title: "intro", published: true})

	progress, err := service.Upsert(p, video.ID, ProgressUpdate{WatchedFully: boolPtr(true)})
	require.NoError(t, err)
	assert.Nil(t, progress.CompletedAt)

	progress, err = service.Upsert(p, video.ID, ProgressUpdate{QuizCompleted: boolPtr(true)})
	require.NoError(t, err)
	require.NotNil(t, progress.CompletedAt)
	assert.WithinDuration(t, time.Now(), *progress.CompletedAt, 5*time.Second)

	// Further writes keep the original completion time.
	first := *progress.CompletedAt
	progress, err = service.Upsert(p, video.ID, ProgressUpdate{QuizScore: intPtr(100)})
	require.NoError(t, err)
	require.NotNil(t, progress.CompletedAt)
	assert.Equal(t, first.Unix(), progress.CompletedAt.Unix())
}

func TestProgressConcurrentUpserts(t *testing.T) {
	db := newTestDB(t)
	service := NewProgressService(db)

	_, p := seedUser(t, db, "learner@example.com", "WORKER")
	video := seedVideo(t, db, videoSpec{title: "intro", published: true})

	// A watch-end write racing score-only writes, including the first-contact
	// case where no row exists yet. Whatever the interleaving, watched_fully
	// must come out true and exactly one row must exist.
	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 5; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := service.Upsert(p, video.ID, ProgressUpdate{WatchedFully: boolPtr(true)})
			errs <- err
		}()
		go func(score int) {
			defer wg.Done()
			_, err := service.Upsert(p, video.ID, ProgressUpdate{QuizScore: intPtr(score)})
			errs <- err
		}(i * 10)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	progress, err := service.Get(p, video.ID)
	require.NoError(t, err)
	assert.True(t, progress.WatchedFully, "a committed true never regresses")

	var count int64
	require.NoError(t, db.Model(&catalog.VideoProgress{}).
		Where("user_id = ? AND video_id = ?", p.UserID, video.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProgressUpsertOntoExistingRow(t *testing.T) {
	db := newTestDB(t)
	service := NewProgressService(db)

	_, p := seedUser(t, db, "learner@example.com", "WORKER")
	video := seedVideo(t, db, videoSpec{title: "intro", published: true})

	// The row may already exist when the upsert starts, e.g. created by a
	// write that committed in between. The merge must land on it, not error.
	require.NoError(t, db.Create(&catalog.VideoProgress{
		UserID:       p.UserID,
		VideoID:      video.ID,
		WatchedFully: true,
	}).Error)

	progress, err := service.Upsert(p, video.ID, ProgressUpdate{QuizScore: intPtr(55)})
	require.NoError(t, err)
	assert.True(t, progress.WatchedFully)
	assert.Equal(t, 55, progress.QuizScore)
}

func TestProgressGuestAccess(t *testing.T) {
	db := newTestDB(t)
	service := NewProgressService(db)
	video := seedVideo(t, db, videoSpec{title: "intro", published: true})

	t.Run("reads soft-fail to not started", func(t *testing.T) {
		progress, err := service.Get(nil, video.ID)
		require.NoError(t, err)
		assert.False(t, progress.WatchedFully)
		assert.False(t, progress.QuizCompleted)
		assert.Nil(t, progress.CompletedAt)
	})

	t.Run("writes hard-fail", func(t *testing.T) {
		_, err := service.Upsert(nil, video.ID, ProgressUpdate{WatchedFully: boolPtr(true)})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestProgressUnknownVideo(t *testing.T) {
	db := newTestDB(t)
	service := NewProgressService(db)
	_, p := seedUser(t, db, "learner@example.com", "WORKER")

	_, err := service.Upsert(p, 42, ProgressUpdate{WatchedFully: boolPtr(true)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgressGetReturnsStoredRow(t *testing.T) {
	db := newTestDB(t)
	service := NewProgressService(db)

	_, p := seedUser(t, db, "learner@example.com", "WORKER")
	video := seedVideo(t, db, videoSpec{title: "intro", published: true})

	_, err := service.Upsert(p, video.ID, ProgressUpdate{WatchedFully: boolPtr(true), QuizScore: intPtr(80)})
	require.NoError(t, err)

	progress, err := service.Get(p, video.ID)
	require.NoError(t, err)
	assert.True(t, progress.WatchedFully)
	assert.Equal(t, 80, progress.QuizScore)

	// Unstarted videos read as the zero shape, not an error.
	other := seedVideo(t, db, videoSpec{title: "other", published: true})
	progress, err = service.Get(p, other.ID)
	require.NoError(t, err)
	assert.False(t, progress.WatchedFully)
	assert.Zero(t, progress.QuizScore)
}

func TestRecordWatchEnd(t *testing.T) {
	db := newTestDB(t)
	service := NewProgressService(db)

	_, p := seedUser(t, db, "learner@example.com", "WORKER")
	video := seedVideo(t, db, videoSpec{title: "intro", published: true})

	progress, err := service.RecordWatchEnd(p, video.ID)
	require.NoError(t, err)
	assert.True(t, progress.WatchedFully)

	_, err = service.RecordWatchEnd(nil, video.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
