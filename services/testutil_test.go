package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lms/access"
	"lms/database"
	"lms/models"
	"lms/models/catalog"
)

var testPolicy = access.Policy{PublicCode: "PUBLIC"}

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// The pool is pinned to one connection so every query sees the same
// in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedDepartment(t *testing.T, db *gorm.DB, name, code string) models.Department {
	t.Helper()
	dept := models.Department{Name: name, Code: code}
	require.NoError(t, db.Create(&dept).Error)
	return dept
}

// seedUser creates an account and returns it with a matching principal.
// depts pairs department ids with their codes for the principal's claims.
func seedUser(t *testing.T, db *gorm.DB, email, role string, depts ...models.Department) (*models.User, *access.Principal) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: email, Email: email, Password: string(hashed), Role: role}
	require.NoError(t, db.Create(&user).Error)

	principal := &access.Principal{UserID: user.ID, Email: user.Email, Role: user.Role}
	for _, d := range depts {
		require.NoError(t, db.Create(&models.UserDepartment{UserID: user.ID, DepartmentID: d.ID}).Error)
		principal.Departments = append(principal.Departments, d.Code)
	}
	return &user, principal
}

type videoSpec struct {
	title     string
	published bool
	deptIDs   []uint
	userIDs   []uint
}

func seedVideo(t *testing.T, db *gorm.DB, spec videoSpec) catalog.Video {
	t.Helper()

	video := catalog.Video{
		Title:       spec.title,
		YoutubeURL:  fmt.Sprintf("https://youtu.be/%011d", len(spec.title)),
		IsPublished: spec.published,
	}
	require.NoError(t, db.Create(&video).Error)

	for _, deptID := range spec.deptIDs {
		require.NoError(t, db.Create(&catalog.VideoAccess{VideoID: video.ID, DepartmentID: deptID}).Error)
	}
	for _, userID := range spec.userIDs {
		require.NoError(t, db.Create(&catalog.VideoUserAccess{VideoID: video.ID, UserID: userID}).Error)
	}
	return video
}

func seedPlaylist(t *testing.T, db *gorm.DB, title string, published bool, videoIDs []uint, deptIDs []uint) catalog.Playlist {
	t.Helper()

	playlist := catalog.Playlist{Title: title, IsPublished: published}
	require.NoError(t, db.Create(&playlist).Error)

	for i, videoID := range videoIDs {
		require.NoError(t, db.Create(&catalog.PlaylistVideo{PlaylistID: playlist.ID, VideoID: videoID, Order: i}).Error)
	}
	for _, deptID := range deptIDs {
		require.NoError(t, db.Create(&catalog.PlaylistAccess{PlaylistID: playlist.ID, DepartmentID: deptID}).Error)
	}
	return playlist
}

// seedQuiz attaches n multiple-choice questions to a video and returns a
// passing answer for each question id (the id of its correct option).
func seedQuiz(t *testing.T, db *gorm.DB, videoID uint, n int) map[uint]string {
	t.Helper()

	correct := make(map[uint]string, n)
	for i := 0; i < n; i++ {
		question := catalog.QuizQuestion{
			VideoID: videoID,
			Text:    fmt.Sprintf("question %d", i+1),
			Type:    catalog.QuestionMultipleChoice,
			Order:   i,
		}
		require.NoError(t, db.Create(&question).Error)

		right := catalog.QuizOption{QuestionID: question.ID, Text: "right", IsCorrect: true}
		wrong := catalog.QuizOption{QuestionID: question.ID, Text: "wrong"}
		require.NoError(t, db.Create(&right).Error)
		require.NoError(t, db.Create(&wrong).Error)

		correct[question.ID] = fmt.Sprintf("%d", right.ID)
	}
	return correct
}

// wrongAnswers flips every answer in a passing map to a value that cannot
// match any option.
func wrongAnswers(correct map[uint]string) map[uint]string {
	out := make(map[uint]string, len(correct))
	for id := range correct {
		out[id] = "0"
	}
	return out
}
