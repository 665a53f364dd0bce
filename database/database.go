package database

import (
	"fmt"
	"log"

	"lms/config"
	"lms/models"
	"lms/models/catalog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect establishes a connection to PostgreSQL and returns the handle.
// The handle is passed to every service at construction time; nothing in the
// application reaches for a package-level connection.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to PostgreSQL: %w", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate performs database migrations
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.Department{},
		&models.User{},
		&models.UserDepartment{},
		&catalog.Video{},
		&catalog.VideoAccess{},
		&catalog.VideoUserAccess{},
		&catalog.Playlist{},
		&catalog.PlaylistVideo{},
		&catalog.PlaylistAccess{},
		&catalog.QuizQuestion{},
		&catalog.QuizOption{},
		&catalog.VideoProgress{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Migrations completed successfully.")
	return nil
}
