package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"trove/internal/api/models"
	"trove/internal/config"
)

// Connect opens the Postgres connection, verifies it and brings the schema up
// to date.
func Connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify the connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(db); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

func migrate(db *gorm.DB) error {
	// Register the explicit join models so the per-type tag relations keep
	// their composite-key tables.
	if err := db.SetupJoinTable(&models.Book{}, "Tags", &models.TaggedBook{}); err != nil {
		return fmt.Errorf("setup tagged_books: %w", err)
	}
	if err := db.SetupJoinTable(&models.Game{}, "Tags", &models.TaggedGame{}); err != nil {
		return fmt.Errorf("setup tagged_games: %w", err)
	}
	if err := db.SetupJoinTable(&models.Show{}, "Tags", &models.TaggedShow{}); err != nil {
		return fmt.Errorf("setup tagged_shows: %w", err)
	}
	if err := db.SetupJoinTable(&models.Game{}, "Platforms", &models.GamePlatform{}); err != nil {
		return fmt.Errorf("setup game_platforms: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Author{},
		&models.Platform{},
		&models.StreamingService{},
		&models.Tag{},
		&models.Book{},
		&models.Game{},
		&models.Show{},
		&models.BookRecommendation{},
		&models.GameRecommendation{},
		&models.ShowRecommendation{},
	)
}
