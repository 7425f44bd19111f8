package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"trove/internal/api/models"
)

// PlatformRepository serves the global platform lookup table.
type PlatformRepository interface {
	List(ctx context.Context) ([]models.Platform, error)
}

type platformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

func (r *platformRepository) List(ctx context.Context) ([]models.Platform, error) {
	var platforms []models.Platform
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&platforms).Error; err != nil {
		return nil, fmt.Errorf("list platforms: %w", err)
	}
	return platforms, nil
}

// StreamingServiceRepository serves the global streaming service lookup table.
type StreamingServiceRepository interface {
	List(ctx context.Context) ([]models.StreamingService, error)
}

type streamingServiceRepository struct {
	db *gorm.DB
}

func NewStreamingServiceRepository(db *gorm.DB) StreamingServiceRepository {
	return &streamingServiceRepository{db: db}
}

func (r *streamingServiceRepository) List(ctx context.Context) ([]models.StreamingService, error) {
	var services []models.StreamingService
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list streaming services: %w", err)
	}
	return services, nil
}
