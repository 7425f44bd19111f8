package service

import (
	"context"

	"trove/internal/api/models"
	"trove/internal/api/repository"
)

// LookupService serves the two global lookup tables.
type LookupService interface {
	Platforms(ctx context.Context) ([]models.Platform, error)
	StreamingServices(ctx context.Context) ([]models.StreamingService, error)
}

type lookupService struct {
	platforms repository.PlatformRepository
	services  repository.StreamingServiceRepository
}

func NewLookupService(platforms repository.PlatformRepository, services repository.StreamingServiceRepository) LookupService {
	return &lookupService{platforms: platforms, services: services}
}

func (s *lookupService) Platforms(ctx context.Context) ([]models.Platform, error) {
	return s.platforms.List(ctx)
}

func (s *lookupService) StreamingServices(ctx context.Context) ([]models.StreamingService, error) {
	return s.services.List(ctx)
}
