package dto

import (
	"fmt"

	"trove/internal/api/models"
)

// Writable-field schemas for the media triplet. PUT is a full replace, so
// create and update share the same payload per type.

// BookPayload: payload for book create/update
type BookPayload struct {
	Name     string  `json:"name" binding:"required,max=50"`
	Current  *bool   `json:"current" binding:"required"`
	AuthorID int64   `json:"author_id" binding:"required"`
	TagIDs   []int64 `json:"tags"`
}

func (p BookPayload) Model(userID int64) models.Book {
	return models.Book{
		UserID:   userID,
		Name:     p.Name,
		Current:  *p.Current,
		AuthorID: p.AuthorID,
	}
}

func (p BookPayload) ApplyTo(b *models.Book) {
	b.Name = p.Name
	b.Current = *p.Current
	b.AuthorID = p.AuthorID
}

// GamePayload: payload for game create/update
type GamePayload struct {
	Name               string  `json:"name" binding:"required,max=50"`
	Current            *bool   `json:"current" binding:"required"`
	MultiplayerCapable *bool   `json:"multiplayer_capable" binding:"required"`
	PlatformIDs        []int64 `json:"platforms"`
	TagIDs             []int64 `json:"tags"`
}

func (p GamePayload) Model(userID int64) models.Game {
	return models.Game{
		UserID:             userID,
		Name:               p.Name,
		Current:            *p.Current,
		MultiplayerCapable: *p.MultiplayerCapable,
	}
}

func (p GamePayload) ApplyTo(g *models.Game) {
	g.Name = p.Name
	g.Current = *p.Current
	g.MultiplayerCapable = *p.MultiplayerCapable
}

// ShowPayload: payload for show create/update
type ShowPayload struct {
	Name               string  `json:"name" binding:"required,max=50"`
	Current            *bool   `json:"current" binding:"required"`
	StreamingServiceID int64   `json:"streaming_service_id" binding:"required"`
	TagIDs             []int64 `json:"tags"`
}

func (p ShowPayload) Model(userID int64) models.Show {
	return models.Show{
		UserID:             userID,
		Name:               p.Name,
		Current:            *p.Current,
		StreamingServiceID: p.StreamingServiceID,
	}
}

func (p ShowPayload) ApplyTo(s *models.Show) {
	s.Name = p.Name
	s.Current = *p.Current
	s.StreamingServiceID = p.StreamingServiceID
}

// TagRefs converts tag ids into association references for a full-replace
// membership set.
func TagRefs(ids []int64) ([]any, error) {
	refs := make([]any, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("invalid tag id: %d", id)
		}
		refs = append(refs, models.Tag{ID: id})
	}
	return refs, nil
}

// PlatformRefs converts platform ids into association references.
func PlatformRefs(ids []int64) ([]any, error) {
	refs := make([]any, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("invalid platform id: %d", id)
		}
		refs = append(refs, models.Platform{ID: id})
	}
	return refs, nil
}
