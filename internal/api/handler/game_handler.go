package handler

import (
	"github.com/gin-gonic/gin"

	"trove/internal/api/dto"
	"trove/internal/api/models"
	"trove/internal/api/repository"
	"trove/internal/api/service"
)

func NewGameHandler(svc service.MediaService[models.Game]) *MediaHandler[models.Game] {
	return &MediaHandler[models.Game]{
		svc: svc,
		bind: mediaBinding[models.Game]{
			filter: func(c *gin.Context) (repository.MediaFilter, error) {
				f, err := baseMediaFilter(c)
				if err != nil {
					return f, err
				}
				if f.RelationID, err = queryInt64(c, "platformId"); err != nil {
					return f, err
				}
				f.Multiplayer, err = queryBool(c, "multiplayer")
				return f, err
			},
			decode: func(c *gin.Context, userID int64) (models.Game, func(*models.Game), map[string][]any, error) {
				var p dto.GamePayload
				if err := c.ShouldBindJSON(&p); err != nil {
					return models.Game{}, nil, nil, err
				}
				tags, err := dto.TagRefs(p.TagIDs)
				if err != nil {
					return models.Game{}, nil, nil, err
				}
				platforms, err := dto.PlatformRefs(p.PlatformIDs)
				if err != nil {
					return models.Game{}, nil, nil, err
				}
				assoc := map[string][]any{"Tags": tags, "Platforms": platforms}
				return p.Model(userID), p.ApplyTo, assoc, nil
			},
		},
	}
}
