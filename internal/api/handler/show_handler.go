package handler

import (
	"github.com/gin-gonic/gin"

	"trove/internal/api/dto"
	"trove/internal/api/models"
	"trove/internal/api/repository"
	"trove/internal/api/service"
)

func NewShowHandler(svc service.MediaService[models.Show]) *MediaHandler[models.Show] {
	return &MediaHandler[models.Show]{
		svc: svc,
		bind: mediaBinding[models.Show]{
			filter: func(c *gin.Context) (repository.MediaFilter, error) {
				f, err := baseMediaFilter(c)
				if err != nil {
					return f, err
				}
				f.RelationID, err = queryInt64(c, "streamingServiceId")
				return f, err
			},
			decode: func(c *gin.Context, userID int64) (models.Show, func(*models.Show), map[string][]any, error) {
				var p dto.ShowPayload
				if err := c.ShouldBindJSON(&p); err != nil {
					return models.Show{}, nil, nil, err
				}
				tags, err := dto.TagRefs(p.TagIDs)
				if err != nil {
					return models.Show{}, nil, nil, err
				}
				assoc := map[string][]any{"Tags": tags}
				return p.Model(userID), p.ApplyTo, assoc, nil
			},
		},
	}
}
