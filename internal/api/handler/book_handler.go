package handler

import (
	"github.com/gin-gonic/gin"

	"trove/internal/api/dto"
	"trove/internal/api/models"
	"trove/internal/api/repository"
	"trove/internal/api/service"
)

func NewBookHandler(svc service.MediaService[models.Book]) *MediaHandler[models.Book] {
	return &MediaHandler[models.Book]{
		svc: svc,
		bind: mediaBinding[models.Book]{
			filter: func(c *gin.Context) (repository.MediaFilter, error) {
				f, err := baseMediaFilter(c)
				if err != nil {
					return f, err
				}
				f.RelationID, err = queryInt64(c, "authorId")
				return f, err
			},
			decode: func(c *gin.Context, userID int64) (models.Book, func(*models.Book), map[string][]any, error) {
				var p dto.BookPayload
				if err := c.ShouldBindJSON(&p); err != nil {
					return models.Book{}, nil, nil, err
				}
				tags, err := dto.TagRefs(p.TagIDs)
				if err != nil {
					return models.Book{}, nil, nil, err
				}
				assoc := map[string][]any{"Tags": tags}
				return p.Model(userID), p.ApplyTo, assoc, nil
			},
		},
	}
}
