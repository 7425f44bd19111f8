package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"trove/internal/api/repository"
	"trove/internal/api/service"
)

// mediaBinding supplies the per-type pieces of the shared media handler:
// how to read list filters from the query string and how to decode a write
// payload into a model, an update closure and its membership sets.
type mediaBinding[T repository.MediaModel] struct {
	filter func(c *gin.Context) (repository.MediaFilter, error)
	decode func(c *gin.Context, userID int64) (item T, apply func(*T), assoc map[string][]any, err error)
}

// MediaHandler is the one HTTP surface for books, games and shows.
type MediaHandler[T repository.MediaModel] struct {
	svc  service.MediaService[T]
	bind mediaBinding[T]
}

func (h *MediaHandler[T]) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *MediaHandler[T]) List(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	f, err := h.bind.filter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	items, err := h.svc.List(ctx, userID, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *MediaHandler[T]) Get(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	item, err := h.svc.Get(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *MediaHandler[T]) Create(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	item, _, assoc, err := h.bind.decode(c, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	created, err := h.svc.Create(ctx, userID, &item, assoc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *MediaHandler[T]) Update(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	_, apply, assoc, err := h.bind.decode(c, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	err = h.svc.Update(ctx, id, userID, apply, assoc)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MediaHandler[T]) Delete(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	err := h.svc.Delete(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// baseMediaFilter reads the filters shared by all three media types.
func baseMediaFilter(c *gin.Context) (repository.MediaFilter, error) {
	var f repository.MediaFilter
	f.Search = c.Query("search")

	current, err := queryBool(c, "current")
	if err != nil {
		return f, err
	}
	f.Current = current

	tagIDs, err := queryInt64List(c, "tags")
	if err != nil {
		return f, err
	}
	f.TagIDs = tagIDs

	return f, nil
}
