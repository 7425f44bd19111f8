package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"trove/internal/api/dto"
	"trove/internal/api/repository"
	"trove/internal/api/service"
)

// RecommendationHandler is the one HTTP surface for the three recommendation
// inboxes. PUT /:id marks a single recommendation read; PUT /read marks every
// unread one read; GET /notify answers the unread badge poll.
type RecommendationHandler[T repository.RecommendationModel] struct {
	svc service.RecommendationService[T]
}

func NewRecommendationHandler[T repository.RecommendationModel](svc service.RecommendationService[T]) *RecommendationHandler[T] {
	return &RecommendationHandler[T]{svc: svc}
}

func (h *RecommendationHandler[T]) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PUT("/read", h.MarkAllRead)
	rg.GET("/notify", h.Notify)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.MarkRead)
	rg.DELETE("/:id", h.Delete)
}

func (h *RecommendationHandler[T]) List(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	recs, err := h.svc.List(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recs)
}

func (h *RecommendationHandler[T]) Get(c *gin.Context) {
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

	rec, err := h.svc.Get(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *RecommendationHandler[T]) Create(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rec, err := h.svc.Create(ctx, userID, req)
	if errors.Is(err, service.ErrRecipientNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (h *RecommendationHandler[T]) MarkRead(c *gin.Context) {
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

	err := h.svc.MarkRead(ctx, id, userID)
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

func (h *RecommendationHandler[T]) MarkAllRead(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.MarkAllRead(ctx, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecommendationHandler[T]) Delete(c *gin.Context) {
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

func (h *RecommendationHandler[T]) Notify(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	hasUnread, err := h.svc.HasUnread(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NotifyResponse{New: hasUnread})
}
