package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trove/internal/api/service"
)

// LookupHandler serves the two global read-only lookup tables.
type LookupHandler struct {
	svc service.LookupService
}

func NewLookupHandler(svc service.LookupService) *LookupHandler {
	return &LookupHandler{svc: svc}
}

func (h *LookupHandler) ListPlatforms(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	platforms, err := h.svc.Platforms(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, platforms)
}

func (h *LookupHandler) ListStreamingServices(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	services, err := h.svc.StreamingServices(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services)
}
