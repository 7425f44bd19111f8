package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"trove/internal/api/dto"
	"trove/internal/api/models"
	"trove/internal/api/service"
)

// MockBookRecommendationService mocks RecommendationService[models.BookRecommendation]
type MockBookRecommendationService struct {
	mock.Mock
}

func (m *MockBookRecommendationService) List(ctx context.Context, recipientID int64) ([]models.BookRecommendation, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookRecommendation), args.Error(1)
}

func (m *MockBookRecommendationService) Get(ctx context.Context, id, recipientID int64) (*models.BookRecommendation, error) {
	args := m.Called(ctx, id, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookRecommendation), args.Error(1)
}

func (m *MockBookRecommendationService) Create(ctx context.Context, senderID int64, in dto.CreateRecommendationRequest) (*models.BookRecommendation, error) {
	args := m.Called(ctx, senderID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookRecommendation), args.Error(1)
}

func (m *MockBookRecommendationService) MarkRead(ctx context.Context, id, recipientID int64) error {
	args := m.Called(ctx, id, recipientID)
	return args.Error(0)
}

func (m *MockBookRecommendationService) MarkAllRead(ctx context.Context, recipientID int64) error {
	args := m.Called(ctx, recipientID)
	return args.Error(0)
}

func (m *MockBookRecommendationService) Delete(ctx context.Context, id, recipientID int64) error {
	args := m.Called(ctx, id, recipientID)
	return args.Error(0)
}

func (m *MockBookRecommendationService) HasUnread(ctx context.Context, recipientID int64) (bool, error) {
	args := m.Called(ctx, recipientID)
	return args.Bool(0), args.Error(1)
}

func setupRecommendationRouter(svc *MockBookRecommendationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", int64(7))
		c.Next()
	})
	NewRecommendationHandler[models.BookRecommendation](svc).RegisterRoutes(r.Group("/book_recommendations"))
	return r
}

func TestRecommendationCreate_Success(t *testing.T) {
	svc := new(MockBookRecommendationService)
	router := setupRecommendationRouter(svc)

	in := dto.CreateRecommendationRequest{MediaID: 5, RecipientID: 9, Message: "read this"}
	created := &models.BookRecommendation{
		Recommendation: models.Recommendation{ID: 1, SenderID: 7, RecipientID: 9, Message: "read this"},
		BookID:         5,
	}
	svc.On("Create", mock.Anything, int64(7), in).Return(created, nil)

	body, _ := json.Marshal(in)
	req, _ := http.NewRequest("POST", "/book_recommendations", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got models.BookRecommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.SenderID)
	assert.False(t, got.Read)
}

func TestRecommendationCreate_UnknownRecipient(t *testing.T) {
	svc := new(MockBookRecommendationService)
	router := setupRecommendationRouter(svc)

	svc.On("Create", mock.Anything, int64(7), mock.Anything).
		Return(nil, service.ErrRecipientNotFound)

	body, _ := json.Marshal(dto.CreateRecommendationRequest{MediaID: 5, RecipientID: 999, Message: "hi"})
	req, _ := http.NewRequest("POST", "/book_recommendations", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendationMarkRead(t *testing.T) {
	svc := new(MockBookRecommendationService)
	router := setupRecommendationRouter(svc)

	svc.On("MarkRead", mock.Anything, int64(3), int64(7)).Return(nil)

	req, _ := http.NewRequest("PUT", "/book_recommendations/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertExpectations(t)
}

func TestRecommendationMarkRead_NotFound(t *testing.T) {
	svc := new(MockBookRecommendationService)
	router := setupRecommendationRouter(svc)

	svc.On("MarkRead", mock.Anything, int64(99), int64(7)).Return(gorm.ErrRecordNotFound)

	req, _ := http.NewRequest("PUT", "/book_recommendations/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecommendationMarkAllRead(t *testing.T) {
	svc := new(MockBookRecommendationService)
	router := setupRecommendationRouter(svc)

	svc.On("MarkAllRead", mock.Anything, int64(7)).Return(nil)

	req, _ := http.NewRequest("PUT", "/book_recommendations/read", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	// the bulk route must not be swallowed by the :id route
	svc.AssertNotCalled(t, "MarkRead")
}

func TestRecommendationNotify(t *testing.T) {
	svc := new(MockBookRecommendationService)
	router := setupRecommendationRouter(svc)

	svc.On("HasUnread", mock.Anything, int64(7)).Return(true, nil)

	req, _ := http.NewRequest("GET", "/book_recommendations/notify", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got dto.NotifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.New)
}

func TestRecommendationList(t *testing.T) {
	svc := new(MockBookRecommendationService)
	router := setupRecommendationRouter(svc)

	recs := []models.BookRecommendation{
		{Recommendation: models.Recommendation{ID: 2, SenderID: 9, RecipientID: 7}, BookID: 5},
		{Recommendation: models.Recommendation{ID: 1, SenderID: 9, RecipientID: 7}, BookID: 4},
	}
	svc.On("List", mock.Anything, int64(7)).Return(recs, nil)

	req, _ := http.NewRequest("GET", "/book_recommendations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.BookRecommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}
