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

	"trove/internal/api/models"
	"trove/internal/api/service"
)

// MockTagService mocks the TagService interface
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) List(ctx context.Context, userID int64, search, active string) ([]models.Tag, error) {
	args := m.Called(ctx, userID, search, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagService) Get(ctx context.Context, id, userID int64) (*models.Tag, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagService) Create(ctx context.Context, userID int64, text string) (*models.Tag, error) {
	args := m.Called(ctx, userID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagService) Update(ctx context.Context, id, userID int64, text string) (*models.Tag, error) {
	args := m.Called(ctx, id, userID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagService) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockTagService) Seed(ctx context.Context, userID int64) ([]models.Tag, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagService) Active(ctx context.Context, userID int64) ([]models.Tag, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagService) ActiveByState(ctx context.Context, userID int64, current bool) ([]models.Tag, []models.Tag, []models.Tag, error) {
	args := m.Called(ctx, userID, current)
	return args.Get(0).([]models.Tag), args.Get(1).([]models.Tag), args.Get(2).([]models.Tag), args.Error(3)
}

func setupTagRouter(svc *MockTagService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", int64(7))
		c.Next()
	})
	NewTagHandler(svc).RegisterRoutes(r.Group("/tags"))
	return r
}

func TestTagSeed_ReturnsCreatedSet(t *testing.T) {
	svc := new(MockTagService)
	router := setupTagRouter(svc)

	seeded := make([]models.Tag, 21)
	for i := range seeded {
		seeded[i] = models.Tag{ID: int64(i + 1), UserID: 7, Tag: "tag"}
	}
	svc.On("Seed", mock.Anything, int64(7)).Return(seeded, nil)

	req, _ := http.NewRequest("POST", "/tags/seed", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got []models.Tag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 21)
}

func TestTagList_SubstringFilterUsesQParam(t *testing.T) {
	svc := new(MockTagService)
	router := setupTagRouter(svc)

	svc.On("List", mock.Anything, int64(7), "fi", "").
		Return([]models.Tag{{ID: 1, Tag: "Science Fiction"}}, nil)

	req, _ := http.NewRequest("GET", "/tags?q=fi", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.Tag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Science Fiction", got[0].Tag)
	svc.AssertExpectations(t)
}

func TestTagList_UnknownActiveFilter(t *testing.T) {
	svc := new(MockTagService)
	router := setupTagRouter(svc)

	svc.On("List", mock.Anything, int64(7), "", "magazines").
		Return(nil, service.ErrUnknownActiveFilter)

	req, _ := http.NewRequest("GET", "/tags?active=magazines", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTagCreate(t *testing.T) {
	svc := new(MockTagService)
	router := setupTagRouter(svc)

	svc.On("Create", mock.Anything, int64(7), "Cozy").
		Return(&models.Tag{ID: 1, UserID: 7, Tag: "Cozy"}, nil)

	body, _ := json.Marshal(map[string]string{"tag": "Cozy"})
	req, _ := http.NewRequest("POST", "/tags", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTagCreate_EmptyText(t *testing.T) {
	svc := new(MockTagService)
	router := setupTagRouter(svc)

	body, _ := json.Marshal(map[string]string{"tag": ""})
	req, _ := http.NewRequest("POST", "/tags", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestTagActiveCurrent_PartitionedResponse(t *testing.T) {
	svc := new(MockTagService)
	router := setupTagRouter(svc)

	svc.On("ActiveByState", mock.Anything, int64(7), true).Return(
		[]models.Tag{{ID: 1, Tag: "Fantasy"}},
		[]models.Tag{{ID: 2, Tag: "RPG"}},
		[]models.Tag{},
		nil,
	)

	req, _ := http.NewRequest("GET", "/tags/active_current", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got map[string][]models.Tag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got["currentBookTags"], 1)
	assert.Len(t, got["currentGameTags"], 1)
	assert.Empty(t, got["currentShowTags"])
}

func TestTagActiveQueued_UsesQueuedKeys(t *testing.T) {
	svc := new(MockTagService)
	router := setupTagRouter(svc)

	svc.On("ActiveByState", mock.Anything, int64(7), false).Return(
		[]models.Tag{}, []models.Tag{}, []models.Tag{{ID: 3, Tag: "Drama"}}, nil,
	)

	req, _ := http.NewRequest("GET", "/tags/active_queued", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got map[string][]models.Tag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	_, hasQueued := got["queuedShowTags"]
	assert.True(t, hasQueued)
	assert.Len(t, got["queuedShowTags"], 1)
}
