package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"local-events/internal/handler"
	"local-events/internal/model"
	"local-events/internal/service/mocks"
	"local-events/internal/validation"
	apperrors "local-events/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupEventTestRouter(mockService *mocks.MockEventService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	eventHandler := handler.NewEventHandler(mockService, validation.New())
	eventHandler.RegisterRoutes(router)

	return router
}

func validCreateRequest() model.CreateEventRequest {
	return model.CreateEventRequest{
		Title:       "Test Talk",
		Date:        "2025-06-15",
		Time:        "09:00",
		Location:    "Centro de Convenciones de Medellín",
		Description: "Charla sobre Go en producción.",
		Category:    "Tecnología",
		ImageURI:    "https://example.com/x.png",
	}
}

func TestListEvents(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().List(mock.Anything, "").Return([]model.Event{
			{ID: "2", Title: "Concierto"},
			{ID: "1", Title: "Conferencia"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var events []model.Event
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
		require.Len(t, events, 2)
		assert.Equal(t, "2", events[0].ID)
	})

	t.Run("Success - category filter is passed through", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().List(mock.Anything, "Música").Return([]model.Event{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/events?category=M%C3%BAsica", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Failed - unexpected error", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().List(mock.Anything, "").Return(nil, errors.New("boom")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().GetByID(mock.Anything, "1").Return(&model.Event{
			ID:       "1",
			Title:    "Conferencia de Tecnología",
			ImageURI: "https://example.com/a.png",
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "1", body["id"])
		assert.Equal(t, "https://example.com/a.png", body["imageUri"])
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().GetByID(mock.Anything, "nonexistent").Return(nil, apperrors.ErrEventNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/nonexistent", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Event not found"}`, w.Body.String())
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		createReq := validCreateRequest()
		mockService.EXPECT().Create(mock.Anything, mock.AnythingOfType("model.EventDraft"), "").
			RunAndReturn(func(_ context.Context, draft model.EventDraft, _ string) (*model.Event, error) {
				e := draft.WithID("6")
				return &e, nil
			}).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/events", createReq)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var created model.Event
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "6", created.ID)
		assert.Equal(t, "Test Talk", created.Title)
	})

	t.Run("Success - submission key header is forwarded", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything, "tap-1").Return(&model.Event{ID: "6"}, nil).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/events", validCreateRequest())
		req.Header.Set(handler.SubmissionKeyHeader, "tap-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - validation errors", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		createReq := validCreateRequest()
		createReq.Title = "ab"
		createReq.Date = "15/06/2025"

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/events", createReq)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body struct {
			Error  string                  `json:"error"`
			Fields []validation.FieldError `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Validation failed", body.Error)
		require.Len(t, body.Fields, 2)
		assert.Equal(t, "title", body.Fields[0].Field)
		assert.Equal(t, "date", body.Fields[1].Field)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - ErrSubmissionInProgress", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything, "tap-1").Return(nil, apperrors.ErrSubmissionInProgress).Once()

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/events", validCreateRequest())
		req.Header.Set(handler.SubmissionKeyHeader, "tap-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/events", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid input"}`, w.Body.String())
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - wrong field type", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		req := createJSONHTTPRequest(http.MethodPost, "/api/v1/events", `{"title": 42}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid input"}`, w.Body.String())
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBindHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("BindJson wraps ErrInvalidInput and leaves the response unwritten", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = createJSONHTTPRequest(http.MethodPost, "/api/v1/events", InvalidJSON)

		var req model.CreateEventRequest
		err := handler.BindJson(c, &req)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.False(t, c.Writer.Written())
	})

	t.Run("BindUri wraps ErrInvalidInput", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/events/", nil)

		var uri struct {
			ID string `uri:"id" binding:"required"`
		}
		err := handler.BindUri(c, &uri)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.False(t, c.Writer.Written())
	})

	t.Run("BindQuery accepts a well-formed query", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/events?category=Cultura", nil)

		var query model.ListEventsQuery
		require.NoError(t, handler.BindQuery(c, &query))
		assert.Equal(t, "Cultura", query.Category)
	})
}

func TestCategories(t *testing.T) {
	mockService := mocks.NewMockEventService(t)
	router := setupEventTestRouter(mockService)

	mockService.EXPECT().Categories(mock.Anything).Return([]string{"Todos", "Música"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Todos","Música"]`, w.Body.String())
}

func TestHealth(t *testing.T) {
	mockService := mocks.NewMockEventService(t)
	router := setupEventTestRouter(mockService)

	mockService.EXPECT().Count(mock.Anything).Return(5).Once()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","events":5}`, w.Body.String())
}
