package handler

import (
	"errors"
	"net/http"

	"local-events/internal/model"
	"local-events/internal/service"
	"local-events/internal/validation"
	apperrors "local-events/pkg/app_errors"
	"local-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubmissionKeyHeader carries the client-chosen key that de-duplicates repeated form submissions.
const SubmissionKeyHeader = "Idempotency-Key"

type EventHandler struct {
	service   service.EventService
	validator *validation.Validator
}

func NewEventHandler(service service.EventService, validator *validation.Validator) *EventHandler {
	return &EventHandler{service: service, validator: validator}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.List)
		router.GET("events/:id", h.GetByID)
		router.POST("events", h.Create)
		router.GET("categories", h.Categories)
	}
	r.GET("/healthz", h.Health)
}

type eventURI struct {
	ID string `uri:"id" binding:"required"`
}

func (h *EventHandler) List(c *gin.Context) {
	var query model.ListEventsQuery
	if err := BindQuery(c, &query); err != nil {
		h.handleError(c, err, "List")
		return
	}
	events, err := h.service.List(c, query.Category)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	var uri eventURI
	if err := BindUri(c, &uri); err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	event, err := h.service.GetByID(c, uri.ID)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req model.CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		h.handleError(c, err, "Create")
		return
	}
	draft, err := h.validator.Validate(req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	created, err := h.service.Create(c, draft, c.GetHeader(SubmissionKeyHeader))
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c)
	if err != nil {
		h.handleError(c, err, "Categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *EventHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"events": h.service.Count(c),
	})
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	var verrs validation.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		log.Info("Validation failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"fields": []validation.FieldError(verrs),
		})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrSubmissionInProgress):
		log.Warn("Submission in progress")
		c.JSON(http.StatusConflict, gin.H{"error": "Submission in progress"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
