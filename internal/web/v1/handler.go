package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/duynhne/quote-service/internal/core/domain"
	logicv1 "github.com/duynhne/quote-service/internal/logic/v1"
	"github.com/duynhne/quote-service/middleware"
)

// Client-facing messages. Provider details never leave the server.
const (
	msgMissingFields = "Missing required fields"
	msgNotConfigured = "Email service not configured"
	msgSendFailed    = "Failed to send quote"
)

// QuoteHandler handles HTTP requests for quote submissions and the studio catalog
type QuoteHandler struct {
	service *logicv1.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(service *logicv1.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// SubmitQuote handles POST /api/quote
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := middleware.GetLoggerFromGinContext(c)

	req, err := bindQuoteRequest(c)
	if err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		middleware.ObserveQuote(middleware.OutcomeInvalid)
		logger.Warn("Rejected quote request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingFields})
		return
	}

	id, err := h.service.Submit(ctx, req)
	if err != nil {
		span.RecordError(err)

		switch {
		case errors.Is(err, domain.ErrMissingFields):
			logger.Warn("Rejected quote request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingFields})
		case errors.Is(err, domain.ErrNotConfigured):
			logger.Error("Email service not configured", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgNotConfigured})
		default:
			logger.Error("Quote email failed", zap.String("quote_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgSendFailed})
		}
		return
	}

	logger.Info("Quote email sent", zap.String("quote_id", id))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListPackages handles GET /api/packages
func (h *QuoteHandler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": domain.Packages()})
}

// ListSpaces handles GET /api/spaces
func (h *QuoteHandler) ListSpaces(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": domain.Spaces()})
}

// RegisterRoutes mounts the public API under /api
func RegisterRoutes(r gin.IRouter, h *QuoteHandler) {
	api := r.Group("/api")
	{
		api.POST("/quote", h.SubmitQuote)
		api.GET("/packages", h.ListPackages)
		api.GET("/spaces", h.ListSpaces)
	}
}
