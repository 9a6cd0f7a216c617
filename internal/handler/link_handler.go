package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	apperrors "promptlink/internal/errors"
	"promptlink/internal/model"
	"promptlink/internal/ratelimit"
	"promptlink/internal/service"
	"promptlink/internal/utils"
)

// LinkHandler exposes the five link operations over HTTP. Besides the
// service it holds the create-path rate limiter; everything else lives in
// the service and the store behind it.
type LinkHandler struct {
	linkService service.LinkService
	limiter     *ratelimit.MemoryLimiter
}

func NewLinkHandler(linkService service.LinkService, limiter *ratelimit.MemoryLimiter) *LinkHandler {
	return &LinkHandler{
		linkService: linkService,
		limiter:     limiter,
	}
}

// CreateLink handles POST /api/create.
func (h *LinkHandler) CreateLink(c *gin.Context) {
	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	// Validation comes before the limiter: a rejected prompt must not
	// consume a rate-limit slot, and a caller at the limit still gets the
	// validation error, not a 429.
	if err := utils.ValidatePrompt(req.Prompt); err != nil {
		handleError(c, err)
		return
	}

	if decision := h.limiter.Check(ClientIdentity(c.Request)); !decision.Allowed {
		handleError(c, apperrors.NewRateLimitError(decision.ResetIn))
		return
	}

	response, err := h.linkService.CreateLink(c.Request.Context(), req.Prompt)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetLink handles GET /api/get?id=.
func (h *LinkHandler) GetLink(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
		return
	}

	response, err := h.linkService.GetLink(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// IncrementClicks handles POST /api/increment.
func (h *LinkHandler) IncrementClicks(c *gin.Context) {
	var req model.IncrementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	if err := h.linkService.IncrementClicks(c.Request.Context(), req.ID); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListLinks handles GET /api/list.
func (h *LinkHandler) ListLinks(c *gin.Context) {
	links, err := h.linkService.ListLinks(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ListLinksResponse{
		Success: true,
		Links:   links,
	})
}

// DeleteLink handles DELETE /api/delete.
func (h *LinkHandler) DeleteLink(c *gin.Context) {
	var req model.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	if err := h.linkService.DeleteLink(c.Request.Context(), req.ID); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// handleError converts every service error to a transport status. Nothing
// escapes this boundary unconverted.
func handleError(c *gin.Context, err error) {
	if apperrors.IsValidationError(err) {
		validationErr := apperrors.GetValidationError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		return
	}

	if apperrors.IsRateLimitError(err) {
		rateLimitErr := apperrors.GetRateLimitError(err)
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":   "Rate limit exceeded",
			"resetIn": rateLimitErr.ResetIn,
		})
		return
	}

	if errors.Is(err, apperrors.ErrUnsupportedInMode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not supported in demo mode"})
		return
	}

	if errors.Is(err, apperrors.ErrLinkNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}

	if errors.Is(err, apperrors.ErrNotConfigured) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Datastore not configured"})
		return
	}

	if apperrors.IsStoreError(err) {
		storeErr := apperrors.GetStoreError(err)
		// The cause stays in the logs; callers get the generic message.
		logrus.WithError(storeErr.Cause).WithField("code", storeErr.Code).Error("store operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": storeErr.Message})
		return
	}

	logrus.WithError(err).Error("unexpected error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
