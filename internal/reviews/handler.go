package reviews

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-review/internal/shared/server/middleware"
	"resume-review/internal/shared/server/respond"
	"resume-review/internal/shared/telemetry"
	"resume-review/internal/shared/util"
)

// Handler wires HTTP handlers to the reviews service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches review routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/review", h.runReview)
	rg.GET("/reviews", middleware.RequireAuth(), h.listReviews)
}

type reviewRequest struct {
	ResumeText string `json:"resumeText"`
	JDText     string `json:"jdText"`
	ResumeName string `json:"resumeName"`
}

func (h *Handler) runReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}
	if len(strings.TrimSpace(req.ResumeText)) < minResumeChars {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "Resume text is too short.", nil)
		return
	}

	record, err := h.Svc.Review(c.Request.Context(), req.ResumeText, req.JDText)
	if err != nil {
		if errors.Is(err, ErrResumeTooShort) {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "Resume text is too short.", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, ErrorCodeReview, "Review failed.", nil)
		return
	}

	// Authenticated reviews are appended to history; a save failure is logged
	// and does not fail the review itself.
	if userID := middleware.UserIDFromContext(c); userID != "" {
		stored := StoredReview{
			ResumeName: sanitizeResumeName(req.ResumeName),
			ResumeText: req.ResumeText,
			JDText:     req.JDText,
			Record:     record,
		}
		if _, err := h.Svc.SaveHistory(c.Request.Context(), userID, stored); err != nil {
			telemetry.Error("reviews.save.failed", map[string]any{
				"err":        err.Error(),
				"user_id":    userID,
				"request_id": c.GetString("requestId"),
			})
		}
	}

	respond.JSON(c, http.StatusOK, record)
}

func (h *Handler) listReviews(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	history, err := h.Svc.History(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to load review history", nil)
		return
	}
	if history == nil {
		history = []StoredReview{}
	}

	respond.JSON(c, http.StatusOK, gin.H{"reviews": history})
}

func sanitizeResumeName(name string) string {
	sanitized, err := util.SanitizeFileName(name)
	if err != nil {
		return ""
	}
	return sanitized
}
