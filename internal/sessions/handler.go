package sessions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-review/internal/shared/server/middleware"
	"resume-review/internal/shared/server/respond"
	"resume-review/internal/users"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", h.signup)
	rg.POST("/auth/login", h.login)
	rg.POST("/auth/logout", middleware.RequireAuth(), h.logout)
	rg.GET("/auth/me", middleware.RequireAuth(), h.me)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email and password are required", nil)
		return
	}
	session, err := h.Svc.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrWeakPassword):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, users.ErrEmailTaken):
			respond.Error(c, http.StatusConflict, "email_taken", "email already registered", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create account", nil)
		}
		return
	}
	respondSession(c, http.StatusCreated, session)
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email and password are required", nil)
		return
	}
	session, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respond.Error(c, http.StatusUnauthorized, "invalid_credentials", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to sign in", nil)
		return
	}
	respondSession(c, http.StatusOK, session)
}

func (h *Handler) logout(c *gin.Context) {
	h.Svc.Logout()
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	user, err := h.Svc.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}

func respondSession(c *gin.Context, status int, session Session) {
	respond.JSON(c, status, gin.H{
		"token": session.Token,
		"user": gin.H{
			"id":    session.User.ID,
			"email": session.User.Email,
		},
	})
}
