package handler

import (
	"net/http"
	"strings"

	"ops-dashboard/internal/apierrors"
	"ops-dashboard/internal/auth/processor"
	"ops-dashboard/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

func (h *Handler) HandleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	loggedIn, err := h.authProcessor.Login(ctx, req.Username, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, loggedIn)
}

func (h *Handler) HandleChangePassword(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := uuid.Parse(c.GetString("User-ID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("missing user"))
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if err := h.authProcessor.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized(err.Error()))
		return
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		apierrors.RespondWithError(c, apierrors.Unauthorized("token has no subject"))
		return
	}

	c.Set("User-ID", sub)
	c.Set("User-Name", claims.Name)
	c.Request = c.Request.WithContext(observability.WithFields(ctx, observability.Field{Key: "user_id", Value: sub}))
	c.Next()
}

func (h *Handler) GetUserInfo(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := uuid.Parse(c.GetString("User-ID"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse user id", err)
		apierrors.RespondWithError(c, apierrors.Unauthorized("missing user"))
		return
	}

	user, err := h.authProcessor.GetUserByID(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
