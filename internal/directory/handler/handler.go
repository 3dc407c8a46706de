package handler

import (
	"net/http"
	"strconv"

	"ops-dashboard/internal/apierrors"
	"ops-dashboard/internal/directory/processor"
	"ops-dashboard/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.DirectoryProcessor
	logger    *observability.Logger
}

func New(processor processor.DirectoryProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateClientRequest struct {
	FullName string  `json:"full_name" binding:"required,max=255"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Company  *string `json:"company,omitempty" binding:"omitempty,max=255"`
	Notes    *string `json:"notes,omitempty"`
}

type UpdateClientRequest struct {
	FullName *string `json:"full_name,omitempty" binding:"omitempty,min=1,max=255"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Company  *string `json:"company,omitempty" binding:"omitempty,max=255"`
	Notes    *string `json:"notes,omitempty"`
}

// HandleListClients lists clients with optional search and paging
func (h *Handler) HandleListClients(c *gin.Context) {
	ctx := c.Request.Context()

	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	perPage := queryInt(c, "per_page", 20)
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	result, err := h.processor.ListClients(ctx, c.Query("search"), page, perPage)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clients": result.Clients,
		"pagination": gin.H{
			"total":       result.TotalCount,
			"page":        result.Page,
			"per_page":    result.PerPage,
			"total_pages": result.TotalPages,
		},
	})
}

func (h *Handler) HandleCreateClient(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	client, err := h.processor.CreateClient(ctx, processor.CreateClientParams{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Notes:    req.Notes,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": client.ID, "client": client})
}

func (h *Handler) HandleGetClient(c *gin.Context) {
	clientID, ok := clientIDParam(c)
	if !ok {
		return
	}

	client, err := h.processor.GetClient(c.Request.Context(), clientID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *Handler) HandleUpdateClient(c *gin.Context) {
	clientID, ok := clientIDParam(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	client, err := h.processor.UpdateClient(c.Request.Context(), clientID, processor.UpdateClientParams{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Notes:    req.Notes,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "client": client})
}

func (h *Handler) HandleDeleteClient(c *gin.Context) {
	clientID, ok := clientIDParam(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteClient(c.Request.Context(), clientID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func clientIDParam(c *gin.Context) (uuid.UUID, bool) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
		return uuid.UUID{}, false
	}
	return clientID, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}
