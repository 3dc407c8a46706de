package handler

import (
	"net/http"
	"strconv"

	"ops-dashboard/internal/apierrors"
	"ops-dashboard/internal/inquiries/processor"
	"ops-dashboard/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.InquiryProcessor
	logger    *observability.Logger
}

func New(processor processor.InquiryProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateInquiryRequest struct {
	ClientID    *uuid.UUID `json:"client_id,omitempty"`
	ClientName  string     `json:"client_name" binding:"max=255"`
	ClientEmail string     `json:"client_email" binding:"omitempty,email"`
	Subject     string     `json:"subject" binding:"required,max=500"`
	Message     string     `json:"message" binding:"required"`
	Source      string     `json:"source" binding:"omitempty,oneof=email phone web manual"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=high medium low"`
	AssignedTo  *uuid.UUID `json:"assigned_to,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) HandleCreateInquiry(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	inquiry, err := h.processor.CreateInquiry(ctx, processor.CreateInquiryParams{
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Subject:     req.Subject,
		Message:     req.Message,
		Source:      req.Source,
		Priority:    req.Priority,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": inquiry.ID, "inquiry": inquiry})
}

// HandleListInquiries supports ?status=, ?sort=date|priority, ?page= and ?per_page=
func (h *Handler) HandleListInquiries(c *gin.Context) {
	ctx := c.Request.Context()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	result, err := h.processor.ListInquiries(ctx, processor.ListInquiriesParams{
		Status:         c.Query("status"),
		SortByPriority: c.Query("sort") == "priority",
		Page:           page,
		PerPage:        perPage,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inquiries": result.Inquiries,
		"pagination": gin.H{
			"total":       result.TotalCount,
			"page":        result.Page,
			"per_page":    result.PerPage,
			"total_pages": result.TotalPages,
		},
	})
}

func (h *Handler) HandleGetInquiry(c *gin.Context) {
	inquiryID, ok := inquiryIDParam(c)
	if !ok {
		return
	}

	inquiry, err := h.processor.GetInquiry(c.Request.Context(), inquiryID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, inquiry)
}

func (h *Handler) HandleUpdateStatus(c *gin.Context) {
	inquiryID, ok := inquiryIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	inquiry, err := h.processor.UpdateStatus(c.Request.Context(), inquiryID, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "inquiry": inquiry})
}

func (h *Handler) HandleGetStats(c *gin.Context) {
	stats, err := h.processor.GetStats(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func inquiryIDParam(c *gin.Context) (uuid.UUID, bool) {
	inquiryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inquiry id"})
		return uuid.UUID{}, false
	}
	return inquiryID, true
}
