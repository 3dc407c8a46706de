package handler

import (
	"net/http"
	"strconv"

	"ops-dashboard/internal/apierrors"
	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/publishers/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.PublisherProcessor
	logger    *observability.Logger
}

func New(processor processor.PublisherProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type PublisherRow struct {
	Name     string `json:"name" binding:"max=255"`
	Email    string `json:"email" binding:"max=255"`
	Category string `json:"category" binding:"max=100"`
}

type BulkUploadRequest struct {
	Publishers []PublisherRow `json:"publishers" binding:"required,max=10000,dive"`
}

type UpdateStatusRequest struct {
	IDs    []uuid.UUID `json:"ids" binding:"required,min=1"`
	Status string      `json:"status" binding:"required,oneof=active inactive"`
}

type BroadcastRequest struct {
	PublisherIDs []uuid.UUID `json:"publisher_ids,omitempty"`
	Subject      string      `json:"subject" binding:"required,max=500"`
	Body         string      `json:"body" binding:"required"`
}

func (h *Handler) HandleBulkUpload(c *gin.Context) {
	var req BulkUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	inputs := make([]processor.PublisherInput, 0, len(req.Publishers))
	for _, row := range req.Publishers {
		inputs = append(inputs, processor.PublisherInput{Name: row.Name, Email: row.Email, Category: row.Category})
	}

	result, err := h.processor.BulkUpload(c.Request.Context(), inputs)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Successfully uploaded " + strconv.Itoa(result.Inserted) + " publishers",
		"total":    result.Inserted,
		"received": result.Received,
		"skipped":  result.Skipped,
	})
}

// HandleListPublishers supports ?search=, ?status=, ?page= and ?per_page=
func (h *Handler) HandleListPublishers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "100"))
	if perPage < 1 || perPage > 500 {
		perPage = 100
	}

	result, err := h.processor.ListPublishers(c.Request.Context(), c.Query("search"), c.Query("status"), page, perPage)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publishers":  result.Publishers,
		"total":       result.TotalCount,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

func (h *Handler) HandleUpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	updated, err := h.processor.UpdateStatus(c.Request.Context(), req.IDs, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}

func (h *Handler) HandleBroadcast(c *gin.Context) {
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	requestedBy, _ := uuid.Parse(c.GetString("User-ID"))
	result, err := h.processor.Broadcast(c.Request.Context(), processor.BroadcastParams{
		PublisherIDs: req.PublisherIDs,
		Subject:      req.Subject,
		Body:         req.Body,
		RequestedBy:  requestedBy,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"success": true, "task_id": result.TaskID, "recipients": result.Recipients})
}
