package handler

import (
	"net/http"

	"ops-dashboard/internal/apierrors"
	"ops-dashboard/internal/assistant/processor"
	"ops-dashboard/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AssistantProcessor
	logger    *observability.Logger
}

func New(processor processor.AssistantProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type DraftReplyRequest struct {
	Context string `json:"context" binding:"max=2000"`
}

type SummarizeRequest struct {
	Text      string `json:"text" binding:"required"`
	MaxLength int    `json:"max_length" binding:"omitempty,min=20,max=2000"`
}

// HandleDraftReply generates a reply draft for an inquiry. The body is optional.
func (h *Handler) HandleDraftReply(c *gin.Context) {
	inquiryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inquiry id"})
		return
	}

	var req DraftReplyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.RespondWithValidationError(c, err)
			return
		}
	}

	// Signature is best effort, an unparsable user id just drops it
	userID, _ := uuid.Parse(c.GetString("User-ID"))

	draft, err := h.processor.DraftReply(c.Request.Context(), processor.DraftReplyParams{
		InquiryID: inquiryID,
		UserID:    userID,
		Context:   req.Context,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (h *Handler) HandleSummarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	summary, err := h.processor.Summarize(c.Request.Context(), req.Text, req.MaxLength)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
