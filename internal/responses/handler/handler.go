package handler

import (
	"errors"
	"net/http"

	"ops-dashboard/internal/apierrors"
	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/responses/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ResponseProcessor
	logger    *observability.Logger
}

func New(processor processor.ResponseProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateResponseRequest struct {
	InquiryID    uuid.UUID `json:"inquiry_id" binding:"required"`
	ResponseText string    `json:"response_text" binding:"required"`
	SendEmail    bool      `json:"send_email"`
}

// UpdateFollowUpRequest carries one of the three follow-up actions
type UpdateFollowUpRequest struct {
	ClientReplied  *bool   `json:"client_replied,omitempty"`
	FollowUpMethod *string `json:"follow_up_method,omitempty" binding:"omitempty,oneof=email other_channel"`
	DealStatus     *string `json:"deal_status,omitempty" binding:"omitempty,oneof=closed_won closed_lost"`
}

type AppendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *Handler) HandleCreateResponse(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := uuid.Parse(c.GetString("User-ID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("missing user"))
		return
	}

	var req CreateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	response, err := h.processor.CreateResponse(ctx, processor.CreateResponseParams{
		InquiryID:    req.InquiryID,
		UserID:       userID,
		ResponseText: req.ResponseText,
		SendEmail:    req.SendEmail,
	})
	if err != nil {
		var deliveryErr *processor.EmailDeliveryError
		if errors.As(err, &deliveryErr) {
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"id":      deliveryErr.ResponseID,
				"error":   processor.ErrEmailDeliveryFailed.Error(),
				"code":    apierrors.CodeEmailServiceError,
			})
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": response.ID})
}

func (h *Handler) HandleGetResponse(c *gin.Context) {
	responseID, ok := responseIDParam(c)
	if !ok {
		return
	}

	detail, err := h.processor.GetResponse(c.Request.Context(), responseID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *Handler) HandleUpdateFollowUp(c *gin.Context) {
	responseID, ok := responseIDParam(c)
	if !ok {
		return
	}

	var req UpdateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	response, err := h.processor.UpdateFollowUp(c.Request.Context(), responseID, processor.FollowUpUpdate{
		ClientReplied:  req.ClientReplied,
		FollowUpMethod: req.FollowUpMethod,
		DealStatus:     req.DealStatus,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "response": response})
}

func (h *Handler) HandleAppendMessage(c *gin.Context) {
	responseID, ok := responseIDParam(c)
	if !ok {
		return
	}

	var req AppendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	entry, err := h.processor.AppendClientMessage(c.Request.Context(), responseID, req.Message)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func responseIDParam(c *gin.Context) (uuid.UUID, bool) {
	responseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid response id"})
		return uuid.Nil, false
	}
	return responseID, true
}
