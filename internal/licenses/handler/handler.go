package handler

import (
	"net/http"
	"strings"
	"time"

	"ops-dashboard/internal/apierrors"
	"ops-dashboard/internal/licenses/processor"
	"ops-dashboard/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type Handler struct {
	processor processor.LicenseProcessor
	logger    *observability.Logger
}

func New(processor processor.LicenseProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateLicenseRequest leaves required-field checks to the processor so the
// caller gets one message for the first invalid field.
type CreateLicenseRequest struct {
	ResponseID  uuid.UUID `json:"response_id" binding:"required"`
	ClientID    uuid.UUID `json:"client_id" binding:"required"`
	LicenseType string    `json:"license_type" binding:"max=64"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	SalesPerson string    `json:"sales_person" binding:"max=255"`
	Source      string    `json:"source" binding:"omitempty,oneof=email other manual-entered"`
	Price       *float64  `json:"price,omitempty" binding:"omitempty,gte=0,lt=10000000000"`
	Notes       *string   `json:"notes,omitempty"`
}

func (h *Handler) HandleCreateLicense(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "start date must be formatted YYYY-MM-DD"))
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "end date must be formatted YYYY-MM-DD"))
		return
	}

	var createdBy *uuid.UUID
	if parsed, err := uuid.Parse(c.GetString("User-ID")); err == nil {
		createdBy = &parsed
	}

	license, err := h.processor.CreateLicense(ctx, processor.CreateLicenseParams{
		ResponseID:  req.ResponseID,
		ClientID:    req.ClientID,
		LicenseType: req.LicenseType,
		StartDate:   startDate,
		EndDate:     endDate,
		SalesPerson: req.SalesPerson,
		Source:      req.Source,
		Price:       req.Price,
		Notes:       req.Notes,
		CreatedBy:   createdBy,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": license.ID, "license": license})
}

// parseDate treats an empty value as absent
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, value)
}

func (h *Handler) HandleListLicenses(c *gin.Context) {
	licenses, err := h.processor.ListLicenses(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"licenses": licenses})
}

func (h *Handler) HandleListDealsInQueue(c *gin.Context) {
	deals, err := h.processor.ListDealsInQueue(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, deals)
}

func (h *Handler) HandleGetStats(c *gin.Context) {
	stats, err := h.processor.GetStats(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HandleGetLicenseDraft pre-fills the issuance form for a won deal
func (h *Handler) HandleGetLicenseDraft(c *gin.Context) {
	responseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid response id"})
		return
	}

	draft, detail, err := h.processor.DraftForResponse(c.Request.Context(), responseID, c.GetString("User-Name"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response_id": responseID,
		"client_id":   detail.ClientID,
		"client_name": detail.ClientName,
		"draft":       draft,
	})
}
