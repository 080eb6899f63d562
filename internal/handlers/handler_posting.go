package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goldenhorse/ghs_backend/internal/apperrors"
	portssvc "github.com/goldenhorse/ghs_backend/internal/core/ports/services"
	"github.com/goldenhorse/ghs_backend/internal/dto"
	"github.com/goldenhorse/ghs_backend/internal/middleware"
)

// postingHandler handles the business posting shortcuts that target system
// accounts: fixed asset registration, depreciation runs and employee advances.
type postingHandler struct {
	postingService portssvc.PostingSvcFacade
	chartService   portssvc.ChartSvcFacade
}

func newPostingHandler(ps portssvc.PostingSvcFacade, cs portssvc.ChartSvcFacade) *postingHandler {
	return &postingHandler{
		postingService: ps,
		chartService:   cs,
	}
}

// registerPostingRoutes registers routes for the posting shortcuts.
func registerPostingRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade, chartService portssvc.ChartSvcFacade) {
	h := newPostingHandler(postingService, chartService)

	postings := rg.Group("/postings")
	{
		postings.POST("/fixed-assets", h.registerFixedAsset)
		postings.POST("/depreciation", h.recordDepreciation)
		postings.POST("/employee-advances", h.recordEmployeeAdvance)
	}
}

// ensureChart bootstraps the system accounts the posting shortcuts depend on.
func (h *postingHandler) ensureChart(c *gin.Context, logger *slog.Logger) bool {
	actor := middleware.GetActorFromContext(c.Request.Context())
	if err := h.chartService.EnsureInitialChart(c.Request.Context(), actor); err != nil {
		logger.Error("Failed to ensure initial chart before posting", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize chart of accounts"})
		return false
	}
	return true
}

func respondPostingError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error in posting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Missing dependency in posting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate in posting", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Posting failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record posting"})
	}
}

// registerFixedAsset godoc
// @Summary Register a fixed asset
// @Description Creates a per-asset ledger sub-account under the fixed assets system account
// @Tags postings
// @Accept json
// @Produce json
// @Param asset body dto.RegisterFixedAssetRequest true "Asset details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 500 {object} map[string]string "Failed to register fixed asset"
// @Router /postings/fixed-assets [post]
func (h *postingHandler) registerFixedAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterFixedAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if !h.ensureChart(c, logger) {
		return
	}

	actor := middleware.GetActorFromContext(c.Request.Context())
	account, err := h.postingService.RegisterFixedAsset(c.Request.Context(), req, actor)
	if err != nil {
		respondPostingError(c, logger, err)
		return
	}

	logger.Info("Fixed asset registered", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// recordDepreciation godoc
// @Summary Record periodic depreciation
// @Description Posts a balanced journal debiting depreciation expense and crediting accumulated depreciation
// @Tags postings
// @Accept json
// @Produce json
// @Param depreciation body dto.RecordDepreciationRequest true "Depreciation details"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 500 {object} map[string]string "Failed to record depreciation"
// @Router /postings/depreciation [post]
func (h *postingHandler) recordDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordDepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if !h.ensureChart(c, logger) {
		return
	}

	actor := middleware.GetActorFromContext(c.Request.Context())
	journal, transactions, err := h.postingService.RecordDepreciation(c.Request.Context(), req, actor)
	if err != nil {
		respondPostingError(c, logger, err)
		return
	}

	logger.Info("Depreciation recorded", slog.String("journal_id", journal.JournalID))
	c.JSON(http.StatusCreated, dto.PostingResponse{Journal: dto.ToJournalResponse(journal, transactions)})
}

// recordEmployeeAdvance godoc
// @Summary Record an employee advance
// @Description Ensures the employee's ledger sub-account exists and posts the advance against employees payable
// @Tags postings
// @Accept json
// @Produce json
// @Param advance body dto.RecordEmployeeAdvanceRequest true "Advance details"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 500 {object} map[string]string "Failed to record advance"
// @Router /postings/employee-advances [post]
func (h *postingHandler) recordEmployeeAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordEmployeeAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if !h.ensureChart(c, logger) {
		return
	}

	actor := middleware.GetActorFromContext(c.Request.Context())
	account, journal, transactions, err := h.postingService.RecordEmployeeAdvance(c.Request.Context(), req, actor)
	if err != nil {
		respondPostingError(c, logger, err)
		return
	}

	accResp := dto.ToAccountResponse(account)
	logger.Info("Employee advance recorded",
		slog.String("journal_id", journal.JournalID),
		slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.PostingResponse{
		Journal: dto.ToJournalResponse(journal, transactions),
		Account: &accResp,
	})
}
