package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/avikravi/card-inventory-app/internal/errors"
	"github.com/avikravi/card-inventory-app/internal/pagination"
	"github.com/avikravi/card-inventory-app/internal/services"
)

// ReportHandler handles ledger reporting requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary handles the accounting summary.
// @Summary     Accounting summary
// @Description Total net profit, total fees (marketplace + advertising), and sale count across the ledger
// @Tags        reports
// @Produce     json
// @Success     200 {object} services.SalesSummary "Ledger totals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportService.Summarize()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListSales handles listing ledger entries.
// @Summary     List sales
// @Description Paginated list of ledger entries, newest first
// @Tags        reports
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.SaleRecord] "Paginated ledger entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ledger [get]
func (h *ReportHandler) ListSales(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.reportService.ListSales(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
