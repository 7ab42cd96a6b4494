package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	request "lims_service/internal/adapter/http/dto/request"
	response "lims_service/internal/adapter/http/dto/response"
	"lims_service/internal/usecase"
	"lims_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportHandler serves the flattened analysis report.
type ReportHandler struct {
	usecase usecase.IReportUseCase
	now     func() time.Time
	logger  *zap.Logger
}

func NewReportHandler(uc usecase.IReportUseCase, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{usecase: uc, now: time.Now, logger: logger}
}

func (h *ReportHandler) query(c *gin.Context) (usecase.ReportQuery, bool) {
	var q request.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("[report][handler] invalid query", zap.Error(err))
		abortWithError(c, errInvalidQuery)
		return usecase.ReportQuery{}, false
	}
	return q.ToQuery(), true
}

// GetAnalysisReport godoc
// @Summary      Analysis report rows
// @Tags         reports
// @Produce      json
// @Param        search    query  string  false  "case-insensitive search"
// @Param        status    query  string  false  "status or all"
// @Param        customer  query  string  false  "customer or all"
// @Success      200  {object}  response.ReportResponse
// @Router       /reports/analysis [get]
func (h *ReportHandler) GetAnalysisReport(c *gin.Context) {
	q, ok := h.query(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromReportResult(h.usecase.Query(q)))
}

// ExportAnalysisReport godoc
// @Summary      Analysis report as CSV
// @Tags         reports
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /reports/analysis/export [get]
func (h *ReportHandler) ExportAnalysisReport(c *gin.Context) {
	q, ok := h.query(c)
	if !ok {
		return
	}
	filename := fmt.Sprintf("analysis-report-%s.csv", h.now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(h.usecase.ExportCSV(q)))
}

// ArchiveAnalysisReport godoc
// @Summary      Store the filtered CSV in the report bucket
// @Tags         reports
// @Success      201  {object}  response.ReportArchiveResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /reports/analysis/archive [post]
func (h *ReportHandler) ArchiveAnalysisReport(c *gin.Context) {
	q, ok := h.query(c)
	if !ok {
		return
	}
	key, err := h.usecase.ArchiveCSV(c.Request.Context(), q)
	if err != nil {
		h.logger.Error("[report][handler] archive failed", zap.Error(err))
		if errors.Is(err, usecase.ErrReportArchiveDisabled) {
			abortWithError(c, pkg.NewDomainErrorSimple("REPORT_ARCHIVE_DISABLED", "Report archive is not configured", http.StatusServiceUnavailable))
			return
		}
		abortWithError(c, internalError(err))
		return
	}
	c.JSON(http.StatusCreated, response.ReportArchiveResponse{Key: key})
}
