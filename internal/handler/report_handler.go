package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sarabun/internal/csvexport"
	"sarabun/internal/service"
	"sarabun/internal/xlsxexport"
)

// ReportHandler serves the document register report.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Register handles GET /api/v1/reports/register
// @Summary Document register report
// @Description The register of issued document numbers with revision counts. format=json|csv|xlsx
// @Tags reports
// @Produce json
// @Param fiscal_year query int false "Filter by fiscal year (Buddhist Era)"
// @Param format query string false "Output format" default(json)
// @Success 200 {object} APIResponse "Register rows"
// @Security BearerAuth
// @Router /reports/register [get]
func (h *ReportHandler) Register(c *gin.Context) {
	fiscalYear, _ := strconv.Atoi(c.DefaultQuery("fiscal_year", "0"))

	rows, err := h.reportService.Register(c.Request.Context(), fiscalYear)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "csv":
		filename := csvexport.BuildFilename("document_register")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Writer.WriteHeader(http.StatusOK)
		_, _ = c.Writer.Write(csvexport.BOM)
		w := csvexport.NewWriter(c.Writer)
		if err := w.WriteHeader(); err != nil {
			return
		}
		if err := w.WriteRows(rows); err != nil {
			return
		}
		w.Flush()
	case "xlsx":
		var buf bytes.Buffer
		if err := xlsxexport.WriteRegister(&buf, rows); err != nil {
			HandleError(c, err)
			return
		}
		filename := fmt.Sprintf("document_register_%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			buf.Bytes())
	default:
		RespondOK(c, rows)
	}
}
