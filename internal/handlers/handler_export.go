package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/plot_sales_admin/internal/core/ports/services"
	"github.com/SscSPs/plot_sales_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type exportHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func registerExportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &exportHandler{reportingService: reportingService}
	rg.GET("/accounts/export", h.exportAccounts)
}

// exportAccounts godoc
// @Summary Export accounts as a spreadsheet
// @Tags reporting
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/export [get]
func (h *exportHandler) exportAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	f, err := h.reportingService.ExportAccounts(c.Request.Context())
	if err != nil {
		c.JSON(errorBody(logger, err, "Failed to export accounts"))
		return
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("Failed to close workbook", slog.String("error", cerr.Error()))
		}
	}()

	filename := fmt.Sprintf("accounts-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		logger.Error("Failed to stream workbook", slog.String("error", err.Error()))
		return
	}
	logger.Info("Accounts exported")
}
