package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/plot_sales_admin/internal/core/ports/services"
	"github.com/SscSPs/plot_sales_admin/internal/dto"
	"github.com/SscSPs/plot_sales_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// plotHandler handles HTTP requests for the plot inventory.
type plotHandler struct {
	plotService portssvc.PlotSvcFacade
}

func newPlotHandler(ps portssvc.PlotSvcFacade) *plotHandler {
	return &plotHandler{plotService: ps}
}

func registerPlotRoutes(rg *gin.RouterGroup, plotService portssvc.PlotSvcFacade) {
	h := newPlotHandler(plotService)

	plots := rg.Group("/plots")
	{
		plots.POST("", h.createPlot)
		plots.GET("", h.listPlots)
		plots.GET("/:number", h.getPlot)
		plots.DELETE("/:number", h.deletePlot)
	}
}

// createPlot godoc
// @Summary Add a plot to the inventory
// @Tags plots
// @Accept  json
// @Produce  json
// @Param   plot body dto.CreatePlotRequest true "Plot number"
// @Success 201 {object} dto.PlotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Plot number already exists"
// @Security BearerAuth
// @Router /plots [post]
func (h *plotHandler) createPlot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePlot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	plot, err := h.plotService.CreatePlot(c.Request.Context(), req)
	if err != nil {
		c.JSON(errorBody(logger, err, "Failed to create plot"))
		return
	}

	logger.Info("Plot created successfully", slog.String("plot_number", plot.Number))
	c.JSON(http.StatusCreated, dto.ToPlotResponse(plot))
}

// getPlot godoc
// @Summary Get a plot by number
// @Tags plots
// @Produce  json
// @Param   number path string true "Plot number"
// @Success 200 {object} dto.PlotResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /plots/{number} [get]
func (h *plotHandler) getPlot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number := c.Param("number")

	plot, err := h.plotService.GetPlotByNumber(c.Request.Context(), number)
	if err != nil {
		c.JSON(errorBody(logger.With(slog.String("plot_number", number)), err, "Failed to retrieve plot"))
		return
	}

	c.JSON(http.StatusOK, dto.ToPlotResponse(plot))
}

// listPlots godoc
// @Summary List plots
// @Tags plots
// @Produce  json
// @Param   status query string false "Available or Sold"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListPlotsResponse
// @Security BearerAuth
// @Router /plots [get]
func (h *plotHandler) listPlots(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPlotsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListPlots", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	plots, err := h.plotService.ListPlots(c.Request.Context(), params)
	if err != nil {
		c.JSON(errorBody(logger, err, "Failed to list plots"))
		return
	}

	c.JSON(http.StatusOK, dto.ToListPlotResponse(plots))
}

// deletePlot godoc
// @Summary Remove an unsold plot
// @Tags plots
// @Param   number path string true "Plot number"
// @Success 204
// @Failure 400 {object} ErrorResponse "Plot is sold"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /plots/{number} [delete]
func (h *plotHandler) deletePlot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number := c.Param("number")
	logger = logger.With(slog.String("plot_number", number))

	if err := h.plotService.DeletePlot(c.Request.Context(), number); err != nil {
		c.JSON(errorBody(logger, err, "Failed to delete plot"))
		return
	}

	logger.Info("Plot deleted successfully")
	c.Status(http.StatusNoContent)
}
