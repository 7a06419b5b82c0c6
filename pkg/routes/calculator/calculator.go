package calculator

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/guidelines"
	"github.com/Ramsey-B/fern/pkg/metrics"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/utils"
)

// Register registers guideline calculator routes
func Register(g *echo.Group) {
	g.POST("/calculators/child-support", CalculateChildSupport)
	g.POST("/calculators/maintenance", CalculateMaintenance)
	g.POST("/calculators/estimate", EstimateCostTimeline)
}

func CalculateChildSupport(c echo.Context) error {
	_, span := tracing.StartSpan(c.Request().Context(), "calculator.CalculateChildSupport")
	defer span.End()

	req, err := utils.BindRequest[guidelines.ChildSupportInput](c)
	if err != nil {
		return err
	}

	metrics.CalculationsTotal.WithLabelValues("child_support").Inc()

	return c.JSON(http.StatusOK, guidelines.CalculateChildSupport(req))
}

func CalculateMaintenance(c echo.Context) error {
	_, span := tracing.StartSpan(c.Request().Context(), "calculator.CalculateMaintenance")
	defer span.End()

	req, err := utils.BindRequest[guidelines.SpousalMaintenanceInput](c)
	if err != nil {
		return err
	}

	metrics.CalculationsTotal.WithLabelValues("maintenance").Inc()

	return c.JSON(http.StatusOK, guidelines.CalculateSpousalMaintenance(req))
}

func EstimateCostTimeline(c echo.Context) error {
	_, span := tracing.StartSpan(c.Request().Context(), "calculator.EstimateCostTimeline")
	defer span.End()

	req, err := utils.BindRequest[guidelines.CostTimelineInput](c)
	if err != nil {
		return err
	}

	metrics.CalculationsTotal.WithLabelValues("estimate").Inc()

	return c.JSON(http.StatusOK, guidelines.EstimateCostTimeline(req))
}
