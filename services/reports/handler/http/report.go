package http

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sgcab/dispatch/internal/pkg/middleware"
	"github.com/sgcab/dispatch/internal/pkg/models"
	"github.com/sgcab/dispatch/internal/utils"
	"github.com/sgcab/dispatch/services/reports"
)

// ReportHandler handles HTTP requests for reconciliation reports
type ReportHandler struct {
	reportUC reports.ReportUC
	clock    models.Clock
}

// NewReportHandler creates a new report HTTP handler
func NewReportHandler(reportUC reports.ReportUC, clock models.Clock) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		clock:    clock,
	}
}

// RegisterRoutes registers the report endpoints
func (h *ReportHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/reports/commission/sales", h.SalesCommission)
	g.GET("/reports/commission/drivers", h.DriverCommission)
	g.GET("/reports/cashbook", h.Cashbook)
	g.GET("/reports/driver-ops", h.DriverOps)
	g.GET("/reports/fleet", h.FleetSummary)
	g.GET("/reports/maintenance", h.Maintenance)
	g.GET("/reports/maintenance/export", h.MaintenanceCSV)
}

// SalesCommission returns the sales commission report for a day or month
func (h *ReportHandler) SalesCommission(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if !auth.CanViewReports() {
		return utils.ForbiddenResponse(c, "")
	}

	day := utils.ParseDay(c.QueryParam("day"), h.clock.Now())
	report, err := h.reportUC.SalesCommission(c.Request().Context(), day, reportWindow(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sales commission", report)
}

// DriverCommission returns the driver commission report for a day or month
func (h *ReportHandler) DriverCommission(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if !auth.CanViewReports() {
		return utils.ForbiddenResponse(c, "")
	}

	day := utils.ParseDay(c.QueryParam("day"), h.clock.Now())
	report, err := h.reportUC.DriverCommission(c.Request().Context(), day, reportWindow(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver commission", report)
}

// Cashbook returns one day's reconciled cash position
func (h *ReportHandler) Cashbook(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if !auth.CanViewReports() {
		return utils.ForbiddenResponse(c, "")
	}

	day := utils.ParseDay(c.QueryParam("day"), h.clock.Now())
	book, err := h.reportUC.Cashbook(c.Request().Context(), day)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cashbook", book)
}

// DriverOps returns one day's trips grouped by driver
func (h *ReportHandler) DriverOps(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if !auth.CanViewReports() {
		return utils.ForbiddenResponse(c, "")
	}

	day := utils.ParseDay(c.QueryParam("day"), h.clock.Now())
	report, err := h.reportUC.DriverOps(c.Request().Context(), day)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver operations", report)
}

// FleetSummary returns the all-time dashboard rollup
func (h *ReportHandler) FleetSummary(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if !auth.CanViewReports() {
		return utils.ForbiddenResponse(c, "")
	}

	summary, err := h.reportUC.FleetSummary(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fleet summary", summary)
}

// Maintenance returns the service schedule with booked maintenance costs
func (h *ReportHandler) Maintenance(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if !auth.CanViewReports() {
		return utils.ForbiddenResponse(c, "")
	}

	report, err := h.reportUC.Maintenance(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Maintenance", report)
}

// MaintenanceCSV streams the service schedule as a CSV download
func (h *ReportHandler) MaintenanceCSV(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if !auth.CanViewReports() {
		return utils.ForbiddenResponse(c, "")
	}

	rows, err := h.reportUC.MaintenanceRows(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="maintenance.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.Write([]string{"id", "car_id", "scheduled_date", "odometer_km", "task", "estimated_cost", "actual_cost", "notes"}); err != nil {
		return err
	}
	for _, m := range rows {
		record := []string{
			m.ID.String(),
			m.CarID.String(),
			m.ScheduledDate.Format("2006-01-02"),
			strconv.FormatFloat(m.OdometerKm, 'f', -1, 64),
			m.Task,
			strconv.FormatFloat(m.EstimatedCost, 'f', 2, 64),
			strconv.FormatFloat(m.ActualCost, 'f', 2, 64),
			m.Notes,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func reportWindow(c echo.Context) reports.Window {
	if c.QueryParam("window") == string(reports.WindowMonthly) {
		return reports.WindowMonthly
	}
	return reports.WindowDaily
}
