package reports

import (
	"context"
	"time"

	"github.com/sgcab/dispatch/internal/pkg/models"
)

// Window selects the aggregation span for commission reports.
type Window string

const (
	WindowDaily   Window = "daily"
	WindowMonthly Window = "monthly"
)

// ReportUC defines the reconciliation operations exposed by the engine
//
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sgcab/dispatch/services/reports ReportUC
type ReportUC interface {
	SalesCommission(ctx context.Context, day time.Time, window Window) (*models.CommissionReport, error)
	DriverCommission(ctx context.Context, day time.Time, window Window) (*models.CommissionReport, error)
	Cashbook(ctx context.Context, day time.Time) (*models.Cashbook, error)
	DriverOps(ctx context.Context, day time.Time) (*models.DriverOpsReport, error)
	FleetSummary(ctx context.Context) (*models.FleetSummary, error)
	Maintenance(ctx context.Context) (*models.MaintenanceReport, error)
	MaintenanceRows(ctx context.Context) ([]models.Maintenance, error)
	IngestCost(ctx context.Context, event models.CostEvent) error
}
