package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sgcab/dispatch/internal/pkg/database"
	"github.com/sgcab/dispatch/internal/pkg/errs"
	"github.com/sgcab/dispatch/internal/pkg/logger"
	"github.com/sgcab/dispatch/internal/pkg/models"
	"github.com/sgcab/dispatch/internal/utils"
	"github.com/sgcab/dispatch/services/reports"
)

// Costs booked for scheduled service are filed under this ledger category.
const maintenanceCategory = "maintenance"

type reportUC struct {
	cfg        *models.Config
	clock      models.Clock
	reportRepo reports.ReportRepo
	cache      *database.RedisClient
}

// NewReportUC creates a new report usecase. The cache may be nil, in which
// case closed-day cashbooks are recomputed on every read.
func NewReportUC(
	cfg *models.Config,
	clock models.Clock,
	reportRepo reports.ReportRepo,
	cache *database.RedisClient,
) reports.ReportUC {
	return &reportUC{
		cfg:        cfg,
		clock:      clock,
		reportRepo: reportRepo,
		cache:      cache,
	}
}

// FleetSummary returns the all-time dashboard rollup.
func (uc *reportUC) FleetSummary(ctx context.Context) (*models.FleetSummary, error) {
	return uc.reportRepo.FleetTotals(ctx)
}

// Maintenance splits the service schedule around today and attaches the
// costs the ledger already booked under the maintenance category.
func (uc *reportUC) Maintenance(ctx context.Context) (*models.MaintenanceReport, error) {
	entries, err := uc.reportRepo.ListMaintenance(ctx)
	if err != nil {
		return nil, err
	}

	today, _ := utils.DayBounds(uc.clock.Now())
	report := &models.MaintenanceReport{
		Upcoming: []models.Maintenance{},
		Past:     []models.Maintenance{},
	}
	for _, m := range entries {
		if !m.ScheduledDate.Before(today) {
			report.Upcoming = append(report.Upcoming, m)
		} else {
			report.Past = append(report.Past, m)
		}
	}

	costs, err := uc.reportRepo.ListCostsByCategory(ctx, maintenanceCategory)
	if err != nil {
		return nil, err
	}
	report.Costs = costs

	return report, nil
}

// MaintenanceRows returns the raw schedule for export.
func (uc *reportUC) MaintenanceRows(ctx context.Context) ([]models.Maintenance, error) {
	return uc.reportRepo.ListMaintenance(ctx)
}

// IngestCost validates an operational cost event and appends it to the
// ledger.
func (uc *reportUC) IngestCost(ctx context.Context, event models.CostEvent) error {
	if event.Category == "" {
		return fmt.Errorf("%w: cost category is required", errs.ErrValidation)
	}
	if event.Amount <= 0 {
		return fmt.Errorf("%w: cost amount must be positive", errs.ErrValidation)
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = uc.clock.Now()
	}

	cost := &models.Cost{
		ID:         uuid.New(),
		OccurredAt: occurredAt,
		CarID:      event.CarID,
		DriverID:   event.DriverID,
		Category:   event.Category,
		Amount:     event.Amount,
		Notes:      event.Notes,
	}

	if err := uc.reportRepo.InsertCost(ctx, cost); err != nil {
		return err
	}

	logger.Info("Cost event ingested", logrus.Fields{
		"cost_id":  cost.ID,
		"category": cost.Category,
		"amount":   cost.Amount,
	})
	return nil
}
