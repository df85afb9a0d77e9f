package reports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sgcab/dispatch/internal/pkg/models"
)

// ReportRepo defines the read-side ledger queries the reconciliation engine
// needs, plus the single write path for operational cost events. All range
// queries are half-open windows [from, to).
//
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sgcab/dispatch/services/reports ReportRepo
type ReportRepo interface {
	ListTripsEndedBetween(ctx context.Context, from, to time.Time) ([]*models.Trip, error)
	ListTripsStartedBetween(ctx context.Context, from, to time.Time) ([]*models.Trip, error)
	ListPaymentsBetween(ctx context.Context, from, to time.Time) ([]models.Payment, error)
	ListCostsBetween(ctx context.Context, from, to time.Time) ([]models.Cost, error)

	InsertCost(ctx context.Context, cost *models.Cost) error

	GetActor(ctx context.Context, actorID uuid.UUID) (*models.Actor, error)
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	GetCar(ctx context.Context, carID uuid.UUID) (*models.Car, error)

	FleetTotals(ctx context.Context) (*models.FleetSummary, error)
	ListMaintenance(ctx context.Context) ([]models.Maintenance, error)
	ListCostsByCategory(ctx context.Context, category string) ([]models.Cost, error)
}
