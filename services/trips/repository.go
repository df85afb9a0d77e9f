package trips

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sgcab/dispatch/internal/pkg/models"
)

// TripRepo defines the ledger-store operations the trip engine needs.
// ClaimTrip and StartTrip are atomic conditional updates: the open-state
// check and the driver assignment happen in a single statement so two
// concurrent claims can never both succeed.
//
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sgcab/dispatch/services/trips TripRepo
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)

	// ClaimTrip assigns the driver to the trip iff it is still open. On a
	// guard failure it returns the current trip (when it exists) together
	// with the typed error so callers can classify the race.
	ClaimTrip(ctx context.Context, tripID, driverID uuid.UUID, carID *uuid.UUID) (*models.Trip, error)

	// StartTrip moves the trip to ongoing, implicitly assigning the driver
	// when no driver holds it yet.
	StartTrip(ctx context.Context, tripID, driverID uuid.UUID, carID *uuid.UUID, startedAt time.Time) (*models.Trip, error)

	// FinishTrip commits the completion mutation and the payment record as
	// one transaction; a completed trip without its payment can never be
	// observed.
	FinishTrip(ctx context.Context, trip *models.Trip, payment *models.Payment) error

	ListOpenTrips(ctx context.Context) ([]*models.Trip, error)
	ListDriverActive(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error)

	GetDriverByActorID(ctx context.Context, actorID uuid.UUID) (*models.Driver, error)
}
