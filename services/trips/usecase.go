package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/sgcab/dispatch/internal/pkg/models"
)

// TripUC defines the trip lifecycle operations exposed by the engine
//
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sgcab/dispatch/services/trips TripUC
type TripUC interface {
	CreateBooked(ctx context.Context, auth models.AuthContext, req models.BookTripRequest) (*models.TripOutcome, error)
	Claim(ctx context.Context, auth models.AuthContext, tripID uuid.UUID) (*models.Trip, error)
	Start(ctx context.Context, auth models.AuthContext, tripID uuid.UUID) (*models.TripOutcome, error)
	StartWalkIn(ctx context.Context, auth models.AuthContext, req models.WalkInRequest) (*models.TripOutcome, error)
	Finish(ctx context.Context, auth models.AuthContext, tripID uuid.UUID, req models.FinishTripRequest) (*models.TripOutcome, error)
	ListOpenTrips(ctx context.Context) ([]*models.Trip, error)
	ListMyActive(ctx context.Context, auth models.AuthContext) ([]*models.Trip, error)
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
}
