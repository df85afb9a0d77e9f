package trips

import (
	"context"

	"github.com/sgcab/dispatch/internal/pkg/models"
)

// TripGW defines the interface for trip event publishing
//
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/sgcab/dispatch/services/trips TripGW
type TripGW interface {
	PublishTripAssigned(ctx context.Context, trip *models.Trip) error
	PublishTripStarted(ctx context.Context, trip *models.Trip) error
	PublishTripCompleted(ctx context.Context, trip *models.Trip, payment *models.Payment) error
}
