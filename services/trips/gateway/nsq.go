package gateway

import (
	"context"

	"github.com/sgcab/dispatch/internal/pkg/constants"
	"github.com/sgcab/dispatch/internal/pkg/models"
	"github.com/sgcab/dispatch/internal/pkg/nsq"
	"github.com/sgcab/dispatch/services/trips"
)

// TripGW publishes trip lifecycle events to NSQ
type TripGW struct {
	producer *nsq.Producer
	clock    models.Clock
}

// NewTripGW creates a new trip gateway
func NewTripGW(producer *nsq.Producer, clock models.Clock) trips.TripGW {
	return &TripGW{
		producer: producer,
		clock:    clock,
	}
}

// PublishTripAssigned publishes a trip assignment event
func (g *TripGW) PublishTripAssigned(ctx context.Context, trip *models.Trip) error {
	return g.producer.Publish(constants.TopicTripAssigned, g.event(trip))
}

// PublishTripStarted publishes a trip start event
func (g *TripGW) PublishTripStarted(ctx context.Context, trip *models.Trip) error {
	return g.producer.Publish(constants.TopicTripStarted, g.event(trip))
}

// PublishTripCompleted publishes a trip completion event with its payment
func (g *TripGW) PublishTripCompleted(ctx context.Context, trip *models.Trip, payment *models.Payment) error {
	event := g.event(trip)
	event.FinalFare = payment.Amount
	return g.producer.Publish(constants.TopicTripCompleted, event)
}

func (g *TripGW) event(trip *models.Trip) models.TripEvent {
	return models.TripEvent{
		TripID:    trip.ID,
		DriverID:  trip.DriverID,
		SalesID:   trip.SalesID,
		Status:    trip.Status,
		Timestamp: g.clock.Now(),
	}
}
