package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is the immutable record of money received for a trip. Exactly one
// payment exists per completed trip, created atomically with the trip's
// completion, and its amount always equals the trip's final fare.
type Payment struct {
	ID            uuid.UUID `json:"id" db:"id"`
	TripID        uuid.UUID `json:"trip_id" db:"trip_id"`
	Method        string    `json:"method" db:"method"`
	Amount        float64   `json:"amount" db:"amount"`
	ReceivedAt    time.Time `json:"received_at" db:"received_at"`
	ReferenceCode *string   `json:"reference_code,omitempty" db:"reference_code"`
}

// Cost is an expense entry (fuel, maintenance, fees) not tied 1:1 to a trip.
// Costs enter the ledger through operational events and are read-only to the
// reconciliation engine.
type Cost struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	OccurredAt time.Time  `json:"occurred_at" db:"occurred_at"`
	CarID      *uuid.UUID `json:"car_id,omitempty" db:"car_id"`
	DriverID   *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	Category   string     `json:"category" db:"category"`
	Amount     float64    `json:"amount" db:"amount"`
	Notes      string     `json:"notes,omitempty" db:"notes"`
}

// CostEvent is the wire payload consumed from the ops.cost.logged topic.
type CostEvent struct {
	OccurredAt time.Time  `json:"occurred_at"`
	CarID      *uuid.UUID `json:"car_id,omitempty"`
	DriverID   *uuid.UUID `json:"driver_id,omitempty"`
	Category   string     `json:"category"`
	Amount     float64    `json:"amount"`
	Notes      string     `json:"notes,omitempty"`
}

// TripEvent is published on trip lifecycle transitions.
type TripEvent struct {
	TripID    uuid.UUID  `json:"trip_id"`
	DriverID  *uuid.UUID `json:"driver_id,omitempty"`
	SalesID   *uuid.UUID `json:"sales_id,omitempty"`
	Status    TripStatus `json:"status"`
	FinalFare float64    `json:"final_fare,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}
