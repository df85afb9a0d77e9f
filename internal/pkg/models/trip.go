package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusBooked    TripStatus = "booked"
	TripStatusAssigned  TripStatus = "assigned"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
)

// OpenStatuses are the statuses a trip may hold while still claimable.
var OpenStatuses = []TripStatus{TripStatusBooked, TripStatusAssigned}

// Trip represents a single ride engagement from booking to payment.
// Trips are never deleted; they are the financial record of the business.
type Trip struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	SalesID       *uuid.UUID `json:"sales_id,omitempty" db:"sales_id"`
	DriverID      *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	CarID         *uuid.UUID `json:"car_id,omitempty" db:"car_id"`
	Origin        string     `json:"origin" db:"origin"`
	Destination   *string    `json:"destination,omitempty" db:"destination"`
	StartedAt     *time.Time `json:"started_at,omitempty" db:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty" db:"ended_at"`
	FareQuote     float64    `json:"fare_quote" db:"fare_quote"`
	FinalFare     float64    `json:"final_fare" db:"final_fare"`
	PaymentMethod *string    `json:"payment_method,omitempty" db:"payment_method"`
	CashCollected float64    `json:"cash_collected" db:"cash_collected"`
	Status        TripStatus `json:"status" db:"status"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// IsOpen reports whether the trip can still be claimed by a driver.
func (t *Trip) IsOpen() bool {
	return t.DriverID == nil &&
		(t.Status == TripStatusBooked || t.Status == TripStatusAssigned)
}

// TripOutcome wraps a trip mutation result together with any non-fatal
// warnings raised during the transition (lenient fare parsing, redundant
// start requests).
type TripOutcome struct {
	Trip     *Trip    `json:"trip"`
	Warnings []string `json:"warnings,omitempty"`
}

// BookTripRequest is the payload for a sales booking.
type BookTripRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination,omitempty"`
	FareQuote   string `json:"fare_quote,omitempty"`
}

// WalkInRequest is the payload for a driver starting a trip without a
// prior booking.
type WalkInRequest struct {
	Origin    string     `json:"origin"`
	FareQuote string     `json:"fare_quote,omitempty"`
	SalesID   *uuid.UUID `json:"sales_id,omitempty"`
}

// FinishTripRequest is the payload for completing a trip.
type FinishTripRequest struct {
	Destination   string  `json:"destination"`
	FinalFare     string  `json:"final_fare,omitempty"`
	PaymentMethod string  `json:"payment_method"`
	CashCollected string  `json:"cash_collected,omitempty"`
	PaymentRef    *string `json:"payment_ref,omitempty"`
}
