package models

import (
	"time"

	"github.com/google/uuid"
)

// CommissionRow is one actor's share of a commission report.
type CommissionRow struct {
	ActorID       uuid.UUID `json:"actor_id"`
	StaffCode     string    `json:"staff_code"`
	FullName      string    `json:"full_name"`
	Trips         int       `json:"trips"`
	Revenue       float64   `json:"revenue"`
	Rate          float64   `json:"rate"`
	Commission    float64   `json:"commission"`
	CashCollected float64   `json:"cash_collected,omitempty"`
}

// CommissionReport aggregates completed trips over a window per actor.
type CommissionReport struct {
	From time.Time       `json:"from"`
	To   time.Time       `json:"to"`
	Rows []CommissionRow `json:"rows"`
}

// Cashbook reconciles money received against money spent for one day.
// Balance may legitimately be negative on days where expenses exceed
// receipts.
type Cashbook struct {
	Day      time.Time `json:"day"`
	Payments []Payment `json:"payments"`
	Costs    []Cost    `json:"costs"`
	TotalIn  float64   `json:"total_in"`
	TotalOut float64   `json:"total_out"`
	Balance  float64   `json:"balance"`
}

// DriverOpsRow is one driver's same-day operational summary. A zero driver
// id marks the bucket of trips that never had a driver assigned.
type DriverOpsRow struct {
	DriverID      uuid.UUID `json:"driver_id"`
	DriverName    string    `json:"driver_name,omitempty"`
	Car           *Car      `json:"car,omitempty"`
	Trips         int       `json:"trips"`
	Revenue       float64   `json:"revenue"`
	CashCollected float64   `json:"cash_collected"`
}

// DriverOpsReport groups a day's trips by driver.
type DriverOpsReport struct {
	Day  time.Time      `json:"day"`
	Rows []DriverOpsRow `json:"rows"`
}

// FleetSummary is the all-time dashboard rollup.
type FleetSummary struct {
	TotalTrips   int     `json:"total_trips"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalCash    float64 `json:"total_cash"`
	TotalCosts   float64 `json:"total_costs"`
	NetProfit    float64 `json:"net_profit"`
}

// MaintenanceReport projects scheduled maintenance alongside the costs the
// ledger already booked for it.
type MaintenanceReport struct {
	Upcoming []Maintenance `json:"upcoming"`
	Past     []Maintenance `json:"past"`
	Costs    []Cost        `json:"costs"`
}

// Maintenance is a scheduled or past service entry for a car. The engine
// only projects these for reporting; they are owned by fleet operations.
type Maintenance struct {
	ID            uuid.UUID `json:"id" db:"id"`
	CarID         uuid.UUID `json:"car_id" db:"car_id"`
	ScheduledDate time.Time `json:"scheduled_date" db:"scheduled_date"`
	OdometerKm    float64   `json:"odometer_km" db:"odometer_km"`
	Task          string    `json:"task" db:"task"`
	EstimatedCost float64   `json:"estimated_cost" db:"estimated_cost"`
	ActualCost    float64   `json:"actual_cost" db:"actual_cost"`
	Notes         string    `json:"notes,omitempty" db:"notes"`
}
