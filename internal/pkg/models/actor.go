package models

import (
	"time"

	"github.com/google/uuid"
)

// Actor roles
const (
	RoleSales      = "sales"
	RoleDriver     = "driver"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleAccountant = "accountant"
)

// Default commission rates applied when an actor has none configured
const (
	DefaultSalesRate  = 0.05
	DefaultDriverRate = 0.40
)

// Actor is a staff member: sales, driver or back office.
type Actor struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	StaffCode      string    `json:"staff_code" db:"staff_code"`
	FullName       string    `json:"full_name" db:"full_name"`
	Role           string    `json:"role" db:"role"`
	CommissionRate float64   `json:"commission_rate" db:"commission_rate"`
	Active         bool      `json:"active" db:"active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Rate returns the actor's commission rate, falling back to the role
// default when unset.
func (a *Actor) Rate() float64 {
	if a.CommissionRate > 0 {
		return a.CommissionRate
	}
	switch a.Role {
	case RoleDriver:
		return DefaultDriverRate
	default:
		return DefaultSalesRate
	}
}

// Driver is the operational profile behind a driver actor. CarID is the
// vehicle currently assigned to the driver and is snapshotted onto trips at
// claim time.
type Driver struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	ActorID   uuid.UUID  `json:"actor_id" db:"actor_id"`
	CarID     *uuid.UUID `json:"car_id,omitempty" db:"car_id"`
	LicenseNo string     `json:"license_no,omitempty" db:"license_no"`
}

// Car is a fleet vehicle.
type Car struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Plate string    `json:"plate" db:"plate"`
	Make  string    `json:"make,omitempty" db:"make"`
	Model string    `json:"model,omitempty" db:"model"`
	Year  int       `json:"year,omitempty" db:"year"`
}

// AuthContext is the caller identity extracted from the session token. The
// engine trusts the actor id and role carried here; which operations a role
// may invoke is checked once at the handler boundary.
type AuthContext struct {
	ActorID uuid.UUID
	Role    string
}

// CanBookTrips reports whether the caller may create bookings.
func (a AuthContext) CanBookTrips() bool { return a.Role == RoleSales }

// CanDriveTrips reports whether the caller may claim, start and finish trips.
func (a AuthContext) CanDriveTrips() bool { return a.Role == RoleDriver }

// CanViewReports reports whether the caller may read reconciliation reports.
func (a AuthContext) CanViewReports() bool {
	switch a.Role {
	case RoleAdmin, RoleManager, RoleAccountant:
		return true
	}
	return false
}

// CanManageStaff reports whether the caller may provision staff accounts.
func (a AuthContext) CanManageStaff() bool {
	return a.Role == RoleAdmin || a.Role == RoleManager
}
