package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sgcab/dispatch/internal/pkg/database"
	"github.com/sgcab/dispatch/internal/pkg/errs"
	"github.com/sgcab/dispatch/internal/pkg/models"
)

const tripColumns = `
	id, sales_id, driver_id, car_id, origin, destination,
	started_at, ended_at, fare_quote, final_fare,
	payment_method, cash_collected, status, created_at`

// TripRepo is the PostgreSQL implementation of the trip ledger store.
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// nullUUID converts an optional uuid into a bindable SQL value
func nullUUID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

// CreateTrip inserts a new trip
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	query := `
		INSERT INTO trips (
			id, sales_id, driver_id, car_id, origin, destination,
			started_at, ended_at, fare_quote, final_fare,
			payment_method, cash_collected, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		trip.ID,
		nullUUID(trip.SalesID),
		nullUUID(trip.DriverID),
		nullUUID(trip.CarID),
		trip.Origin,
		trip.Destination,
		trip.StartedAt,
		trip.EndedAt,
		trip.FareQuote,
		trip.FinalFare,
		trip.PaymentMethod,
		trip.CashCollected,
		trip.Status,
		trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert trip: %v", errs.ErrStorage, err)
	}

	return nil
}

// GetTrip retrieves a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	query := `SELECT` + tripColumns + ` FROM trips WHERE id = $1`

	trip, err := r.scanTrip(r.db.QueryRowContext(ctx, query, tripID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: trip %s", errs.ErrNotFound, tripID)
		}
		return nil, fmt.Errorf("%w: failed to get trip: %v", errs.ErrStorage, err)
	}

	return trip, nil
}

// ClaimTrip atomically assigns a driver to an open trip. The open-state
// guard and the assignment are one conditional update; losing the race
// affects zero rows and is classified by re-reading the trip.
func (r *TripRepo) ClaimTrip(ctx context.Context, tripID, driverID uuid.UUID, carID *uuid.UUID) (*models.Trip, error) {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	query := `
		UPDATE trips
		SET driver_id = $1, car_id = $2, status = $3
		WHERE id = $4
		  AND driver_id IS NULL
		  AND status IN ($5, $6)
		RETURNING` + tripColumns

	trip, err := r.scanTrip(r.db.QueryRowContext(
		ctx, query,
		driverID, nullUUID(carID), models.TripStatusAssigned,
		tripID, models.TripStatusBooked, models.TripStatusAssigned,
	))
	if err == nil {
		return trip, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("%w: failed to claim trip: %v", errs.ErrStorage, err)
	}

	// The guard failed; fetch the current state to say why.
	current, getErr := r.GetTrip(ctx, tripID)
	if getErr != nil {
		return nil, getErr
	}
	switch {
	case current.DriverID != nil:
		return current, fmt.Errorf("%w: trip %s is held by another driver", errs.ErrAlreadyClaimed, tripID)
	default:
		return current, fmt.Errorf("%w: trip %s is %s", errs.ErrInvalidState, tripID, current.Status)
	}
}

// StartTrip atomically moves a trip to ongoing, implicitly assigning the
// driver when the trip is still unclaimed. The same single-statement guard
// as ClaimTrip protects against concurrent starts.
func (r *TripRepo) StartTrip(ctx context.Context, tripID, driverID uuid.UUID, carID *uuid.UUID, startedAt time.Time) (*models.Trip, error) {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	query := `
		UPDATE trips
		SET driver_id = COALESCE(driver_id, $1),
		    car_id = CASE WHEN driver_id IS NULL THEN $2 ELSE car_id END,
		    started_at = $3,
		    status = $4
		WHERE id = $5
		  AND status IN ($6, $7)
		  AND (driver_id IS NULL OR driver_id = $1)
		RETURNING` + tripColumns

	trip, err := r.scanTrip(r.db.QueryRowContext(
		ctx, query,
		driverID, nullUUID(carID), startedAt, models.TripStatusOngoing,
		tripID, models.TripStatusBooked, models.TripStatusAssigned,
	))
	if err == nil {
		return trip, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("%w: failed to start trip: %v", errs.ErrStorage, err)
	}

	current, getErr := r.GetTrip(ctx, tripID)
	if getErr != nil {
		return nil, getErr
	}
	if current.DriverID != nil && *current.DriverID != driverID {
		return current, fmt.Errorf("%w: trip %s", errs.ErrNotYourTrip, tripID)
	}
	return current, fmt.Errorf("%w: trip %s is %s", errs.ErrInvalidState, tripID, current.Status)
}

// FinishTrip commits the trip completion and its payment in one
// transaction. The status guard makes a second finish a no-op that surfaces
// as ErrInvalidState, so a completed trip can never gain a second payment.
func (r *TripRepo) FinishTrip(ctx context.Context, trip *models.Trip, payment *models.Payment) error {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", errs.ErrStorage, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE trips
		SET destination = $1, ended_at = $2, final_fare = $3,
		    payment_method = $4, cash_collected = $5, status = $6
		WHERE id = $7 AND status <> $6
	`,
		trip.Destination,
		trip.EndedAt,
		trip.FinalFare,
		trip.PaymentMethod,
		trip.CashCollected,
		models.TripStatusCompleted,
		trip.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to complete trip: %v", errs.ErrStorage, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to get rows affected: %v", errs.ErrStorage, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: trip %s is already completed", errs.ErrInvalidState, trip.ID)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO payments (id, trip_id, method, amount, received_at, reference_code)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		payment.ID,
		payment.TripID,
		payment.Method,
		payment.Amount,
		payment.ReceivedAt,
		payment.ReferenceCode,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert payment: %v", errs.ErrStorage, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", errs.ErrStorage, err)
	}

	return nil
}

// ListOpenTrips returns claimable trips, oldest first
func (r *TripRepo) ListOpenTrips(ctx context.Context) ([]*models.Trip, error) {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	query := `
		SELECT` + tripColumns + `
		FROM trips
		WHERE driver_id IS NULL AND status IN ($1, $2)
		ORDER BY created_at ASC, id ASC
	`

	return r.queryTrips(ctx, query, models.TripStatusBooked, models.TripStatusAssigned)
}

// ListDriverActive returns a driver's assigned and ongoing trips
func (r *TripRepo) ListDriverActive(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error) {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	query := `
		SELECT` + tripColumns + `
		FROM trips
		WHERE driver_id = $1 AND status IN ($2, $3)
		ORDER BY created_at DESC
	`

	return r.queryTrips(ctx, query, driverID, models.TripStatusAssigned, models.TripStatusOngoing)
}

// GetDriverByActorID retrieves the driver profile behind an actor
func (r *TripRepo) GetDriverByActorID(ctx context.Context, actorID uuid.UUID) (*models.Driver, error) {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	query := `SELECT id, actor_id, car_id, license_no FROM drivers WHERE actor_id = $1`

	driver := &models.Driver{}
	var carID sql.NullString
	var licenseNo sql.NullString

	err := r.db.QueryRowContext(ctx, query, actorID).Scan(
		&driver.ID,
		&driver.ActorID,
		&carID,
		&licenseNo,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: no driver profile for actor %s", errs.ErrNotFound, actorID)
		}
		return nil, fmt.Errorf("%w: failed to get driver: %v", errs.ErrStorage, err)
	}

	if carID.Valid {
		id, err := uuid.Parse(carID.String)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid car id on driver %s: %v", errs.ErrStorage, driver.ID, err)
		}
		driver.CarID = &id
	}
	if licenseNo.Valid {
		driver.LicenseNo = licenseNo.String
	}

	return driver, nil
}

func (r *TripRepo) queryTrips(ctx context.Context, query string, args ...interface{}) ([]*models.Trip, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query trips: %v", errs.ErrStorage, err)
	}
	defer rows.Close()

	var result []*models.Trip
	for rows.Next() {
		trip, err := r.scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan trip: %v", errs.ErrStorage, err)
		}
		result = append(result, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate trips: %v", errs.ErrStorage, err)
	}

	return result, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *TripRepo) scanTrip(row rowScanner) (*models.Trip, error) {
	trip := &models.Trip{}
	var salesID, driverID, carID sql.NullString
	var destination, paymentMethod sql.NullString
	var startedAt, endedAt sql.NullTime

	err := row.Scan(
		&trip.ID,
		&salesID,
		&driverID,
		&carID,
		&trip.Origin,
		&destination,
		&startedAt,
		&endedAt,
		&trip.FareQuote,
		&trip.FinalFare,
		&paymentMethod,
		&trip.CashCollected,
		&trip.Status,
		&trip.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if salesID.Valid {
		id, err := uuid.Parse(salesID.String)
		if err != nil {
			return nil, err
		}
		trip.SalesID = &id
	}
	if driverID.Valid {
		id, err := uuid.Parse(driverID.String)
		if err != nil {
			return nil, err
		}
		trip.DriverID = &id
	}
	if carID.Valid {
		id, err := uuid.Parse(carID.String)
		if err != nil {
			return nil, err
		}
		trip.CarID = &id
	}
	if destination.Valid {
		trip.Destination = &destination.String
	}
	if paymentMethod.Valid {
		trip.PaymentMethod = &paymentMethod.String
	}
	if startedAt.Valid {
		trip.StartedAt = &startedAt.Time
	}
	if endedAt.Valid {
		trip.EndedAt = &endedAt.Time
	}

	return trip, nil
}
