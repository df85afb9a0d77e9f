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

// ReportRepo is the PostgreSQL implementation of the reconciliation queries.
type ReportRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(cfg *models.Config, db *sqlx.DB) *ReportRepo {
	return &ReportRepo{
		cfg: cfg,
		db:  db,
	}
}

// ListTripsEndedBetween returns trips whose ended_at falls in [from, to)
func (r *ReportRepo) ListTripsEndedBetween(ctx context.Context, from, to time.Time) ([]*models.Trip, error) {
	query := `
		SELECT id, sales_id, driver_id, car_id, origin, destination,
		       started_at, ended_at, fare_quote, final_fare,
		       payment_method, cash_collected, status, created_at
		FROM trips
		WHERE ended_at >= $1 AND ended_at < $2
		ORDER BY ended_at ASC
	`
	return r.queryTrips(ctx, query, from, to)
}

// ListTripsStartedBetween returns trips whose started_at falls in [from, to)
func (r *ReportRepo) ListTripsStartedBetween(ctx context.Context, from, to time.Time) ([]*models.Trip, error) {
	query := `
		SELECT id, sales_id, driver_id, car_id, origin, destination,
		       started_at, ended_at, fare_quote, final_fare,
		       payment_method, cash_collected, status, created_at
		FROM trips
		WHERE started_at >= $1 AND started_at < $2
		ORDER BY started_at ASC
	`
	return r.queryTrips(ctx, query, from, to)
}

// ListPaymentsBetween returns payments received in [from, to)
func (r *ReportRepo) ListPaymentsBetween(ctx context.Context, from, to time.Time) ([]models.Payment, error) {
	query := `
		SELECT id, trip_id, method, amount, received_at, reference_code
		FROM payments
		WHERE received_at >= $1 AND received_at < $2
		ORDER BY received_at ASC
	`

	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query payments: %v", errs.ErrStorage, err)
	}
	defer rows.Close()

	var result []models.Payment
	for rows.Next() {
		var p models.Payment
		var ref sql.NullString
		if err := rows.Scan(&p.ID, &p.TripID, &p.Method, &p.Amount, &p.ReceivedAt, &ref); err != nil {
			return nil, fmt.Errorf("%w: failed to scan payment: %v", errs.ErrStorage, err)
		}
		if ref.Valid {
			p.ReferenceCode = &ref.String
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate payments: %v", errs.ErrStorage, err)
	}

	return result, nil
}

// ListCostsBetween returns costs that occurred in [from, to)
func (r *ReportRepo) ListCostsBetween(ctx context.Context, from, to time.Time) ([]models.Cost, error) {
	query := `
		SELECT id, occurred_at, car_id, driver_id, category, amount, notes
		FROM costs
		WHERE occurred_at >= $1 AND occurred_at < $2
		ORDER BY occurred_at ASC
	`
	return r.queryCosts(ctx, query, from, to)
}

// ListCostsByCategory returns all costs in a category, newest first
func (r *ReportRepo) ListCostsByCategory(ctx context.Context, category string) ([]models.Cost, error) {
	query := `
		SELECT id, occurred_at, car_id, driver_id, category, amount, notes
		FROM costs
		WHERE category = $1
		ORDER BY occurred_at DESC
	`
	return r.queryCosts(ctx, query, category)
}

// InsertCost records an operational cost event
func (r *ReportRepo) InsertCost(ctx context.Context, cost *models.Cost) error {
	query := `
		INSERT INTO costs (id, occurred_at, car_id, driver_id, category, amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	_, err := r.db.ExecContext(
		ctx,
		query,
		cost.ID,
		cost.OccurredAt,
		nullUUID(cost.CarID),
		nullUUID(cost.DriverID),
		cost.Category,
		cost.Amount,
		cost.Notes,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert cost: %v", errs.ErrStorage, err)
	}

	return nil
}

// GetActor retrieves an actor by id
func (r *ReportRepo) GetActor(ctx context.Context, actorID uuid.UUID) (*models.Actor, error) {
	query := `
		SELECT id, email, staff_code, full_name, role, commission_rate, active, created_at
		FROM actors
		WHERE id = $1
	`

	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	actor := &models.Actor{}
	err := r.db.QueryRowContext(ctx, query, actorID).Scan(
		&actor.ID,
		&actor.Email,
		&actor.StaffCode,
		&actor.FullName,
		&actor.Role,
		&actor.CommissionRate,
		&actor.Active,
		&actor.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: actor %s", errs.ErrNotFound, actorID)
		}
		return nil, fmt.Errorf("%w: failed to get actor: %v", errs.ErrStorage, err)
	}

	return actor, nil
}

// GetDriver retrieves a driver profile by id
func (r *ReportRepo) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	query := `SELECT id, actor_id, car_id, license_no FROM drivers WHERE id = $1`

	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	driver := &models.Driver{}
	var carID, licenseNo sql.NullString

	err := r.db.QueryRowContext(ctx, query, driverID).Scan(
		&driver.ID,
		&driver.ActorID,
		&carID,
		&licenseNo,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: driver %s", errs.ErrNotFound, driverID)
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

// GetCar retrieves a car by id
func (r *ReportRepo) GetCar(ctx context.Context, carID uuid.UUID) (*models.Car, error) {
	query := `SELECT id, plate, make, model, year FROM cars WHERE id = $1`

	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	car := &models.Car{}
	err := r.db.QueryRowContext(ctx, query, carID).Scan(
		&car.ID,
		&car.Plate,
		&car.Make,
		&car.Model,
		&car.Year,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: car %s", errs.ErrNotFound, carID)
		}
		return nil, fmt.Errorf("%w: failed to get car: %v", errs.ErrStorage, err)
	}

	return car, nil
}

// FleetTotals returns the all-time dashboard rollup
func (r *ReportRepo) FleetTotals(ctx context.Context) (*models.FleetSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM trips),
			(SELECT COALESCE(SUM(final_fare), 0) FROM trips),
			(SELECT COALESCE(SUM(cash_collected), 0) FROM trips),
			(SELECT COALESCE(SUM(amount), 0) FROM costs)
	`

	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	summary := &models.FleetSummary{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&summary.TotalTrips,
		&summary.TotalRevenue,
		&summary.TotalCash,
		&summary.TotalCosts,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query fleet totals: %v", errs.ErrStorage, err)
	}

	summary.NetProfit = summary.TotalRevenue - summary.TotalCosts
	return summary, nil
}

// ListMaintenance returns all maintenance entries ordered by schedule
func (r *ReportRepo) ListMaintenance(ctx context.Context) ([]models.Maintenance, error) {
	query := `
		SELECT id, car_id, scheduled_date, odometer_km, task,
		       estimated_cost, actual_cost, notes
		FROM maintenance
		ORDER BY scheduled_date ASC
	`

	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query maintenance: %v", errs.ErrStorage, err)
	}
	defer rows.Close()

	var result []models.Maintenance
	for rows.Next() {
		var m models.Maintenance
		var notes sql.NullString
		if err := rows.Scan(&m.ID, &m.CarID, &m.ScheduledDate, &m.OdometerKm,
			&m.Task, &m.EstimatedCost, &m.ActualCost, &notes); err != nil {
			return nil, fmt.Errorf("%w: failed to scan maintenance: %v", errs.ErrStorage, err)
		}
		if notes.Valid {
			m.Notes = notes.String
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate maintenance: %v", errs.ErrStorage, err)
	}

	return result, nil
}

func (r *ReportRepo) queryCosts(ctx context.Context, query string, args ...interface{}) ([]models.Cost, error) {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query costs: %v", errs.ErrStorage, err)
	}
	defer rows.Close()

	var result []models.Cost
	for rows.Next() {
		var c models.Cost
		var carID, driverID sql.NullString
		var notes sql.NullString
		if err := rows.Scan(&c.ID, &c.OccurredAt, &carID, &driverID, &c.Category, &c.Amount, &notes); err != nil {
			return nil, fmt.Errorf("%w: failed to scan cost: %v", errs.ErrStorage, err)
		}
		if carID.Valid {
			id, err := uuid.Parse(carID.String)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid car id on cost %s: %v", errs.ErrStorage, c.ID, err)
			}
			c.CarID = &id
		}
		if driverID.Valid {
			id, err := uuid.Parse(driverID.String)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid driver id on cost %s: %v", errs.ErrStorage, c.ID, err)
			}
			c.DriverID = &id
		}
		if notes.Valid {
			c.Notes = notes.String
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate costs: %v", errs.ErrStorage, err)
	}

	return result, nil
}

func (r *ReportRepo) queryTrips(ctx context.Context, query string, args ...interface{}) ([]*models.Trip, error) {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query trips: %v", errs.ErrStorage, err)
	}
	defer rows.Close()

	var result []*models.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
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

func nullUUID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

func scanTrip(rows *sql.Rows) (*models.Trip, error) {
	trip := &models.Trip{}
	var salesID, driverID, carID sql.NullString
	var destination, paymentMethod sql.NullString
	var startedAt, endedAt sql.NullTime

	err := rows.Scan(
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
