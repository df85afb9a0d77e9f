package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sgcab/dispatch/internal/pkg/database"
	"github.com/sgcab/dispatch/internal/pkg/errs"
	"github.com/sgcab/dispatch/internal/pkg/models"
)

// AccountRepo is the PostgreSQL implementation of staff account storage.
type AccountRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(cfg *models.Config, db *sqlx.DB) *AccountRepo {
	return &AccountRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateActor persists a new staff actor with their password hash
func (r *AccountRepo) CreateActor(ctx context.Context, actor *models.Actor, passwordHash string) error {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	query := `
		INSERT INTO actors (id, email, staff_code, full_name, role,
		                    commission_rate, active, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		actor.ID,
		actor.Email,
		actor.StaffCode,
		actor.FullName,
		actor.Role,
		actor.CommissionRate,
		actor.Active,
		passwordHash,
		actor.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to create actor: %v", errs.ErrStorage, err)
	}

	return nil
}

// GetActor retrieves an actor by id
func (r *AccountRepo) GetActor(ctx context.Context, actorID uuid.UUID) (*models.Actor, error) {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	query := `
		SELECT id, email, staff_code, full_name, role, commission_rate, active, created_at
		FROM actors
		WHERE id = $1
	`

	actor := &models.Actor{}
	err := r.db.GetContext(ctx, actor, query, actorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: actor %s", errs.ErrNotFound, actorID)
		}
		return nil, fmt.Errorf("%w: failed to get actor: %v", errs.ErrStorage, err)
	}

	return actor, nil
}

// GetActorCredentials retrieves an actor and their password hash by email
func (r *AccountRepo) GetActorCredentials(ctx context.Context, email string) (*models.Actor, string, error) {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	query := `
		SELECT id, email, staff_code, full_name, role, commission_rate, active, created_at, password_hash
		FROM actors
		WHERE email = $1
	`

	actor := &models.Actor{}
	var hash string
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&actor.ID,
		&actor.Email,
		&actor.StaffCode,
		&actor.FullName,
		&actor.Role,
		&actor.CommissionRate,
		&actor.Active,
		&actor.CreatedAt,
		&hash,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, "", fmt.Errorf("%w: no actor with email %s", errs.ErrNotFound, email)
		}
		return nil, "", fmt.Errorf("%w: failed to get credentials: %v", errs.ErrStorage, err)
	}

	return actor, hash, nil
}

// ListActorsByRole returns all actors holding a role, active first
func (r *AccountRepo) ListActorsByRole(ctx context.Context, role string) ([]models.Actor, error) {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	query := `
		SELECT id, email, staff_code, full_name, role, commission_rate, active, created_at
		FROM actors
		WHERE role = $1
		ORDER BY active DESC, staff_code ASC
	`

	var actors []models.Actor
	if err := r.db.SelectContext(ctx, &actors, query, role); err != nil {
		return nil, fmt.Errorf("%w: failed to list actors: %v", errs.ErrStorage, err)
	}

	return actors, nil
}

// EmailExists reports whether an email is already taken
func (r *AccountRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM actors WHERE email = $1)`

	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("%w: failed to check email: %v", errs.ErrStorage, err)
	}

	return exists, nil
}

// CountActorsByRole counts existing actors with a role, active or not
func (r *AccountRepo) CountActorsByRole(ctx context.Context, role string) (int, error) {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	var count int
	query := `SELECT COUNT(*) FROM actors WHERE role = $1`

	if err := r.db.GetContext(ctx, &count, query, role); err != nil {
		return 0, fmt.Errorf("%w: failed to count actors: %v", errs.ErrStorage, err)
	}

	return count, nil
}

// DeactivateActor flips an actor inactive. Rows are never deleted.
func (r *AccountRepo) DeactivateActor(ctx context.Context, actorID uuid.UUID) error {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	query := `UPDATE actors SET active = FALSE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, actorID)
	if err != nil {
		return fmt.Errorf("%w: failed to deactivate actor: %v", errs.ErrStorage, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read deactivate result: %v", errs.ErrStorage, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: actor %s", errs.ErrNotFound, actorID)
	}

	return nil
}

// CreateDriver persists the operational profile behind a driver actor
func (r *AccountRepo) CreateDriver(ctx context.Context, driver *models.Driver) error {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	query := `
		INSERT INTO drivers (id, actor_id, car_id, license_no)
		VALUES ($1, $2, $3, $4)
	`

	var carID interface{}
	if driver.CarID != nil {
		carID = *driver.CarID
	}

	_, err := r.db.ExecContext(ctx, query, driver.ID, driver.ActorID, carID, driver.LicenseNo)
	if err != nil {
		return fmt.Errorf("%w: failed to create driver: %v", errs.ErrStorage, err)
	}

	return nil
}

// GetDriverByActorID retrieves the driver profile owned by an actor
func (r *AccountRepo) GetDriverByActorID(ctx context.Context, actorID uuid.UUID) (*models.Driver, error) {
	ctx, cancel := database.StoreContext(ctx, r.cfg)
	defer cancel()

	query := `SELECT id, actor_id, car_id, license_no FROM drivers WHERE actor_id = $1`

	driver := &models.Driver{}
	var carID, licenseNo sql.NullString

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
