package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgcab/dispatch/internal/pkg/errs"
	"github.com/sgcab/dispatch/internal/pkg/models"
)

var tripTestColumns = []string{
	"id", "sales_id", "driver_id", "car_id", "origin", "destination",
	"started_at", "ended_at", "fare_quote", "final_fare",
	"payment_method", "cash_collected", "status", "created_at",
}

func setupTripRepoTest(t *testing.T) (*TripRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	repo := &TripRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}
	return repo, mock
}

func openTripRow(tripID uuid.UUID, createdAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(tripTestColumns).
		AddRow(tripID, nil, nil, nil, "District 1", nil,
			nil, nil, 100000.0, 0.0,
			nil, 0.0, "booked", createdAt)
}

func TestClaimTrip_Winner(t *testing.T) {
	// Arrange
	repo, mock := setupTripRepoTest(t)
	tripID := uuid.New()
	driverID := uuid.New()
	carID := uuid.New()
	createdAt := time.Now()

	claimedRows := sqlmock.NewRows(tripTestColumns).
		AddRow(tripID, nil, driverID.String(), carID.String(), "District 1", nil,
			nil, nil, 100000.0, 0.0,
			nil, 0.0, "assigned", createdAt)

	mock.ExpectQuery("UPDATE trips").
		WithArgs(driverID, carID, models.TripStatusAssigned, tripID, models.TripStatusBooked, models.TripStatusAssigned).
		WillReturnRows(claimedRows)

	// Act
	trip, err := repo.ClaimTrip(context.Background(), tripID, driverID, &carID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, driverID, *trip.DriverID)
	assert.Equal(t, models.TripStatusAssigned, trip.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimTrip_LoserGetsAlreadyClaimed(t *testing.T) {
	// Arrange
	repo, mock := setupTripRepoTest(t)
	tripID := uuid.New()
	driverID := uuid.New()
	winnerID := uuid.New()
	createdAt := time.Now()

	mock.ExpectQuery("UPDATE trips").
		WithArgs(driverID, nil, models.TripStatusAssigned, tripID, models.TripStatusBooked, models.TripStatusAssigned).
		WillReturnError(sql.ErrNoRows)

	heldRows := sqlmock.NewRows(tripTestColumns).
		AddRow(tripID, nil, winnerID.String(), nil, "District 1", nil,
			nil, nil, 100000.0, 0.0,
			nil, 0.0, "assigned", createdAt)
	mock.ExpectQuery("SELECT (.+) FROM trips WHERE id").
		WithArgs(tripID).
		WillReturnRows(heldRows)

	// Act
	trip, err := repo.ClaimTrip(context.Background(), tripID, driverID, nil)

	// Assert
	assert.ErrorIs(t, err, errs.ErrAlreadyClaimed)
	require.NotNil(t, trip)
	assert.Equal(t, winnerID, *trip.DriverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimTrip_CompletedTripIsInvalidState(t *testing.T) {
	// Arrange
	repo, mock := setupTripRepoTest(t)
	tripID := uuid.New()
	driverID := uuid.New()
	endedAt := time.Now()

	mock.ExpectQuery("UPDATE trips").
		WillReturnError(sql.ErrNoRows)

	// A walk-in style row whose driver was cleared; only the status blocks it.
	completedRows := sqlmock.NewRows(tripTestColumns).
		AddRow(tripID, nil, nil, nil, "District 1", "Airport",
			nil, endedAt, 100000.0, 100000.0,
			"cash", 100000.0, "completed", endedAt)
	mock.ExpectQuery("SELECT (.+) FROM trips WHERE id").
		WithArgs(tripID).
		WillReturnRows(completedRows)

	// Act
	_, err := repo.ClaimTrip(context.Background(), tripID, driverID, nil)

	// Assert
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartTrip_ImplicitAssign(t *testing.T) {
	// Arrange
	repo, mock := setupTripRepoTest(t)
	tripID := uuid.New()
	driverID := uuid.New()
	startedAt := time.Now()

	startedRows := sqlmock.NewRows(tripTestColumns).
		AddRow(tripID, nil, driverID.String(), nil, "District 1", nil,
			startedAt, nil, 100000.0, 0.0,
			nil, 0.0, "ongoing", startedAt)

	mock.ExpectQuery("UPDATE trips").
		WithArgs(driverID, nil, startedAt, models.TripStatusOngoing, tripID, models.TripStatusBooked, models.TripStatusAssigned).
		WillReturnRows(startedRows)

	// Act
	trip, err := repo.StartTrip(context.Background(), tripID, driverID, nil, startedAt)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, driverID, *trip.DriverID)
	assert.Equal(t, models.TripStatusOngoing, trip.Status)
	require.NotNil(t, trip.StartedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartTrip_HeldByOtherDriver(t *testing.T) {
	// Arrange
	repo, mock := setupTripRepoTest(t)
	tripID := uuid.New()
	driverID := uuid.New()
	holderID := uuid.New()
	createdAt := time.Now()

	mock.ExpectQuery("UPDATE trips").
		WillReturnError(sql.ErrNoRows)

	heldRows := sqlmock.NewRows(tripTestColumns).
		AddRow(tripID, nil, holderID.String(), nil, "District 1", nil,
			nil, nil, 100000.0, 0.0,
			nil, 0.0, "assigned", createdAt)
	mock.ExpectQuery("SELECT (.+) FROM trips WHERE id").
		WithArgs(tripID).
		WillReturnRows(heldRows)

	// Act
	_, err := repo.StartTrip(context.Background(), tripID, driverID, nil, time.Now())

	// Assert
	assert.ErrorIs(t, err, errs.ErrNotYourTrip)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinishTrip_CommitsTripAndPaymentTogether(t *testing.T) {
	// Arrange
	repo, mock := setupTripRepoTest(t)
	now := time.Now()
	dest := "Airport"
	method := "cash"
	trip := &models.Trip{
		ID:            uuid.New(),
		Destination:   &dest,
		EndedAt:       &now,
		FinalFare:     110000,
		PaymentMethod: &method,
		CashCollected: 110000,
		Status:        models.TripStatusCompleted,
	}
	payment := &models.Payment{
		ID:         uuid.New(),
		TripID:     trip.ID,
		Method:     method,
		Amount:     110000,
		ReceivedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE trips").
		WithArgs(&dest, trip.EndedAt, 110000.0, &method, 110000.0, models.TripStatusCompleted, trip.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(payment.ID, payment.TripID, method, 110000.0, now, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := repo.FinishTrip(context.Background(), trip, payment)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinishTrip_SecondFinishRollsBack(t *testing.T) {
	// Arrange
	repo, mock := setupTripRepoTest(t)
	now := time.Now()
	dest := "Airport"
	method := "cash"
	trip := &models.Trip{
		ID:            uuid.New(),
		Destination:   &dest,
		EndedAt:       &now,
		FinalFare:     110000,
		PaymentMethod: &method,
		Status:        models.TripStatusCompleted,
	}
	payment := &models.Payment{ID: uuid.New(), TripID: trip.ID, Method: method, Amount: 110000, ReceivedAt: now}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE trips").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	// Act
	err := repo.FinishTrip(context.Background(), trip, payment)

	// Assert
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrip_NotFound(t *testing.T) {
	// Arrange
	repo, mock := setupTripRepoTest(t)
	tripID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM trips WHERE id").
		WithArgs(tripID).
		WillReturnError(sql.ErrNoRows)

	// Act
	trip, err := repo.GetTrip(context.Background(), tripID)

	// Assert
	assert.Nil(t, trip)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrip_SlowQueryHitsStoreTimeout(t *testing.T) {
	// Arrange
	repo, mock := setupTripRepoTest(t)
	repo.cfg.Server.StoreTimeout = 1
	tripID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM trips WHERE id").
		WithArgs(tripID).
		WillDelayFor(3 * time.Second).
		WillReturnRows(openTripRow(tripID, time.Now()))

	// Act
	start := time.Now()
	trip, err := repo.GetTrip(context.Background(), tripID)

	// Assert
	assert.Nil(t, trip)
	assert.ErrorIs(t, err, errs.ErrStorage)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestListOpenTrips_OldestFirst(t *testing.T) {
	// Arrange
	repo, mock := setupTripRepoTest(t)
	older := uuid.New()
	newer := uuid.New()
	base := time.Now()

	rows := sqlmock.NewRows(tripTestColumns).
		AddRow(older, nil, nil, nil, "District 1", nil,
			nil, nil, 100000.0, 0.0, nil, 0.0, "booked", base.Add(-time.Hour)).
		AddRow(newer, nil, nil, nil, "District 3", nil,
			nil, nil, 60000.0, 0.0, nil, 0.0, "booked", base)

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WithArgs(models.TripStatusBooked, models.TripStatusAssigned).
		WillReturnRows(rows)

	// Act
	trips, err := repo.ListOpenTrips(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, older, trips[0].ID)
	assert.Equal(t, newer, trips[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriverByActorID_MissingProfile(t *testing.T) {
	// Arrange
	repo, mock := setupTripRepoTest(t)
	actorID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM drivers WHERE actor_id").
		WithArgs(actorID).
		WillReturnError(sql.ErrNoRows)

	// Act
	driver, err := repo.GetDriverByActorID(context.Background(), actorID)

	// Assert
	assert.Nil(t, driver)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
