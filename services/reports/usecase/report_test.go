package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgcab/dispatch/internal/pkg/errs"
	"github.com/sgcab/dispatch/internal/pkg/models"
	"github.com/sgcab/dispatch/services/reports"
	"github.com/sgcab/dispatch/services/reports/mocks"
)

var testNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func newTestReportUC(t *testing.T) (*mocks.MockReportRepo, *reportUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockReportRepo(ctrl)
	uc := NewReportUC(&models.Config{}, models.FixedClock{T: testNow}, mockRepo, nil).(*reportUC)
	return mockRepo, uc
}

func completedTrip(salesID, driverID *uuid.UUID, fare, cash float64, endedAt time.Time) *models.Trip {
	return &models.Trip{
		ID:            uuid.New(),
		SalesID:       salesID,
		DriverID:      driverID,
		FinalFare:     fare,
		CashCollected: cash,
		EndedAt:       &endedAt,
		Status:        models.TripStatusCompleted,
	}
}

func TestSalesCommission_GroupsBySalesActor(t *testing.T) {
	// Arrange
	mockRepo, uc := newTestReportUC(t)
	day := time.Date(2026, 3, 13, 10, 0, 0, 0, time.UTC)
	from := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	aliceID := uuid.New()
	bobID := uuid.New()
	ended := from.Add(8 * time.Hour)

	mockRepo.EXPECT().
		ListTripsEndedBetween(gomock.Any(), from, to).
		Return([]*models.Trip{
			completedTrip(&aliceID, nil, 100000, 100000, ended),
			completedTrip(&aliceID, nil, 50000, 50000, ended),
			completedTrip(&bobID, nil, 80000, 80000, ended),
			// Walk-in: no sales actor, earns no sales commission.
			completedTrip(nil, nil, 40000, 40000, ended),
		}, nil)
	mockRepo.EXPECT().GetActor(gomock.Any(), aliceID).
		Return(&models.Actor{ID: aliceID, StaffCode: "alice01", FullName: "Alice", Role: models.RoleSales, CommissionRate: 0.1}, nil)
	mockRepo.EXPECT().GetActor(gomock.Any(), bobID).
		Return(&models.Actor{ID: bobID, StaffCode: "bob02", FullName: "Bob", Role: models.RoleSales}, nil)

	// Act
	report, err := uc.SalesCommission(context.Background(), day, reports.WindowDaily)

	// Assert
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)

	byActor := map[uuid.UUID]models.CommissionRow{}
	for _, row := range report.Rows {
		byActor[row.ActorID] = row
	}

	alice := byActor[aliceID]
	assert.Equal(t, 2, alice.Trips)
	assert.Equal(t, 150000.0, alice.Revenue)
	assert.Equal(t, 15000.0, alice.Commission)

	// Rate falls back to the sales default when unset.
	bob := byActor[bobID]
	assert.Equal(t, models.DefaultSalesRate, bob.Rate)
	assert.Equal(t, 4000.0, bob.Commission)
}

func TestSalesCommission_RowsOrderedByActorID(t *testing.T) {
	// Arrange
	mockRepo, uc := newTestReportUC(t)
	from := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	ended := from.Add(time.Hour)

	first := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	second := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")

	mockRepo.EXPECT().
		ListTripsEndedBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Trip{
			completedTrip(&second, nil, 10000, 10000, ended),
			completedTrip(&first, nil, 20000, 20000, ended),
		}, nil)
	mockRepo.EXPECT().GetActor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID) (*models.Actor, error) {
			return &models.Actor{ID: id, Role: models.RoleSales}, nil
		}).Times(2)

	// Act
	report, err := uc.SalesCommission(context.Background(), from, reports.WindowDaily)

	// Assert
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, first, report.Rows[0].ActorID)
	assert.Equal(t, second, report.Rows[1].ActorID)
}

func TestSalesCommission_MonthlyEqualsSumOfDailyReports(t *testing.T) {
	// Arrange
	mockRepo, uc := newTestReportUC(t)

	aliceID := uuid.New()
	bobID := uuid.New()
	actors := map[uuid.UUID]*models.Actor{
		aliceID: {ID: aliceID, Role: models.RoleSales, CommissionRate: 0.1},
		bobID:   {ID: bobID, Role: models.RoleSales},
	}

	monthStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	trips := []*models.Trip{
		completedTrip(&aliceID, nil, 100000, 100000, monthStart.Add(9*time.Hour)),
		completedTrip(&bobID, nil, 80000, 80000, monthStart.AddDate(0, 0, 4).Add(12*time.Hour)),
		completedTrip(&aliceID, nil, 55000, 55000, monthStart.AddDate(0, 0, 4).Add(20*time.Hour)),
		completedTrip(&aliceID, nil, 70000, 70000, monthStart.AddDate(0, 0, 27).Add(7*time.Hour)),
		completedTrip(&bobID, nil, 45000, 45000, monthStart.AddDate(0, 0, 30).Add(23*time.Hour)),
	}

	mockRepo.EXPECT().
		ListTripsEndedBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, from, to time.Time) ([]*models.Trip, error) {
			var out []*models.Trip
			for _, trip := range trips {
				if !trip.EndedAt.Before(from) && trip.EndedAt.Before(to) {
					out = append(out, trip)
				}
			}
			return out, nil
		}).AnyTimes()
	mockRepo.EXPECT().GetActor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID) (*models.Actor, error) {
			return actors[id], nil
		}).AnyTimes()

	// Act
	monthly, err := uc.SalesCommission(context.Background(), monthStart, reports.WindowMonthly)
	require.NoError(t, err)

	type totals struct {
		trips      int
		revenue    float64
		commission float64
	}
	daily := map[uuid.UUID]*totals{}
	for day := monthStart; day.Month() == time.March; day = day.AddDate(0, 0, 1) {
		report, err := uc.SalesCommission(context.Background(), day, reports.WindowDaily)
		require.NoError(t, err)
		for _, row := range report.Rows {
			agg := daily[row.ActorID]
			if agg == nil {
				agg = &totals{}
				daily[row.ActorID] = agg
			}
			agg.trips += row.Trips
			agg.revenue += row.Revenue
			agg.commission += row.Commission
		}
	}

	// Assert: splitting the month into days moves no money.
	require.Len(t, monthly.Rows, 2)
	assert.Len(t, daily, len(monthly.Rows))
	for _, row := range monthly.Rows {
		agg := daily[row.ActorID]
		require.NotNil(t, agg)
		assert.Equal(t, row.Trips, agg.trips)
		assert.InDelta(t, row.Revenue, agg.revenue, 1e-6)
		assert.InDelta(t, row.Commission, agg.commission, 1e-6)
	}
}

func TestDriverCommission_ResolvesDriverToActor(t *testing.T) {
	// Arrange
	mockRepo, uc := newTestReportUC(t)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	ended := from.Add(48 * time.Hour)

	driverID := uuid.New()
	actorID := uuid.New()

	mockRepo.EXPECT().
		ListTripsEndedBetween(gomock.Any(), from, to).
		Return([]*models.Trip{
			completedTrip(nil, &driverID, 100000, 100000, ended),
			completedTrip(nil, &driverID, 60000, 0, ended),
		}, nil)
	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, ActorID: actorID}, nil)
	mockRepo.EXPECT().GetActor(gomock.Any(), actorID).
		Return(&models.Actor{ID: actorID, FullName: "Chau", Role: models.RoleDriver}, nil)

	// Act
	report, err := uc.DriverCommission(context.Background(), from, reports.WindowMonthly)

	// Assert
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, actorID, row.ActorID)
	assert.Equal(t, 2, row.Trips)
	assert.Equal(t, 160000.0, row.Revenue)
	assert.Equal(t, models.DefaultDriverRate, row.Rate)
	assert.Equal(t, 64000.0, row.Commission)
	assert.Equal(t, 100000.0, row.CashCollected)
}

func TestCashbook_BalancesPaymentsAgainstCosts(t *testing.T) {
	// Arrange
	mockRepo, uc := newTestReportUC(t)
	day := time.Date(2026, 3, 13, 12, 0, 0, 0, time.UTC)
	from := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mockRepo.EXPECT().
		ListPaymentsBetween(gomock.Any(), from, to).
		Return([]models.Payment{
			{ID: uuid.New(), Amount: 100000, ReceivedAt: from.Add(time.Hour)},
			{ID: uuid.New(), Amount: 50000, ReceivedAt: from.Add(2 * time.Hour)},
		}, nil)
	mockRepo.EXPECT().
		ListCostsBetween(gomock.Any(), from, to).
		Return([]models.Cost{
			{ID: uuid.New(), Amount: 180000, Category: "fuel", OccurredAt: from.Add(3 * time.Hour)},
		}, nil)

	// Act
	book, err := uc.Cashbook(context.Background(), day)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, from, book.Day)
	assert.Equal(t, 150000.0, book.TotalIn)
	assert.Equal(t, 180000.0, book.TotalOut)
	assert.Equal(t, -30000.0, book.Balance)
}

func TestCashbook_EmptyDayIsZeroBalance(t *testing.T) {
	// Arrange
	mockRepo, uc := newTestReportUC(t)
	day := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().ListPaymentsBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().ListCostsBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	// Act
	book, err := uc.Cashbook(context.Background(), day)

	// Assert
	require.NoError(t, err)
	assert.Zero(t, book.TotalIn)
	assert.Zero(t, book.TotalOut)
	assert.Zero(t, book.Balance)
}

func TestDriverOps_UnassignedBucketLeadsReport(t *testing.T) {
	// Arrange
	mockRepo, uc := newTestReportUC(t)
	from := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	started := from.Add(6 * time.Hour)

	driverID := uuid.New()
	actorID := uuid.New()
	carID := uuid.New()

	withDriver := completedTrip(nil, &driverID, 90000, 90000, started.Add(time.Hour))
	withDriver.StartedAt = &started

	// Started but never assigned; lands in the unassigned bucket.
	orphan := &models.Trip{ID: uuid.New(), StartedAt: &started, FinalFare: 30000, CashCollected: 30000, Status: models.TripStatusCompleted}

	mockRepo.EXPECT().
		ListTripsStartedBetween(gomock.Any(), from, from.AddDate(0, 0, 1)).
		Return([]*models.Trip{withDriver, orphan}, nil)
	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, ActorID: actorID, CarID: &carID}, nil)
	mockRepo.EXPECT().GetActor(gomock.Any(), actorID).
		Return(&models.Actor{ID: actorID, FullName: "Chau", Role: models.RoleDriver}, nil)
	mockRepo.EXPECT().GetCar(gomock.Any(), carID).
		Return(&models.Car{ID: carID, Plate: "51A-00001"}, nil)

	// Act
	report, err := uc.DriverOps(context.Background(), from)

	// Assert
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)

	assert.Equal(t, uuid.Nil, report.Rows[0].DriverID)
	assert.Equal(t, 30000.0, report.Rows[0].Revenue)

	assert.Equal(t, driverID, report.Rows[1].DriverID)
	assert.Equal(t, "Chau", report.Rows[1].DriverName)
	require.NotNil(t, report.Rows[1].Car)
	assert.Equal(t, "51A-00001", report.Rows[1].Car.Plate)
}

func TestMaintenance_SplitsAroundToday(t *testing.T) {
	// Arrange
	mockRepo, uc := newTestReportUC(t)
	today := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	past := models.Maintenance{ID: uuid.New(), ScheduledDate: today.AddDate(0, 0, -7), Task: "oil change"}
	todayEntry := models.Maintenance{ID: uuid.New(), ScheduledDate: today, Task: "brake check"}
	future := models.Maintenance{ID: uuid.New(), ScheduledDate: today.AddDate(0, 0, 14), Task: "tires"}

	mockRepo.EXPECT().ListMaintenance(gomock.Any()).
		Return([]models.Maintenance{past, todayEntry, future}, nil)
	mockRepo.EXPECT().ListCostsByCategory(gomock.Any(), "maintenance").
		Return([]models.Cost{{ID: uuid.New(), Category: "maintenance", Amount: 500000}}, nil)

	// Act
	report, err := uc.Maintenance(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, report.Past, 1)
	assert.Equal(t, past.ID, report.Past[0].ID)
	require.Len(t, report.Upcoming, 2)
	assert.Equal(t, todayEntry.ID, report.Upcoming[0].ID)
	require.Len(t, report.Costs, 1)
}

func TestIngestCost_Valid(t *testing.T) {
	// Arrange
	mockRepo, uc := newTestReportUC(t)

	mockRepo.EXPECT().
		InsertCost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cost *models.Cost) error {
			assert.NotEqual(t, uuid.Nil, cost.ID)
			assert.Equal(t, "fuel", cost.Category)
			assert.Equal(t, 250000.0, cost.Amount)
			// Missing timestamp falls back to the clock.
			assert.Equal(t, testNow, cost.OccurredAt)
			return nil
		})

	// Act
	err := uc.IngestCost(context.Background(), models.CostEvent{
		Category: "fuel",
		Amount:   250000,
	})

	// Assert
	require.NoError(t, err)
}

func TestIngestCost_RejectsNonPositiveAmount(t *testing.T) {
	_, uc := newTestReportUC(t)

	err := uc.IngestCost(context.Background(), models.CostEvent{
		Category: "fuel",
		Amount:   0,
	})

	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestIngestCost_RejectsMissingCategory(t *testing.T) {
	_, uc := newTestReportUC(t)

	err := uc.IngestCost(context.Background(), models.CostEvent{Amount: 10000})

	assert.ErrorIs(t, err, errs.ErrValidation)
}
