package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgcab/dispatch/internal/pkg/errs"
	"github.com/sgcab/dispatch/internal/pkg/models"
)

// raceRepo is an in-memory trip store whose ClaimTrip mirrors the
// conditional-update semantics of the SQL implementation: the open check
// and the assignment are one critical section.
type raceRepo struct {
	mu      sync.Mutex
	trips   map[uuid.UUID]*models.Trip
	drivers map[uuid.UUID]*models.Driver
}

func newRaceRepo() *raceRepo {
	return &raceRepo{
		trips:   map[uuid.UUID]*models.Trip{},
		drivers: map[uuid.UUID]*models.Driver{},
	}
}

func (r *raceRepo) addDriver(actorID uuid.UUID) *models.Driver {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := &models.Driver{ID: uuid.New(), ActorID: actorID}
	r.drivers[actorID] = d
	return d
}

func (r *raceRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *trip
	r.trips[trip.ID] = &copied
	return nil
}

func (r *raceRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trip, ok := r.trips[tripID]
	if !ok {
		return nil, fmt.Errorf("%w: trip %s", errs.ErrNotFound, tripID)
	}
	copied := *trip
	return &copied, nil
}

func (r *raceRepo) ClaimTrip(ctx context.Context, tripID, driverID uuid.UUID, carID *uuid.UUID) (*models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip, ok := r.trips[tripID]
	if !ok {
		return nil, fmt.Errorf("%w: trip %s", errs.ErrNotFound, tripID)
	}

	if trip.DriverID == nil && (trip.Status == models.TripStatusBooked || trip.Status == models.TripStatusAssigned) {
		id := driverID
		trip.DriverID = &id
		trip.CarID = carID
		trip.Status = models.TripStatusAssigned
		copied := *trip
		return &copied, nil
	}

	copied := *trip
	if trip.DriverID != nil {
		return &copied, fmt.Errorf("%w: trip %s is held by another driver", errs.ErrAlreadyClaimed, tripID)
	}
	return &copied, fmt.Errorf("%w: trip %s is %s", errs.ErrInvalidState, tripID, trip.Status)
}

func (r *raceRepo) StartTrip(ctx context.Context, tripID, driverID uuid.UUID, carID *uuid.UUID, startedAt time.Time) (*models.Trip, error) {
	return nil, errors.New("not used")
}

func (r *raceRepo) FinishTrip(ctx context.Context, trip *models.Trip, payment *models.Payment) error {
	return errors.New("not used")
}

func (r *raceRepo) ListOpenTrips(ctx context.Context) ([]*models.Trip, error) {
	return nil, errors.New("not used")
}

func (r *raceRepo) ListDriverActive(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error) {
	return nil, errors.New("not used")
}

func (r *raceRepo) GetDriverByActorID(ctx context.Context, actorID uuid.UUID) (*models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drivers[actorID]
	if !ok {
		return nil, fmt.Errorf("%w: no driver profile for actor %s", errs.ErrNotFound, actorID)
	}
	return d, nil
}

type noopGW struct{}

func (noopGW) PublishTripAssigned(ctx context.Context, trip *models.Trip) error { return nil }
func (noopGW) PublishTripStarted(ctx context.Context, trip *models.Trip) error  { return nil }
func (noopGW) PublishTripCompleted(ctx context.Context, trip *models.Trip, payment *models.Payment) error {
	return nil
}

func TestClaim_ConcurrentDriversExactlyOneWinner(t *testing.T) {
	const drivers = 32

	repo := newRaceRepo()
	uc := NewTripUC(&models.Config{}, models.RealClock{}, repo, noopGW{})

	tripID := uuid.New()
	require.NoError(t, repo.CreateTrip(context.Background(), &models.Trip{
		ID:        tripID,
		Origin:    "District 1",
		Status:    models.TripStatusBooked,
		CreatedAt: time.Now(),
	}))

	auths := make([]models.AuthContext, drivers)
	for i := range auths {
		auths[i] = models.AuthContext{ActorID: uuid.New(), Role: models.RoleDriver}
		repo.addDriver(auths[i].ActorID)
	}

	var wg sync.WaitGroup
	results := make([]error, drivers)
	start := make(chan struct{})

	for i := 0; i < drivers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := uc.Claim(context.Background(), auths[i], tripID)
			results[i] = err
		}(i)
	}
	close(start)
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, errs.ErrAlreadyClaimed)
		}
	}
	assert.Equal(t, 1, winners, "exactly one driver must win the claim")

	trip, err := repo.GetTrip(context.Background(), tripID)
	require.NoError(t, err)
	require.NotNil(t, trip.DriverID)
	assert.Equal(t, models.TripStatusAssigned, trip.Status)
}
