package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sgcab/dispatch/internal/pkg/errs"
	"github.com/sgcab/dispatch/internal/pkg/logger"
	"github.com/sgcab/dispatch/internal/pkg/models"
	"github.com/sgcab/dispatch/internal/utils"
	"github.com/sgcab/dispatch/services/trips"
)

const (
	warnBadFareQuote   = "fare quote was not a valid amount, recorded as 0"
	warnBadFinalFare   = "final fare was not a valid amount, fell back to the quote"
	warnBadCash        = "cash collected was not a valid amount, recorded as 0"
	warnAlreadyOngoing = "trip is already ongoing, start was a no-op"
)

// tripUC implements the trips.TripUC interface
type tripUC struct {
	cfg      *models.Config
	clock    models.Clock
	tripRepo trips.TripRepo
	tripGW   trips.TripGW
}

// NewTripUC creates a new trip use case
func NewTripUC(cfg *models.Config, clock models.Clock, tripRepo trips.TripRepo, tripGW trips.TripGW) trips.TripUC {
	return &tripUC{
		cfg:      cfg,
		clock:    clock,
		tripRepo: tripRepo,
		tripGW:   tripGW,
	}
}

// CreateBooked creates a new trip in booked status for a sales actor.
func (uc *tripUC) CreateBooked(ctx context.Context, auth models.AuthContext, req models.BookTripRequest) (*models.TripOutcome, error) {
	if !auth.CanBookTrips() {
		return nil, fmt.Errorf("%w: only sales can book trips", errs.ErrForbidden)
	}

	origin := strings.TrimSpace(req.Origin)
	if origin == "" {
		return nil, fmt.Errorf("%w: origin is required", errs.ErrValidation)
	}

	var warnings []string
	fareQuote, ok := utils.ParseAmount(req.FareQuote)
	if !ok {
		warnings = append(warnings, warnBadFareQuote)
	}

	salesID := auth.ActorID
	trip := &models.Trip{
		ID:        uuid.New(),
		SalesID:   &salesID,
		Origin:    origin,
		FareQuote: fareQuote,
		Status:    models.TripStatusBooked,
		CreatedAt: uc.clock.Now(),
	}
	if dest := strings.TrimSpace(req.Destination); dest != "" {
		trip.Destination = &dest
	}

	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}

	logger.Info("trip booked", logrus.Fields{
		"trip_id":  trip.ID,
		"sales_id": salesID,
		"origin":   origin,
	})

	return &models.TripOutcome{Trip: trip, Warnings: warnings}, nil
}

// Claim atomically assigns the calling driver to an open trip. Under
// concurrent claims on the same trip exactly one driver wins; the rest
// receive ErrAlreadyClaimed.
func (uc *tripUC) Claim(ctx context.Context, auth models.AuthContext, tripID uuid.UUID) (*models.Trip, error) {
	if !auth.CanDriveTrips() {
		return nil, fmt.Errorf("%w: only drivers can claim trips", errs.ErrForbidden)
	}

	driver, err := uc.tripRepo.GetDriverByActorID(ctx, auth.ActorID)
	if err != nil {
		return nil, err
	}

	trip, err := uc.tripRepo.ClaimTrip(ctx, tripID, driver.ID, driver.CarID)
	if err != nil {
		// A repeat claim by the holding driver is idempotent.
		if errors.Is(err, errs.ErrAlreadyClaimed) && trip != nil &&
			trip.DriverID != nil && *trip.DriverID == driver.ID {
			return trip, nil
		}
		return nil, err
	}

	if err := uc.tripGW.PublishTripAssigned(ctx, trip); err != nil {
		logger.Warn("failed to publish trip assigned event", logrus.Fields{
			"trip_id": trip.ID,
			"error":   err.Error(),
		})
	}

	logger.Info("trip claimed", logrus.Fields{
		"trip_id":   trip.ID,
		"driver_id": driver.ID,
	})

	return trip, nil
}

// Start moves a trip to ongoing. An unclaimed trip is implicitly assigned
// to the caller; a trip held by another driver is rejected. Starting an
// already ongoing trip is reported as a warning, not a failure.
func (uc *tripUC) Start(ctx context.Context, auth models.AuthContext, tripID uuid.UUID) (*models.TripOutcome, error) {
	if !auth.CanDriveTrips() {
		return nil, fmt.Errorf("%w: only drivers can start trips", errs.ErrForbidden)
	}

	driver, err := uc.tripRepo.GetDriverByActorID(ctx, auth.ActorID)
	if err != nil {
		return nil, err
	}

	trip, err := uc.tripRepo.StartTrip(ctx, tripID, driver.ID, driver.CarID, uc.clock.Now())
	if err != nil {
		if errors.Is(err, errs.ErrInvalidState) && trip != nil &&
			trip.Status == models.TripStatusOngoing &&
			trip.DriverID != nil && *trip.DriverID == driver.ID {
			return &models.TripOutcome{
				Trip:     trip,
				Warnings: []string{warnAlreadyOngoing},
			}, nil
		}
		return nil, err
	}

	if err := uc.tripGW.PublishTripStarted(ctx, trip); err != nil {
		logger.Warn("failed to publish trip started event", logrus.Fields{
			"trip_id": trip.ID,
			"error":   err.Error(),
		})
	}

	return &models.TripOutcome{Trip: trip}, nil
}

// StartWalkIn creates a trip directly in ongoing status for a driver who
// picked up a passenger without a prior booking.
func (uc *tripUC) StartWalkIn(ctx context.Context, auth models.AuthContext, req models.WalkInRequest) (*models.TripOutcome, error) {
	if !auth.CanDriveTrips() {
		return nil, fmt.Errorf("%w: only drivers can start trips", errs.ErrForbidden)
	}

	origin := strings.TrimSpace(req.Origin)
	if origin == "" {
		return nil, fmt.Errorf("%w: origin is required", errs.ErrValidation)
	}

	driver, err := uc.tripRepo.GetDriverByActorID(ctx, auth.ActorID)
	if err != nil {
		return nil, err
	}

	var warnings []string
	fareQuote, ok := utils.ParseAmount(req.FareQuote)
	if !ok {
		warnings = append(warnings, warnBadFareQuote)
	}

	now := uc.clock.Now()
	driverID := driver.ID
	trip := &models.Trip{
		ID:        uuid.New(),
		SalesID:   req.SalesID,
		DriverID:  &driverID,
		CarID:     driver.CarID,
		Origin:    origin,
		StartedAt: &now,
		FareQuote: fareQuote,
		Status:    models.TripStatusOngoing,
		CreatedAt: now,
	}

	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}

	if err := uc.tripGW.PublishTripStarted(ctx, trip); err != nil {
		logger.Warn("failed to publish trip started event", logrus.Fields{
			"trip_id": trip.ID,
			"error":   err.Error(),
		})
	}

	logger.Info("walk-in trip started", logrus.Fields{
		"trip_id":   trip.ID,
		"driver_id": driver.ID,
	})

	return &models.TripOutcome{Trip: trip, Warnings: warnings}, nil
}

// Finish completes a trip and records its payment as one atomic unit. A
// trip may be finished from any non-terminal status; finishing without a
// prior start is valid and leaves started_at unset.
func (uc *tripUC) Finish(ctx context.Context, auth models.AuthContext, tripID uuid.UUID, req models.FinishTripRequest) (*models.TripOutcome, error) {
	if !auth.CanDriveTrips() {
		return nil, fmt.Errorf("%w: only drivers can finish trips", errs.ErrForbidden)
	}

	driver, err := uc.tripRepo.GetDriverByActorID(ctx, auth.ActorID)
	if err != nil {
		return nil, err
	}

	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status == models.TripStatusCompleted {
		return nil, fmt.Errorf("%w: trip %s is already completed", errs.ErrInvalidState, tripID)
	}
	if trip.DriverID != nil && *trip.DriverID != driver.ID {
		return nil, fmt.Errorf("%w: trip %s", errs.ErrNotYourTrip, tripID)
	}

	var warnings []string
	finalFare, ok := utils.ParseAmountOr(req.FinalFare, trip.FareQuote)
	if !ok {
		warnings = append(warnings, warnBadFinalFare)
	}
	cashCollected, ok := utils.ParseAmount(req.CashCollected)
	if !ok {
		warnings = append(warnings, warnBadCash)
	}

	now := uc.clock.Now()
	dest := strings.TrimSpace(req.Destination)
	method := req.PaymentMethod

	trip.Destination = &dest
	trip.EndedAt = &now
	trip.FinalFare = finalFare
	trip.PaymentMethod = &method
	trip.CashCollected = cashCollected
	trip.Status = models.TripStatusCompleted

	payment := &models.Payment{
		ID:            uuid.New(),
		TripID:        trip.ID,
		Method:        method,
		Amount:        finalFare,
		ReceivedAt:    now,
		ReferenceCode: req.PaymentRef,
	}

	if err := uc.tripRepo.FinishTrip(ctx, trip, payment); err != nil {
		return nil, err
	}

	if err := uc.tripGW.PublishTripCompleted(ctx, trip, payment); err != nil {
		logger.Warn("failed to publish trip completed event", logrus.Fields{
			"trip_id": trip.ID,
			"error":   err.Error(),
		})
	}

	logger.Info("trip completed", logrus.Fields{
		"trip_id":    trip.ID,
		"final_fare": finalFare,
		"method":     method,
	})

	return &models.TripOutcome{Trip: trip, Warnings: warnings}, nil
}

// ListOpenTrips returns claimable trips, oldest first for fair viewing
// order. Claim resolution itself is race-resolved, not queue-resolved.
func (uc *tripUC) ListOpenTrips(ctx context.Context) ([]*models.Trip, error) {
	return uc.tripRepo.ListOpenTrips(ctx)
}

// ListMyActive returns the calling driver's assigned and ongoing trips.
func (uc *tripUC) ListMyActive(ctx context.Context, auth models.AuthContext) ([]*models.Trip, error) {
	if !auth.CanDriveTrips() {
		return nil, fmt.Errorf("%w: only drivers have active trips", errs.ErrForbidden)
	}

	driver, err := uc.tripRepo.GetDriverByActorID(ctx, auth.ActorID)
	if err != nil {
		return nil, err
	}

	return uc.tripRepo.ListDriverActive(ctx, driver.ID)
}

// GetTrip retrieves a single trip by id.
func (uc *tripUC) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	return uc.tripRepo.GetTrip(ctx, tripID)
}
