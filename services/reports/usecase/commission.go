package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sgcab/dispatch/internal/pkg/errs"
	"github.com/sgcab/dispatch/internal/pkg/logger"
	"github.com/sgcab/dispatch/internal/pkg/models"
	"github.com/sgcab/dispatch/internal/utils"
	"github.com/sgcab/dispatch/services/reports"
)

// SalesCommission aggregates completed trips by booking sales actor over
// the window containing day. Walk-in trips have no sales actor and earn no
// sales commission.
func (uc *reportUC) SalesCommission(ctx context.Context, day time.Time, window reports.Window) (*models.CommissionReport, error) {
	from, to, err := windowBounds(day, window)
	if err != nil {
		return nil, err
	}

	trips, err := uc.reportRepo.ListTripsEndedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	buckets := map[uuid.UUID]*models.CommissionRow{}
	for _, trip := range trips {
		if trip.Status != models.TripStatusCompleted || trip.SalesID == nil {
			continue
		}
		row, ok := buckets[*trip.SalesID]
		if !ok {
			row = &models.CommissionRow{ActorID: *trip.SalesID}
			buckets[*trip.SalesID] = row
		}
		row.Trips++
		row.Revenue += trip.FinalFare
	}

	rows, err := uc.settleRows(ctx, buckets, models.DefaultSalesRate)
	if err != nil {
		return nil, err
	}

	return &models.CommissionReport{From: from, To: to, Rows: rows}, nil
}

// DriverCommission aggregates completed trips by driver over the window
// containing day. The trip carries the driver profile id; the commission
// rate lives on the actor behind it.
func (uc *reportUC) DriverCommission(ctx context.Context, day time.Time, window reports.Window) (*models.CommissionReport, error) {
	from, to, err := windowBounds(day, window)
	if err != nil {
		return nil, err
	}

	trips, err := uc.reportRepo.ListTripsEndedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	type driverBucket struct {
		row     *models.CommissionRow
		actorID uuid.UUID
	}
	buckets := map[uuid.UUID]*driverBucket{}
	for _, trip := range trips {
		if trip.Status != models.TripStatusCompleted || trip.DriverID == nil {
			continue
		}
		bucket, ok := buckets[*trip.DriverID]
		if !ok {
			driver, err := uc.reportRepo.GetDriver(ctx, *trip.DriverID)
			if err != nil {
				if errors.Is(err, errs.ErrNotFound) {
					// Driver profile removed after the fact; keep the
					// revenue visible rather than dropping the trips.
					logger.Warn("Completed trip references unknown driver", logrus.Fields{
						"trip_id":   trip.ID,
						"driver_id": *trip.DriverID,
					})
					bucket = &driverBucket{row: &models.CommissionRow{ActorID: *trip.DriverID}}
					buckets[*trip.DriverID] = bucket
				} else {
					return nil, err
				}
			} else {
				bucket = &driverBucket{
					row:     &models.CommissionRow{ActorID: driver.ActorID},
					actorID: driver.ActorID,
				}
				buckets[*trip.DriverID] = bucket
			}
		}
		bucket.row.Trips++
		bucket.row.Revenue += trip.FinalFare
		bucket.row.CashCollected += trip.CashCollected
	}

	rowByActor := map[uuid.UUID]*models.CommissionRow{}
	for _, bucket := range buckets {
		rowByActor[bucket.row.ActorID] = bucket.row
	}

	rows, err := uc.settleRows(ctx, rowByActor, models.DefaultDriverRate)
	if err != nil {
		return nil, err
	}

	return &models.CommissionReport{From: from, To: to, Rows: rows}, nil
}

// settleRows resolves actor metadata and rates, then orders rows by actor
// id for stable output.
func (uc *reportUC) settleRows(ctx context.Context, buckets map[uuid.UUID]*models.CommissionRow, fallbackRate float64) ([]models.CommissionRow, error) {
	rows := make([]models.CommissionRow, 0, len(buckets))
	for actorID, row := range buckets {
		actor, err := uc.reportRepo.GetActor(ctx, actorID)
		if err != nil {
			if !errors.Is(err, errs.ErrNotFound) {
				return nil, err
			}
			row.Rate = fallbackRate
		} else {
			row.StaffCode = actor.StaffCode
			row.FullName = actor.FullName
			row.Rate = actor.Rate()
		}
		row.Commission = row.Revenue * row.Rate
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ActorID.String() < rows[j].ActorID.String()
	})
	return rows, nil
}

func windowBounds(day time.Time, window reports.Window) (time.Time, time.Time, error) {
	switch window {
	case reports.WindowDaily:
		from, to := utils.DayBounds(day)
		return from, to, nil
	case reports.WindowMonthly:
		from, to := utils.MonthBounds(day)
		return from, to, nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown report window %q", errs.ErrValidation, window)
}
