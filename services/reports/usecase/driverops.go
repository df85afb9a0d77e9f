package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sgcab/dispatch/internal/pkg/errs"
	"github.com/sgcab/dispatch/internal/pkg/logger"
	"github.com/sgcab/dispatch/internal/pkg/models"
	"github.com/sgcab/dispatch/internal/utils"
)

// DriverOps groups the trips started on a day by driver. Trips that were
// never assigned land in a bucket under the zero driver id.
func (uc *reportUC) DriverOps(ctx context.Context, day time.Time) (*models.DriverOpsReport, error) {
	from, to := utils.DayBounds(day)

	trips, err := uc.reportRepo.ListTripsStartedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	buckets := map[uuid.UUID]*models.DriverOpsRow{}
	for _, trip := range trips {
		driverID := uuid.Nil
		if trip.DriverID != nil {
			driverID = *trip.DriverID
		}
		row, ok := buckets[driverID]
		if !ok {
			row = &models.DriverOpsRow{DriverID: driverID}
			buckets[driverID] = row
		}
		row.Trips++
		row.Revenue += trip.FinalFare
		row.CashCollected += trip.CashCollected
	}

	rows := make([]models.DriverOpsRow, 0, len(buckets))
	for driverID, row := range buckets {
		if driverID != uuid.Nil {
			if err := uc.decorateDriverRow(ctx, row); err != nil {
				return nil, err
			}
		}
		rows = append(rows, *row)
	}

	// Zero id sorts first, so the unassigned bucket leads the report.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].DriverID.String() < rows[j].DriverID.String()
	})

	return &models.DriverOpsReport{Day: from, Rows: rows}, nil
}

// decorateDriverRow attaches the driver's name and current car. A missing
// profile downgrades to a bare row instead of failing the report.
func (uc *reportUC) decorateDriverRow(ctx context.Context, row *models.DriverOpsRow) error {
	driver, err := uc.reportRepo.GetDriver(ctx, row.DriverID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			logger.Warn("Trips reference unknown driver", logrus.Fields{
				"driver_id": row.DriverID,
			})
			return nil
		}
		return err
	}

	actor, err := uc.reportRepo.GetActor(ctx, driver.ActorID)
	if err == nil {
		row.DriverName = actor.FullName
	} else if !errors.Is(err, errs.ErrNotFound) {
		return err
	}

	if driver.CarID != nil {
		car, err := uc.reportRepo.GetCar(ctx, *driver.CarID)
		if err == nil {
			row.Car = car
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
	}

	return nil
}
