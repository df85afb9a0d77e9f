package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/sgcab/dispatch/internal/pkg/constants"
	"github.com/sgcab/dispatch/internal/pkg/logger"
	"github.com/sgcab/dispatch/internal/pkg/models"
	"github.com/sgcab/dispatch/internal/utils"
)

// Cashbook reconciles one day's payments against its costs. Days that have
// fully elapsed can no longer change, so their cashbooks are served from
// cache when one is available.
func (uc *reportUC) Cashbook(ctx context.Context, day time.Time) (*models.Cashbook, error) {
	from, to := utils.DayBounds(day)
	closed := !to.After(uc.clock.Now())

	cacheKey := constants.KeyCashbookDay + from.Format("2006-01-02")
	if closed && uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, cacheKey); err == nil {
			book := &models.Cashbook{}
			if err := json.Unmarshal([]byte(cached), book); err == nil {
				return book, nil
			}
			logger.Warn("Discarding corrupt cashbook cache entry", logrus.Fields{
				"key": cacheKey,
			})
		} else if err != redis.Nil {
			logger.Warn("Cashbook cache read failed", logrus.Fields{
				"key":   cacheKey,
				"error": err.Error(),
			})
		}
	}

	payments, err := uc.reportRepo.ListPaymentsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	costs, err := uc.reportRepo.ListCostsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	book := &models.Cashbook{
		Day:      from,
		Payments: payments,
		Costs:    costs,
	}
	for _, p := range payments {
		book.TotalIn += p.Amount
	}
	for _, c := range costs {
		book.TotalOut += c.Amount
	}
	book.Balance = book.TotalIn - book.TotalOut

	if closed && uc.cache != nil {
		if data, err := json.Marshal(book); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, data, constants.CashbookCacheTTL); err != nil {
				logger.Warn("Cashbook cache write failed", logrus.Fields{
					"key":   cacheKey,
					"error": err.Error(),
				})
			}
		}
	}

	return book, nil
}
