package nsq

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sgcab/dispatch/internal/pkg/constants"
	"github.com/sgcab/dispatch/internal/pkg/errs"
	"github.com/sgcab/dispatch/internal/pkg/logger"
	"github.com/sgcab/dispatch/internal/pkg/models"
	pkgnsq "github.com/sgcab/dispatch/internal/pkg/nsq"
	"github.com/sgcab/dispatch/services/reports"
)

// CostHandler consumes operational cost events into the ledger
type CostHandler struct {
	reportUC reports.ReportUC
	consumer *pkgnsq.Consumer
}

// NewCostHandler creates a cost event consumer on the ops.cost.logged topic
func NewCostHandler(reportUC reports.ReportUC, cfg models.NSQConfig) (*CostHandler, error) {
	h := &CostHandler{reportUC: reportUC}

	consumer, err := pkgnsq.NewConsumer(
		constants.TopicCostLogged,
		cfg.Channel,
		cfg.Address,
		h.HandleCostLogged,
	)
	if err != nil {
		return nil, err
	}
	h.consumer = consumer

	return h, nil
}

// HandleCostLogged ingests one cost event. Malformed and invalid events are
// dropped after logging; requeueing them would loop forever.
func (h *CostHandler) HandleCostLogged(message []byte) error {
	var event models.CostEvent
	if err := pkgnsq.UnmarshalMessage(message, &event); err != nil {
		logger.Warn("Dropping malformed cost event", logrus.Fields{
			"error": err.Error(),
		})
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.reportUC.IngestCost(ctx, event); err != nil {
		if errors.Is(err, errs.ErrValidation) {
			logger.Warn("Dropping invalid cost event", logrus.Fields{
				"category": event.Category,
				"error":    err.Error(),
			})
			return nil
		}
		return err
	}

	return nil
}

// Stop gracefully stops the consumer
func (h *CostHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}
