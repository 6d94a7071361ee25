package pending

import (
	"context"
	"time"

	"centavo-server/src/metrics"
	"centavo-server/src/models"

	"github.com/sirupsen/logrus"
)

// Store performs the conversion of one pending income into a realized
// income. Implementations must write the new income row and flip the
// pending row to converted in a single transaction, and must be a no-op
// when the row is no longer pending, so a conversion happens at most once.
type Store interface {
	ConvertPending(ctx context.Context, p models.PendingIncome, creditedOn time.Time) error
}

// Converter promotes pending incomes whose expected date has arrived.
type Converter struct {
	store Store
	clock metrics.Clock
	log   *logrus.Logger
}

func NewConverter(store Store, clock metrics.Clock, log *logrus.Logger) *Converter {
	return &Converter{store: store, clock: clock, log: log}
}

// Sweep converts every unconverted pending income whose expected date,
// truncated to the day, is today or earlier. Records are converted
// independently: one failure is logged and does not block the rest.
// Returns the number of successful conversions.
func (c *Converter) Sweep(ctx context.Context, pendings []models.PendingIncome) int {
	now := c.clock()
	today := truncateToDay(now)

	converted := 0
	for _, p := range pendings {
		if p.Converted {
			continue
		}
		if truncateToDay(p.ExpectedDate).After(today) {
			continue
		}

		if err := c.store.ConvertPending(ctx, p, today); err != nil {
			c.log.WithError(err).WithField("pending_id", p.ID).Error("failed to convert pending income")
			continue
		}
		converted++
		c.log.WithFields(logrus.Fields{"pending_id": p.ID, "value": p.Value}).Info("pending income credited")
	}
	return converted
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
