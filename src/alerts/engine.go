package alerts

import (
	"context"
	"fmt"

	"centavo-server/src/metrics"
	"centavo-server/src/models"

	"github.com/sirupsen/logrus"
)

// Ledger records the last period each alert key fired for. It must be
// durable so alerts do not re-fire after a restart within the same period.
type Ledger interface {
	LastFired(ctx context.Context, key string) (string, error)
	MarkFired(ctx context.Context, key, period string) error
}

// Notifier delivers a new notification to the user-facing list.
type Notifier interface {
	Notify(ctx context.Context, kind, message string) error
}

const (
	categoryShareThreshold = 40.0
	weeklySpikeFactor      = 1.5
	dueSoonWindowDays      = 5
)

// Engine evaluates the alert rules against a snapshot. Each rule fires at
// most once per (alert key, period); the period is the month key for the
// savings and category rules and the calendar day for the rest.
type Engine struct {
	ledger   Ledger
	notifier Notifier
	clock    metrics.Clock
	log      *logrus.Logger
}

func NewEngine(ledger Ledger, notifier Notifier, clock metrics.Clock, log *logrus.Logger) *Engine {
	return &Engine{ledger: ledger, notifier: notifier, clock: clock, log: log}
}

// Evaluate runs every rule against the snapshot. Rules are independent: a
// ledger or notifier failure on one rule is logged and does not stop the
// others.
func (e *Engine) Evaluate(ctx context.Context, snap *models.Snapshot) {
	now := e.clock()
	month := metrics.MonthKey(now)
	today := now.Format("2006-01-02")

	if goal := snap.Goal(month); goal != nil {
		saved := metrics.Savings(snap, month)
		progress := metrics.SavingsProgress(saved, goal.Target)

		if progress >= 80 && progress < 100 {
			e.fireOnce(ctx, "savings_80", month, models.NotificationSuccess,
				fmt.Sprintf("You have reached 80%% of your savings goal! Only %.2f to go.", goal.Target-saved))
		}
		if progress >= 100 {
			e.fireOnce(ctx, "savings_100", month, models.NotificationSuccess,
				"Congratulations! You reached this month's savings goal!")
		}
	}

	totalMonth := metrics.TotalExpenses(snap.Expenses, month)
	if totalMonth > 0 {
		for category, value := range metrics.ExpensesByCategory(snap.Expenses, month) {
			share := value / totalMonth * 100
			if share > categoryShareThreshold {
				e.fireOnce(ctx, "category_"+category, month, models.NotificationWarning,
					fmt.Sprintf("Heads up! %.0f%% of this month's spending went to %s.", share, category))
			}
		}
	}

	weeklyAvg := metrics.WeeklyAverage(snap.Expenses, 4, now)
	lastWeek := metrics.TrailingWeekTotal(snap.Expenses, now)
	if lastWeek > weeklyAvg*weeklySpikeFactor {
		e.fireOnce(ctx, "weekly", today, models.NotificationWarning,
			"Spending over the last 7 days is more than 50% above your weekly average. Watch the budget!")
	}

	for _, f := range snap.FixedExpenses {
		if f.Month != month || f.IsPaid {
			continue
		}
		daysUntilDue := f.DueDay - now.Day()

		if daysUntilDue >= 0 && daysUntilDue <= dueSoonWindowDays {
			e.fireOnce(ctx, "due_"+f.ID, today, models.NotificationWarning,
				fmt.Sprintf("%s is due %s! Amount: %.2f", f.Name, dueText(daysUntilDue), f.Value))
		}
		if daysUntilDue < 0 {
			e.fireOnce(ctx, "overdue_"+f.ID, today, models.NotificationWarning,
				fmt.Sprintf("OVERDUE: %s was due %d day(s) ago! Amount: %.2f. Mark it paid in Settings.",
					f.Name, -daysUntilDue, f.Value))
		}
	}
}

func dueText(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

// fireOnce emits the notification unless the ledger already recorded this
// key for the same period, then marks the period fired.
func (e *Engine) fireOnce(ctx context.Context, key, period, kind, message string) {
	last, err := e.ledger.LastFired(ctx, key)
	if err != nil {
		e.log.WithError(err).WithField("alert", key).Error("failed to read alert ledger")
		return
	}
	if last == period {
		return
	}

	if err := e.notifier.Notify(ctx, kind, message); err != nil {
		e.log.WithError(err).WithField("alert", key).Error("failed to create notification")
		return
	}
	if err := e.ledger.MarkFired(ctx, key, period); err != nil {
		e.log.WithError(err).WithField("alert", key).Error("failed to update alert ledger")
		return
	}
	e.log.WithFields(logrus.Fields{"alert": key, "period": period}).Info("alert fired")
}
