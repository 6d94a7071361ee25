package snapshot

import (
	"context"
	"sync"
	"time"

	db "centavo-server/src/db/sql"
	"centavo-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const channelName = "finance_changes"

// Store is the data synchronization facade: it caches the latest snapshot of
// all financial records and refreshes it whenever Postgres notifies a change
// on any financial table. The snapshot is swapped wholesale, so readers
// always see a fully formed state.
type Store struct {
	pool *pgxpool.Pool
	log  *logrus.Logger
	load func(context.Context, *pgxpool.Pool) (*models.Snapshot, error)

	mu      sync.RWMutex
	current *models.Snapshot

	handlersMu sync.Mutex
	handlers   []func(context.Context, *models.Snapshot)
}

func NewStore(pool *pgxpool.Pool, log *logrus.Logger) *Store {
	return &Store{pool: pool, log: log, load: db.LoadSnapshot}
}

// Current returns the latest snapshot. Before the first reload it returns an
// empty snapshot rather than nil.
func (s *Store) Current() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return &models.Snapshot{}
	}
	return s.current
}

// Reload fetches a fresh snapshot and swaps it in.
func (s *Store) Reload(ctx context.Context) (*models.Snapshot, error) {
	snap, err := s.load(ctx, s.pool)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	return snap, nil
}

// OnChange registers a handler invoked with the fresh snapshot after every
// change-driven reload. Handlers run sequentially on the listener goroutine,
// so there is exactly one evaluation pass per change event and passes never
// overlap.
func (s *Store) OnChange(fn func(context.Context, *models.Snapshot)) {
	s.handlersMu.Lock()
	s.handlers = append(s.handlers, fn)
	s.handlersMu.Unlock()
}

func (s *Store) fireHandlers(ctx context.Context, snap *models.Snapshot) {
	s.handlersMu.Lock()
	handlers := make([]func(context.Context, *models.Snapshot), len(s.handlers))
	copy(handlers, s.handlers)
	s.handlersMu.Unlock()

	for _, fn := range handlers {
		fn(ctx, snap)
	}
}

// Refresh reloads the snapshot and runs the change handlers once. It is the
// single entry point for both LISTEN notifications and scheduled ticks.
func (s *Store) Refresh(ctx context.Context) {
	snap, err := s.Reload(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to reload snapshot")
		return
	}
	s.fireHandlers(ctx, snap)
}

// Listen holds one dedicated connection subscribed to the finance_changes
// channel and refreshes on every notification. All financial tables notify
// the same channel, so one subscription covers everything. Blocks until the
// context is cancelled; on connection trouble it backs off and resubscribes.
func (s *Store) Listen(ctx context.Context) error {
	for {
		if err := s.listenOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.WithError(err).Error("change listener disconnected, retrying")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
		}
	}
}

func (s *Store) listenOnce(ctx context.Context) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+channelName); err != nil {
		return err
	}
	s.log.Info("listening for finance changes")

	// A mutation landing before the subscription, or while the listener was
	// disconnected, produced no observable notification. Refreshing right
	// after LISTEN takes effect picks those up.
	s.Refresh(ctx)

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		s.log.WithField("table", notification.Payload).Debug("finance change notification")
		s.Refresh(ctx)
	}
}
