package db

import (
	"context"
	"fmt"

	"centavo-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func InsertNotification(ctx context.Context, pool *pgxpool.Pool, kind, message string) (*models.Notification, error) {
	query := `
		INSERT INTO notifications (id, type, message)
		VALUES ($1, $2, $3)
		RETURNING id, type, message, read, created_at
	`
	var n models.Notification
	err := pool.QueryRow(ctx, query, uuid.NewString(), kind, message).
		Scan(&n.ID, &n.Type, &n.Message, &n.Read, &n.Timestamp)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// GetAllNotifications lists notifications newest first.
func GetAllNotifications(ctx context.Context, pool *pgxpool.Pool) ([]models.Notification, error) {
	query := `
		SELECT id, type, message, read, created_at
		FROM notifications
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(&n.ID, &n.Type, &n.Message, &n.Read, &n.Timestamp)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func MarkNotificationRead(ctx context.Context, pool *pgxpool.Pool, id string) error {
	cmd, err := pool.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("notification not found")
	}
	return nil
}

func ClearNotifications(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `DELETE FROM notifications`)
	return err
}

// NotificationStore adapts the pool to the alert engine's notifier
// interface.
type NotificationStore struct {
	Pool *pgxpool.Pool
}

func (s *NotificationStore) Notify(ctx context.Context, kind, message string) error {
	_, err := InsertNotification(ctx, s.Pool, kind, message)
	return err
}
