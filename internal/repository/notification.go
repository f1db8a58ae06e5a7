package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/fintrack/internal/model"
	"github.com/jackc/pgx/v5"
)

const notificationColumns = `id, user_id, message, timestamp`

type NotificationRepository struct {
	db DBTX
}

func NewNotificationRepository(db DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, payload *model.CreateNotificationRequest) (*model.Notification, error) {
	stmt := `
		INSERT INTO notifications (user_id, message, timestamp)
		VALUES (@user_id, @message, @timestamp)
		RETURNING ` + notificationColumns

	notification, err := queryOne[model.Notification](ctx, r.db, "notifications", stmt, pgx.NamedArgs{
		"user_id":   payload.UserID,
		"message":   payload.Message,
		"timestamp": *payload.Timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}
	return notification, nil
}

func (r *NotificationRepository) ListNotificationsByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	notifications, err := queryAll[model.Notification](ctx, r.db,
		`SELECT `+notificationColumns+` FROM notifications WHERE user_id = @user_id ORDER BY id`,
		pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %d: %w", userID, err)
	}
	return notifications, nil
}

func (r *NotificationRepository) UpdateNotification(ctx context.Context, payload *model.UpdateNotificationRequest) (*model.Notification, error) {
	stmt := `
		UPDATE notifications
		SET message = @message,
			timestamp = @timestamp
		WHERE id = @id
		RETURNING ` + notificationColumns

	notification, err := queryOne[model.Notification](ctx, r.db, "notifications", stmt, pgx.NamedArgs{
		"id":        payload.ID,
		"message":   payload.Message,
		"timestamp": *payload.Timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update notification %d: %w", payload.ID, err)
	}
	return notification, nil
}

func (r *NotificationRepository) DeleteNotification(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, "notifications", id); err != nil {
		return fmt.Errorf("failed to delete notification %d: %w", id, err)
	}
	return nil
}
