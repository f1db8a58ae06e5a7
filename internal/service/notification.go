package service

import (
	"context"

	"github.com/deppfellow/fintrack/internal/lib/job"
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/rs/zerolog"
)

type NotificationService struct {
	store NotificationStore
	users UserStore
	jobs  Enqueuer
}

func NewNotificationService(store NotificationStore, users UserStore, jobs Enqueuer) *NotificationService {
	return &NotificationService{store: store, users: users, jobs: jobs}
}

// CreateNotification stores the notification and queues an email copy
// to its user.
func (s *NotificationService) CreateNotification(ctx context.Context, req *model.CreateNotificationRequest) (*model.Notification, error) {
	notification, err := s.store.CreateNotification(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.jobs != nil {
		s.queueEmail(ctx, notification)
	}

	return notification, nil
}

func (s *NotificationService) queueEmail(ctx context.Context, notification *model.Notification) {
	user, err := s.users.GetUserByID(ctx, notification.UserID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Int64("notification_id", notification.ID).
			Msg("could not load recipient for notification email")
		return
	}

	task, err := job.NewNotificationEmailTask(job.NotificationEmailPayload{
		NotificationID: notification.ID,
		To:             user.Email,
		Username:       user.Username,
		Message:        notification.Message,
		Timestamp:      notification.Timestamp,
	})
	enqueue(ctx, s.jobs, task, err)
}

func (s *NotificationService) ListNotifications(ctx context.Context, userID int64) (*model.NotificationList, error) {
	notifications, err := s.store.ListNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.NotificationList{Notifications: notifications}, nil
}

func (s *NotificationService) UpdateNotification(ctx context.Context, req *model.UpdateNotificationRequest) (*model.Notification, error) {
	notification, err := s.store.UpdateNotification(ctx, req)
	if err != nil {
		return nil, notFound(err, "Notification not found")
	}
	return notification, nil
}

func (s *NotificationService) DeleteNotification(ctx context.Context, id int64) (*model.DeleteResponse, error) {
	if err := s.store.DeleteNotification(ctx, id); err != nil {
		return nil, notFound(err, "Notification not found")
	}
	return model.Deleted("Notification"), nil
}
