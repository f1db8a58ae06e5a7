package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskWelcome      = "email:welcome"
	TaskNotification = "email:notification"
)

// WelcomeEmailPayload is the body of a TaskWelcome task.
type WelcomeEmailPayload struct {
	To       string `json:"to"`
	Username string `json:"username"`
}

// NewWelcomeEmailTask builds the task sent after a user registers.
func NewWelcomeEmailTask(to, username string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:       to,
		Username: username,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NotificationEmailPayload is the body of a TaskNotification task.
type NotificationEmailPayload struct {
	NotificationID int64     `json:"notification_id"`
	To             string    `json:"to"`
	Username       string    `json:"username"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewNotificationEmailTask builds the task that mails a stored
// notification to its owner. Notifications go to the critical queue.
func NewNotificationEmailTask(p NotificationEmailPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskNotification,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}
