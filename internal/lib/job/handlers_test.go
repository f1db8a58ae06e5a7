package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	kind     string
	to       string
	username string
	message  string
	at       time.Time
}

type fakeMailer struct {
	sent []sentEmail
	err  error
}

func (f *fakeMailer) SendWelcomeEmail(to, username string) error {
	f.sent = append(f.sent, sentEmail{kind: "welcome", to: to, username: username})
	return f.err
}

func (f *fakeMailer) SendNotificationEmail(to, username, message string, at time.Time) error {
	f.sent = append(f.sent, sentEmail{kind: "notification", to: to, username: username, message: message, at: at})
	return f.err
}

func newTestJobService(m mailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{mailer: m, logger: &logger}
}

func TestWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask("a@example.com", "alice")
	require.NoError(t, err)
	assert.Equal(t, TaskWelcome, task.Type())

	var payload WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, WelcomeEmailPayload{To: "a@example.com", Username: "alice"}, payload)

	m := &fakeMailer{}
	require.NoError(t, newTestJobService(m).handleWelcomeEmailTask(context.Background(), task))
	require.Len(t, m.sent, 1)
	assert.Equal(t, "welcome", m.sent[0].kind)
	assert.Equal(t, "alice", m.sent[0].username)
}

func TestNotificationEmailTask(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	task, err := NewNotificationEmailTask(NotificationEmailPayload{
		NotificationID: 7,
		To:             "a@example.com",
		Username:       "alice",
		Message:        "Budget exceeded",
		Timestamp:      at,
	})
	require.NoError(t, err)
	assert.Equal(t, TaskNotification, task.Type())

	m := &fakeMailer{}
	require.NoError(t, newTestJobService(m).handleNotificationEmailTask(context.Background(), task))
	require.Len(t, m.sent, 1)
	assert.Equal(t, "Budget exceeded", m.sent[0].message)
	assert.True(t, at.Equal(m.sent[0].at))
}

func TestTaskHandlerPropagatesSendFailure(t *testing.T) {
	task, err := NewWelcomeEmailTask("a@example.com", "alice")
	require.NoError(t, err)

	m := &fakeMailer{err: errors.New("provider down")}
	assert.EqualError(t, newTestJobService(m).handleWelcomeEmailTask(context.Background(), task), "provider down")
}

func TestTaskHandlerWithoutMailerSkips(t *testing.T) {
	task, err := NewWelcomeEmailTask("a@example.com", "alice")
	require.NoError(t, err)
	assert.NoError(t, newTestJobService(nil).handleWelcomeEmailTask(context.Background(), task))
}

func TestTaskHandlerRejectsBadPayload(t *testing.T) {
	task := asynq.NewTask(TaskNotification, []byte("{"))
	assert.Error(t, newTestJobService(&fakeMailer{}).handleNotificationEmailTask(context.Background(), task))
}
