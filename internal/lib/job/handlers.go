package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// mailer is the part of email.Client the task handlers need.
type mailer interface {
	SendWelcomeEmail(to, username string) error
	SendNotificationEmail(to, username, message string, at time.Time) error
}

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	if j.mailer == nil {
		j.logger.Debug().Str("type", "welcome").Str("to", p.To).Msg("email disabled, skipping task")
		return nil
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Processing welcome email task")

	if err := j.mailer.SendWelcomeEmail(p.To, p.Username); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Successfully sent welcome email")

	return nil
}

func (j *JobService) handleNotificationEmailTask(ctx context.Context, t *asynq.Task) error {
	var p NotificationEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal notification email payload: %w", err)
	}

	logger := j.logger.With().
		Str("type", "notification").
		Int64("notification_id", p.NotificationID).
		Str("to", p.To).
		Logger()

	if j.mailer == nil {
		logger.Debug().Msg("email disabled, skipping task")
		return nil
	}

	if err := j.mailer.SendNotificationEmail(p.To, p.Username, p.Message, p.Timestamp); err != nil {
		logger.Error().Err(err).Msg("Failed to send notification email")
		return err
	}

	logger.Info().Msg("Successfully sent notification email")
	return nil
}
