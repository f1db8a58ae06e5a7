// Package job runs background work on asynq, a Redis-backed queue.
//
// The HTTP side enqueues tasks through JobService.Client; the worker
// server started by JobService.Start executes them.
package job

import (
	"github.com/deppfellow/fintrack/internal/config"
	"github.com/deppfellow/fintrack/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the asynq client (enqueue side) and server (workers).
type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	mailer mailer
	logger *zerolog.Logger
}

// NewJobService creates a JobService using the configured Redis.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// InitHandlers prepares the dependencies task handlers use. Without a
// Resend API key email tasks are acknowledged and dropped.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	if cfg.Integration.ResendAPIKey == "" {
		logger.Warn().Msg("resend api key not configured, email tasks will be skipped")
		return
	}
	j.mailer = email.NewClient(cfg, logger)
}

// Mux routes task types to their handlers.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	mux.HandleFunc(TaskNotification, j.handleNotificationEmailTask)
	return mux
}

// Start launches the worker server. It does not block.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(j.Mux()); err != nil {
		return err
	}

	return nil
}

// Stop waits for in-flight tasks and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
