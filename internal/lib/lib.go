// Package lib groups supporting code that belongs to no single layer:
// background jobs (job, on asynq) and transactional email (email, on
// Resend).
package lib
