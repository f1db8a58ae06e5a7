package email

import "time"

// SendWelcomeEmail greets a newly registered user.
func (c *Client) SendWelcomeEmail(to, username string) error {
	return c.SendEmail(
		to,
		"Welcome to Fintrack!",
		TemplateWelcome,
		map[string]string{
			"Username": username,
		},
	)
}

// SendNotificationEmail delivers a stored notification by email.
func (c *Client) SendNotificationEmail(to, username, message string, at time.Time) error {
	return c.SendEmail(
		to,
		"You have a new Fintrack notification",
		TemplateNotification,
		map[string]string{
			"Username":  username,
			"Message":   message,
			"Timestamp": at.UTC().Format(time.RFC1123),
		},
	)
}
