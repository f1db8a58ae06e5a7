package model

import "time"

type Notification struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type CreateNotificationRequest struct {
	UserID    int64      `json:"user_id" validate:"required,gt=0"`
	Message   string     `json:"message" validate:"required,max=255"`
	Timestamp *time.Time `json:"timestamp" validate:"required"`
}

func (r *CreateNotificationRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateNotificationRequest struct {
	ID        int64      `param:"id" json:"-" validate:"required,gt=0"`
	Message   string     `json:"message" validate:"required,max=255"`
	Timestamp *time.Time `json:"timestamp" validate:"required"`
}

func (r *UpdateNotificationRequest) Validate() error {
	return validate.Struct(r)
}

type NotificationList struct {
	Notifications []Notification `json:"notifications"`
}
