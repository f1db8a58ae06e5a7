package model

// UserProfile is the one-to-one extension of a User. ProfilePicture is
// raw image bytes; JSON carries it base64 encoded.
type UserProfile struct {
	ID             int64   `json:"id" db:"id"`
	UserID         int64   `json:"user_id" db:"user_id"`
	ProfilePicture []byte  `json:"profile_picture" db:"profile_picture"`
	FirstName      *string `json:"first_name" db:"first_name"`
	LastName       *string `json:"last_name" db:"last_name"`
	PhoneNumber    *string `json:"phone_number" db:"phone_number"`
}

// CreateProfileRequest is the body of POST /user/:id/profile.
type CreateProfileRequest struct {
	UserID         int64   `param:"id" json:"-" validate:"required,gt=0"`
	ProfilePicture []byte  `json:"profile_picture" validate:"required"`
	FirstName      *string `json:"first_name" validate:"omitempty,max=100"`
	LastName       *string `json:"last_name" validate:"omitempty,max=100"`
	PhoneNumber    *string `json:"phone_number" validate:"omitempty,max=100"`
}

func (r *CreateProfileRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateProfileRequest is the body of PUT /user/:id/profile. The name
// and phone fields are overwritten, null included; the picture is only
// replaced when present.
type UpdateProfileRequest struct {
	UserID         int64   `param:"id" json:"-" validate:"required,gt=0"`
	ProfilePicture []byte  `json:"profile_picture"`
	FirstName      *string `json:"first_name" validate:"omitempty,max=100"`
	LastName       *string `json:"last_name" validate:"omitempty,max=100"`
	PhoneNumber    *string `json:"phone_number" validate:"omitempty,max=100"`
}

func (r *UpdateProfileRequest) Validate() error {
	return validate.Struct(r)
}
