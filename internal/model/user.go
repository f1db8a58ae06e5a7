package model

import (
	"strconv"
	"time"

	"github.com/deppfellow/fintrack/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// Authenticatable is implemented by principals that can be issued an
// access token.
type Authenticatable interface {
	// Subject is the token subject identifying the principal.
	Subject() string
	// PasswordMatches reports whether plain is the principal's password.
	PasswordMatches(plain string) bool
}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// PasswordCost is the bcrypt cost used by HashPassword.
var PasswordCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash of plain.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

var _ Authenticatable = (*User)(nil)

func (u *User) Subject() string {
	return strconv.FormatInt(u.ID, 10)
}

func (u *User) PasswordMatches(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// CreateUserRequest is the body of POST /user.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Email    string `json:"email" validate:"required,email,max=120"`
	// max counts runes; the byte limit is checked in Validate.
	Password string `json:"password" validate:"required,max=72"`
}

func (r *CreateUserRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}

	if len(r.Password) > MaxPasswordBytes {
		return validation.CustomValidationErrors{{
			Field:   "password",
			Message: "must not exceed 72 bytes",
		}}
	}

	return nil
}

type UserList struct {
	Users []User `json:"users"`
}
