package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/fintrack/internal/model"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `id, user_id, profile_picture, first_name, last_name, phone_number`

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, payload *model.CreateProfileRequest) (*model.UserProfile, error) {
	stmt := `
		INSERT INTO user_profiles (user_id, profile_picture, first_name, last_name, phone_number)
		VALUES (@user_id, @profile_picture, @first_name, @last_name, @phone_number)
		RETURNING ` + profileColumns

	profile, err := queryOne[model.UserProfile](ctx, r.db, "user_profiles", stmt, pgx.NamedArgs{
		"user_id":         payload.UserID,
		"profile_picture": payload.ProfilePicture,
		"first_name":      payload.FirstName,
		"last_name":       payload.LastName,
		"phone_number":    payload.PhoneNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert profile for user %d: %w", payload.UserID, err)
	}
	return profile, nil
}

func (r *ProfileRepository) GetProfileByUserID(ctx context.Context, userID int64) (*model.UserProfile, error) {
	profile, err := queryOne[model.UserProfile](ctx, r.db, "user_profiles",
		`SELECT `+profileColumns+` FROM user_profiles WHERE user_id = @user_id`,
		pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to get profile for user %d: %w", userID, err)
	}
	return profile, nil
}

// UpdateProfileByUserID overwrites the name and phone fields. The
// picture is kept when the payload carries none.
func (r *ProfileRepository) UpdateProfileByUserID(ctx context.Context, payload *model.UpdateProfileRequest) (*model.UserProfile, error) {
	stmt := `
		UPDATE user_profiles
		SET first_name = @first_name,
			last_name = @last_name,
			phone_number = @phone_number,
			profile_picture = COALESCE(@profile_picture, profile_picture)
		WHERE user_id = @user_id
		RETURNING ` + profileColumns

	profile, err := queryOne[model.UserProfile](ctx, r.db, "user_profiles", stmt, pgx.NamedArgs{
		"user_id":         payload.UserID,
		"profile_picture": payload.ProfilePicture,
		"first_name":      payload.FirstName,
		"last_name":       payload.LastName,
		"phone_number":    payload.PhoneNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile for user %d: %w", payload.UserID, err)
	}
	return profile, nil
}
