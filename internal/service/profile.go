package service

import (
	"context"

	"github.com/deppfellow/fintrack/internal/model"
)

const profileNotFound = "User profile not found"

type ProfileService struct {
	store ProfileStore
}

func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) CreateProfile(ctx context.Context, req *model.CreateProfileRequest) (*model.UserProfile, error) {
	return s.store.CreateProfile(ctx, req)
}

func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*model.UserProfile, error) {
	profile, err := s.store.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, notFound(err, profileNotFound)
	}
	return profile, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, req *model.UpdateProfileRequest) (*model.UserProfile, error) {
	profile, err := s.store.UpdateProfileByUserID(ctx, req)
	if err != nil {
		return nil, notFound(err, profileNotFound)
	}
	return profile, nil
}
