package handler

import (
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/deppfellow/fintrack/internal/service"
	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the profile of the user in the :id path
// parameter.
type ProfileHandler struct {
	Handler
	service *service.ProfileService
}

func NewProfileHandler(s *server.Server, profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		Handler: NewHandler(s),
		service: profileService,
	}
}

func (h *ProfileHandler) CreateProfile(c echo.Context, req *model.CreateProfileRequest) (*model.UserProfile, error) {
	return h.service.CreateProfile(c.Request().Context(), req)
}

func (h *ProfileHandler) GetProfile(c echo.Context, req *model.UserScopedRequest) (*model.UserProfile, error) {
	return h.service.GetProfile(c.Request().Context(), req.UserID)
}

func (h *ProfileHandler) UpdateProfile(c echo.Context, req *model.UpdateProfileRequest) (*model.UserProfile, error) {
	return h.service.UpdateProfile(c.Request().Context(), req)
}

// GetProfilePicture returns the stored picture bytes as-is.
func (h *ProfileHandler) GetProfilePicture(c echo.Context, req *model.UserScopedRequest) ([]byte, error) {
	profile, err := h.service.GetProfile(c.Request().Context(), req.UserID)
	if err != nil {
		return nil, err
	}
	return profile.ProfilePicture, nil
}
