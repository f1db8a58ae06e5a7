package service

import (
	"context"

	"github.com/deppfellow/fintrack/internal/lib/job"
	"github.com/deppfellow/fintrack/internal/model"
)

type UserService struct {
	store UserStore
	jobs  Enqueuer
}

func NewUserService(store UserStore, jobs Enqueuer) *UserService {
	return &UserService{store: store, jobs: jobs}
}

// CreateUser stores the user with a bcrypt hash of the password and
// queues the welcome email.
func (s *UserService) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	hash, err := model.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.CreateUser(ctx, req.Username, req.Email, hash)
	if err != nil {
		return nil, err
	}

	task, err := job.NewWelcomeEmailTask(user.Email, user.Username)
	enqueue(ctx, s.jobs, task, err)

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) (*model.UserList, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return &model.UserList{Users: users}, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) (*model.DeleteResponse, error) {
	if err := s.store.DeleteUser(ctx, id); err != nil {
		return nil, notFound(err, "User not found")
	}
	return model.Deleted("User"), nil
}
