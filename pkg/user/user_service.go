package user

import (
	"context"
	"fmt"

	"github.com/finsight/finsight/internal/utils"
	"github.com/google/uuid"
)

type Service interface {
	GetCurrentUser(ctx context.Context) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	CreateUser(ctx context.Context, user User) (User, error)
	UpdateUser(ctx context.Context, user User) (User, error)
	DeleteUser(ctx context.Context, uid string) error
	GetAllUsers(ctx context.Context) ([]User, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

type ServiceImpl struct {
	repo  Repo
	clock utils.Clock
}

func NewUserService(repo Repo, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock}
}

func (s *ServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	uid, err := CurrentUid(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetUser(ctx, uid)
}

func (s *ServiceImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	return s.repo.GetUser(ctx, uid)
}

func (s *ServiceImpl) CreateUser(ctx context.Context, user User) (User, error) {
	taken, err := s.repo.IsUsernameTaken(ctx, user.Username)
	if err != nil {
		return User{}, err
	}
	if taken {
		return User{}, fmt.Errorf("username %q is already taken", user.Username)
	}

	user.Uid = uuid.NewString()
	user.CreatedAt = s.clock.Now()
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *ServiceImpl) UpdateUser(ctx context.Context, user User) (User, error) {
	uid, err := CurrentUid(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	user.Uid = uid

	updated, err := s.repo.UpdateUser(ctx, user)
	if err != nil {
		return User{}, err
	}
	if !updated {
		return User{}, ErrUserNotFound
	}
	return s.repo.GetUser(ctx, uid)
}

func (s *ServiceImpl) DeleteUser(ctx context.Context, uid string) error {
	deleted, err := s.repo.DeleteUser(ctx, uid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

func (s *ServiceImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	return s.repo.GetAllUsers(ctx)
}

func (s *ServiceImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	taken, err := s.repo.IsUsernameTaken(ctx, username)
	if err != nil {
		return false, err
	}
	return !taken, nil
}
