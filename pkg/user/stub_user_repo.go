package user

import (
	"context"
)

type StubUserRepository struct {
	data map[string]User
}

func NewStubUserRepository() *StubUserRepository {
	return &StubUserRepository{data: map[string]User{}}
}

func (s *StubUserRepository) CreateUser(ctx context.Context, user User) error {
	s.data[user.Uid] = user
	return nil
}

func (s *StubUserRepository) GetUser(ctx context.Context, uid string) (User, error) {
	user, ok := s.data[uid]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *StubUserRepository) GetAllUsers(ctx context.Context) ([]User, error) {
	var users []User
	for _, user := range s.data {
		users = append(users, user)
	}
	return users, nil
}

func (s *StubUserRepository) UpdateUser(ctx context.Context, user User) (bool, error) {
	if _, ok := s.data[user.Uid]; !ok {
		return false, nil
	}
	s.data[user.Uid] = user
	return true, nil
}

func (s *StubUserRepository) DeleteUser(ctx context.Context, uid string) (bool, error) {
	if _, ok := s.data[uid]; !ok {
		return false, nil
	}
	delete(s.data, uid)
	return true, nil
}

func (s *StubUserRepository) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	for _, user := range s.data {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *StubUserRepository) Cleanup() {
	s.data = map[string]User{}
}
