package service

import (
	"context"

	"github.com/planwise/assistant/internal/model"
	"github.com/planwise/assistant/internal/repository"
)

type UserService struct {
	userRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

func (s *UserService) ByID(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepository.ByID(ctx, id)
}

func (s *UserService) ByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.userRepository.ByUsername(ctx, username)
}

const defaultListLimit = 100

func (s *UserService) List(ctx context.Context, skip, limit int) ([]*model.User, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	if skip < 0 {
		skip = 0
	}
	return s.userRepository.List(ctx, skip, limit)
}
