package services

import (
	"context"

	"fileshare-api/internal/application/ports"
	domain "fileshare-api/internal/domain/user"
)

type UserService struct {
	userRepository domain.Repository
}

func NewUserService(userRepository domain.Repository) ports.UserService {
	return &UserService{userRepository: userRepository}
}

func (us *UserService) FindByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByOpenID(ctx context.Context, openID string) (*domain.User, error) {
	u, err := us.userRepository.FetchByOpenID(ctx, openID)
	if err != nil {
		return nil, err
	}

	return u, nil
}
