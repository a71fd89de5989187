package service

import (
	"context"
	"fmt"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/repository"
)

type UserStatsService interface {
	GetUserStats(ctx context.Context) (*domain.UserStats, error)
	// UpdateUserStats overwrites the given fields. bestStreak is raised to
	// currentStreak when the result would otherwise break that order.
	UpdateUserStats(ctx context.Context, patch domain.UserStatsPatch) (*domain.UserStats, error)
}

type userStatsService struct {
	store repository.UserStatsRepository
}

func NewUserStatsService(store repository.UserStatsRepository) UserStatsService {
	return &userStatsService{store: store}
}

func (s *userStatsService) GetUserStats(ctx context.Context) (*domain.UserStats, error) {
	stats, err := s.store.GetUserStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get user stats: %w", err)
	}
	return stats, nil
}

func (s *userStatsService) UpdateUserStats(ctx context.Context, patch domain.UserStatsPatch) (*domain.UserStats, error) {
	stats, err := s.store.UpdateUserStats(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("update user stats: %w", err)
	}
	return stats, nil
}
