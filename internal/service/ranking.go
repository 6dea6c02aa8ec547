package service

import (
	"context"

	"pixel_bistro/internal/models"
	"pixel_bistro/internal/repository"
)

const (
	DefaultRankingLimit = 6
	MaxRankingLimit     = 50
)

type RankingService struct {
	repo repository.RankingRepo
}

func NewRankingService(repo repository.RankingRepo) *RankingService {
	return &RankingService{repo: repo}
}

// Top returns the leaderboard. Non-positive limits use the default and large
// ones are capped.
func (s *RankingService) Top(ctx context.Context, limit int) ([]models.RankEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultRankingLimit
	case limit > MaxRankingLimit:
		limit = MaxRankingLimit
	}
	return s.repo.Top(ctx, limit)
}
