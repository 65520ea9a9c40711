package usecase

import (
	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/services/stats"
)

// StatsUC implements the statistics usecase interface
type StatsUC struct {
	statsRepo stats.StatsRepo
	cfg       *models.Config
}

// NewStatsUC creates a new statistics usecase instance
func NewStatsUC(statsRepo stats.StatsRepo, cfg *models.Config) *StatsUC {
	return &StatsUC{
		statsRepo: statsRepo,
		cfg:       cfg,
	}
}
