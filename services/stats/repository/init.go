package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

// StatsRepo implements the statistics repository interface
type StatsRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewStatsRepo creates a new statistics repository instance
func NewStatsRepo(cfg *models.Config, db *sqlx.DB) *StatsRepo {
	return &StatsRepo{
		cfg: cfg,
		db:  db,
	}
}
