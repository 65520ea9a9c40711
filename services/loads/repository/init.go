package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

// LoadRepo implements the load lifecycle repository interface
type LoadRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewLoadRepo creates a new load repository instance
func NewLoadRepo(cfg *models.Config, db *sqlx.DB) *LoadRepo {
	return &LoadRepo{
		cfg: cfg,
		db:  db,
	}
}
