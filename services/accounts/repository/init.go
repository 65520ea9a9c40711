package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/naqla-app/naqla/internal/pkg/database"
	"github.com/naqla-app/naqla/internal/pkg/models"
)

// AccountRepo implements the accounts repository interface
type AccountRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAccountRepo creates a new accounts repository instance
func NewAccountRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AccountRepo {
	return &AccountRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
