package usecase

import (
	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/services/accounts"
)

// AccountUC implements the accounts usecase interface
type AccountUC struct {
	accountRepo accounts.AccountRepo
	cfg         *models.Config
}

// NewAccountUC creates a new accounts usecase instance
func NewAccountUC(accountRepo accounts.AccountRepo, cfg *models.Config) *AccountUC {
	return &AccountUC{
		accountRepo: accountRepo,
		cfg:         cfg,
	}
}
