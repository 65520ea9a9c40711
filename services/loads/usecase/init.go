package usecase

import (
	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/services/loads"
)

// LoadUC implements the load lifecycle usecase interface
type LoadUC struct {
	loadRepo loads.LoadRepo
	loadGW   loads.LoadGW
	cfg      *models.Config
}

// NewLoadUC creates a new load usecase instance
func NewLoadUC(loadRepo loads.LoadRepo, loadGW loads.LoadGW, cfg *models.Config) *LoadUC {
	return &LoadUC{
		loadRepo: loadRepo,
		loadGW:   loadGW,
		cfg:      cfg,
	}
}
