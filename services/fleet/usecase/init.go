package usecase

import (
	"github.com/naqla-app/naqla/internal/pkg/models"
	"github.com/naqla-app/naqla/services/fleet"
)

// FleetUC implements the fleet usecase interface
type FleetUC struct {
	fleetRepo fleet.FleetRepo
	cfg       *models.Config
}

// NewFleetUC creates a new fleet usecase instance
func NewFleetUC(fleetRepo fleet.FleetRepo, cfg *models.Config) *FleetUC {
	return &FleetUC{
		fleetRepo: fleetRepo,
		cfg:       cfg,
	}
}
