package loads

import (
	"context"

	"github.com/google/uuid"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/naqla-app/naqla/services/loads LoadUC

// LoadUC represents the load lifecycle usecase interface
type LoadUC interface {
	PostLoad(ctx context.Context, ownerID uuid.UUID, draft *models.LoadDraft) (*models.Load, error)
	GetLoads(ctx context.Context) ([]*models.LoadWithOwner, error)
	GetLoadByID(ctx context.Context, id uuid.UUID) (*models.LoadWithOwner, error)
	GetNearbyLoads(ctx context.Context, lat, lng float64) ([]*models.LoadWithOwner, error)

	AcceptLoad(ctx context.Context, loadID, driverID uuid.UUID) (*models.LoadWithOwner, error)
	CompleteLoad(ctx context.Context, loadID, driverID uuid.UUID) (*models.LoadWithOwner, error)
	// CancelLoad releases the load back to the open board. Only the owning
	// shipper or the assigned driver may cancel.
	CancelLoad(ctx context.Context, loadID, actorID uuid.UUID) error

	GetDriverHistory(ctx context.Context, driverID uuid.UUID) ([]*models.LoadWithOwner, error)
}
