package loads

import (
	"context"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/naqla-app/naqla/services/loads LoadGW

// LoadGW defines the load service's outbound gateways: lifecycle event
// publishing and route estimation.
type LoadGW interface {
	PublishLoadEvent(topic string, event *models.LoadEvent) error
	EstimateRoute(ctx context.Context, originLat, originLng, destLat, destLng float64) (*models.RouteEstimate, error)
}
