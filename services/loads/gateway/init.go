package gateway

import (
	httppkg "github.com/naqla-app/naqla/internal/pkg/http"
	"github.com/naqla-app/naqla/internal/pkg/models"
	nsqpkg "github.com/naqla-app/naqla/internal/pkg/nsq"
)

// LoadGW implements the load service gateways: NSQ event publishing and the
// external routing service. The producer may be nil when messaging is
// disabled; events are then dropped with a debug log.
type LoadGW struct {
	cfg           *models.Config
	producer      *nsqpkg.Producer
	routingClient *httppkg.Client
}

// NewLoadGW creates a new load gateway instance
func NewLoadGW(cfg *models.Config, producer *nsqpkg.Producer, routingClient *httppkg.Client) *LoadGW {
	return &LoadGW{
		cfg:           cfg,
		producer:      producer,
		routingClient: routingClient,
	}
}
