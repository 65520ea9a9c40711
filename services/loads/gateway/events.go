package gateway

import (
	"github.com/naqla-app/naqla/internal/pkg/logger"
	"github.com/naqla-app/naqla/internal/pkg/models"
)

// PublishLoadEvent publishes a load lifecycle event to the given topic
func (g *LoadGW) PublishLoadEvent(topic string, event *models.LoadEvent) error {
	if g.producer == nil {
		logger.Debug("Messaging disabled, dropping load event",
			logger.String("topic", topic),
			logger.String("load_id", event.LoadID.String()))
		return nil
	}

	return g.producer.Publish(topic, event)
}
