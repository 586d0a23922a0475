package usecase

import (
	"context"
	"time"

	"workforce-api/internal/shared/eventbus"
	"workforce-api/internal/shared/logger"
	"workforce-api/internal/workforce/domain/model"
	"workforce-api/internal/workforce/domain/repository"

	"github.com/google/uuid"
)

// changePublisher fans a ChangeEvent out to the in-process bus and, when
// configured, the durable event store. Failures never fail the write that
// produced the event.
type changePublisher struct {
	bus   eventbus.Bus
	store repository.ChangeEventStore
	log   logger.Logger
	now   func() time.Time
}

func newChangePublisher(bus eventbus.Bus, store repository.ChangeEventStore, log logger.Logger) *changePublisher {
	return &changePublisher{bus: bus, store: store, log: log, now: time.Now}
}

func (p *changePublisher) publish(ctx context.Context, entity, businessKey string, change model.ChangeType, data map[string]interface{}) {
	event := model.ChangeEvent{
		ID:          uuid.NewString(),
		Entity:      entity,
		BusinessKey: businessKey,
		Change:      change,
		Data:        data,
		Timestamp:   p.now().UTC(),
	}

	if p.bus != nil {
		p.bus.PublishAndForget(ctx, event)
	}
	if p.store != nil {
		if err := p.store.Append(ctx, event); err != nil && p.log != nil {
			p.log.WithFields(map[string]interface{}{
				"entity":      entity,
				"businessKey": businessKey,
			}).Warnf("change event not persisted: %v", err)
		}
	}
}
