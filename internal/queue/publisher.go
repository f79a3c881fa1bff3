package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/award-tracker/internal/models"
	"github.com/RubachokBoss/award-tracker/internal/repository"
)

const (
	RoutingKeyContentClassified = "content.classified"
	RoutingKeyReadinessUpdated  = "readiness.updated"
	RoutingKeyOverrideApplied   = "override.applied"
)

// EventPublisher fans engine outcomes out to the broker. Publishing is
// best-effort notification only: callers log failures and keep going, the
// persisted store stays the source of truth.
type EventPublisher interface {
	PublishContentClassified(ctx context.Context, event models.ContentClassifiedEvent) error
	PublishReadinessUpdated(ctx context.Context, event models.ReadinessUpdatedEvent) error
	PublishOverrideApplied(ctx context.Context, event models.OverrideAppliedEvent) error
}

type eventPublisher struct {
	broker   repository.RabbitMQRepository
	exchange string
	logger   zerolog.Logger
}

func NewEventPublisher(broker repository.RabbitMQRepository, exchange string, logger zerolog.Logger) EventPublisher {
	return &eventPublisher{
		broker:   broker,
		exchange: exchange,
		logger:   logger,
	}
}

func (p *eventPublisher) PublishContentClassified(ctx context.Context, event models.ContentClassifiedEvent) error {
	return p.publish(ctx, RoutingKeyContentClassified, event)
}

func (p *eventPublisher) PublishReadinessUpdated(ctx context.Context, event models.ReadinessUpdatedEvent) error {
	return p.publish(ctx, RoutingKeyReadinessUpdated, event)
}

func (p *eventPublisher) PublishOverrideApplied(ctx context.Context, event models.OverrideAppliedEvent) error {
	return p.publish(ctx, RoutingKeyOverrideApplied, event)
}

func (p *eventPublisher) publish(ctx context.Context, routingKey string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.broker.Publish(ctx, p.exchange, routingKey, body); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", routingKey, err)
	}

	p.logger.Debug().
		Str("routing_key", routingKey).
		Int("body_size", len(body)).
		Msg("Event published")

	return nil
}

// NopPublisher discards events. Used when the broker is disabled in config and
// in tests.
type NopPublisher struct{}

func (NopPublisher) PublishContentClassified(context.Context, models.ContentClassifiedEvent) error {
	return nil
}

func (NopPublisher) PublishReadinessUpdated(context.Context, models.ReadinessUpdatedEvent) error {
	return nil
}

func (NopPublisher) PublishOverrideApplied(context.Context, models.OverrideAppliedEvent) error {
	return nil
}
