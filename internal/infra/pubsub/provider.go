// Package pubsub publishes retailer, deal and price alert lifecycle events.
// Delivery to end users (email) happens in downstream subscribers.
package pubsub

import (
	"context"
	"log/slog"

	"dealsmarket/config"
	"dealsmarket/internal/domain/constants"
	"dealsmarket/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discardPublisher drops events when no provider is configured, e.g. in tests and local runs.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) Publish(ctx context.Context, event *service.LifecycleEvent) error {
	p.logger.DebugContext(ctx, "Lifecycle event dropped, no pubsub provider",
		slog.String("event_type", string(event.Type)),
		slog.String("aggregate_id", event.AggregateID),
	)

	return nil
}

func (p *discardPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx.
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher named by pubsub.provider and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	logger := params.Logger.With(slog.String("component", "pubsub"))

	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.Wrap(publisher.Close(), "failed to close event publisher")
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == constants.PubSubProviderNone {
		logger.Info("No pubsub provider configured, lifecycle events are dropped")

		return &discardPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Publishing lifecycle events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Publishing lifecycle events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

// Module provides the EventPublisher to the Fx graph.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
