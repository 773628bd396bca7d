package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"dealsmarket/config"
	"dealsmarket/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("unconfigured drops events", func(t *testing.T) {
		for _, cfg := range []*config.PubSubConfig{nil, {}} {
			publisher, err := newPublisher(ctx, cfg, logger)
			require.NoError(t, err)
			assert.IsType(t, &discardPublisher{}, publisher)
			assert.NoError(t, publisher.Publish(ctx, &service.LifecycleEvent{Type: service.EventDealSubmitted}))
			assert.NoError(t, publisher.Close())
		}
	})

	t.Run("local provider", func(t *testing.T) {
		publisher, err := newPublisher(ctx, &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8085/push"}, logger)
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	t.Run("local provider needs an endpoint", func(t *testing.T) {
		_, err := newPublisher(ctx, &config.PubSubConfig{Provider: "local"}, logger)
		assert.ErrorContains(t, err, "localEndpoint")
	})

	t.Run("google provider needs a topic", func(t *testing.T) {
		_, err := newPublisher(ctx, &config.PubSubConfig{Provider: "google", ProjectID: "deals"}, logger)
		assert.ErrorContains(t, err, "topicId")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := newPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, logger)
		assert.ErrorContains(t, err, `unknown pubsub provider "kafka"`)
	})
}
