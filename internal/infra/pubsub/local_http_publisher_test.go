package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealsmarket/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	event := &service.LifecycleEvent{
		RequestID:   "req-1",
		Type:        service.EventDealReviewed,
		AggregateID: "deal-1",
		OccurredAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Data:        map[string]string{"status": "approved"},
	}

	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "deal.reviewed", received.Message.Attributes["event_type"])
	assert.Equal(t, "deal-1", received.Message.Attributes["aggregate_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.LifecycleEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, service.EventDealReviewed, decoded.Type)
	assert.Equal(t, "approved", decoded.Data["status"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	err := publisher.Publish(context.Background(), &service.LifecycleEvent{Type: service.EventRetailerApplied})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestDiscardPublisher(t *testing.T) {
	publisher := &discardPublisher{logger: slog.Default()}

	assert.NoError(t, publisher.Publish(context.Background(), &service.LifecycleEvent{Type: service.EventDealSubmitted}))
	assert.NoError(t, publisher.Close())
}
