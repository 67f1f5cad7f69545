package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var (
		got       PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.DomainEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       service.EventTierChanged,
		UserID:     "user-1",
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Attributes: map[string]string{"tier": "pro"},
	}

	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, "evt-1", got.Message.MessageID)
	assert.Equal(t, "profile.tier_changed", got.Message.Attributes["event_type"])
	assert.Equal(t, "pro", got.Message.Attributes["tier"])
	assert.Equal(t, "user-1", got.Message.Attributes["user_id"])

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, event.UserID, decoded.UserID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.Publish(context.Background(), &service.DomainEvent{EventID: "evt-2", Type: service.EventNDASigned})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNoopPublisher(t *testing.T) {
	p := &noopPublisher{logger: discardLogger()}
	assert.NoError(t, p.Publish(context.Background(), &service.DomainEvent{EventID: "x"}))
	assert.NoError(t, p.Close())
}

func TestEventAttributes_ReservedKeysWin(t *testing.T) {
	attrs := eventAttributes(&service.DomainEvent{
		EventID:    "evt-3",
		Type:       service.EventOfferSubmitted,
		UserID:     "u",
		Attributes: map[string]string{"event_type": "spoofed", "deal_id": "d"},
	})

	assert.Equal(t, "deal.offer_submitted", attrs["event_type"])
	assert.Equal(t, "d", attrs["deal_id"])
	_, hasRequestID := attrs["request_id"]
	assert.False(t, hasRequestID)
}
