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

	"nomnom/config"
	"nomnom/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishRefreshEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.RefreshEvent{
		RequestID:   "req-1",
		CityID:      "copenhagen",
		Sources:     []string{service.RefreshSourceWeather},
		RequestedAt: time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishRefreshEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "copenhagen", received.Message.Attributes[AttrCityID])
	assert.Equal(t, "req-1", received.Message.Attributes[AttrRequestID])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.RefreshEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishRefreshEvent(context.Background(), &service.RefreshEvent{CityID: "ghent"})
	assert.Error(t, err)
}

func TestNewRefreshPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg      *config.PubSubConfig
		wantNoop bool
		wantErr  bool
	}{
		{"missing section", nil, true, false},
		{"noop", &config.PubSubConfig{Provider: "noop"}, true, false},
		{"local", &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}, false, false},
		{"local without endpoint", &config.PubSubConfig{Provider: "local"}, false, true},
		{"google without project", &config.PubSubConfig{Provider: "google", TopicID: "t"}, false, true},
		{"google without topic", &config.PubSubConfig{Provider: "google", ProjectID: "p"}, false, true},
		{"unknown", &config.PubSubConfig{Provider: "kafka"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewRefreshPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)

			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.wantNoop, isNoop)
			if isNoop {
				assert.NoError(t, publisher.PublishRefreshEvent(context.Background(), &service.RefreshEvent{CityID: "x"}))
			}
		})
	}
}
