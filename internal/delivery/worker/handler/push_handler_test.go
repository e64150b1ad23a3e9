package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nomnom/config"
	deliverycontext "nomnom/internal/delivery/context"
	domainerrors "nomnom/internal/domain/errors"
	"nomnom/internal/domain/service"
	"nomnom/internal/infra/pubsub"
	mockUsecase "nomnom/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, refresh *config.RefreshConfig) (*PushHandler, *mockUsecase.MockRefreshUsecase) {
	refreshUC := mockUsecase.NewMockRefreshUsecase(t)

	h := NewPushHandler(PushHandlerParams{
		Config:    &config.Config{Refresh: refresh},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		RefreshUC: refreshUC,
	})

	return h, refreshUC
}

func pushBody(t *testing.T, event *service.RefreshEvent, attrs map[string]string) string {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/nomnom/subscriptions/refresh-push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}

	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.RefreshEvent{RequestID: "evt-req", CityID: "copenhagen", Sources: []string{"weather"}}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		applyErr   error
		expectCall bool
		wantStatus int
	}{
		{
			name:       "applied",
			body:       func(t *testing.T) string { return pushBody(t, event, nil) },
			expectCall: true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "provider failure is redelivered",
			body:       func(t *testing.T) string { return pushBody(t, event, nil) },
			applyErr:   errors.Wrap(domainerrors.ErrProviderUnavailable, "weather: status 502"),
			expectCall: true,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "other failures are acknowledged",
			body:       func(t *testing.T) string { return pushBody(t, event, nil) },
			applyErr:   errors.New("unexpected"),
			expectCall: true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "data is not base64",
			body:       func(t *testing.T) string { return `{"message":{"data":"%%%"}}` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "data is not an event",
			body: func(t *testing.T) string {
				return `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "envelope is not json",
			body:       func(t *testing.T) string { return `{` },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, refreshUC := newTestPushHandler(t, &config.RefreshConfig{})
			if tt.expectCall {
				refreshUC.EXPECT().ApplyRefresh(mock.Anything, mock.MatchedBy(func(e *service.RefreshEvent) bool {
					return e.CityID == "copenhagen" && len(e.Sources) == 1
				})).Return(tt.applyErr)
			}

			rec := servePush(h, tt.body(t), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RequestIDPropagation(t *testing.T) {
	tests := []struct {
		name  string
		event *service.RefreshEvent
		attrs map[string]string
		want  string
	}{
		{"attribute wins", &service.RefreshEvent{RequestID: "from-event", CityID: "copenhagen"}, map[string]string{pubsub.AttrRequestID: "from-attr"}, "from-attr"},
		{"event field", &service.RefreshEvent{RequestID: "from-event", CityID: "copenhagen"}, nil, "from-event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, refreshUC := newTestPushHandler(t, &config.RefreshConfig{})

			var got string
			refreshUC.EXPECT().ApplyRefresh(mock.Anything, mock.Anything).
				Run(func(ctx context.Context, _ *service.RefreshEvent) {
					got = deliverycontext.GetRequestIDFromContext(ctx)
				}).Return(nil)

			rec := servePush(h, pushBody(t, tt.event, tt.attrs), nil)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractRequestID_Fallbacks(t *testing.T) {
	var msg pubsub.PushMessage

	ctx := deliverycontext.WithRequestID(context.Background(), "from-header")
	assert.Equal(t, "from-header", extractRequestID(ctx, &msg, &service.RefreshEvent{}))

	generated := extractRequestID(context.Background(), &msg, &service.RefreshEvent{})
	assert.Len(t, generated, 36)
}

func TestPushHandler_VerifyPushAuth(t *testing.T) {
	event := &service.RefreshEvent{CityID: "copenhagen"}

	tests := []struct {
		name       string
		header     http.Header
		issuer     string
		validErr   error
		wantStatus int
	}{
		{"missing header", nil, "", nil, http.StatusUnauthorized},
		{"not bearer", http.Header{"Authorization": {"Basic abc"}}, "", nil, http.StatusUnauthorized},
		{"invalid token", http.Header{"Authorization": {"Bearer bad"}}, "", errors.New("expired"), http.StatusUnauthorized},
		{"wrong issuer", http.Header{"Authorization": {"Bearer tok"}}, "https://evil.example", nil, http.StatusUnauthorized},
		{"google issuer", http.Header{"Authorization": {"Bearer tok"}}, "https://accounts.google.com", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, refreshUC := newTestPushHandler(t, &config.RefreshConfig{
				VerifyPushAuth: true,
				Audience:       "https://refresher.example/push",
			})

			var gotAudience string
			h.validateToken = func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
				gotAudience = audience
				if tt.validErr != nil {
					return nil, tt.validErr
				}

				return &idtoken.Payload{Issuer: tt.issuer, Claims: map[string]any{"email_verified": true}}, nil
			}

			if tt.wantStatus == http.StatusOK {
				refreshUC.EXPECT().ApplyRefresh(mock.Anything, mock.Anything).Return(nil)
			}

			rec := servePush(h, pushBody(t, event, nil), tt.header)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.issuer != "" {
				assert.Equal(t, "https://refresher.example/push", gotAudience)
			}
		})
	}
}
