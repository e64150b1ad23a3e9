package usecase

import (
	"context"

	"nomnom/internal/domain/service"
)

// RefreshUsecase drops and re-warms cached provider snapshots
type RefreshUsecase interface {
	// RequestRefresh publishes a refresh event for the refresher worker
	RequestRefresh(ctx context.Context, cityID string, sources []string) (*service.RefreshEvent, error)

	// ApplyRefresh runs on the worker; errors wrapping ErrProviderUnavailable are retryable
	ApplyRefresh(ctx context.Context, event *service.RefreshEvent) error
}
