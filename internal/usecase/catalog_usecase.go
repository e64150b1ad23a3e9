package usecase

import (
	"context"

	"nomnom/internal/domain/entity"
)

// Hotspot is a point of interest with its current traffic level
type Hotspot struct {
	entity.PointOfInterest
	TrafficLevel int `json:"traffic_level"`
}

// PermitHotspot is a point of interest annotated with its permit tier
type PermitHotspot struct {
	entity.PointOfInterest
	PermitStatus entity.PermitTier `json:"permit_status"`
	PermitLabel  string            `json:"permit_label"`
	PermitColor  string            `json:"permit_color"`
}

// CatalogUsecase serves the static reference data
type CatalogUsecase interface {
	Cities(ctx context.Context) map[string]entity.City
	Hotspots(ctx context.Context, cityID string, simulatedHour *int) ([]Hotspot, error)
	HotspotsWithPermits(ctx context.Context, cityID string) ([]PermitHotspot, error)
	PermitGuide(ctx context.Context, cityID string) entity.PermitGuide
	HotspotQRCode(ctx context.Context, cityID, name string) ([]byte, error)
}
