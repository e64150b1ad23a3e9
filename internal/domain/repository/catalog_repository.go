package repository

import (
	"context"

	"nomnom/internal/domain/entity"
)

// CatalogTables is the raw reference data yielded by a catalog source.
// Maps are keyed by city id.
type CatalogTables struct {
	Cities       []entity.City
	Points       map[string][]entity.PointOfInterest
	Permits      map[string]map[string]entity.PermitTier // point name -> tier
	PermitGuides map[string]entity.PermitGuide
	Zones        map[string][]entity.Zone
}

// CatalogSource loads reference tables once at startup.
type CatalogSource interface {
	LoadCatalog(ctx context.Context) (*CatalogTables, error)
}

// CatalogRepository is the read-only view of the reference catalog.
// Returned slices are copies; callers may not affect other readers.
type CatalogRepository interface {
	Cities() []entity.City
	City(cityID string) (entity.City, bool)
	DefaultCityID() string
	PointsOfInterest(cityID string) []entity.PointOfInterest
	Point(cityID, name string) (entity.PointOfInterest, bool)
	PermitStatus(pointName, cityID string) entity.PermitStatus
	PermitGuide(cityID string) entity.PermitGuide
	ZoneDefinitions(cityID string) []entity.Zone
}
