// Package postgres loads the reference catalog from PostgreSQL using GORM.
package postgres

import (
	"context"
	"encoding/json"

	"nomnom/internal/domain/entity"
	"nomnom/internal/domain/repository"
	"nomnom/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogSource implements repository.CatalogSource.
type catalogSource struct {
	db *gorm.DB
}

// NewCatalogSource is the constructor for catalogSource.
func NewCatalogSource(db *gorm.DB) repository.CatalogSource {
	return &catalogSource{db: db}
}

// LoadCatalog reads every catalog table in display order.
func (s *catalogSource) LoadCatalog(ctx context.Context) (*repository.CatalogTables, error) {
	db := s.db.WithContext(ctx)

	var cities []model.CityModel
	if err := db.Order("position, id").Find(&cities).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load cities")
	}

	var points []model.PointOfInterestModel
	if err := db.Order("city_id, position, id").Find(&points).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load points of interest")
	}

	var permits []model.PermitModel
	if err := db.Find(&permits).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load permits")
	}

	var guides []model.PermitGuideModel
	if err := db.Find(&guides).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load permit guides")
	}

	var zones []model.ZoneModel
	err := db.
		Preload("Members", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		Order("city_id, position, id").
		Find(&zones).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load zones")
	}

	return toCatalogTables(cities, points, permits, guides, zones)
}

func toCatalogTables(
	cities []model.CityModel,
	points []model.PointOfInterestModel,
	permits []model.PermitModel,
	guides []model.PermitGuideModel,
	zones []model.ZoneModel,
) (*repository.CatalogTables, error) {
	tables := &repository.CatalogTables{
		Points:       make(map[string][]entity.PointOfInterest),
		Permits:      make(map[string]map[string]entity.PermitTier),
		PermitGuides: make(map[string]entity.PermitGuide),
		Zones:        make(map[string][]entity.Zone),
	}

	for _, c := range cities {
		tables.Cities = append(tables.Cities, toCityDomain(c))
	}

	for _, p := range points {
		tables.Points[p.CityID] = append(tables.Points[p.CityID], entity.PointOfInterest{
			Name:       p.Name,
			Coordinate: entity.Coordinate{Lat: p.Latitude, Lon: p.Longitude},
			Category:   entity.Category(p.Category),
		})
	}

	for _, p := range permits {
		if tables.Permits[p.CityID] == nil {
			tables.Permits[p.CityID] = make(map[string]entity.PermitTier)
		}
		tables.Permits[p.CityID][p.PointName] = entity.PermitTier(p.Tier)
	}

	for _, g := range guides {
		var guide entity.PermitGuide
		if err := json.Unmarshal([]byte(g.Document), &guide); err != nil {
			return nil, errors.Wrapf(err, "failed to decode permit guide for %s", g.CityID)
		}
		tables.PermitGuides[g.CityID] = guide
	}

	for _, z := range zones {
		members := make([]string, 0, len(z.Members))
		for _, m := range z.Members {
			members = append(members, m.PointName)
		}

		tables.Zones[z.CityID] = append(tables.Zones[z.CityID], entity.Zone{
			Name:    z.Name,
			Center:  entity.Coordinate{Lat: z.Latitude, Lon: z.Longitude},
			Radius:  z.Radius,
			Members: members,
		})
	}

	return tables, nil
}

func toCityDomain(c model.CityModel) entity.City {
	return entity.City{
		ID:          c.ID,
		Name:        c.Name,
		Coords:      entity.Coordinate{Lat: c.Latitude, Lon: c.Longitude},
		BBox:        entity.BoundingBox{South: c.South, West: c.West, North: c.North, East: c.East},
		DefaultZoom: c.DefaultZoom,
		Timezone:    c.Timezone,
	}
}
