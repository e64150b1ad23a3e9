// Package catalog provides the immutable reference tables (cities, points of
// interest, permit tiers, zones) shared read-only by every request.
package catalog

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"nomnom/config"
	"nomnom/internal/domain/entity"
	"nomnom/internal/domain/lifecycle"
	"nomnom/internal/domain/repository"
	"nomnom/internal/errors"

	"go.uber.org/fx"
)

// Catalog is an immutable, validated view over CatalogTables.
type Catalog struct {
	cities        []entity.City
	byID          map[string]entity.City
	defaultCityID string
	points        map[string][]entity.PointOfInterest
	pointIndex    map[string]map[string]int
	permits       map[string]map[string]entity.PermitTier
	guides        map[string]entity.PermitGuide
	zones         map[string][]entity.Zone
}

// Params defines the dependencies of the fx provider.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Source repository.CatalogSource
}

// Provide loads the catalog once from the configured source.
func Provide(params Params) (repository.CatalogRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	tables, err := params.Source.LoadCatalog(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	return New(tables, params.Config.Catalog.DefaultCityID, params.Logger)
}

// New validates tables and builds a Catalog. Names referenced by permit or
// zone tables that match no point are logged; they fall back to defaults.
func New(tables *repository.CatalogTables, defaultCityID string, logger *slog.Logger) (*Catalog, error) {
	if tables == nil || len(tables.Cities) == 0 {
		return nil, errors.New("catalog has no cities")
	}

	c := &Catalog{
		byID:          make(map[string]entity.City, len(tables.Cities)),
		defaultCityID: defaultCityID,
		points:        make(map[string][]entity.PointOfInterest),
		pointIndex:    make(map[string]map[string]int),
		permits:       make(map[string]map[string]entity.PermitTier),
		guides:        make(map[string]entity.PermitGuide),
		zones:         make(map[string][]entity.Zone),
	}

	for _, city := range tables.Cities {
		if city.ID == "" {
			return nil, errors.Errorf("city %q has no id", city.Name)
		}
		if _, dup := c.byID[city.ID]; dup {
			return nil, errors.Errorf("duplicate city id %q", city.ID)
		}
		c.byID[city.ID] = city
		c.cities = append(c.cities, city)
	}

	if _, ok := c.byID[defaultCityID]; !ok {
		return nil, errors.Errorf("default city %q is not in the catalog", defaultCityID)
	}

	for cityID, points := range tables.Points {
		if _, ok := c.byID[cityID]; !ok {
			return nil, errors.Errorf("points reference unknown city %q", cityID)
		}

		index := make(map[string]int, len(points))
		for i, p := range points {
			if _, dup := index[p.Name]; dup {
				return nil, errors.Errorf("duplicate point %q in city %q", p.Name, cityID)
			}
			if !p.Category.IsKnown() {
				logger.Warn("Point has unknown category, generic traffic profile applies",
					slog.String("city_id", cityID),
					slog.String("point", p.Name),
					slog.String("category", string(p.Category)),
				)
			}
			index[p.Name] = i
		}

		c.points[cityID] = slices.Clone(points)
		c.pointIndex[cityID] = index
	}

	for cityID, tiers := range tables.Permits {
		c.permits[cityID] = maps.Clone(tiers)
		for name := range tiers {
			c.warnOrphan(logger, cityID, name, "permit")
		}
	}

	maps.Copy(c.guides, tables.PermitGuides)

	for cityID, zones := range tables.Zones {
		c.zones[cityID] = cloneZones(zones)
		for _, z := range zones {
			for _, member := range z.Members {
				c.warnOrphan(logger, cityID, member, "zone "+z.Name)
			}
		}
	}

	return c, nil
}

func (c *Catalog) warnOrphan(logger *slog.Logger, cityID, name, table string) {
	if _, ok := c.pointIndex[cityID][name]; ok {
		return
	}

	logger.Warn("Catalog entry matches no point of interest",
		slog.String("city_id", cityID),
		slog.String("name", name),
		slog.String("table", table),
	)
}

// Cities returns every supported city in catalog order.
func (c *Catalog) Cities() []entity.City {
	return slices.Clone(c.cities)
}

func (c *Catalog) City(cityID string) (entity.City, bool) {
	city, ok := c.byID[cityID]

	return city, ok
}

func (c *Catalog) DefaultCityID() string {
	return c.defaultCityID
}

// PointsOfInterest returns the city's points in catalog order.
func (c *Catalog) PointsOfInterest(cityID string) []entity.PointOfInterest {
	return slices.Clone(c.points[cityID])
}

// Point looks up a single point by its exact name.
func (c *Catalog) Point(cityID, name string) (entity.PointOfInterest, bool) {
	i, ok := c.pointIndex[cityID][name]
	if !ok {
		return entity.PointOfInterest{}, false
	}

	return c.points[cityID][i], true
}

// PermitStatus returns the annotation for a point, yellow when unclassified.
func (c *Catalog) PermitStatus(pointName, cityID string) entity.PermitStatus {
	tier, ok := c.permits[cityID][pointName]
	if !ok {
		tier = entity.PermitTierYellow
	}

	return StatusForTier(tier)
}

// PermitGuide returns the city's guide, or the default city's when it has none.
func (c *Catalog) PermitGuide(cityID string) entity.PermitGuide {
	guide, ok := c.guides[cityID]
	if !ok {
		guide = c.guides[c.defaultCityID]
	}

	return cloneGuide(guide)
}

func (c *Catalog) ZoneDefinitions(cityID string) []entity.Zone {
	return cloneZones(c.zones[cityID])
}

func cloneZones(zones []entity.Zone) []entity.Zone {
	out := make([]entity.Zone, len(zones))
	for i, z := range zones {
		z.Members = slices.Clone(z.Members)
		out[i] = z
	}

	return out
}

func cloneGuide(g entity.PermitGuide) entity.PermitGuide {
	out := g
	out.GeneralRules = slices.Clone(g.GeneralRules)

	out.Sections = make([]entity.PermitSection, len(g.Sections))
	for i, s := range g.Sections {
		items := make([]entity.PermitItem, len(s.Items))
		for j, item := range s.Items {
			items[j] = entity.PermitItem{Title: item.Title, Details: slices.Clone(item.Details)}
		}
		out.Sections[i] = entity.PermitSection{Heading: s.Heading, Items: items}
	}

	out.Zones = make(map[entity.PermitTier]entity.PermitZoneTip, len(g.Zones))
	for tier, tip := range g.Zones {
		tip.Locations = slices.Clone(tip.Locations)
		out.Zones[tier] = tip
	}

	return out
}
