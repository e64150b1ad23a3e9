package places

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"nomnom/config"
	"nomnom/internal/domain/entity"
	"nomnom/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/serjvanilla/go-overpass"
)

const (
	competitorType = "competitor"
	unnamedVenue   = "Unnamed Cafe"
)

// OverpassLocator finds competing venues through the OpenStreetMap Overpass API.
type OverpassLocator struct {
	client  *overpass.Client
	amenity string
	logger  *slog.Logger
}

// NewOverpassLocator creates a CompetitorLocator for the configured amenity tag.
func NewOverpassLocator(cfg *config.Config, logger *slog.Logger) service.CompetitorLocator {
	httpClient := &http.Client{
		Timeout: cfg.Overpass.Timeout,
	}
	client := overpass.NewWithSettings(cfg.Overpass.Endpoint, cfg.Overpass.MaxParallel, httpClient)

	return &OverpassLocator{
		client:  &client,
		amenity: cfg.Overpass.Amenity,
		logger:  logger.With(slog.String("provider", "overpass")),
	}
}

func (l *OverpassLocator) buildQuery(bbox entity.BoundingBox) string {
	area := fmt.Sprintf("%s,%s,%s,%s",
		strconv.FormatFloat(bbox.South, 'f', -1, 64),
		strconv.FormatFloat(bbox.West, 'f', -1, 64),
		strconv.FormatFloat(bbox.North, 'f', -1, 64),
		strconv.FormatFloat(bbox.East, 'f', -1, 64),
	)

	return fmt.Sprintf(`
		[out:json];
		(
			node["amenity"="%s"](%s);
			way["amenity"="%s"](%s);
		);
		out body;
		>;
		out skel qt;
	`, l.amenity, area, l.amenity, area)
}

// Competitors returns the amenity nodes and ways inside the city's bounding box,
// ordered by OSM id. Ways are placed at the mean of their nodes.
func (l *OverpassLocator) Competitors(ctx context.Context, city entity.City) ([]entity.Competitor, error) {
	result, err := l.executeQuery(ctx, l.buildQuery(city.BBox))
	if err != nil {
		return nil, err
	}

	competitors := l.convert(result, city.BBox)
	l.logger.Debug("Competitors located",
		slog.String("city_id", city.ID),
		slog.Int("count", len(competitors)),
	)

	return competitors, nil
}

func (l *OverpassLocator) executeQuery(ctx context.Context, query string) (*overpass.Result, error) {
	type outcome struct {
		result overpass.Result
		err    error
	}

	// the client has no context support; the http timeout bounds the goroutine
	done := make(chan outcome, 1)
	go func() {
		result, err := l.client.Query(query)
		done <- outcome{result: result, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case out := <-done:
		if out.err != nil {
			return nil, errors.Wrap(out.err, "overpass query failed")
		}

		return &out.result, nil
	}
}

func (l *OverpassLocator) convert(result *overpass.Result, bbox entity.BoundingBox) []entity.Competitor {
	bound := bbox.Bound()
	competitors := make([]entity.Competitor, 0, len(result.Nodes)+len(result.Ways))

	nodeIDs := make([]int64, 0, len(result.Nodes))
	for id := range result.Nodes {
		nodeIDs = append(nodeIDs, id)
	}
	slices.Sort(nodeIDs)

	for _, id := range nodeIDs {
		node := result.Nodes[id]
		// skeleton nodes of ways carry no tags
		if node.Tags["amenity"] != l.amenity {
			continue
		}

		at := entity.Coordinate{Lat: node.Lat, Lon: node.Lon}
		if !bound.Contains(at.Point()) {
			continue
		}

		competitors = append(competitors, newCompetitor(id, node.Tags, at))
	}

	wayIDs := make([]int64, 0, len(result.Ways))
	for id := range result.Ways {
		wayIDs = append(wayIDs, id)
	}
	slices.Sort(wayIDs)

	for _, id := range wayIDs {
		way := result.Ways[id]
		if len(way.Nodes) == 0 {
			continue
		}

		var lat, lon float64
		for _, node := range way.Nodes {
			lat += node.Lat
			lon += node.Lon
		}
		count := float64(len(way.Nodes))
		at := entity.Coordinate{Lat: lat / count, Lon: lon / count}

		if !bound.Contains(at.Point()) {
			continue
		}

		competitors = append(competitors, newCompetitor(id, way.Tags, at))
	}

	return competitors
}

func newCompetitor(id int64, tags map[string]string, at entity.Coordinate) entity.Competitor {
	name := tags["name"]
	if name == "" {
		name = unnamedVenue
	}

	return entity.Competitor{
		ID:         id,
		Name:       name,
		Coordinate: at,
		Type:       competitorType,
	}
}
