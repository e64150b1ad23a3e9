package busyness

import (
	"context"
	"log/slog"
	"time"

	"nomnom/config"
	"nomnom/internal/domain/entity"
	"nomnom/internal/domain/repository"
	"nomnom/internal/domain/service"
)

const estimatedNote = "Using estimated data - Popular Times not available"

// Provider reports live busyness from a headless-browser scrape, falling back to
// EstimateBusyness when the page has no reading or the scrape fails.
type Provider struct {
	scraper   pageScraper
	enabled   bool
	locations map[string]*time.Location
	now       func() time.Time
	logger    *slog.Logger
}

// NewProvider creates the BusynessProvider. City names are resolved to
// timezones through the catalog so estimates follow local time.
func NewProvider(cfg *config.Config, catalog repository.CatalogRepository, logger *slog.Logger) service.BusynessProvider {
	return newProvider(&chromeScraper{
		searchURL:    cfg.Busyness.SearchURL,
		pageLoadWait: cfg.Busyness.PageLoadWait,
		timeout:      cfg.Busyness.Timeout,
	}, cfg.Busyness.Enabled, catalog, time.Now, logger)
}

func newProvider(
	scraper pageScraper,
	enabled bool,
	catalog repository.CatalogRepository,
	now func() time.Time,
	logger *slog.Logger,
) *Provider {
	locations := make(map[string]*time.Location)
	for _, city := range catalog.Cities() {
		locations[city.Name] = city.Location()
	}

	return &Provider{
		scraper:   scraper,
		enabled:   enabled,
		locations: locations,
		now:       now,
		logger:    logger.With(slog.String("provider", "busyness")),
	}
}

func (p *Provider) localNow(cityName string) time.Time {
	now := p.now()
	if loc, ok := p.locations[cityName]; ok {
		return now.In(loc)
	}

	return now.UTC()
}

// LiveBusyness never fails; degraded readings carry DataAvailable=false and a note or error.
func (p *Provider) LiveBusyness(ctx context.Context, placeName, cityName string) (*entity.Busyness, error) {
	now := p.localNow(cityName)
	reading := &entity.Busyness{
		PlaceName: placeName,
		Timestamp: now,
	}

	if !p.enabled {
		reading.CurrentPopularity = EstimateBusyness(placeName, now)
		reading.Note = estimatedNote

		return reading, nil
	}

	content, err := p.scraper.PageText(ctx, placeName, cityName)
	if err != nil {
		p.logger.Warn("Busyness scrape failed, using estimate",
			slog.String("place", placeName),
			slog.String("city", cityName),
			slog.Any("error", err),
		)
		reading.CurrentPopularity = EstimateBusyness(placeName, now)
		reading.Error = err.Error()

		return reading, nil
	}

	if value, ok := parsePopularity(content); ok {
		reading.CurrentPopularity = value
		reading.DataAvailable = true

		return reading, nil
	}

	reading.CurrentPopularity = EstimateBusyness(placeName, now)
	reading.Note = estimatedNote

	return reading, nil
}
