package events

import (
	"context"
	"log/slog"
	"time"

	"nomnom/internal/domain/entity"
	"nomnom/internal/domain/repository"
	"nomnom/internal/domain/service"
)

const dateLayout = "2006-01-02"

type dayFilter int

const (
	everyDay dayFilter = iota
	weekdaysOnly
	weekendsOnly
)

// listing is a recurring event; Tomorrow shifts its date one day ahead.
type listing struct {
	event    entity.Event
	days     dayFilter
	tomorrow bool
}

func searchURL(query string) string {
	return "https://www.google.com/search?q=" + query
}

func evt(id, name, description string, lat, lon float64, kind string, radius float64, boost int, at, query string) entity.Event {
	return entity.Event{
		ID:           id,
		Name:         name,
		Description:  description,
		Coordinate:   entity.Coordinate{Lat: lat, Lon: lon},
		Type:         kind,
		ImpactRadius: radius,
		TrafficBoost: boost,
		Time:         at,
		URL:          searchURL(query),
	}
}

//nolint:gochecknoglobals
var curatedListings = map[string][]listing{
	"copenhagen": {
		{event: evt("evt_001", "Tivoli Gardens Summer Season", "Open air concerts and evening illumination",
			55.6737, 12.5681, "concert", 800, 30, "18:00", "Tivoli+Gardens+Summer+Season+Copenhagen")},
		{event: evt("evt_002", "Reffen Street Food Market", "Busy street food area with live DJ",
			55.6938, 12.6082, "food", 500, 25, "12:00", "Reffen+Street+Food+Market+Copenhagen")},
		{event: evt("evt_small_01", "Morning Yoga in King's Garden", "Community yoga gathering. Coffee needed after!",
			55.6856, 12.5787, "gathering", 200, 15, "08:00", "Morning+Yoga+King's+Garden+Copenhagen")},
		{event: evt("evt_small_02", "Langelinie Runners Meetup", "Large running group finishing their route.",
			55.6919, 12.5975, "gathering", 150, 20, "09:00", "Langelinie+Runners+Meetup+Copenhagen")},
		{event: evt("evt_small_03", "Tech Startup Open House", "Networking event in Nørrebro.",
			55.6897, 12.5531, "conference", 100, 15, "14:00", "Tech+Startup+Open+House+Norrebro+Copenhagen"), days: weekdaysOnly},
		{event: evt("evt_small_04", "University Pop-up Lecture", "Outdoor student gathering.",
			55.6794, 12.5726, "gathering", 150, 10, "13:00", "University+Pop-up+Lecture+Copenhagen"), days: weekdaysOnly},
		{event: evt("evt_small_05", "Vesterbro Flea Market", "Local vintage market, high foot traffic.",
			55.6682, 12.5510, "market", 300, 25, "10:00", "Vesterbro+Flea+Market+Copenhagen"), days: weekendsOnly},
		{event: evt("evt_small_06", "Islands Brygge Harbor Fair", "Small stalls and music by the water.",
			55.6651, 12.5771, "market", 250, 20, "11:00", "Islands+Brygge+Harbor+Fair+Copenhagen"), days: weekendsOnly},
		{event: evt("evt_small_07", "Outdoor Cinema: Zulu Sommerbio", "Free movie screening in the park.",
			55.6981, 12.5631, "cinema", 400, 35, "19:00", "Zulu+Sommerbio+Copenhagen")},
		{event: evt("evt_small_08", "Canal Tour Grand Departure", "Large tourist group gathering.",
			55.6798, 12.5914, "tourist", 100, 25, "15:00", "Canal+Tour+Grand+Departure+Copenhagen")},
		{event: evt("evt_003", "Royal Arena Concert", "Large international music event",
			55.6253, 12.5736, "concert", 1000, 40, "20:00", "Royal+Arena+Concert+Copenhagen"), tomorrow: true},
	},
}

// CuratedProvider serves a hand-maintained daily event list per city,
// dated in the city's local calendar.
type CuratedProvider struct {
	catalog repository.CatalogRepository
	now     func() time.Time
	logger  *slog.Logger
}

// NewCuratedProvider creates the EventProvider.
func NewCuratedProvider(catalog repository.CatalogRepository, logger *slog.Logger) service.EventProvider {
	return &CuratedProvider{
		catalog: catalog,
		now:     time.Now,
		logger:  logger.With(slog.String("provider", "events")),
	}
}

// ActiveEvents lists today's events plus announced next-day events. Cities
// without a curated list get an empty slice.
func (p *CuratedProvider) ActiveEvents(_ context.Context, cityID string) ([]entity.Event, error) {
	loc := time.UTC
	if city, ok := p.catalog.City(cityID); ok {
		loc = city.Location()
	}

	today := p.now().In(loc)
	tomorrow := today.AddDate(0, 0, 1)
	weekend := today.Weekday() == time.Saturday || today.Weekday() == time.Sunday

	listings := curatedListings[cityID]
	events := make([]entity.Event, 0, len(listings))

	for _, l := range listings {
		switch {
		case l.days == weekdaysOnly && weekend:
			continue
		case l.days == weekendsOnly && !weekend:
			continue
		}

		e := l.event
		e.Date = today.Format(dateLayout)
		if l.tomorrow {
			e.Date = tomorrow.Format(dateLayout)
		}
		events = append(events, e)
	}

	p.logger.Debug("Events listed", slog.String("city_id", cityID), slog.Int("count", len(events)))

	return events, nil
}
