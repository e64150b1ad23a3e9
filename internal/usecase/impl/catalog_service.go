package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "nomnom/internal/delivery/context"
	"nomnom/internal/domain/entity"
	domainerrors "nomnom/internal/domain/errors"
	"nomnom/internal/domain/repository"
	"nomnom/internal/domain/scoring"
	"nomnom/internal/domain/service"
	"nomnom/internal/errors"
	"nomnom/internal/usecase"
)

type catalogService struct {
	catalog   repository.CatalogRepository
	qrService service.QRCodeService
	logger    *slog.Logger
	now       func() time.Time
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalog repository.CatalogRepository, qrService service.QRCodeService, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		catalog:   catalog,
		qrService: qrService,
		logger:    logger,
		now:       time.Now,
	}
}

// Cities returns every supported city keyed by id
func (s *catalogService) Cities(_ context.Context) map[string]entity.City {
	cities := s.catalog.Cities()
	out := make(map[string]entity.City, len(cities))

	for _, city := range cities {
		out[city.ID] = city
	}

	return out
}

// Hotspots returns the city's points with their estimated traffic right now
func (s *catalogService) Hotspots(_ context.Context, cityID string, simulatedHour *int) ([]usecase.Hotspot, error) {
	city, err := resolveCity(s.catalog, cityID)
	if err != nil {
		return nil, err
	}

	hour, day := scoring.ResolveClock(s.now().In(city.Location()), simulatedHour)
	points := s.catalog.PointsOfInterest(city.ID)
	hotspots := make([]usecase.Hotspot, 0, len(points))

	for _, p := range points {
		hotspots = append(hotspots, usecase.Hotspot{
			PointOfInterest: p,
			TrafficLevel:    scoring.EstimateTraffic(p.Category, hour, day),
		})
	}

	return hotspots, nil
}

// HotspotsWithPermits annotates each point with its permit tier
func (s *catalogService) HotspotsWithPermits(_ context.Context, cityID string) ([]usecase.PermitHotspot, error) {
	city, err := resolveCity(s.catalog, cityID)
	if err != nil {
		return nil, err
	}

	points := s.catalog.PointsOfInterest(city.ID)
	hotspots := make([]usecase.PermitHotspot, 0, len(points))

	for _, p := range points {
		permit := s.catalog.PermitStatus(p.Name, city.ID)
		hotspots = append(hotspots, usecase.PermitHotspot{
			PointOfInterest: p,
			PermitStatus:    permit.Status,
			PermitLabel:     permit.Label,
			PermitColor:     permit.Color,
		})
	}

	return hotspots, nil
}

// PermitGuide returns the advisory permit text; unknown cities get the default city's guide
func (s *catalogService) PermitGuide(_ context.Context, cityID string) entity.PermitGuide {
	return s.catalog.PermitGuide(cityID)
}

// HotspotQRCode renders a share QR code for a named hotspot
func (s *catalogService) HotspotQRCode(ctx context.Context, cityID, name string) ([]byte, error) {
	city, err := resolveCity(s.catalog, cityID)
	if err != nil {
		return nil, err
	}

	point, ok := s.catalog.Point(city.ID, name)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrPlaceNotFound, "hotspot %q in %s", name, city.ID)
	}

	png, err := s.qrService.GenerateLocationQR(point.Name, point.Coordinate)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("QR code generation failed",
			slog.String("hotspot", name),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrQRCodeGenerationFailed.WrapMessage(err.Error())
	}

	return png, nil
}
