package weather

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"nomnom/config"
	"nomnom/internal/domain/entity"
	"nomnom/internal/domain/scoring"
	"nomnom/internal/domain/service"

	"github.com/pkg/errors"
)

const currentFields = "temperature_2m,wind_speed_10m,precipitation"

type openMeteoResponse struct {
	Current struct {
		Time          string   `json:"time"`
		Temperature   *float64 `json:"temperature_2m"`
		WindSpeed     *float64 `json:"wind_speed_10m"`
		Precipitation *float64 `json:"precipitation"`
	} `json:"current"`
}

type openMeteoProvider struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOpenMeteoProvider creates a WeatherProvider backed by the Open-Meteo forecast API.
func NewOpenMeteoProvider(cfg *config.Config, logger *slog.Logger) service.WeatherProvider {
	return &openMeteoProvider{
		baseURL:    cfg.Weather.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Weather.Timeout},
		logger:     logger.With(slog.String("provider", "open-meteo")),
	}
}

// CurrentWeather fetches the current conditions at the city center.
func (p *openMeteoProvider) CurrentWeather(ctx context.Context, city entity.City) (*entity.Weather, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(city.Coords.Lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(city.Coords.Lon, 'f', -1, 64))
	query.Set("current", currentFields)
	query.Set("timezone", city.Location().String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "open-meteo request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("open-meteo returned status %d", resp.StatusCode)
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode open-meteo response")
	}

	current := payload.Current
	p.logger.Debug("Weather fetched", slog.String("city_id", city.ID), slog.String("time", current.Time))

	return &entity.Weather{
		Temperature:   current.Temperature,
		WindSpeed:     current.WindSpeed,
		Precipitation: current.Precipitation,
		Timestamp:     current.Time,
		IsSuitable:    scoring.IsSuitableWeather(current.Temperature, current.WindSpeed, current.Precipitation),
	}, nil
}
