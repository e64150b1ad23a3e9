package qrcode

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"nomnom/internal/domain/entity"
	"nomnom/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const geoScheme = "geo:"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeoURI formats a RFC 5870 geo URI with the place name as the q label.
func GeoURI(name string, at entity.Coordinate) string {
	uri := fmt.Sprintf("%s%s,%s", geoScheme,
		strconv.FormatFloat(at.Lat, 'f', 6, 64),
		strconv.FormatFloat(at.Lon, 'f', 6, 64),
	)
	if name == "" {
		return uri
	}

	return uri + "?" + url.Values{"q": []string{name}}.Encode()
}

// GenerateLocationQR generates a PNG QR code holding the location's geo URI
func (s *qrcodeService) GenerateLocationQR(name string, at entity.Coordinate) ([]byte, error) {
	qrCode, err := qrcode.New(GeoURI(name, at), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseLocationQR parses a scanned geo URI back into name and coordinate
func (s *qrcodeService) ParseLocationQR(data string) (string, entity.Coordinate, error) {
	if !strings.HasPrefix(data, geoScheme) {
		return "", entity.Coordinate{}, fmt.Errorf("invalid QR code payload: missing %s scheme", geoScheme)
	}

	rest := strings.TrimPrefix(data, geoScheme)
	coords, query, _ := strings.Cut(rest, "?")

	latText, lonText, ok := strings.Cut(coords, ",")
	if !ok {
		return "", entity.Coordinate{}, fmt.Errorf("invalid QR code coordinates: %q", coords)
	}

	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil || lat < -90 || lat > 90 {
		return "", entity.Coordinate{}, fmt.Errorf("failed to parse latitude %q", latText)
	}

	lon, err := strconv.ParseFloat(lonText, 64)
	if err != nil || lon < -180 || lon > 180 {
		return "", entity.Coordinate{}, fmt.Errorf("failed to parse longitude %q", lonText)
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		return "", entity.Coordinate{}, fmt.Errorf("failed to parse QR code query: %w", err)
	}

	return values.Get("q"), entity.Coordinate{Lat: lat, Lon: lon}, nil
}
