package service

import "nomnom/internal/domain/entity"

// QRCodeService encodes hotspot locations as scannable geo: URIs.
type QRCodeService interface {
	// GenerateLocationQR renders a PNG QR code pointing at the named location
	GenerateLocationQR(name string, at entity.Coordinate) ([]byte, error)

	// ParseLocationQR decodes the payload written by GenerateLocationQR
	ParseLocationQR(data string) (name string, at entity.Coordinate, err error)
}
