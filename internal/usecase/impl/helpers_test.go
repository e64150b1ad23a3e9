package impl

import (
	"io"
	"log/slog"
	"time"

	"nomnom/internal/domain/entity"
)

// 10:00 UTC is noon on a Monday in Copenhagen (CEST)
var mondayNoonUTC = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

var testCopenhagen = entity.City{
	ID:       "copenhagen",
	Name:     "Copenhagen",
	Coords:   entity.Coordinate{Lat: 55.6761, Lon: 12.5683},
	Timezone: "Europe/Copenhagen",
}

var (
	kingsGarden = entity.PointOfInterest{
		Name:       "King's Garden",
		Coordinate: entity.Coordinate{Lat: 55.6850, Lon: 12.5800},
		Category:   entity.CategoryPark,
	}
	nyhavn = entity.PointOfInterest{
		Name:       "Nyhavn",
		Coordinate: entity.Coordinate{Lat: 55.6798, Lon: 12.5912},
		Category:   entity.CategoryTourist,
	}
	norreport = entity.PointOfInterest{
		Name:       "Nørreport Station",
		Coordinate: entity.Coordinate{Lat: 55.6833, Lon: 12.5713},
		Category:   entity.CategoryTransport,
	}
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func greenPermit() entity.PermitStatus {
	return entity.PermitStatus{Status: entity.PermitTierGreen, Label: "Easy Permit", Color: "#22c55e"}
}

func yellowPermit() entity.PermitStatus {
	return entity.PermitStatus{Status: entity.PermitTierYellow, Label: "Moderate Difficulty", Color: "#eab308"}
}
