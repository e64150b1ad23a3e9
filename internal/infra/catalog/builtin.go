package catalog

import (
	"context"

	"nomnom/internal/domain/entity"
	"nomnom/internal/domain/repository"
)

const (
	CityCopenhagen = "copenhagen"
	CityGhent      = "ghent"
)

// BuiltinSource serves the reference tables compiled into the binary.
type BuiltinSource struct{}

// NewBuiltinSource creates the compiled-in catalog source.
func NewBuiltinSource() *BuiltinSource {
	return &BuiltinSource{}
}

// LoadCatalog returns fresh copies of the compiled-in tables.
func (BuiltinSource) LoadCatalog(_ context.Context) (*repository.CatalogTables, error) {
	return builtinTables(), nil
}

func builtinTables() *repository.CatalogTables {
	return &repository.CatalogTables{
		Cities: []entity.City{
			{
				ID:          CityCopenhagen,
				Name:        "Copenhagen",
				Coords:      entity.Coordinate{Lat: 55.6761, Lon: 12.5683},
				BBox:        entity.BoundingBox{South: 55.60, West: 12.42, North: 55.75, East: 12.68},
				DefaultZoom: 13,
				Timezone:    "Europe/Copenhagen",
			},
			{
				ID:          CityGhent,
				Name:        "Ghent",
				Coords:      entity.Coordinate{Lat: 51.0543, Lon: 3.7174},
				BBox:        entity.BoundingBox{South: 51.01, West: 3.66, North: 51.09, East: 3.78},
				DefaultZoom: 14,
				Timezone:    "Europe/Brussels",
			},
		},
		Points: map[string][]entity.PointOfInterest{
			CityCopenhagen: append([]entity.PointOfInterest(nil), copenhagenPoints...),
			CityGhent:      append([]entity.PointOfInterest(nil), ghentPoints...),
		},
		Permits: map[string]map[string]entity.PermitTier{
			CityCopenhagen: copenhagenPermits(),
		},
		PermitGuides: map[string]entity.PermitGuide{
			CityCopenhagen: copenhagenPermitGuide(),
		},
		Zones: map[string][]entity.Zone{
			CityCopenhagen: copenhagenZones(),
		},
	}
}

func poi(name string, lat, lon float64, category entity.Category) entity.PointOfInterest {
	return entity.PointOfInterest{
		Name:       name,
		Coordinate: entity.Coordinate{Lat: lat, Lon: lon},
		Category:   category,
	}
}

var copenhagenPoints = []entity.PointOfInterest{
	poi("Nyhavn", 55.6798, 12.5914, entity.CategoryTourist),
	poi("Strøget", 55.6788, 12.5711, entity.CategoryTourist),
	poi("Tivoli Gardens", 55.6737, 12.5681, entity.CategoryTourist),
	poi("The Little Mermaid", 55.6929, 12.5994, entity.CategoryTourist),
	poi("Amalienborg Palace", 55.6840, 12.5930, entity.CategoryTourist),
	poi("Kongens Nytorv", 55.6803, 12.5858, entity.CategoryTourist),
	poi("Christiansborg Palace", 55.6761, 12.5801, entity.CategoryTourist),
	poi("The Round Tower", 55.6813, 12.5755, entity.CategoryTourist),
	poi("Rosenborg Castle", 55.6858, 12.5773, entity.CategoryTourist),
	poi("Kastellet", 55.6914, 12.5940, entity.CategoryTourist),
	poi("Nørreport Station", 55.6833, 12.5717, entity.CategoryTransport),
	poi("Copenhagen Central Station", 55.6726, 12.5643, entity.CategoryTransport),
	poi("Østerport Station", 55.6924, 12.5875, entity.CategoryTransport),
	poi("Forum Station", 55.6846, 12.5438, entity.CategoryTransport),
	poi("Christianshavn Metro", 55.6732, 12.5916, entity.CategoryTransport),
	poi("Fisketorvet Shopping Center", 55.6661, 12.5605, entity.CategoryShopping),
	poi("Magasin du Nord", 55.6796, 12.5863, entity.CategoryShopping),
	poi("Frederiksberg Centret", 55.6775, 12.5302, entity.CategoryShopping),
	poi("Torvehallerne Market", 55.6828, 12.5719, entity.CategoryShopping),
	poi("The King's Garden", 55.6856, 12.5787, entity.CategoryPark),
	poi("Frederiksberg Gardens", 55.6753, 12.5336, entity.CategoryPark),
	poi("Fælled Park", 55.6981, 12.5631, entity.CategoryPark),
	poi("Amager Strandpark", 55.6550, 12.6543, entity.CategoryPark),
	poi("Nørrebro", 55.6897, 12.5531, entity.CategoryNeighborhood),
	poi("Vesterbro", 55.6682, 12.5510, entity.CategoryNeighborhood),
	poi("Østerbro", 55.7042, 12.5770, entity.CategoryNeighborhood),
	poi("Frederiksberg", 55.6789, 12.5342, entity.CategoryNeighborhood),
	poi("Christianshavn", 55.6732, 12.5943, entity.CategoryNeighborhood),
	poi("Islands Brygge", 55.6651, 12.5771, entity.CategoryNeighborhood),
	poi("University of Copenhagen", 55.6794, 12.5726, entity.CategoryCultural),
	poi("IT University", 55.6596, 12.5908, entity.CategoryCultural),
	poi("National Gallery", 55.6889, 12.5783, entity.CategoryCultural),
	poi("Langelinie Promenade", 55.6919, 12.5975, entity.CategoryPark),
	poi("Islands Brygge Havnebadet", 55.6635, 12.5805, entity.CategoryPark),
	poi("Superkilen Park", 55.7006, 12.5419, entity.CategoryPark),
	poi("Assistens Cemetery", 55.6907, 12.5526, entity.CategoryPark),
	poi("Reffen Street Food", 55.6882, 12.6032, entity.CategoryShopping),
	poi("Carlsberg City", 55.6665, 12.5397, entity.CategoryNeighborhood),
	poi("Trianglen", 55.7007, 12.5762, entity.CategoryTransport),
	poi("Langebro Bridge", 55.6685, 12.5738, entity.CategoryNeighborhood),
	poi("Nørrebro Park", 55.6952, 12.5509, entity.CategoryPark),
	poi("Amager Strand Metro", 55.6578, 12.6181, entity.CategoryTransport),
}

var ghentPoints = []entity.PointOfInterest{
	poi("Graslei", 51.0536, 3.7207, entity.CategoryTourist),
	poi("Korenlei", 51.0539, 3.7202, entity.CategoryTourist),
	poi("Gravensteen", 51.0577, 3.7208, entity.CategoryTourist),
	poi("Saint Bavo's Cathedral", 51.0529, 3.7250, entity.CategoryTourist),
	poi("Belfry of Ghent", 51.0536, 3.7249, entity.CategoryTourist),
	poi("Saint Nicholas' Church", 51.0539, 3.7228, entity.CategoryTourist),
	poi("Vrijdagmarkt", 51.0563, 3.7256, entity.CategoryTourist),
	poi("Gent-Sint-Pieters Station", 51.0359, 3.7106, entity.CategoryTransport),
	poi("Gent-Dampoort Station", 51.0565, 3.7416, entity.CategoryTransport),
	poi("Korenmarkt", 51.0542, 3.7218, entity.CategoryTransport),
	poi("Veldstraat", 51.0519, 3.7214, entity.CategoryShopping),
	poi("Langemunt", 51.0556, 3.7236, entity.CategoryShopping),
	poi("Dok Noord", 51.0661, 3.7336, entity.CategoryShopping),
	poi("Citadelpark", 51.0372, 3.7233, entity.CategoryPark),
	poi("Blaarmeersen", 51.0461, 3.6853, entity.CategoryPark),
	poi("Muinkpark", 51.0436, 3.7308, entity.CategoryPark),
	poi("Keizerpark", 51.0428, 3.7436, entity.CategoryPark),
	poi("Patershol", 51.0583, 3.7231, entity.CategoryNeighborhood),
	poi("Ledeberg", 51.0383, 3.7450, entity.CategoryNeighborhood),
	poi("Ghent University (Rectoraat)", 51.0467, 3.7275, entity.CategoryCultural),
	poi("KASK & Conservatorium", 51.0422, 3.7189, entity.CategoryCultural),
	poi("STAM Ghent City Museum", 51.0425, 3.7172, entity.CategoryCultural),
}
