package catalog

import "nomnom/internal/domain/entity"

func zone(name string, lat, lon, radius float64, members ...string) entity.Zone {
	return entity.Zone{
		Name:    name,
		Center:  entity.Coordinate{Lat: lat, Lon: lon},
		Radius:  radius,
		Members: members,
	}
}

func copenhagenZones() []entity.Zone {
	return []entity.Zone{
		zone("City Center", 55.6761, 12.5683, 1000,
			"Nyhavn", "Strøget", "Tivoli Gardens", "Kongens Nytorv",
			"Christiansborg Palace", "The Round Tower", "Torvehallerne Market",
			"Magasin du Nord", "Copenhagen Central Station"),
		zone("Nørrebro District", 55.6897, 12.5531, 800,
			"Nørrebro", "Nørreport Station", "Fælled Park"),
		zone("Vesterbro District", 55.6682, 12.5510, 700,
			"Vesterbro", "Fisketorvet Shopping Center"),
		zone("Østerbro & Waterfront", 55.6950, 12.5870, 900,
			"Østerbro", "The Little Mermaid", "Kastellet", "Østerport Station"),
		zone("Frederiksberg Area", 55.6775, 12.5320, 750,
			"Frederiksberg", "Frederiksberg Centret", "Frederiksberg Gardens", "Forum Station"),
		zone("Islands & Amager", 55.6691, 12.5857, 850,
			"Christianshavn", "Islands Brygge", "Christianshavn Metro",
			"IT University", "Amager Strandpark"),
		zone("Cultural Quarter", 55.6850, 12.5780, 600,
			"University of Copenhagen", "Rosenborg Castle", "The King's Garden",
			"National Gallery", "Amalienborg Palace"),
	}
}
