package entity

// Category classifies a point of interest for traffic estimation.
type Category string

const (
	CategoryTourist      Category = "tourist"
	CategoryTransport    Category = "transport"
	CategoryShopping     Category = "shopping"
	CategoryPark         Category = "park"
	CategoryNeighborhood Category = "neighborhood"
	CategoryCultural     Category = "cultural"
)

// IsKnown reports whether the category is one of the fixed enumeration.
func (c Category) IsKnown() bool {
	switch c {
	case CategoryTourist, CategoryTransport, CategoryShopping,
		CategoryPark, CategoryNeighborhood, CategoryCultural:
		return true
	default:
		return false
	}
}

// PointOfInterest is a named candidate vending location (a "hotspot").
// Names are unique within a city.
type PointOfInterest struct {
	Name string `json:"name"`
	Coordinate
	Category Category `json:"type"`
}
