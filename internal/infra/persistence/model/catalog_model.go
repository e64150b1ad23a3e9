package model

import "time"

// CityModel is the GORM-specific struct for the 'cities' table.
type CityModel struct {
	ID          string  `gorm:"type:varchar(64);primary_key"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Latitude    float64 `gorm:"type:decimal(10,8);not null"`
	Longitude   float64 `gorm:"type:decimal(11,8);not null"`
	South       float64 `gorm:"type:decimal(10,8);not null"`
	West        float64 `gorm:"type:decimal(11,8);not null"`
	North       float64 `gorm:"type:decimal(10,8);not null"`
	East        float64 `gorm:"type:decimal(11,8);not null"`
	DefaultZoom int     `gorm:"not null;default:13"`
	Timezone    string  `gorm:"type:varchar(64);not null;default:'UTC'"`
	Position    int     `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}

// PointOfInterestModel is the GORM-specific struct for the 'points_of_interest' table.
type PointOfInterestModel struct {
	ID        int64   `gorm:"primary_key;autoIncrement"`
	CityID    string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_poi_city_name"`
	Name      string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_poi_city_name"`
	Latitude  float64 `gorm:"type:decimal(10,8);not null"`
	Longitude float64 `gorm:"type:decimal(11,8);not null"`
	Category  string  `gorm:"type:varchar(32);not null"`
	Position  int     `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PointOfInterestModel) TableName() string {
	return "points_of_interest"
}

// PermitModel is the GORM-specific struct for the 'permits' table.
type PermitModel struct {
	CityID    string `gorm:"type:varchar(64);primary_key"`
	PointName string `gorm:"type:varchar(255);primary_key"`
	Tier      string `gorm:"type:varchar(16);not null"`
}

func (PermitModel) TableName() string {
	return "permits"
}

// PermitGuideModel stores a city's permit guide as a JSON document.
type PermitGuideModel struct {
	CityID    string `gorm:"type:varchar(64);primary_key"`
	Document  string `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (PermitGuideModel) TableName() string {
	return "permit_guides"
}

// ZoneModel is the GORM-specific struct for the 'zones' table.
type ZoneModel struct {
	ID        int64             `gorm:"primary_key;autoIncrement"`
	CityID    string            `gorm:"type:varchar(64);not null;index"`
	Name      string            `gorm:"type:varchar(255);not null"`
	Latitude  float64           `gorm:"type:decimal(10,8);not null"`
	Longitude float64           `gorm:"type:decimal(11,8);not null"`
	Radius    float64           `gorm:"not null"`
	Position  int               `gorm:"not null;default:0"`
	Members   []ZoneMemberModel `gorm:"foreignKey:ZoneID"`
}

func (ZoneModel) TableName() string {
	return "zones"
}

// ZoneMemberModel links a zone to a point name.
type ZoneMemberModel struct {
	ZoneID    int64  `gorm:"primary_key"`
	PointName string `gorm:"type:varchar(255);primary_key"`
	Position  int    `gorm:"not null;default:0"`
}

func (ZoneMemberModel) TableName() string {
	return "zone_members"
}
