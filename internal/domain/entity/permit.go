package entity

// PermitTier is the advisory regulatory difficulty of vending at a location.
type PermitTier string

const (
	PermitTierGreen  PermitTier = "green"
	PermitTierYellow PermitTier = "yellow"
	PermitTierRed    PermitTier = "red"
)

// PermitStatus is the annotation attached to a point.
type PermitStatus struct {
	Status      PermitTier `json:"status"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
}

// PermitGuide is the advisory permit text for a city.
type PermitGuide struct {
	Title          string                       `json:"title"`
	Sections       []PermitSection              `json:"sections"`
	Disclaimer     string                       `json:"disclaimer"`
	ApplicationURL string                       `json:"application_url"`
	GeneralRules   []string                     `json:"general_rules"`
	Zones          map[PermitTier]PermitZoneTip `json:"zones"`
}

type PermitSection struct {
	Heading string       `json:"heading"`
	Items   []PermitItem `json:"items"`
}

type PermitItem struct {
	Title   string   `json:"title"`
	Details []string `json:"details"`
}

type PermitZoneTip struct {
	Locations    []string `json:"locations"`
	Requirements string   `json:"requirements"`
	Cost         string   `json:"cost"`
}
