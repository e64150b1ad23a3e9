package catalog

import "nomnom/internal/domain/entity"

func copenhagenPermits() map[string]entity.PermitTier {
	tiers := make(map[string]entity.PermitTier)
	assign := func(tier entity.PermitTier, names ...string) {
		for _, n := range names {
			tiers[n] = tier
		}
	}

	assign(entity.PermitTierRed,
		"Nyhavn", "Strøget", "Kongens Nytorv", "The Little Mermaid", "Nørreport Station",
		"Amalienborg Palace", "Christiansborg Palace", "Tivoli Gardens", "Kultorvet",
		"Islands Brygge Havnebadet",
	)
	assign(entity.PermitTierYellow,
		"Torvehallerne Market", "The Round Tower", "Rosenborg Castle", "Østerport Station",
		"Copenhagen Central Station", "Christianshavn Metro", "Magasin du Nord",
		"Fisketorvet Shopping Center", "The King's Garden", "Kastellet",
		"Langelinie Promenade", "Reffen Street Food",
	)
	assign(entity.PermitTierGreen,
		"Frederiksberg Gardens", "Fælled Park", "Amager Strandpark", "Nørrebro", "Vesterbro",
		"Østerbro", "Frederiksberg", "Christianshavn", "Islands Brygge",
		"University of Copenhagen", "IT University", "National Gallery",
		"Frederiksberg Centret", "Forum Station", "Superkilen Park", "Assistens Cemetery",
		"Nørrebro Park", "Carlsberg City", "Trianglen", "Langebro Bridge", "Amager Strand Metro",
	)

	return tiers
}

var permitStatuses = map[entity.PermitTier]entity.PermitStatus{
	entity.PermitTierGreen: {
		Status:      entity.PermitTierGreen,
		Label:       "Easy Permit",
		Description: "Standard permit applies, generally allowed",
		Color:       "#22c55e",
	},
	entity.PermitTierYellow: {
		Status:      entity.PermitTierYellow,
		Label:       "Moderate Difficulty",
		Description: "May require additional approvals or restrictions apply",
		Color:       "#eab308",
	},
	entity.PermitTierRed: {
		Status:      entity.PermitTierRed,
		Label:       "Special Permit Required",
		Description: "Restricted zone - special permit needed (granted 1-2x/year)",
		Color:       "#ef4444",
	},
}

// StatusForTier expands a tier into its display annotation. Unknown tiers are yellow.
func StatusForTier(tier entity.PermitTier) entity.PermitStatus {
	if status, ok := permitStatuses[tier]; ok {
		return status
	}

	return permitStatuses[entity.PermitTierYellow]
}

func copenhagenPermitGuide() entity.PermitGuide {
	return entity.PermitGuide{
		Title: "Copenhagen Coffee Cart Permit Guide",
		Sections: []entity.PermitSection{
			{
				Heading: "Required Permits",
				Items: []entity.PermitItem{
					{Title: "City of Copenhagen Permit", Details: []string{
						"FREE until 2028 for mobile street vending",
						"Valid for 1 calendar year (renew annually)",
						"Applications open October 1st for next year",
						"Processing time: ~4 weeks",
						"Contact: Byliv@kk.dk",
					}},
					{Title: "Danish Food Authority Registration", Details: []string{
						"Required for all food/beverage sales",
						"Register as 'mobile business'",
						"Exception: <30 days/year operation",
						"Website: foedevarestyrelsen.dk",
					}},
					{Title: "Business Registration", Details: []string{
						"CVR number (Central Business Register)",
						"VAT registration if earnings >50,000 DKK/year",
						"Register at virk.dk",
					}},
				},
			},
			{
				Heading: "Cart Size Requirements",
				Items: []entity.PermitItem{
					{Title: "Small Carts (<2.5 m²)", Details: []string{
						"Coffee scooters, bikes, Ape Cars",
						"Allowed: Public squares, wide pavements (>2m)",
						"Allowed: Pedestrian areas, most parks",
						"Best for mobility and flexibility",
					}},
					{Title: "Large Carts (>2.5 m²)", Details: []string{
						"Food trucks, vans",
						"Restricted to parking lots only",
						"Special permit needed for city squares",
						"Not allowed in Latin Quarter (Inner City)",
					}},
				},
			},
			{
				Heading: "Operating Rules",
				Items: []entity.PermitItem{
					{Title: "Must Do", Details: []string{
						"Display permit visibly at front of cart",
						"Follow parking regulations (pay fees)",
						"Keep area clean (responsible for customer trash)",
						"Post CVR/VAT number on cart",
						"Vacate at night (no vending 12 AM - 5 AM)",
					}},
					{Title: "Cannot Do", Details: []string{
						"Sell alcohol (>2.8%), tobacco, soft drinks, candy",
						"Set up loose equipment (chairs, signs on ground)",
						"Play loud music or hawk/shout",
						"Block traffic, wheelchair access, or storefronts",
						"Use municipal waste bins for business trash",
					}},
				},
			},
			{
				Heading: "Food Safety Requirements",
				Items: []entity.PermitItem{
					{Title: "Essential Equipment", Details: []string{
						"Toilet access if operating >2 hours",
						"Hand washing facilities (hot/cold water)",
						"Sneeze screen for unpackaged food (40-50 cm)",
						"Fire extinguisher + blanket (if using gas)",
						"Food storage at correct temperatures",
					}},
				},
			},
			{
				Heading: "Restricted Zones",
				Items: []entity.PermitItem{
					{Title: "Special Permit Areas (RED)", Details: []string{
						"Nyhavn, Strøget, Kongens Nytorv",
						"Nørreport Station, Little Mermaid area",
						"Islands Brygge Harbour Park",
						"Tivoli Gardens (private property)",
						"Special permits granted 1-2 times/year only",
					}},
				},
			},
		},
		Disclaimer:     "NomNom Lite is not responsible for the accuracy of this information. Regulations may change.",
		ApplicationURL: "https://erhverv.kk.dk/tilladelser/udendorsservering-og-gadesalg",
		GeneralRules: []string{
			"Display permit visibly at front of cart",
			"Follow parking regulations (pay fees)",
			"Keep area clean (responsible for customer trash)",
			"Post CVR/VAT number on cart",
			"Vacate at night (no vending 12 AM - 5 AM)",
			"No alcohol (>2.8%), tobacco, soft drinks, candy",
			"No loose equipment (chairs, signs on ground)",
			"Do not block traffic, wheelchair access, or storefronts",
		},
		Zones: map[entity.PermitTier]entity.PermitZoneTip{
			entity.PermitTierGreen: {
				Locations:    []string{"Frederiksberg Gardens", "Fælled Park", "Amager Strandpark", "Nørrebro", "Vesterbro"},
				Requirements: "Standard mobile permit. Allowed in most public parks and wide pavements.",
				Cost:         "Free (until 2028)",
			},
			entity.PermitTierYellow: {
				Locations:    []string{"Torvehallerne", "Round Tower", "Central Station", "Shopping Areas"},
				Requirements: "Moderate restrictions. May require specific spot allocation or market fee.",
				Cost:         "Free (public) / Market fees apply (private)",
			},
			entity.PermitTierRed: {
				Locations:    []string{"Nyhavn", "Strøget", "Tivoli", "Little Mermaid", "Inner City Squares"},
				Requirements: "Highly restricted. Special event permits only. No permanent mobile vending.",
				Cost:         "Special Event Fees apply",
			},
		},
	}
}
