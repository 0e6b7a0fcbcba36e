package models

// GearResult is the response body for a gear-only scrape
type GearResult struct {
	Success   bool        `json:"success"`
	Count     int         `json:"count"`
	Items     []GearEntry `json:"items"`
	SourceURL string      `json:"source_url"`
	Reason    Reason      `json:"reason"`
}

// ScrapeResult is the combined gear and enchant result of a full scrape
type ScrapeResult struct {
	Success       bool               `json:"success"`
	GearCount     int                `json:"gear_count"`
	EnchantCount  int                `json:"enchant_count"`
	GearItems     []GearEntry        `json:"gear_items"`
	Enchants      []EnchantSlotGroup `json:"enchants"`
	ImportString  string             `json:"import_string"`
	GearURL       string             `json:"gear_url"`
	EnchantURL    *string            `json:"enchant_url"` // nil when no enchant guide applies
	Role          Role               `json:"role,omitempty"`
	GearReason    Reason             `json:"gear_reason"`
	EnchantReason Reason             `json:"enchant_reason"`
}
