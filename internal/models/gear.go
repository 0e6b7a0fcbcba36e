package models

// GearEntry is a recommended item for one canonical equipment slot
type GearEntry struct {
	Slot   string `json:"slot"`
	ItemID int    `json:"id"`
}

// EnchantOption is one recommended enchant for a slot. Context is a short
// qualifier such as a hero talent or "ST"/"AoE" and may be empty.
type EnchantOption struct {
	ID      int    `json:"id"`
	Context string `json:"context"`
}

// EnchantSlotGroup holds the ordered enchant options found in one table row
type EnchantSlotGroup struct {
	Slot    string          `json:"slot"`
	Options []EnchantOption `json:"enchants"`
}

// Reason is a diagnostic code explaining the outcome of one extraction half
type Reason string

const (
	ReasonOK            Reason = "ok"
	ReasonMarkupMissing Reason = "markup_missing"
	ReasonNoTables      Reason = "no_tables"
	ReasonNoRows        Reason = "no_rows"
	ReasonFetchFailed   Reason = "fetch_failed"
	ReasonNoEnchantURL  Reason = "no_enchant_url"
)
