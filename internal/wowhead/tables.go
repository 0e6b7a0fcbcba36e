package wowhead

import (
	"regexp"
	"strings"
)

// TableVariant names one of the gear tables a guide may publish
type TableVariant string

const (
	VariantOverall      TableVariant = "overall"
	VariantSanlayn      TableVariant = "sanlayn"
	VariantDeathbringer TableVariant = "deathbringer"
	VariantRaid         TableVariant = "raid"
	VariantMythicPlus   TableVariant = "mythic-plus"
)

// tableIndex is the position of each variant's [table] block in the guide
// body. It mirrors how guide authors order their tables and has to follow
// the site if that order changes.
var tableIndex = map[TableVariant]int{
	VariantOverall:      0,
	VariantSanlayn:      0,
	VariantDeathbringer: 1,
	VariantRaid:         2,
	VariantMythicPlus:   3,
}

// variantFragments maps URL fragments to variants, first match wins.
var variantFragments = []struct {
	fragment string
	variant  TableVariant
}{
	{"#bis-items-deathbringer", VariantDeathbringer},
	{"#bis-items-sanlayn", VariantSanlayn},
	{"#bis-items-overall", VariantOverall},
	{"#bis-items-raid", VariantRaid},
	{"#bis-items-mythic-plus", VariantMythicPlus},
	{"#bis-items-mythic+", VariantMythicPlus},
}

// VariantFromURL picks the table variant requested by a guide URL. URLs
// without a known fragment select the overall table.
func VariantFromURL(rawURL string) TableVariant {
	lower := strings.ToLower(rawURL)
	for _, vf := range variantFragments {
		if strings.Contains(lower, vf.fragment) {
			return vf.variant
		}
	}
	return VariantOverall
}

// Index returns the zero-based table position for the variant
func (v TableVariant) Index() int {
	return tableIndex[v]
}

var tablePattern = regexp.MustCompile(`(?s)\[table[^\]]*\](.*?)\[/table\]`)

// SplitTables returns the inner content of every [table] block in order
func SplitTables(payload string) []string {
	matches := tablePattern.FindAllStringSubmatch(payload, -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables
}

// TableSelection is the block chosen for row parsing
type TableSelection struct {
	Block string
	Index int // -1 when Block is the whole payload
	Count int // number of [table] blocks in the payload
}

// SelectTable returns the block at index. An out of range index falls back to
// the first block, and a payload without blocks is returned whole.
func SelectTable(payload string, index int) TableSelection {
	tables := SplitTables(payload)
	switch {
	case len(tables) == 0:
		return TableSelection{Block: payload, Index: -1}
	case index >= 0 && index < len(tables):
		return TableSelection{Block: tables[index], Index: index, Count: len(tables)}
	default:
		return TableSelection{Block: tables[0], Index: 0, Count: len(tables)}
	}
}
