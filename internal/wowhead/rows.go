package wowhead

import (
	"regexp"
	"strconv"
)

// gearRowPattern matches a label cell followed by a second cell,
// [td]Label[/td][td]...[/td]. The label may be bold and holds letters,
// digits, spaces and parentheses ("Ring 1", "Trinket (alt)"). Rows are not
// anchored on [tr] since guides omit it.
var gearRowPattern = regexp.MustCompile(`(?s)\[td\](?:\[b\])?([ A-Za-z\d\s()]+?)(?:\[/b\])?\[/td\]\[td\](.*?)\[/td\]`)

// gearItemPattern finds the item in the second cell, usually wrapped in
// [color] or followed by bonus ids: [item=212345 bonus=...]
var gearItemPattern = regexp.MustCompile(`\[item=(\d+)`)

// GearRow is a slot label paired with an item id as written in the guide
type GearRow struct {
	Label  string
	ItemID int
}

// ParseGearRows extracts every matching row of a table block in order.
// Rows whose second cell holds no item, such as column headings, are skipped.
func ParseGearRows(block string) []GearRow {
	var rows []GearRow
	for _, m := range gearRowPattern.FindAllStringSubmatch(block, -1) {
		item := gearItemPattern.FindStringSubmatch(m[2])
		if item == nil {
			continue
		}
		id, err := strconv.Atoi(item[1])
		if err != nil || id <= 0 {
			continue
		}
		rows = append(rows, GearRow{Label: m[1], ItemID: id})
	}
	return rows
}
