package wowhead

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/meur/bisforge/internal/models"
)

// enchantSlots are the first-cell labels that hold enchants. Consumables and
// gems share the same table layout and are left out.
var enchantSlots = map[string]bool{
	"Weapon":           true,
	"Main Hand":        true,
	"Off Hand":         true,
	"Cloak":            true,
	"Chest":            true,
	"Bracers":          true,
	"Wrists":           true,
	"Legs":             true,
	"Boots":            true,
	"Hands":            true,
	"Ring":             true,
	"Ring - Regular":   true,
	"Ring - Cursed":    true,
	"Shattering Blade": true,
	"Two-Hand":         true,
	"All other builds": true,
}

var (
	lineBreakPattern = regexp.MustCompile(`(?i)<br\s*/?>`)
	spellRefPattern  = regexp.MustCompile(`spell[=/](\d{5,7})`)
	itemRefPattern   = regexp.MustCompile(`item[=/](\d{5,7})`)

	// contextPattern captures "(Deathbringer ST)" trailing the option link
	contextPattern = regexp.MustCompile(`(?s)</a>\s*\((.*?)\)\s*$`)
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
)

// IsEnchantSlot reports whether a first-cell label is an enchantable slot
func IsEnchantSlot(label string) bool {
	return enchantSlots[label]
}

// EnchantExtraction is the outcome of parsing one enchant guide page
type EnchantExtraction struct {
	Groups []models.EnchantSlotGroup
	Tables int
	Reason models.Reason
}

// ParseEnchants collects enchant options from every HTML table of an
// enchant guide. Each accepted row becomes its own group, so a slot listed in
// two tables appears twice in table order.
func ParseEnchants(page string) EnchantExtraction {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return EnchantExtraction{Reason: models.ReasonNoTables}
	}

	ex := EnchantExtraction{Tables: doc.Find("table").Length()}
	if ex.Tables == 0 {
		ex.Reason = models.ReasonNoTables
		return ex
	}

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		if isHeaderRow(row) {
			return
		}
		cells := row.ChildrenFiltered("td")
		if cells.Length() < 2 {
			return
		}

		slot := strings.TrimSpace(cells.First().Text())
		if slot == "" || !IsEnchantSlot(slot) {
			return
		}

		optionsHTML, err := cells.Eq(1).Html()
		if err != nil {
			return
		}
		options := parseEnchantOptions(optionsHTML)
		if len(options) == 0 {
			return
		}
		ex.Groups = append(ex.Groups, models.EnchantSlotGroup{Slot: slot, Options: options})
	})

	if len(ex.Groups) == 0 {
		ex.Reason = models.ReasonNoRows
	} else {
		ex.Reason = models.ReasonOK
	}
	return ex
}

// isHeaderRow spots column headings: bold "Slot", "Build", "Runeforge" or
// anything starting with "Best".
func isHeaderRow(row *goquery.Selection) bool {
	header := false
	row.Find("b").EachWithBreak(func(_ int, b *goquery.Selection) bool {
		text := strings.TrimSpace(b.Text())
		switch {
		case text == "Slot", text == "Build", text == "Runeforge", strings.HasPrefix(text, "Best"):
			header = true
			return false
		}
		return true
	})
	return header
}

// parseEnchantOptions splits an options cell on line breaks. A fragment
// without a spell or item reference is dropped.
func parseEnchantOptions(cell string) []models.EnchantOption {
	var options []models.EnchantOption
	for _, fragment := range lineBreakPattern.Split(cell, -1) {
		id := enchantID(fragment)
		if id == 0 {
			continue
		}
		options = append(options, models.EnchantOption{ID: id, Context: enchantContext(fragment)})
	}
	return options
}

// enchantID prefers a spell reference over an item reference
func enchantID(fragment string) int {
	m := spellRefPattern.FindStringSubmatch(fragment)
	if m == nil {
		m = itemRefPattern.FindStringSubmatch(fragment)
	}
	if m == nil {
		return 0
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return id
}

func enchantContext(fragment string) string {
	m := contextPattern.FindStringSubmatch(fragment)
	if m == nil {
		return ""
	}
	text := tagPattern.ReplaceAllString(m[1], "")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}
