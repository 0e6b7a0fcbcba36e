package wowhead

import "github.com/meur/bisforge/internal/models"

// GearExtraction is the outcome of running the gear pipeline over one page
type GearExtraction struct {
	Entries     []models.GearEntry
	Variant     TableVariant
	Table       TableSelection
	MarkupFound bool
	RowsMatched int
	Reason      models.Reason
}

// ExtractGear runs the gear pipeline over a fetched guide page. guideURL is
// the URL the user asked for; its fragment selects the table.
func ExtractGear(page, guideURL string) GearExtraction {
	markup := UnescapeMarkup(page)
	variant := VariantFromURL(guideURL)
	table := SelectTable(markup.Payload, variant.Index())
	rows := ParseGearRows(table.Block)

	ex := GearExtraction{
		Entries:     NormalizeRows(rows),
		Variant:     variant,
		Table:       table,
		MarkupFound: markup.Found,
		RowsMatched: len(rows),
	}

	switch {
	case len(ex.Entries) > 0:
		ex.Reason = models.ReasonOK
	case !markup.Found:
		ex.Reason = models.ReasonMarkupMissing
	case table.Count == 0:
		ex.Reason = models.ReasonNoTables
	default:
		ex.Reason = models.ReasonNoRows
	}
	return ex
}
