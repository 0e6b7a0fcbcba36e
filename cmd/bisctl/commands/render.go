package commands

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/meur/bisforge/internal/models"
)

func renderGear(out io.Writer, entries []models.GearEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Slot", "Item"})

	for _, e := range entries {
		t.AppendRow(table.Row{e.Slot, e.ItemID})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func renderEnchants(out io.Writer, groups []models.EnchantSlotGroup) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Slot", "Enchant", "Context"})

	for _, g := range groups {
		for i, o := range g.Options {
			slot := g.Slot
			if i > 0 {
				slot = ""
			}
			t.AppendRow(table.Row{slot, o.ID, o.Context})
		}
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func renderGuides(out io.Writer, guides []models.Guide) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"ID", "Class", "Spec", "Role", "URL"})

	for _, g := range guides {
		t.AppendRow(table.Row{g.ID, g.Class, g.Spec, strings.ToUpper(string(g.Role)), g.URL})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
