package wowhead

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/meur/bisforge/internal/models"
)

// canonicalSlots maps guide slot labels to the names the addon expects
var canonicalSlots = map[string]string{
	"Head":      "Head",
	"Neck":      "Neck",
	"Shoulders": "Shoulders",
	"Cloak":     "Cloak",
	"Chest":     "Chest",
	"Wrist":     "Wrists",
	"Wrists":    "Wrists",
	"Gloves":    "Hands",
	"Hands":     "Hands",
	"Belt":      "Waist",
	"Waist":     "Waist",
	"Legs":      "Legs",
	"Boots":     "Feet",
	"Feet":      "Feet",
	"Ring":      "Finger 1",
	"Ring 1":    "Finger 1",
	"Ring 2":    "Finger 2",
	"Trinket":   "Trinket 1",
	"Trinket 1": "Trinket 1",
	"Trinket 2": "Trinket 2",
	"Weapon":    "Main Hand",
	"Main Hand": "Main Hand",
	"Off Hand":  "Off Hand",
	"Offhand":   "Off Hand",
}

const alternativeSuffix = " (Alternative)"

var altMarkerPattern = regexp.MustCompile(`(?i)\s*\(alt\)`)

// SlotAllocation counts the plain Ring and Trinket rows seen so far in one
// gear table. Alternatives never advance it.
type SlotAllocation struct {
	Rings    int
	Trinkets int
}

// canonicalName maps a label, falling back to the label itself
func canonicalName(label string) string {
	if name, ok := canonicalSlots[label]; ok {
		return name
	}
	return label
}

// NormalizeSlot maps one raw guide label to its canonical slot name and
// returns the updated allocation. A "(alt)" marker or a bare "Alternative"
// label (which follows the weapon row in guides) yields an alternative slot.
func NormalizeSlot(label string, state SlotAllocation) (string, SlotAllocation) {
	label = strings.TrimSpace(label)
	base := label
	alternative := false

	switch {
	case altMarkerPattern.MatchString(label):
		alternative = true
		base = strings.TrimSpace(altMarkerPattern.ReplaceAllString(label, ""))
	case strings.EqualFold(label, "alternative"):
		alternative = true
		base = "Weapon"
	}

	switch base {
	case "Ring":
		if alternative {
			return "Finger" + alternativeSuffix, state
		}
		state.Rings++
		return fmt.Sprintf("Finger %d", state.Rings), state
	case "Trinket":
		if alternative {
			return "Trinket" + alternativeSuffix, state
		}
		state.Trinkets++
		return fmt.Sprintf("Trinket %d", state.Trinkets), state
	case "Weapon":
		if alternative {
			return "Main Hand" + alternativeSuffix, state
		}
		return canonicalName(base), state
	}

	name := canonicalName(base)
	if alternative {
		name += alternativeSuffix
	}
	return name, state
}

// NormalizeRows converts parsed rows to gear entries, one per row, using a
// fresh allocation.
func NormalizeRows(rows []GearRow) []models.GearEntry {
	entries := make([]models.GearEntry, 0, len(rows))
	var state SlotAllocation
	for _, row := range rows {
		var slot string
		slot, state = NormalizeSlot(row.Label, state)
		entries = append(entries, models.GearEntry{Slot: slot, ItemID: row.ItemID})
	}
	return entries
}
