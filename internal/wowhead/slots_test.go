package wowhead

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/meur/bisforge/internal/models"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlot(t *testing.T) {
	cases := []struct {
		label    string
		state    SlotAllocation
		expected string
		next     SlotAllocation
	}{
		{"Head", SlotAllocation{}, "Head", SlotAllocation{}},
		{"  Gloves ", SlotAllocation{}, "Hands", SlotAllocation{}},
		{"Belt", SlotAllocation{}, "Waist", SlotAllocation{}},
		{"Boots", SlotAllocation{}, "Feet", SlotAllocation{}},
		{"Wrist", SlotAllocation{}, "Wrists", SlotAllocation{}},
		{"Ring", SlotAllocation{}, "Finger 1", SlotAllocation{Rings: 1}},
		{"Ring", SlotAllocation{Rings: 1}, "Finger 2", SlotAllocation{Rings: 2}},
		{"Ring", SlotAllocation{Rings: 2}, "Finger 3", SlotAllocation{Rings: 3}},
		{"Ring (alt)", SlotAllocation{Rings: 2}, "Finger (Alternative)", SlotAllocation{Rings: 2}},
		{"Ring 2", SlotAllocation{}, "Finger 2", SlotAllocation{}},
		{"Trinket", SlotAllocation{Trinkets: 1}, "Trinket 2", SlotAllocation{Trinkets: 2}},
		{"Trinket (ALT)", SlotAllocation{Trinkets: 2}, "Trinket (Alternative)", SlotAllocation{Trinkets: 2}},
		{"Weapon", SlotAllocation{}, "Main Hand", SlotAllocation{}},
		{"Alternative", SlotAllocation{}, "Main Hand (Alternative)", SlotAllocation{}},
		{"alternative", SlotAllocation{}, "Main Hand (Alternative)", SlotAllocation{}},
		{"Weapon (alt)", SlotAllocation{}, "Main Hand (Alternative)", SlotAllocation{}},
		{"Offhand", SlotAllocation{}, "Off Hand", SlotAllocation{}},
		{"Neck (alt)", SlotAllocation{}, "Neck (Alternative)", SlotAllocation{}},
		{"Relic", SlotAllocation{}, "Relic", SlotAllocation{}},
		{"Relic (alt)", SlotAllocation{}, "Relic (Alternative)", SlotAllocation{}},
	}

	for _, test := range cases {
		slot, next := NormalizeSlot(test.label, test.state)
		require.Equal(t, test.expected, slot, test.label)
		require.Equal(t, test.next, next, test.label)
	}
}

func TestNormalizeRows(t *testing.T) {
	rows := []GearRow{
		{Label: "Ring", ItemID: 1},
		{Label: "Ring", ItemID: 2},
		{Label: "Ring (alt)", ItemID: 3},
		{Label: "Weapon", ItemID: 4},
		{Label: "Alternative", ItemID: 5},
		{Label: "Trinket", ItemID: 6},
		{Label: "Trinket", ItemID: 7},
		{Label: "Trinket (alt)", ItemID: 8},
	}
	expected := []models.GearEntry{
		{Slot: "Finger 1", ItemID: 1},
		{Slot: "Finger 2", ItemID: 2},
		{Slot: "Finger (Alternative)", ItemID: 3},
		{Slot: "Main Hand", ItemID: 4},
		{Slot: "Main Hand (Alternative)", ItemID: 5},
		{Slot: "Trinket 1", ItemID: 6},
		{Slot: "Trinket 2", ItemID: 7},
		{Slot: "Trinket (Alternative)", ItemID: 8},
	}

	if diff := cmp.Diff(expected, NormalizeRows(rows)); diff != "" {
		t.Fatal(diff)
	}
}

func TestNormalizeRowsStartsFresh(t *testing.T) {
	rows := []GearRow{{Label: "Ring", ItemID: 1}}

	require.Equal(t, "Finger 1", NormalizeRows(rows)[0].Slot)
	require.Equal(t, "Finger 1", NormalizeRows(rows)[0].Slot)
	require.Empty(t, NormalizeRows(nil))
}
