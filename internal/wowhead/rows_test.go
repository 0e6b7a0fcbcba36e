package wowhead

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseGearRows(t *testing.T) {
	cases := []struct {
		name     string
		block    string
		expected []GearRow
	}{
		{
			name:  "bold labels and decorated items",
			block: "[tr][td][b]Head[/b][/td][td][color=q4][item=237628 bonus=1520][/color][/td][/tr][tr][td]Neck[/td][td][item=237569][/td][/tr]",
			expected: []GearRow{
				{Label: "Head", ItemID: 237628},
				{Label: "Neck", ItemID: 237569},
			},
		},
		{
			name:  "repeated and alternative labels",
			block: "[td]Ring[/td][td][item=1][/td][td]Ring[/td][td][item=2][/td][td]Ring (alt)[/td][td]or [item=3][/td]",
			expected: []GearRow{
				{Label: "Ring", ItemID: 1},
				{Label: "Ring", ItemID: 2},
				{Label: "Ring (alt)", ItemID: 3},
			},
		},
		{
			name:  "heading row and row without item",
			block: "[tr][td][b]Slot[/b][/td][td][b]Item[/b][/td][/tr][tr][td]Head[/td][td]Crafted, see below[/td][/tr][tr][td]Legs[/td][td][item=44][/td][/tr]",
			expected: []GearRow{
				{Label: "Legs", ItemID: 44},
			},
		},
		{
			name:  "label with unsupported characters",
			block: "[td]Off-Hand[/td][td][item=5][/td][td]Trinket 2[/td][td][item=6][/td]",
			expected: []GearRow{
				{Label: "Trinket 2", ItemID: 6},
			},
		},
		{
			name:  "rows across lines",
			block: "[tr]\n[td]Chest[/td][td]\n[item=10]\n[/td]\n[/tr]",
			expected: []GearRow{
				{Label: "Chest", ItemID: 10},
			},
		},
		{
			name:     "nothing",
			block:    "[p]no tables here[/p]",
			expected: nil,
		},
	}

	for _, test := range cases {
		if diff := cmp.Diff(test.expected, ParseGearRows(test.block)); diff != "" {
			t.Errorf("%s: %s", test.name, diff)
		}
	}
}
