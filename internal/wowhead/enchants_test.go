package wowhead

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/meur/bisforge/internal/models"
	"github.com/stretchr/testify/require"
)

const enchantPage = `<html><body>
<h2>Enchants</h2>
<table>
<tr><td><b>Slot</b></td><td><b>Enchant</b></td></tr>
<tr><td>Cloak</td><td><a href="https://www.wowhead.com/spell=445386/enchant-cloak-chant-of-leeching-fangs">Chant of Leeching Fangs</a></td></tr>
<tr><td>Weapon</td><td><a href="/spell=449221/enchant-weapon-stonebound-artistry">Stonebound Artistry</a> (San'layn)<br><a href="/item=223784/authority-of-the-depths">Authority of the Depths</a> (<span>Deathbringer</span>&nbsp; ST)<br/>Ask your guild</td></tr>
<tr><td>Flask</td><td><a href="/spell=432021/flask">Flask of Alchemical Chaos</a></td></tr>
<tr><td>Ring</td><td>No enchant needed</td></tr>
<tr><td>Legs</td></tr>
</table>
<table>
<tr><td><b>Best Gems</b></td><td></td></tr>
<tr><td><strong>Cloak</strong></td><td><a href="/spell=445334/enchant-cloak-whisper">Whisper of Silken Avoidance</a></td></tr>
</table>
</body></html>`

func TestParseEnchants(t *testing.T) {
	ex := ParseEnchants(enchantPage)

	expected := []models.EnchantSlotGroup{
		{Slot: "Cloak", Options: []models.EnchantOption{{ID: 445386}}},
		{Slot: "Weapon", Options: []models.EnchantOption{
			{ID: 449221, Context: "San'layn"},
			{ID: 223784, Context: "Deathbringer ST"},
		}},
		{Slot: "Cloak", Options: []models.EnchantOption{{ID: 445334}}},
	}
	if diff := cmp.Diff(expected, ex.Groups); diff != "" {
		t.Fatal(diff)
	}
	require.Equal(t, 2, ex.Tables)
	require.Equal(t, models.ReasonOK, ex.Reason)
}

func TestParseEnchantsExcludesNonEnchantSlots(t *testing.T) {
	page := `<table><tr><td>Flask</td><td><a href="/spell=432021">Flask</a></td></tr><tr><td>Food</td><td><a href="/item=222720">Feast</a></td></tr></table>`

	ex := ParseEnchants(page)
	require.Empty(t, ex.Groups)
	require.Equal(t, models.ReasonNoRows, ex.Reason)
}

func TestParseEnchantsPrefersSpellOverItem(t *testing.T) {
	page := `<table><tr><td>Chest</td><td><a href="/item=223692" data-wowhead="spell=445333">Crystalline Radiance</a></td></tr></table>`

	ex := ParseEnchants(page)
	require.Len(t, ex.Groups, 1)
	require.Equal(t, []models.EnchantOption{{ID: 445333}}, ex.Groups[0].Options)
}

func TestParseEnchantsNoTables(t *testing.T) {
	ex := ParseEnchants("<html><body><p>Page moved</p></body></html>")
	require.Empty(t, ex.Groups)
	require.Equal(t, 0, ex.Tables)
	require.Equal(t, models.ReasonNoTables, ex.Reason)
}

func TestEnchantContext(t *testing.T) {
	cases := []struct {
		fragment string
		expected string
	}{
		{`<a href="/spell=1">x</a> (AoE)`, "AoE"},
		{`<a href="/spell=1">x</a>(  <i>Single</i>   Target ) `, "Single Target"},
		{`<a href="/spell=1">x</a> (Rider&nbsp;of the Apocalypse)`, "Rider of the Apocalypse"},
		{`<a href="/spell=1">x</a> (M+) and more`, ""},
		{`<a href="/spell=1">x</a>`, ""},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, enchantContext(test.fragment), test.fragment)
	}
}

func TestIsEnchantSlot(t *testing.T) {
	require.True(t, IsEnchantSlot("Ring - Cursed"))
	require.True(t, IsEnchantSlot("All other builds"))
	require.False(t, IsEnchantSlot("Gems"))
	require.False(t, IsEnchantSlot("cloak"))
}
