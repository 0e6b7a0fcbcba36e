package wowhead

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnescapeMarkup(t *testing.T) {
	page := `<script>WH.markup.printHtml("[table class=\"grid\"][td]Head[\/td][\/table]", "guide-body", {allow: 30});</script>`

	m := UnescapeMarkup(page)
	require.True(t, m.Found)
	require.Equal(t, `[table class="grid"][td]Head[/td][/table]`, m.Payload)
}

func TestUnescapeMarkupToleratesSpacing(t *testing.T) {
	page := `WH.markup.printHtml("[b]x[\/b]"  ,   "guide-body")`

	m := UnescapeMarkup(page)
	require.True(t, m.Found)
	require.Equal(t, "[b]x[/b]", m.Payload)
}

func TestUnescapeMarkupMissingCall(t *testing.T) {
	page := `<html><body><p>Nothing to see</p></body></html>`

	m := UnescapeMarkup(page)
	require.False(t, m.Found)
	require.Equal(t, page, m.Payload)
}

func TestUnescapeMarkupOtherTarget(t *testing.T) {
	page := `WH.markup.printHtml("[b]sidebar[\/b]", "guide-sidebar")`

	m := UnescapeMarkup(page)
	require.False(t, m.Found)
}
