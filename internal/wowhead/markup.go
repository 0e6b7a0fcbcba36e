// Package wowhead extracts best-in-slot gear and enchant recommendations
// from Wowhead class guide pages.
//
// Gear guides do not carry their tables as HTML. The guide body is shipped as
// an escaped BBCode-like markup string passed to WH.markup.printHtml, so the
// gear pipeline works on that markup: locate and unescape it, pick one
// [table] block, match its rows and normalize the slot labels. Enchant guides
// are plain HTML tables and are parsed separately.
//
// None of the functions here return errors. A page that does not match the
// expected shape produces an empty result with a models.Reason saying where
// the pipeline came up short.
package wowhead

import (
	"regexp"
	"strings"
)

// printHTMLPattern captures the first string argument of the guide body call
var printHTMLPattern = regexp.MustCompile(`(?s)WH\.markup\.printHtml\("(.+?)"\s*,\s*"guide-body"`)

var markupUnescaper = strings.NewReplacer(`\/`, `/`, `\"`, `"`)

// Markup is the guide body located in a page
type Markup struct {
	Payload string
	Found   bool // false when Payload is the untouched page
}

// UnescapeMarkup locates the printHtml payload in a guide page and undoes the
// JavaScript string escaping of slashes and double quotes. If the call is not
// present the raw page is returned so that parsing can still be attempted.
func UnescapeMarkup(page string) Markup {
	m := printHTMLPattern.FindStringSubmatch(page)
	if m == nil {
		return Markup{Payload: page}
	}
	return Markup{Payload: markupUnescaper.Replace(m[1]), Found: true}
}
