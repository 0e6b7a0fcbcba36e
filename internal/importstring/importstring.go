// Package importstring encodes scrape results into the text format the
// in-game addon imports:
//
//	BIS##'Head':237628;'Finger 1':221136;;ENCHANT##'Cloak':445386|445334~ST
//
// Sections are joined by ";;", entries by ";" and enchant options by "|".
// An option may carry a context after "~". None of the delimiters are
// escaped, so slot names and contexts must not contain them.
package importstring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/meur/bisforge/internal/models"
)

const (
	GearPrefix    = "BIS##"
	EnchantPrefix = "ENCHANT##"

	sectionSeparator = ";;"
	entrySeparator   = ";"
	optionSeparator  = "|"
	contextSeparator = "~"
)

// ErrMalformed is wrapped by every Decode error
var ErrMalformed = errors.New("malformed import string")

// Encode renders gear entries and enchant groups as an import string. An
// empty side is left out; with both empty the result is "".
func Encode(gear []models.GearEntry, enchants []models.EnchantSlotGroup) string {
	var sections []string

	if len(gear) > 0 {
		items := make([]string, 0, len(gear))
		for _, g := range gear {
			items = append(items, fmt.Sprintf("'%s':%d", g.Slot, g.ItemID))
		}
		sections = append(sections, GearPrefix+strings.Join(items, entrySeparator))
	}

	var groups []string
	for _, group := range enchants {
		if len(group.Options) == 0 {
			continue
		}
		options := make([]string, 0, len(group.Options))
		for _, o := range group.Options {
			option := strconv.Itoa(o.ID)
			if o.Context != "" {
				option += contextSeparator + o.Context
			}
			options = append(options, option)
		}
		groups = append(groups, fmt.Sprintf("'%s':%s", group.Slot, strings.Join(options, optionSeparator)))
	}
	if len(groups) > 0 {
		sections = append(sections, EnchantPrefix+strings.Join(groups, entrySeparator))
	}

	return strings.Join(sections, sectionSeparator)
}

// Decoded is the content of an import string
type Decoded struct {
	Gear     []models.GearEntry
	Enchants []models.EnchantSlotGroup
}

// Decode parses an import string. Sections may appear in any order and more
// than once; their entries are appended in order.
func Decode(s string) (Decoded, error) {
	var out Decoded
	s = strings.TrimSpace(s)
	if s == "" {
		return out, nil
	}

	for i, section := range strings.Split(s, sectionSeparator) {
		switch {
		case strings.HasPrefix(section, GearPrefix):
			gear, err := decodeGear(strings.TrimPrefix(section, GearPrefix))
			if err != nil {
				return Decoded{}, fmt.Errorf("section %d: %w", i+1, err)
			}
			out.Gear = append(out.Gear, gear...)
		case strings.HasPrefix(section, EnchantPrefix):
			enchants, err := decodeEnchants(strings.TrimPrefix(section, EnchantPrefix))
			if err != nil {
				return Decoded{}, fmt.Errorf("section %d: %w", i+1, err)
			}
			out.Enchants = append(out.Enchants, enchants...)
		default:
			return Decoded{}, fmt.Errorf("section %d: %w: unknown section %q", i+1, ErrMalformed, section)
		}
	}
	return out, nil
}

func decodeGear(list string) ([]models.GearEntry, error) {
	var gear []models.GearEntry
	for _, item := range strings.Split(list, entrySeparator) {
		slot, value, err := splitEntry(item)
		if err != nil {
			return nil, err
		}
		id, err := parseID(value)
		if err != nil {
			return nil, fmt.Errorf("slot %q: %w", slot, err)
		}
		gear = append(gear, models.GearEntry{Slot: slot, ItemID: id})
	}
	return gear, nil
}

func decodeEnchants(list string) ([]models.EnchantSlotGroup, error) {
	var groups []models.EnchantSlotGroup
	for _, entry := range strings.Split(list, entrySeparator) {
		slot, value, err := splitEntry(entry)
		if err != nil {
			return nil, err
		}
		group := models.EnchantSlotGroup{Slot: slot}
		for _, option := range strings.Split(value, optionSeparator) {
			idText, context, _ := strings.Cut(option, contextSeparator)
			id, err := parseID(idText)
			if err != nil {
				return nil, fmt.Errorf("slot %q: %w", slot, err)
			}
			group.Options = append(group.Options, models.EnchantOption{ID: id, Context: context})
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// splitEntry splits 'Slot':value
func splitEntry(entry string) (string, string, error) {
	if !strings.HasPrefix(entry, "'") {
		return "", "", fmt.Errorf("%w: entry %q does not start with a quoted slot", ErrMalformed, entry)
	}
	slot, value, ok := strings.Cut(entry[1:], "':")
	if !ok || slot == "" {
		return "", "", fmt.Errorf("%w: entry %q has no slot name", ErrMalformed, entry)
	}
	return slot, value, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("%w: %q is not a positive id", ErrMalformed, s)
	}
	return id, nil
}
