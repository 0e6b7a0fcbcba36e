package wowhead

import (
	"strings"

	"github.com/meur/bisforge/internal/models"
)

// GearGuideMarker is the path segment that identifies a gear guide URL
const GearGuideMarker = "bis-gear"

// EnchantGuideURL derives the role's enchant guide from a gear guide URL,
// e.g. .../priest/discipline/bis-gear -> .../enchants-gems-pve-healer.
// It reports false when the URL is not a gear guide.
func EnchantGuideURL(gearURL string, role models.Role) (string, bool) {
	if !strings.Contains(gearURL, GearGuideMarker) {
		return "", false
	}
	if role == "" {
		role = models.DefaultRole
	}
	return strings.ReplaceAll(gearURL, GearGuideMarker, "enchants-gems-pve-"+string(role)), true
}
