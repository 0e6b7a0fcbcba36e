package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/meur/bisforge/internal/models"
	"github.com/meur/bisforge/internal/storage"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", "BIS##'Head':237628;'Finger 1':221136;;ENCHANT##'Weapon':449221~San'layn|223784")
	require.NoError(t, err)
	require.Contains(t, out, "Finger 1")
	require.Contains(t, out, "221136")
	require.Contains(t, out, "San'layn")
	require.Contains(t, out, "223784")
}

func TestDecodeMalformed(t *testing.T) {
	_, err := run(t, "decode", "GEAR:1,2,3")
	require.Error(t, err)
}

func TestGuides(t *testing.T) {
	db := filepath.Join(t.TempDir(), "guides.db")
	store, err := storage.New(db)
	require.NoError(t, err)
	require.NoError(t, store.BulkCreateGuides([]models.GuideSeed{
		{Class: "priest", Spec: "discipline", Role: models.RoleHealer, URL: "https://www.wowhead.com/guide/classes/priest/discipline/bis-gear"},
		{Class: "mage", Spec: "fire", Role: models.RoleDPS, URL: "https://www.wowhead.com/guide/classes/mage/fire/bis-gear"},
	}))
	require.NoError(t, store.Close())

	out, err := run(t, "guides", "--db", db, "--class", "priest")
	require.NoError(t, err)
	require.Contains(t, out, "discipline")
	require.Contains(t, out, "HEALER")
	require.NotContains(t, out, "fire")
}

func TestGuidesAddAndRemove(t *testing.T) {
	db := filepath.Join(t.TempDir(), "guides.db")
	guideURL := "https://www.wowhead.com/guide/classes/monk/mistweaver/bis-gear"

	out, err := run(t, "guides", "add", guideURL, "--db", db, "--class", "Monk", "--spec", "Mistweaver", "--role", "healer")
	require.NoError(t, err)
	require.Contains(t, out, storage.GuideID(guideURL))
	require.Contains(t, out, "mistweaver")

	out, err = run(t, "guides", "--db", db, "--class", "monk")
	require.NoError(t, err)
	require.Contains(t, out, "HEALER")

	out, err = run(t, "guides", "rm", guideURL, "--db", db)
	require.NoError(t, err)
	require.Contains(t, out, "removed "+storage.GuideID(guideURL))

	_, err = run(t, "guides", "rm", guideURL, "--db", db)
	require.Error(t, err)

	out, err = run(t, "guides", "--db", db, "--class", "monk")
	require.NoError(t, err)
	require.NotContains(t, out, "mistweaver")
}

func TestGuidesAddRejectsBadRole(t *testing.T) {
	db := filepath.Join(t.TempDir(), "guides.db")

	_, err := run(t, "guides", "add", "https://www.wowhead.com/guide/classes/mage/fire/bis-gear", "--db", db, "--class", "mage", "--spec", "fire", "--role", "bard")
	require.Error(t, err)
}
