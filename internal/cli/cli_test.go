package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"score-importer/internal/importer"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()

	return out.String(), err
}

func writeInputs(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	roster := filepath.Join(dir, "roster.csv")
	scores := filepath.Join(dir, "scores.csv")

	require.NoError(t, os.WriteFile(roster, []byte(
		"Numéro;Nom;Prénom;Note\n"+
			"2100001;Dupont;Marie;\n"+
			"2100002;Martin;Paul;\n"+
			"2100003;Durand;Luc;\n"), 0o644))
	require.NoError(t, os.WriteFile(scores, []byte(
		"Nom;Note\n"+
			"Marie Dupont;12\n"+
			"Paul Martin;15,5\n"+
			"Luce Durant;9\n"), 0o644))

	return roster, scores
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestNormalize(t *testing.T) {
	out, err := run(t, "normalize", "Émilie  de-La Tour")
	require.NoError(t, err)
	assert.Contains(t, out, "Émilie  de-La Tour")
	assert.Contains(t, out, "de emilie la tour")

	out, err = run(t, "normalize", "--json", "JOSÉ García", "")
	require.NoError(t, err)

	var names []normalizedName
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	require.Len(t, names, 2)
	assert.Equal(t, []string{"garcia", "jose"}, names[0].Tokens)
	assert.Empty(t, names[1].Tokens)
}

func TestNormalize_NeedsArgs(t *testing.T) {
	_, err := run(t, "normalize")
	assert.Error(t, err)
}

func TestMerge_HumanOutput(t *testing.T) {
	roster, scores := writeInputs(t)

	out, err := run(t, "merge", "--marker", "ABI", roster, scores)
	require.NoError(t, err)

	assert.Contains(t, out, "roster ← scores")
	assert.Contains(t, out, "Unmatched")
	assert.Contains(t, out, "Durand Luc (closest: Luce Durant)")
	assert.Contains(t, out, "Unused scores")
	assert.Contains(t, out, "Wrote "+filepath.Join(filepath.Dir(roster), "roster-merged.csv"))

	data, err := os.ReadFile(filepath.Join(filepath.Dir(roster), "roster-merged.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2100002;Martin;Paul;15.5;Paul Martin\n")
	assert.Contains(t, string(data), "2100003;Durand;Luc;ABI;\n")
}

func TestMerge_JSONDryRun(t *testing.T) {
	roster, scores := writeInputs(t)
	reportPath := filepath.Join(t.TempDir(), "report.yaml")

	out, err := run(t, "merge", "--json", "--dry-run", "--strategy", "tier", "--report", reportPath, roster, scores)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "tier", doc["strategy"])
	assert.Equal(t, false, doc["written"])

	_, err = os.Stat(filepath.Join(filepath.Dir(roster), "roster-merged.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = os.Stat(reportPath)
	assert.NoError(t, err)
}

func TestMerge_Strict(t *testing.T) {
	roster, scores := writeInputs(t)

	out, err := run(t, "merge", "--strict", roster, scores)
	require.ErrorIs(t, err, importer.ErrUnresolved)
	assert.Contains(t, out, "nothing written")
}

func TestMerge_ConfigFile(t *testing.T) {
	roster, scores := writeInputs(t)
	dir := filepath.Dir(roster)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "score-importer.yml"), []byte("strict: true\n"), 0o644))

	_, err := run(t, "merge", roster, scores)
	require.ErrorIs(t, err, importer.ErrUnresolved)

	// Flags win over the file.
	_, err = run(t, "merge", "--strict=false", "--dry-run", roster, scores)
	assert.NoError(t, err)
}

func TestMerge_InvalidStrategy(t *testing.T) {
	roster, scores := writeInputs(t)

	_, err := run(t, "merge", "--strategy", "optimal", roster, scores)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown merge strategy")
}

func TestVerboseAndQuiet(t *testing.T) {
	_, err := run(t, "--verbose", "--quiet", "version")
	assert.Error(t, err)
}

func TestMerge_HelpMentionsConflictingIDs(t *testing.T) {
	out, err := run(t, "merge", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "reject_conflicting_ids: true")
	assert.Contains(t, out, "uncertain_suffix")
}
