package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"score-importer/internal/merge"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, int64(1_000_000), cfg.IDThreshold)
	assert.Equal(t, 3, cfg.MinTokenLen)
	assert.Equal(t, "entry", cfg.Strategy)
	assert.False(t, cfg.Strict)
	assert.Equal(t, 3, *cfg.MaxSuggestions)
	assert.Empty(t, cfg.UnmatchedMarker)
	assert.Equal(t, " ?", *cfg.UncertainSuffix)
	assert.Equal(t, "-merged", cfg.OutputSuffix)
	assert.Equal(t, "Matched name", cfg.AnnotationHeader)
	assert.Equal(t, []string{"Numéro", "Nom", "Prénom", "Note"}, cfg.Roster.Header)
	assert.Equal(t, 20, cfg.Roster.HeaderSearchRows)
	assert.Equal(t, 0, *cfg.Roster.Columns.ID)
	assert.Equal(t, 1, *cfg.Roster.Columns.LastName)
	assert.Equal(t, 2, *cfg.Roster.Columns.FirstName)
	assert.Equal(t, 3, *cfg.Roster.Columns.Score)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
strategy: tier
strict: true
max_suggestions: 0
unmatched_marker: ABI
uncertain_suffix: " (?)"
roster:
  header: [Id, Name]
  columns:
    id: 0
    last_name: 1
    first_name: 1
    score: 4
`))
	require.NoError(t, err)

	assert.Equal(t, "tier", cfg.Strategy)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 0, *cfg.MaxSuggestions)
	assert.Equal(t, "ABI", cfg.UnmatchedMarker)
	assert.Equal(t, " (?)", *cfg.UncertainSuffix)
	assert.Equal(t, []string{"Id", "Name"}, cfg.Roster.Header)
	assert.Equal(t, 4, *cfg.Roster.Columns.Score)
	assert.Equal(t, 20, cfg.Roster.HeaderSearchRows)
	assert.Equal(t, "-merged", cfg.OutputSuffix)
}

func TestParse_EmptySuffixIsKept(t *testing.T) {
	cfg, err := Parse([]byte(`uncertain_suffix: ""`))
	require.NoError(t, err)
	assert.Empty(t, *cfg.UncertainSuffix)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "strategy: [", "failed to parse config YAML"},
		{"unknown strategy", "strategy: optimal", "unknown merge strategy"},
		{"negative tokens", "min_token_len: -1", "min_token_len must not be negative"},
		{"similarity above one", "min_suggestion_similarity: 1.5", "min_suggestion_similarity must be between 0 and 1"},
		{"negative column", "roster: {columns: {score: -2}}", "roster.columns.score must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	cfg, path, err := Discover(dir)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)

	want := filepath.Join(dir, "score-importer.yaml")
	require.NoError(t, os.WriteFile(want, []byte("strict: true\n"), 0o644))

	cfg, path, err = Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, want, path)
	assert.True(t, cfg.Strict)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMergeConfig(t *testing.T) {
	cfg := Default()
	cfg.Strategy = "tier"
	cfg.MinTokenLen = 4
	cfg.RejectConflictingIDs = true
	*cfg.MaxSuggestions = 1
	cfg.MinSuggestionSimilarity = 0.4

	mc, err := cfg.MergeConfig()
	require.NoError(t, err)

	assert.Equal(t, merge.StrategyTierOrder, mc.Strategy)
	assert.Equal(t, 4, mc.Matcher.MinTokenLen)
	assert.True(t, mc.Matcher.RejectConflictingIDs)
	assert.Equal(t, 1, mc.MaxSuggestions)
	assert.InDelta(t, 0.4, mc.MinSimilarity, 1e-9)
}
