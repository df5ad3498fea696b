package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"score-importer/internal/match"
	"score-importer/internal/merge"
)

func sampleResult() *merge.Result {
	roster := []merge.Entry{
		merge.NewEntry(5, 2100001, "Dupont Marie"),
		merge.NewEntry(6, 0, "Martin Paul"),
		merge.NewEntry(7, 0, "Durand Luc"),
	}
	candidates := []match.Candidate{
		match.NewCandidate(1, 2100001, "M. Dupont", match.NumberScore(12.5)),
		match.NewCandidate(2, 0, "Paul Martin", match.TextScore("ABJ")),
		match.NewCandidate(3, 0, "Luce Durant", match.NumberScore(9)),
	}

	return merge.Merge(roster, candidates, merge.DefaultConfig())
}

func TestBuild(t *testing.T) {
	r := Build(sampleResult(), Meta{Input: "in.xlsx", Output: "in-merged.xlsx", Written: true})

	assert.Equal(t, Summary{
		Entries:    3,
		Identifier: 1,
		Exact:      1,
		Unmatched:  1,
		Unused:     1,
		Warnings:   2,
	}, r.Summary)

	require.Len(t, r.Entries, 3)
	assert.Equal(t, Entry{
		Row: 6, ID: 2100001, Name: "Dupont Marie", Tier: match.TierIdentifier,
		Matched: "M. Dupont", MatchedRow: 2, Score: "12.5",
	}, r.Entries[0])
	assert.Equal(t, "ABJ", r.Entries[1].Score)
	assert.Equal(t, match.TierUnmatched, r.Entries[2].Tier)
	assert.Equal(t, []string{"Luce Durant"}, r.Entries[2].Suggestions)

	assert.Equal(t, []Candidate{{Row: 4, Name: "Luce Durant", Score: "9"}}, r.Unused)
	assert.Len(t, r.Diagnostics, 2)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, Build(sampleResult(), Meta{Input: "in.xlsx"})))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "in.xlsx", doc["input"])
	assert.Equal(t, "entry", doc["strategy"])

	entries := doc["entries"].([]any)
	require.Len(t, entries, 3)
	assert.Equal(t, "identifier", entries[0].(map[string]any)["tier"])
	assert.Equal(t, "unmatched", entries[2].(map[string]any)["tier"])

	diags := doc["diagnostics"].([]any)
	assert.Equal(t, "warning", diags[0].(map[string]any)["severity"])
}

func TestWriteFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteFile(path, Build(sampleResult(), Meta{Input: "in.xlsx"})))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	summary := doc["summary"].(map[string]any)
	assert.InDelta(t, 3, summary["entries"], 0)
	assert.Equal(t, "exact", doc["entries"].([]any)[1].(map[string]any)["tier"])
}
