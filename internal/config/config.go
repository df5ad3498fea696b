package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"score-importer/internal/match"
	"score-importer/internal/merge"
)

// FileNames are the configuration files looked up by Discover, in order.
var FileNames = []string{"score-importer.yml", "score-importer.yaml"}

// Config holds the importer settings.
type Config struct {
	// IDThreshold is the value an integer must exceed to be a student number.
	IDThreshold int64 `yaml:"id_threshold"`
	// MinTokenLen is the shortest token kept by the minimal tier.
	MinTokenLen int `yaml:"min_token_len"`
	// Strategy is the merge visiting order: entry or tier.
	Strategy string `yaml:"strategy"`
	// Strict fails the import when a row stays unresolved.
	Strict bool `yaml:"strict"`
	// RejectConflictingIDs stops name tiers from pairing two different IDs.
	RejectConflictingIDs bool `yaml:"reject_conflicting_ids"`
	// MaxSuggestions bounds the candidates suggested for an unmatched row.
	MaxSuggestions *int `yaml:"max_suggestions"`
	// MinSuggestionSimilarity hides suggestions less similar than this (0-1).
	MinSuggestionSimilarity float64 `yaml:"min_suggestion_similarity"`
	// UnmatchedMarker is written in the score cell of unmatched rows.
	UnmatchedMarker string `yaml:"unmatched_marker"`
	// UncertainSuffix is appended to the annotation of minimal matches.
	UncertainSuffix *string `yaml:"uncertain_suffix"`
	// OutputSuffix is inserted before the extension of the output file.
	OutputSuffix string `yaml:"output_suffix"`
	// AnnotationHeader titles the annotation column.
	AnnotationHeader string `yaml:"annotation_header"`
	// Roster describes the layout of the roster sheet.
	Roster Roster `yaml:"roster"`
}

// Roster describes the roster sheet.
type Roster struct {
	// Header is the sequence of leading cells that marks the header row.
	Header []string `yaml:"header"`
	// HeaderSearchRows bounds the rows scanned for Header.
	HeaderSearchRows int `yaml:"header_search_rows"`
	// Columns are the 0-based positions of the roster fields.
	Columns Columns `yaml:"columns"`
}

// Columns are 0-based column positions.
type Columns struct {
	ID        *int `yaml:"id"`
	LastName  *int `yaml:"last_name"`
	FirstName *int `yaml:"first_name"`
	Score     *int `yaml:"score"`
}

// Default returns the settings used when no file is found.
func Default() *Config {
	var cfg Config

	applyDefaults(&cfg)

	return &cfg
}

// Load loads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Discover loads the first of FileNames found in dir, or returns the defaults.
// The returned path is empty when no file was found.
func Discover(dir string) (*Config, string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)

		_, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, "", fmt.Errorf("failed to stat %s: %w", path, err)
		}

		cfg, err := Load(path)

		return cfg, path, err
	}

	return Default(), "", nil
}

// Parse parses YAML data into a Config and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.IDThreshold == 0 {
		cfg.IDThreshold = match.DefaultIDThreshold
	}

	if cfg.MinTokenLen == 0 {
		cfg.MinTokenLen = match.DefaultMinTokenLen
	}

	if cfg.Strategy == "" {
		cfg.Strategy = merge.StrategyEntryOrder.String()
	}

	if cfg.MaxSuggestions == nil {
		cfg.MaxSuggestions = intPtr(3)
	}

	if cfg.UncertainSuffix == nil {
		suffix := " ?"
		cfg.UncertainSuffix = &suffix
	}

	if cfg.OutputSuffix == "" {
		cfg.OutputSuffix = "-merged"
	}

	if cfg.AnnotationHeader == "" {
		cfg.AnnotationHeader = "Matched name"
	}

	r := &cfg.Roster
	if len(r.Header) == 0 {
		r.Header = []string{"Numéro", "Nom", "Prénom", "Note"}
	}

	if r.HeaderSearchRows == 0 {
		r.HeaderSearchRows = 20
	}

	setDefault(&r.Columns.ID, 0)
	setDefault(&r.Columns.LastName, 1)
	setDefault(&r.Columns.FirstName, 2)
	setDefault(&r.Columns.Score, 3)
}

func setDefault(p **int, v int) {
	if *p == nil {
		*p = intPtr(v)
	}
}

func intPtr(v int) *int { return &v }

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	var errs []error

	if _, err := merge.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}

	if c.IDThreshold < 0 {
		errs = append(errs, fmt.Errorf("id_threshold must not be negative, got %d", c.IDThreshold))
	}

	if c.MinTokenLen < 0 {
		errs = append(errs, fmt.Errorf("min_token_len must not be negative, got %d", c.MinTokenLen))
	}

	if c.MaxSuggestions != nil && *c.MaxSuggestions < 0 {
		errs = append(errs, fmt.Errorf("max_suggestions must not be negative, got %d", *c.MaxSuggestions))
	}

	if c.MinSuggestionSimilarity < 0 || c.MinSuggestionSimilarity > 1 {
		errs = append(errs, fmt.Errorf("min_suggestion_similarity must be between 0 and 1, got %g", c.MinSuggestionSimilarity))
	}

	if c.Roster.HeaderSearchRows < 0 {
		errs = append(errs, fmt.Errorf("roster.header_search_rows must not be negative, got %d", c.Roster.HeaderSearchRows))
	}

	cols := []struct {
		name string
		pos  *int
	}{
		{"id", c.Roster.Columns.ID},
		{"last_name", c.Roster.Columns.LastName},
		{"first_name", c.Roster.Columns.FirstName},
		{"score", c.Roster.Columns.Score},
	}
	for _, col := range cols {
		if col.pos != nil && *col.pos < 0 {
			errs = append(errs, fmt.Errorf("roster.columns.%s must not be negative, got %d", col.name, *col.pos))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// MergeConfig converts the settings into a merge configuration.
func (c *Config) MergeConfig() (merge.Config, error) {
	strategy, err := merge.ParseStrategy(c.Strategy)
	if err != nil {
		return merge.Config{}, err
	}

	mc := merge.DefaultConfig()
	mc.Strategy = strategy
	mc.Matcher.MinTokenLen = c.MinTokenLen
	mc.Matcher.RejectConflictingIDs = c.RejectConflictingIDs
	mc.MinSimilarity = c.MinSuggestionSimilarity

	if c.MaxSuggestions != nil {
		mc.MaxSuggestions = *c.MaxSuggestions
	}

	return mc, nil
}
