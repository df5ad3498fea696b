package cli

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"score-importer/internal/config"
	"score-importer/internal/importer"
	"score-importer/internal/report"
)

type mergeOptions struct {
	configPath string
	output     string
	strategy   string
	marker     string
	reportPath string
	strict     bool
	dryRun     bool
	json       bool
}

func newMergeCmd() *cobra.Command {
	var opts mergeOptions

	cmd := &cobra.Command{
		Use:   "merge <file.xlsx | roster.csv scores.csv>",
		Short: "Merge the score sheet into the roster",
		Long: `Merge reads a roster and a score sheet, either as the first two sheets of
an XLSX workbook or as two CSV files, and writes the completed roster next
to the input with a "-merged" suffix.

The roster must contain a header row (by default "Numéro, Nom, Prénom, Note").
In the score sheet, the last column holding numbers is taken as the scores,
text columns as names, and a column of large integers as student numbers.

Rows are paired by student number first, then by name. A name match may pair
two rows whose student numbers differ; set reject_conflicting_ids: true in
score-importer.yml to refuse such pairs. Matches made on a single shared word
are flagged with uncertain_suffix (" ?" by default) for verification.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Configuration file (default: score-importer.yml next to the input)")
	f.StringVarP(&opts.output, "output", "o", "", "Output file (default: <input>-merged.<ext>)")
	f.StringVar(&opts.strategy, "strategy", "", "Matching order: entry or tier")
	f.StringVar(&opts.marker, "marker", "", "Score written for unmatched rows, e.g. ABI")
	f.StringVar(&opts.reportPath, "report", "", "Write a YAML (or .json) report of every pair")
	f.BoolVar(&opts.strict, "strict", false, "Fail without writing when a row stays unresolved")
	f.BoolVarP(&opts.dryRun, "dry-run", "n", false, "Merge without writing the output")
	f.BoolVar(&opts.json, "json", false, "Print the report as JSON")

	return cmd
}

func runMerge(cmd *cobra.Command, args []string, opts mergeOptions) error {
	cfg, err := loadConfig(cmd, args[0], opts)
	if err != nil {
		return err
	}

	out, runErr := importer.Run(importer.Options{
		Inputs: args,
		Output: opts.output,
		Config: cfg,
		DryRun: opts.dryRun,
	})
	if out == nil {
		return runErr
	}

	rep := report.Build(out.Result, report.Meta{
		Input:       out.Input,
		Output:      out.Output,
		Written:     out.Written,
		RosterSheet: out.RosterSheet,
		ScoreSheet:  out.ScoreSheet,
	})

	if opts.reportPath != "" {
		if err := report.WriteFile(opts.reportPath, rep); err != nil {
			return err
		}

		log.Info().Str("report", opts.reportPath).Msg("saved report")
	}

	if opts.json {
		if err := report.WriteJSON(cmd.OutOrStdout(), rep); err != nil {
			return err
		}
	} else {
		printOutcome(cmd.OutOrStdout(), out, rep)
	}

	return runErr
}

// loadConfig reads the configuration and applies the command line overrides.
func loadConfig(cmd *cobra.Command, input string, opts mergeOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		var path string

		cfg, path, err = config.Discover(filepath.Dir(input))
		if path != "" {
			log.Debug().Str("config", path).Msg("using configuration file")
		}
	}

	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = opts.strategy
	}

	if flags.Changed("marker") {
		cfg.UnmatchedMarker = opts.marker
	}

	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	return cfg, nil
}
