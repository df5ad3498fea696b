// Package cli implements the score-importer command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version printed by the version command and --version.
func SetVersion(v string) {
	if v == "" {
		return
	}

	version = v
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

type globalOptions struct {
	verbose bool
	quiet   bool
}

func newRootCmd() *cobra.Command {
	var opts globalOptions

	rootCmd := &cobra.Command{
		Use:     "score-importer",
		Version: version,
		Short:   "Copy scores from a score sheet into a student roster",
		Long: `score-importer fills the score column of a roster with the scores of a
second sheet, pairing rows by student number or, failing that, by name.

Names are compared as sets of words, ignoring case, accents and word order.
Pairs made on a single shared word are flagged for verification.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose && opts.quiet {
				return errors.New("--verbose and --quiet are mutually exclusive")
			}

			setupLogging(cmd.ErrOrStderr(), opts)

			return nil
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every matching decision")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only log warnings and errors")

	rootCmd.AddCommand(newMergeCmd(), newNormalizeCmd(), newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the score-importer version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func setupLogging(w io.Writer, opts globalOptions) {
	level := zerolog.InfoLevel

	switch {
	case opts.verbose:
		level = zerolog.DebugLevel
	case opts.quiet:
		level = zerolog.WarnLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor})
}
