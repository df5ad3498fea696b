package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"score-importer/internal/match"
)

type normalizedName struct {
	Raw    string   `json:"raw"`
	Tokens []string `json:"tokens"`
}

func newNormalizeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "normalize <name>...",
		Short: "Show the words a name is compared on",
		Long: `Normalize prints each name the way the matcher sees it: lower case, without
accents, split on spaces, dashes and underscores, as a sorted set of words.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]normalizedName, 0, len(args))
			for _, raw := range args {
				names = append(names, normalizedName{Raw: raw, Tokens: match.Normalize(raw).Tokens()})
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), names)
			}

			w := cmd.OutOrStdout()
			for _, n := range names {
				_, _ = fmt.Fprintf(w, "%s\t", n.Raw)
				_, _ = dimColor.Fprintf(w, "→ ")
				_, _ = fmt.Fprintln(w, match.NewNameSet(n.Tokens...).String())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}
