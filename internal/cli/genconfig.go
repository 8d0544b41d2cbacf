package cli

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/csvsieve/pkg/config"
)

// newGenconfigCmd creates the genconfig command: print a starter rules
// document to stdout
func newGenconfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "genconfig",
		Short:   "Print a starter rules document (TOML) to stdout",
		Example: `  csvsieve genconfig > rules.toml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			starter := config.Default()
			starter.Rules = []config.RuleConfig{
				{
					Name:    "email",
					Field:   "contact",
					Pattern: `[\w.]+@[\w.]+`,
				},
				{
					Name:        "phone",
					Field:       "contact",
					Pattern:     `\d{3}[-.\s]?\d{4}`,
					MergePolicy: config.MergeCombined,
				},
			}

			out, err := toml.Marshal(starter)
			if err != nil {
				return err
			}

			cmd.Print(string(out))
			return nil
		},
	}
}
