package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/csvsieve/pkg/config"
	"github.com/arthur-debert/csvsieve/pkg/rules"
	"github.com/arthur-debert/csvsieve/pkg/ui/styles"
)

// newCheckCmd creates the check command: load and compile the rules document
// without touching any input
func newCheckCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Validate a rules document without processing any input",
		Example: `  csvsieve check -c rules.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			ruleset, err := rules.Compile(cfg.Rules)
			if err != nil {
				return err
			}

			data := pterm.TableData{{"Rule", "Field", "Pattern", "Policy"}}
			for _, rule := range ruleset.Rules() {
				data = append(data, []string{
					rule.Name, rule.Field, rule.Pattern.String(), rule.MergePolicy,
				})
			}
			_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

			cmd.Printf("%s %d rule(s) compiled\n",
				styles.GetStyle("Success").Render("OK:"), ruleset.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Rules document (.yaml, .toml or .json)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
