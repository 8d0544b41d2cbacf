package cli

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/csvsieve/pkg/core"
	"github.com/arthur-debert/csvsieve/pkg/ui/styles"
)

// newExtractCmd creates the extract command, the main run
func newExtractCmd() *cobra.Command {
	var (
		configPath string
		input      string
		output     string
		bestEffort bool
		summary    bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Run the rules over the input and write the consolidated CSV",
		Example: `  csvsieve extract -c rules.yaml -i export.csv -o matches.csv
  csvsieve extract -c rules.yaml -i ./exports/ -o matches.csv --summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := core.Run(core.RunOptions{
				ConfigPath: configPath,
				Input:      input,
				Output:     output,
				BestEffort: bestEffort,
			})
			if err != nil {
				return err
			}

			cmd.Printf("%s %d record(s) from %d file(s) written to %s\n",
				styles.GetStyle("Success").Render("Done:"),
				result.Records, len(result.Files), output)

			if summary {
				printSummary(result)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Rules document (.yaml, .toml or .json)")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Input CSV file or directory of CSV files")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination CSV file")
	cmd.Flags().BoolVar(&bestEffort, "best-effort", false, "Skip unreadable input files instead of aborting")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print per-rule and per-file match counts")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// printSummary renders per-rule and per-file counts as terminal tables
func printSummary(result *core.RunResult) {
	ruleData := pterm.TableData{{"Rule", "Matches"}}
	for _, name := range result.RuleNames {
		ruleData = append(ruleData, []string{name, strconv.Itoa(result.RuleCounts[name])})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(ruleData).Render()

	fmt.Println()

	fileData := pterm.TableData{{"File", "Rows", "Records"}}
	for _, stat := range result.Files {
		rows := strconv.Itoa(stat.Rows)
		if stat.Skipped {
			rows = "skipped"
		}
		fileData = append(fileData, []string{stat.Name, rows, strconv.Itoa(stat.Records)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(fileData).Render()
}
