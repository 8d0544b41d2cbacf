// Package cli wires the csvsieve command tree: the root command, its
// subcommands, and the topic-based help system.
package cli

import (
	"embed"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/csvsieve/internal/version"
	"github.com/arthur-debert/csvsieve/pkg/cobrax/topics"
	"github.com/arthur-debert/csvsieve/pkg/logging"
	"github.com/arthur-debert/csvsieve/pkg/ui/styles"
)

//go:embed help
var helpFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:   "csvsieve",
		Short: "Extract regex matches from CSV files into one consolidated CSV",
		Long: `csvsieve reads one or more CSV files, tests configurable regex rules
against their fields, and writes every match into a single consolidated
output CSV. Rules bind an output column to an input column and a pattern;
see "csvsieve help config-format" for the rule document format.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			styles.ConfigureColors(noColor)
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")

	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Topic-based help from the embedded docs. A failure here only loses
	// the help topics, not the command tree, so it's logged rather than fatal.
	if helpDir, err := fs.Sub(helpFS, "help"); err != nil {
		log.Debug().Err(err).Msg("Embedded help topics unavailable")
	} else if err := topics.Initialize(rootCmd, helpDir, topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	}); err != nil {
		log.Debug().Err(err).Msg("Failed to initialize help topics")
	}

	return rootCmd
}
