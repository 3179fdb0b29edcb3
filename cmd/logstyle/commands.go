package logstyle

import (
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dfgame/logstyle/internal/version"
	"github.com/dfgame/logstyle/pkg/cobrax/topics"
	"github.com/dfgame/logstyle/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "logstyle",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringArrayVar(&opts.sets, "set", nil, MsgFlagSet)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "style", Title: "STYLING:"})
	rootCmd.AddGroup(&cobra.Group{ID: "inspect", Title: "INSPECTION:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newStripCmd(opts))
	rootCmd.AddCommand(newKeywordsCmd(opts))
	rootCmd.AddCommand(newAnimateCmd(opts))
	rootCmd.AddCommand(newTemplatesCmd(opts))
	rootCmd.AddCommand(newPaletteCmd(opts))
	rootCmd.AddCommand(newSpacingCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system from the embedded topics
	helpTopics, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		topicOpts := topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   topics.NewGlamourRenderer(),
		}
		if err := topics.InitializeWithOptions(rootCmd, helpTopics, topicOpts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}
