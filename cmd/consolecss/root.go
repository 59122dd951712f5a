package consolecss

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/consolecss/internal/version"
	"github.com/arthur-debert/consolecss/pkg/cobrax/topics"
	"github.com/arthur-debert/consolecss/pkg/config"
	"github.com/arthur-debert/consolecss/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// AppName is the command name.
const AppName = "consolecss"

//go:embed help
var helpFiles embed.FS

// options carries the global flags and the lazily loaded configuration.
type options struct {
	verbosity  int
	configPath string
	noColor    bool

	cfg *config.Config
}

func (o *options) config() (*config.Config, error) {
	if o.cfg == nil {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		o.cfg = cfg
	}
	return o.cfg, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	o := &options{}

	rootCmd := &cobra.Command{
		Use:     AppName,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithOutput(cmd.ErrOrStderr(), o.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&o.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&o.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&o.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(o))
	rootCmd.AddCommand(newLogCmd(o))
	rootCmd.AddCommand(newDeclarationsCmd(o))
	rootCmd.AddCommand(newConfigCmd(o))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	helpFS, err := fs.Sub(helpFiles, "help")
	if err == nil {
		_, err = topics.Initialize(rootCmd, helpFS, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}
