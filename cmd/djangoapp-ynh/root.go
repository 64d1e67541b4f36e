package djangoapp

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/artus40/djangoapp-ynh/internal/version"
	"github.com/artus40/djangoapp-ynh/pkg/config"
	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/filesystem"
	"github.com/artus40/djangoapp-ynh/pkg/introspect"
	"github.com/artus40/djangoapp-ynh/pkg/logging"
	"github.com/artus40/djangoapp-ynh/pkg/pipeline"
	"github.com/artus40/djangoapp-ynh/pkg/progress"
	"github.com/artus40/djangoapp-ynh/pkg/prompt"
	"github.com/artus40/djangoapp-ynh/pkg/steps"
)

// Exit codes
const (
	ExitOK          = 0
	ExitFatal       = 1
	ExitStepsFailed = 2
)

type rootOptions struct {
	verbosity   int
	destination string
	configFile  string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		Args:    cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackage(cmd, args[0], opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVarP(&opts.destination, "destination", "d", "", MsgFlagDestination)
	rootCmd.Flags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	_ = rootCmd.MarkFlagDirname("destination")
	_ = rootCmd.MarkFlagFilename("config", "toml")

	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	installTopics(rootCmd)

	return rootCmd
}

func runPackage(cmd *cobra.Command, projectPath string, opts rootOptions) error {
	logger := logging.GetLogger("cli")
	done := logging.LogOperationStart(logger, "package")
	defer done()

	overrides := map[string]interface{}{}
	if opts.destination != "" {
		overrides["bundle.destination"] = opts.destination
	}
	cfg, err := config.Load(config.LoadOptions{ConfigFile: opts.configFile, Overrides: overrides})
	if err != nil {
		return err
	}

	destination := cfg.Bundle.Destination
	if destination == "" {
		if destination, err = defaultDestination(); err != nil {
			return err
		}
	}

	fsys := filesystem.NewOS()
	out := cmd.OutOrStdout()
	reporter := progress.New(out)
	deps := steps.Deps{
		FS:           fsys,
		Prompter:     prompt.NewConsole(cmd.InOrStdin(), out, reporter),
		Introspector: introspect.New(cfg.Introspect, fsys),
		Config:       cfg,
	}

	runner := pipeline.New(pipeline.Options{
		FS:       fsys,
		Config:   cfg,
		Reporter: reporter,
		Steps:    steps.Default(deps),
		Logger:   &logger,
	})
	summary, err := runner.Run(projectPath, destination)
	if err != nil {
		return err
	}
	return summary.Err()
}

// defaultDestination is the directory holding the running executable
func defaultDestination() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot locate executable")
	}
	return filepath.Dir(exe), nil
}

// ExitCode maps the error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsErrorCode(err, errors.ErrStepsFailed):
		return ExitStepsFailed
	default:
		return ExitFatal
	}
}
