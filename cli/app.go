// Package cli implements the pidigits command structure using Cobra.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pidigits/config"
)

// ConfigLoader loads CLI config from a path.
type ConfigLoader func(path string) (*config.Config, error)

// LoggerFactory builds the process logger.
type LoggerFactory func(level zapcore.Level, verbose bool) (*zap.Logger, error)

// TerminalCheck reports whether w is an interactive terminal.
type TerminalCheck func(w io.Writer) bool

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies.
type App struct {
	root *cobra.Command

	loadConfig   ConfigLoader
	newLogger    LoggerFactory
	isTerminal   TerminalCheck
	stdout       io.Writer
	stderr       io.Writer
	cfgFile      string
	jsonOutput   bool
	verbose      bool
	cfg          *config.Config
	logger       *zap.Logger
	computeLimit uint32
	computeGroup bool
	serveListen  string
	serveWorkers int
}

// WithConfigLoader injects a config loader dependency.
func WithConfigLoader(loader ConfigLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadConfig = loader
		}
	}
}

// WithLoggerFactory injects a logger factory dependency.
func WithLoggerFactory(factory LoggerFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.newLogger = factory
		}
	}
}

// WithTerminalCheck injects terminal detection.
func WithTerminalCheck(check TerminalCheck) AppOption {
	return func(a *App) {
		if check != nil {
			a.isTerminal = check
		}
	}
}

// WithIO injects process output streams.
func WithIO(stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// NewApp creates a new CLI app with default dependencies.
func NewApp(opts ...AppOption) *App {
	a := &App{
		loadConfig: config.LoadConfig,
		newLogger:  defaultLogger,
		isTerminal: isTerminal,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.root = a.newRootCommand()
	return a
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "pidigits",
		Short: "pidigits - decimal digits of pi via the Chudnovsky series",
		Long: `pidigits computes decimal digits of pi with the Chudnovsky series
evaluated by binary splitting.

Use it to print digits directly or to serve them over HTTP.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	// Global flags available to all commands.
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.pidigits/config.yaml)")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "emit JSON output")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(a.newComputeCommand())
	root.AddCommand(a.newServeCommand())
	root.AddCommand(a.newVersionCommand())

	return root
}

// SetArgs overrides os.Args[1:] for the next Execute; used by tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.root.Execute()
}

func (a *App) initConfig() error {
	path := a.cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := a.loadConfig(path)
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}
	a.cfg = cfg

	logger, err := a.newLogger(cfg.Level(), a.verbose)
	if err != nil {
		return exitWithCode(ExitRuntime, err)
	}
	a.logger = logger

	return nil
}

// defaultLogger builds a development logger at debug level when verbose,
// otherwise a production logger at the configured level.
func defaultLogger(level zapcore.Level, verbose bool) (*zap.Logger, error) {
	if verbose {
		zc := zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return zc.Build()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

var defaultApp = NewApp()

// Execute runs the default app root command.
func Execute() error {
	return defaultApp.Execute()
}
