package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/abdul-hamid-achik/toolbox/packages/builtin"
	"github.com/abdul-hamid-achik/toolbox/packages/core/config"
	"github.com/abdul-hamid-achik/toolbox/packages/core/logging"
	"github.com/abdul-hamid-achik/toolbox/packages/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	configFlag  string
	envFileFlag string
	outputFlag  string
	formatFlag  string
	noColorFlag bool
	verboseFlag bool
	seedFlag    uint64
)

// Resolved by loadRuntime before any command that evaluates expressions.
var (
	settings *config.Config
	logger   = logging.Discard()
	registry *builtin.Registry
)

var rootCmd = &cobra.Command{
	Use:   "toolbox",
	Short: "Timestamp tokens, number helpers and color conversions.",
	Long: `toolbox evaluates small utility functions from the command line.

Functions live in three namespaces:
  timestamps  chat timestamp tokens such as <t:1620000000:R>
  numbers     parity, primality, averages, gcd and lcm
  colors      conversions between hex, RGB and HSL

Examples:
  toolbox call 'numbers.gdc(12, 18)'
  toolbox call 'colors.hexToHsl("#ff8800")' 'timestamps.now("RELATIVE")'
  toolbox check ./checks/`,
	SilenceUsage:      true,
	PersistentPreRunE: loadRuntime,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFlag, "config", "", "Path to config file (env: TOOLBOX_CONFIG)")
	pf.StringVar(&envFileFlag, "env-file", getEnvString("TOOLBOX_ENV_FILE", ".env"), "Path to .env file (env: TOOLBOX_ENV_FILE)")
	pf.StringVarP(&outputFlag, "output", "o", "", "Output format: console, json (env: TOOLBOX_OUTPUT)")
	pf.StringVar(&formatFlag, "format", "", "Default timestamp format when a call omits one (env: TOOLBOX_DEFAULT_FORMAT)")
	pf.BoolVar(&noColorFlag, "no-color", false, "Disable colored output (env: TOOLBOX_NO_COLOR)")
	pf.BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output and debug logging (env: TOOLBOX_VERBOSE)")
	pf.Uint64Var(&seedFlag, "seed", 0, "Seed for the random functions (env: TOOLBOX_SEED)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return withExitCode(ExitUsageError, err)
	})

	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// flagConfig returns the settings given explicitly on the command line.
func flagConfig(cmd *cobra.Command) *config.Config {
	c := &config.Config{}
	flags := cmd.Flags()
	if flags.Changed("output") {
		c.Output = outputFlag
	}
	if flags.Changed("format") {
		c.DefaultFormat = formatFlag
	}
	if flags.Changed("no-color") {
		c.NoColor = config.BoolPtr(noColorFlag)
	}
	if flags.Changed("verbose") {
		c.Verbose = config.BoolPtr(verboseFlag)
	}
	if flags.Changed("seed") {
		c.Seed = config.Uint64Ptr(seedFlag)
	}
	return c
}

// loadRuntime resolves settings (defaults < config file < environment <
// flags) and builds the logger and the function registry.
func loadRuntime(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(envFileFlag); err != nil {
		return withExitCode(ExitConfigError, err)
	}

	// read after LoadDotEnv so the .env file can name the config file too
	configPath := configFlag
	if configPath == "" {
		configPath = os.Getenv("TOOLBOX_CONFIG")
	}

	fileConfig, err := config.LoadConfig(configPath)
	if err != nil {
		return withExitCode(ExitConfigError, fmt.Errorf("loading config: %w", err))
	}
	envConfig, err := config.FromEnv()
	if err != nil {
		return withExitCode(ExitConfigError, err)
	}

	cfg := fileConfig.Merge(envConfig).Merge(flagConfig(cmd))
	if err := cfg.Validate(); err != nil {
		return withExitCode(ExitConfigError, fmt.Errorf("invalid config: %w", err))
	}
	settings = cfg

	logger = logging.New(logging.Options{
		Verbose: cfg.GetVerbose(),
		NoColor: cfg.GetNoColor(),
		Writer:  cmd.ErrOrStderr(),
	})

	format, _ := cfg.Format()
	opts := []builtin.Option{builtin.WithDefaultFormat(format)}
	if cfg.Seed != nil {
		opts = append(opts, builtin.WithSeed(*cfg.Seed))
	}
	registry = builtin.NewRegistry(opts...)

	logger.WithFields(logrus.Fields{
		"config":        configPath,
		"output":        cfg.Output,
		"defaultFormat": format,
		"seeded":        cfg.Seed != nil,
	}).Debug("runtime ready")
	return nil
}

// newFormatter builds the configured output formatter on cmd's stdout.
func newFormatter(cmd *cobra.Command) (output.Formatter, error) {
	f, err := output.New(settings.Output, cmd.OutOrStdout(), settings.GetVerbose(), settings.GetNoColor())
	if err != nil {
		return nil, withExitCode(ExitConfigError, err)
	}
	return f, nil
}

// flush writes accumulated output for formatters that buffer.
func flush(f output.Formatter, d time.Duration) error {
	if flushable, ok := f.(output.Flushable); ok {
		if err := flushable.Flush(d); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}
	return nil
}

// skipRuntime is installed on commands that never evaluate expressions so a
// broken config file does not stop them.
func skipRuntime(cmd *cobra.Command, args []string) error {
	return nil
}
