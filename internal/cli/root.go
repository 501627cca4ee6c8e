package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ghseek/internal/config"
)

// Version is set at build time
var Version = "dev"

type options struct {
	configPath  string
	query       string
	apiURL      string
	perPage     int
	debounce    time.Duration
	logFile     string
	logLevel    string
	noAltScreen bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{})
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ghseek",
		Short: "Search GitHub users from the terminal",
		Long: `ghseek searches GitHub users as you type. Results load page by page
while you scroll; enter opens the selected profile in the browser.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: "+config.DefaultPath()+")")
	flags.StringVarP(&opts.query, "query", "q", "", "Initial query")
	flags.StringVar(&opts.apiURL, "api-url", "", "User search endpoint")
	flags.IntVar(&opts.perPage, "per-page", 0, "Results per page (1-100)")
	flags.DurationVar(&opts.debounce, "debounce", 0, "Quiet period before a query is searched")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "Render inline instead of the alternate screen")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ghseek %s\n", Version)
		},
	}
}

func runRoot(cmd *cobra.Command, opts *options) error {
	cfg, path, created, err := buildConfig(cmd.Flags(), opts)
	if err != nil {
		return fmt.Errorf("failed to build config: %w", err)
	}

	app, err := bootstrapApp(cfg, opts.query)
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}
	defer app.Close()

	app.log.Infof("config loaded from %s (created=%t)", path, created)
	return app.Run()
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// buildConfig loads the config file, then applies environment and flags
func buildConfig(flags *pflag.FlagSet, opts *options) (*config.Config, string, bool, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, created, err := config.NewConfigService().LoadOrCreate(path)
	if err != nil {
		return nil, "", false, err
	}
	applyFlags(flags, opts, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, "", false, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, path, created, nil
}

// applyFlags copies explicitly set flags over cfg
func applyFlags(flags *pflag.FlagSet, opts *options, cfg *config.Config) {
	if flags.Changed("api-url") {
		cfg.Search.APIURL = opts.apiURL
	}
	if flags.Changed("per-page") {
		cfg.Search.PerPage = opts.perPage
	}
	if flags.Changed("debounce") {
		cfg.Search.DebounceMs = int(opts.debounce.Milliseconds())
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if opts.noAltScreen {
		cfg.UI.AltScreen = false
	}
}
