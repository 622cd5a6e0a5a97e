package recipebook

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/recipebook/internal/config"
	"github.com/ytget/recipebook/internal/recipeapi"
)

// Version is set during build via -ldflags "-X github.com/ytget/recipebook/cmd/recipebook.version=X.Y.Z"
var version = "dev"

var (
	cfgFile string
	v       *viper.Viper
)

var rootCmd = &cobra.Command{
	Use:   "recipebook",
	Short: "recipebook browses and edits the DummyJSON recipe catalog",
	Long: "recipebook is a desktop recipe catalog backed by the DummyJSON recipes API. " +
		"Run it without a command to open the window, or use the commands below from a terminal.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v = config.NewViper()
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("failed to bind flags: %w", err)
		}
		return config.ReadConfigFile(v, cfgFile)
	},
	RunE: runGUI,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Path to config file (default is $XDG_CONFIG_HOME/recipebook/config.yaml)")
	flags.String(config.OptAPIURL, config.DefaultAPIURL, "Recipes API base URL")
	flags.Duration(config.OptTimeout, config.DefaultTimeout, "Timeout for each API request")
	flags.String(config.OptLogLevel, config.DefaultLogLevel, "Log level (debug, info, warn, error)")

	rootCmd.Flags().Duration(config.OptDebounce, config.DefaultDebounce, "Delay before a search or filter change is fetched")
	rootCmd.Flags().String(config.OptLanguage, "", "Interface language (system, en, ru, pt)")
}

// loadOptions resolves flags, environment and config file into Options and
// installs the process logger
func loadOptions() (config.Options, *slog.Logger, error) {
	if v == nil {
		v = config.NewViper()
	}
	opts, err := config.LoadOptions(v)
	if err != nil {
		return config.Options{}, nil, err
	}
	logger := config.NewLogger(opts)
	slog.SetDefault(logger)
	return opts, logger, nil
}

// newClient creates the API client for the resolved options
func newClient(opts config.Options, logger *slog.Logger) *recipeapi.Client {
	client := recipeapi.NewClient(opts.APIURL, opts.Timeout)
	client.Logger = logger
	return client
}
