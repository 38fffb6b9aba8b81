package cli

import (
	"fmt"
	"os"

	"github.com/asksunna/salat/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Global flags shared across all subcommands.
var (
	FlagConfig     string
	FlagLatitude   float64
	FlagLongitude  float64
	FlagAddress    string
	FlagMethod     int
	FlagJSON       bool
	FlagDBPath     string
	FlagNoCache    bool
	FlagTimeFormat string
)

// loadedConfig holds the config loaded during PersistentPreRunE.
var loadedConfig *config.Config

// NewRootCmd creates the root command for the salat CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "salat",
		Short:   "Prayer times with offline fallback",
		Long:    "Prayer times from the Al Adhan API, with a local astronomical fallback when the network is unavailable.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(FlagConfig)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			loadedConfig = cfg
			setupLogging(cfg.Log.Level)
			return nil
		},
		// Default action: show today's prayer schedule.
		RunE:          runToday,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&FlagConfig, "config", "c", "", "Config file path")
	pf.Float64Var(&FlagLatitude, "latitude", 0, "Override latitude")
	pf.Float64Var(&FlagLongitude, "longitude", 0, "Override longitude")
	pf.StringVar(&FlagAddress, "address", "", "Free-text address (takes precedence over coordinates)")
	pf.IntVar(&FlagMethod, "method", -1, "Calculation method id (see 'salat methods')")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON")
	pf.StringVar(&FlagDBPath, "db", "", "Persistent cache path (default: user cache dir)")
	pf.BoolVar(&FlagNoCache, "no-cache", false, "Disable the persistent cache")
	pf.StringVar(&FlagTimeFormat, "time-format", "", "Time format: 12h or 24h")

	rootCmd.AddCommand(newTodayCmd())
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newCalendarCmd())
	rootCmd.AddCommand(newMethodsCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// setupLogging configures the global zerolog logger for CLI use:
// human-readable output on stderr at the configured level.
func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// effectiveConfig returns the merged configuration values, applying
// the priority: CLI flags > config file > defaults.
func effectiveConfig(cmd *cobra.Command) *config.Config {
	cfg := loadedConfig
	if cfg == nil {
		empty := config.Config{Method: 3, TimeFormat: "24h"}
		cfg = &empty
	}

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	if flagWasSet(flags, root, "latitude") {
		cfg.Location.Latitude = FlagLatitude
	}
	if flagWasSet(flags, root, "longitude") {
		cfg.Location.Longitude = FlagLongitude
	}
	if flagWasSet(flags, root, "address") {
		cfg.Location.Address = FlagAddress
	}
	if flagWasSet(flags, root, "method") {
		cfg.Method = FlagMethod
	}
	if flagWasSet(flags, root, "db") {
		cfg.Cache.Path = FlagDBPath
	}
	if flagWasSet(flags, root, "no-cache") {
		cfg.Cache.Disabled = FlagNoCache
	}
	if flagWasSet(flags, root, "time-format") {
		cfg.TimeFormat = FlagTimeFormat
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = "24h"
	}

	return cfg
}

// flagWasSet checks whether a flag was explicitly set on either the
// local or persistent flag set.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	if f := local.Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}
