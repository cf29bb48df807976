package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/clocked/internal/clocked"
	"github.com/Tiliavir/clocked/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "clocked",
	Short: "clocked – clock in and out against a remote time service",
	Long: `clocked stamps "in" and "out" events to a time-tracking service, pairs them
into work sessions and prints daily summaries. It can also estimate hours
worked from version-control history.

Settings live in ~/.clocked/config.json; the API key is read from
~/.clocked.io.apikey.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.clocked/config.json)")

	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(hoursCmd)
}

// loadConfig reads the config file, exiting on a malformed file.
func loadConfig() config.Config {
	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fail(2, err)
	}
	return cfg
}

// reportLocation resolves the configured timezone, falling back to local time.
func reportLocation(cfg config.Config) *time.Location {
	if cfg.Report.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s unknown timezone %q, using local time\n",
			styleWarning.Render("Warning:"), cfg.Report.Timezone)
		return time.Local
	}
	return loc
}

// newClient builds a service client from cfg. A missing API key is fatal.
func newClient(ctx context.Context, cfg config.Config) *clocked.Client {
	auth, err := clocked.ParseAuthStyle(cfg.Service.Auth)
	if err != nil {
		fail(1, err)
	}
	key, err := clocked.LoadAPIKey(cfg.Service.APIKeyFile)
	if err != nil {
		fail(2, err)
	}
	return clocked.NewClient(ctx, clocked.Options{
		BaseURL: cfg.Service.BaseURL,
		APIKey:  key,
		Auth:    auth,
	})
}

// fail prints err and exits with code.
func fail(code int, err error) {
	fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
	os.Exit(code)
}
