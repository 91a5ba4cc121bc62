package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/a1s/w1s/internal/config"
	"github.com/a1s/w1s/internal/config/data"
	"github.com/a1s/w1s/internal/view"
)

const (
	appName    = config.AppName
	appVersion = "0.1.0"
)

var (
	w1sFlags *data.Flags
	rootCmd  = &cobra.Command{
		Use:          appName,
		Short:        "A terminal browser for the countries GraphQL API",
		Long:         `w1s lists countries in a sortable, filterable, paged table next to a chart of countries per continent.`,
		RunE:         run,
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, appVersion)
		},
	}
)

func init() {
	w1sFlags = config.NewFlags()
	initW1sFlags()
	rootCmd.AddCommand(versionCmd, newListCmd(), newContinentsCmd(), newProfilesCmd())
}

func initW1sFlags() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(w1sFlags.Endpoint, "endpoint", "", "GraphQL endpoint URL")
	pf.StringVar(w1sFlags.Profile, "profile", "", "Endpoint profile to use")
	pf.IntVar(w1sFlags.PageSize, "page-size", 0, "Rows per table page")
	pf.StringVar(w1sFlags.Locale, "locale", "", "Collation locale used for sorting")
	pf.StringVar(w1sFlags.Timeout, "timeout", "", "API timeout, e.g. 10s")
	pf.IntVar(w1sFlags.Retries, "retries", 0, "Max attempts per query")
	pf.StringVarP(w1sFlags.LogLevel, "logLevel", "l", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	pf.StringVar(w1sFlags.LogFile, "logFile", "", "Log file path")

	rootCmd.Flags().BoolVar(w1sFlags.Headless, "headless", false, "Print the first page and the continent tallies instead of starting the UI")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	e, err := bootstrap(w1sFlags)
	if err != nil {
		return err
	}
	defer e.close()

	if e.cfg.W1s.UI.Headless {
		return runHeadless(cmd.Context(), cmd.OutOrStdout(), e)
	}

	app := view.NewApp(e.cfg, appVersion)
	app.SetLogger(e.logger)
	app.SetFactory(e.factory)
	app.SetCache(e.cache)
	if err := app.Init(); err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run()
}
