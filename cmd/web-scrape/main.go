package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MegandM/web-scrape/internal/app"
	"github.com/MegandM/web-scrape/internal/config"
	"github.com/MegandM/web-scrape/internal/observability"
	"github.com/MegandM/web-scrape/internal/storage"
	"github.com/MegandM/web-scrape/internal/storage/mssql"
)

var (
	configPath string
	args       app.Args
)

var rootCmd = &cobra.Command{
	Use:           "web-scrape --website nba --first_year 2000 --last_year 2005",
	Short:         "Scrapes player salaries for a range of seasons into a CSV file.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := args.Validate(); err != nil {
			return err
		}
		return run(cmd.Context())
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&args.Website, "website", "w", "", "website to scrape (nba|other)")
	flags.IntVar(&args.FirstYear, "first_year", 0, "first season start year, e.g. 1990")
	flags.IntVar(&args.LastYear, "last_year", 0, "season start year to stop before, e.g. 2000")
	flags.StringVar(&configPath, "config", "config.yml", "path to the YAML config file")

	for _, name := range []string{"website", "first_year", "last_year"} {
		_ = rootCmd.MarkFlagRequired(name)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(observability.Options{
		Path:      cfg.Observability.LogPath,
		Level:     cfg.Observability.LogLevel,
		Overwrite: cfg.OverwriteLog(),
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logger.Close() }()

	ctx, cancel := app.GracefulShutdown(ctx, logger)
	defer cancel()

	opts := []app.Option{app.WithSummary(os.Stdout)}
	if cfg.Storage.Driver == "mssql" {
		opts = append(opts, app.WithRepository(func() (storage.Repository, error) {
			repo, err := mssql.NewRepository(cfg.Storage.DSN, cfg.GetCommandTimeout(), logger)
			if err != nil {
				return nil, err
			}
			return repo, nil
		}))
	}

	o := app.NewOrchestrator(cfg, logger, app.NewOpener(cfg, logger), opts...)
	stats, err := o.Run(ctx, args)
	if err != nil {
		return err
	}

	if stats.Skipped {
		fmt.Printf("✓ No scraper for %q, nothing written, no output directory created\n", stats.Site)
		return nil
	}
	fmt.Printf("✓ %d rows from %d seasons written to %s\n", stats.Rows, stats.Seasons, stats.OutputPath)
	for _, c := range stats.Short {
		fmt.Printf("✗ season %d: %d of %d rows in storage\n", c.Season, c.Stored, c.Scraped)
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
