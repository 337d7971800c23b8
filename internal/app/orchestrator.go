package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/MegandM/web-scrape/internal/browser"
	"github.com/MegandM/web-scrape/internal/checksum"
	"github.com/MegandM/web-scrape/internal/config"
	"github.com/MegandM/web-scrape/internal/normalize"
	"github.com/MegandM/web-scrape/internal/observability"
	"github.com/MegandM/web-scrape/internal/output"
	"github.com/MegandM/web-scrape/internal/scraper"
	"github.com/MegandM/web-scrape/internal/storage"
)

type Orchestrator struct {
	cfg       *config.Config
	logger    *observability.Logger
	open      browser.Opener
	newRepo   func() (storage.Repository, error)
	outputDir string
	summary   io.Writer
}

type Option func(*Orchestrator)

// WithRepository включает сохранение таблицы в БД после записи CSV
func WithRepository(newRepo func() (storage.Repository, error)) Option {
	return func(o *Orchestrator) { o.newRepo = newRepo }
}

// WithOutputDir задаёт корень для <website>/<first>-<last>/results.csv
func WithOutputDir(dir string) Option {
	return func(o *Orchestrator) { o.outputDir = dir }
}

// WithSummary renders the per-season row counts to w after a run.
func WithSummary(w io.Writer) Option {
	return func(o *Orchestrator) { o.summary = w }
}

func NewOrchestrator(cfg *config.Config, logger *observability.Logger, open browser.Opener, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg:    cfg,
		logger: logger,
		open:   open,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type RunStats struct {
	Site       string
	Seasons    int
	Rows       int
	OutputPath string
	Skipped    bool // сайт без реализованной раскладки
	Saved      storage.SaveStats
	Short      []storage.SeasonCheck // сезоны, где в БД меньше строк, чем собрано
}

// Run запускает один проход: браузер, цикл по сезонам, CSV, опционально БД
func (o *Orchestrator) Run(ctx context.Context, args Args) (*RunStats, error) {
	stats := &RunStats{Site: args.Website}

	supported := scraper.Supported(args.Website)
	var site scraper.Site
	if supported {
		siteCfg, err := o.cfg.Site(args.Website)
		if err != nil {
			return stats, err
		}
		site = scraper.Site{
			Name:           args.Website,
			Website:        siteCfg.Website,
			NameFragment:   siteCfg.XPathPlayersName,
			SalaryFragment: siteCfg.XPathPlayersSalaries,
		}
	}

	o.logger.Info("Starting run",
		"website", args.Website,
		"first_year", args.FirstYear,
		"last_year", args.LastYear,
		"engine", o.cfg.Engine,
	)

	var table *scraper.Table
	err := browser.WithSession(ctx, o.open, func(session scraper.Session) error {
		if !supported {
			o.logger.Warn("No scraper for website, nothing to collect, no output directory created",
				"website", args.Website,
				"output_dir", filepath.Join(o.outputDir, output.Dir(args.Website, args.FirstYear, args.LastYear)),
			)
			return nil
		}

		clean := normalize.NewNormalizer(o.cfg.Normalize).Func()
		agg := scraper.NewAggregator(scraper.NewExtractor(session, clean), o.logger.With("site", site.Name), scraper.AggregateOptions{
			SingleNavigation: o.cfg.Scrape.SingleNavigation,
			StrictPairing:    o.cfg.Scrape.StrictPairing,
		})

		var err error
		table, err = agg.Aggregate(ctx, site, args.FirstYear, args.LastYear)
		return err
	})
	if err != nil {
		o.logger.Error("Run failed", "website", args.Website, "error", err.Error())
		return stats, err
	}

	if !supported {
		stats.Skipped = true
		return stats, nil
	}

	stats.Rows = table.Len()
	stats.Seasons = len(table.SeasonCounts())
	stats.OutputPath = filepath.Join(o.outputDir, output.Path(args.Website, args.FirstYear, args.LastYear))

	if err := output.WriteCSV(stats.OutputPath, table); err != nil {
		return stats, fmt.Errorf("write %s: %w", stats.OutputPath, err)
	}
	o.logger.Info("Data stored", "path", stats.OutputPath, "rows", stats.Rows)

	if o.newRepo != nil {
		saved, short, err := o.save(ctx, args.Website, table)
		stats.Saved = saved
		stats.Short = short
		if err != nil {
			return stats, err
		}
	}

	if o.summary != nil {
		output.RenderSummary(o.summary, args.Website, table)
	}

	return stats, nil
}

func (o *Orchestrator) save(ctx context.Context, site string, table *scraper.Table) (storage.SaveStats, []storage.SeasonCheck, error) {
	repo, err := o.newRepo()
	if err != nil {
		return storage.SaveStats{}, nil, fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			o.logger.Error("Failed to close storage", "error", err.Error())
		}
	}()

	saved, err := storage.SaveTable(ctx, repo, checksum.NewGenerator(), site, table)
	if err != nil {
		return saved, nil, err
	}
	o.logger.Info("Rows saved to storage", "inserted", saved.Inserted, "existing", saved.Existing)

	// Сверяем количество строк по сезонам с тем, что собрали
	checks, err := storage.CheckSeasons(ctx, repo, site, table)
	if err != nil {
		return saved, nil, fmt.Errorf("check storage: %w", err)
	}

	var short []storage.SeasonCheck
	for _, c := range checks {
		if c.Missing() {
			o.logger.Warn("Storage holds fewer rows than scraped",
				"season", c.Season,
				"scraped", c.Scraped,
				"stored", c.Stored,
			)
			short = append(short, c)
		}
	}
	return saved, short, nil
}
