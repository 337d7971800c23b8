package scraper

import (
	"context"

	"github.com/MegandM/web-scrape/internal/observability"
)

type AggregateOptions struct {
	// SingleNavigation загружает страницу сезона один раз для обоих локаторов
	SingleNavigation bool
	// StrictPairing turns a name/salary length mismatch into a TruncatedError.
	StrictPairing bool
}

type Aggregator struct {
	extractor *Extractor
	logger    *observability.Logger
	opts      AggregateOptions
}

func NewAggregator(extractor *Extractor, logger *observability.Logger, opts AggregateOptions) *Aggregator {
	return &Aggregator{
		extractor: extractor,
		logger:    logger,
		opts:      opts,
	}
}

// Aggregate обходит сезоны [firstYear, lastYear) по возрастанию.
// lastYear не включается: последний сезон начинается в lastYear-1.
func (a *Aggregator) Aggregate(ctx context.Context, site Site, firstYear, lastYear int) (*Table, error) {
	table := NewTable()

	nameLocator := BuildLocator(site.NameFragment)
	salaryLocator := BuildLocator(site.SalaryFragment)

	a.logger.Info("Starting season loop",
		"site", site.Name,
		"first_year", firstYear,
		"last_year", lastYear,
		"name_locator", nameLocator.String(),
		"salary_locator", salaryLocator.String(),
	)

	for year := firstYear; year < lastYear; year++ {
		if err := ctx.Err(); err != nil {
			return table, err
		}

		url := BuildURL(site.Website, year)
		a.logger.Debug("Opening season page", "year", year, "url", url)

		names, salaries, err := a.extract(ctx, url, nameLocator, salaryLocator)
		if err != nil {
			a.logger.Error("Extraction failed", "year", year, "url", url, "error", err.Error())
			return table, err
		}

		if len(names) == 0 || len(salaries) == 0 {
			a.logger.Debug("Locator matched no elements",
				"year", year,
				"names", len(names),
				"salaries", len(salaries),
			)
		}

		res := Pair(names, salaries, year)
		if res.Status == Truncated {
			a.logger.Warn("Name and salary lists differ in length",
				"year", year,
				"expected", res.Expected,
				"actual", res.Actual,
			)
			if a.opts.StrictPairing {
				return table, &TruncatedError{Season: year, Expected: res.Expected, Actual: res.Actual}
			}
		}

		table.Append(res.Rows...)
		a.logger.Debug("Concatenated season data", "year", year, "rows", len(res.Rows), "total", table.Len())
	}

	a.logger.Info("Season loop completed", "site", site.Name, "rows", table.Len())
	return table, nil
}

func (a *Aggregator) extract(ctx context.Context, url string, nameLocator, salaryLocator Locator) ([]string, []string, error) {
	if a.opts.SingleNavigation {
		lists, err := a.extractor.ExtractAll(ctx, url, nameLocator, salaryLocator)
		if err != nil {
			return nil, nil, err
		}
		return lists[0], lists[1], nil
	}

	// Страница сезона грузится дважды - по разу на каждый локатор
	names, err := a.extractor.Extract(ctx, url, nameLocator)
	if err != nil {
		return nil, nil, err
	}
	salaries, err := a.extractor.Extract(ctx, url, salaryLocator)
	if err != nil {
		return nil, nil, err
	}
	return names, salaries, nil
}
