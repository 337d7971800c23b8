package storage

import (
	"context"
	"fmt"

	"github.com/MegandM/web-scrape/internal/checksum"
	"github.com/MegandM/web-scrape/internal/scraper"
)

type SaveStats struct {
	Inserted int
	Existing int
}

// SaveTable пишет все строки таблицы; уже известные строки пропускаются
func SaveTable(ctx context.Context, repo Repository, gen *checksum.Generator, site string, table *scraper.Table) (SaveStats, error) {
	var stats SaveStats
	for _, row := range table.Rows {
		rec := &SeasonRecord{
			Site:     site,
			Name:     row.Name,
			Salary:   row.Salary,
			Season:   row.Season,
			CheckSum: gen.GenerateRowHash(site, row.Name, row.Salary, row.Season),
		}

		isNew, err := repo.InsertRow(ctx, rec)
		if err != nil {
			return stats, fmt.Errorf("save %s season %d: %w", row.Name, row.Season, err)
		}
		if isNew {
			stats.Inserted++
		} else {
			stats.Existing++
		}
	}
	return stats, nil
}

// SeasonCheck сравнивает число строк сезона в таблице и в БД
type SeasonCheck struct {
	Season  int
	Scraped int
	Stored  int
}

// Missing reports whether the store holds fewer rows than were scraped.
func (c SeasonCheck) Missing() bool {
	return c.Stored < c.Scraped
}

// CheckSeasons читает из БД количество строк по каждому сезону таблицы
func CheckSeasons(ctx context.Context, repo Repository, site string, table *scraper.Table) ([]SeasonCheck, error) {
	counts := table.SeasonCounts()
	checks := make([]SeasonCheck, 0, len(counts))
	for _, c := range counts {
		stored, err := repo.GetSeasonCount(ctx, site, c.Season)
		if err != nil {
			return checks, fmt.Errorf("count season %d: %w", c.Season, err)
		}
		checks = append(checks, SeasonCheck{Season: c.Season, Scraped: c.Rows, Stored: stored})
	}
	return checks, nil
}
