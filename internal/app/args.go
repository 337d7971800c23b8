package app

import (
	"fmt"
	"slices"

	"github.com/MegandM/web-scrape/internal/scraper"
)

// Допустимые годы: как range(1990, 2020) - 2019 включительно
const (
	MinYear = 1990
	MaxYear = 2019
)

// Args - параметры запуска из командной строки
type Args struct {
	Website   string
	FirstYear int
	LastYear  int
}

// Validate checks the website choice and year bounds. first_year >= last_year
// is allowed and simply yields an empty season loop.
func (a Args) Validate() error {
	if !slices.Contains(scraper.Known, a.Website) {
		return fmt.Errorf("invalid website %q (choose from %v)", a.Website, scraper.Known)
	}
	if a.FirstYear < MinYear || a.FirstYear > MaxYear {
		return fmt.Errorf("first_year %d out of range [%d, %d]", a.FirstYear, MinYear, MaxYear)
	}
	if a.LastYear < MinYear || a.LastYear > MaxYear {
		return fmt.Errorf("last_year %d out of range [%d, %d]", a.LastYear, MinYear, MaxYear)
	}
	return nil
}
