package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/MegandM/web-scrape/internal/scraper"
)

// SiteConfig описывает один сайт: базовый URL сезонов и фрагменты XPath
type SiteConfig struct {
	Website              string `yaml:"website"`
	XPathPlayersName     string `yaml:"xpath_players_name"`
	XPathPlayersSalaries string `yaml:"xpath_players_salaries"`
}

// MissingFieldError is returned when a required configuration key is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required config field %q", e.Field)
}

// UnknownKeyError is returned for a top-level key that is neither an
// ambient section nor a site the command line accepts.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown config key %q (sites: %v)", e.Key, scraper.Known)
}

// validateSites проверяет только сайты с реализованной раскладкой;
// заготовки вроде "other" могут быть пустыми
func (c *Config) validateSites() error {
	for _, name := range slices.Sorted(maps.Keys(c.Sites)) {
		if !slices.Contains(scraper.Known, name) {
			return &UnknownKeyError{Key: name}
		}
		if !scraper.Supported(name) {
			continue
		}
		if err := c.Sites[name].validate(name); err != nil {
			return err
		}
	}
	return nil
}

// Site возвращает настройки сайта по идентификатору из командной строки
func (c *Config) Site(name string) (SiteConfig, error) {
	site, ok := c.Sites[name]
	if !ok {
		return SiteConfig{}, &MissingFieldError{Field: name}
	}
	return site, nil
}

func (s SiteConfig) validate(name string) error {
	if s.Website == "" {
		return &MissingFieldError{Field: name + ".website"}
	}
	if s.XPathPlayersName == "" {
		return &MissingFieldError{Field: name + ".xpath_players_name"}
	}
	if s.XPathPlayersSalaries == "" {
		return &MissingFieldError{Field: name + ".xpath_players_salaries"}
	}
	return nil
}
