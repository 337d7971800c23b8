package app

import (
	"github.com/MegandM/web-scrape/internal/browser"
	"github.com/MegandM/web-scrape/internal/config"
	"github.com/MegandM/web-scrape/internal/fetcher"
	"github.com/MegandM/web-scrape/internal/observability"
)

// NewOpener выбирает движок по cfg.Engine
func NewOpener(cfg *config.Config, logger *observability.Logger) browser.Opener {
	rl := fetcher.NewRateLimiter(cfg.RateLimit.RPM)
	if cfg.Engine == config.EngineHTTP {
		return browser.NewStaticOpener(fetcher.NewFetcher(cfg, logger, rl), logger)
	}
	return browser.NewRodOpener(cfg, logger, rl)
}
