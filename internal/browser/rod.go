package browser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/MegandM/web-scrape/internal/config"
	"github.com/MegandM/web-scrape/internal/fetcher"
	"github.com/MegandM/web-scrape/internal/observability"
	"github.com/MegandM/web-scrape/internal/scraper"
)

type RodSession struct {
	launcher    *launcher.Launcher
	browser     *rod.Browser
	page        *rod.Page
	pageTimeout time.Duration
	waitLoad    bool
	rateLimiter *fetcher.RateLimiter
	logger      *observability.Logger
	closer      closeOnce
}

// NewRodOpener returns an Opener that launches webdriver_path via go-rod.
func NewRodOpener(cfg *config.Config, logger *observability.Logger, rl *fetcher.RateLimiter) Opener {
	return func(ctx context.Context) (scraper.Session, error) {
		return OpenRod(ctx, cfg, logger, rl)
	}
}

func OpenRod(ctx context.Context, cfg *config.Config, logger *observability.Logger, rl *fetcher.RateLimiter) (*RodSession, error) {
	l := launcher.New().
		Context(ctx).
		Bin(cfg.WebdriverPath).
		Headless(cfg.Headless()).
		NoSandbox(cfg.Rod.NoSandbox)

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser %s: %w", cfg.WebdriverPath, err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	logger.Info("Web driver started", "bin", cfg.WebdriverPath, "headless", cfg.Headless())

	return &RodSession{
		launcher:    l,
		browser:     browser,
		page:        page,
		pageTimeout: cfg.GetRodPageTimeout(),
		waitLoad:    cfg.Rod.WaitLoad,
		rateLimiter: rl,
		logger:      logger,
	}, nil
}

// bind привязывает страницу к контексту запуска и таймауту из конфига
func (s *RodSession) bind(ctx context.Context) (*rod.Page, context.CancelFunc) {
	if s.pageTimeout > 0 {
		ctx, cancel := context.WithTimeout(ctx, s.pageTimeout)
		return s.page.Context(ctx), cancel
	}
	return s.page.Context(ctx), func() {}
}

func (s *RodSession) Navigate(ctx context.Context, rawURL string) error {
	if u, err := url.Parse(rawURL); err == nil {
		if err := s.rateLimiter.Wait(ctx, u.Host); err != nil {
			return err
		}
	}

	p, cancel := s.bind(ctx)
	defer cancel()

	if err := p.Navigate(rawURL); err != nil {
		return err
	}
	// Без wait_load ждём только возврата Navigate: медленные страницы
	// могут отдать неполную таблицу
	if s.waitLoad {
		if err := p.WaitLoad(); err != nil {
			return err
		}
	}
	s.logger.Debug("Opening page", "url", rawURL)
	return nil
}

func (s *RodSession) FindAll(ctx context.Context, locator scraper.Locator) ([]string, error) {
	p, cancel := s.bind(ctx)
	defer cancel()

	elements, err := p.ElementsX(locator.String())
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(elements))
	for _, el := range elements {
		text, err := el.Text()
		if err != nil {
			return nil, err
		}
		values = append(values, text)
	}
	return values, nil
}

func (s *RodSession) Close() error {
	return s.closer.do(func() error {
		err := errors.Join(s.page.Close(), s.browser.Close())
		s.launcher.Kill()
		s.launcher.Cleanup()
		s.logger.Info("Web driver closed")
		return err
	})
}
