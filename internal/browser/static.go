package browser

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/MegandM/web-scrape/internal/fetcher"
	"github.com/MegandM/web-scrape/internal/observability"
	"github.com/MegandM/web-scrape/internal/scraper"
)

// StaticSession отдаёт страницы без браузера: GET + goquery.
// Годится для сайтов, где таблица есть прямо в HTML ответа.
type StaticSession struct {
	fetcher *fetcher.Fetcher
	logger  *observability.Logger
	doc     *goquery.Document
	closer  closeOnce
}

func NewStaticOpener(f *fetcher.Fetcher, logger *observability.Logger) Opener {
	return func(ctx context.Context) (scraper.Session, error) {
		logger.Info("Static session started")
		return &StaticSession{fetcher: f, logger: logger}, nil
	}
}

func (s *StaticSession) Navigate(ctx context.Context, url string) error {
	resp, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	// Как и браузер, статус ответа не проверяем: страница ошибки просто
	// не содержит нужных ячеек
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return fmt.Errorf("failed to parse HTML: %w", err)
	}
	s.doc = doc
	s.logger.Debug("Opening page", "url", url, "status", resp.StatusCode)
	return nil
}

func (s *StaticSession) FindAll(_ context.Context, locator scraper.Locator) ([]string, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("no page loaded")
	}

	css, err := locator.CSS()
	if err != nil {
		return nil, err
	}
	sel, err := cascadia.Compile(css)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", css, err)
	}

	var values []string
	s.doc.FindMatcher(sel).Each(func(_ int, cell *goquery.Selection) {
		values = append(values, strings.TrimSpace(cell.Text()))
	})
	return values, nil
}

func (s *StaticSession) Close() error {
	return s.closer.do(func() error {
		s.doc = nil
		s.logger.Info("Static session closed")
		return nil
	})
}
