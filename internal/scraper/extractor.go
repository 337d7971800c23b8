package scraper

import (
	"context"
	"fmt"
)

// Session - то, что ядру нужно от браузера
type Session interface {
	Navigate(ctx context.Context, url string) error
	// FindAll returns the visible text of every match in document order;
	// no matches is an empty slice, not an error.
	FindAll(ctx context.Context, locator Locator) ([]string, error)
	Close() error
}

type Extractor struct {
	session Session
	clean   func(string) string
}

// NewExtractor; clean may be nil to keep the text exactly as the page has it.
func NewExtractor(session Session, clean func(string) string) *Extractor {
	return &Extractor{session: session, clean: clean}
}

// Extract открывает url и собирает тексты по локатору.
// Кэша нет: каждый вызов заново загружает страницу.
func (e *Extractor) Extract(ctx context.Context, url string, locator Locator) ([]string, error) {
	if err := e.session.Navigate(ctx, url); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", url, err)
	}
	return e.find(ctx, locator)
}

// ExtractAll loads url once and evaluates every locator against that page.
func (e *Extractor) ExtractAll(ctx context.Context, url string, locators ...Locator) ([][]string, error) {
	if err := e.session.Navigate(ctx, url); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", url, err)
	}

	lists := make([][]string, 0, len(locators))
	for _, locator := range locators {
		values, err := e.find(ctx, locator)
		if err != nil {
			return nil, err
		}
		lists = append(lists, values)
	}
	return lists, nil
}

func (e *Extractor) find(ctx context.Context, locator Locator) ([]string, error) {
	values, err := e.session.FindAll(ctx, locator)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", locator, err)
	}
	if e.clean != nil {
		for i, v := range values {
			values[i] = e.clean(v)
		}
	}
	return values, nil
}
