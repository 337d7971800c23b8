package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MegandM/web-scrape/internal/scraper"
)

// Opener запускает браузер и возвращает готовую сессию
type Opener func(ctx context.Context) (scraper.Session, error)

// WithSession opens one session, runs fn and closes the session exactly once,
// also when fn returns an error or panics.
func WithSession(ctx context.Context, open Opener, fn func(scraper.Session) error) (err error) {
	session, err := open(ctx)
	if err != nil {
		return fmt.Errorf("start browser: %w", err)
	}

	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close browser: %w", closeErr))
		}
	}()

	return fn(session)
}

// closeOnce делает Close идемпотентным для всех движков
type closeOnce struct {
	once sync.Once
	err  error
}

func (c *closeOnce) do(fn func() error) error {
	c.once.Do(func() { c.err = fn() })
	return c.err
}
