package browser

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MegandM/web-scrape/internal/config"
	"github.com/MegandM/web-scrape/internal/fetcher"
	"github.com/MegandM/web-scrape/internal/observability"
	"github.com/MegandM/web-scrape/internal/scraper"
)

// Нужен настоящий браузер: WEB_SCRAPE_CHROME=/usr/bin/chromium go test ./...
func newRodSession(t *testing.T) (*RodSession, *httptest.Server) {
	t.Helper()
	bin := os.Getenv("WEB_SCRAPE_CHROME")
	if bin == "" || testing.Short() {
		t.Skip("WEB_SCRAPE_CHROME not set, skipping browser test")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = fmt.Fprintf(w, seasonPage, r.URL.Path)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		WebdriverPath: bin,
		Rod: config.RodConfig{
			NoSandbox:    true,
			PageTimeoutS: 30,
			WaitLoad:     true,
		},
	}
	cfg.ApplyDefaults()

	s, err := OpenRod(context.Background(), cfg, observability.NewNop(), fetcher.NewRateLimiter(0))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, srv
}

func TestRodSessionFindAll(t *testing.T) {
	s, srv := newRodSession(t)
	ctx := context.Background()

	require.NoError(t, s.Navigate(ctx, srv.URL+"/2019-2020/"))

	names, err := s.FindAll(ctx, scraper.BuildLocator("name"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Player", "Stephen Curry", "Chris Paul"}, names)

	salaries, err := s.FindAll(ctx, scraper.BuildLocator("hh-salaries-sorted"))
	require.NoError(t, err)
	assert.Equal(t, []string{"/2019-2020/", "$37,457,154", "$35,654,150"}, salaries)

	// Пустой результат - не ошибка
	none, err := s.FindAll(ctx, scraper.BuildLocator("missing"))
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestRodSessionAggregate(t *testing.T) {
	s, srv := newRodSession(t)

	agg := scraper.NewAggregator(scraper.NewExtractor(s, nil), observability.NewNop(), scraper.AggregateOptions{})
	table, err := agg.Aggregate(context.Background(), scraper.Site{
		Name:           "nba",
		Website:        srv.URL + "/",
		NameFragment:   "name",
		SalaryFragment: "hh-salaries-sorted",
	}, 2017, 2019)
	require.NoError(t, err)

	assert.Equal(t, 4, table.Len())
	assert.Equal(t, scraper.Row{Name: "Stephen Curry", Salary: "$37,457,154", Season: 2017}, table.Rows[0])
}
