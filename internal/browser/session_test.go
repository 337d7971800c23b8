package browser

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MegandM/web-scrape/internal/config"
	"github.com/MegandM/web-scrape/internal/fetcher"
	"github.com/MegandM/web-scrape/internal/observability"
	"github.com/MegandM/web-scrape/internal/scraper"
)

type countingSession struct {
	closed int
}

func (c *countingSession) Navigate(context.Context, string) error { return nil }

func (c *countingSession) FindAll(context.Context, scraper.Locator) ([]string, error) {
	return nil, nil
}

func (c *countingSession) Close() error {
	c.closed++
	return nil
}

func openerFor(s scraper.Session) Opener {
	return func(context.Context) (scraper.Session, error) { return s, nil }
}

func TestWithSessionClosesOnce(t *testing.T) {
	s := &countingSession{}
	err := WithSession(context.Background(), openerFor(s), func(scraper.Session) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 1, s.closed)
}

func TestWithSessionClosesOnError(t *testing.T) {
	s := &countingSession{}
	boom := errors.New("boom")

	err := WithSession(context.Background(), openerFor(s), func(scraper.Session) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, s.closed)
}

func TestWithSessionClosesOnPanic(t *testing.T) {
	s := &countingSession{}

	assert.Panics(t, func() {
		_ = WithSession(context.Background(), openerFor(s), func(scraper.Session) error { panic("loop failure") })
	})
	assert.Equal(t, 1, s.closed)
}

func TestWithSessionOpenFailure(t *testing.T) {
	called := false
	open := func(context.Context) (scraper.Session, error) { return nil, errors.New("no chrome") }

	err := WithSession(context.Background(), open, func(scraper.Session) error {
		called = true
		return nil
	})
	assert.ErrorContains(t, err, "start browser")
	assert.False(t, called)
}

const seasonPage = `<html><body><table>
<tr><td class="name">Player</td><td class="hh-salaries-sorted">%s</td></tr>
<tr><td class="name">Stephen Curry</td><td class="hh-salaries-sorted">$37,457,154</td></tr>
<tr><td class="name">Chris Paul</td><td class="hh-salaries-sorted">$35,654,150</td></tr>
<tr><td class="name-extra">ignored</td></tr>
</table></body></html>`

func newStaticSession(t *testing.T) (scraper.Session, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, seasonPage, r.URL.Path)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{Engine: config.EngineHTTP}
	cfg.ApplyDefaults()
	logger := observability.NewNop()
	f := fetcher.NewFetcher(cfg, logger, fetcher.NewRateLimiter(0))

	s, err := NewStaticOpener(f, logger)(context.Background())
	require.NoError(t, err)
	return s, srv
}

func TestStaticSessionFindAll(t *testing.T) {
	s, srv := newStaticSession(t)
	ctx := context.Background()

	require.NoError(t, s.Navigate(ctx, srv.URL+"/2019-2020/"))

	names, err := s.FindAll(ctx, scraper.BuildLocator("name"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Player", "Stephen Curry", "Chris Paul"}, names)

	salaries, err := s.FindAll(ctx, scraper.BuildLocator("hh-salaries-sorted"))
	require.NoError(t, err)
	assert.Equal(t, []string{"/2019-2020/", "$37,457,154", "$35,654,150"}, salaries)

	none, err := s.FindAll(ctx, scraper.BuildLocator("missing"))
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestStaticSessionAggregate(t *testing.T) {
	s, srv := newStaticSession(t)

	agg := scraper.NewAggregator(scraper.NewExtractor(s, nil), observability.NewNop(), scraper.AggregateOptions{})
	table, err := agg.Aggregate(context.Background(), scraper.Site{
		Name:           "nba",
		Website:        srv.URL + "/",
		NameFragment:   "name",
		SalaryFragment: "hh-salaries-sorted",
	}, 2017, 2019)
	require.NoError(t, err)

	assert.Equal(t, 4, table.Len())
	assert.Equal(t, scraper.Row{Name: "Chris Paul", Salary: "$35,654,150", Season: 2018}, table.Rows[3])
}

func TestStaticSessionRequiresPage(t *testing.T) {
	s, _ := newStaticSession(t)
	_, err := s.FindAll(context.Background(), scraper.BuildLocator("name"))
	assert.Error(t, err)
}
