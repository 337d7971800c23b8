package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `webdriver_path: /usr/bin/chromium
nba:
  website: https://hoopshype.com/salaries/players/
  xpath_players_name: name
  xpath_players_salaries: hh-salaries-sorted
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/usr/bin/chromium", cfg.WebdriverPath)
	assert.Equal(t, EngineRod, cfg.Engine)
	assert.True(t, cfg.Headless())
	assert.True(t, cfg.OverwriteLog())
	assert.Equal(t, "web-scrape.log", cfg.Observability.LogPath)

	site, err := cfg.Site("nba")
	require.NoError(t, err)
	assert.Equal(t, "https://hoopshype.com/salaries/players/", site.Website)
	assert.Equal(t, "name", site.XPathPlayersName)
	assert.Equal(t, "hh-salaries-sorted", site.XPathPlayersSalaries)
}

func TestLoadConfig_AmbientSectionsAreNotSites(t *testing.T) {
	path := writeConfig(t, `webdriver_path: /usr/bin/chromium
engine: http
rod:
  headless: false
  page_timeout_s: 20
rate_limit:
  rpm: 30
scrape:
  single_navigation: true
observability:
  log_level: info
  overwrite: false
nba:
  website: http://x/
  xpath_players_name: a
  xpath_players_salaries: b
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Len(t, cfg.Sites, 1)
	assert.Equal(t, EngineHTTP, cfg.Engine)
	assert.False(t, cfg.Headless())
	assert.False(t, cfg.OverwriteLog())
	assert.Equal(t, 30, cfg.RateLimit.RPM)
	assert.True(t, cfg.Scrape.SingleNavigation)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.Equal(t, "20s", cfg.GetRodPageTimeout().String())
}

func TestLoadConfig_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{
			name:  "webdriver path",
			yaml:  "nba:\n  website: http://x/\n  xpath_players_name: a\n  xpath_players_salaries: b\n",
			field: "webdriver_path",
		},
		{
			name:  "site website",
			yaml:  "webdriver_path: /bin/chrome\nnba:\n  xpath_players_name: a\n  xpath_players_salaries: b\n",
			field: "nba.website",
		},
		{
			name:  "salary fragment",
			yaml:  "webdriver_path: /bin/chrome\nnba:\n  website: http://x/\n  xpath_players_name: a\n",
			field: "nba.xpath_players_salaries",
		},
		{
			name:  "storage dsn",
			yaml:  "webdriver_path: /bin/chrome\nstorage:\n  driver: mssql\n",
			field: "storage.dsn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.yaml))
			require.Error(t, err)

			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
		})
	}
}

func TestLoadConfig_PlaceholderSiteIsNotValidated(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `webdriver_path: /bin/chrome
nba:
  website: http://x/
  xpath_players_name: a
  xpath_players_salaries: b
other:
  website: http://y/
`))
	require.NoError(t, err)
	assert.Len(t, cfg.Sites, 2)
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		key  string
	}{
		{
			name: "misspelled ambient section",
			yaml: "webdriver_path: /bin/chrome\nobservabilty:\n  log_level: info\n",
			key:  "observabilty",
		},
		{
			name: "site not accepted on command line",
			yaml: "webdriver_path: /bin/chrome\nwnba:\n  website: http://x/\n",
			key:  "wnba",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.yaml))

			var unknown *UnknownKeyError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, tt.key, unknown.Key)
			assert.ErrorContains(t, err, `unknown config key "`+tt.key+`"`)
		})
	}
}

func TestLoadConfig_HTTPEngineNeedsNoDriver(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "engine: http\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.WebdriverPath)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "webdriver_path: [unclosed\n"))
	assert.Error(t, err)
}

func TestSite_Unknown(t *testing.T) {
	cfg := &Config{}
	_, err := cfg.Site("other")

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "other", missing.Field)
}
