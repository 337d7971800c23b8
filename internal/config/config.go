package config

import (
	"fmt"
	"time"
)

type Config struct {
	WebdriverPath string              `yaml:"webdriver_path"`
	Engine        string              `yaml:"engine"`
	Rod           RodConfig           `yaml:"rod"`
	HTTP          HttpConfig          `yaml:"http"`
	RateLimit     RateLimitConfig     `yaml:"rate_limit"`
	Scrape        ScrapeConfig        `yaml:"scrape"`
	Normalize     NormalizeConfig     `yaml:"normalize"`
	Storage       StorageConfig       `yaml:"storage"`
	Observability ObservabilityConfig `yaml:"observability"`

	// Все остальные ключи верхнего уровня - описания сайтов (nba, ...)
	Sites map[string]SiteConfig `yaml:",inline"`
}

const (
	EngineRod  = "rod"
	EngineHTTP = "http"
)

type RodConfig struct {
	Headless     *bool `yaml:"headless"`
	NoSandbox    bool  `yaml:"no_sandbox"`
	PageTimeoutS int   `yaml:"page_timeout_s"`
	WaitLoad     bool  `yaml:"wait_load"`
}

type HttpConfig struct {
	UserAgent      string `yaml:"user_agent"`
	TotalTimeoutMS int    `yaml:"total_timeout_ms"`
}

type RateLimitConfig struct {
	RPM int `yaml:"rpm"`
}

type ScrapeConfig struct {
	SingleNavigation bool `yaml:"single_navigation"`
	StrictPairing    bool `yaml:"strict_pairing"`
}

type NormalizeConfig struct {
	TrimNBSP       bool `yaml:"trim_nbsp"`
	CollapseSpaces bool `yaml:"collapse_spaces"`
}

type StorageConfig struct {
	Driver           string `yaml:"driver"`
	DSN              string `yaml:"dsn"`
	CommandTimeoutMS int    `yaml:"command_timeout_ms"`
}

type ObservabilityConfig struct {
	LogPath   string `yaml:"log_path"`
	LogLevel  string `yaml:"log_level"`
	Overwrite *bool  `yaml:"overwrite"`
}

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// ApplyDefaults заполняет необязательные поля значениями по умолчанию
func (c *Config) ApplyDefaults() {
	if c.Engine == "" {
		c.Engine = EngineRod
	}
	if c.Rod.Headless == nil {
		c.Rod.Headless = boolPtr(true)
	}
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = defaultUserAgent
	}
	if c.HTTP.TotalTimeoutMS == 0 {
		c.HTTP.TotalTimeoutMS = 30000
	}
	if c.Storage.CommandTimeoutMS == 0 {
		c.Storage.CommandTimeoutMS = 5000
	}
	if c.Observability.LogPath == "" {
		c.Observability.LogPath = "web-scrape.log"
	}
	if c.Observability.LogLevel == "" {
		c.Observability.LogLevel = "debug"
	}
	if c.Observability.Overwrite == nil {
		c.Observability.Overwrite = boolPtr(true)
	}
}

// Validation
func (c *Config) Validate() error {
	if c.Engine != EngineRod && c.Engine != EngineHTTP {
		return fmt.Errorf("engine must be '%s' or '%s'", EngineRod, EngineHTTP)
	}
	if c.Engine == EngineRod && c.WebdriverPath == "" {
		return &MissingFieldError{Field: "webdriver_path"}
	}
	if c.Rod.PageTimeoutS < 0 {
		return fmt.Errorf("rod.page_timeout_s must be >= 0")
	}
	if c.HTTP.TotalTimeoutMS <= 0 {
		return fmt.Errorf("http.total_timeout_ms must be > 0")
	}
	if c.RateLimit.RPM < 0 {
		return fmt.Errorf("rate_limit.rpm must be >= 0")
	}
	if c.Storage.Driver != "" && c.Storage.Driver != "mssql" {
		return fmt.Errorf("storage.driver must be empty or 'mssql'")
	}
	if c.Storage.Driver != "" && c.Storage.DSN == "" {
		return &MissingFieldError{Field: "storage.dsn"}
	}
	if c.Storage.CommandTimeoutMS <= 0 {
		return fmt.Errorf("storage.command_timeout_ms must be > 0")
	}
	return c.validateSites()
}

// Getters
func (c *Config) GetRodPageTimeout() time.Duration {
	return time.Duration(c.Rod.PageTimeoutS) * time.Second
}

func (c *Config) GetTotalTimeout() time.Duration {
	return time.Duration(c.HTTP.TotalTimeoutMS) * time.Millisecond
}

func (c *Config) GetCommandTimeout() time.Duration {
	return time.Duration(c.Storage.CommandTimeoutMS) * time.Millisecond
}

func (c *Config) Headless() bool {
	return c.Rod.Headless == nil || *c.Rod.Headless
}

func (c *Config) OverwriteLog() bool {
	return c.Observability.Overwrite == nil || *c.Observability.Overwrite
}

func boolPtr(b bool) *bool {
	return &b
}
