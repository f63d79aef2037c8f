package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is built once at startup and passed into every component. Nothing
// mutates it after Load().
type Config struct {
	Scraper Scraper
	Browser Browser
	Output  Output
	Logging Logging
}

type Scraper struct {
	FetchEmails        bool
	MaxPages           int
	MaxRetries         int
	RetryDelay         time.Duration
	MinDelay           time.Duration
	MaxDelay           time.Duration
	PageDelay          time.Duration
	ListingDelay       time.Duration
	TaskDelayMin       time.Duration
	TaskDelayMax       time.Duration
	BlockThreshold     int
	BlockCooldown      time.Duration
	RestartEachPage    bool
	PageLoadTimeout    time.Duration
	WebsiteLoadTimeout time.Duration
	UserAgents         []string
}

type Browser struct {
	Headless       bool
	Timeout        time.Duration
	ViewportWidth  int
	ViewportHeight int
	AcceptLanguage string
	TimezoneID     string
	Locale         string
}

type Output struct {
	BaseDir string
}

type Logging struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Scraper: Scraper{
			FetchEmails:        getBoolOrDefault("SCRAPER_FETCH_EMAILS", true),
			MaxPages:           getIntOrDefault("SCRAPER_MAX_PAGES", 5),
			MaxRetries:         getIntOrDefault("SCRAPER_MAX_RETRIES", 3),
			RetryDelay:         getDurationOrDefault("SCRAPER_RETRY_DELAY", 5*time.Second),
			MinDelay:           getDurationOrDefault("SCRAPER_MIN_DELAY", 4*time.Second),
			MaxDelay:           getDurationOrDefault("SCRAPER_MAX_DELAY", 8*time.Second),
			PageDelay:          getDurationOrDefault("SCRAPER_PAGE_DELAY", 12*time.Second),
			ListingDelay:       getDurationOrDefault("SCRAPER_LISTING_DELAY", 3*time.Second),
			TaskDelayMin:       getDurationOrDefault("SCRAPER_TASK_DELAY_MIN", 20*time.Second),
			TaskDelayMax:       getDurationOrDefault("SCRAPER_TASK_DELAY_MAX", 40*time.Second),
			BlockThreshold:     getIntOrDefault("SCRAPER_BLOCK_THRESHOLD", 5),
			BlockCooldown:      getDurationOrDefault("SCRAPER_BLOCK_COOLDOWN", 10*time.Second),
			RestartEachPage:    getBoolOrDefault("SCRAPER_RESTART_EACH_PAGE", true),
			PageLoadTimeout:    getDurationOrDefault("SCRAPER_PAGE_LOAD_TIMEOUT", 30*time.Second),
			WebsiteLoadTimeout: getDurationOrDefault("SCRAPER_WEBSITE_LOAD_TIMEOUT", 15*time.Second),
			UserAgents:         getStringSliceOrDefault("SCRAPER_USER_AGENTS", defaultUserAgents()),
		},
		Browser: Browser{
			Headless:       getBoolOrDefault("BROWSER_HEADLESS", false),
			Timeout:        getDurationOrDefault("BROWSER_TIMEOUT", 30*time.Second),
			ViewportWidth:  getIntOrDefault("BROWSER_VIEWPORT_WIDTH", 1920),
			ViewportHeight: getIntOrDefault("BROWSER_VIEWPORT_HEIGHT", 1080),
			AcceptLanguage: getEnvOrDefault("BROWSER_ACCEPT_LANGUAGE", "en-US,en;q=0.9"),
			TimezoneID:     getEnvOrDefault("BROWSER_TIMEZONE", "America/New_York"),
			Locale:         getEnvOrDefault("BROWSER_LOCALE", "en-US"),
		},
		Output: Output{
			BaseDir: getEnvOrDefault("OUTPUT_BASE_DIR", "."),
		},
		Logging: Logging{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Scraper.MaxPages < 1 {
		return fmt.Errorf("SCRAPER_MAX_PAGES must be at least 1")
	}

	if c.Scraper.MaxRetries < 1 {
		return fmt.Errorf("SCRAPER_MAX_RETRIES must be at least 1")
	}

	if c.Scraper.MinDelay > c.Scraper.MaxDelay {
		return fmt.Errorf("SCRAPER_MIN_DELAY cannot be greater than SCRAPER_MAX_DELAY")
	}

	if c.Scraper.TaskDelayMin > c.Scraper.TaskDelayMax {
		return fmt.Errorf("SCRAPER_TASK_DELAY_MIN cannot be greater than SCRAPER_TASK_DELAY_MAX")
	}

	if c.Scraper.BlockThreshold < 1 {
		return fmt.Errorf("SCRAPER_BLOCK_THRESHOLD must be at least 1")
	}

	if len(c.Scraper.UserAgents) == 0 {
		return fmt.Errorf("SCRAPER_USER_AGENTS must not be empty")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getStringSliceOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

func defaultUserAgents() []string {
	return []string{
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:122.0) Gecko/20100101 Firefox/122.0",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:122.0) Gecko/20100101 Firefox/122.0",
	}
}
