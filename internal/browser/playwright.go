package browser

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/softleads/yp-lead-scraper/internal/config"
)

// Masks the automation-detection property that the directory's scripts probe
// for.
const maskWebdriverScript = `Object.defineProperty(navigator, 'webdriver', {get: () => undefined})`

// PlaywrightSession drives a Chromium instance through playwright with
// anti-fingerprint settings. Each (re)start picks a fresh random user agent.
type PlaywrightSession struct {
	cfg    *config.Config
	pw     *playwright.Playwright
	brw    playwright.Browser
	ctx    playwright.BrowserContext
	page   playwright.Page
	logger *slog.Logger
}

var _ Session = (*PlaywrightSession)(nil)

// NewPlaywrightSession launches the browser and opens its single page.
func NewPlaywrightSession(cfg *config.Config) (*PlaywrightSession, error) {
	s := &PlaywrightSession{
		cfg:    cfg,
		logger: slog.Default().With("component", "browser"),
	}

	if err := s.launch(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *PlaywrightSession) launch() error {
	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	userAgent := s.cfg.Scraper.UserAgents[rand.Intn(len(s.cfg.Scraper.UserAgents))]

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(s.cfg.Browser.Headless),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--no-sandbox",
			"--disable-gpu",
			"--window-size=1920,1080",
			"--user-agent=" + userAgent,
		},
	}

	brw, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		pw.Stop()
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	ctx, err := brw.NewContext(playwright.BrowserNewContextOptions{
		UserAgent:         playwright.String(userAgent),
		AcceptDownloads:   playwright.Bool(false),
		JavaScriptEnabled: playwright.Bool(true),
		Locale:            playwright.String(s.cfg.Browser.Locale),
		TimezoneId:        playwright.String(s.cfg.Browser.TimezoneID),
		Viewport: &playwright.Size{
			Width:  s.cfg.Browser.ViewportWidth,
			Height: s.cfg.Browser.ViewportHeight,
		},
		ExtraHttpHeaders: map[string]string{
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
			"Accept-Language": s.cfg.Browser.AcceptLanguage,
			"DNT":             "1",
		},
	})
	if err != nil {
		brw.Close()
		pw.Stop()
		return fmt.Errorf("failed to create browser context: %w", err)
	}

	if err := ctx.AddInitScript(playwright.Script{
		Content: playwright.String(maskWebdriverScript),
	}); err != nil {
		ctx.Close()
		brw.Close()
		pw.Stop()
		return fmt.Errorf("failed to add init script: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		brw.Close()
		pw.Stop()
		return fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(float64(s.cfg.Browser.Timeout.Milliseconds()))

	s.pw = pw
	s.brw = brw
	s.ctx = ctx
	s.page = page

	s.logger.Debug("session started", "user_agent", userAgent, "headless", s.cfg.Browser.Headless)
	return nil
}

func (s *PlaywrightSession) Page() Page {
	return &playwrightPage{session: s}
}

// Restart tears the current browser down and launches a fresh one with a new
// random user agent.
func (s *PlaywrightSession) Restart() error {
	s.logger.Info("restarting browser session")
	s.teardown()
	return s.launch()
}

// Close is safe to call on every exit path, including after a failed restart.
func (s *PlaywrightSession) Close() error {
	s.teardown()
	return nil
}

func (s *PlaywrightSession) teardown() {
	if s.page != nil {
		if err := s.page.Close(); err != nil {
			s.logger.Debug("page close failed", "error", err)
		}
		s.page = nil
	}
	if s.ctx != nil {
		if err := s.ctx.Close(); err != nil {
			s.logger.Debug("context close failed", "error", err)
		}
		s.ctx = nil
	}
	if s.brw != nil {
		if err := s.brw.Close(); err != nil {
			s.logger.Debug("browser close failed", "error", err)
		}
		s.brw = nil
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			s.logger.Debug("playwright stop failed", "error", err)
		}
		s.pw = nil
	}
}

// playwrightPage adapts the live page to the Page interface. It reads the
// session's current page on every call so a Restart transparently swaps the
// underlying browser.
type playwrightPage struct {
	session *PlaywrightSession
}

func (p *playwrightPage) Navigate(url string, timeout time.Duration) error {
	_, err := p.session.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	return nil
}

func (p *playwrightPage) Content() (string, error) {
	return p.session.page.Content()
}

func (p *playwrightPage) Title() (string, error) {
	return p.session.page.Title()
}

func (p *playwrightPage) Find(selector string) ([]Element, error) {
	locators, err := p.session.page.Locator(selector).All()
	if err != nil {
		return nil, fmt.Errorf("querying %q: %w", selector, err)
	}

	elements := make([]Element, 0, len(locators))
	for _, loc := range locators {
		elements = append(elements, &playwrightElement{locator: loc})
	}
	return elements, nil
}

func (p *playwrightPage) WaitFor(selector string, timeout time.Duration) error {
	_, err := p.session.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return err
}

func (p *playwrightPage) Evaluate(js string) error {
	_, err := p.session.page.Evaluate(js)
	return err
}

type playwrightElement struct {
	locator playwright.Locator
}

func (e *playwrightElement) Attribute(name string) (string, error) {
	value, err := e.locator.GetAttribute(name)
	if err != nil {
		return "", err
	}
	return value, nil
}
