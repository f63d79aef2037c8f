// Package email recovers contact addresses from directory detail pages and
// company websites through a cascade of strategies, cheapest first. Every
// strategy failure degrades to the next step; only bot protection surfaces as
// a distinct outcome.
package email

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/softleads/yp-lead-scraper/internal/browser"
	"github.com/softleads/yp-lead-scraper/internal/config"
	"github.com/softleads/yp-lead-scraper/internal/filter"
	"github.com/softleads/yp-lead-scraper/internal/parser"
	"github.com/softleads/yp-lead-scraper/internal/throttle"
)

var (
	mailtoRe = regexp.MustCompile(`(?i)href=["']mailto:([^"'<>?\s]+)`)
	emailRe  = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
)

// Selectors that signal the detail page's content area has rendered. The CDN
// challenge wrapper is included so blocked pages settle quickly too.
const detailReadySelector = ".business-info, .sales-info, #main-content, #cf-wrapper"

// Likely contact-page paths on a company site, tried in order after the root.
var contactPaths = []string{"/contact", "/contact-us", "/about", "/about-us", "/contactus"}

// Title fragments that mark a dead or hostile company site.
var titleErrorMarkers = []string{"404", "not found", "error", "denied"}

// Extractor runs the cascade against a Page capability.
type Extractor struct {
	cfg      *config.Config
	websites *filter.Website
	emails   *filter.Email
	logger   *slog.Logger
}

func NewExtractor(cfg *config.Config, websites *filter.Website, emails *filter.Email) *Extractor {
	return &Extractor{
		cfg:      cfg,
		websites: websites,
		emails:   emails,
		logger:   slog.Default().With("component", "email_extractor"),
	}
}

// FromDetailPage fetches the listing's detail page and works down the
// cascade. When the detail page is blocked but the company website qualifies,
// the website substitutes for it instead of reporting Blocked.
func (e *Extractor) FromDetailPage(page browser.Page, detailURL, websiteURL string) Result {
	e.sleep(e.cfg.Scraper.ListingDelay, e.cfg.Scraper.ListingDelay+2*time.Second)

	if err := page.Navigate(detailURL, e.cfg.Scraper.PageLoadTimeout); err != nil {
		e.logger.Debug("detail page navigation failed", "url", detailURL, "error", err)
		return notFound()
	}

	// Best effort; a slow render just means we read what's there.
	_ = page.WaitFor(detailReadySelector, 10*time.Second)

	content, err := page.Content()
	if err != nil {
		return notFound()
	}

	if parser.IsBlocked(content) {
		if e.websites.IsReal(websiteURL) {
			e.logger.Info("detail page blocked, trying company website", "website", websiteURL)
			if res := e.FromWebsite(page, websiteURL); res.Outcome == Found {
				return res
			}
		}
		// The block still counts even when the substitute source came up dry.
		return blocked()
	}

	// Nudge lazy content into the DOM before re-reading.
	_ = page.Evaluate(`window.scrollTo(0, 800)`)
	time.Sleep(time.Second)
	if refreshed, err := page.Content(); err == nil {
		content = refreshed
	}

	if addr := e.scanMarkup(content); addr != "" {
		return found(addr)
	}

	if addr := e.scanAnchors(page); addr != "" {
		return found(addr)
	}

	if addr := e.scanStructural(content); addr != "" {
		return found(addr)
	}

	if addr := e.scanText(content); addr != "" {
		return found(addr)
	}

	if e.websites.IsReal(websiteURL) {
		e.logger.Debug("detail page exhausted, trying company website", "website", websiteURL)
		return e.FromWebsite(page, websiteURL)
	}

	return notFound()
}

// FromWebsite runs the sub-cascade against the company's own site: root page
// first, then the usual contact-page paths. It never reports Blocked; a site
// that won't load simply yields nothing.
func (e *Extractor) FromWebsite(page browser.Page, websiteURL string) Result {
	if !e.websites.IsReal(websiteURL) {
		return notFound()
	}

	if !strings.HasPrefix(websiteURL, "http") {
		websiteURL = "https://" + websiteURL
	}

	e.sleep(e.cfg.Scraper.MinDelay, e.cfg.Scraper.MaxDelay)

	if err := page.Navigate(websiteURL, e.cfg.Scraper.WebsiteLoadTimeout); err != nil {
		e.logger.Debug("website navigation failed", "url", websiteURL, "error", err)
		return notFound()
	}
	time.Sleep(2 * time.Second)

	if title, err := page.Title(); err == nil && titleLooksBroken(title) {
		return notFound()
	}

	if addr := e.scanFetchedPage(page); addr != "" {
		return found(addr)
	}

	base := strings.TrimRight(websiteURL, "/")
	for _, path := range contactPaths {
		if err := page.Navigate(base+path, e.cfg.Scraper.WebsiteLoadTimeout); err != nil {
			continue
		}
		time.Sleep(1500 * time.Millisecond)

		if addr := e.scanFetchedPage(page); addr != "" {
			return found(addr)
		}
	}

	return notFound()
}

// scanFetchedPage applies the markup and text strategies to whatever page is
// currently loaded.
func (e *Extractor) scanFetchedPage(page browser.Page) string {
	content, err := page.Content()
	if err != nil {
		return ""
	}

	if addr := e.scanMarkup(content); addr != "" {
		return addr
	}
	return e.scanText(content)
}

// scanMarkup looks for a mailto: link in the raw page source.
func (e *Extractor) scanMarkup(content string) string {
	if match := mailtoRe.FindStringSubmatch(content); match != nil {
		if addr := cleanMailto(match[1]); e.emails.IsReal(addr) {
			return addr
		}
	}
	return ""
}

// scanAnchors queries rendered anchor elements through two independent
// selection strategies, tolerating markup variance between listing templates.
func (e *Extractor) scanAnchors(page browser.Page) string {
	selectors := []string{
		"a.email-business, a[class*='email']",
		"a[href*='mailto:']",
	}

	for _, selector := range selectors {
		elements, err := page.Find(selector)
		if err != nil {
			continue
		}
		for _, el := range elements {
			href, err := el.Attribute("href")
			if err != nil || !strings.Contains(href, "mailto:") {
				continue
			}
			if addr := cleanMailto(href); e.emails.IsReal(addr) {
				return addr
			}
		}
	}
	return ""
}

// scanStructural re-parses the raw markup with goquery and repeats the mailto
// scan. Belt and suspenders against driver/DOM inconsistencies.
func (e *Extractor) scanStructural(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}

	var foundAddr string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, "mailto:") {
			return true
		}
		if addr := cleanMailto(href); e.emails.IsReal(addr) {
			foundAddr = addr
			return false
		}
		return true
	})
	return foundAddr
}

// scanText regex-scans the full page for email-shaped tokens.
func (e *Extractor) scanText(content string) string {
	for _, candidate := range emailRe.FindAllString(content, -1) {
		if e.emails.IsReal(candidate) {
			return candidate
		}
	}
	return ""
}

func (e *Extractor) sleep(min, max time.Duration) {
	time.Sleep(throttle.Jitter(min, max))
}

func cleanMailto(href string) string {
	addr := strings.TrimPrefix(strings.TrimSpace(href), "mailto:")
	if i := strings.IndexByte(addr, '?'); i >= 0 {
		addr = addr[:i]
	}
	return strings.TrimSpace(addr)
}

func titleLooksBroken(title string) bool {
	lower := strings.ToLower(title)
	for _, marker := range titleErrorMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
