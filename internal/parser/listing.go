// Package parser turns rendered directory markup into leads and classifies
// blocked pages. Everything here works on markup strings; it never touches
// the network.
package parser

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/softleads/yp-lead-scraper/internal/filter"
	"github.com/softleads/yp-lead-scraper/internal/models"
)

// ResultSelector matches one business listing on a search results page.
const ResultSelector = ".result"

// ResultsReadySelector signals that the results area has rendered.
const ResultsReadySelector = ".result, .search-results"

// Listing extracts leads from search result fragments.
type Listing struct {
	websites *filter.Website
	logger   *slog.Logger
}

func NewListing(websites *filter.Website) *Listing {
	return &Listing{
		websites: websites,
		logger:   slog.Default().With("component", "listing_parser"),
	}
}

// Parse turns one result fragment into a lead, or nil when the listing has no
// company name or no qualifying website. The website check runs before any
// other extraction so rejected listings cost nothing further.
func (p *Listing) Parse(fragment, industryLabel string) *models.Lead {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		p.logger.Debug("fragment parse failed", "error", err)
		return nil
	}
	return p.ParseSelection(doc.Selection, industryLabel)
}

// ParseSelection is Parse for an already-parsed subtree.
func (p *Listing) ParseSelection(listing *goquery.Selection, industryLabel string) *models.Lead {
	name := strings.TrimSpace(listing.Find(".business-name span").First().Text())
	if name == "" {
		name = strings.TrimSpace(listing.Find(".business-name").First().Text())
	}
	if name == "" {
		return nil
	}

	website, _ := listing.Find(".track-visit-website").First().Attr("href")
	if !p.websites.IsReal(website) {
		return nil
	}

	lead := models.NewLead(name, industryLabel)
	lead.Website = website
	lead.Phone = strings.TrimSpace(listing.Find(".phones").First().Text())
	lead.Category = strings.TrimSpace(listing.Find(".categories").First().Text())
	lead.Address = joinAddress(
		strings.TrimSpace(listing.Find(".street-address").First().Text()),
		strings.TrimSpace(listing.Find(".locality").First().Text()),
	)

	if href, ok := listing.Find(".business-name").First().Attr("href"); ok {
		lead.DetailURL = models.DetailURL(href)
	}

	lead.ComputeID()
	return lead
}

// ParsePage runs Parse over every result fragment in a full results page.
func (p *Listing) ParsePage(html, industryLabel string) []*models.Lead {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		p.logger.Warn("results page parse failed", "error", err)
		return nil
	}

	var leads []*models.Lead
	doc.Find(ResultSelector).Each(func(_ int, sel *goquery.Selection) {
		if lead := p.ParseSelection(sel, industryLabel); lead != nil {
			leads = append(leads, lead)
		}
	})
	return leads
}

// joinAddress drops empty fragments and joins the rest with a single space.
func joinAddress(parts ...string) string {
	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}
