// Package scraper drives the page-by-page fetch/parse/dedupe/extract/persist
// loop for one task, including retry and block-recovery policy.
package scraper

import (
	"context"
	"log/slog"
	"time"

	"github.com/softleads/yp-lead-scraper/internal/browser"
	"github.com/softleads/yp-lead-scraper/internal/config"
	"github.com/softleads/yp-lead-scraper/internal/dedup"
	"github.com/softleads/yp-lead-scraper/internal/email"
	"github.com/softleads/yp-lead-scraper/internal/export"
	"github.com/softleads/yp-lead-scraper/internal/models"
	"github.com/softleads/yp-lead-scraper/internal/niche"
	"github.com/softleads/yp-lead-scraper/internal/parser"
	"github.com/softleads/yp-lead-scraper/internal/throttle"
)

// TaskReport summarizes one task run.
type TaskReport struct {
	Pages       int
	NewLeads    int
	TotalLeads  int
	EmailsFound int
	Blocked     int
}

// Controller executes one task at a time against a single browser session.
// It is the session's sole user; nothing else may touch the page while a
// task runs.
type Controller struct {
	cfg      *config.Config
	session  browser.Session
	listings *parser.Listing
	emails   *email.Extractor
	sink     *export.Sink
	logger   *slog.Logger
}

func NewController(cfg *config.Config, session browser.Session, listings *parser.Listing, emails *email.Extractor, sink *export.Sink) *Controller {
	return &Controller{
		cfg:      cfg,
		session:  session,
		listings: listings,
		emails:   emails,
		sink:     sink,
		logger:   slog.Default().With("component", "pipeline"),
	}
}

// RunTask walks the task's result pages until exhaustion or the page ceiling,
// persisting after every page so an interruption loses at most one page of
// work. Accumulated leads are flushed on the error path too.
func (c *Controller) RunTask(ctx context.Context, n *niche.Niche, term niche.SearchTerm, task models.Task, store *dedup.Store) (report *TaskReport, err error) {
	artifactPath := n.ArtifactPath(c.cfg.Output.BaseDir, task.Location, task.Term)
	industryLabel := n.IndustryLabel(term)

	existing, loadErr := c.sink.Load(artifactPath)
	if loadErr != nil {
		// A corrupt artifact degrades to an empty dedup contribution; the
		// next save replaces it wholesale.
		c.logger.Warn("could not read existing artifact", "path", artifactPath, "error", loadErr)
		existing = nil
	}
	store.SeedLocal(existing)

	c.logger.Info("starting task",
		"task", task.String(),
		"url", task.BaseURL(),
		"existing", len(existing))

	allLeads := existing
	report = &TaskReport{}
	consecutiveBlocks := 0
	page := c.session.Page()

	defer func() {
		if err != nil && report.NewLeads > 0 {
			if saveErr := c.sink.Save(artifactPath, allLeads, n.Tracking); saveErr != nil {
				c.logger.Error("best-effort flush failed", "path", artifactPath, "error", saveErr)
			}
		}
	}()

	for pageNum := 1; pageNum <= c.cfg.Scraper.MaxPages; pageNum++ {
		if err = ctx.Err(); err != nil {
			return report, err
		}

		report.Pages = pageNum
		pageURL := task.PageURL(pageNum)
		c.logger.Info("loading page", "page", pageNum, "url", pageURL)

		content := c.loadResultsPage(ctx, page, pageURL)

		if parser.IsBlocked(content) {
			c.logger.Warn("results page looks blocked", "page", pageNum)
			report.Blocked++
		}

		leads := c.listings.ParsePage(content, industryLabel)
		if len(leads) == 0 {
			// No qualifying listings means the result set is exhausted.
			c.logger.Info("no listings with qualifying websites, ending task", "page", pageNum)
			break
		}

		var fresh []*models.Lead
		for _, lead := range leads {
			if store.Accept(lead.ID) {
				fresh = append(fresh, lead)
			}
		}

		c.logger.Info("parsed page",
			"page", pageNum,
			"qualifying", len(leads),
			"new", len(fresh))

		if len(fresh) == 0 {
			// All duplicates: nothing to persist, but later pages may still
			// hold new businesses.
			if pageNum < c.cfg.Scraper.MaxPages {
				if err = throttle.Sleep(ctx, throttle.Jitter(c.cfg.Scraper.PageDelay/2, c.cfg.Scraper.PageDelay)); err != nil {
					return report, err
				}
			}
			continue
		}

		if c.cfg.Scraper.FetchEmails {
			if err = c.fetchEmails(ctx, page, fresh, report, &consecutiveBlocks); err != nil {
				return report, err
			}
		}

		allLeads = append(allLeads, fresh...)
		report.NewLeads += len(fresh)

		if err = c.sink.Save(artifactPath, allLeads, n.Tracking); err != nil {
			return report, err
		}
		c.logger.Info("saved artifact", "path", artifactPath, "leads", len(allLeads))

		if pageNum < c.cfg.Scraper.MaxPages {
			if c.cfg.Scraper.RestartEachPage {
				if err = c.restartSession(&page); err != nil {
					return report, err
				}
			}

			delay := throttle.Jitter(c.cfg.Scraper.PageDelay, c.cfg.Scraper.PageDelay+5*time.Second)
			c.logger.Debug("waiting before next page", "delay", delay)
			if err = throttle.Sleep(ctx, delay); err != nil {
				return report, err
			}
		}
	}

	report.TotalLeads = len(allLeads)
	c.logger.Info("task completed",
		"task", task.String(),
		"new_leads", report.NewLeads,
		"total", report.TotalLeads,
		"emails", report.EmailsFound)

	return report, nil
}

// loadResultsPage navigates with the retry policy and returns the rendered
// markup. Exhausted retries degrade to an empty page, which the caller reads
// as zero listings.
func (c *Controller) loadResultsPage(ctx context.Context, page browser.Page, url string) string {
	policy := RetryPolicy{
		MaxAttempts: c.cfg.Scraper.MaxRetries,
		Delay:       c.cfg.Scraper.RetryDelay,
	}

	outcome := policy.Run(ctx, func() Outcome {
		if err := page.Navigate(url, c.cfg.Scraper.PageLoadTimeout); err != nil {
			c.logger.Warn("navigation failed", "url", url, "error", err)
			return RetriableFailure
		}
		return Succeeded
	})
	if outcome != Succeeded {
		c.logger.Error("page load failed after retries", "url", url)
		return ""
	}

	// Scroll to the bottom so lazily rendered listings make it into the DOM.
	_ = page.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`)
	time.Sleep(2 * time.Second)
	_ = page.WaitFor(parser.ResultsReadySelector, 10*time.Second)

	content, err := page.Content()
	if err != nil {
		c.logger.Warn("could not read page content", "url", url, "error", err)
		return ""
	}
	return content
}

// fetchEmails runs the extraction cascade for each new lead, restarting the
// session after too many consecutive blocks.
func (c *Controller) fetchEmails(ctx context.Context, page browser.Page, leads []*models.Lead, report *TaskReport, consecutiveBlocks *int) error {
	for i, lead := range leads {
		if err := ctx.Err(); err != nil {
			return err
		}

		if lead.DetailURL == "" {
			continue
		}

		result := c.emails.FromDetailPage(page, lead.DetailURL, lead.Website)
		switch result.Outcome {
		case email.Found:
			lead.Email = result.Email
			report.EmailsFound++
			*consecutiveBlocks = 0
			c.logger.Info("email found",
				"company", lead.CompanyName,
				"email", result.Email,
				"progress", i+1)
		case email.Blocked:
			report.Blocked++
			*consecutiveBlocks++
			c.logger.Warn("detail page blocked",
				"company", lead.CompanyName,
				"consecutive", *consecutiveBlocks)

			if *consecutiveBlocks >= c.cfg.Scraper.BlockThreshold {
				c.logger.Warn("too many consecutive blocks, restarting session")
				if err := throttle.Sleep(ctx, c.cfg.Scraper.BlockCooldown); err != nil {
					return err
				}
				if err := c.restartSession(&page); err != nil {
					return err
				}
				*consecutiveBlocks = 0
			}
		case email.NotFound:
			*consecutiveBlocks = 0
			c.logger.Debug("no email found", "company", lead.CompanyName)
		}
	}

	return nil
}

func (c *Controller) restartSession(page *browser.Page) error {
	if err := c.session.Restart(); err != nil {
		return err
	}
	*page = c.session.Page()
	return nil
}
