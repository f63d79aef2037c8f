package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softleads/yp-lead-scraper/internal/browser"
	"github.com/softleads/yp-lead-scraper/internal/config"
	"github.com/softleads/yp-lead-scraper/internal/email"
	"github.com/softleads/yp-lead-scraper/internal/export"
	"github.com/softleads/yp-lead-scraper/internal/filter"
	"github.com/softleads/yp-lead-scraper/internal/models"
	"github.com/softleads/yp-lead-scraper/internal/niche"
	"github.com/softleads/yp-lead-scraper/internal/parser"
	"github.com/softleads/yp-lead-scraper/internal/progress"
)

type stubPage struct {
	responses map[string]string
	current   string
	visited   *[]string
}

func (p *stubPage) Navigate(url string, _ time.Duration) error {
	*p.visited = append(*p.visited, url)
	content, ok := p.responses[url]
	if !ok {
		return fmt.Errorf("unreachable: %s", url)
	}
	p.current = content
	return nil
}

func (p *stubPage) Content() (string, error)               { return p.current, nil }
func (p *stubPage) Title() (string, error)                 { return "", nil }
func (p *stubPage) Find(string) ([]browser.Element, error) { return nil, nil }
func (p *stubPage) WaitFor(string, time.Duration) error    { return nil }
func (p *stubPage) Evaluate(string) error                  { return nil }

type stubSession struct {
	page   *stubPage
	closed bool
}

func (s *stubSession) Page() browser.Page { return s.page }
func (s *stubSession) Restart() error     { return nil }
func (s *stubSession) Close() error       { s.closed = true; return nil }

// harness wires a scheduler against canned markup and records every session
// it hands out.
type harness struct {
	cfg      *config.Config
	n        *niche.Niche
	sink     *export.Sink
	sched    *Scheduler
	sessions []*stubSession
	visited  []string
}

func newHarness(t *testing.T, responses map[string]string) *harness {
	t.Helper()

	cfg := &config.Config{}
	cfg.Scraper.MaxPages = 1
	cfg.Scraper.MaxRetries = 1
	cfg.Scraper.BlockThreshold = 5
	cfg.Scraper.PageLoadTimeout = time.Second
	cfg.Output.BaseDir = t.TempDir()

	n := &niche.Niche{
		Key:       "janitor",
		Label:     "Janitorial/Cleaning Supplier",
		Terms:     []niche.SearchTerm{{Slug: "cleaning-supplies"}},
		Locations: []string{"queens-ny", "newark-nj"},
		Tracking:  niche.TrackingStatus,
	}

	h := &harness{cfg: cfg, n: n}

	websites := filter.NewWebsite()
	h.sink = export.NewSink(websites)
	newSession := func() (browser.Session, error) {
		s := &stubSession{page: &stubPage{responses: responses, visited: &h.visited}}
		h.sessions = append(h.sessions, s)
		return s, nil
	}

	h.sched = New(cfg, n, "test-run", newSession,
		parser.NewListing(websites),
		email.NewExtractor(cfg, websites, filter.NewEmail()),
		h.sink)
	return h
}

func resultsPageFor(name, website, phone string) string {
	return `<html><body><div class="search-results"><div class="result">
		<a class="business-name" href="/mip/` + name + `"><span>` + name + `</span></a>
		<a class="track-visit-website" href="` + website + `">Website</a>
		<div class="phones">` + phone + `</div>
	</div></div></body></html>`
}

func taskURL(term, location string) string {
	return models.Task{Term: term, Location: location}.BaseURL()
}

func TestRunSingleOutOfRange(t *testing.T) {
	h := newHarness(t, nil)

	assert.Error(t, h.sched.RunSingle(context.Background(), 5, 0))
	assert.Error(t, h.sched.RunSingle(context.Background(), 0, 9))
	assert.Error(t, h.sched.RunSingle(context.Background(), -1, 0))
}

func TestRunAll(t *testing.T) {
	h := newHarness(t, map[string]string{
		taskURL("cleaning-supplies", "queens-ny"): resultsPageFor("Acme", "https://acme-cleaning.com", "(212) 555-0100"),
		taskURL("cleaning-supplies", "newark-nj"): resultsPageFor("Zenith", "https://zenith-janitorial.com", "(973) 555-0102"),
	})

	require.NoError(t, h.sched.RunAll(context.Background()))

	// One session per task, every one torn down.
	require.Len(t, h.sessions, 2)
	for _, s := range h.sessions {
		assert.True(t, s.closed)
	}

	for _, loc := range h.n.Locations {
		leads, err := h.sink.Load(h.n.ArtifactPath(h.cfg.Output.BaseDir, loc, "cleaning-supplies"))
		require.NoError(t, err)
		assert.Len(t, leads, 1, "artifact for %s", loc)
	}

	rec, err := progress.Load(h.n.ProgressPath(h.cfg.Output.BaseDir))
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, progress.StatusCompleted, rec.Status)
	assert.Equal(t, "test-run", rec.RunID)
}

func TestRunAllContinuesPastFailedSession(t *testing.T) {
	h := newHarness(t, map[string]string{
		taskURL("cleaning-supplies", "newark-nj"): resultsPageFor("Zenith", "https://zenith-janitorial.com", "(973) 555-0102"),
	})

	// The first task's page is unreachable; the run still finishes.
	require.NoError(t, h.sched.RunAll(context.Background()))

	leads, err := h.sink.Load(h.n.ArtifactPath(h.cfg.Output.BaseDir, "newark-nj", "cleaning-supplies"))
	require.NoError(t, err)
	assert.Len(t, leads, 1)
}

func TestResumeSkipsCompletedTasks(t *testing.T) {
	h := newHarness(t, map[string]string{
		taskURL("cleaning-supplies", "newark-nj"): resultsPageFor("Zenith", "https://zenith-janitorial.com", "(973) 555-0102"),
	})

	require.NoError(t, progress.Save(h.n.ProgressPath(h.cfg.Output.BaseDir), progress.Record{
		RunID:         "earlier-run",
		Niche:         "janitor",
		TermIndex:     0,
		LocationIndex: 1,
		Status:        progress.StatusInProgress,
	}))

	require.NoError(t, h.sched.Resume(context.Background()))

	assert.NotContains(t, h.visited, taskURL("cleaning-supplies", "queens-ny"))
	assert.Contains(t, h.visited, taskURL("cleaning-supplies", "newark-nj"))
}

func TestResumeWithoutCheckpointStartsFresh(t *testing.T) {
	h := newHarness(t, map[string]string{})

	require.NoError(t, h.sched.Resume(context.Background()))

	assert.Contains(t, h.visited, taskURL("cleaning-supplies", "queens-ny"))
	assert.Contains(t, h.visited, taskURL("cleaning-supplies", "newark-nj"))
}

func TestResumeRejectsForeignCheckpoint(t *testing.T) {
	h := newHarness(t, nil)

	require.NoError(t, progress.Save(h.n.ProgressPath(h.cfg.Output.BaseDir), progress.Record{
		Niche:  "safety",
		Status: progress.StatusInProgress,
	}))

	assert.Error(t, h.sched.Resume(context.Background()))
}

func TestRunAllCancelledBetweenTasks(t *testing.T) {
	h := newHarness(t, map[string]string{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.sched.RunAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
