// Package scheduler enumerates (search term, location) tasks for a niche and
// runs them strictly one after another, checkpointing progress between tasks.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/softleads/yp-lead-scraper/internal/browser"
	"github.com/softleads/yp-lead-scraper/internal/config"
	"github.com/softleads/yp-lead-scraper/internal/dedup"
	"github.com/softleads/yp-lead-scraper/internal/email"
	"github.com/softleads/yp-lead-scraper/internal/export"
	"github.com/softleads/yp-lead-scraper/internal/models"
	"github.com/softleads/yp-lead-scraper/internal/niche"
	"github.com/softleads/yp-lead-scraper/internal/parser"
	"github.com/softleads/yp-lead-scraper/internal/progress"
	"github.com/softleads/yp-lead-scraper/internal/scraper"
	"github.com/softleads/yp-lead-scraper/internal/throttle"
)

// SessionFactory opens a fresh automation session. The scheduler opens one
// per task and guarantees teardown on every exit path.
type SessionFactory func() (browser.Session, error)

type Scheduler struct {
	cfg        *config.Config
	niche      *niche.Niche
	runID      string
	newSession SessionFactory
	listings   *parser.Listing
	emails     *email.Extractor
	sink       *export.Sink
	pacer      *throttle.Pacer
	logger     *slog.Logger
}

func New(cfg *config.Config, n *niche.Niche, runID string, newSession SessionFactory, listings *parser.Listing, emails *email.Extractor, sink *export.Sink) *Scheduler {
	return &Scheduler{
		cfg:        cfg,
		niche:      n,
		runID:      runID,
		newSession: newSession,
		listings:   listings,
		emails:     emails,
		sink:       sink,
		pacer:      throttle.NewPacer(cfg.Scraper.TaskDelayMin, cfg.Scraper.TaskDelayMax),
		logger:     slog.Default().With("component", "scheduler", "niche", n.Key),
	}
}

// RunSingle executes exactly one task. No checkpoint is written.
func (s *Scheduler) RunSingle(ctx context.Context, termIdx, locIdx int) error {
	if err := s.checkIndexes(termIdx, locIdx); err != nil {
		return err
	}

	_, err := s.runTask(ctx, termIdx, locIdx)
	return err
}

// RunBatch executes one search term across every location.
func (s *Scheduler) RunBatch(ctx context.Context, termIdx int) error {
	if err := s.checkIndexes(termIdx, 0); err != nil {
		return err
	}

	totalNew := 0
	for li := range s.niche.Locations {
		if err := s.pacer.Wait(ctx); err != nil {
			return err
		}

		if err := s.checkpoint(termIdx, li, progress.StatusInProgress); err != nil {
			s.logger.Warn("could not write checkpoint", "error", err)
		}

		newCount, err := s.runTask(ctx, termIdx, li)
		if err != nil {
			if isCancellation(err) {
				return err
			}
			s.logger.Error("task failed, continuing with next location", "error", err)
		}
		totalNew += newCount
	}

	if err := s.checkpoint(termIdx, len(s.niche.Locations)-1, progress.StatusCompleted); err != nil {
		s.logger.Warn("could not write checkpoint", "error", err)
	}

	s.logger.Info("batch completed", "term", s.niche.Terms[termIdx].Slug, "new_leads", totalNew)
	return nil
}

// RunAll executes the full term x location cross product.
func (s *Scheduler) RunAll(ctx context.Context) error {
	return s.runRange(ctx, 0, 0)
}

// Resume continues the cross product from the saved checkpoint, or starts
// fresh when none exists.
func (s *Scheduler) Resume(ctx context.Context) error {
	rec, err := progress.Load(s.niche.ProgressPath(s.cfg.Output.BaseDir))
	if err != nil {
		return fmt.Errorf("loading progress: %w", err)
	}
	if rec == nil || rec.Status == progress.StatusCompleted {
		s.logger.Info("no resumable progress found, starting fresh")
		return s.runRange(ctx, 0, 0)
	}

	if rec.Niche != s.niche.Key {
		return fmt.Errorf("checkpoint belongs to niche %q, not %q", rec.Niche, s.niche.Key)
	}
	if err := s.checkIndexes(rec.TermIndex, rec.LocationIndex); err != nil {
		return fmt.Errorf("stale checkpoint: %w", err)
	}

	s.logger.Info("resuming",
		"term", s.niche.Terms[rec.TermIndex].Slug,
		"location", s.niche.Locations[rec.LocationIndex])

	return s.runRange(ctx, rec.TermIndex, rec.LocationIndex)
}

// runRange walks the cross product from (startTerm, startLoc) to the end.
func (s *Scheduler) runRange(ctx context.Context, startTerm, startLoc int) error {
	total := len(s.niche.Terms) * len(s.niche.Locations)
	combo := startTerm*len(s.niche.Locations) + startLoc
	totalNew := 0

	for ti := startTerm; ti < len(s.niche.Terms); ti++ {
		firstLoc := 0
		if ti == startTerm {
			firstLoc = startLoc
		}

		for li := firstLoc; li < len(s.niche.Locations); li++ {
			combo++
			if err := s.pacer.Wait(ctx); err != nil {
				return err
			}

			s.logger.Info("scheduling task",
				"progress", fmt.Sprintf("%d/%d", combo, total),
				"term", s.niche.Terms[ti].Slug,
				"location", s.niche.Locations[li])

			if err := s.checkpoint(ti, li, progress.StatusInProgress); err != nil {
				s.logger.Warn("could not write checkpoint", "error", err)
			}

			newCount, err := s.runTask(ctx, ti, li)
			if err != nil {
				if isCancellation(err) {
					return err
				}
				s.logger.Error("task failed, continuing with next task", "error", err)
			}
			totalNew += newCount
		}
	}

	if err := s.checkpoint(len(s.niche.Terms)-1, len(s.niche.Locations)-1, progress.StatusCompleted); err != nil {
		s.logger.Warn("could not write checkpoint", "error", err)
	}

	s.logger.Info("run completed", "tasks", total, "new_leads", totalNew)
	return nil
}

// runTask builds the dedup scopes, opens a session, and hands the task to the
// pagination controller. The session is torn down on every exit path.
func (s *Scheduler) runTask(ctx context.Context, termIdx, locIdx int) (newLeads int, err error) {
	term := s.niche.Terms[termIdx]
	task := models.Task{
		NicheKey:  s.niche.Key,
		Term:      term.Slug,
		TermLabel: term.Label,
		Location:  s.niche.Locations[locIdx],
		TermIdx:   termIdx,
		LocIdx:    locIdx,
	}

	// The global scope is rebuilt before every task so leads persisted by
	// earlier tasks in this run are seen.
	store := dedup.NewStore()
	store.LoadGlobal(s.sink, s.niche, s.cfg.Output.BaseDir)

	session, err := s.newSession()
	if err != nil {
		return 0, fmt.Errorf("opening browser session: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			s.logger.Warn("session teardown failed", "error", closeErr)
		}
	}()

	controller := scraper.NewController(s.cfg, session, s.listings, s.emails, s.sink)
	report, err := controller.RunTask(ctx, s.niche, term, task, store)
	if report == nil {
		return 0, err
	}

	if report.Blocked > 0 {
		// The directory is pushing back; double the spacing between tasks
		// for the rest of the run.
		s.pacer.SetBand(2*s.cfg.Scraper.TaskDelayMin, 2*s.cfg.Scraper.TaskDelayMax)
		s.logger.Warn("blocks seen during task, slowing inter-task pacing", "blocked", report.Blocked)
	}

	return report.NewLeads, err
}

func (s *Scheduler) checkpoint(termIdx, locIdx int, status string) error {
	return progress.Save(s.niche.ProgressPath(s.cfg.Output.BaseDir), progress.Record{
		RunID:         s.runID,
		Niche:         s.niche.Key,
		TermIndex:     termIdx,
		LocationIndex: locIdx,
		Status:        status,
	})
}

func (s *Scheduler) checkIndexes(termIdx, locIdx int) error {
	if termIdx < 0 || termIdx >= len(s.niche.Terms) {
		return fmt.Errorf("term index %d out of range [0,%d)", termIdx, len(s.niche.Terms))
	}
	if locIdx < 0 || locIdx >= len(s.niche.Locations) {
		return fmt.Errorf("location index %d out of range [0,%d)", locIdx, len(s.niche.Locations))
	}
	return nil
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
