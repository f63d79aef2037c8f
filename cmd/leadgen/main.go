package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/softleads/yp-lead-scraper/internal/browser"
	"github.com/softleads/yp-lead-scraper/internal/config"
	"github.com/softleads/yp-lead-scraper/internal/email"
	"github.com/softleads/yp-lead-scraper/internal/export"
	"github.com/softleads/yp-lead-scraper/internal/filter"
	"github.com/softleads/yp-lead-scraper/internal/niche"
	"github.com/softleads/yp-lead-scraper/internal/parser"
	"github.com/softleads/yp-lead-scraper/internal/scheduler"
	"github.com/softleads/yp-lead-scraper/pkg/logger"
)

func main() {
	var (
		mode      = flag.String("mode", "single", "Mode: single, batch, all, resume, merge, hot or stats")
		nicheKey  = flag.String("niche", "", "Built-in niche key (see -list)")
		nicheFile = flag.String("niche-file", "", "Load a custom niche from a YAML file instead of -niche")
		termIdx   = flag.Int("term", 0, "Search term index (single and batch modes)")
		locIdx    = flag.Int("location", 0, "Location index (single mode)")
		pages     = flag.Int("pages", 0, "Max result pages per task (0 = config default)")
		headless  = flag.Bool("headless", false, "Run browser in headless mode")
		noEmails  = flag.Bool("no-emails", false, "Skip the email extraction cascade")
		list      = flag.Bool("list", false, "List built-in niches and exit")
	)
	flag.Parse()

	if *list {
		for _, key := range niche.Keys() {
			n, _ := niche.Get(key)
			fmt.Printf("%-10s %s (%d terms x %d locations)\n", key, n.Label, len(n.Terms), len(n.Locations))
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *pages > 0 {
		cfg.Scraper.MaxPages = *pages
	}
	if *headless {
		cfg.Browser.Headless = true
	}
	if *noEmails {
		cfg.Scraper.FetchEmails = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	runID := uuid.NewString()
	logger := logger.New(cfg.Logging.Level, cfg.Logging.Format).With("run_id", runID)
	slog.SetDefault(logger)

	n, err := resolveNiche(*nicheKey, *nicheFile)
	if err != nil {
		logger.Error("Failed to resolve niche", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting lead scraper",
		"mode", *mode,
		"niche", n.Key,
		"headless", cfg.Browser.Headless)

	websites := filter.NewWebsite(n.WebsiteBlacklist...)
	emailFilter := filter.NewEmail(n.EmailBlacklist...)
	sink := export.NewSink(websites)

	switch *mode {
	case "merge", "hot":
		// Both rebuild the merged artifact and its has-email sub-export.
		result, err := sink.Merge(n, cfg.Output.BaseDir)
		if err != nil {
			logger.Error("Merge failed", "error", err)
			os.Exit(1)
		}
		logger.Info("Merge completed",
			"files", result.FilesMerged,
			"unique_leads", result.UniqueLeads,
			"with_emails", result.WithEmails,
			"merged", result.MergedPath,
			"hot", result.HotPath)
		return

	case "stats":
		total, withEmails, byCategory, err := sink.Stats(n, cfg.Output.BaseDir)
		if err != nil {
			logger.Error("Stats failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Total leads:       %d\n", total)
		fmt.Printf("Leads with emails: %d\n", withEmails)
		fmt.Println("By category:")
		for _, c := range byCategory {
			fmt.Printf("  %6d  %s\n", c.Count, c.Category)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutdown signal received")
		cancel()
	}()

	newSession := func() (browser.Session, error) {
		return browser.NewPlaywrightSession(cfg)
	}
	listings := parser.NewListing(websites)
	emails := email.NewExtractor(cfg, websites, emailFilter)
	sched := scheduler.New(cfg, n, runID, newSession, listings, emails, sink)

	switch *mode {
	case "single":
		err = sched.RunSingle(ctx, *termIdx, *locIdx)
	case "batch":
		err = sched.RunBatch(ctx, *termIdx)
	case "all":
		err = sched.RunAll(ctx)
	case "resume":
		err = sched.Resume(ctx)
	default:
		fmt.Printf("Unknown mode: %s\n", *mode)
		flag.Usage()
		os.Exit(1)
	}

	if err != nil {
		if ctx.Err() != nil {
			logger.Info("Run interrupted, progress checkpoint preserved")
			return
		}
		logger.Error("Run failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Run finished")
}

func resolveNiche(key, file string) (*niche.Niche, error) {
	switch {
	case file != "":
		return niche.LoadFile(file)
	case key != "":
		return niche.Get(key)
	default:
		return nil, fmt.Errorf("provide -niche or -niche-file (built-ins: %v)", niche.Keys())
	}
}
