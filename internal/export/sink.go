// Package export reads and writes the spreadsheet artifacts that hold leads:
// one workbook per task, plus the corpus-wide merged and has-email exports.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/softleads/yp-lead-scraper/internal/filter"
	"github.com/softleads/yp-lead-scraper/internal/models"
	"github.com/softleads/yp-lead-scraper/internal/niche"
)

const sheetName = "Sheet1"

// Pipeline-stage labels offered by the Status dropdown.
var statusChoices = []string{
	"Not Contacted", "Contacted", "Interested", "Not Interested", "Closed Won", "Closed Lost",
}

const defaultStatus = "Not Contacted"

// Checkbox glyphs used by the Called / Followed Up / Closed trio.
var checkboxChoices = []string{"☐", "☑"}

const uncheckedBox = "☐"

var baseHeaders = []string{
	"#", "Company Name", "Niche/Industry", "Category", "Contact Name",
	"Email Address", "Phone Number", "Website URL", "Address",
	"Date Added", "Date Contacted", "Source", "Notes",
}

func headersFor(style niche.TrackingStyle) []string {
	if style == niche.TrackingCheckboxes {
		return append(append([]string{}, baseHeaders...), "Called", "Followed Up", "Closed")
	}
	return append(append([]string{}, baseHeaders...), "Status")
}

// Sink persists leads to spreadsheet artifacts. Saves are full overwrites so
// on-disk row numbering and dropdown state stay consistent; the caller is the
// sole writer of any given artifact.
type Sink struct {
	websites *filter.Website
	logger   *slog.Logger
}

func NewSink(websites *filter.Website) *Sink {
	return &Sink{
		websites: websites,
		logger:   slog.Default().With("component", "export"),
	}
}

// Load reads an artifact back into leads, re-applying the website filter in
// case the blacklist tightened between runs. A missing file yields an empty
// slice; a corrupt file is an error the caller may degrade.
func (s *Sink) Load(path string) ([]*models.Lead, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening artifact %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading artifact %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		cols[header] = i
	}

	cell := func(row []string, header string) string {
		idx, ok := cols[header]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var leads []*models.Lead
	for _, row := range rows[1:] {
		lead := &models.Lead{
			CompanyName: cell(row, "Company Name"),
			Niche:       cell(row, "Niche/Industry"),
			Category:    cell(row, "Category"),
			ContactName: cell(row, "Contact Name"),
			Email:       cell(row, "Email Address"),
			Phone:       cell(row, "Phone Number"),
			Website:     cell(row, "Website URL"),
			Address:     cell(row, "Address"),
			DateAdded:   cell(row, "Date Added"),
			DateCont:    cell(row, "Date Contacted"),
			DetailURL:   cell(row, "Source"),
			Notes:       cell(row, "Notes"),
			Status:      cell(row, "Status"),
			Called:      cell(row, "Called"),
			FollowedUp:  cell(row, "Followed Up"),
			Closed:      cell(row, "Closed"),
		}

		if lead.CompanyName == "" {
			continue
		}
		if !s.websites.IsReal(lead.Website) {
			continue
		}

		lead.ComputeID()
		leads = append(leads, lead)
	}

	return leads, nil
}

// Save rewrites the artifact from scratch: sequence numbers recomputed in
// current order, then the tracking columns re-attached with their dropdown
// constraints. Safe to call after every page.
func (s *Sink) Save(path string, leads []*models.Lead, style niche.TrackingStyle) error {
	kept := make([]*models.Lead, 0, len(leads))
	for _, lead := range leads {
		if s.websites.IsReal(lead.Website) {
			kept = append(kept, lead)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headers := headersFor(style)
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i, lead := range kept {
		lead.Seq = i + 1
		row := rowFor(lead, style)
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cellRef, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving artifact %s: %w", path, err)
	}

	if err := s.attachTracking(path, style); err != nil {
		// The data is on disk; a failed dropdown is a warning, not a loss.
		s.logger.Warn("could not attach tracking columns", "path", path, "error", err)
	}

	return nil
}

func rowFor(lead *models.Lead, style niche.TrackingStyle) []interface{} {
	row := []interface{}{
		lead.Seq, lead.CompanyName, lead.Niche, lead.Category, lead.ContactName,
		lead.Email, lead.Phone, lead.Website, lead.Address,
		lead.DateAdded, lead.DateCont, lead.DetailURL, lead.Notes,
	}
	if style == niche.TrackingCheckboxes {
		return append(row, lead.Called, lead.FollowedUp, lead.Closed)
	}
	return append(row, lead.Status)
}

// attachTracking re-opens the artifact and (re)applies the constrained-choice
// columns: a Status dropdown, or the checkbox trio, with defaults for unset
// cells.
func (s *Sink) attachTracking(path string, style niche.TrackingStyle) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		cols[header] = i + 1
	}

	targets := map[string][]string{}
	defaults := map[string]string{}
	if style == niche.TrackingCheckboxes {
		for _, name := range []string{"Called", "Followed Up", "Closed"} {
			targets[name] = checkboxChoices
			defaults[name] = uncheckedBox
		}
	} else {
		targets["Status"] = statusChoices
		defaults["Status"] = defaultStatus
	}

	lastRow := len(rows)
	for name, choices := range targets {
		colIdx, ok := cols[name]
		if !ok {
			continue
		}
		colName, err := excelize.ColumnNumberToName(colIdx)
		if err != nil {
			return err
		}

		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s2:%s%d", colName, colName, lastRow)
		if err := dv.SetDropList(choices); err != nil {
			return err
		}
		if err := f.AddDataValidation(sheet, dv); err != nil {
			return err
		}

		for rowIdx := 2; rowIdx <= lastRow; rowIdx++ {
			cellRef := fmt.Sprintf("%s%d", colName, rowIdx)
			value, err := f.GetCellValue(sheet, cellRef)
			if err != nil {
				continue
			}
			if strings.TrimSpace(value) == "" {
				if err := f.SetCellValue(sheet, cellRef, defaults[name]); err != nil {
					return err
				}
			}
		}
	}

	return f.Save()
}

// ListArtifacts returns the per-task artifacts in a niche's export dir,
// skipping the derived merged/hot exports.
func (s *Sink) ListArtifacts(n *niche.Niche, baseDir string) ([]string, error) {
	pattern := filepath.Join(n.OutputDir(baseDir), fmt.Sprintf("yp_%s_*.xlsx", n.Key))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var artifacts []string
	for _, m := range matches {
		base := filepath.Base(m)
		if strings.Contains(base, "MERGED") || strings.Contains(base, "EMAILS") || strings.Contains(base, "HOT") {
			continue
		}
		artifacts = append(artifacts, m)
	}
	return artifacts, nil
}
