package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/softleads/yp-lead-scraper/internal/filter"
	"github.com/softleads/yp-lead-scraper/internal/models"
	"github.com/softleads/yp-lead-scraper/internal/niche"
)

func testLead(company, phone, website string) *models.Lead {
	lead := models.NewLead(company, "Janitorial/Cleaning Supplier")
	lead.Phone = phone
	lead.Website = website
	lead.Category = "Janitorial Service"
	lead.Address = "350 5th Ave New York, NY 10118"
	lead.ComputeID()
	return lead
}

func testNiche(tracking niche.TrackingStyle) *niche.Niche {
	return &niche.Niche{
		Key:       "janitor",
		Label:     "Janitorial/Cleaning Supplier",
		Terms:     []niche.SearchTerm{{Slug: "cleaning-supplies"}},
		Locations: []string{"queens-ny"},
		Tracking:  tracking,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	sink := NewSink(filter.NewWebsite())
	path := filepath.Join(t.TempDir(), "exports_janitor", "yp_janitor_queens-ny_cleaning-supplies.xlsx")

	leads := []*models.Lead{
		testLead("Acme Cleaning", "(212) 555-0100", "https://acme-cleaning.com"),
		testLead("Zenith Janitorial", "(212) 555-0102", "https://zenith-janitorial.com"),
	}
	leads[0].Email = "info@acme-cleaning.com"

	require.NoError(t, sink.Save(path, leads, niche.TrackingStatus))

	loaded, err := sink.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "Acme Cleaning", loaded[0].CompanyName)
	assert.Equal(t, "info@acme-cleaning.com", loaded[0].Email)
	assert.Equal(t, "(212) 555-0100", loaded[0].Phone)
	assert.Equal(t, leads[0].ID, loaded[0].ID)
	// Unset status cells got the dropdown default.
	assert.Equal(t, "Not Contacted", loaded[0].Status)
	assert.Equal(t, "Zenith Janitorial", loaded[1].CompanyName)
}

func TestSaveCheckboxTracking(t *testing.T) {
	sink := NewSink(filter.NewWebsite())
	path := filepath.Join(t.TempDir(), "artifact.xlsx")

	lead := testLead("Acme Signs", "(212) 555-0100", "https://acme-signs.com")
	require.NoError(t, sink.Save(path, []*models.Lead{lead}, niche.TrackingCheckboxes))

	loaded, err := sink.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	assert.Equal(t, "☐", loaded[0].Called)
	assert.Equal(t, "☐", loaded[0].FollowedUp)
	assert.Equal(t, "☐", loaded[0].Closed)
	assert.Empty(t, loaded[0].Status)
}

func TestSaveWritesHeadersAndSequence(t *testing.T) {
	sink := NewSink(filter.NewWebsite())
	path := filepath.Join(t.TempDir(), "artifact.xlsx")

	leads := []*models.Lead{
		testLead("Acme Cleaning", "(212) 555-0100", "https://acme-cleaning.com"),
		testLead("Zenith Janitorial", "(212) 555-0102", "https://zenith-janitorial.com"),
	}
	require.NoError(t, sink.Save(path, leads, niche.TrackingStatus))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "#", rows[0][0])
	assert.Equal(t, "Company Name", rows[0][1])
	assert.Equal(t, "Status", rows[0][len(rows[0])-1])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2", rows[2][0])
}

func TestSaveFiltersDirectoryWebsites(t *testing.T) {
	sink := NewSink(filter.NewWebsite())
	path := filepath.Join(t.TempDir(), "artifact.xlsx")

	leads := []*models.Lead{
		testLead("Acme Cleaning", "(212) 555-0100", "https://acme-cleaning.com"),
		testLead("Apex Supplies", "(212) 555-0101", "https://www.yellowpages.com/apex"),
	}
	require.NoError(t, sink.Save(path, leads, niche.TrackingStatus))

	loaded, err := sink.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Acme Cleaning", loaded[0].CompanyName)
}

func TestSaveNothingQualifying(t *testing.T) {
	sink := NewSink(filter.NewWebsite())
	path := filepath.Join(t.TempDir(), "artifact.xlsx")

	lead := testLead("Apex Supplies", "(212) 555-0101", "https://www.yellowpages.com/apex")
	require.NoError(t, sink.Save(path, []*models.Lead{lead}, niche.TrackingStatus))

	// No qualifying leads means no file is written at all.
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadMissingFile(t *testing.T) {
	sink := NewSink(filter.NewWebsite())

	leads, err := sink.Load(filepath.Join(t.TempDir(), "nope.xlsx"))

	assert.NoError(t, err)
	assert.Nil(t, leads)
}

func TestLoadCorruptFile(t *testing.T) {
	sink := NewSink(filter.NewWebsite())
	path := filepath.Join(t.TempDir(), "corrupt.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := sink.Load(path)
	assert.Error(t, err)
}

func TestListArtifactsSkipsDerivedExports(t *testing.T) {
	baseDir := t.TempDir()
	sink := NewSink(filter.NewWebsite())
	n := testNiche(niche.TrackingStatus)

	lead := testLead("Acme Cleaning", "(212) 555-0100", "https://acme-cleaning.com")
	require.NoError(t, sink.Save(n.ArtifactPath(baseDir, "queens-ny", "cleaning-supplies"), []*models.Lead{lead}, n.Tracking))
	require.NoError(t, sink.Save(n.ArtifactPath(baseDir, "newark-nj", "cleaning-supplies"), []*models.Lead{lead}, n.Tracking))
	require.NoError(t, sink.Save(n.MergedPath(baseDir), []*models.Lead{lead}, n.Tracking))
	require.NoError(t, sink.Save(n.HotPath(baseDir), []*models.Lead{lead}, n.Tracking))

	paths, err := sink.ListArtifacts(n, baseDir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, path := range paths {
		assert.Contains(t, filepath.Base(path), "yp_janitor_")
	}
}
