package models

import "fmt"

const directoryBase = "https://www.yellowpages.com"

// Task is one (search term, location) unit of scraping work. Immutable once
// scheduled.
type Task struct {
	NicheKey  string
	Term      string
	TermLabel string
	Location  string
	TermIdx   int
	LocIdx    int
}

// BaseURL is the page-1 search URL for this task.
func (t Task) BaseURL() string {
	return fmt.Sprintf("%s/%s/%s", directoryBase, t.Location, t.Term)
}

// PageURL returns the URL for the given result page. Page 1 carries no query
// suffix.
func (t Task) PageURL(page int) string {
	if page <= 1 {
		return t.BaseURL()
	}
	return fmt.Sprintf("%s?page=%d", t.BaseURL(), page)
}

// DetailURL resolves a listing's relative detail href against the directory
// host.
func DetailURL(href string) string {
	if href == "" {
		return ""
	}
	return directoryBase + href
}

func (t Task) String() string {
	return fmt.Sprintf("%s @ %s", t.Term, t.Location)
}
