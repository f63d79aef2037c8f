package models

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"
)

// Lead is one scraped business. Field names mirror the output artifact's
// column headers; ID is internal and never written to the sheet.
type Lead struct {
	Seq         int
	CompanyName string
	Niche       string
	Category    string
	ContactName string
	Email       string
	Phone       string
	Website     string
	Address     string
	DateAdded   string
	DateCont    string
	DetailURL   string
	Notes       string
	Status      string

	// Tracking columns used by niches with the checkbox style.
	Called     string
	FollowedUp string
	Closed     string

	ID string
}

// NewLead stamps the capture date and computes the identity digest.
func NewLead(company, niche string) *Lead {
	return &Lead{
		CompanyName: company,
		Niche:       niche,
		DateAdded:   time.Now().Format("01/02/06"),
	}
}

// Identity derives the deduplication key from the normalized company name and
// phone. Two leads with the same normalized (name, phone) pair always collide,
// regardless of every other field. The digest is truncated to 12 hex
// characters; cross-business collisions at that width are accepted.
func Identity(companyName, phone string) string {
	key := strings.ToLower(strings.TrimSpace(companyName)) + "|" + strings.TrimSpace(phone)
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])[:12]
}

// ComputeID fills the lead's identity from its current name and phone.
func (l *Lead) ComputeID() {
	l.ID = Identity(l.CompanyName, l.Phone)
}

// HasEmail reports whether extraction produced a usable address.
func (l *Lead) HasEmail() bool {
	return strings.TrimSpace(l.Email) != ""
}
