// Package progress persists the task scheduler's checkpoint so an
// interrupted cross-product run can resume where it left off.
package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Record is the checkpoint overwritten after every task.
type Record struct {
	RunID         string    `json:"run_id"`
	Niche         string    `json:"niche"`
	TermIndex     int       `json:"term_index"`
	LocationIndex int       `json:"location_index"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

// Save overwrites the checkpoint atomically (temp file + rename).
func Save(path string, rec Record) error {
	rec.Timestamp = time.Now()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding progress: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing progress: %w", err)
	}

	return os.Rename(tmp, path)
}

// Load reads the checkpoint. A missing file returns (nil, nil).
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading progress: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding progress %s: %w", path, err)
	}
	return &rec, nil
}
