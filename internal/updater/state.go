package updater

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const stateFileName = "update-check.json"

// CheckInterval is how long a recorded release check stays fresh before the
// banner triggers a background refresh.
const CheckInterval = 24 * time.Hour

// CheckState records the outcome of the most recent release check. It is
// persisted as JSON in the config directory.
type CheckState struct {
	Current   string    `json:"current"`
	Latest    string    `json:"latest"`
	Newer     bool      `json:"newer"`
	CheckedAt time.Time `json:"checked_at"`
}

// ReadState loads the recorded check state from dir. A missing file yields
// (nil, nil): no check has happened yet.
func ReadState(dir string) (*CheckState, error) {
	data, err := os.ReadFile(filepath.Join(dir, stateFileName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading update-check state: %w", err)
	}

	var st CheckState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing update-check state: %w", err)
	}
	return &st, nil
}

// Write persists the state into dir, creating it if needed.
func (st *CheckState) Write(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding update-check state: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, stateFileName), data, 0644); err != nil {
		return fmt.Errorf("writing update-check state: %w", err)
	}
	return nil
}

// Fresh reports whether the state is recent enough to skip a re-check.
// A nil state is never fresh.
func (st *CheckState) Fresh(now time.Time) bool {
	if st == nil {
		return false
	}
	return now.Sub(st.CheckedAt) <= CheckInterval
}
