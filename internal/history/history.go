// Package history tracks recently synthesized rerun commands.
// This feeds `clx rerun -i` so a bundle can be picked without
// remembering its uuid.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Entry records one synthesized rerun.
type Entry struct {
	Bundle   string    `json:"bundle"`
	Command  string    `json:"command"`
	LastUsed time.Time `json:"last_used"`
}

// History stores recorded reruns, most recent first after sorting.
type History struct {
	Entries []Entry `json:"entries"`
}

// DefaultPath returns the default history file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".clx", "history.json")
}

// Load reads the history from disk.
// A missing or corrupted file yields an empty history, not an error.
func Load(path string) (*History, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &History{}, nil
		}
		return nil, err
	}

	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		// Corrupted - start fresh
		return &History{}, nil
	}
	return &h, nil
}

// Save writes the history to disk atomically.
func (h *History) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tempPath, path)
}

// Record upserts an entry for the given bundle, stamps it as most recent
// and prunes the list down to limit entries. A limit <= 0 keeps everything.
func (h *History) Record(bundle, command string, limit int) {
	h.RecordAt(bundle, command, limit, time.Now())
}

// RecordAt is Record with an explicit timestamp.
func (h *History) RecordAt(bundle, command string, limit int, now time.Time) {
	if e := h.FindByBundle(bundle); e != nil {
		e.Command = command
		e.LastUsed = now
	} else {
		h.Entries = append(h.Entries, Entry{Bundle: bundle, Command: command, LastUsed: now})
	}

	h.SortByRecency()
	if limit > 0 && len(h.Entries) > limit {
		h.Entries = h.Entries[:limit]
	}
}

// SortByRecency orders entries most recently used first.
func (h *History) SortByRecency() {
	sort.SliceStable(h.Entries, func(i, j int) bool {
		return h.Entries[i].LastUsed.After(h.Entries[j].LastUsed)
	})
}

// FindByBundle returns the entry for a bundle, or nil.
func (h *History) FindByBundle(bundle string) *Entry {
	for i := range h.Entries {
		if h.Entries[i].Bundle == bundle {
			return &h.Entries[i]
		}
	}
	return nil
}

// Clear removes all entries.
func (h *History) Clear() {
	h.Entries = nil
}
