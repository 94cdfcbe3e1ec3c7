// Package format renders and parses the human-readable value forms used
// throughout CodaLab tooling: 1024-based sizes (100K, 2.5G), compact
// durations (1m40s, 2h46m), and timestamps.
package format
