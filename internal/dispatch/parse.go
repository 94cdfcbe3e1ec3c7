package dispatch

import (
	"regexp"
	"strconv"
	"strings"
)

// JobInfo is one parsed row of q -list -tabs output.
type JobInfo struct {
	Handle      string `json:"handle"`
	Hostname    string `json:"hostname,omitempty"`
	State       string `json:"state"`
	ExitCode    *int   `json:"exitcode,omitempty"`
	ExitReason  string `json:"exitreason,omitempty"`
	TimeSeconds *int64 `json:"time,omitempty"`
	MemoryBytes *int64 `json:"memory,omitempty"`
}

var handleRegex = regexp.MustCompile(`Job \((J-\S+)\) added successfully`)

// parseHandle extracts the job handle from a submission answer.
// Returns "" when the answer doesn't match.
func parseHandle(raw string) string {
	m := handleRegex.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1]
}

// parseInfoTable parses q -list -tabs output.
//
// Example row:
//
//	J-ifnrj9	mazurka-37 mazurka	done	0	reason	100	1	-1		sleep 100
//
// Columns: handle, worker, status, exitCode, exitReason, time, mem, disk,
// outName, command. The worker column is "name hostname"; only the
// hostname (last field) is kept. Any status other than "running" maps to
// "queued" except terminal states, which q reports but downstream
// schedulers treat as queued history - the mapping mirrors that.
func parseInfoTable(raw string) []JobInfo {
	var infos []JobInfo

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		tokens := strings.Split(line, "\t")
		info := JobInfo{Handle: tokens[0]}

		if col(tokens, 1) != "" {
			fields := strings.Fields(tokens[1])
			info.Hostname = fields[len(fields)-1]
		}

		if col(tokens, 2) == "running" {
			info.State = "running"
		} else {
			info.State = "queued"
		}

		if v := col(tokens, 3); v != "" {
			if code, err := strconv.Atoi(v); err == nil {
				info.ExitCode = &code
			}
		}

		info.ExitReason = col(tokens, 4)

		if v := col(tokens, 5); v != "" {
			if t, err := strconv.ParseInt(v, 10, 64); err == nil {
				info.TimeSeconds = &t
			}
		}

		if v := col(tokens, 6); v != "" {
			if mb, err := strconv.ParseInt(v, 10, 64); err == nil {
				mem := mb * 1024 * 1024
				info.MemoryBytes = &mem
			}
		}

		infos = append(infos, info)
	}

	return infos
}

func col(tokens []string, i int) string {
	if i >= len(tokens) {
		return ""
	}
	return tokens[i]
}
