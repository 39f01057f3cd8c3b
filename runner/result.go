package runner

import (
	"time"
)

// Status classifies the outcome of one hook invocation.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Result records the outcome of one hook invocation.
type Result struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Status   Status        `json:"status"`
	Duration time.Duration `json:"duration"`
	Output   string        `json:"output,omitempty"`
	ExitCode int           `json:"exit_code"`
	Files    int           `json:"files"`
}

// Summary aggregates the results of a stage run.
type Summary struct {
	Stage   string   `json:"stage"`
	Branch  string   `json:"branch,omitempty"`
	Results []Result `json:"results"`
}

// Failed reports whether any hook failed. A failing hook blocks the
// corresponding git lifecycle action.
func (s *Summary) Failed() bool {
	for _, r := range s.Results {
		if r.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Counts returns the number of passed, failed, and skipped hooks.
func (s *Summary) Counts() (passed, failed, skipped int) {
	for _, r := range s.Results {
		switch r.Status {
		case StatusPassed:
			passed++
		case StatusFailed:
			failed++
		case StatusSkipped:
			skipped++
		}
	}
	return
}
