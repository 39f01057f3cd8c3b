package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const nameColumnWidth = 50

var (
	passedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	outputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// Render writes a human-readable run summary: one dot-padded line per hook,
// failing hook output indented beneath it, and a final tally.
func (s *Summary) Render(w io.Writer) {
	header := fmt.Sprintf("hookline: %s stage", s.Stage)
	if s.Branch != "" {
		header += fmt.Sprintf(" (%s)", s.Branch)
	}
	fmt.Fprintln(w, headerStyle.Render(header))

	for _, r := range s.Results {
		fmt.Fprintf(w, "%s%s\n", padName(r.Name), statusLabel(r))

		if r.Output != "" && (r.Status == StatusFailed || r.Status == StatusPassed) {
			for _, line := range strings.Split(r.Output, "\n") {
				fmt.Fprintf(w, "    %s\n", outputStyle.Render(line))
			}
		}
	}

	passed, failed, skipped := s.Counts()
	fmt.Fprintf(w, "\n%d passed, %d failed, %d skipped\n", passed, failed, skipped)
}

func padName(name string) string {
	if len(name) >= nameColumnWidth {
		return name
	}
	return name + strings.Repeat(".", nameColumnWidth-len(name))
}

func statusLabel(r Result) string {
	switch r.Status {
	case StatusPassed:
		return passedStyle.Render("Passed")
	case StatusFailed:
		return failedStyle.Render(fmt.Sprintf("Failed (exit %d)", r.ExitCode))
	default:
		return skippedStyle.Render("Skipped (no files to check)")
	}
}
