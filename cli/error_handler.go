package cli

import (
	"fmt"
	"os"

	"github.com/hookline/hookline/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "No configuration found. Run 'hookline init' to create a .hookline.yaml.\n")
		return err

	case errors.ErrCodeConfigValidation:
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'hookline validate' for a full report.\n")
		return err

	case errors.ErrCodeHookNotFound:
		if hlErr, ok := err.(*errors.HooklineError); ok {
			fmt.Fprintf(os.Stderr, "Hook '%s' is not provided by source '%s'.\n",
				hlErr.Details["hook"], hlErr.Details["source"])
			fmt.Fprintf(os.Stderr, "Check the source's %s for available hook ids.\n", ".hookline-hooks.yaml")
		}
		return err

	case errors.ErrCodeStageUnknown:
		if hlErr, ok := err.(*errors.HooklineError); ok {
			fmt.Fprintf(os.Stderr, "Unknown stage '%s'. Valid stages are 'commit' and 'push'.\n",
				hlErr.Details["stage"])
		}
		return err

	case errors.ErrCodeSourceFetchFailed:
		if hlErr, ok := err.(*errors.HooklineError); ok {
			fmt.Fprintf(os.Stderr, "Failed to fetch hook source %s at %s.\n",
				hlErr.Details["repo"], hlErr.Details["rev"])
			fmt.Fprintf(os.Stderr, "Check the repository URL and revision pin, and your network access.\n")
		}
		return err

	case errors.ErrCodeNotARepository:
		fmt.Fprintf(os.Stderr, "Not inside a git repository. Run hookline from a repository checkout.\n")
		return err

	case errors.ErrCodeCommandNotFound:
		fmt.Fprintf(os.Stderr, "Required command not found. Make sure git is installed and on PATH.\n")
		return err

	default:
		// Generic error handling
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// If verbose mode, show full error details
		if h.Verbose {
			if hlErr, ok := err.(*errors.HooklineError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", hlErr.ToJSON())
			}
		}
		return err
	}
}
