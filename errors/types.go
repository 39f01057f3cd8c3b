package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Hook errors
	ErrCodeHookFailed    ErrorCode = "HOOK_FAILED"
	ErrCodeHookNotFound  ErrorCode = "HOOK_NOT_FOUND"
	ErrCodeHookDuplicate ErrorCode = "HOOK_DUPLICATE"
	ErrCodeStageUnknown  ErrorCode = "STAGE_UNKNOWN"

	// Hook source errors
	ErrCodeSourceFetchFailed ErrorCode = "SOURCE_FETCH_FAILED"
	ErrCodeManifestMissing   ErrorCode = "MANIFEST_MISSING"
	ErrCodeManifestInvalid   ErrorCode = "MANIFEST_INVALID"

	// Command execution errors
	ErrCodeCommandTimeout  ErrorCode = "COMMAND_TIMEOUT"
	ErrCodeCommandNotFound ErrorCode = "COMMAND_NOT_FOUND"
	ErrCodeCommandFailed   ErrorCode = "COMMAND_FAILED"

	// Git errors
	ErrCodeGitNotInstalled ErrorCode = "GIT_NOT_INSTALLED"
	ErrCodeNotARepository  ErrorCode = "NOT_A_REPOSITORY"
	ErrCodeHooksDirFailed  ErrorCode = "HOOKS_DIR_FAILED"

	// General errors
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrCodePermissionDenied ErrorCode = "PERMISSION_DENIED"
)

// HooklineError represents a structured error with context
type HooklineError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *HooklineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HooklineError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *HooklineError) WithDetail(key string, value interface{}) *HooklineError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *HooklineError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new HooklineError
func New(code ErrorCode, message string) *HooklineError {
	return &HooklineError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a HooklineError
func Wrap(err error, code ErrorCode, message string) *HooklineError {
	return &HooklineError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific HooklineError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	hlErr, ok := err.(*HooklineError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return hlErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	hlErr, ok := err.(*HooklineError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return hlErr.Code
}
