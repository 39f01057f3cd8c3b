package logging

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// Config defines the structure for the logging section in .hookline.yaml.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	// Can be overridden by the HOOKLINE_LOG_LEVEL environment variable.
	Level string `yaml:"level,omitempty" json:"level,omitempty" jsonschema:"description=Minimum log level"`

	// Format selects the log output format: "text" (default) or "json".
	Format string `yaml:"format,omitempty" json:"format,omitempty" jsonschema:"description=Log output format"`

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	// Can be enabled with the HOOKLINE_LOG_CALLER=true environment variable.
	ReportCaller bool `yaml:"report_caller,omitempty" json:"report_caller,omitempty" jsonschema:"description=Include caller information in log output"`
}

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	return NewLoggerWithConfig(component, Config{})
}

// NewLoggerWithConfig creates a component logger honoring the given config.
// Environment variables take precedence over the config values.
func NewLoggerWithConfig(component string, cfg Config) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()
	logger.SetOutput(stderrWriter())

	// Configure Level
	levelStr := "info"
	if cfg.Level != "" {
		levelStr = cfg.Level
	}
	if env := os.Getenv("HOOKLINE_LOG_LEVEL"); env != "" {
		levelStr = env
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configure Caller Reporting
	if os.Getenv("HOOKLINE_LOG_CALLER") == "true" || cfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	// Configure Formatter
	format := cfg.Format
	if env := os.Getenv("HOOKLINE_LOG_FORMAT"); env != "" {
		format = env
	}
	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: !isInteractive(),
			FullTimestamp: true,
		})
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// ResetForTesting clears the component logger cache.
func ResetForTesting() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	loggers = make(map[string]*logrus.Entry)
}

func stderrWriter() io.Writer {
	return os.Stderr
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}
