package logger

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/deploymenttheory/go-xattr/internal/common/fsutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process wide logger. It discards everything until
// InitLogger runs, so library callers and tests stay quiet.
var Logger = zap.NewNop().Sugar()

// Fields are structured key/value pairs attached to a log entry
type Fields map[string]interface{}

// LoggerConfig contains configuration for the logger
type LoggerConfig struct {
	Debug     bool   // Enable debug level logging
	LogFormat string // "json" or "human"
	LogFile   string // Path to log file (optional)
}

// InitLogger initializes the logger with the provided configuration.
// Entries go to stderr so attribute values printed on stdout stay clean.
func InitLogger(config LoggerConfig) error {
	var zapConfig zap.Config

	if config.LogFormat == "json" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		// Stack traces on warnings are noise for a command line tool
		zapConfig.DisableStacktrace = true
	}

	level := zap.InfoLevel
	if config.Debug {
		level = zap.DebugLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	zapConfig.OutputPaths = []string{"stderr"}
	if config.LogFile != "" {
		if err := fsutil.CreateDirIfNotExists(filepath.Dir(config.LogFile)); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		zapConfig.OutputPaths = append(zapConfig.OutputPaths, config.LogFile)
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	Logger = logger.Sugar()
	return nil
}

// AttrFields returns the fields identifying one attribute of one file.
// extra is merged in and may be nil.
func AttrFields(path, name string, extra Fields) Fields {
	fields := Fields{"path": path}
	if name != "" {
		fields["name"] = name
	}
	for k, v := range extra {
		fields[k] = v
	}
	return fields
}

func LogInfo(message string, fields Fields) {
	Logger.Infow(message, flattenFields(fields)...)
}

func LogWarn(message string, fields Fields) {
	Logger.Warnw(message, flattenFields(fields)...)
}

func LogError(message string, err error, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	Logger.Errorw(message, flattenFields(fields)...)
}

func LogDebug(message string, fields Fields) {
	Logger.Debugw(message, flattenFields(fields)...)
}

// flattenFields turns fields into zap's alternating key/value form, sorted by
// key so entries are stable between runs
func flattenFields(fields Fields) []interface{} {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	flat := make([]interface{}, 0, 2*len(keys))
	for _, k := range keys {
		flat = append(flat, k, fields[k])
	}
	return flat
}

// Sync flushes any buffered log entries
func Sync() error {
	return Logger.Sync()
}
