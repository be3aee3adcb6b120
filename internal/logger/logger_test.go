package logger

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger
	Logger = zap.New(core).Sugar()
	t.Cleanup(func() { Logger = prev })
	return logs
}

func TestAttrFields(t *testing.T) {
	fields := AttrFields("/tmp/a", "com.example.note", Fields{"flags": "S"})
	assert.Equal(t, Fields{"path": "/tmp/a", "name": "com.example.note", "flags": "S"}, fields)

	assert.Equal(t, Fields{"path": "/tmp/a"}, AttrFields("/tmp/a", "", nil))
}

func TestFlattenFieldsSorted(t *testing.T) {
	flat := flattenFields(Fields{"path": "/p", "flags": "CS", "name": "n"})
	assert.Equal(t, []interface{}{"flags", "CS", "name", "n", "path", "/p"}, flat)
	assert.Empty(t, flattenFields(nil))
}

func TestLogHelpers(t *testing.T) {
	logs := observe(t)

	LogInfo("Attribute written", AttrFields("/p", "n", nil))
	LogError("Command execution failed", errors.New("boom"), nil)
	LogDebug("Opened attribute store", Fields{"backend": "memory"})

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, map[string]interface{}{"name": "n", "path": "/p"}, entries[0].ContextMap())
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
}

func TestInitLoggerWithFile(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	logFile := filepath.Join(t.TempDir(), "logs", "go-xattr.log")
	require.NoError(t, InitLogger(LoggerConfig{Debug: true, LogFormat: "json", LogFile: logFile}))
	LogInfo("hello", nil)
	_ = Sync()
	assert.FileExists(t, logFile)
}
