package logger

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedLogger_GetLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broker.log")
	l := NewIsolatedLogger(path)

	l.Info("selection", "first", map[string]interface{}{"n": 1})
	l.Info("conversation", "second", nil)
	l.Warn("selection", "third", map[string]interface{}{"n": 3})
	require.NoError(t, l.Sync())

	all, total, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Message)
	assert.Equal(t, "WARN", all[0].Level)
	assert.Equal(t, "first", all[2].Message)
	assert.NotEmpty(t, all[0].Id)

	sel, total, err := l.GetLogs("selection", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, sel, 1)
	assert.Equal(t, "first", sel[0].Message)
	assert.Equal(t, float64(1), sel[0].Details["n"])

	none, total, err := l.GetLogs("", 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, none)
}

func TestGetLogs_ReadsRotatedBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broker.log")

	gzFile, err := os.Create(filepath.Join(dir, "broker-2026-01-01T00-00-00.000.log.gz"))
	require.NoError(t, err)
	gz := gzip.NewWriter(gzFile)
	_, err = gz.Write([]byte(`{"level":"INFO","message":"oldest","module":"BROKER"}` + "\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, gzFile.Close())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broker-2026-02-01T00-00-00.000.log"),
		[]byte(`{"level":"INFO","message":"older","module":"BROKER"}`+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "system.log"),
		[]byte(`{"level":"INFO","message":"unrelated","module":"BROKER"}`+"\n"), 0o644))

	l := NewIsolatedLogger(path)
	l.Info("BROKER", "live", nil)
	require.NoError(t, l.Sync())

	logs, total, err := l.GetLogs("BROKER", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, logs, 3)
	assert.Equal(t, "live", logs[0].Message)
	assert.Equal(t, "older", logs[1].Message)
	assert.Equal(t, "oldest", logs[2].Message)
}

func TestGetLogs_MissingFile(t *testing.T) {
	l := NewIsolatedLogger(filepath.Join(t.TempDir(), "never-written.log"))
	logs, total, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, logs)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Error("mod", "ignored", map[string]interface{}{"error": "x"})
	logs, _, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
