package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ROSTERCOST_CONFIG",
		"ROSTERCOST_DB",
		"ROSTERCOST_LOG_LEVEL",
		"ROSTERCOST_REPORT_WORKERS",
		"ROSTERCOST_CYCLE_CHECK",
		"ROSTERCOST_FALLBACK_WORK_CODES",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "rostercost.db", filepath.Base(cfg.DB.Path))
	assert.Equal(t, 1, cfg.Report.Workers)
	assert.Equal(t, domain.CycleGraph, cfg.CyclePolicy())
	assert.Equal(t, domain.DefaultWorkShiftCodes, cfg.Cost.FallbackWorkCodes)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "rostercost.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db:
  path: /tmp/from-file.db
log:
  level: debug
report:
  workers: 4
cost:
  cycle_check: reciprocal
  fallback_work_codes: ["D", "N"]
`), 0o644))
	t.Setenv("ROSTERCOST_CONFIG", path)
	t.Setenv("ROSTERCOST_REPORT_WORKERS", "2")
	t.Setenv("ROSTERCOST_FALLBACK_WORK_CODES", "1, 2 ,,ดึก")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-file.db", cfg.DB.Path)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, 2, cfg.Report.Workers)
	assert.Equal(t, domain.CycleReciprocal, cfg.CyclePolicy())
	assert.Equal(t, []string{"1", "2", "ดึก"}, cfg.Cost.FallbackWorkCodes)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"workers not a number", "ROSTERCOST_REPORT_WORKERS", "many"},
		{"workers zero", "ROSTERCOST_REPORT_WORKERS", "0"},
		{"unknown cycle check", "ROSTERCOST_CYCLE_CHECK", "none"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("ROSTERCOST_DB", ":memory:")
			t.Setenv(tc.key, tc.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("ROSTERCOST_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
