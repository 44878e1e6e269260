package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/sidenav/errors"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "#content", c.ContentTarget)
	assert.True(t, c.EnableMetrics)
	assert.Equal(t, "/metrics", c.MetricsPath)
	assert.False(t, c.DefaultCollapsed)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		opts []ConfigOption
		key  string
	}{
		{"empty addr", []ConfigOption{WithAddr("")}, "addr"},
		{"negative timeout", []ConfigOption{WithShutdownTimeout(-time.Second)}, "shutdown_timeout"},
		{"bad target", []ConfigOption{WithContentTarget("main")}, "content_target"},
		{"bad metrics path", []ConfigOption{WithMetricsPath("metrics")}, "metrics_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.opts...).Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidConfig(err))
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate_MetricsPathIgnoredWhenDisabled(t *testing.T) {
	c := New(WithMetrics(false), WithMetricsPath(""))
	assert.NoError(t, c.Validate())
}

func TestNew_AppliesOptions(t *testing.T) {
	c := New(
		WithAddr(":9000"),
		WithTitle("Docs"),
		WithManifest("nav.json"),
		WithDefaultCollapsed(true),
		WithContentTarget("#main"),
	)

	assert.Equal(t, ":9000", c.Addr)
	assert.Equal(t, "Docs", c.Title)
	assert.Equal(t, "nav.json", c.Manifest)
	assert.True(t, c.DefaultCollapsed)
	assert.Equal(t, "#main", c.ContentTarget)
	assert.Equal(t, "/metrics", c.MetricsPath, "untouched fields keep defaults")
}

func TestLoadFile(t *testing.T) {
	t.Setenv("SIDENAV_TEST_TITLE", "From Env")

	path := filepath.Join(t.TempDir(), "sidenav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9090"
title: ${SIDENAV_TEST_TITLE}
default_collapsed: true
shutdown_timeout: 3s
logging:
  level: debug
`), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", c.Addr)
	assert.Equal(t, "From Env", c.Title)
	assert.True(t, c.DefaultCollapsed)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "#content", c.ContentTarget, "defaults fill missing keys")
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, errors.ErrConfigErrorSentinel))

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unterminated"), 0o600))

	_, err = LoadFile(path)
	assert.True(t, errors.Is(err, errors.ErrConfigErrorSentinel))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SIDENAV_ADDR", ":7000")
	t.Setenv("SIDENAV_DEFAULT_COLLAPSED", "true")
	t.Setenv("SIDENAV_ENABLE_METRICS", "false")
	t.Setenv("SIDENAV_SHUTDOWN_TIMEOUT", "1m")
	t.Setenv("SIDENAV_LOG_LEVEL", "warn")

	c := DefaultConfig()
	require.NoError(t, c.ApplyEnv())

	assert.Equal(t, ":7000", c.Addr)
	assert.True(t, c.DefaultCollapsed)
	assert.False(t, c.EnableMetrics)
	assert.Equal(t, time.Minute, c.ShutdownTimeout)
	assert.Equal(t, "warn", c.Logging.Level)
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Setenv("SIDENAV_DEFAULT_COLLAPSED", "sometimes")

	c := DefaultConfig()
	err := c.ApplyEnv()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))

	t.Setenv("SIDENAV_DEFAULT_COLLAPSED", "false")
	t.Setenv("SIDENAV_SHUTDOWN_TIMEOUT", "soon")
	assert.True(t, errors.IsInvalidConfig(c.ApplyEnv()))
}
