package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crowd/config"
	"github.com/katalvlaran/crowd/crowd"
	"github.com/katalvlaran/crowd/report"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crowd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, crowd.DefaultConfig(), cfg.Config)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
	assert.Equal(t, report.FormatJSON, cfg.OutputFormat())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, "max_k: 4\nmax_m: 3\nnode_key: topic\nworkers: 2\nformat: table\n")
	t.Setenv("CROWD_MAX_M", "4")
	t.Setenv("CROWD_LOG_LEVEL", "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxK)
	assert.Equal(t, 4, cfg.MaxM)
	assert.Equal(t, "topic", cfg.NodeKey)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, report.FormatTable, cfg.OutputFormat())
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, crowd.DefaultMinK, cfg.MinK)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "bad int env", env: map[string]string{"CROWD_MAX_K": "five"}},
		{name: "k range", env: map[string]string{"CROWD_MIN_K": "1"}},
		{name: "max_h", env: map[string]string{"CROWD_MAX_H": "1"}},
		{name: "negative workers", env: map[string]string{"CROWD_WORKERS": "-1"}},
		{name: "log level", env: map[string]string{"CROWD_LOG_LEVEL": "loud"}},
		{name: "format", env: map[string]string{"CROWD_FORMAT": "xml"}},
		{name: "unknown key", file: "max_kk: 3\n"},
		{name: "inverted m", file: "min_m: 4\nmax_m: 2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			path := ""
			if tc.file != "" {
				path = writeFile(t, tc.file)
			}
			_, err := config.Load(path)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, crowd.DefaultConfig(), cfg.Config)
}
