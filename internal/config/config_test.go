package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
report:
  format: json
viewer:
  enabled: false
notify:
  nats_url: nats://127.0.0.1:4222
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	require.Equal(t, "json", cfg.Report.Format)
	require.False(t, cfg.Viewer.Enabled)
	require.Equal(t, "nats://127.0.0.1:4222", cfg.Notify.NATSURL)
	// untouched sections keep their defaults
	require.Equal(t, "netsyncdiff.summary", cfg.Notify.Subject)
	require.Equal(t, 1024, cfg.Viewer.Width)
}

func TestLoadConfig_InputSectionIgnored(t *testing.T) {
	path := writeConfig(t, "input:\n  host: /etc/passwd\n  client: other.txt\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":    "report: [",
		"viewer size": "viewer:\n  width: 0\n",
		"no subject":  "notify:\n  nats_url: nats://x\n  subject: \"\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}
