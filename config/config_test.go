package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zisake/MeiliSearch/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raft.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
id: 1
listen: 127.0.0.1:7700
dial_timeout: 2s
peers:
  - id: 2
    addr: 10.0.0.2:7700
  - id: 3
    addr: 10.0.0.3:7700
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), cfg.ID)
	assert.Equal(t, "127.0.0.1:7700", cfg.ListenAddr)
	assert.Equal(t, 2*time.Second, cfg.DialTimeout)
	assert.Equal(t, []config.Peer{
		{ID: 2, Addr: "10.0.0.2:7700"},
		{ID: 3, Addr: "10.0.0.3:7700"},
	}, cfg.Peers)
}

func TestLoadAppliesDefaultDialTimeout(t *testing.T) {
	path := writeConfig(t, `
id: 1
listen: 127.0.0.1:7700
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultDialTimeout, cfg.DialTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "id: [not a number")
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		valid  bool
	}{
		{"default", func(c *config.Config) {}, true},
		{"zero node id", func(c *config.Config) { c.ID = 0 }, false},
		{"empty listen", func(c *config.Config) { c.ListenAddr = "" }, false},
		{"peers", func(c *config.Config) {
			c.Peers = []config.Peer{{ID: 2, Addr: "10.0.0.2:7700"}}
		}, true},
		{"zero peer id", func(c *config.Config) {
			c.Peers = []config.Peer{{ID: 0, Addr: "10.0.0.2:7700"}}
		}, false},
		{"peer with own id", func(c *config.Config) {
			c.Peers = []config.Peer{{ID: 1, Addr: "10.0.0.2:7700"}}
		}, false},
		{"peer without addr", func(c *config.Config) {
			c.Peers = []config.Peer{{ID: 2}}
		}, false},
		{"duplicate peer id", func(c *config.Config) {
			c.Peers = []config.Peer{
				{ID: 2, Addr: "10.0.0.2:7700"},
				{ID: 2, Addr: "10.0.0.3:7700"},
			}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
