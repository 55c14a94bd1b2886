// Package config holds the cluster-facing settings of a raft node:
// its identity, the address its transport listens on, and the
// addresses of the peers it will dial.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// DefaultDialTimeout bounds connection establishment when the
// configuration does not say otherwise.
const DefaultDialTimeout = 5 * time.Second

type Peer struct {
	ID   uint64 `yaml:"id"`
	Addr string `yaml:"addr"`
}

type Config struct {
	// ID is this node's identity in the consensus group. It must be
	// unique across the cluster; uniqueness is the operator's job.
	ID uint64 `yaml:"id"`

	// ListenAddr is the host:port the transport server listens on.
	ListenAddr string `yaml:"listen"`

	// Peers are the other members of the cluster.
	Peers []Peer `yaml:"peers"`

	// DialTimeout bounds each peer connection attempt. Written in
	// YAML as a duration string, e.g. "5s".
	DialTimeout time.Duration `yaml:"-"`
}

// UnmarshalYAML accepts dial_timeout as a duration string, which
// yaml.v2 cannot decode into time.Duration on its own.
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw struct {
		ID          uint64 `yaml:"id"`
		ListenAddr  string `yaml:"listen"`
		Peers       []Peer `yaml:"peers"`
		DialTimeout string `yaml:"dial_timeout"`
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	c.ID = raw.ID
	c.ListenAddr = raw.ListenAddr
	c.Peers = raw.Peers
	if raw.DialTimeout != "" {
		d, err := time.ParseDuration(raw.DialTimeout)
		if err != nil {
			return fmt.Errorf("parse dial_timeout: %w", err)
		}
		c.DialTimeout = d
	}
	return nil
}

// NewDefaultConfig return a single-node config with defaults applied.
func NewDefaultConfig() *Config {
	return &Config{
		ID:          1,
		ListenAddr:  "127.0.0.1:7700",
		DialTimeout: DefaultDialTimeout,
	}
}

// Load reads a YAML config from path, applies defaults and
// validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if config.DialTimeout == 0 {
		config.DialTimeout = DefaultDialTimeout
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the invariants the transport relies on: a usable
// listen address and peers with unique, non-local ids and addresses.
func (c *Config) Validate() error {
	if c.ID == 0 {
		return fmt.Errorf("node id must be non-zero")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address must not be empty")
	}

	seen := make(map[uint64]struct{}, len(c.Peers))
	for _, peer := range c.Peers {
		if peer.ID == 0 {
			return fmt.Errorf("peer id must be non-zero")
		}
		if peer.ID == c.ID {
			return fmt.Errorf("peer %d has the node's own id", peer.ID)
		}
		if peer.Addr == "" {
			return fmt.Errorf("peer %d has no address", peer.ID)
		}
		if _, ok := seen[peer.ID]; ok {
			return fmt.Errorf("duplicate peer id %d", peer.ID)
		}
		seen[peer.ID] = struct{}{}
	}
	return nil
}
