package fabric

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ozanturksever/go-fabric/native"
)

const (
	DefaultOperationTimeout = 5 * time.Second
	DefaultMirrorBucket     = "sf_partitions"
	DefaultMirrorInterval   = 30 * time.Second
	DefaultMetricsAddr      = ":9090"
)

// maxOperationTimeout is the largest timeout the native API can express.
const maxOperationTimeout = time.Duration(math.MaxUint32) * time.Millisecond

// Config configures a Client.
type Config struct {
	// LibraryPaths are tried in order until one loads. An install
	// location may precede the bare module name.
	LibraryPaths []string

	// OperationTimeout is used by operations called with a zero timeout.
	OperationTimeout time.Duration

	Retry RetryPolicy

	Logger *slog.Logger
}

func (c *Config) Validate() error {
	for i, p := range c.LibraryPaths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("LibraryPaths[%d] is empty", i)
		}
	}
	if c.OperationTimeout < 0 {
		return fmt.Errorf("OperationTimeout must not be negative")
	}
	if c.OperationTimeout > maxOperationTimeout {
		return fmt.Errorf("OperationTimeout exceeds %v", maxOperationTimeout)
	}
	if c.Retry.Interval < 0 {
		return fmt.Errorf("Retry.Interval must not be negative")
	}
	if c.Retry.MaxAttempts < 0 {
		return fmt.Errorf("Retry.MaxAttempts must not be negative")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if len(c.LibraryPaths) == 0 {
		c.LibraryPaths = []string{native.DefaultLibrary}
	}
	if c.OperationTimeout == 0 {
		c.OperationTimeout = DefaultOperationTimeout
	}
	c.Retry = c.Retry.withDefaults()
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// FileConfig is the user-facing configuration loaded from a JSON or YAML
// file. It is converted to Config for the client; the mirror and metrics
// sections are read by the command line tool.
type FileConfig struct {
	Client  ClientFileConfig  `json:"client" yaml:"client"`
	Retry   RetryFileConfig   `json:"retry,omitempty" yaml:"retry,omitempty"`
	Mirror  MirrorFileConfig  `json:"mirror,omitempty" yaml:"mirror,omitempty"`
	Metrics MetricsFileConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// ClientFileConfig contains native client settings.
type ClientFileConfig struct {
	LibraryPaths       []string `json:"libraryPaths,omitempty" yaml:"libraryPaths,omitempty"`
	OperationTimeoutMs int64    `json:"operationTimeoutMs,omitempty" yaml:"operationTimeoutMs,omitempty"`
}

// RetryFileConfig contains retry pacing.
type RetryFileConfig struct {
	IntervalMs  int64 `json:"intervalMs,omitempty" yaml:"intervalMs,omitempty"`
	MaxAttempts int   `json:"maxAttempts,omitempty" yaml:"maxAttempts,omitempty"`
}

// MirrorFileConfig contains partition mirror settings.
type MirrorFileConfig struct {
	NATS           NATSFileConfig `json:"nats" yaml:"nats"`
	Bucket         string         `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	Instance       string         `json:"instance,omitempty" yaml:"instance,omitempty"`
	Services       []string       `json:"services,omitempty" yaml:"services,omitempty"`
	SyncIntervalMs int64          `json:"syncIntervalMs,omitempty" yaml:"syncIntervalMs,omitempty"`
}

// NATSFileConfig contains NATS connection settings.
type NATSFileConfig struct {
	Servers     []string `json:"servers,omitempty" yaml:"servers,omitempty"`
	Credentials string   `json:"credentials,omitempty" yaml:"credentials,omitempty"`
}

// MetricsFileConfig contains the metrics listener address.
type MetricsFileConfig struct {
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadConfigFromFile loads configuration from a JSON file, or from YAML
// when the file has a .yaml or .yml extension.
func LoadConfigFromFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &FileConfig{}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// WriteConfigToFile writes the configuration in the format implied by the
// file extension.
func WriteConfigToFile(cfg *FileConfig, path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate validates the configuration.
func (c *FileConfig) Validate() error {
	for i, p := range c.Client.LibraryPaths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("client.libraryPaths[%d] is empty", i)
		}
	}
	if c.Client.OperationTimeoutMs < 0 || c.Client.OperationTimeoutMs > math.MaxUint32 {
		return fmt.Errorf("client.operationTimeoutMs must be between 0 and %d", uint32(math.MaxUint32))
	}
	if c.Retry.IntervalMs < 0 {
		return fmt.Errorf("retry.intervalMs must not be negative")
	}
	if c.Retry.MaxAttempts < 0 {
		return fmt.Errorf("retry.maxAttempts must not be negative")
	}
	if len(c.Mirror.Services) > 0 && len(c.Mirror.NATS.Servers) == 0 {
		return fmt.Errorf("mirror.nats.servers is required when mirror.services is set")
	}
	for i, s := range c.Mirror.Services {
		if !strings.HasPrefix(s, "fabric:/") {
			return fmt.Errorf("mirror.services[%d] must be a fabric:/ name", i)
		}
	}
	return nil
}

// ApplyDefaults applies default values to unset configuration fields.
func (c *FileConfig) ApplyDefaults() {
	if len(c.Client.LibraryPaths) == 0 {
		c.Client.LibraryPaths = []string{native.DefaultLibrary}
	}
	if c.Client.OperationTimeoutMs == 0 {
		c.Client.OperationTimeoutMs = int64(DefaultOperationTimeout / time.Millisecond)
	}
	if c.Retry.IntervalMs == 0 {
		c.Retry.IntervalMs = int64(DefaultRetryInterval / time.Millisecond)
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = DefaultRetryMaxAttempts
	}
	if c.Mirror.Bucket == "" {
		c.Mirror.Bucket = DefaultMirrorBucket
	}
	if c.Mirror.Instance == "" {
		c.Mirror.Instance, _ = os.Hostname()
	}
	if c.Mirror.SyncIntervalMs == 0 {
		c.Mirror.SyncIntervalMs = int64(DefaultMirrorInterval / time.Millisecond)
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = DefaultMetricsAddr
	}
}

// ToConfig converts FileConfig to the Config used by New.
func (c *FileConfig) ToConfig(logger *slog.Logger) Config {
	return Config{
		LibraryPaths:     c.Client.LibraryPaths,
		OperationTimeout: time.Duration(c.Client.OperationTimeoutMs) * time.Millisecond,
		Retry: RetryPolicy{
			Interval:    time.Duration(c.Retry.IntervalMs) * time.Millisecond,
			MaxAttempts: c.Retry.MaxAttempts,
		},
		Logger: logger,
	}
}

// NewDefaultFileConfig creates a FileConfig with default values.
func NewDefaultFileConfig() *FileConfig {
	cfg := &FileConfig{}
	cfg.ApplyDefaults()
	return cfg
}
