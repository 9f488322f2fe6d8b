package config

import (
	"path/filepath"

	"github.com/maksimkurb/warninglists/src/internal/utils"
)

const (
	DefaultSourceURL     = "https://github.com/MISP/misp-warninglists/archive/refs/heads/main.zip"
	DefaultDataDir       = "misp-warninglists"
	DefaultListenAddr    = "127.0.0.1:8085"
	DefaultOutputFormat  = "{{name}}"
	DefaultDebounceMs    = 500
	DefaultFetchTimeoutS = 120
)

type Config struct {
	// General holds dataset location settings.
	General *GeneralConfig `toml:"general" json:"general"`
	// Lookup holds lookup presentation settings.
	Lookup *LookupConfig `toml:"lookup" json:"lookup"`
	// API holds HTTP API settings.
	API *APIConfig `toml:"api" json:"api"`
	// Watch holds settings for reloading lists when files change.
	Watch *WatchConfig `toml:"watch" json:"watch"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// DataDir is the directory holding the warning lists dataset (contains lists/<name>/list.json).
	DataDir string `toml:"data_dir" json:"data_dir" validate:"required"`
	// SourceURL is the zip archive of the dataset used by the "update" command.
	SourceURL string `toml:"source_url" json:"source_url" validate:"omitempty,url"`
	// FetchTimeoutSeconds limits the dataset download (default: 120).
	FetchTimeoutSeconds int `toml:"fetch_timeout_seconds" json:"fetch_timeout_seconds" validate:"gte=0"`
	// SkipInvalid keeps loading when a list file cannot be parsed (default: true).
	SkipInvalid bool `toml:"skip_invalid" json:"skip_invalid"`
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose" json:"verbose"`
}

type LookupConfig struct {
	// DefaultLists restricts lookups to these lists when none are given explicitly.
	DefaultLists []string `toml:"default_lists" json:"default_lists" validate:"dive,required"`
	// OutputFormat is the template printed per match. Available variables: {{value}}, {{name}}, {{type}}, {{version}}, {{description}}.
	OutputFormat string `toml:"output_format" json:"output_format" validate:"required,output_format"`
}

type APIConfig struct {
	// ListenAddr is the HTTP API listen address (default: 127.0.0.1:8085).
	ListenAddr string `toml:"listen_addr" json:"listen_addr" validate:"hostport_or_empty"`
	// EnableMetrics exposes prometheus metrics on /metrics.
	EnableMetrics bool `toml:"enable_metrics" json:"enable_metrics"`
}

type WatchConfig struct {
	// Enabled reloads lists when files in the data directory change (default: true).
	Enabled bool `toml:"enabled" json:"enabled"`
	// DebounceMs waits for this many milliseconds of quiet before reloading (default: 500).
	DebounceMs int `toml:"debounce_ms" json:"debounce_ms" validate:"gte=0,lte=60000"`
}

// DefaultConfig returns a configuration rooted at configDir.
func DefaultConfig(configDir string) *Config {
	return &Config{
		General: &GeneralConfig{
			DataDir:             DefaultDataDir,
			SourceURL:           DefaultSourceURL,
			FetchTimeoutSeconds: DefaultFetchTimeoutS,
			SkipInvalid:         true,
		},
		Lookup: &LookupConfig{
			OutputFormat: DefaultOutputFormat,
		},
		API: &APIConfig{
			ListenAddr:    DefaultListenAddr,
			EnableMetrics: true,
		},
		Watch: &WatchConfig{
			Enabled:    true,
			DebounceMs: DefaultDebounceMs,
		},
		_absConfigFilePath: filepath.Join(configDir, "warninglists.toml"),
	}
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

func (c *Config) GetConfigPath() string {
	return c._absConfigFilePath
}

// GetAbsDataDir returns the dataset directory resolved against the config directory.
func (c *Config) GetAbsDataDir() string {
	return utils.GetAbsolutePath(c.General.DataDir, c.GetConfigDir())
}

// GetAbsListsDir returns the directory holding one sub-directory per list.
func (c *Config) GetAbsListsDir() string {
	return filepath.Join(c.GetAbsDataDir(), "lists")
}
