package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/warninglists/src/internal/log"
)

// LoadConfig reads and parses the configuration file. Missing sections and
// fields are filled with defaults.
func LoadConfig(configPath string) (*Config, error) {
	configFile, err := absPath(configPath)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	config := DefaultConfig(filepath.Dir(configFile))
	if err := toml.Unmarshal(content, config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile
	config.applyDefaults()

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Warning lists directory: %s", config.GetAbsListsDir())

	return config, nil
}

// LoadOrDefault behaves like LoadConfig but returns the default
// configuration, rooted next to configPath, when the file does not exist.
func LoadOrDefault(configPath string) (*Config, error) {
	configFile, err := absPath(configPath)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(configFile); errors.Is(err, os.ErrNotExist) {
		log.Debugf("Configuration file %s not found, using defaults", configFile)
		cfg := DefaultConfig(filepath.Dir(configFile))
		cfg._absConfigFilePath = configFile
		return cfg, nil
	}
	return LoadConfig(configFile)
}

func absPath(configPath string) (string, error) {
	configFile := filepath.Clean(configPath)
	if filepath.IsAbs(configFile) {
		return configFile, nil
	}
	path, err := filepath.Abs(configFile)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %v", err)
	}
	return path, nil
}

// applyDefaults fills sections that were explicitly emptied in the file.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig(c.GetConfigDir())
	if c.General == nil {
		c.General = defaults.General
	}
	if c.General.DataDir == "" {
		c.General.DataDir = defaults.General.DataDir
	}
	if c.Lookup == nil {
		c.Lookup = defaults.Lookup
	}
	if c.Lookup.OutputFormat == "" {
		c.Lookup.OutputFormat = defaults.Lookup.OutputFormat
	}
	if c.API == nil {
		c.API = defaults.API
	}
	if c.Watch == nil {
		c.Watch = defaults.Watch
	}
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

func (c *Config) WriteConfig() error {
	config, err := c.SerializeConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.GetConfigDir(), 0755); err != nil {
		return err
	}
	return os.WriteFile(c._absConfigFilePath, config.Bytes(), 0644)
}
