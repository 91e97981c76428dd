package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/aqsync/config"
	ConfigFileName    = "aqsync.yml"

	// DefaultAPIBaseURL is the OpenAQ v3 API root.
	DefaultAPIBaseURL = "https://api.openaq.org/v3"
)

// Config holds all aqsync configuration settings
type Config struct {
	// APIBaseURL is the OpenAQ API root URL
	APIBaseURL string `yaml:"api_base_url" json:"api_base_url"`

	// PageSize is the number of measurements requested per API page
	PageSize int `yaml:"page_size" json:"page_size"`

	// RequestTimeoutSeconds is the per-request HTTP timeout
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds" json:"request_timeout_seconds"`

	// MaxRetries is the number of attempts for a failed API request
	MaxRetries int `yaml:"max_retries" json:"max_retries"`

	// Workers is the number of sensors synced concurrently
	Workers int `yaml:"workers" json:"workers"`

	// InsertBatchSize is the number of rows written per database batch
	InsertBatchSize int `yaml:"insert_batch_size" json:"insert_batch_size"`

	// DatetimeFrom is the default start of the sync window
	DatetimeFrom string `yaml:"datetime_from" json:"datetime_from"`

	// DatetimeTo is the default end of the sync window
	DatetimeTo string `yaml:"datetime_to" json:"datetime_to"`

	// SourcesFile is the path to the sensors/locations list
	SourcesFile string `yaml:"sources_file" json:"sources_file"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		APIBaseURL:            DefaultAPIBaseURL,
		PageSize:              1000,
		RequestTimeoutSeconds: 30,
		MaxRetries:            3,
		Workers:               4,
		InsertBatchSize:       1000,
		DatetimeFrom:          "2020-01-01",
		DatetimeTo:            "2025-01-01",
		SourcesFile:           "",
		sources:               make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*Config, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	// Determine config file path
	configPath := os.Getenv("AQSYNC_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"api_base_url", "page_size", "request_timeout_seconds",
		"max_retries", "workers", "insert_batch_size",
		"datetime_from", "datetime_to", "sources_file",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.APIBaseURL != "" {
		c.APIBaseURL = file.APIBaseURL
		c.sources["api_base_url"] = "file"
	}
	if file.PageSize != 0 {
		c.PageSize = file.PageSize
		c.sources["page_size"] = "file"
	}
	if file.RequestTimeoutSeconds != 0 {
		c.RequestTimeoutSeconds = file.RequestTimeoutSeconds
		c.sources["request_timeout_seconds"] = "file"
	}
	if file.MaxRetries != 0 {
		c.MaxRetries = file.MaxRetries
		c.sources["max_retries"] = "file"
	}
	if file.Workers != 0 {
		c.Workers = file.Workers
		c.sources["workers"] = "file"
	}
	if file.InsertBatchSize != 0 {
		c.InsertBatchSize = file.InsertBatchSize
		c.sources["insert_batch_size"] = "file"
	}
	if file.DatetimeFrom != "" {
		c.DatetimeFrom = file.DatetimeFrom
		c.sources["datetime_from"] = "file"
	}
	if file.DatetimeTo != "" {
		c.DatetimeTo = file.DatetimeTo
		c.sources["datetime_to"] = "file"
	}
	if file.SourcesFile != "" {
		c.SourcesFile = file.SourcesFile
		c.sources["sources_file"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("AQSYNC_API_BASE_URL"); val != "" {
		c.APIBaseURL = val
		c.sources["api_base_url"] = "environment"
	}
	if val := os.Getenv("AQSYNC_PAGE_SIZE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.PageSize = i
			c.sources["page_size"] = "environment"
		}
	}
	if val := os.Getenv("AQSYNC_REQUEST_TIMEOUT_SECONDS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.RequestTimeoutSeconds = i
			c.sources["request_timeout_seconds"] = "environment"
		}
	}
	if val := os.Getenv("AQSYNC_MAX_RETRIES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.MaxRetries = i
			c.sources["max_retries"] = "environment"
		}
	}
	if val := os.Getenv("AQSYNC_WORKERS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Workers = i
			c.sources["workers"] = "environment"
		}
	}
	if val := os.Getenv("AQSYNC_INSERT_BATCH_SIZE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.InsertBatchSize = i
			c.sources["insert_batch_size"] = "environment"
		}
	}
	if val := os.Getenv("AQSYNC_DATETIME_FROM"); val != "" {
		c.DatetimeFrom = val
		c.sources["datetime_from"] = "environment"
	}
	if val := os.Getenv("AQSYNC_DATETIME_TO"); val != "" {
		c.DatetimeTo = val
		c.sources["datetime_to"] = "environment"
	}
	if val := os.Getenv("AQSYNC_SOURCES_FILE"); val != "" {
		c.SourcesFile = val
		c.sources["sources_file"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// RequestTimeout returns the per-request timeout as a duration
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.PageSize < 1 || c.PageSize > 1000 {
		return fmt.Errorf("invalid page_size value: %d (must be 1-1000)", c.PageSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers value: %d", c.Workers)
	}
	if c.InsertBatchSize < 1 {
		return fmt.Errorf("invalid insert_batch_size value: %d", c.InsertBatchSize)
	}
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("invalid api_base_url value: %s", c.APIBaseURL)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "api_base_url", Value: c.APIBaseURL, Source: c.Source("api_base_url")},
		{Name: "page_size", Value: strconv.Itoa(c.PageSize), Source: c.Source("page_size")},
		{Name: "request_timeout_seconds", Value: strconv.Itoa(c.RequestTimeoutSeconds), Source: c.Source("request_timeout_seconds")},
		{Name: "max_retries", Value: strconv.Itoa(c.MaxRetries), Source: c.Source("max_retries")},
		{Name: "workers", Value: strconv.Itoa(c.Workers), Source: c.Source("workers")},
		{Name: "insert_batch_size", Value: strconv.Itoa(c.InsertBatchSize), Source: c.Source("insert_batch_size")},
		{Name: "datetime_from", Value: c.DatetimeFrom, Source: c.Source("datetime_from")},
		{Name: "datetime_to", Value: c.DatetimeTo, Source: c.Source("datetime_to")},
		{Name: "sources_file", Value: c.SourcesFile, Source: c.Source("sources_file")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-28s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-28s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-28s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
