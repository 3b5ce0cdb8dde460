package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	Filter  FilterConfig  `mapstructure:"filter"`
}

// APIConfig holds the alquran.cloud connection settings
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// OutputConfig controls how command results are printed
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	ShowAyahs bool   `mapstructure:"show_ayahs"`
}

// FilterConfig holds named edition filter expressions.
// Preset names are case-insensitive and stored lowercase.
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}
