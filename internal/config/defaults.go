package config

import "time"

// DefaultConfigFile is the config file read when --config is not given.
const DefaultConfigFile = ".sellonet.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:          8080,
		Title:         "Sellonet - Give Your Company The Innovative Edge",
		Description:   "Sellonet connects large corporates with high impact startups and game changing technologies.",
		ViewTTL:       30 * time.Minute,
		MaxViews:      10000,
		SweepInterval: time.Minute,
		OutputDir:     "dist",
	}
}
