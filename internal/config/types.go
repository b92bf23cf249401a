package config

import "time"

// Config is the top-level sellonet configuration, corresponding to .sellonet.yml.
type Config struct {
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Title           string        `yaml:"title" koanf:"title"`
	Description     string        `yaml:"description" koanf:"description"`
	ViewTTL         time.Duration `yaml:"view_ttl" koanf:"view_ttl"`
	MaxViews        int           `yaml:"max_views" koanf:"max_views"`
	SweepInterval   time.Duration `yaml:"sweep_interval" koanf:"sweep_interval"`
	OutputDir       string        `yaml:"output_dir" koanf:"output_dir"`
}
