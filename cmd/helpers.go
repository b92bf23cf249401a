package cmd

import (
	"fmt"
	"os"

	"github.com/sellonet/sellonet-web/internal/config"
	"github.com/sellonet/sellonet-web/internal/content"
	"github.com/sellonet/sellonet-web/internal/page"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `sellonet init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "config: %+v\n", *cfg)
	}
	return cfg, nil
}

// newRenderer builds the page renderer over the compiled-in content.
func newRenderer() (*content.Registry, *page.Renderer, error) {
	reg := content.Default()
	renderer, err := page.New(reg, content.DefaultCopy())
	if err != nil {
		return nil, nil, fmt.Errorf("creating renderer: %w", err)
	}
	return reg, renderer, nil
}
