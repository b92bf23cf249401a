// Package export writes a static snapshot of the landing page: the initial
// page plus one page per technology tab, linked with plain anchors.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sellonet/sellonet-web/internal/content"
	"github.com/sellonet/sellonet-web/internal/navigation"
	"github.com/sellonet/sellonet-web/internal/page"
	"github.com/sellonet/sellonet-web/internal/progress"
)

// Exporter renders the static snapshot into OutputDir.
type Exporter struct {
	Registry    *content.Registry
	Renderer    *page.Renderer
	OutputDir   string
	Title       string
	Description string
	Year        int
	Reporter    progress.Reporter
}

// target is one file to write.
type target struct {
	path    string
	tab     string
	state   navigation.State
	tabHref func(key string) string
}

// Generate writes all pages and returns how many were written.
func (e *Exporter) Generate() (written int, err error) {
	targets := e.targets()

	if e.Reporter != nil {
		e.Reporter.Start(len(targets))
		defer func() { e.Reporter.Finish(written) }()
	}

	for i, t := range targets {
		if err := e.write(t); err != nil {
			return i, err
		}
		if e.Reporter != nil {
			e.Reporter.Written(i+1, progress.Page{Path: t.path, Tab: t.tab})
		}
	}
	return len(targets), nil
}

func (e *Exporter) targets() []target {
	initial := navigation.Initial(e.Registry)
	targets := []target{{
		path:    "index.html",
		state:   initial,
		tabHref: func(key string) string { return "technologies/" + key + ".html" },
	}}

	for _, tech := range e.Registry.Technologies() {
		key := tech.Key
		targets = append(targets, target{
			path:    filepath.Join("technologies", key+".html"),
			tab:     tech.Title,
			state:   navigation.State{ActiveTechnology: key},
			tabHref: func(key string) string { return key + ".html" },
		})
	}
	return targets
}

func (e *Exporter) write(t target) error {
	var buf bytes.Buffer
	err := e.Renderer.Render(&buf, t.state, page.Options{
		Title:       e.Title,
		Description: e.Description,
		TabHref:     t.tabHref,
		Year:        e.Year,
	})
	if err != nil {
		return fmt.Errorf("rendering %s: %w", t.path, err)
	}

	dest := filepath.Join(e.OutputDir, t.path)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", t.path, err)
	}
	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}
