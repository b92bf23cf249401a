// Package progress reports static export progress, one line or bar tick
// per written page.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Page describes one exported page.
type Page struct {
	Path string
	// Tab is the title of the technology tab the page shows open. It is
	// empty for the landing page in its initial state.
	Tab string
}

func (p Page) label() string {
	if p.Tab == "" {
		return "landing page"
	}
	return p.Tab + " tab"
}

// Reporter receives export progress.
type Reporter interface {
	Start(pages int)
	Written(n int, p Page)
	Finish(written int)
}

// NewReporter returns a TerminalReporter, or a CIReporter when running
// under CI.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: os.Stderr}
	}
	return &TerminalReporter{}
}

// TerminalReporter draws a bar that names the tab being exported.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(pages int) {
	r.bar = progressbar.NewOptions(pages,
		progressbar.OptionSetDescription("Exporting landing page"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Written(n int, p Page) {
	if r.bar != nil {
		r.bar.Describe(p.label())
		_ = r.bar.Set(n)
	}
}

func (r *TerminalReporter) Finish(written int) {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints one line per page.
type CIReporter struct {
	Out   io.Writer
	pages int
}

func (r *CIReporter) Start(pages int) {
	r.pages = pages
	fmt.Fprintf(r.Out, "Exporting landing page: %d pages\n", pages)
}

func (r *CIReporter) Written(n int, p Page) {
	fmt.Fprintf(r.Out, "[%d/%d] %s (%s)\n", n, r.pages, p.Path, p.label())
}

func (r *CIReporter) Finish(written int) {
	fmt.Fprintf(r.Out, "Exported %d of %d pages\n", written, r.pages)
}
