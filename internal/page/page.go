// Package page composes the landing page from the content registry and a
// navigation state snapshot.
package page

import (
	"fmt"
	"io"
	"time"

	"github.com/sellonet/sellonet-web/internal/content"
	"github.com/sellonet/sellonet-web/internal/navigation"
)

// Options controls how clickable elements are rendered.
//
// With CommandURL set the page is live: every action posts a command to
// CommandURL and carries data attributes for the websocket script. Without
// it the page is a static snapshot: navigation uses #section anchors and
// tabs link to TabHref(key).
type Options struct {
	Title       string
	Description string
	CommandURL  string
	SocketURL   string
	TabHref     func(key string) string
	Year        int
}

func (o Options) live() bool { return o.CommandURL != "" }

func (o Options) year() int {
	if o.Year == 0 {
		return time.Now().Year()
	}
	return o.Year
}

// Renderer renders the page and its live-update fragments.
type Renderer struct {
	reg   *content.Registry
	copy  content.Copy
	about string
}

// New creates a Renderer. The about prose is converted up front.
func New(reg *content.Registry, text content.Copy) (*Renderer, error) {
	about, err := content.AboutHTML()
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}
	return &Renderer{reg: reg, copy: text, about: about}, nil
}

// Render writes the full document for state. The active pane is resolved
// before anything is written, so an unknown key aborts with no output.
func (r *Renderer) Render(w io.Writer, state navigation.State, opts Options) error {
	pane, err := navigation.ActivePane(r.reg, state)
	if err != nil {
		return err
	}

	doc := layout(opts,
		r.header(state, opts),
		r.hero(opts),
		r.industries(opts),
		r.technologies(state, pane, opts),
		r.banner(opts),
		r.aboutSection(),
		r.contact(),
		r.footer(opts),
	)
	return doc.Render(w)
}

// Panel writes the technologies tab list and the active pane.
func (r *Renderer) Panel(w io.Writer, state navigation.State, opts Options) error {
	pane, err := navigation.ActivePane(r.reg, state)
	if err != nil {
		return err
	}
	return r.panel(state, pane, opts).Render(w)
}

// Header writes the fixed header, including the mobile menu when open.
func (r *Renderer) Header(w io.Writer, state navigation.State, opts Options) error {
	return r.header(state, opts).Render(w)
}
