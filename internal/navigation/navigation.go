// Package navigation implements the page's interactive state: section
// navigation, the mobile menu flag and the technology tab selection.
package navigation

import (
	"errors"
	"fmt"

	"github.com/sellonet/sellonet-web/internal/content"
)

var (
	// ErrUnknownTechnology is returned when a tab key is not in the registry.
	ErrUnknownTechnology = errors.New("unknown technology")
	// ErrUnknownCommand is returned for command names outside the three
	// page operations.
	ErrUnknownCommand = errors.New("unknown command")
)

// State is the complete interactive state of one page view.
type State struct {
	ActiveTechnology string `json:"active_technology"`
	MobileMenuOpen   bool   `json:"mobile_menu_open"`
}

// Surface is the rendering surface the navigator drives. ScrollTo is a
// fire-and-forget request to smoothly scroll to a section.
type Surface interface {
	ScrollTo(section content.Section)
}

// Navigator owns a State and mutates it only through NavigateTo,
// ToggleMobileMenu and SelectTechnology. It is not safe for concurrent use;
// callers serialize events per page view.
type Navigator struct {
	reg     *content.Registry
	surface Surface
	state   State
}

// New returns a Navigator in the initial state: first tab active, menu
// closed.
func New(reg *content.Registry, surface Surface) *Navigator {
	return &Navigator{
		reg:     reg,
		surface: surface,
		state:   Initial(reg),
	}
}

// Initial returns the state of a freshly loaded page.
func Initial(reg *content.Registry) State {
	return State{ActiveTechnology: reg.FirstKey()}
}

// State returns a snapshot of the current state.
func (n *Navigator) State() State { return n.state }

// NavigateTo closes the mobile menu and asks the surface to scroll to the
// section. Sections the page does not render are skipped silently.
func (n *Navigator) NavigateTo(section content.Section) {
	if n.reg.IsSection(section) && n.surface != nil {
		n.surface.ScrollTo(section)
	}
	n.state.MobileMenuOpen = false
}

// ToggleMobileMenu flips the mobile menu flag.
func (n *Navigator) ToggleMobileMenu() {
	n.state.MobileMenuOpen = !n.state.MobileMenuOpen
}

// SelectTechnology makes key the active tab. Unknown keys are rejected and
// leave the state unchanged.
func (n *Navigator) SelectTechnology(key string) error {
	if _, ok := n.reg.Technology(key); !ok {
		return fmt.Errorf("selecting %q: %w", key, ErrUnknownTechnology)
	}
	n.state.ActiveTechnology = key
	return nil
}

// ActivePane resolves the technology shown for state. A key missing from
// the registry is a programming error and is reported rather than
// rendered as an empty pane.
func ActivePane(reg *content.Registry, state State) (content.Technology, error) {
	tech, ok := reg.Technology(state.ActiveTechnology)
	if !ok {
		return content.Technology{}, fmt.Errorf("rendering pane %q: %w", state.ActiveTechnology, ErrUnknownTechnology)
	}
	return tech, nil
}
