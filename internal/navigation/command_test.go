package navigation

import (
	"errors"
	"testing"

	"github.com/sellonet/sellonet-web/internal/content"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    Command
		wantErr bool
	}{
		{"navigate_to", "about", NavigateTo(content.SectionAbout), false},
		{"toggle_mobile_menu", "", ToggleMobileMenu(), false},
		{"select_technology", "food", SelectTechnology("food"), false},
		{"delete_everything", "", Command{}, true},
		{"", "", Command{}, true},
	}
	for _, tt := range tests {
		got, err := ParseCommand(tt.name, tt.arg)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownCommand) {
				t.Errorf("ParseCommand(%q): expected ErrUnknownCommand, got %v", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCommand(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestDispatch(t *testing.T) {
	n, surface := newTestNavigator()

	steps := []struct {
		cmd  Command
		want State
	}{
		{SelectTechnology("retail"), State{ActiveTechnology: "retail"}},
		{ToggleMobileMenu(), State{ActiveTechnology: "retail", MobileMenuOpen: true}},
		{NavigateTo(content.SectionTechnologies), State{ActiveTechnology: "retail"}},
	}
	for _, s := range steps {
		if err := n.Dispatch(s.cmd); err != nil {
			t.Fatalf("Dispatch(%+v): %v", s.cmd, err)
		}
		if n.State() != s.want {
			t.Errorf("after %+v: state = %+v, want %+v", s.cmd, n.State(), s.want)
		}
	}
	if len(surface.scrolls) != 1 || surface.scrolls[0] != content.SectionTechnologies {
		t.Errorf("scrolls = %v", surface.scrolls)
	}
}

func TestDispatchErrors(t *testing.T) {
	n, _ := newTestNavigator()

	if err := n.Dispatch(Command{Name: "explode"}); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
	if err := n.Dispatch(SelectTechnology("nonexistent")); !errors.Is(err, ErrUnknownTechnology) {
		t.Errorf("expected ErrUnknownTechnology, got %v", err)
	}
	if n.State() != Initial(content.Default()) {
		t.Errorf("failed commands changed state: %+v", n.State())
	}
}
