package page

import (
	"bytes"
	"errors"
	"html"
	"strings"
	"testing"

	"github.com/sellonet/sellonet-web/internal/content"
	"github.com/sellonet/sellonet-web/internal/navigation"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(content.Default(), content.DefaultCopy())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func liveOptions() Options {
	return Options{
		CommandURL: "/views/test/commands",
		SocketURL:  "/views/test/ws",
		Year:       2026,
	}
}

func render(t *testing.T, r *Renderer, state navigation.State, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Render(&buf, state, opts); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestRenderSections(t *testing.T) {
	r := newTestRenderer(t)
	out := render(t, r, navigation.Initial(content.Default()), liveOptions())

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("expected doctype")
	}
	for _, id := range []string{"site-header", "hero", "industries", "technologies", "about", "contact"} {
		if !strings.Contains(out, `id="`+id+`"`) {
			t.Errorf("missing section %q", id)
		}
	}
	if strings.Count(out, "data-industry=") != 3 {
		t.Errorf("expected 3 industry cards, got %d", strings.Count(out, "data-industry="))
	}
	if strings.Count(out, `role="tab"`) != 5 {
		t.Errorf("expected 5 tabs, got %d", strings.Count(out, `role="tab"`))
	}
	if !strings.Contains(out, "founded in 2006 by Bezalel Gleiser") {
		t.Error("about prose missing")
	}
	if !strings.Contains(out, "bezalel@sellonet.com") {
		t.Error("contact email missing")
	}
	if !strings.Contains(out, "© 2026 Sellonet Ltd. All rights reserved.") {
		t.Error("footer year missing")
	}
}

func TestRenderExactlyOnePane(t *testing.T) {
	reg := content.Default()
	r := newTestRenderer(t)

	for _, key := range reg.Keys() {
		n := navigation.New(reg, nil)
		if err := n.SelectTechnology(key); err != nil {
			t.Fatalf("SelectTechnology(%q): %v", key, err)
		}
		out := render(t, r, n.State(), liveOptions())

		if got := strings.Count(out, "data-pane="); got != 1 {
			t.Fatalf("%s: expected exactly one pane, got %d", key, got)
		}
		if !strings.Contains(out, `data-pane="`+key+`"`) {
			t.Errorf("%s: active pane not rendered", key)
		}

		tech, _ := reg.Technology(key)
		if !strings.Contains(out, html.EscapeString(tech.Description)) {
			t.Errorf("%s: description missing", key)
		}
		if !strings.Contains(out, `src="`+html.EscapeString(tech.Image)+`"`) {
			t.Errorf("%s: image missing", key)
		}
		for _, other := range reg.Technologies() {
			if other.Key != key && strings.Contains(out, html.EscapeString(other.Description)) {
				t.Errorf("%s: pane of %s is visible", key, other.Key)
			}
		}
		if got := strings.Count(out, `data-state="active"`); got != 1 {
			t.Errorf("%s: expected one active tab, got %d", key, got)
		}
	}
}

func TestRenderUnknownKeyFails(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	err := r.Render(&buf, navigation.State{ActiveTechnology: "nonexistent"}, liveOptions())
	if !errors.Is(err, navigation.ErrUnknownTechnology) {
		t.Fatalf("expected ErrUnknownTechnology, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %d bytes", buf.Len())
	}

	if err := r.Panel(&buf, navigation.State{ActiveTechnology: "nonexistent"}, liveOptions()); err == nil {
		t.Error("expected Panel to fail")
	}
}

func TestRenderMobileMenu(t *testing.T) {
	r := newTestRenderer(t)

	closed := render(t, r, navigation.State{ActiveTechnology: "defense"}, liveOptions())
	if strings.Contains(closed, `id="mobile-menu"`) {
		t.Error("mobile menu rendered while closed")
	}

	var buf bytes.Buffer
	if err := r.Header(&buf, navigation.State{ActiveTechnology: "defense", MobileMenuOpen: true}, liveOptions()); err != nil {
		t.Fatalf("Header: %v", err)
	}
	open := buf.String()
	if !strings.Contains(open, `id="mobile-menu"`) {
		t.Error("mobile menu missing while open")
	}
	if !strings.Contains(open, `data-menu-open="true"`) {
		t.Error("expected data-menu-open=true")
	}
	if !strings.Contains(open, "lucide:x") {
		t.Error("expected close icon while open")
	}
}

func TestLiveActions(t *testing.T) {
	r := newTestRenderer(t)
	out := render(t, r, navigation.Initial(content.Default()), liveOptions())

	if !strings.Contains(out, `data-socket="/views/test/ws"`) {
		t.Error("socket URL missing")
	}
	if !strings.Contains(out, `action="/views/test/commands"`) {
		t.Error("command form missing")
	}
	for _, want := range []string{
		`data-command="navigate_to" data-arg="industries"`,
		`data-command="navigate_to" data-arg="contact"`,
		`data-command="toggle_mobile_menu"`,
		`data-command="select_technology" data-arg="food"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s", want)
		}
	}
	for _, name := range []string{"navigate_to", "toggle_mobile_menu", "select_technology"} {
		if !strings.Contains(out, `value="`+name+`"`) {
			t.Errorf("missing form command %s", name)
		}
	}
}

func TestStaticActions(t *testing.T) {
	r := newTestRenderer(t)
	opts := Options{
		Year:    2026,
		TabHref: func(key string) string { return "technologies/" + key + ".html" },
	}
	out := render(t, r, navigation.Initial(content.Default()), opts)

	if strings.Contains(out, "<form") {
		t.Error("static page must not contain forms")
	}
	if strings.Contains(out, "data-socket") || strings.Contains(out, "/static/page.js") {
		t.Error("static page must not load the live script")
	}
	for _, want := range []string{
		`href="#contact"`,
		`href="#industries"`,
		`href="#mobile-menu"`,
		`href="technologies/food.html#technologies"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s", want)
		}
	}
	if !strings.Contains(out, `id="mobile-menu"`) {
		t.Error("static page should carry the target-toggled menu")
	}
}
