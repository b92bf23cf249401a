package page

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sellonet/sellonet-web/internal/content"
	"github.com/sellonet/sellonet-web/internal/navigation"
)

const (
	gold      = "#c9a227"
	goldHover = "#b8922a"
	navy      = "#1e3a5f"
)

// iconify renders a lucide icon through iconify.
func iconify(name, class string) g.Node {
	return Span(
		Class("iconify inline-block "+class),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

// action renders a clickable element bound to cmd. Live pages get a small
// form posting the command; static pages get a plain link.
func action(opts Options, cmd navigation.Command, class string, children ...g.Node) g.Node {
	if !opts.live() {
		return A(Href(staticHref(opts, cmd)), Class(class), g.Group(children))
	}

	return Form(
		Method("post"),
		Action(opts.CommandURL),
		Class("contents"),
		Input(Type("hidden"), Name("command"), Value(string(cmd.Name))),
		g.If(cmd.Arg != "", Input(Type("hidden"), Name("arg"), Value(cmd.Arg))),
		Button(
			Type("submit"),
			Class(class),
			g.Attr("data-command", string(cmd.Name)),
			g.If(cmd.Arg != "", g.Attr("data-arg", cmd.Arg)),
			g.Group(children),
		),
	)
}

func staticHref(opts Options, cmd navigation.Command) string {
	switch cmd.Name {
	case navigation.CommandSelectTechnology:
		if opts.TabHref != nil {
			return opts.TabHref(cmd.Arg) + "#" + string(content.SectionTechnologies)
		}
		return "#" + string(content.SectionTechnologies)
	case navigation.CommandToggleMobileMenu:
		return "#mobile-menu"
	default:
		return "#" + cmd.Arg
	}
}

func sectionHeading(h content.Heading, size string) g.Node {
	return Div(
		Class("text-center mb-16"),
		P(Class("text-["+gold+"] text-sm tracking-[0.2em] uppercase mb-4"), g.Text(h.Eyebrow)),
		H2(
			Class(size+" font-light text-slate-900"),
			g.Text(h.Title+" "),
			Span(Class("font-semibold"), g.Text(h.Emphasis)),
		),
	)
}
