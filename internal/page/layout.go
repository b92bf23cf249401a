package page

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	defaultTitle       = "Sellonet - Give Your Company The Innovative Edge"
	defaultDescription = "Sellonet connects large corporates with high impact startups and game changing technologies."
)

// layout wraps the page sections in the document shell: head metadata, styles
// and, for live pages, the command socket script.
func layout(opts Options, content ...g.Node) g.Node {
	if opts.Title == "" {
		opts.Title = defaultTitle
	}
	if opts.Description == "" {
		opts.Description = defaultDescription
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(opts.Title)),
				Meta(Name("description"), Content(opts.Description)),

				Meta(g.Attr("property", "og:title"), Content(opts.Title)),
				Meta(g.Attr("property", "og:description"), Content(opts.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				StyleEl(g.Raw("html{scroll-behavior:smooth}#mobile-menu.static-menu{display:none}#mobile-menu.static-menu:target{display:block}")),
			),
			Body(
				Class("min-h-screen bg-white font-sans"),
				g.If(opts.live(), g.Attr("data-socket", opts.SocketURL)),
				g.Group(content),

				g.If(opts.live(), Script(Src("/static/page.js"))),
			),
		),
	})
}
