package page

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sellonet/sellonet-web/internal/content"
	"github.com/sellonet/sellonet-web/internal/navigation"
)

const navLinkClass = "text-slate-600 hover:text-slate-900 transition-colors text-sm font-medium"

func (r *Renderer) header(state navigation.State, opts Options) g.Node {
	menuIcon := "menu"
	if state.MobileMenuOpen {
		menuIcon = "x"
	}

	menuClass := "md:hidden bg-white border-t border-slate-100 overflow-hidden"
	if !opts.live() {
		menuClass += " static-menu"
	}

	return Nav(
		ID("site-header"),
		Class("fixed top-0 left-0 right-0 z-50 bg-white/95 backdrop-blur-sm border-b border-slate-100"),
		g.Attr("data-menu-open", boolAttr(state.MobileMenuOpen)),

		Div(
			Class("max-w-7xl mx-auto px-6 py-4 flex items-center justify-between"),
			Div(
				Class("flex items-center gap-3"),
				Img(Src(r.copy.Logo), Alt(r.copy.Company), Class("h-12 w-auto")),
			),
			Div(
				Class("hidden md:flex items-center gap-8"),
				r.sectionLinks(opts, navLinkClass),
			),
			action(opts, navigation.ToggleMobileMenu(), "md:hidden text-slate-900 p-2",
				g.Attr("aria-label", "Toggle menu"),
				iconify(menuIcon, "h-6 w-6"),
			),
		),

		g.If(state.MobileMenuOpen || !opts.live(),
			Div(
				ID("mobile-menu"),
				Class(menuClass),
				Div(
					Class("px-6 py-4 space-y-4"),
					r.sectionLinks(opts, "block w-full text-left py-2 "+navLinkClass),
				),
			),
		),
	)
}

func (r *Renderer) sectionLinks(opts Options, class string) g.Node {
	return g.Group(g.Map(r.reg.Sections(), func(s content.Section) g.Node {
		return action(opts, navigation.NavigateTo(s), class, g.Text(s.Label()))
	}))
}

func (r *Renderer) hero(opts Options) g.Node {
	return Section(
		ID("hero"),
		Class("relative min-h-screen flex items-center justify-center bg-gradient-to-br from-[#1e3a5f] via-[#2d4a6f] to-[#1a3050] overflow-hidden"),
		Div(
			Class("absolute inset-0 bg-cover bg-center opacity-10"),
			g.Attr("style", "background-image:url('"+r.copy.HeroImage+"')"),
		),
		Div(Class("absolute inset-0 bg-gradient-to-b from-transparent via-[#1e3a5f]/50 to-[#1e3a5f]")),

		Div(
			Class("relative z-10 text-center px-6 max-w-4xl mx-auto"),
			P(Class("text-["+gold+"] text-sm md:text-base tracking-[0.3em] uppercase mb-6"), g.Text(r.copy.Tagline)),
			H1(
				Class("text-4xl md:text-6xl lg:text-7xl font-light text-white leading-tight mb-8"),
				g.Text(r.copy.Headline),
				Span(Class("block font-semibold"), g.Text(r.copy.HeadlineBold)),
			),
			action(opts, navigation.NavigateTo(content.SectionIndustries),
				"bg-["+gold+"] hover:bg-["+goldHover+"] text-white px-8 py-4 text-lg rounded-full transition-all duration-300",
				g.Text(r.copy.HeroAction+" "),
				iconify("arrow-right", "ml-2 h-5 w-5"),
			),
		),

		Div(
			Class("absolute bottom-10 left-1/2 -translate-x-1/2 animate-bounce"),
			action(opts, navigation.NavigateTo(content.SectionIndustries),
				"text-white/60 hover:text-white transition-colors",
				g.Attr("aria-label", "Scroll to industries"),
				iconify("chevron-down", "h-8 w-8"),
			),
		),
	)
}

func (r *Renderer) industries(opts Options) g.Node {
	return Section(
		ID(string(content.SectionIndustries)),
		Class("py-24 md:py-32 bg-slate-50"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			sectionHeading(r.copy.Industries, "text-3xl md:text-5xl"),
			Div(
				Class("grid md:grid-cols-3 gap-8"),
				g.Group(g.Map(r.reg.Industries(), func(ind content.Industry) g.Node {
					return Div(
						Class("group h-full bg-white hover:bg-["+navy+"] shadow-lg hover:shadow-2xl rounded-xl transition-all duration-500 overflow-hidden p-8"),
						g.Attr("data-industry", ind.Title),
						Div(
							Class("w-16 h-16 rounded-2xl bg-[#1e3a5f]/10 group-hover:bg-white/10 flex items-center justify-center mb-6"),
							iconify(ind.Icon, "h-8 w-8 text-["+navy+"] group-hover:text-["+gold+"]"),
						),
						H3(Class("text-2xl font-semibold text-slate-900 group-hover:text-white mb-4"), g.Text(ind.Title)),
						P(Class("text-slate-600 group-hover:text-slate-300 leading-relaxed"), g.Text(ind.Description)),
						action(opts, navigation.NavigateTo(content.SectionContact),
							"mt-6 p-0 text-["+gold+"] hover:text-["+goldHover+"]",
							g.Text("Contact Us "),
							iconify("arrow-right", "ml-1 h-4 w-4"),
						),
					)
				})),
			),
		),
	)
}

func (r *Renderer) technologies(state navigation.State, pane content.Technology, opts Options) g.Node {
	return Section(
		ID(string(content.SectionTechnologies)),
		Class("py-24 md:py-32 bg-white"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			sectionHeading(r.copy.Technologies, "text-3xl md:text-5xl"),
			r.panel(state, pane, opts),
		),
	)
}

// panel renders one tab per technology and the single active pane.
func (r *Renderer) panel(state navigation.State, pane content.Technology, opts Options) g.Node {
	return Div(
		ID("technology-panel"),
		Class("w-full"),
		Div(
			Class("w-full flex flex-wrap justify-center gap-2 mb-12"),
			g.Attr("role", "tablist"),
			g.Group(g.Map(r.reg.Technologies(), func(t content.Technology) g.Node {
				active := t.Key == state.ActiveTechnology
				class := "px-6 py-3 rounded-full transition-all duration-300 bg-slate-100 text-slate-600"
				if active {
					class = "px-6 py-3 rounded-full transition-all duration-300 bg-[" + navy + "] text-white"
				}
				return action(opts, navigation.SelectTechnology(t.Key), class,
					g.Attr("role", "tab"),
					g.Attr("data-state", tabState(active)),
					g.Attr("aria-selected", boolAttr(active)),
					iconify(t.Icon, "h-4 w-4 mr-2"),
					g.Text(t.Title),
				)
			})),
		),

		Div(
			Class("grid md:grid-cols-2 gap-12 items-center"),
			g.Attr("role", "tabpanel"),
			g.Attr("data-pane", pane.Key),
			Div(
				Class("order-2 md:order-1"),
				H3(Class("text-3xl font-semibold text-slate-900 mb-6"), g.Text(pane.Title)),
				P(Class("text-slate-600 text-lg leading-relaxed mb-8"), g.Text(pane.Description)),
				action(opts, navigation.NavigateTo(content.SectionContact),
					"bg-["+navy+"] hover:bg-[#2d4a6f] text-white px-4 py-2 rounded-md",
					g.Text("Learn More "),
					iconify("arrow-right", "ml-2 h-4 w-4"),
				),
			),
			Div(
				Class("order-1 md:order-2"),
				Div(
					Class("relative rounded-2xl overflow-hidden shadow-2xl"),
					Img(Src(pane.Image), Alt(pane.Title), Class("w-full h-80 object-cover")),
				),
			),
		),
	)
}

func (r *Renderer) banner(opts Options) g.Node {
	return Section(
		Class("py-16 bg-gradient-to-r from-[#1e3a5f] to-[#2d4a6f]"),
		Div(
			Class("max-w-4xl mx-auto px-6 text-center"),
			H2(
				Class("text-2xl md:text-3xl font-light text-white mb-6"),
				g.Text(r.copy.BannerText+" "),
				Span(Class("font-semibold"), g.Text(r.copy.BannerEmphasis)),
				g.Text(" can help your business"),
			),
			action(opts, navigation.NavigateTo(content.SectionContact),
				"bg-["+gold+"] hover:bg-["+goldHover+"] text-white px-8 py-4 text-lg rounded-full",
				g.Text(r.copy.BannerAction),
			),
		),
	)
}

func (r *Renderer) aboutSection() g.Node {
	founder := r.copy.Founder
	return Section(
		ID(string(content.SectionAbout)),
		Class("py-24 md:py-32 bg-white"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("mb-16"),
				P(Class("text-["+gold+"] text-sm tracking-[0.2em] uppercase mb-4"), g.Text(r.copy.About.Eyebrow)),
				H2(
					Class("text-3xl md:text-4xl font-light text-slate-900 mb-6"),
					g.Text(r.copy.About.Title+" "),
					Span(Class("font-semibold"), g.Text(r.copy.About.Emphasis)),
				),
				P(Class("text-slate-600 text-lg leading-relaxed"), g.Text(r.copy.Intro)),
			),
			Div(
				Class("grid md:grid-cols-2 gap-16 items-start"),
				Div(Class("text-slate-600 leading-relaxed"), g.Raw(r.about)),
				Div(
					Class("flex justify-center text-center"),
					Div(
						Img(
							Src(founder.Photo),
							Alt(founder.Name+" - "+founder.Role),
							Class("w-48 h-48 rounded-full object-cover mx-auto mb-4 border-4 border-[#c9a227]/20"),
						),
						P(Class("text-slate-900 font-semibold text-lg"), g.Text(founder.Name)),
						P(Class("text-slate-600"), g.Text(founder.Role)),
					),
				),
			),
			Div(
				Class("mt-16 md:w-1/2 md:ml-auto bg-slate-50 shadow-xl rounded-xl p-8"),
				H3(Class("text-xl font-semibold text-slate-900 mb-6"), g.Textf("What Can %s Do For You?", r.copy.Company)),
				Ul(
					Class("space-y-4 text-slate-600"),
					g.Group(g.Map(r.copy.Capabilities, func(c string) g.Node {
						return Li(
							Class("flex items-start gap-3"),
							Span(Class("w-2 h-2 mt-2 rounded-full bg-["+gold+"] flex-shrink-0")),
							g.Text(c),
						)
					})),
				),
			),
		),
	)
}

func (r *Renderer) contact() g.Node {
	details := r.copy.Details
	return Section(
		ID(string(content.SectionContact)),
		Class("py-24 md:py-32 bg-slate-50"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			sectionHeading(r.copy.Contact, "text-3xl md:text-5xl"),
			Div(
				Class("max-w-2xl mx-auto space-y-8"),
				contactBlock("phone", "Contact Numbers", g.Map(details.Phones, func(p content.Phone) g.Node {
					return P(Class("text-slate-600"), g.Textf("%s: %s", p.Label, p.Number))
				})),
				contactBlock("map-pin", r.copy.Company+" HQ", g.Map(details.Address, func(line string) g.Node {
					return P(Class("text-slate-600"), g.Text(line))
				})),
				contactBlock("mail", "Email", []g.Node{
					P(Class("text-slate-600"), A(Href("mailto:"+details.Email), g.Text(details.Email))),
				}),
			),
		),
	)
}

func contactBlock(icon, title string, lines []g.Node) g.Node {
	return Div(
		Class("flex items-start gap-4"),
		Div(
			Class("w-12 h-12 rounded-xl bg-["+navy+"] flex items-center justify-center flex-shrink-0"),
			iconify(icon, "h-5 w-5 text-white"),
		),
		Div(
			H4(Class("font-semibold text-slate-900 mb-2"), g.Text(title)),
			g.Group(lines),
		),
	)
}

func (r *Renderer) footer(opts Options) g.Node {
	return Footer(
		Class("py-12 bg-["+navy+"] text-white"),
		Div(
			Class("max-w-7xl mx-auto px-6 text-center"),
			P(Class("text-slate-400 text-sm"), g.Textf("© %d %s Ltd. All rights reserved.", opts.year(), r.copy.Company)),
		),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func tabState(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
