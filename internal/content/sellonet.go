package content

import "sync"

// Heading is a section heading: a small eyebrow line above a title whose
// Emphasis part is rendered bold.
type Heading struct {
	Eyebrow  string
	Title    string
	Emphasis string
}

// Phone is one labelled contact number.
type Phone struct {
	Label  string
	Number string
}

// Contact holds the static contact details. There is no form.
type Contact struct {
	Phones  []Phone
	Address []string
	Email   string
}

// Person is the founder card of the about section.
type Person struct {
	Name  string
	Role  string
	Photo string
}

// Copy is the static text of the page around the two registries.
type Copy struct {
	Company      string
	Logo         string
	HeroImage    string
	Tagline      string
	Headline     string
	HeadlineBold string
	HeroAction   string

	Industries   Heading
	Technologies Heading
	About        Heading
	Contact      Heading

	BannerText     string
	BannerEmphasis string
	BannerAction   string

	Intro        string
	Founder      Person
	Capabilities []string

	Details Contact
}

var defaultIndustries = []Industry{
	{
		Title:       "Retail",
		Description: "Whether you're looking for new products or cost saving technology, our relationships let you stay ahead of the curve.",
		Icon:        "shopping-bag",
	},
	{
		Title:       "Corporate",
		Description: "With us as your business partner you get early access to new technologies across markets and industries.",
		Icon:        "briefcase",
	},
	{
		Title:       "Enterprise",
		Description: "Our solutions are effective for large scale organizations, who can truly leverage growth & efficiency with new products.",
		Icon:        "factory",
	},
}

var defaultTechnologies = []Technology{
	{
		Key:         "defense",
		Title:       "Defense Technology",
		Description: "Sellonet invests in cutting-edge defense technologies and industrial companies, bridging innovation with strategic defense applications. We connect advanced tech companies with defense sector opportunities, facilitating partnerships that drive national security and technological advancement.",
		Image:       "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=800&q=80",
		Icon:        "building-2",
	},
	{
		Key:         "food",
		Title:       "Food Technology",
		Description: "From mobile applications to new food categories, our emerging startups have plenty to offer. Sellonet understands your needs and finds the right solutions, connecting you with leaders in the industry so you can benefit from new products, strategic partnerships and business opportunities.",
		Image:       "https://images.unsplash.com/photo-1606787366850-de6330128bfc?w=800&q=80",
		Icon:        "utensils",
	},
	{
		Key:         "retail",
		Title:       "Retail Innovation",
		Description: "Innovative retail technologies from AR, robotics and artificial intelligence, to shipping platforms and payment systems — our startups deliver cutting edge solutions which transform businesses and directly improve your bottom line.",
		Image:       "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=800&q=80",
		Icon:        "shopping-bag",
	},
	{
		Key:         "smart",
		Title:       "Smart Platforms",
		Description: "From intelligent data platforms to green tech, energy efficiency and indoor pollution control, Sellonet connects you with incredible technologies focused on enhancing business objectives and increasing consumer satisfaction.",
		Image:       "https://images.unsplash.com/photo-1558002038-1055907df827?w=800&q=80",
		Icon:        "cpu",
	},
	{
		Key:         "connected",
		Title:       "Connected Devices",
		Description: "The next generation of IoT - the internet of things - is here and powering our every day lives. Learn how connected systems can improve both your homes and businesses with smart sensors and connected infrastructure.",
		Image:       "https://images.unsplash.com/photo-1518770660439-4636190af475?w=800&q=80",
		Icon:        "wifi",
	},
}

const assetBase = "https://qtrypzzcjebvfcihiynt.supabase.co/storage/v1/object/public/base44-prod/public/696935c87c268bcdcff700ea/"

var defaultCopy = Copy{
	Company:      "Sellonet",
	Logo:         assetBase + "9de3d8a2b_Sellonetwhitelogo.png",
	HeroImage:    "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=1920&q=80",
	Tagline:      "Discover new game changing technologies",
	Headline:     "Give Your Company",
	HeadlineBold: "The Innovative Edge",
	HeroAction:   "Explore More",

	Industries: Heading{
		Eyebrow:  "Find High Impact Startups",
		Title:    "Leverage New",
		Emphasis: "Opportunities",
	},
	Technologies: Heading{
		Eyebrow:  "Connect with Innovation That Works For You",
		Title:    "Get A Headstart On",
		Emphasis: "Success",
	},
	About: Heading{
		Eyebrow:  "About Sellonet",
		Title:    "Bringing Cutting Edge Technology",
		Emphasis: "To Your Door",
	},
	Contact: Heading{
		Eyebrow:  "Get Started On The Right Track",
		Title:    "Let Us Know How We Can",
		Emphasis: "Help",
	},

	BannerText:     "Learn how",
	BannerEmphasis: "SELLONET",
	BannerAction:   "Connect With Us",

	Intro: "Bridging new technologies, investment and various markets and industries, Sellonet helps companies launch new solutions and leverage technology for growth.",
	Founder: Person{
		Name:  "Bezalel Gleiser",
		Role:  "Founder & CEO",
		Photo: assetBase + "bfa835285_Screenshot2026-01-15at212905.png",
	},
	Capabilities: []string{
		"Scout for technologies according to specific needs of large corporates",
		"Identify corporates that need unique technologies from our deal flow",
		"Facilitate from initial presentations through pilots to full implementation",
		"Help companies raise funds through our global investor network",
	},

	Details: Contact{
		Phones: []Phone{
			{Label: "Office", Number: "+972-72-211-7888"},
			{Label: "Mobile", Number: "+972-52-3062828"},
			{Label: "US", Number: "+1-914-294-3369"},
			{Label: "UK", Number: "+44-203-807-7925"},
		},
		Address: []string{"Fikus 11, Nir Galim", "MP Evtach 79245, Israel"},
		Email:   "bezalel@sellonet.com",
	},
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the compiled-in Sellonet registry. It is built once and
// shared; the content is fixed, so a construction failure is a programming
// error and panics.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New(defaultIndustries, defaultTechnologies)
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// DefaultCopy returns the static page text. Slices are copied.
func DefaultCopy() Copy {
	c := defaultCopy
	c.Capabilities = append([]string(nil), defaultCopy.Capabilities...)
	c.Details.Phones = append([]Phone(nil), defaultCopy.Details.Phones...)
	c.Details.Address = append([]string(nil), defaultCopy.Details.Address...)
	return c
}
