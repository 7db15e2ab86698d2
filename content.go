package main

import (
	"time"

	"github.com/somchakravarty/som-dev/internal/travelmap"
)

type NavLink struct {
	Href  string
	Label string
}

type Metric struct {
	Value string
	Unit  string
	Label string
}

type Milestone struct {
	Years string
	Role  string
	Desc  string
}

type Service struct {
	Number      string
	Title       string
	Description string
	Details     []string
	Tags        []string
	Open        bool
}

type Feature struct {
	Icon  string
	Label string
	Desc  string
}

type Project struct {
	Title string
	Desc  string
	Tech  []string
}

type Article struct {
	Title    string
	Date     string
	Excerpt  string
	URL      string
	Featured bool
}

type Theme struct {
	Label string
	Desc  string
}

type Hobby struct {
	Label  string
	Detail string
}

type Detail struct {
	Label     string
	Value     string
	Highlight bool
}

// AdventureCard is an adventures section card. Cards are built from the
// atlas so the list and the map never disagree.
type AdventureCard struct {
	ID          string
	Name        string
	Type        string
	Description string
	URL         string
	Icon        string
}

const (
	ContactEmail = "somnath686@gmail.com"
	LinkedInURL  = "https://www.linkedin.com/in/somchakravarty/"
	YouTubeURL   = "https://youtu.be/ERWZ3BzMXT8"
	CaseStudyURL = "https://mission-control-inky.vercel.app"
)

var NavLinks = []NavLink{
	{"#about", "About"},
	{"#services", "Services"},
	{"#work", "Work"},
	{"#writing", "Writing"},
	{"#adventures", "Adventures"},
	{"#contact", "Contact"},
}

var (
	AboutLead = `I've spent 18 years building and shaping digital products. First as a UX designer obsessing over every
	interaction, then as a product leader driving strategy at the director level, and now as an AI builder
	crafting the next wave of intelligent tools.`

	AboutArc = `This unusual career arc, from pixels to product-market fit to machine learning pipelines, gives me a
	rare perspective. I don't just understand what to build; I understand how it should feel, why it matters,
	and how to ship it.`

	AboutNow = `I hold an MS in Human-Computer Interaction from Carnegie Mellon University. Currently on a deliberate
	career break in Bangalore, building AI-powered infrastructure and exploring what's next.`
)

var Metrics = []Metric{
	{"18", "years", "building products"},
	{"9", "yrs", "UX Design"},
	{"9", "yrs", "Product Management"},
	{"CMU", "", "HCI · MS 2014"},
}

var Timeline = []Milestone{
	{"2007–2016", "UX Designer → Lead", "Enterprise design systems, interaction design, information architecture. Built and led design teams across complex B2B products."},
	{"2013–2014", "Carnegie Mellon University", "MS in Human-Computer Interaction. Pittsburgh, PA."},
	{"2016–2025", "Product Manager → Director", "Strategic/Agile Portfolio Management, Work Management. Roadmaps, GTM, retention/growth, new market entry. Led AI-based product initiatives."},
	{"2025–Now", "Building with AI", "Career break. Building AI-powered infrastructure, exploring what's next. Shipping products at the intersection of Product + UX + AI."},
}

var Skills = []string{
	"Product Strategy", "UX Research", "Design Systems", "Roadmapping",
	"AI/LLM Integration", "React", "Full-Stack Dev", "Figma",
	"User Story Mapping", "Agile/SAFe", "Data Analysis", "Prototyping",
	"Stakeholder Mgmt", "Team Building", "GTM Strategy", "Accessibility",
}

// Services lists the accordion items. Only the first starts open.
var Services = []Service{
	{
		Number:      "01",
		Title:       "Fractional Product Leadership",
		Description: "Embedded product leadership for startups and scale-ups. Strategy, roadmapping, team building, and execution without the full-time commitment. I bring director-level experience to your most critical product challenges.",
		Details: []string{
			"Product strategy & vision definition",
			"Roadmap planning & prioritization",
			"Stakeholder alignment & communication",
			"Team building & mentorship",
			"OKR/KPI framework setup",
			"Go-to-market strategy",
		},
		Tags: []string{"Strategy", "Roadmapping", "Team Building", "Stakeholder Alignment"},
		Open: true,
	},
	{
		Number:      "02",
		Title:       "App Development (Human + AI)",
		Description: "End-to-end product development that leverages AI at every stage, from intelligent features to AI-assisted building. Modern stacks, rapid iteration, production-quality output.",
		Details: []string{
			"Full-stack web app development",
			"AI/LLM feature integration",
			"React + Supabase + Tailwind",
			"Rapid prototyping & MVP builds",
			"API design & architecture",
			"Deployment & CI/CD setup",
		},
		Tags: []string{"React", "AI Integration", "Full-Stack", "Rapid Prototyping"},
	},
	{
		Number:      "03",
		Title:       "UX Audits & Design Strategy",
		Description: "Deep-dive UX evaluations grounded in 9 years of design practice and a CMU HCI foundation. I identify friction, uncover opportunities, and deliver actionable recommendations that move metrics.",
		Details: []string{
			"Heuristic evaluation & expert review",
			"User research & usability testing",
			"Information architecture review",
			"Design system audit & strategy",
			"Accessibility compliance (WCAG)",
			"Competitive UX analysis",
		},
		Tags: []string{"Heuristic Analysis", "User Research", "Design Systems", "Accessibility"},
	},
	{
		Number:      "04",
		Title:       "AI Strategy & Consulting",
		Description: "Help teams figure out where AI fits in their product, and where it doesn't. From opportunity identification to implementation strategy, grounded in real product experience, not hype.",
		Details: []string{
			"AI opportunity assessment",
			"LLM integration strategy",
			"AI UX design patterns",
			"Build vs. buy analysis",
			"AI agent architecture",
			"Prompt engineering & evaluation",
		},
		Tags: []string{"AI Strategy", "LLM", "Agent Design", "Implementation"},
	},
}

var (
	CaseStudyIntro = `A collaborative task management platform built from the ground up with AI at its core.
	Mission Control isn't just another project board. It's where human intent meets AI capability.`

	CaseStudyFeatures = []Feature{
		{"✦", "AI Agent", "Built-in AI that collaborates on tasks, creates content, and automates workflows"},
		{"◫", "Kanban Board", "Drag-and-drop task management with customizable boards and real-time updates"},
		{"⟐", "Real-Time Sync", "Cross-platform notifications via Telegram, push, and in-app channels"},
		{"◎", "Collaborative", "Multi-user workspace with role-based access, comments, and shared context"},
	}

	CaseStudyStack = []string{"React 19", "Supabase", "Tailwind CSS", "Vite", "AI / LLM", "Edge Functions"}

	OtherProjects = []Project{
		{"Portfolio Site", "This very site. Go, Gin and HTMX on the server, an animated SVG travel map rendered with gomponents.", []string{"Go", "Gin", "HTMX", "GSAP"}},
		{"AI Agent Infrastructure", "A personal AI assistant (Bhoot 👻) that manages email, calendar, tasks, notifications, and more via natural language.", []string{"Node.js", "Claude API", "Telegram", "Supabase"}},
		{"Arduino/RPi Projects", "Hardware tinkering: sensor systems, home automation, 3D-printed enclosures on a Bambu Lab A1.", []string{"Arduino", "Raspberry Pi", "3D Printing", "C++"}},
	}
)

var Articles = []Article{
	{"Downshift to Discover", "Jul 2025", "On the power of slowing down to find what matters. Why a deliberate career break might be the most productive thing you ever do. Motorcycles as a lens for life.", "https://www.linkedin.com/pulse/downshift-discover-som-chakravarty/", true},
	{"The Art of Crafting the Right Friction", "Dec 2024", "Not all friction is bad. How intentional resistance in product design leads to better outcomes and deeper engagement. Analysis of Shapr3D, Excalidraw, and more.", LinkedInURL, true},
	{"How Our Identities Shape Our Lives", "Nov 2024", "Exploring the invisible narratives we carry: the identity-action-habit loop. How our self-stories define the products we build, teams we lead, and decisions we make.", LinkedInURL, true},
	{"We Need to Change How We Look at Work and People", "Nov 2023", `A critique of the "70 hours/week" mindset. Camp A vs Camp B workers. Outcomes over hours, always.`, LinkedInURL, false},
	{"The Quiet Power of Saying No", "Sep 2023", "Why the best product decisions are often the features you choose not to build.", LinkedInURL, false},
	{"Design Systems Are Team Systems", "Jun 2023", "A design system reflects your org structure. Fix the team dynamics first.", LinkedInURL, false},
	{"From Wireframes to Roadmaps", "Mar 2023", "Lessons from crossing the bridge between design and product management.", LinkedInURL, false},
	{"The Second-Order Effects of AI in Product", "Jan 2023", "AI won't just change features. It will reshape how product teams operate.", LinkedInURL, false},
	{"Building for the Unscripted Moment", "Oct 2022", "Why the best UX anticipates what users haven't asked for yet.", LinkedInURL, false},
	{"Carnegie Mellon Changed How I Think", "Jul 2022", "Reflections on how an HCI education reshapes your problem-solving lens permanently.", LinkedInURL, false},
}

var WritingThemes = []Theme{
	{"Product Craft", "Metrics, SaaS strategies, friction design, user story mapping"},
	{"UX Roots", "Technical UX, prototyping, accessibility, design systems"},
	{"Philosophy of Work", "Identity, meaning, outcomes vs hours"},
	{"Life Metaphors", "Motorcycles as epiphany, speed vs exploration"},
}

var Hobbies = []Hobby{
	{"Adventure Motorcycling", "BMW GS 1300 · Life goal: ride around the world"},
	{"Mountaineering", "Kilimanjaro · Mont Blanc · EBC"},
	{"Strength Training", "Home gym · Hate cardio · Working on consistency"},
	{"Chess", "Regular player · Strategy thinking"},
	{"3D Printing", "Bambu Lab A1 · Hobby projects & prototypes"},
	{"Woodworking & Pottery", "Learned from proper teachers · Not active lately"},
	{"Electronics Tinkering", "Arduino · Raspberry Pi · Sensor projects"},
	{"Philosophy", "Enjoys ruminating on ideas about identity, meaning, work"},
}

var ContactDetails = []Detail{
	{"Location", "Bangalore, India", false},
	{"Availability", "Open to work", true},
	{"Remote", "Worldwide", false},
	{"Timezone", "IST (UTC+5:30)", false},
}

// HomeTimezone drives the nav clock.
const HomeTimezone = "Asia/Kolkata"

// FeaturedArticles returns the articles flagged as featured, in order.
func FeaturedArticles() []Article {
	return filterArticles(true)
}

// MoreArticles returns the remaining articles.
func MoreArticles() []Article {
	return filterArticles(false)
}

func filterArticles(featured bool) []Article {
	var out []Article
	for _, a := range Articles {
		if a.Featured == featured {
			out = append(out, a)
		}
	}
	return out
}

// adventureCards lists every non-home location of the atlas as a card.
func adventureCards(a *travelmap.Atlas) []AdventureCard {
	locs := a.Adventures()
	cards := make([]AdventureCard, 0, len(locs))
	for _, loc := range locs {
		cards = append(cards, AdventureCard{
			ID:          loc.ID,
			Name:        loc.Name,
			Type:        loc.Category.Label(),
			Description: loc.Description,
			URL:         loc.URL,
			Icon:        loc.Icon,
		})
	}
	return cards
}

// clockTime formats t as the nav clock shows it, in the home timezone.
// Unknown zones fall back to a fixed IST offset.
func clockTime(t time.Time) string {
	loc, err := time.LoadLocation(HomeTimezone)
	if err != nil {
		loc = time.FixedZone("IST", 5*3600+30*60)
	}
	return t.In(loc).Format("15:04:05")
}
