package travelmap

// Locations is the compiled-in set of places on the adventures map.
var Locations = []Location{
	{
		ID:          "bangalore",
		Name:        "Bangalore",
		Subtitle:    "Home base",
		Lat:         12.97,
		Lng:         77.59,
		Category:    CategoryHome,
		Icon:        "🏠",
		Description: "Where every ride starts and ends. Building AI-powered infrastructure from here.",
	},
	{
		ID:          "pittsburgh",
		Name:        "Carnegie Mellon",
		Subtitle:    "Pittsburgh, PA",
		Lat:         40.44,
		Lng:         -79.94,
		Category:    CategoryEducation,
		Icon:        "🎓",
		Description: "MS in Human-Computer Interaction, 2013–2014.",
	},
	{
		ID:          "norway-sweden",
		Name:        "Norway & Sweden",
		Subtitle:    "Solo on a BMW GS",
		Lat:         61.50,
		Lng:         9.00,
		Category:    CategoryMotorcycle,
		Icon:        "🏍️",
		Description: "Cross-country motorcycle ride through Scandinavian fjords, Arctic Circle, and coastal highways. Solo expedition on a BMW GS.",
		URL:         "https://youtu.be/ERWZ3BzMXT8?si=8iuALC5hyfl8jgec",
	},
	{
		ID:          "ladakh",
		Name:        "Ladakh",
		Subtitle:    "Khardung La · Chang La · Pangong",
		Lat:         34.15,
		Lng:         77.57,
		Category:    CategoryMotorcycle,
		Icon:        "🏍️",
		Description: "Multiple rides through the highest motorable passes in the world. Khardung La, Chang La, Pangong Lake. Ridden this route several times.",
		URL:         "https://youtu.be/htic4FnpUSw?si=TFIjZm3ZT7L0oaWM",
	},
	{
		ID:          "spiti-zanskar",
		Name:        "Spiti & Zanskar",
		Subtitle:    "Indian Himalayas",
		Lat:         32.25,
		Lng:         78.03,
		Category:    CategoryMotorcycle,
		Icon:        "🏍️",
		Description: "Remote valleys, broken roads, river crossings. The most raw and challenging motorcycle terrain in the Indian Himalayas.",
	},
	{
		ID:          "kilimanjaro",
		Name:        "Kilimanjaro",
		Subtitle:    "5,895m · Machame route",
		Lat:         -3.07,
		Lng:         37.35,
		Category:    CategoryMountaineering,
		Icon:        "⛰️",
		Description: "Summit of Africa's highest peak. The Machame route, 7 days of trekking through rainforest, alpine desert, and glaciers.",
	},
	{
		ID:          "mont-blanc",
		Name:        "Mont Blanc",
		Subtitle:    "4,808m · Goûter Route",
		Lat:         45.83,
		Lng:         6.86,
		Category:    CategoryMountaineering,
		Icon:        "⛰️",
		Description: "Western Europe's highest peak. Alpine mountaineering with crampons and ice axes on the Goûter Route.",
	},
	{
		ID:          "everest-base-camp",
		Name:        "Everest Base Camp",
		Subtitle:    "Khumbu Valley",
		Lat:         28.00,
		Lng:         86.85,
		Category:    CategoryMountaineering,
		Icon:        "⛰️",
		Description: "The classic EBC trek through Khumbu Valley. Namche Bazaar, Tengboche, Gorak Shep. Standing at the foot of the world's tallest mountain.",
		URL:         "https://youtu.be/h_pbYScQkxE?si=rXC2XYYRc574ywh6",
	},
}

// DreamRoute is the round-the-world ride, west from Bangalore and back. It
// stays clear of the antimeridian so the polyline never wraps the canvas.
var DreamRoute = []LatLng{
	{12.97, 77.59},   // Bangalore
	{28.61, 77.21},   // Delhi
	{35.69, 51.39},   // Tehran
	{41.01, 28.98},   // Istanbul
	{48.14, 11.58},   // Munich
	{38.72, -9.14},   // Lisbon
	{44.65, -63.57},  // Halifax
	{61.22, -149.90}, // Anchorage
	{49.28, -123.12}, // Vancouver
	{19.43, -99.13},  // Mexico City
	{4.71, -74.07},   // Bogotá
	{-12.05, -77.04}, // Lima
	{-54.80, -68.30}, // Ushuaia
	{-34.60, -58.38}, // Buenos Aires
	{-33.92, 18.42},  // Cape Town
	{-1.29, 36.82},   // Nairobi
	{30.04, 31.24},   // Cairo
	{23.59, 58.41},   // Muscat
	{19.08, 72.88},   // Mumbai
	{12.97, 77.59},   // Bangalore
}

// Outline is a decorative continent shape in canvas units.
type Outline struct {
	Name string
	Path string
}

// Outlines are hand-simplified continent shapes. They are decoration only and
// are not recomputed from the projector.
var Outlines = []Outline{
	{"north-america", "M41.7,111.9 L152.8,103.4 L236.1,111.9 L277.8,88.6 L319.4,139.5 L347.2,169.6 L319.4,179.9 L294.4,189.3 L275.0,206.3 L277.8,214.1 L263.9,206.3 L236.1,207.9 L230.6,218.7 L236.1,224.6 L255.6,228.9 L280.6,237.4 L269.4,238.9 L236.1,227.5 L208.3,221.6 L175.0,203.0 L155.6,189.3 L152.8,173.8 L119.4,150.6 L83.3,145.2 L41.7,158.1 L38.9,139.5 Z"},
	{"greenland", "M388.9,27.6 L444.4,56.1 L438.9,111.9 L377.8,145.2 L352.8,119.7 L305.6,77.1 L333.3,38.3 Z"},
	{"south-america", "M300.0,233.2 L327.8,236.0 L355.6,243.0 L402.8,257.0 L394.4,268.2 L383.3,282.8 L352.8,300.3 L327.8,308.9 L316.7,324.1 L311.1,341.9 L291.7,334.8 L297.2,310.7 L302.8,290.5 L305.6,275.4 L275.0,257.0 L280.6,247.2 L286.1,238.9 Z"},
	{"europe", "M577.8,107.7 L555.6,111.9 L525.0,136.5 L516.7,150.6 L527.8,153.2 L525.0,160.5 L513.9,162.9 L500.0,171.7 L494.4,175.9 L475.0,183.7 L475.0,194.6 L486.1,196.3 L502.8,191.1 L511.1,183.7 L525.0,181.8 L544.4,189.3 L544.4,192.9 L552.8,187.5 L561.1,194.6 L575.0,187.5 L583.3,179.9 L602.8,175.9 L605.6,155.7 L611.1,130.1 L591.7,115.9 Z"},
	{"africa", "M527.8,194.6 L530.6,201.4 L555.6,204.7 L588.9,204.7 L602.8,218.7 L622.2,233.2 L641.7,234.6 L625.0,247.2 L611.1,257.0 L613.9,271.1 L591.7,287.4 L572.2,300.3 L550.0,300.3 L541.7,290.5 L533.3,274.0 L536.1,262.6 L525.0,251.4 L519.4,244.4 L488.9,243.0 L477.8,244.4 L458.3,236.0 L452.8,228.9 L452.8,220.2 L463.9,209.5 L483.3,198.0 Z"},
	{"asia", "M666.7,111.9 L791.7,77.1 L861.1,103.4 L944.4,111.9 L1000.0,130.1 L952.8,145.2 L933.3,162.9 L897.2,147.9 L891.7,162.9 L875.0,179.9 L852.8,191.1 L858.3,198.0 L833.3,198.0 L838.9,206.3 L816.7,218.7 L800.0,220.2 L794.4,236.0 L788.9,238.9 L777.8,231.8 L788.9,248.6 L772.2,240.3 L769.4,227.5 L752.8,218.7 L727.8,227.5 L713.9,238.9 L700.0,220.2 L683.3,214.1 L658.3,214.1 L633.3,206.3 L663.9,220.2 L625.0,231.8 L594.4,209.5 L600.0,196.3 L575.0,194.6 L580.6,187.5 L611.1,179.9 L638.9,175.9 L666.7,158.1 Z"},
	{"australia", "M866.7,265.4 L880.6,266.8 L891.7,274.0 L894.4,265.4 L905.6,276.9 L925.0,290.5 L916.7,305.4 L905.6,308.9 L888.9,307.1 L872.2,297.0 L825.0,302.0 L819.4,295.3 L816.7,281.3 L830.6,278.4 L852.8,269.6 Z"},
}

// GridLatitudes are the parallels drawn behind the continents.
var GridLatitudes = []float64{-60, -30, 0, 30, 60}
