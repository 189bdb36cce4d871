package domain

// Package is a bookable studio package.
type Package struct {
	Title     string   `json:"title"`
	Price     string   `json:"price"`
	Duration  string   `json:"duration"`
	Overview  string   `json:"overview"`
	Perks     []string `json:"perks"`
	SuitedFor string   `json:"suitedFor"`
}

// Space is a room or area of the studio.
type Space struct {
	Title string `json:"title"`
	Blurb string `json:"blurb"`
	Tag   string `json:"tag"`
	Image string `json:"image"`
}

var packages = []Package{
	{
		Title:    "Package 01",
		Price:    "Rs. 50,000",
		Duration: "06 hours",
		Overview: "Fast brand content days with a spotless white cyc ready when you arrive.",
		Perks: []string{
			"Freshly painted Infinity Wall",
			"Makeup Room & Changing Room",
			"Iron & Iron Stand",
			"Sitting Lounge",
		},
		SuitedFor: "Product launches, short-form content, tabletop",
	},
	{
		Title:    "Package 02",
		Price:    "Rs. 70,000",
		Duration: "08 hours",
		Overview: "More time for commercials and fashion stories with room to reset talent.",
		Perks: []string{
			"Freshly Painted Infinity Wall",
			"Makeup Room & Changing Room",
			"Iron & Iron Stand",
			"Sitting Lounge",
			"Ice Boxes & Hangers",
		},
		SuitedFor: "Commercials, fashion look-books, multi-look shoots",
	},
	{
		Title:    "Package 03",
		Price:    "Rs. 90,000",
		Duration: "12 hours",
		Overview: "Full-day coverage with refreshments and an assistant to keep momentum steady.",
		Perks: []string{
			"Freshly Painted Infinity Wall",
			"Makeup Room & Changing Room",
			"Iron & Iron Stand",
			"Sitting Lounge",
			"Hangers",
			"Dedicated Studio Assistant",
			"Complimentary Tea",
		},
		SuitedFor: "Long-format ads, music videos, editorial days",
	},
}

var spaces = []Space{
	{
		Title: "Infinity Studio",
		Blurb: "Our freshly painted infinity wall is Lahore's calmest blank canvas for films, ads, and fashion.",
		Tag:   "Seamless 105 ft",
		Image: "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=1600&q=80",
	},
	{
		Title: "Changing & Makeup",
		Blurb: "Dedicated makeup room, changing room, and ironing corner keep talent relaxed between takes.",
		Tag:   "Ready rooms",
		Image: "https://images.unsplash.com/photo-1524504388940-b1c1722653e1?auto=format&fit=crop&w=1600&q=80",
	},
	{
		Title: "Sitting Lounge",
		Blurb: "Clients stay close to the action with a lounge for approvals, snacks, and quiet conversations.",
		Tag:   "Client-first",
		Image: "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?auto=format&fit=crop&w=1600&q=80",
	},
}

// Packages returns a copy of the booking packages in display order.
func Packages() []Package {
	out := make([]Package, len(packages))
	for i, p := range packages {
		p.Perks = append([]string(nil), p.Perks...)
		out[i] = p
	}
	return out
}

// Spaces returns a copy of the studio spaces in display order.
func Spaces() []Space {
	return append([]Space(nil), spaces...)
}
