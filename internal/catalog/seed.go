package catalog

import "cafefinder/internal/domain"

// DefaultCatalog returns the fixed set of cafes served by the app.
func DefaultCatalog() []domain.Cafe {
	return []domain.Cafe{
		{
			ID:          "1",
			Title:       "Telegram Espresso",
			Description: "Hole-in-the-wall espresso bar in a heritage arcade, single origin rotates weekly.",
			Category:    "Perth CBD",
			ImageURL:    "/images/cafe_1.jpg",
		},
		{
			ID:          "2",
			Title:       "The Standing Room",
			Description: "Standing-only coffee window on Shafto Lane, batch brew and pastries until sold out.",
			Category:    "Perth CBD",
			ImageURL:    "/images/cafe_2.jpg",
		},
		{
			ID:          "3",
			Title:       "Mooka Coffee Brewers",
			Description: "Specialty brew bar with pour over flights and house-roasted beans.",
			Category:    "Northbridge",
			ImageURL:    "/images/cafe_3.jpg",
		},
		{
			ID:          "4",
			Title:       "Little Lane Bakehouse",
			Description: "Bakery cafe known for sourdough, cruffins and long weekend queues.",
			Category:    "Northbridge",
			ImageURL:    "/images/cafe_4.jpg",
		},
		{
			ID:          "5",
			Title:       "Night Parrot Coffee",
			Description: "Late-opening cafe and record store with toasties and filter coffee.",
			Category:    "Northbridge",
			ImageURL:    "/images/cafe_5.jpg",
		},
		{
			ID:          "6",
			Title:       "Harbour Grind",
			Description: "Portside cafe with fishing-boat views, big breakfasts and strong flat whites.",
			Category:    "Fremantle",
			ImageURL:    "/images/cafe_6.jpg",
		},
		{
			ID:          "7",
			Title:       "Cappuccino Strip Co",
			Description: "Old-school Italian espresso house on the strip, open since the eighties.",
			Category:    "Fremantle",
			ImageURL:    "/images/cafe_7.jpg",
		},
		{
			ID:          "8",
			Title:       "Rokeby Social",
			Description: "Neighbourhood brunch spot with a leafy courtyard and all-day menu.",
			Category:    "Subiaco",
			ImageURL:    "/images/cafe_8.jpg",
		},
		{
			ID:          "9",
			Title:       "Oxford Street Beans",
			Description: "Corner cafe by the cinema, famous for affogato and people watching.",
			Category:    "Leederville",
			ImageURL:    "/images/cafe_9.jpg",
		},
		{
			ID:          "10",
			Title:       "Beaufort Press",
			Description: "Tiny cafe and print studio, serves aeropress and seasonal toast menus.",
			Category:    "Mount Lawley",
			ImageURL:    "/images/cafe_10.jpg",
		},
	}
}
