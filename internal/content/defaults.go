// Package content is the single canonical source of default storefront data.
// Both the seed routine and the client-side outage fallback consume it, so
// the two can never drift apart.
package content

import (
	"time"

	"candleshop/internal/models"
)

// DefaultProducts returns the built-in candle catalog used to seed an empty
// store and to keep the storefront rendering when the backend is unreachable.
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:               "prod-1",
			Name:             "Midnight Rose",
			Category:         models.CategoryFloral,
			ShortDescription: "A romantic blend of velvet rose and oud wood.",
			FullDescription:  "Experience the allure of a secret garden at midnight. This hand-poured soy wax candle features deep notes of velvet rose, wrapped in smoky oud wood and a hint of clove. Perfect for romantic evenings or a luxurious bath.",
			Price:            35,
			SalePrice:        29.99,
			Images:           []string{"https://picsum.photos/id/106/800/800", "https://picsum.photos/id/111/800/800"},
			ScentNotes:       []string{"Damask Rose", "Oud", "Clove", "Praline"},
			BurnTime:         "40-50 hours",
			Size:             "8 oz",
			InStock:          true,
			IsBestSeller:     true,
		},
		{
			ID:               "prod-2",
			Name:             "Lavender Dreams",
			Category:         models.CategoryFloral,
			ShortDescription: "Calming French lavender with a touch of vanilla.",
			FullDescription:  "Drift away to the fields of Provence. Our Lavender Dreams candle uses pure essential oils to create a serene atmosphere. The sweetness of vanilla bean balances the herbal lavender for a truly relaxing experience.",
			Price:            28,
			Images:           []string{"https://picsum.photos/id/203/800/800", "https://picsum.photos/id/204/800/800"},
			ScentNotes:       []string{"French Lavender", "Vanilla Bean", "White Sage"},
			BurnTime:         "35-40 hours",
			Size:             "8 oz",
			InStock:          true,
			IsNew:            true,
		},
		{
			ID:               "prod-3",
			Name:             "Golden Amber & Teak",
			Category:         models.CategoryLuxury,
			ShortDescription: "Warm, woody, and sophisticated.",
			FullDescription:  "A sophisticated masculine blend that appeals to everyone. Rich teakwood and earthy amber create a warm, cozy environment. Ideal for living rooms and reading nooks.",
			Price:            42,
			Images:           []string{"https://picsum.photos/id/319/800/800", "https://picsum.photos/id/320/800/800"},
			ScentNotes:       []string{"Amber", "Teakwood", "Leather", "Patchouli"},
			BurnTime:         "60 hours",
			Size:             "12 oz",
			InStock:          true,
		},
		{
			ID:               "prod-4",
			Name:             "Holiday Hearth Gift Set",
			Category:         models.CategoryGiftSet,
			ShortDescription: "A trio of our favorite winter scents.",
			FullDescription:  "The perfect gift for the holiday season. This set includes three 4oz votives: Spiced Cider, Evergreen Forest, and Fireside Ember. Beautifully packaged in a reusable box.",
			Price:            65,
			SalePrice:        55,
			Images:           []string{"https://picsum.photos/id/401/800/800", "https://picsum.photos/id/402/800/800"},
			ScentNotes:       []string{"Cinnamon", "Pine", "Smoke", "Apple"},
			BurnTime:         "15 hours each",
			Size:             "3 x 4 oz",
			InStock:          true,
			IsBestSeller:     true,
		},
		{
			ID:               "prod-5",
			Name:             "Vanilla Silk",
			Category:         models.CategoryLuxury,
			ShortDescription: "Classic, creamy, and undeniably elegant.",
			FullDescription:  "Not your average vanilla. We use Tahitian vanilla beans blended with a touch of buttercream and musk for a scent that is rich, not sugary. A timeless classic.",
			Price:            38,
			Images:           []string{"https://picsum.photos/id/600/800/800", "https://picsum.photos/id/602/800/800"},
			ScentNotes:       []string{"Tahitian Vanilla", "Buttercream", "White Musk"},
			BurnTime:         "50 hours",
			Size:             "10 oz",
			InStock:          true,
		},
	}
}

// DefaultHero returns the hero section every fresh store starts with. It is
// the one seeded record and the fallback banner when no section is available.
func DefaultHero() models.HeroSection {
	return models.HeroSection{
		ID:        "hero-default",
		Name:      "Default Hero",
		IsActive:  true,
		CreatedAt: time.Now().UnixMilli(),
		HeroContent: models.HeroContent{
			Badge:              "Handcrafted in small batches",
			TitleLine1:         "Light Up Your",
			TitleAccent:        "Moments",
			Description:        "Discover Shazeda's artisanal soy candles, poured with love and infused with premium fragrances to soothe your soul.",
			BackgroundImageURL: "https://www.hdwallpapers.in/download/christmas_decoration_balls_with_candles_hd_cute_christmas-HD.jpg",
			PrimaryCtaText:     "Shop Collection",
			PrimaryCtaLink:     "/shop",
			SecondaryCtaText:   "Our Story",
			SecondaryCtaLink:   "/about",
		},
	}
}
