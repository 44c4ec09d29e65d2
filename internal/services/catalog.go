// internal/services/catalog.go
package services

import "github.com/zensupply/backend/internal/models"

// CanonicalProducts is the catalog shipped with the code. The seeder writes these
// documents on every catalog read, so price and variant corrections are deployed by
// changing this list.
func CanonicalProducts() []models.Product {
	return []models.Product{
		{
			Title:       "Skeleton Spawner",
			Description: "Placeable spawner for efficient bone and arrow farms.",
			Price:       14.99,
			Category:    "Spawners",
			Image:       models.StringPtr("/assets/skeleton-spawner.png"),
			Badge:       models.StringPtr("Popular"),
			InStock:     true,
			Variants: []models.Variant{
				{ID: "single", Label: "1 Spawner", UnitPrice: models.FloatPtr(14.99)},
				{ID: "bundle-5", Label: "5 Spawners", BundleQty: models.IntPtr(5), BundlePrice: models.FloatPtr(64.99)},
				{ID: "bundle-10", Label: "10 Spawners", BundleQty: models.IntPtr(10), BundlePrice: models.FloatPtr(119.99)},
			},
		},
		{
			Title:       "Money • 5M",
			Description: "Instantly boost your balance with 5 million in-game cash.",
			Price:       9.99,
			Category:    "Money",
			Image:       models.StringPtr("/assets/money-5m.png"),
			Badge:       models.StringPtr("Best value"),
			InStock:     true,
		},
		{
			Title:       "Money • 10M",
			Description: "Big bankroll: ten million to dominate the economy.",
			Price:       17.99,
			Category:    "Money",
			Image:       models.StringPtr("/assets/money-10m.png"),
			InStock:     true,
		},
		{
			Title:       "Mob Coin Bundle",
			Description: "1,000 mob coins for special upgrades and perks.",
			Price:       7.99,
			Category:    "Currency",
			Image:       models.StringPtr("/assets/mob-coins.png"),
			InStock:     true,
			Variants: []models.Variant{
				{ID: "coins-1k", Label: "1,000 Mob Coins", UnitPrice: models.FloatPtr(7.99)},
				{ID: "coins-5k", Label: "5,000 Mob Coins", BundleQty: models.IntPtr(5), BundlePrice: models.FloatPtr(34.99)},
			},
		},
	}
}

// AllowedTitles lists the products visible through the catalog. Anything else in the
// product collection stays stored but hidden.
func AllowedTitles() []string {
	products := CanonicalProducts()
	titles := make([]string, 0, len(products))
	for _, p := range products {
		titles = append(titles, p.Title)
	}
	return titles
}
