package models

// The storefront groups candles into a small fixed set of categories. The API
// can run in "open" mode where arbitrary category strings are accepted; the
// known set is what the admin UI offers and what strict mode enforces.
const (
	CategoryFloral   = "Floral"
	CategoryLuxury   = "Luxury"
	CategoryGiftSet  = "Gift Set"
	CategorySeasonal = "Seasonal"
)

func KnownCategories() []string {
	return []string{CategoryFloral, CategoryLuxury, CategoryGiftSet, CategorySeasonal}
}

func IsKnownCategory(category string) bool {
	for _, known := range KnownCategories() {
		if category == known {
			return true
		}
	}
	return false
}
