package models

import "fmt"

// A zero salePrice means "no sale". Anything else must undercut the regular
// price strictly; equal or higher sale prices are never treated as a sale.

func IsOnSale(price, salePrice float64) bool {
	return salePrice > 0 && salePrice < price
}

func EffectivePrice(price, salePrice float64) float64 {
	if IsOnSale(price, salePrice) {
		return salePrice
	}
	return price
}

func ValidatePricing(price, salePrice float64) error {
	if price <= 0 {
		return fmt.Errorf("price must be greater than 0")
	}
	if salePrice == 0 {
		return nil
	}
	if salePrice < 0 {
		return fmt.Errorf("salePrice must be greater than 0")
	}
	if salePrice >= price {
		return fmt.Errorf("salePrice must be less than price")
	}
	return nil
}
