package models

import (
	"encoding/json"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsOnSaleRequiresStrictlyLowerPrice(t *testing.T) {
	tests := []struct {
		price     float64
		salePrice float64
		want      bool
	}{
		{100, 80, true},
		{100, 100, false},
		{100, 120, false},
		{100, 0, false},
		{35, 29.99, true},
	}
	for _, tt := range tests {
		if got := IsOnSale(tt.price, tt.salePrice); got != tt.want {
			t.Fatalf("IsOnSale(%v, %v) = %v, want %v", tt.price, tt.salePrice, got, tt.want)
		}
	}
}

func TestEffectivePriceUsesSalePriceWhenOnSale(t *testing.T) {
	if got := EffectivePrice(100, 75); got != 75 {
		t.Fatalf("expected sale price 75, got %v", got)
	}
	if got := EffectivePrice(100, 100); got != 100 {
		t.Fatalf("expected regular price when salePrice equals price, got %v", got)
	}
	if got := EffectivePrice(100, 0); got != 100 {
		t.Fatalf("expected regular price when no sale, got %v", got)
	}
}

func TestValidatePricingRejectsSalePriceAtOrAbovePrice(t *testing.T) {
	for _, salePrice := range []float64{100, 120} {
		if err := ValidatePricing(100, salePrice); err == nil {
			t.Fatalf("expected validation error for salePrice=%v", salePrice)
		}
	}
}

func TestValidatePricingAcceptsNoSale(t *testing.T) {
	if err := ValidatePricing(100, 0); err != nil {
		t.Fatalf("expected no error without a sale price, got %v", err)
	}
	if err := ValidatePricing(100, 80); err != nil {
		t.Fatalf("expected no error for a valid sale price, got %v", err)
	}
}

func TestValidatePricingRejectsNonPositivePrice(t *testing.T) {
	if err := ValidatePricing(0, 0); err == nil {
		t.Fatal("expected validation error for zero price")
	}
	if err := ValidatePricing(-1, 0); err == nil {
		t.Fatal("expected validation error for negative price")
	}
}

func TestProductJSONIncludesDerivedSaleFlag(t *testing.T) {
	p := Product{
		ID:        "prod-1",
		Name:      "Midnight Rose",
		Price:     120,
		SalePrice: 99,
		Category:  CategoryFloral,
		InStock:   true,
	}
	p.Normalize()

	body, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}

	jsonBody := string(body)
	if !strings.Contains(jsonBody, "\"salePrice\":99") {
		t.Fatalf("expected salePrice in response json, got %s", jsonBody)
	}
	if !strings.Contains(jsonBody, "\"isOnSale\":true") {
		t.Fatalf("expected isOnSale=true in response json, got %s", jsonBody)
	}
}

func TestNormalizeFallsBackToStoreID(t *testing.T) {
	oid := primitive.NewObjectID()

	p := Product{StoreID: oid, Name: "Legacy", Price: 10}
	p.Normalize()
	if p.ID != oid.Hex() {
		t.Fatalf("expected id %q from store id, got %q", oid.Hex(), p.ID)
	}

	h := HeroSection{StoreID: oid, ID: "custom-1", Name: "Hero"}
	h.Normalize()
	if h.ID != "custom-1" {
		t.Fatalf("expected application id to win, got %q", h.ID)
	}
}
