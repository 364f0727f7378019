package models

import "testing"

func TestIsKnownCategory(t *testing.T) {
	for _, category := range KnownCategories() {
		if !IsKnownCategory(category) {
			t.Fatalf("expected %q to be known", category)
		}
	}
	if IsKnownCategory("Woodland") {
		t.Fatal("expected arbitrary category to be unknown")
	}
	if IsKnownCategory("floral") {
		t.Fatal("category matching is case sensitive")
	}
}
