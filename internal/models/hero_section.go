package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HeroContent is the displayable part of a hero section: everything the
// storefront home page needs to render the banner.
type HeroContent struct {
	Badge              string `bson:"badge" json:"badge"`
	TitleLine1         string `bson:"titleLine1" json:"titleLine1"`
	TitleAccent        string `bson:"titleAccent" json:"titleAccent"`
	Description        string `bson:"description" json:"description"`
	BackgroundImageURL string `bson:"backgroundImageUrl" json:"backgroundImageUrl"`
	PrimaryCtaText     string `bson:"primaryCtaText" json:"primaryCtaText"`
	PrimaryCtaLink     string `bson:"primaryCtaLink" json:"primaryCtaLink"`
	SecondaryCtaText   string `bson:"secondaryCtaText" json:"secondaryCtaText"`
	SecondaryCtaLink   string `bson:"secondaryCtaLink" json:"secondaryCtaLink"`
}

// HeroSection is a named, selectable hero banner. At most one section is
// active at a time; CreatedAt (epoch milliseconds) is the sole listing sort
// key.
type HeroSection struct {
	StoreID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          string             `bson:"id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
	HeroContent `bson:",inline"`
}

// Normalize surfaces the store id as the application id for legacy documents.
func (h *HeroSection) Normalize() {
	if h.ID == "" && !h.StoreID.IsZero() {
		h.ID = h.StoreID.Hex()
	}
}
