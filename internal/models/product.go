package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SocialLinks holds optional per-product social handles shown on detail pages.
type SocialLinks struct {
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	TikTok    string `bson:"tiktok,omitempty" json:"tiktok,omitempty"`
}

// Product documents carry both the Mongo _id and an application-level id
// string; the application id is what clients and URLs use. Legacy documents
// may only have the _id, in which case its hex form is surfaced as the id.
type Product struct {
	StoreID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID               string             `bson:"id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	FullDescription  string             `bson:"fullDescription" json:"fullDescription"`
	Price            float64            `bson:"price" json:"price"`
	SalePrice        float64            `bson:"salePrice,omitempty" json:"salePrice,omitempty"`
	IsOnSale         bool               `bson:"-" json:"isOnSale"`
	Category         string             `bson:"category" json:"category"`
	Images           []string           `bson:"images" json:"images"`
	ScentNotes       []string           `bson:"scentNotes" json:"scentNotes"`
	BurnTime         string             `bson:"burnTime" json:"burnTime"`
	Size             string             `bson:"size" json:"size"`
	InStock          bool               `bson:"inStock" json:"inStock"`
	SocialLinks      *SocialLinks       `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	IsBestSeller     bool               `bson:"isBestSeller,omitempty" json:"isBestSeller,omitempty"`
	IsNew            bool               `bson:"isNew,omitempty" json:"isNew,omitempty"`
}

// Normalize fills the derived fields after a read: the application id falls
// back to the store id, and isOnSale is recomputed rather than trusted from
// whatever was stored.
func (p *Product) Normalize() {
	if p.ID == "" && !p.StoreID.IsZero() {
		p.ID = p.StoreID.Hex()
	}
	p.IsOnSale = IsOnSale(p.Price, p.SalePrice)
}
