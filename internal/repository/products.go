package repository

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"candleshop/internal/models"
)

// Products is the typed CRUD layer over the products collection. It is a
// stateless translation layer: the collection owns all authoritative state.
type Products struct {
	col              *mongo.Collection
	strictCategories bool
}

func NewProducts(db *mongo.Database, strictCategories bool) *Products {
	return &Products{
		col:              db.Collection("products"),
		strictCategories: strictCategories,
	}
}

// List returns every product in the store's natural order.
func (r *Products) List(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		p.Normalize()
		products = append(products, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

// Create persists a new product. A missing application id gets a freshly
// generated one; the create response always carries the id clients should use
// from then on.
func (r *Products) Create(ctx context.Context, p models.Product) (models.Product, error) {
	if err := r.validate(&p); err != nil {
		return models.Product{}, err
	}

	if strings.TrimSpace(p.ID) == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	p.StoreID = primitive.NilObjectID

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return models.Product{}, err
	}

	p.StoreID = res.InsertedID.(primitive.ObjectID)
	p.Normalize()
	return p, nil
}

// Update replaces every mutable field of the product matched by id. The id
// itself is immutable after creation and is never part of the replacement
// set.
func (r *Products) Update(ctx context.Context, id string, p models.Product) (models.Product, error) {
	if strings.TrimSpace(id) == "" {
		return models.Product{}, required("id")
	}
	if err := r.validate(&p); err != nil {
		return models.Product{}, err
	}

	set := bson.M{
		"name":             p.Name,
		"shortDescription": p.ShortDescription,
		"fullDescription":  p.FullDescription,
		"price":            p.Price,
		"category":         p.Category,
		"images":           p.Images,
		"scentNotes":       p.ScentNotes,
		"burnTime":         p.BurnTime,
		"size":             p.Size,
		"inStock":          p.InStock,
		"isBestSeller":     p.IsBestSeller,
		"isNew":            p.IsNew,
	}
	unset := bson.M{}
	if p.SalePrice > 0 {
		set["salePrice"] = p.SalePrice
	} else {
		unset["salePrice"] = ""
	}
	if p.SocialLinks != nil {
		set["socialLinks"] = p.SocialLinks
	} else {
		unset["socialLinks"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	result, err := r.col.UpdateOne(ctx, idFilter(id), update)
	if err != nil {
		return models.Product{}, err
	}
	if result.MatchedCount == 0 {
		return models.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	var updated models.Product
	if err := r.col.FindOne(ctx, idFilter(id)).Decode(&updated); err != nil {
		return models.Product{}, err
	}
	updated.Normalize()
	return updated, nil
}

// Delete removes the product matched by id. Products carry no active-flag
// constraint, so deletion is unconditional.
func (r *Products) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return required("id")
	}

	result, err := r.col.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *Products) validate(p *models.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return required("name")
	}
	if err := models.ValidatePricing(p.Price, p.SalePrice); err != nil {
		return invalid("price", err.Error())
	}
	if r.strictCategories && !models.IsKnownCategory(p.Category) {
		return invalid("category", fmt.Sprintf("unknown category %q", p.Category))
	}
	return nil
}
