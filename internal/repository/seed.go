package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"candleshop/internal/models"
)

// Seed wipes both collections and loads the given defaults. Used by the reset
// endpoint to bring an empty or broken store back to a known-good catalog.
func Seed(ctx context.Context, db *mongo.Database, products []models.Product, hero models.HeroSection) (int, error) {
	productsCol := db.Collection("products")
	heroesCol := db.Collection("heroSections")

	if _, err := productsCol.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, err
	}
	if _, err := heroesCol.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, err
	}

	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}
	res, err := productsCol.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}

	if _, err := heroesCol.InsertOne(ctx, hero); err != nil {
		return len(res.InsertedIDs), err
	}

	return len(res.InsertedIDs), nil
}
