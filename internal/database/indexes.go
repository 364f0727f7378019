package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("products").Indexes()

	idIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}},
		Options: options.Index().
			SetName("id_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"id": bson.M{
					"$exists": true,
				},
			}),
	}

	log.Println("EnsureProductIndexes: creating id_unique index")
	_, err := indexes.CreateOne(ctx, idIndex)
	if err != nil {
		log.Println("EnsureProductIndexes: id index error:", err)
		return err
	}
	log.Println("EnsureProductIndexes: id_unique index created")
	return nil
}

func EnsureHeroIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("heroSections").Indexes()

	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "isActive", Value: 1}},
			Options: options.Index().SetName("isActive_index"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("createdAt_index"),
		},
		{
			Keys: bson.D{{Key: "id", Value: 1}},
			Options: options.Index().
				SetName("id_unique").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"id": bson.M{
						"$exists": true,
					},
				}),
		},
	}

	log.Println("EnsureHeroIndexes: creating heroSections indexes")
	_, err := indexes.CreateMany(ctx, models)
	if err != nil {
		log.Println("EnsureHeroIndexes: index error:", err)
		return err
	}
	log.Println("EnsureHeroIndexes: heroSections indexes created")
	return nil
}
