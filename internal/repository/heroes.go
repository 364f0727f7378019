package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"candleshop/internal/models"
)

// Heroes manages the heroSections collection and enforces the single-active
// invariant: at most one section carries isActive=true, and the active
// section cannot be deleted.
type Heroes struct {
	col *mongo.Collection
}

func NewHeroes(db *mongo.Database) *Heroes {
	return &Heroes{col: db.Collection("heroSections")}
}

// List returns every hero section ordered by creation time, oldest first.
func (r *Heroes) List(ctx context.Context) ([]models.HeroSection, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sections := make([]models.HeroSection, 0)
	for cursor.Next(ctx) {
		var h models.HeroSection
		if err := cursor.Decode(&h); err != nil {
			return nil, err
		}
		h.Normalize()
		sections = append(sections, h)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return sections, nil
}

// Create persists a new hero section. New sections always start inactive;
// activation is a separate, explicit operation.
func (r *Heroes) Create(ctx context.Context, h models.HeroSection) (models.HeroSection, error) {
	h.Name = strings.TrimSpace(h.Name)
	if h.Name == "" {
		return models.HeroSection{}, required("name")
	}

	if strings.TrimSpace(h.ID) == "" {
		h.ID = primitive.NewObjectID().Hex()
	}
	if h.CreatedAt == 0 {
		h.CreatedAt = time.Now().UnixMilli()
	}
	h.IsActive = false
	h.StoreID = primitive.NilObjectID

	res, err := r.col.InsertOne(ctx, h)
	if err != nil {
		return models.HeroSection{}, err
	}

	h.StoreID = res.InsertedID.(primitive.ObjectID)
	h.Normalize()
	return h, nil
}

// Update replaces the section's name and display content. The id, creation
// timestamp and active flag are not part of the replacement set: the first
// two are immutable, the flag only changes through Activate.
func (r *Heroes) Update(ctx context.Context, id string, h models.HeroSection) (models.HeroSection, error) {
	if strings.TrimSpace(id) == "" {
		return models.HeroSection{}, required("id")
	}
	h.Name = strings.TrimSpace(h.Name)
	if h.Name == "" {
		return models.HeroSection{}, required("name")
	}

	set := bson.M{
		"name":               h.Name,
		"badge":              h.Badge,
		"titleLine1":         h.TitleLine1,
		"titleAccent":        h.TitleAccent,
		"description":        h.Description,
		"backgroundImageUrl": h.BackgroundImageURL,
		"primaryCtaText":     h.PrimaryCtaText,
		"primaryCtaLink":     h.PrimaryCtaLink,
		"secondaryCtaText":   h.SecondaryCtaText,
		"secondaryCtaLink":   h.SecondaryCtaLink,
	}

	result, err := r.col.UpdateOne(ctx, idFilter(id), bson.M{"$set": set})
	if err != nil {
		return models.HeroSection{}, err
	}
	if result.MatchedCount == 0 {
		return models.HeroSection{}, fmt.Errorf("hero section %s: %w", id, ErrNotFound)
	}

	var updated models.HeroSection
	if err := r.col.FindOne(ctx, idFilter(id)).Decode(&updated); err != nil {
		return models.HeroSection{}, err
	}
	updated.Normalize()
	return updated, nil
}

// Delete removes the section matched by id unless it is the active one.
func (r *Heroes) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return required("id")
	}

	var existing models.HeroSection
	err := r.col.FindOne(ctx, idFilter(id)).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return fmt.Errorf("hero section %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return err
	}
	if existing.IsActive {
		return ErrActiveHero
	}

	result, err := r.col.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("hero section %s: %w", id, ErrNotFound)
	}
	return nil
}

// Activate makes the section matched by id the single active one and returns
// the full post-activation listing so callers can render admin state without
// a second round trip. The deactivate-all/activate-one pair runs inside a
// transaction when the deployment supports one, so a failed match rolls back
// cleanly; on standalone topologies it falls back to the plain two-step
// sequence, where a failed match leaves no section active until the next
// successful activation.
func (r *Heroes) Activate(ctx context.Context, id string) ([]models.HeroSection, error) {
	if strings.TrimSpace(id) == "" {
		return nil, required("id")
	}

	flip := func(ctx context.Context) error {
		if _, err := r.col.UpdateMany(ctx, bson.M{}, bson.M{"$set": bson.M{"isActive": false}}); err != nil {
			return err
		}
		result, err := r.col.UpdateOne(ctx, idFilter(id), bson.M{"$set": bson.M{"isActive": true}})
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return fmt.Errorf("hero section %s: %w", id, ErrNotFound)
		}
		return nil
	}

	if err := r.runFlip(ctx, flip); err != nil {
		return nil, err
	}
	return r.List(ctx)
}

func (r *Heroes) runFlip(ctx context.Context, flip func(context.Context) error) error {
	sess, err := r.col.Database().Client().StartSession()
	if err != nil {
		return flip(ctx)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, flip(sc)
	})
	if err == nil {
		return nil
	}
	if transactionsUnsupported(err) {
		return flip(ctx)
	}
	return err
}

// Standalone servers reject transactions with IllegalOperation; that is the
// signal to run the two-step flip without one.
func transactionsUnsupported(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return false
	}
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 20 || strings.Contains(cmdErr.Message, "Transaction numbers")
	}
	return strings.Contains(err.Error(), "Transaction numbers")
}
