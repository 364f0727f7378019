package repository

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIDFilterPlainStringMatchesApplicationIDOnly(t *testing.T) {
	got := idFilter("custom-1")
	want := bson.M{"id": "custom-1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("idFilter(custom-1) = %v, want %v", got, want)
	}
}

func TestIDFilterObjectIDProducesDisjunction(t *testing.T) {
	const hex = "507f1f77bcf86cd799439011"
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("test hex is not a valid object id: %v", err)
	}

	got := idFilter(hex)
	want := bson.M{"$or": []bson.M{
		{"id": hex},
		{"_id": oid},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("idFilter(%s) = %v, want %v", hex, got, want)
	}
}

func TestIDFilterRejectsNearMissHexAsObjectID(t *testing.T) {
	// 23 hex chars: not a valid ObjectID, must stay an exact id match.
	got := idFilter("507f1f77bcf86cd79943901")
	if _, hasOr := got["$or"]; hasOr {
		t.Fatalf("expected plain id filter, got %v", got)
	}
}

func TestValidationErrorMessages(t *testing.T) {
	err := required("id")
	if err.Error() != "id is required" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	err = invalid("category", `unknown category "Woodland"`)
	if err.Error() != `category: unknown category "Woodland"` {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestNotFoundWrappingSurvivesContext(t *testing.T) {
	err := fmt.Errorf("hero section %s: %w", "hero-1", ErrNotFound)
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("expected wrapped error to match ErrNotFound")
	}
}

func TestTransactionsUnsupportedClassification(t *testing.T) {
	if !transactionsUnsupported(mongo.CommandError{Code: 20, Message: "Transaction numbers are only allowed on a replica set member or mongos"}) {
		t.Fatal("expected IllegalOperation to read as unsupported")
	}
	if transactionsUnsupported(fmt.Errorf("hero section x: %w", ErrNotFound)) {
		t.Fatal("a NotFound from inside the transaction is not a topology problem")
	}
	if transactionsUnsupported(errors.New("network timeout")) {
		t.Fatal("unrelated errors must propagate")
	}
}
