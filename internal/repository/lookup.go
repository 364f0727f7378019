package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Records exist in two historical populations: some were created with a
// client-chosen id string, others had the store assign their identifier. A
// lookup therefore matches the application id field exactly, and when the
// given id also parses as a Mongo ObjectID it additionally matches on _id.
// At most one of the two predicates ever matches a given document.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"$or": []bson.M{
			{"id": id},
			{"_id": oid},
		}}
	}
	return bson.M{"id": id}
}
