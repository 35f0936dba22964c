// repositories/document_store.go
package repositories

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/snapshare/snapshare_backend/apperrors"
)

// SearchClause matches documents where any of Fields contains Text as a
// case-insensitive substring.
type SearchClause struct {
	Fields []string
	Text   string
}

// Query describes a document lookup: equality filters, an optional
// substring search, an ordering field and a result ceiling (0 = no limit).
type Query struct {
	Equals    map[string]interface{}
	Search    *SearchClause
	SortField string
	SortDesc  bool
	Limit     int64
}

// DocumentStore is the generic gateway over the three document collections.
// Services depend on this interface, never on the driver directly.
type DocumentStore interface {
	// Create inserts a fresh document and fails if its id already exists.
	Create(ctx context.Context, collection string, doc interface{}) error
	// Upsert inserts or replaces the document with the given id.
	Upsert(ctx context.Context, collection, id string, doc interface{}) error
	// Patch updates only the named fields of an existing document.
	Patch(ctx context.Context, collection, id string, fields map[string]interface{}) error
	// Find decodes all matching documents into results (a pointer to a
	// slice). No matches yields an empty slice, not an error.
	Find(ctx context.Context, collection string, q Query, results interface{}) error
}

// MongoDocumentStore implements DocumentStore on top of a Mongo database
type MongoDocumentStore struct {
	db *mongo.Database
}

func NewMongoDocumentStore(client *mongo.Client, dbName string) *MongoDocumentStore {
	return &MongoDocumentStore{db: client.Database(dbName)}
}

func (s *MongoDocumentStore) Create(ctx context.Context, collection string, doc interface{}) error {
	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return apperrors.NewStorageError("create "+collection, err)
	}
	return nil
}

func (s *MongoDocumentStore) Upsert(ctx context.Context, collection, id string, doc interface{}) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		return apperrors.NewStorageError("upsert "+collection, err)
	}
	return nil
}

func (s *MongoDocumentStore) Patch(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return apperrors.NewStorageError("patch "+collection, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NewStorageError("patch "+collection, apperrors.ErrNotFound)
	}
	return nil
}

func (s *MongoDocumentStore) Find(ctx context.Context, collection string, q Query, results interface{}) error {
	filter := bson.M{}
	for field, value := range q.Equals {
		filter[field] = value
	}
	if q.Search != nil && q.Search.Text != "" {
		needle := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search.Text), Options: "i"}
		or := make([]bson.M, 0, len(q.Search.Fields))
		for _, field := range q.Search.Fields {
			or = append(or, bson.M{field: needle})
		}
		filter["$or"] = or
	}

	findOptions := options.Find()
	if q.SortField != "" {
		order := 1
		if q.SortDesc {
			order = -1
		}
		findOptions.SetSort(bson.D{{Key: q.SortField, Value: order}})
	}
	if q.Limit > 0 {
		findOptions.SetLimit(q.Limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		return apperrors.NewStorageError("query "+collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return apperrors.NewStorageError("decode "+collection, err)
	}
	return nil
}
