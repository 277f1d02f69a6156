package mongodb

import (
	"context"
	"fmt"
	"time"

	"movie-rental/internal/catalog/domain/model"
	"movie-rental/internal/catalog/domain/repository"
	apperrors "movie-rental/internal/shared/errors"
	"movie-rental/internal/shared/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDocumentStore implements repository.DocumentStore on MongoDB.
// Each catalog collection maps to a Mongo collection of the same name; child
// records carry their owner's ID in the parentID envelope field, so ownership
// scoping is part of every filter rather than of the collection layout.
type MongoDocumentStore struct {
	db  *mongo.Database
	log logger.Logger
}

// NewMongoDocumentStore creates a new MongoDocumentStore.
func NewMongoDocumentStore(db *mongo.Database, log logger.Logger) *MongoDocumentStore {
	return &MongoDocumentStore{
		db:  db,
		log: log.WithComponent("mongodb_store"),
	}
}

// mongoDocument is the persisted envelope around a record's fields.
type mongoDocument struct {
	DocumentID string                 `bson:"documentID"`
	ParentID   string                 `bson:"parentID"`
	Fields     map[string]interface{} `bson:"fields"`
	CreateTime time.Time              `bson:"createTime"`
	UpdateTime time.Time              `bson:"updateTime"`
}

func (d *mongoDocument) toModel() *model.Document {
	return &model.Document{
		DocumentID: d.DocumentID,
		ParentID:   d.ParentID,
		Fields:     d.Fields,
		CreateTime: d.CreateTime,
		UpdateTime: d.UpdateTime,
	}
}

// Add appends a new document and returns its store-assigned ID.
func (s *MongoDocumentStore) Add(ctx context.Context, ref repository.CollectionRef, fields map[string]interface{}) (string, error) {
	now := time.Now().UTC()
	doc := mongoDocument{
		DocumentID: uuid.NewString(),
		ParentID:   ref.ParentID,
		Fields:     fields,
		CreateTime: now,
		UpdateTime: now,
	}

	if _, err := s.collection(ref).InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to insert document into %s: %w", ref.Name, err)
	}

	s.log.Debugf("document %s added to %s", doc.DocumentID, ref.Name)
	return doc.DocumentID, nil
}

// Get fetches a single document by ID within the ref's scope.
func (s *MongoDocumentStore) Get(ctx context.Context, ref repository.CollectionRef, id string) (*model.Document, error) {
	var doc mongoDocument
	err := s.collection(ref).FindOne(ctx, s.idFilter(ref, id)).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s from %s: %w", id, ref.Name, err)
	}
	return doc.toModel(), nil
}

// Update sets the given fields on a document. Unmatched IDs are not
// reported, mirroring the delete semantics.
func (s *MongoDocumentStore) Update(ctx context.Context, ref repository.CollectionRef, id string, fields map[string]interface{}) error {
	set := bson.M{"updateTime": time.Now().UTC()}
	for name, value := range fields {
		set["fields."+name] = value
	}

	result, err := s.collection(ref).UpdateOne(ctx, s.idFilter(ref, id), bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update document %s in %s: %w", id, ref.Name, err)
	}
	if result.MatchedCount == 0 {
		s.log.Warnf("update matched no document %s in %s", id, ref.Name)
	}
	return nil
}

// Delete removes a document by ID. Deleting an ID that never existed is not
// an error.
func (s *MongoDocumentStore) Delete(ctx context.Context, ref repository.CollectionRef, id string) error {
	if _, err := s.collection(ref).DeleteOne(ctx, s.idFilter(ref, id)); err != nil {
		return fmt.Errorf("failed to delete document %s from %s: %w", id, ref.Name, err)
	}
	return nil
}

// Increment atomically adds delta to a numeric field. The single $inc write
// keeps concurrent increments from losing updates.
func (s *MongoDocumentStore) Increment(ctx context.Context, ref repository.CollectionRef, id, field string, delta int64) error {
	update := bson.M{
		"$inc": bson.M{"fields." + field: delta},
		"$set": bson.M{"updateTime": time.Now().UTC()},
	}

	result, err := s.collection(ref).UpdateOne(ctx, s.idFilter(ref, id), update)
	if err != nil {
		return fmt.Errorf("failed to increment %s on document %s: %w", field, id, err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}

// Query executes a filtered, ordered, paginated read over the ref's scope.
func (s *MongoDocumentStore) Query(ctx context.Context, ref repository.CollectionRef, query model.Query) ([]*model.Document, error) {
	filter := buildFilter(ref, query)
	opts := buildFindOptions(query)
	s.log.Debugf("querying %s: filter=%v opts=%+v", ref.Name, filter, query)

	cur, err := s.collection(ref).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", ref.Name, err)
	}
	defer cur.Close(ctx)

	var docs []*model.Document
	for cur.Next(ctx) {
		var doc mongoDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode document from %s: %w", ref.Name, err)
		}
		docs = append(docs, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor error querying %s: %w", ref.Name, err)
	}
	return docs, nil
}

// Count returns the number of documents matching the query's filters,
// ignoring its pagination window.
func (s *MongoDocumentStore) Count(ctx context.Context, ref repository.CollectionRef, query model.Query) (int64, error) {
	total, err := s.collection(ref).CountDocuments(ctx, buildFilter(ref, query))
	if err != nil {
		return 0, fmt.Errorf("failed to count documents in %s: %w", ref.Name, err)
	}
	return total, nil
}

func (s *MongoDocumentStore) collection(ref repository.CollectionRef) *mongo.Collection {
	return s.db.Collection(ref.Name)
}

func (s *MongoDocumentStore) idFilter(ref repository.CollectionRef, id string) bson.M {
	return bson.M{"documentID": id, "parentID": ref.ParentID}
}
