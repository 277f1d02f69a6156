package repository

import (
	"context"

	"movie-rental/internal/catalog/domain/model"
)

// CollectionRef addresses a top-level collection or a child collection owned
// by a single parent document. Every read and write through the store is
// scoped to the ref, so a child record is never visible outside its owner.
type CollectionRef struct {
	Name     string
	ParentID string
}

// Collection returns a ref to a top-level collection.
func Collection(name string) CollectionRef {
	return CollectionRef{Name: name}
}

// Subcollection returns a ref to a child collection under parentID.
func Subcollection(parentID, name string) CollectionRef {
	return CollectionRef{Name: name, ParentID: parentID}
}

// DocumentStore is the capability set the catalog consumes from the
// underlying document store. Get and Increment report a missing document via
// errors.ErrDocumentNotFound; Delete is unconditional and does not report
// whether the document existed.
type DocumentStore interface {
	Add(ctx context.Context, ref CollectionRef, fields map[string]interface{}) (string, error)
	Get(ctx context.Context, ref CollectionRef, id string) (*model.Document, error)
	Update(ctx context.Context, ref CollectionRef, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, ref CollectionRef, id string) error
	Increment(ctx context.Context, ref CollectionRef, id, field string, delta int64) error
	Query(ctx context.Context, ref CollectionRef, query model.Query) ([]*model.Document, error)
	Count(ctx context.Context, ref CollectionRef, query model.Query) (int64, error)
}
