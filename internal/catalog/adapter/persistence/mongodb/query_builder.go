package mongodb

import (
	"movie-rental/internal/catalog/domain/model"
	"movie-rental/internal/catalog/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildFilter translates a catalog query into a Mongo filter. The parentID
// clause is always present so child records stay invisible outside their
// owner's scope.
func buildFilter(ref repository.CollectionRef, query model.Query) bson.M {
	filter := bson.M{"parentID": ref.ParentID}
	for _, f := range query.Filters {
		filter["fields."+f.Field] = f.Value
	}
	return filter
}

// buildFindOptions translates ordering and pagination into find options.
func buildFindOptions(query model.Query) *options.FindOptions {
	opts := options.Find()
	if query.Limit > 0 {
		opts.SetLimit(int64(query.Limit))
	}
	if query.Offset > 0 {
		opts.SetSkip(int64(query.Offset))
	}
	if len(query.Orders) > 0 {
		sort := bson.D{}
		for _, o := range query.Orders {
			order := 1
			if o.Direction == model.Descending {
				order = -1
			}
			sort = append(sort, bson.E{Key: "fields." + o.Field, Value: order})
		}
		opts.SetSort(sort)
	}
	return opts
}
