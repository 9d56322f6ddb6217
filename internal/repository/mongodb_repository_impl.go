package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBRepository implements Repository for one collection. Entity
// repositories embed it and add their own operations.
type MongoDBRepository[T any] struct {
	db         *mongo.Database
	collection string
}

func CreateNewMongoDBRepository[T any](db *mongo.Database, collection string) *MongoDBRepository[T] {
	return &MongoDBRepository[T]{db: db, collection: collection}
}

func (r *MongoDBRepository[T]) coll() *mongo.Collection {
	return r.db.Collection(r.collection)
}

func (r *MongoDBRepository[T]) FindAll(ctx context.Context) (data []T, err error) {
	cursor, err := r.coll().Find(ctx, bson.D{})
	if err != nil {
		return nil, storeError(ctx, "FindAll", err)
	}

	return decodeAll[T](ctx, cursor, "FindAll")
}

func (r *MongoDBRepository[T]) FindByID(ctx context.Context, id string) (data *T, err error) {
	objectID, err := parseObjectID(ctx, "FindByID", id)
	if err != nil {
		return nil, err
	}

	filter := bson.D{{Key: "_id", Value: objectID}}
	return decodeOne[T](ctx, r.coll().FindOne(ctx, filter), "FindByID")
}

func (r *MongoDBRepository[T]) Insert(ctx context.Context, data T) (id primitive.ObjectID, err error) {
	result, err := r.coll().InsertOne(ctx, data)
	if err != nil {
		return primitive.NilObjectID, storeError(ctx, "Insert", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, storeError(ctx, "Insert", fmt.Errorf("unexpected inserted id %v", result.InsertedID))
	}

	return id, nil
}

// UpdateByID sets every field the entity marshals except _id. Fields left
// empty are omitted by their bson tags and keep their stored value.
func (r *MongoDBRepository[T]) UpdateByID(ctx context.Context, id string, data T) (updated *T, err error) {
	objectID, err := parseObjectID(ctx, "UpdateByID", id)
	if err != nil {
		return nil, err
	}

	fields, err := setFields(data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateByID").Msg("")
		return nil, fmt.Errorf("%w: %v", errs.ErrClient, err)
	}

	filter := bson.D{{Key: "_id", Value: objectID}}
	if len(fields) == 0 {
		return decodeOne[T](ctx, r.coll().FindOne(ctx, filter), "UpdateByID")
	}

	return r.findOneAndUpdate(ctx, "UpdateByID", filter, bson.D{{Key: "$set", Value: fields}})
}

func (r *MongoDBRepository[T]) DeleteByID(ctx context.Context, id string) (deleted *T, err error) {
	objectID, err := parseObjectID(ctx, "DeleteByID", id)
	if err != nil {
		return nil, err
	}

	filter := bson.D{{Key: "_id", Value: objectID}}
	return decodeOne[T](ctx, r.coll().FindOneAndDelete(ctx, filter), "DeleteByID")
}

func (r *MongoDBRepository[T]) findOneAndUpdate(ctx context.Context, component string, filter, update bson.D, opts ...*options.FindOneAndUpdateOptions) (*T, error) {
	opts = append([]*options.FindOneAndUpdateOptions{options.FindOneAndUpdate().SetReturnDocument(options.After)}, opts...)
	return decodeOne[T](ctx, r.coll().FindOneAndUpdate(ctx, filter, update, opts...), component)
}

func (r *MongoDBRepository[T]) updateByID(ctx context.Context, component string, id string, update bson.D) (*T, error) {
	objectID, err := parseObjectID(ctx, component, id)
	if err != nil {
		return nil, err
	}

	return r.findOneAndUpdate(ctx, component, bson.D{{Key: "_id", Value: objectID}}, update)
}

func aggregate[V any](ctx context.Context, coll *mongo.Collection, component string, pipeline mongo.Pipeline) ([]V, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeError(ctx, component, err)
	}

	return decodeAll[V](ctx, cursor, component)
}

func aggregateOne[V any](ctx context.Context, coll *mongo.Collection, component string, pipeline mongo.Pipeline) (*V, error) {
	data, err := aggregate[V](ctx, coll, component, pipeline)
	if err != nil || len(data) == 0 {
		return nil, err
	}

	return &data[len(data)-1], nil
}

func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor, component string) ([]T, error) {
	defer cursor.Close(ctx)

	data := make([]T, 0)
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, decodeError(ctx, component, err)
		}
		data = append(data, item)
	}

	if err := cursor.Err(); err != nil {
		return nil, storeError(ctx, component, err)
	}

	return data, nil
}

func decodeOne[T any](ctx context.Context, result *mongo.SingleResult, component string) (*T, error) {
	raw, err := result.Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, storeError(ctx, component, err)
	}

	var data T
	if err := bson.Unmarshal(raw, &data); err != nil {
		return nil, decodeError(ctx, component, err)
	}

	return &data, nil
}

func setFields(data any) (bson.D, error) {
	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, err
	}

	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	fields := make(bson.D, 0, len(doc))
	for _, elem := range doc {
		if elem.Key == "_id" {
			continue
		}
		fields = append(fields, elem)
	}

	return fields, nil
}

func parseObjectID(ctx context.Context, component string, id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return primitive.NilObjectID, fmt.Errorf("%w: %q", errs.ErrInvalidID, id)
	}

	return objectID, nil
}

func storeError(ctx context.Context, component string, err error) error {
	log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
	return fmt.Errorf("%w: %v", errs.ErrStore, err)
}

func decodeError(ctx context.Context, component string, err error) error {
	log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
	return fmt.Errorf("%w: %v", errs.ErrDecode, err)
}
