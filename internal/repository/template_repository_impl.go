package repository

import (
	"context"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBTemplateRepositoryImpl struct {
	*MongoDBRepository[domain.Template]
	collections Collections
}

func CreateNewTemplateRepository(db *mongo.Database, c Collections) TemplateRepository {
	return &MongoDBTemplateRepositoryImpl{
		MongoDBRepository: CreateNewMongoDBRepository[domain.Template](db, c.Templates),
		collections:       c,
	}
}

func (r *MongoDBTemplateRepositoryImpl) UpdateFeatures(ctx context.Context, id string, features []primitive.ObjectID) (data *domain.Template, err error) {
	if features == nil {
		features = []primitive.ObjectID{}
	}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "features", Value: features}}}}

	return r.updateByID(ctx, "UpdateFeatures", id, update)
}

func (r *MongoDBTemplateRepositoryImpl) UpdateSpecification(ctx context.Context, id string, spec domain.Specification) (data *domain.Template, err error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "specification", Value: spec}}}}

	return r.updateByID(ctx, "UpdateSpecification", id, update)
}

func (r *MongoDBTemplateRepositoryImpl) AggregateByID(ctx context.Context, id string) (data *domain.TemplateView, err error) {
	objectID, err := parseObjectID(ctx, "AggregateTemplateByID", id)
	if err != nil {
		return nil, err
	}

	pipeline := templateViewPipeline(bson.D{{Key: "_id", Value: objectID}}, r.collections)
	return aggregateOne[domain.TemplateView](ctx, r.coll(), "AggregateTemplateByID", pipeline)
}

func (r *MongoDBTemplateRepositoryImpl) AggregateAll(ctx context.Context) (data []domain.TemplateView, err error) {
	pipeline := templateViewPipeline(bson.D{}, r.collections)
	return aggregate[domain.TemplateView](ctx, r.coll(), "AggregateTemplates", pipeline)
}
