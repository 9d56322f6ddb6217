package repository

import (
	"context"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBPrototypeRepositoryImpl struct {
	*MongoDBRepository[domain.Prototype]
	collections Collections
}

func CreateNewPrototypeRepository(db *mongo.Database, c Collections) PrototypeRepository {
	return &MongoDBPrototypeRepositoryImpl{
		MongoDBRepository: CreateNewMongoDBRepository[domain.Prototype](db, c.Prototypes),
		collections:       c,
	}
}

// UpdateByTemplateID replaces the nodes of the newest prototype owned by the
// template.
func (r *MongoDBPrototypeRepositoryImpl) UpdateByTemplateID(ctx context.Context, templateID string, nodes []domain.PrototypeNode) (data *domain.Prototype, err error) {
	objectID, err := parseObjectID(ctx, "UpdatePrototypeByTemplateID", templateID)
	if err != nil {
		return nil, err
	}

	filter := bson.D{{Key: "template_id", Value: objectID}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "prototype", Value: nodes}}}}
	opts := options.FindOneAndUpdate().SetSort(bson.D{{Key: "_id", Value: -1}})

	return r.findOneAndUpdate(ctx, "UpdatePrototypeByTemplateID", filter, update, opts)
}

func (r *MongoDBPrototypeRepositoryImpl) AggregateByID(ctx context.Context, id string) (data *domain.PrototypeView, err error) {
	objectID, err := parseObjectID(ctx, "AggregatePrototypeByID", id)
	if err != nil {
		return nil, err
	}

	pipeline := prototypeViewPipeline(bson.D{{Key: "_id", Value: objectID}}, r.collections)
	return aggregateOne[domain.PrototypeView](ctx, r.coll(), "AggregatePrototypeByID", pipeline)
}

func (r *MongoDBPrototypeRepositoryImpl) AggregateByTemplateID(ctx context.Context, templateID string) (data *domain.PrototypeView, err error) {
	objectID, err := parseObjectID(ctx, "AggregatePrototypeByTemplateID", templateID)
	if err != nil {
		return nil, err
	}

	pipeline := prototypeViewPipeline(bson.D{{Key: "template_id", Value: objectID}}, r.collections)
	return aggregateOne[domain.PrototypeView](ctx, r.coll(), "AggregatePrototypeByTemplateID", pipeline)
}
