package repository

import (
	"context"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBFeatureRepositoryImpl struct {
	*MongoDBRepository[domain.Feature]
}

func CreateNewFeatureRepository(db *mongo.Database, c Collections) FeatureRepository {
	return &MongoDBFeatureRepositoryImpl{CreateNewMongoDBRepository[domain.Feature](db, c.Features)}
}

func (r *MongoDBFeatureRepositoryImpl) AddWireframes(ctx context.Context, id string, wireframes []domain.FileWithID) (data *domain.Feature, err error) {
	update := bson.D{{Key: "$push", Value: bson.D{
		{Key: "wireframes", Value: bson.D{{Key: "$each", Value: wireframes}}},
	}}}

	return r.updateByID(ctx, "AddWireframes", id, update)
}

// DeleteWireframe removes the wireframe from whichever feature holds it and
// returns that feature.
func (r *MongoDBFeatureRepositoryImpl) DeleteWireframe(ctx context.Context, wireframeID string) (data *domain.Feature, err error) {
	objectID, err := parseObjectID(ctx, "DeleteWireframe", wireframeID)
	if err != nil {
		return nil, err
	}

	filter := bson.D{{Key: "wireframes._id", Value: objectID}}
	update := bson.D{{Key: "$pull", Value: bson.D{
		{Key: "wireframes", Value: bson.D{{Key: "_id", Value: objectID}}},
	}}}

	return r.findOneAndUpdate(ctx, "DeleteWireframe", filter, update)
}
