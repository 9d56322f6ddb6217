package repository

import (
	"context"
	"fmt"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBProjectRepositoryImpl struct {
	*MongoDBRepository[domain.Project]
	collections Collections
}

func CreateNewProjectRepository(db *mongo.Database, c Collections) ProjectRepository {
	return &MongoDBProjectRepositoryImpl{
		MongoDBRepository: CreateNewMongoDBRepository[domain.Project](db, c.Projects),
		collections:       c,
	}
}

// Replace overwrites every mutable field of the project, clearing the ones
// left empty. The state is only written when project names one.
func (r *MongoDBProjectRepositoryImpl) Replace(ctx context.Context, id string, project domain.Project) (data *domain.Project, err error) {
	platforms := project.Platforms
	if platforms == nil {
		platforms = []string{}
	}
	features := project.Features
	if features == nil {
		features = []primitive.ObjectID{}
	}
	var totalPrice float64
	if project.TotalPrice != nil {
		totalPrice = *project.TotalPrice
	}

	fields := bson.D{
		{Key: "client_id", Value: project.ClientID},
		{Key: "name", Value: project.Name},
		{Key: "platforms", Value: platforms},
		{Key: "template", Value: project.Template},
		{Key: "features", Value: features},
		{Key: "proposal", Value: project.Proposal},
		{Key: "deliverable", Value: project.Deliverable},
		{Key: "total_price", Value: totalPrice},
	}
	if project.State != "" {
		fields = append(fields, bson.E{Key: "state", Value: project.State})
	}

	return r.updateByID(ctx, "ReplaceProject", id, bson.D{{Key: "$set", Value: fields}})
}

func (r *MongoDBProjectRepositoryImpl) AddFeatures(ctx context.Context, id string, features []primitive.ObjectID) (data *domain.Project, err error) {
	update := bson.D{{Key: "$addToSet", Value: bson.D{
		{Key: "features", Value: bson.D{{Key: "$each", Value: features}}},
	}}}

	return r.updateByID(ctx, "AddProjectFeatures", id, update)
}

func (r *MongoDBProjectRepositoryImpl) RemoveFeature(ctx context.Context, id string, featureID primitive.ObjectID) (data *domain.Project, err error) {
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "features", Value: featureID}}}}

	return r.updateByID(ctx, "RemoveProjectFeature", id, update)
}

func (r *MongoDBProjectRepositoryImpl) UpdateState(ctx context.Context, id string, state domain.ProjectState) (data *domain.Project, err error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "state", Value: state}}}}

	return r.updateByID(ctx, "UpdateProjectState", id, update)
}

func (r *MongoDBProjectRepositoryImpl) UpdateProposal(ctx context.Context, id string, proposal string) (data *domain.Project, err error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "proposal", Value: proposal}}}}

	return r.updateByID(ctx, "UpdateProjectProposal", id, update)
}

func (r *MongoDBProjectRepositoryImpl) AttachDeliverable(ctx context.Context, id string, kind domain.Deliverable, file domain.File) (data *domain.Project, err error) {
	switch kind {
	case domain.DeliverableMVP, domain.DeliverableDesign, domain.DeliverableFullBuild:
	default:
		return nil, fmt.Errorf("%w: unknown deliverable %q", errs.ErrClient, kind)
	}

	update := bson.D{{Key: "$set", Value: bson.D{{Key: string(kind), Value: file}}}}
	return r.updateByID(ctx, "AttachProjectDeliverable", id, update)
}

func (r *MongoDBProjectRepositoryImpl) AggregateByID(ctx context.Context, id string) (data *domain.ProjectView, err error) {
	objectID, err := parseObjectID(ctx, "AggregateProjectByID", id)
	if err != nil {
		return nil, err
	}

	pipeline := projectViewPipeline(bson.D{{Key: "_id", Value: objectID}}, r.collections)
	return aggregateOne[domain.ProjectView](ctx, r.coll(), "AggregateProjectByID", pipeline)
}

func (r *MongoDBProjectRepositoryImpl) AggregateAll(ctx context.Context) (data []domain.ProjectView, err error) {
	pipeline := projectViewPipeline(bson.D{}, r.collections)
	return aggregate[domain.ProjectView](ctx, r.coll(), "AggregateProjects", pipeline)
}

func (r *MongoDBProjectRepositoryImpl) AggregateAllByClientID(ctx context.Context, clientID string) (data []domain.ProjectView, err error) {
	objectID, err := parseObjectID(ctx, "AggregateProjectsByClientID", clientID)
	if err != nil {
		return nil, err
	}

	pipeline := projectViewPipeline(bson.D{{Key: "client_id", Value: objectID}}, r.collections)
	return aggregate[domain.ProjectView](ctx, r.coll(), "AggregateProjectsByClientID", pipeline)
}
