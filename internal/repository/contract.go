package repository

import (
	"context"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the CRUD surface shared by every entity collection. Lookups
// that match nothing return a nil entity and a nil error.
type Repository[T any] interface {
	FindAll(ctx context.Context) (data []T, err error)
	FindByID(ctx context.Context, id string) (data *T, err error)
	Insert(ctx context.Context, data T) (id primitive.ObjectID, err error)
	UpdateByID(ctx context.Context, id string, data T) (updated *T, err error)
	DeleteByID(ctx context.Context, id string) (deleted *T, err error)
}

type CategoryRepository interface {
	Repository[domain.Category]
}

type FeatureRepository interface {
	Repository[domain.Feature]
	AddWireframes(ctx context.Context, id string, wireframes []domain.FileWithID) (data *domain.Feature, err error)
	DeleteWireframe(ctx context.Context, wireframeID string) (data *domain.Feature, err error)
}

type TemplateRepository interface {
	Repository[domain.Template]
	UpdateFeatures(ctx context.Context, id string, features []primitive.ObjectID) (data *domain.Template, err error)
	UpdateSpecification(ctx context.Context, id string, spec domain.Specification) (data *domain.Template, err error)
	AggregateByID(ctx context.Context, id string) (data *domain.TemplateView, err error)
	AggregateAll(ctx context.Context) (data []domain.TemplateView, err error)
}

type PrototypeRepository interface {
	Repository[domain.Prototype]
	UpdateByTemplateID(ctx context.Context, templateID string, nodes []domain.PrototypeNode) (data *domain.Prototype, err error)
	AggregateByID(ctx context.Context, id string) (data *domain.PrototypeView, err error)
	AggregateByTemplateID(ctx context.Context, templateID string) (data *domain.PrototypeView, err error)
}

type ProjectRepository interface {
	Repository[domain.Project]
	Replace(ctx context.Context, id string, project domain.Project) (data *domain.Project, err error)
	AddFeatures(ctx context.Context, id string, features []primitive.ObjectID) (data *domain.Project, err error)
	RemoveFeature(ctx context.Context, id string, featureID primitive.ObjectID) (data *domain.Project, err error)
	UpdateState(ctx context.Context, id string, state domain.ProjectState) (data *domain.Project, err error)
	UpdateProposal(ctx context.Context, id string, proposal string) (data *domain.Project, err error)
	AttachDeliverable(ctx context.Context, id string, kind domain.Deliverable, file domain.File) (data *domain.Project, err error)
	AggregateByID(ctx context.Context, id string) (data *domain.ProjectView, err error)
	AggregateAll(ctx context.Context) (data []domain.ProjectView, err error)
	AggregateAllByClientID(ctx context.Context, clientID string) (data []domain.ProjectView, err error)
}

// Collections holds the collection name of every entity kind.
type Collections struct {
	Categories string
	Features   string
	Templates  string
	Prototypes string
	Projects   string
}
