package service

import (
	"context"
	"io"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
)

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, key string, data interface{}) error
}

type Notifier interface {
	NotifyProject(ctx context.Context, projectID string, projectName string, change string) error
}

type FileStorage interface {
	Save(ctx context.Context, dir string, filename string, r io.Reader) (domain.File, error)
	SaveImage(ctx context.Context, dir string, filename string, r io.Reader) (domain.File, error)
}

type CategoryService interface {
	GetCategories(ctx context.Context) (data []dto.CategoryResponse, err error)
	GetCategoryByID(ctx context.Context, id string) (data dto.CategoryResponse, err error)
	AddCategory(ctx context.Context, req dto.CategoryRequest, image *dto.Upload) (data dto.CategoryResponse, err error)
	UpdateCategory(ctx context.Context, req dto.CategoryUpdateRequest, image *dto.Upload) (data dto.CategoryResponse, err error)
	DeleteCategory(ctx context.Context, id string) (data dto.CategoryResponse, err error)
}

type FeatureService interface {
	GetFeatures(ctx context.Context) (data []dto.FeatureResponse, err error)
	GetFeatureByID(ctx context.Context, id string) (data dto.FeatureResponse, err error)
	AddFeature(ctx context.Context, req dto.FeatureRequest, image *dto.Upload, wireframes []dto.Upload) (data dto.FeatureResponse, err error)
	UpdateFeature(ctx context.Context, req dto.FeatureUpdateRequest, image *dto.Upload) (data dto.FeatureResponse, err error)
	DeleteFeature(ctx context.Context, id string) (data dto.FeatureResponse, err error)
	AddWireframes(ctx context.Context, id string, wireframes []dto.Upload) (data dto.FeatureResponse, err error)
	DeleteWireframe(ctx context.Context, wireframeID string) (data dto.FeatureResponse, err error)
}

type TemplateService interface {
	GetTemplates(ctx context.Context) (data []dto.TemplateViewResponse, err error)
	GetTemplateByID(ctx context.Context, id string) (data dto.TemplateViewResponse, err error)
	AddTemplate(ctx context.Context, req dto.TemplateRequest, image *dto.Upload) (data dto.TemplateViewResponse, err error)
	UpdateTemplate(ctx context.Context, req dto.TemplateUpdateRequest, image *dto.Upload) (data dto.TemplateViewResponse, err error)
	DeleteTemplate(ctx context.Context, id string) (data dto.TemplateResponse, err error)
	UpdateTemplateFeatures(ctx context.Context, req dto.FeatureSetRequest) (data dto.TemplateViewResponse, err error)
	UpdateTemplateSpecification(ctx context.Context, req dto.SpecificationRequest) (data dto.TemplateViewResponse, err error)
}

type PrototypeService interface {
	AddPrototype(ctx context.Context, req dto.PrototypeRequest) (data dto.PrototypeViewResponse, err error)
	GetPrototypeByTemplateID(ctx context.Context, templateID string) (data dto.PrototypeViewResponse, err error)
	UpdatePrototypeByTemplateID(ctx context.Context, req dto.PrototypeRequest) (data dto.PrototypeViewResponse, err error)
	DeletePrototype(ctx context.Context, id string) (data dto.PrototypeDeletedResponse, err error)
}

type ProjectService interface {
	GetProjects(ctx context.Context) (data []dto.ProjectViewResponse, err error)
	GetProjectByID(ctx context.Context, id string) (data dto.ProjectViewResponse, err error)
	GetProjectsByClientID(ctx context.Context, clientID string) (data []dto.ProjectViewResponse, err error)
	AddProject(ctx context.Context, req dto.ProjectRequest) (data dto.ProjectViewResponse, err error)
	UpdateProject(ctx context.Context, req dto.ProjectRequest) (data dto.ProjectViewResponse, err error)
	DeleteProject(ctx context.Context, id string) (data dto.ProjectResponse, err error)
	UpdateProjectState(ctx context.Context, req dto.ProjectStateRequest) (data dto.ProjectViewResponse, err error)
	AddProjectFeatures(ctx context.Context, req dto.FeatureSetRequest) (data dto.ProjectViewResponse, err error)
	RemoveProjectFeature(ctx context.Context, id string, featureID string) (data dto.ProjectViewResponse, err error)
	UpdateProjectProposal(ctx context.Context, req dto.ProjectProposalRequest) (data dto.ProjectViewResponse, err error)
	AttachProjectDeliverable(ctx context.Context, id string, kind domain.Deliverable, file *dto.Upload) (data dto.ProjectViewResponse, err error)
}
