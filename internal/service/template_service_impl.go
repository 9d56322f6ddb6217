package service

import (
	"context"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TemplateServiceImpl struct {
	repo    repository.TemplateRepository
	storage FileStorage
	events  events
	policy  referencePolicy
}

func CreateTemplateService(repo repository.TemplateRepository, storage FileStorage, publisher EventPublisher, strictReferences bool) TemplateService {
	return &TemplateServiceImpl{
		repo:    repo,
		storage: storage,
		events:  events{publisher: publisher},
		policy:  referencePolicy{strict: strictReferences},
	}
}

func (s *TemplateServiceImpl) GetTemplates(ctx context.Context) (data []dto.TemplateViewResponse, err error) {
	views, err := s.repo.AggregateAll(ctx)
	if err != nil {
		return nil, err
	}

	return dto.BuildTemplateViewResponses(views), nil
}

func (s *TemplateServiceImpl) GetTemplateByID(ctx context.Context, id string) (data dto.TemplateViewResponse, err error) {
	view, err := notFoundIfNil(s.repo.AggregateByID(ctx, id))
	if err != nil {
		return
	}

	if err = s.policy.check(view); err != nil {
		return
	}

	return dto.BuildTemplateViewResponse(*view), nil
}

func (s *TemplateServiceImpl) view(ctx context.Context, id string) (data dto.TemplateViewResponse, err error) {
	view, err := notFoundIfNil(s.repo.AggregateByID(ctx, id))
	if err != nil {
		return
	}

	return dto.BuildTemplateViewResponse(*view), nil
}

func (s *TemplateServiceImpl) AddTemplate(ctx context.Context, req dto.TemplateRequest, image *dto.Upload) (data dto.TemplateViewResponse, err error) {
	category, err := parseObjectID(req.Category)
	if err != nil {
		return
	}

	if err = requireUpload("image", image); err != nil {
		return
	}

	file, err := saveImage(ctx, s.storage, templatesDir, image)
	if err != nil {
		return
	}

	id, err := s.repo.Insert(ctx, domain.Template{
		Name:          req.Name,
		Description:   req.Description,
		Image:         file,
		Category:      category,
		Features:      []primitive.ObjectID{},
		Specification: &domain.Specification{},
	})
	if err != nil {
		return
	}

	data, err = s.view(ctx, id.Hex())
	if err != nil {
		return
	}

	s.events.emit(ctx, "template_created", data.ID, data)

	return data, nil
}

// UpdateTemplate changes the descriptive fields only. The feature set and
// the specification have their own operations.
func (s *TemplateServiceImpl) UpdateTemplate(ctx context.Context, req dto.TemplateUpdateRequest, image *dto.Upload) (data dto.TemplateViewResponse, err error) {
	if _, err = parseObjectID(req.ID); err != nil {
		return
	}

	var category primitive.ObjectID
	if req.Category != "" {
		if category, err = parseObjectID(req.Category); err != nil {
			return
		}
	}

	file, err := saveImage(ctx, s.storage, templatesDir, image)
	if err != nil {
		return
	}

	if _, err = notFoundIfNil(s.repo.UpdateByID(ctx, req.ID, domain.Template{
		Name:        req.Name,
		Description: req.Description,
		Image:       file,
		Category:    category,
	})); err != nil {
		return
	}

	return s.afterWrite(ctx, "template_updated", req.ID)
}

func (s *TemplateServiceImpl) DeleteTemplate(ctx context.Context, id string) (data dto.TemplateResponse, err error) {
	template, err := notFoundIfNil(s.repo.DeleteByID(ctx, id))
	if err != nil {
		return
	}

	data = dto.BuildTemplateResponse(*template)
	s.events.emit(ctx, "template_deleted", data.ID, data)

	return data, nil
}

func (s *TemplateServiceImpl) UpdateTemplateFeatures(ctx context.Context, req dto.FeatureSetRequest) (data dto.TemplateViewResponse, err error) {
	if _, err = parseObjectID(req.ID); err != nil {
		return
	}

	features, err := parseObjectIDs(req.FeaturesID)
	if err != nil {
		return
	}

	if _, err = notFoundIfNil(s.repo.UpdateFeatures(ctx, req.ID, features)); err != nil {
		return
	}

	return s.afterWrite(ctx, "template_features_updated", req.ID)
}

func (s *TemplateServiceImpl) UpdateTemplateSpecification(ctx context.Context, req dto.SpecificationRequest) (data dto.TemplateViewResponse, err error) {
	if _, err = parseObjectID(req.ID); err != nil {
		return
	}

	spec := domain.Specification{
		Introduction: domain.Introduction{
			Purpose:             req.Purpose,
			DocumentConventions: req.DocumentConventions,
			IntendedAudience:    req.IntendedAudience,
			ProjectScope:        req.ProjectScope,
		},
		OverallDescription: domain.OverallDescription{
			Perspective:                     req.Perspective,
			UserCharacteristics:             req.UserCharacteristics,
			OperatingEnvironment:            req.OperatingEnvironment,
			DesignImplementationConstraints: req.DesignImplementationConstraints,
			UserDocumentation:               req.UserDocumentation,
			AssumptionsDependencies:         req.AssumptionsDependencies,
		},
		NonFunctionalRequirements: domain.NonFunctionalRequirements{
			PerformanceRequirements:   req.PerformanceRequirements,
			SafetyRequirements:        req.SafetyRequirements,
			SecurityRequirements:      req.SecurityRequirements,
			SoftwareQualityAttributes: req.SoftwareQualityAttributes,
		},
		OtherRequirements: req.OtherRequirements,
		Glossary:          req.Glossary,
		AnalysisModels:    req.AnalysisModels,
		IssuesList:        req.IssuesList,
	}

	if _, err = notFoundIfNil(s.repo.UpdateSpecification(ctx, req.ID, spec)); err != nil {
		return
	}

	return s.afterWrite(ctx, "template_specification_updated", req.ID)
}

// afterWrite reads the merged view back and announces it. The read is not
// atomic with the write, so a concurrent delete surfaces as not found.
func (s *TemplateServiceImpl) afterWrite(ctx context.Context, eventType string, id string) (data dto.TemplateViewResponse, err error) {
	data, err = s.view(ctx, id)
	if err != nil {
		return
	}

	s.events.emit(ctx, eventType, data.ID, data)

	return data, nil
}
