package service

import (
	"context"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/repository"
)

type FeatureServiceImpl struct {
	repo    repository.FeatureRepository
	storage FileStorage
	events  events
}

func CreateFeatureService(repo repository.FeatureRepository, storage FileStorage, publisher EventPublisher) FeatureService {
	return &FeatureServiceImpl{repo: repo, storage: storage, events: events{publisher: publisher}}
}

func (s *FeatureServiceImpl) GetFeatures(ctx context.Context) (data []dto.FeatureResponse, err error) {
	features, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return dto.BuildFeatureResponses(features), nil
}

func (s *FeatureServiceImpl) GetFeatureByID(ctx context.Context, id string) (data dto.FeatureResponse, err error) {
	feature, err := notFoundIfNil(s.repo.FindByID(ctx, id))
	if err != nil {
		return
	}

	return dto.BuildFeatureResponse(*feature), nil
}

func (s *FeatureServiceImpl) AddFeature(ctx context.Context, req dto.FeatureRequest, image *dto.Upload, wireframes []dto.Upload) (data dto.FeatureResponse, err error) {
	price, err := parsePrice("price", req.Price)
	if err != nil {
		return
	}

	if err = requireUpload("image", image); err != nil {
		return
	}

	file, err := saveImage(ctx, s.storage, featuresDir, image)
	if err != nil {
		return
	}

	saved, err := saveWireframes(ctx, s.storage, wireframes)
	if err != nil {
		return
	}

	feature := domain.Feature{
		Name:        req.Name,
		Description: req.Description,
		FeatureType: req.FeatureType,
		Image:       file,
		Wireframes:  saved,
		Price:       price,
		Repo:        req.Repo,
	}
	feature.ID, err = s.repo.Insert(ctx, feature)
	if err != nil {
		return
	}

	data = dto.BuildFeatureResponse(feature)
	s.events.emit(ctx, "feature_created", data.ID, data)

	return data, nil
}

func (s *FeatureServiceImpl) UpdateFeature(ctx context.Context, req dto.FeatureUpdateRequest, image *dto.Upload) (data dto.FeatureResponse, err error) {
	if _, err = parseObjectID(req.ID); err != nil {
		return
	}

	price, err := parsePrice("price", req.Price)
	if err != nil {
		return
	}

	file, err := saveImage(ctx, s.storage, featuresDir, image)
	if err != nil {
		return
	}

	feature, err := notFoundIfNil(s.repo.UpdateByID(ctx, req.ID, domain.Feature{
		Name:        req.Name,
		Description: req.Description,
		FeatureType: req.FeatureType,
		Image:       file,
		Price:       price,
		Repo:        req.Repo,
	}))
	if err != nil {
		return
	}

	data = dto.BuildFeatureResponse(*feature)
	s.events.emit(ctx, "feature_updated", data.ID, data)

	return data, nil
}

func (s *FeatureServiceImpl) DeleteFeature(ctx context.Context, id string) (data dto.FeatureResponse, err error) {
	feature, err := notFoundIfNil(s.repo.DeleteByID(ctx, id))
	if err != nil {
		return
	}

	data = dto.BuildFeatureResponse(*feature)
	s.events.emit(ctx, "feature_deleted", data.ID, data)

	return data, nil
}

func (s *FeatureServiceImpl) AddWireframes(ctx context.Context, id string, wireframes []dto.Upload) (data dto.FeatureResponse, err error) {
	if _, err = parseObjectID(id); err != nil {
		return
	}

	if len(wireframes) == 0 {
		return data, requireUpload("wireframes", nil)
	}

	saved, err := saveWireframes(ctx, s.storage, wireframes)
	if err != nil {
		return
	}

	feature, err := notFoundIfNil(s.repo.AddWireframes(ctx, id, saved))
	if err != nil {
		return
	}

	data = dto.BuildFeatureResponse(*feature)
	s.events.emit(ctx, "feature_wireframes_added", data.ID, data)

	return data, nil
}

func (s *FeatureServiceImpl) DeleteWireframe(ctx context.Context, wireframeID string) (data dto.FeatureResponse, err error) {
	feature, err := notFoundIfNil(s.repo.DeleteWireframe(ctx, wireframeID))
	if err != nil {
		return
	}

	data = dto.BuildFeatureResponse(*feature)
	s.events.emit(ctx, "feature_wireframe_deleted", data.ID, data)

	return data, nil
}
