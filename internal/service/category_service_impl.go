package service

import (
	"context"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/repository"
)

type CategoryServiceImpl struct {
	repo    repository.CategoryRepository
	storage FileStorage
	events  events
}

func CreateCategoryService(repo repository.CategoryRepository, storage FileStorage, publisher EventPublisher) CategoryService {
	return &CategoryServiceImpl{repo: repo, storage: storage, events: events{publisher: publisher}}
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) (data []dto.CategoryResponse, err error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return dto.BuildCategoryResponses(categories), nil
}

func (s *CategoryServiceImpl) GetCategoryByID(ctx context.Context, id string) (data dto.CategoryResponse, err error) {
	category, err := notFoundIfNil(s.repo.FindByID(ctx, id))
	if err != nil {
		return
	}

	return dto.BuildCategoryResponse(*category), nil
}

func (s *CategoryServiceImpl) AddCategory(ctx context.Context, req dto.CategoryRequest, image *dto.Upload) (data dto.CategoryResponse, err error) {
	if err = requireUpload("image", image); err != nil {
		return
	}

	file, err := saveImage(ctx, s.storage, categoriesDir, image)
	if err != nil {
		return
	}

	category := domain.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       file,
	}
	category.ID, err = s.repo.Insert(ctx, category)
	if err != nil {
		return
	}

	data = dto.BuildCategoryResponse(category)
	s.events.emit(ctx, "category_created", data.ID, data)

	return data, nil
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, req dto.CategoryUpdateRequest, image *dto.Upload) (data dto.CategoryResponse, err error) {
	if _, err = parseObjectID(req.ID); err != nil {
		return
	}

	file, err := saveImage(ctx, s.storage, categoriesDir, image)
	if err != nil {
		return
	}

	category, err := notFoundIfNil(s.repo.UpdateByID(ctx, req.ID, domain.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       file,
	}))
	if err != nil {
		return
	}

	data = dto.BuildCategoryResponse(*category)
	s.events.emit(ctx, "category_updated", data.ID, data)

	return data, nil
}

func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id string) (data dto.CategoryResponse, err error) {
	category, err := notFoundIfNil(s.repo.DeleteByID(ctx, id))
	if err != nil {
		return
	}

	data = dto.BuildCategoryResponse(*category)
	s.events.emit(ctx, "category_deleted", data.ID, data)

	return data, nil
}
