package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/repository"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStorage struct {
	saved []string
	err   error
}

func (s *fakeStorage) Save(ctx context.Context, dir string, filename string, r io.Reader) (domain.File, error) {
	if s.err != nil {
		return domain.File{}, s.err
	}
	if _, err := io.ReadAll(r); err != nil {
		return domain.File{}, err
	}
	s.saved = append(s.saved, path.Join(dir, filename))
	return domain.File{Name: filename, Src: path.Join("/media", dir, filename)}, nil
}

func (s *fakeStorage) SaveImage(ctx context.Context, dir string, filename string, r io.Reader) (domain.File, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return domain.File{}, err
	}
	if string(content) == "not an image" {
		return domain.File{}, fmt.Errorf("%w: %s", errs.ErrNotAnImage, filename)
	}
	return s.Save(ctx, dir, filename, strings.NewReader(""))
}

type publishedEvent struct {
	EventType string
	Key       string
	Data      interface{}
}

type fakePublisher struct {
	events []publishedEvent
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{EventType: eventType, Key: key, Data: data})
	return nil
}

func (p *fakePublisher) types() []string {
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.EventType)
	}
	return types
}

type fakeNotifier struct {
	changes []string
	err     error
}

func (n *fakeNotifier) NotifyProject(ctx context.Context, projectID string, projectName string, change string) error {
	if n.err != nil {
		return n.err
	}
	n.changes = append(n.changes, change)
	return nil
}

func upload(filename, content string) *dto.Upload {
	return &dto.Upload{Filename: filename, Content: strings.NewReader(content)}
}

// Stubs embed the repository interface so a test only wires the methods it
// exercises.

type stubCategoryRepository struct {
	repository.CategoryRepository
	findAll    func() ([]domain.Category, error)
	findByID   func(id string) (*domain.Category, error)
	insert     func(data domain.Category) (primitive.ObjectID, error)
	updateByID func(id string, data domain.Category) (*domain.Category, error)
	deleteByID func(id string) (*domain.Category, error)
}

func (r *stubCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	return r.findAll()
}

func (r *stubCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.findByID(id)
}

func (r *stubCategoryRepository) Insert(ctx context.Context, data domain.Category) (primitive.ObjectID, error) {
	return r.insert(data)
}

func (r *stubCategoryRepository) UpdateByID(ctx context.Context, id string, data domain.Category) (*domain.Category, error) {
	return r.updateByID(id, data)
}

func (r *stubCategoryRepository) DeleteByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.deleteByID(id)
}

type stubFeatureRepository struct {
	repository.FeatureRepository
	insert          func(data domain.Feature) (primitive.ObjectID, error)
	updateByID      func(id string, data domain.Feature) (*domain.Feature, error)
	addWireframes   func(id string, wireframes []domain.FileWithID) (*domain.Feature, error)
	deleteWireframe func(wireframeID string) (*domain.Feature, error)
}

func (r *stubFeatureRepository) Insert(ctx context.Context, data domain.Feature) (primitive.ObjectID, error) {
	return r.insert(data)
}

func (r *stubFeatureRepository) UpdateByID(ctx context.Context, id string, data domain.Feature) (*domain.Feature, error) {
	return r.updateByID(id, data)
}

func (r *stubFeatureRepository) AddWireframes(ctx context.Context, id string, wireframes []domain.FileWithID) (*domain.Feature, error) {
	return r.addWireframes(id, wireframes)
}

func (r *stubFeatureRepository) DeleteWireframe(ctx context.Context, wireframeID string) (*domain.Feature, error) {
	return r.deleteWireframe(wireframeID)
}

type stubTemplateRepository struct {
	repository.TemplateRepository
	insert         func(data domain.Template) (primitive.ObjectID, error)
	updateByID     func(id string, data domain.Template) (*domain.Template, error)
	updateFeatures func(id string, features []primitive.ObjectID) (*domain.Template, error)
	updateSpec     func(id string, spec domain.Specification) (*domain.Template, error)
	aggregateByID  func(id string) (*domain.TemplateView, error)
}

func (r *stubTemplateRepository) Insert(ctx context.Context, data domain.Template) (primitive.ObjectID, error) {
	return r.insert(data)
}

func (r *stubTemplateRepository) UpdateByID(ctx context.Context, id string, data domain.Template) (*domain.Template, error) {
	return r.updateByID(id, data)
}

func (r *stubTemplateRepository) UpdateFeatures(ctx context.Context, id string, features []primitive.ObjectID) (*domain.Template, error) {
	return r.updateFeatures(id, features)
}

func (r *stubTemplateRepository) UpdateSpecification(ctx context.Context, id string, spec domain.Specification) (*domain.Template, error) {
	return r.updateSpec(id, spec)
}

func (r *stubTemplateRepository) AggregateByID(ctx context.Context, id string) (*domain.TemplateView, error) {
	return r.aggregateByID(id)
}

type stubPrototypeRepository struct {
	repository.PrototypeRepository
	insert                func(data domain.Prototype) (primitive.ObjectID, error)
	deleteByID            func(id string) (*domain.Prototype, error)
	updateByTemplateID    func(templateID string, nodes []domain.PrototypeNode) (*domain.Prototype, error)
	aggregateByID         func(id string) (*domain.PrototypeView, error)
	aggregateByTemplateID func(templateID string) (*domain.PrototypeView, error)
}

func (r *stubPrototypeRepository) Insert(ctx context.Context, data domain.Prototype) (primitive.ObjectID, error) {
	return r.insert(data)
}

func (r *stubPrototypeRepository) DeleteByID(ctx context.Context, id string) (*domain.Prototype, error) {
	return r.deleteByID(id)
}

func (r *stubPrototypeRepository) UpdateByTemplateID(ctx context.Context, templateID string, nodes []domain.PrototypeNode) (*domain.Prototype, error) {
	return r.updateByTemplateID(templateID, nodes)
}

func (r *stubPrototypeRepository) AggregateByID(ctx context.Context, id string) (*domain.PrototypeView, error) {
	return r.aggregateByID(id)
}

func (r *stubPrototypeRepository) AggregateByTemplateID(ctx context.Context, templateID string) (*domain.PrototypeView, error) {
	return r.aggregateByTemplateID(templateID)
}

type stubProjectRepository struct {
	repository.ProjectRepository
	insert            func(data domain.Project) (primitive.ObjectID, error)
	updateByID        func(id string, data domain.Project) (*domain.Project, error)
	replace           func(id string, data domain.Project) (*domain.Project, error)
	deleteByID        func(id string) (*domain.Project, error)
	addFeatures       func(id string, features []primitive.ObjectID) (*domain.Project, error)
	updateState       func(id string, state domain.ProjectState) (*domain.Project, error)
	attachDeliverable func(id string, kind domain.Deliverable, file domain.File) (*domain.Project, error)
	aggregateByID     func(id string) (*domain.ProjectView, error)
	aggregateAll      func() ([]domain.ProjectView, error)
}

func (r *stubProjectRepository) Insert(ctx context.Context, data domain.Project) (primitive.ObjectID, error) {
	return r.insert(data)
}

func (r *stubProjectRepository) UpdateByID(ctx context.Context, id string, data domain.Project) (*domain.Project, error) {
	return r.updateByID(id, data)
}

func (r *stubProjectRepository) Replace(ctx context.Context, id string, data domain.Project) (*domain.Project, error) {
	return r.replace(id, data)
}

func (r *stubProjectRepository) DeleteByID(ctx context.Context, id string) (*domain.Project, error) {
	return r.deleteByID(id)
}

func (r *stubProjectRepository) AddFeatures(ctx context.Context, id string, features []primitive.ObjectID) (*domain.Project, error) {
	return r.addFeatures(id, features)
}

func (r *stubProjectRepository) UpdateState(ctx context.Context, id string, state domain.ProjectState) (*domain.Project, error) {
	return r.updateState(id, state)
}

func (r *stubProjectRepository) AttachDeliverable(ctx context.Context, id string, kind domain.Deliverable, file domain.File) (*domain.Project, error) {
	return r.attachDeliverable(id, kind, file)
}

func (r *stubProjectRepository) AggregateByID(ctx context.Context, id string) (*domain.ProjectView, error) {
	return r.aggregateByID(id)
}

func (r *stubProjectRepository) AggregateAll(ctx context.Context) ([]domain.ProjectView, error) {
	return r.aggregateAll()
}
