package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Upload directories below the storage root.
const (
	categoriesDir = "categories"
	featuresDir   = "features"
	wireframesDir = "wireframes"
	templatesDir  = "templates"
	projectsDir   = "projects"
)

// events publishes change events. Failures are logged and never reach the
// caller.
type events struct {
	publisher EventPublisher
}

func (e events) emit(ctx context.Context, eventType string, key string, data interface{}) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, eventType, key, data); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "emit").Str("event_type", eventType).Msg("change event dropped")
	}
}

type referenceCounter interface {
	ReferenceCount() int
	ResolvedCount() int
}

// referencePolicy decides whether a merged view whose references all dangle
// is reported as not found.
type referencePolicy struct {
	strict bool
}

func (p referencePolicy) check(view referenceCounter) error {
	if p.strict && view.ReferenceCount() > 0 && view.ResolvedCount() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", errs.ErrInvalidID, id)
	}
	return objectID, nil
}

func parseObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := parseObjectID(id)
		if err != nil {
			return nil, err
		}
		objectIDs = append(objectIDs, objectID)
	}
	return objectIDs, nil
}

func parsePrice(field string, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}

	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, errs.NewValidationError(errs.FieldError{Field: field, Tag: "numeric"})
	}
	if price < 0 {
		return nil, errs.NewValidationError(errs.FieldError{Field: field, Tag: "gte"})
	}

	return &price, nil
}

func requireUpload(field string, upload *dto.Upload) error {
	if upload == nil || upload.Content == nil {
		return fmt.Errorf("%w: %s", errs.ErrMissingFile, field)
	}
	return nil
}

func saveImage(ctx context.Context, storage FileStorage, dir string, upload *dto.Upload) (*domain.File, error) {
	if upload == nil {
		return nil, nil
	}

	file, err := storage.SaveImage(ctx, dir, upload.Filename, upload.Content)
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func saveWireframes(ctx context.Context, storage FileStorage, uploads []dto.Upload) ([]domain.FileWithID, error) {
	wireframes := make([]domain.FileWithID, 0, len(uploads))
	for _, upload := range uploads {
		file, err := storage.SaveImage(ctx, wireframesDir, upload.Filename, upload.Content)
		if err != nil {
			return nil, err
		}
		wireframes = append(wireframes, domain.NewFileWithID(file))
	}
	return wireframes, nil
}

func notFoundIfNil[T any](data *T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errs.ErrNotFound
	}
	return data, nil
}
