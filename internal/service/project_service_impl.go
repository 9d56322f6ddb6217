package service

import (
	"context"
	"fmt"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/repository"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/errs"
	"github.com/rs/zerolog/log"
)

type ProjectServiceImpl struct {
	repo     repository.ProjectRepository
	storage  FileStorage
	notifier Notifier
	events   events
	policy   referencePolicy
}

func CreateProjectService(repo repository.ProjectRepository, storage FileStorage, publisher EventPublisher, notifier Notifier, strictReferences bool) ProjectService {
	return &ProjectServiceImpl{
		repo:     repo,
		storage:  storage,
		notifier: notifier,
		events:   events{publisher: publisher},
		policy:   referencePolicy{strict: strictReferences},
	}
}

func (s *ProjectServiceImpl) GetProjects(ctx context.Context) (data []dto.ProjectViewResponse, err error) {
	views, err := s.repo.AggregateAll(ctx)
	if err != nil {
		return nil, err
	}

	return dto.BuildProjectViewResponses(views), nil
}

func (s *ProjectServiceImpl) GetProjectByID(ctx context.Context, id string) (data dto.ProjectViewResponse, err error) {
	view, err := notFoundIfNil(s.repo.AggregateByID(ctx, id))
	if err != nil {
		return
	}

	if err = s.policy.check(view); err != nil {
		return
	}

	return dto.BuildProjectViewResponse(*view), nil
}

func (s *ProjectServiceImpl) GetProjectsByClientID(ctx context.Context, clientID string) (data []dto.ProjectViewResponse, err error) {
	views, err := s.repo.AggregateAllByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return dto.BuildProjectViewResponses(views), nil
}

func (s *ProjectServiceImpl) buildProject(req dto.ProjectRequest) (project domain.Project, err error) {
	if project.ClientID, err = parseObjectID(req.ClientID); err != nil {
		return
	}
	if project.Template, err = parseObjectID(req.Template); err != nil {
		return
	}
	if project.Features, err = parseObjectIDs(req.Features); err != nil {
		return
	}

	project.State = domain.ProjectState(req.State)
	if project.State == "" {
		project.State = domain.ProjectStateDraft
	}
	if !project.State.Valid() {
		return project, fmt.Errorf("%w: %q", errs.ErrInvalidState, req.State)
	}

	if req.TotalPrice < 0 {
		return project, errs.NewValidationError(errs.FieldError{Field: "total_price", Tag: "gte"})
	}
	totalPrice := req.TotalPrice

	project.Name = req.Name
	project.Platforms = req.Platforms
	project.Proposal = req.Proposal
	project.Deliverable = req.Deliverable
	project.TotalPrice = &totalPrice

	return project, nil
}

func (s *ProjectServiceImpl) AddProject(ctx context.Context, req dto.ProjectRequest) (data dto.ProjectViewResponse, err error) {
	project, err := s.buildProject(req)
	if err != nil {
		return
	}

	id, err := s.repo.Insert(ctx, project)
	if err != nil {
		return
	}

	return s.afterWrite(ctx, "project_created", id.Hex())
}

// UpdateProject replaces the mutable fields of the project addressed by id,
// clearing the ones the request leaves empty. Its state stays unless the
// request names one.
func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, req dto.ProjectRequest) (data dto.ProjectViewResponse, err error) {
	if _, err = parseObjectID(req.ID); err != nil {
		return
	}

	keepState := req.State == ""
	project, err := s.buildProject(req)
	if err != nil {
		return
	}
	if keepState {
		project.State = ""
	}

	if _, err = notFoundIfNil(s.repo.Replace(ctx, req.ID, project)); err != nil {
		return
	}

	return s.afterWrite(ctx, "project_updated", req.ID)
}

func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, id string) (data dto.ProjectResponse, err error) {
	project, err := notFoundIfNil(s.repo.DeleteByID(ctx, id))
	if err != nil {
		return
	}

	data = dto.BuildProjectResponse(*project)
	s.events.emit(ctx, "project_deleted", data.ID, data)

	return data, nil
}

func (s *ProjectServiceImpl) UpdateProjectState(ctx context.Context, req dto.ProjectStateRequest) (data dto.ProjectViewResponse, err error) {
	state := domain.ProjectState(req.State)
	if !state.Valid() {
		return data, fmt.Errorf("%w: %q", errs.ErrInvalidState, req.State)
	}

	if _, err = notFoundIfNil(s.repo.UpdateState(ctx, req.ID, state)); err != nil {
		return
	}

	data, err = s.afterWrite(ctx, "project_state_updated", req.ID)
	if err != nil {
		return
	}

	s.notify(ctx, data, fmt.Sprintf("state changed to %s", state))

	return data, nil
}

func (s *ProjectServiceImpl) AddProjectFeatures(ctx context.Context, req dto.FeatureSetRequest) (data dto.ProjectViewResponse, err error) {
	if len(req.FeaturesID) == 0 {
		return data, errs.NewValidationError(errs.FieldError{Field: "features_id", Tag: "min"})
	}

	features, err := parseObjectIDs(req.FeaturesID)
	if err != nil {
		return
	}

	if _, err = notFoundIfNil(s.repo.AddFeatures(ctx, req.ID, features)); err != nil {
		return
	}

	return s.afterWrite(ctx, "project_features_added", req.ID)
}

func (s *ProjectServiceImpl) RemoveProjectFeature(ctx context.Context, id string, featureID string) (data dto.ProjectViewResponse, err error) {
	feature, err := parseObjectID(featureID)
	if err != nil {
		return
	}

	if _, err = notFoundIfNil(s.repo.RemoveFeature(ctx, id, feature)); err != nil {
		return
	}

	return s.afterWrite(ctx, "project_feature_removed", id)
}

func (s *ProjectServiceImpl) UpdateProjectProposal(ctx context.Context, req dto.ProjectProposalRequest) (data dto.ProjectViewResponse, err error) {
	if _, err = notFoundIfNil(s.repo.UpdateProposal(ctx, req.ID, req.Proposal)); err != nil {
		return
	}

	data, err = s.afterWrite(ctx, "project_proposal_updated", req.ID)
	if err != nil {
		return
	}

	s.notify(ctx, data, "proposal updated")

	return data, nil
}

func (s *ProjectServiceImpl) AttachProjectDeliverable(ctx context.Context, id string, kind domain.Deliverable, file *dto.Upload) (data dto.ProjectViewResponse, err error) {
	if _, err = parseObjectID(id); err != nil {
		return
	}

	if err = requireUpload("file", file); err != nil {
		return
	}

	saved, err := s.storage.Save(ctx, projectsDir, file.Filename, file.Content)
	if err != nil {
		return
	}

	if _, err = notFoundIfNil(s.repo.AttachDeliverable(ctx, id, kind, saved)); err != nil {
		return
	}

	data, err = s.afterWrite(ctx, fmt.Sprintf("project_%s_attached", kind), id)
	if err != nil {
		return
	}

	s.notify(ctx, data, fmt.Sprintf("%s deliverable attached", kind))

	return data, nil
}

func (s *ProjectServiceImpl) afterWrite(ctx context.Context, eventType string, id string) (data dto.ProjectViewResponse, err error) {
	view, err := notFoundIfNil(s.repo.AggregateByID(ctx, id))
	if err != nil {
		return
	}

	data = dto.BuildProjectViewResponse(*view)
	s.events.emit(ctx, eventType, data.ID, data)

	return data, nil
}

func (s *ProjectServiceImpl) notify(ctx context.Context, project dto.ProjectViewResponse, change string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyProject(ctx, project.ID, project.Name, change); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "notify").Msg("project notification dropped")
	}
}
