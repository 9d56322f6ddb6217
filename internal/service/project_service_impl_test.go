package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// projectStore backs a stubProjectRepository with a single project.
type projectStore struct {
	project *domain.Project
}

func (s *projectStore) repository() *stubProjectRepository {
	return &stubProjectRepository{
		insert: func(data domain.Project) (primitive.ObjectID, error) {
			data.ID = primitive.NewObjectID()
			s.project = &data
			return data.ID, nil
		},
		updateState: func(id string, state domain.ProjectState) (*domain.Project, error) {
			if s.project == nil || s.project.ID.Hex() != id {
				return nil, nil
			}
			s.project.State = state
			return s.project, nil
		},
		addFeatures: func(id string, features []primitive.ObjectID) (*domain.Project, error) {
			s.project.Features = append(s.project.Features, features...)
			return s.project, nil
		},
		attachDeliverable: func(id string, kind domain.Deliverable, file domain.File) (*domain.Project, error) {
			switch kind {
			case domain.DeliverableMVP:
				s.project.MVP = &file
			case domain.DeliverableDesign:
				s.project.Design = &file
			case domain.DeliverableFullBuild:
				s.project.FullBuild = &file
			}
			return s.project, nil
		},
		deleteByID: func(id string) (*domain.Project, error) {
			deleted := s.project
			s.project = nil
			return deleted, nil
		},
		aggregateByID: func(id string) (*domain.ProjectView, error) {
			if s.project == nil {
				return nil, nil
			}
			return &domain.ProjectView{Project: *s.project}, nil
		},
	}
}

func validProjectRequest() dto.ProjectRequest {
	return dto.ProjectRequest{
		ClientID:   primitive.NewObjectID().Hex(),
		Name:       "Shop",
		Platforms:  []string{"web", "ios"},
		Template:   primitive.NewObjectID().Hex(),
		Features:   []string{primitive.NewObjectID().Hex()},
		TotalPrice: 1200,
	}
}

func TestAddProject(t *testing.T) {
	store := &projectStore{}
	publisher := &fakePublisher{}
	svc := CreateProjectService(store.repository(), &fakeStorage{}, publisher, nil, false)

	data, err := svc.AddProject(context.Background(), validProjectRequest())
	require.NoError(t, err)

	assert.Equal(t, "draft", data.State)
	assert.Equal(t, []string{"web", "ios"}, data.Platforms)
	assert.Equal(t, 1200.0, data.TotalPrice)
	assert.Nil(t, data.Template)
	assert.Empty(t, data.Features)
	assert.Equal(t, []string{"project_created"}, publisher.types())
}

func TestAddProjectValidation(t *testing.T) {
	testCases := []struct {
		Name        string
		Mutate      func(req *dto.ProjectRequest)
		ExpectedErr error
	}{
		{"malformed client", func(req *dto.ProjectRequest) { req.ClientID = "c1" }, errs.ErrInvalidID},
		{"malformed template", func(req *dto.ProjectRequest) { req.Template = "" }, errs.ErrInvalidID},
		{"malformed feature", func(req *dto.ProjectRequest) { req.Features = []string{"f"} }, errs.ErrInvalidID},
		{"unknown state", func(req *dto.ProjectRequest) { req.State = "shipped" }, errs.ErrInvalidState},
		{"negative price", func(req *dto.ProjectRequest) { req.TotalPrice = -5 }, errs.ErrClient},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			svc := CreateProjectService(&stubProjectRepository{}, &fakeStorage{}, nil, nil, false)
			req := validProjectRequest()
			tc.Mutate(&req)

			_, err := svc.AddProject(context.Background(), req)
			assert.ErrorIs(t, err, tc.ExpectedErr)
		})
	}
}

func TestUpdateProjectKeepsStateWhenOmitted(t *testing.T) {
	id := primitive.NewObjectID()
	var update domain.Project
	repo := &stubProjectRepository{
		replace: func(_ string, data domain.Project) (*domain.Project, error) {
			update = data
			return &domain.Project{ID: id}, nil
		},
		aggregateByID: func(string) (*domain.ProjectView, error) {
			return &domain.ProjectView{Project: domain.Project{ID: id, State: domain.ProjectStateMVP}}, nil
		},
	}
	svc := CreateProjectService(repo, &fakeStorage{}, nil, nil, false)

	req := validProjectRequest()
	req.ID = id.Hex()
	data, err := svc.UpdateProject(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.ProjectState(""), update.State)
	assert.Equal(t, "mvp", data.State)
}

func TestUpdateProjectClearsEmptyFields(t *testing.T) {
	id := primitive.NewObjectID()
	var replaced domain.Project
	var replacedID string
	repo := &stubProjectRepository{
		replace: func(projectID string, data domain.Project) (*domain.Project, error) {
			replacedID = projectID
			replaced = data
			return &data, nil
		},
		aggregateByID: func(string) (*domain.ProjectView, error) {
			return &domain.ProjectView{Project: replaced}, nil
		},
	}
	svc := CreateProjectService(repo, &fakeStorage{}, nil, nil, false)

	req := validProjectRequest()
	req.ID = id.Hex()
	req.Proposal = ""
	req.Deliverable = ""
	req.Platforms = []string{}
	req.Features = []string{}
	req.TotalPrice = 0
	data, err := svc.UpdateProject(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, id.Hex(), replacedID)
	assert.Empty(t, replaced.Proposal)
	assert.Empty(t, replaced.Deliverable)
	assert.Empty(t, replaced.Platforms)
	assert.Empty(t, replaced.Features)
	require.NotNil(t, replaced.TotalPrice)
	assert.Equal(t, 0.0, *replaced.TotalPrice)
	assert.Equal(t, []string{}, data.Platforms)
	assert.Equal(t, "", data.Proposal)
}

func TestUpdateProjectState(t *testing.T) {
	store := &projectStore{}
	notifier := &fakeNotifier{}
	publisher := &fakePublisher{}
	svc := CreateProjectService(store.repository(), &fakeStorage{}, publisher, notifier, false)

	created, err := svc.AddProject(context.Background(), validProjectRequest())
	require.NoError(t, err)

	data, err := svc.UpdateProjectState(context.Background(), dto.ProjectStateRequest{ID: created.ID, State: "archived"})
	require.NoError(t, err)
	assert.Equal(t, "archived", data.State)
	assert.Equal(t, []string{"state changed to archived"}, notifier.changes)
	assert.Equal(t, []string{"project_created", "project_state_updated"}, publisher.types())

	_, err = svc.UpdateProjectState(context.Background(), dto.ProjectStateRequest{ID: created.ID, State: "gone"})
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	_, err = svc.UpdateProjectState(context.Background(), dto.ProjectStateRequest{ID: primitive.NewObjectID().Hex(), State: "mvp"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUpdateProjectStateIgnoresNotifierFailure(t *testing.T) {
	store := &projectStore{}
	svc := CreateProjectService(store.repository(), &fakeStorage{}, nil, &fakeNotifier{err: errors.New("smtp down")}, false)

	created, err := svc.AddProject(context.Background(), validProjectRequest())
	require.NoError(t, err)

	_, err = svc.UpdateProjectState(context.Background(), dto.ProjectStateRequest{ID: created.ID, State: "proposal"})
	assert.NoError(t, err)
}

func TestAddProjectFeatures(t *testing.T) {
	store := &projectStore{}
	svc := CreateProjectService(store.repository(), &fakeStorage{}, nil, nil, false)

	created, err := svc.AddProject(context.Background(), validProjectRequest())
	require.NoError(t, err)

	_, err = svc.AddProjectFeatures(context.Background(), dto.FeatureSetRequest{ID: created.ID})
	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)

	featureID := primitive.NewObjectID()
	_, err = svc.AddProjectFeatures(context.Background(), dto.FeatureSetRequest{ID: created.ID, FeaturesID: []string{featureID.Hex()}})
	require.NoError(t, err)
	assert.Contains(t, store.project.Features, featureID)
}

func TestAttachProjectDeliverable(t *testing.T) {
	store := &projectStore{}
	storage := &fakeStorage{}
	notifier := &fakeNotifier{}
	publisher := &fakePublisher{}
	svc := CreateProjectService(store.repository(), storage, publisher, notifier, false)

	created, err := svc.AddProject(context.Background(), validProjectRequest())
	require.NoError(t, err)

	data, err := svc.AttachProjectDeliverable(context.Background(), created.ID, domain.DeliverableFullBuild, upload("build.zip", "zip"))
	require.NoError(t, err)

	require.NotNil(t, data.FullBuild)
	assert.Equal(t, "/media/projects/build.zip", data.FullBuild.Src)
	assert.Nil(t, data.MVP)
	assert.Equal(t, []string{"projects/build.zip"}, storage.saved)
	assert.Equal(t, []string{"full_build deliverable attached"}, notifier.changes)
	assert.Equal(t, "project_full_build_attached", publisher.types()[1])

	_, err = svc.AttachProjectDeliverable(context.Background(), created.ID, domain.DeliverableMVP, nil)
	assert.ErrorIs(t, err, errs.ErrMissingFile)
}

func TestDeleteProject(t *testing.T) {
	store := &projectStore{}
	svc := CreateProjectService(store.repository(), &fakeStorage{}, nil, nil, false)

	created, err := svc.AddProject(context.Background(), validProjectRequest())
	require.NoError(t, err)

	deleted, err := svc.DeleteProject(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Len(t, deleted.Features, 1)

	_, err = svc.GetProjectByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func danglingProjectView() *domain.ProjectView {
	return &domain.ProjectView{Project: domain.Project{
		ID:       primitive.NewObjectID(),
		Name:     "Orphan",
		Template: primitive.NewObjectID(),
		Features: []primitive.ObjectID{primitive.NewObjectID()},
		State:    domain.ProjectStateDraft,
	}}
}

func TestGetProjectByIDReferencePolicy(t *testing.T) {
	testCases := []struct {
		Name        string
		Strict      bool
		ExpectedErr error
	}{
		{"lenient returns partial view", false, nil},
		{"strict rejects fully dangling view", true, errs.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			view := danglingProjectView()
			repo := &stubProjectRepository{
				aggregateByID: func(id string) (*domain.ProjectView, error) {
					return view, nil
				},
			}
			svc := CreateProjectService(repo, &fakeStorage{}, nil, nil, tc.Strict)

			data, err := svc.GetProjectByID(context.Background(), view.ID.Hex())
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			assert.Nil(t, data.Template)
			assert.Equal(t, []dto.FeatureResponse{}, data.Features)
			assert.Equal(t, "Orphan", data.Name)
		})
	}
}

func TestGetProjectsIsNeverFiltered(t *testing.T) {
	repo := &stubProjectRepository{
		aggregateAll: func() ([]domain.ProjectView, error) {
			return []domain.ProjectView{*danglingProjectView(), *danglingProjectView()}, nil
		},
	}
	svc := CreateProjectService(repo, &fakeStorage{}, nil, nil, true)

	data, err := svc.GetProjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, data, 2)
}
