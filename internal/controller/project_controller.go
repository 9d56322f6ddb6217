package controller

import (
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/service"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/errs"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/response"
	"github.com/labstack/echo/v4"
)

type ProjectController struct {
	service service.ProjectService
}

func CreateProjectController(e *echo.Group, service service.ProjectService) {
	c := ProjectController{
		service: service,
	}
	e.GET("/projects", c.GetProjects)
	e.GET("/projects/:id", c.GetProjectByID)
	e.GET("/clients/:client_id/projects", c.GetProjectsByClientID)
	e.POST("/projects", c.AddProject)
	e.PUT("/projects/:id", c.UpdateProject)
	e.DELETE("/projects/:id", c.DeleteProject)
	e.PUT("/projects/:id/state", c.UpdateProjectState)
	e.POST("/projects/:id/features", c.AddProjectFeatures)
	e.DELETE("/projects/:id/features/:feature_id", c.RemoveProjectFeature)
	e.PUT("/projects/:id/proposal", c.UpdateProjectProposal)
	e.PUT("/projects/:id/mvp", c.AttachDeliverable(domain.DeliverableMVP))
	e.PUT("/projects/:id/design", c.AttachDeliverable(domain.DeliverableDesign))
	e.PUT("/projects/:id/full-build", c.AttachDeliverable(domain.DeliverableFullBuild))
}

func (c *ProjectController) GetProjects(e echo.Context) error {
	data, err := c.service.GetProjects(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ProjectController) GetProjectByID(e echo.Context) error {
	data, err := c.service.GetProjectByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ProjectController) GetProjectsByClientID(e echo.Context) error {
	data, err := c.service.GetProjectsByClientID(e.Request().Context(), e.Param("client_id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ProjectController) AddProject(e echo.Context) error {
	payload := dto.ProjectRequest{}
	if err := bindAndValidate(e, "AddProject", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	data, err := c.service.AddProject(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Project created", data)
}

func (c *ProjectController) UpdateProject(e echo.Context) error {
	payload := dto.ProjectRequest{}
	if err := bindAndValidate(e, "UpdateProject", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	payload.ID = e.Param("id")

	data, err := c.service.UpdateProject(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Project updated", data)
}

func (c *ProjectController) DeleteProject(e echo.Context) error {
	data, err := c.service.DeleteProject(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Project deleted", data)
}

func (c *ProjectController) UpdateProjectState(e echo.Context) error {
	payload := dto.ProjectStateRequest{}
	if err := bindAndValidate(e, "UpdateProjectState", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	payload.ID = e.Param("id")

	data, err := c.service.UpdateProjectState(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Project state updated", data)
}

func (c *ProjectController) AddProjectFeatures(e echo.Context) error {
	payload := dto.FeatureSetRequest{}
	if err := bindAndValidate(e, "AddProjectFeatures", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	payload.ID = e.Param("id")

	data, err := c.service.AddProjectFeatures(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Project features added", data)
}

func (c *ProjectController) RemoveProjectFeature(e echo.Context) error {
	data, err := c.service.RemoveProjectFeature(e.Request().Context(), e.Param("id"), e.Param("feature_id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Project feature removed", data)
}

func (c *ProjectController) UpdateProjectProposal(e echo.Context) error {
	payload := dto.ProjectProposalRequest{}
	if err := bindAndValidate(e, "UpdateProjectProposal", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	payload.ID = e.Param("id")

	data, err := c.service.UpdateProjectProposal(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Project proposal updated", data)
}

// AttachDeliverable returns the handler storing the multipart "file" as the
// given deliverable.
func (c *ProjectController) AttachDeliverable(kind domain.Deliverable) echo.HandlerFunc {
	return func(e echo.Context) error {
		files := &uploads{}
		defer files.Close()

		file, err := files.single(e, "file")
		if err != nil {
			return response.WriteErrorResponse(e, err, nil)
		}
		if file == nil {
			return response.WriteErrorResponse(e, errs.ErrMissingFile, nil)
		}

		data, err := c.service.AttachProjectDeliverable(e.Request().Context(), e.Param("id"), kind, file)
		if err != nil {
			return response.WriteErrorResponse(e, err, nil)
		}

		return response.WriteSuccessResponse(e, "Project "+string(kind)+" attached", data)
	}
}
