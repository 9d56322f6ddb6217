package controller

import (
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/service"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/response"
	"github.com/labstack/echo/v4"
)

type TemplateController struct {
	service service.TemplateService
}

func CreateTemplateController(e *echo.Group, service service.TemplateService) {
	c := TemplateController{
		service: service,
	}
	e.GET("/templates", c.GetTemplates)
	e.GET("/templates/:id", c.GetTemplateByID)
	e.POST("/templates", c.AddTemplate)
	e.PUT("/templates/:id", c.UpdateTemplate)
	e.DELETE("/templates/:id", c.DeleteTemplate)
	e.PUT("/templates/:id/features", c.UpdateTemplateFeatures)
	e.PUT("/templates/:id/specification", c.UpdateTemplateSpecification)
}

func (c *TemplateController) GetTemplates(e echo.Context) error {
	data, err := c.service.GetTemplates(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *TemplateController) GetTemplateByID(e echo.Context) error {
	data, err := c.service.GetTemplateByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *TemplateController) AddTemplate(e echo.Context) error {
	payload := dto.TemplateRequest{}
	if err := bindAndValidate(e, "AddTemplate", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	files := &uploads{}
	defer files.Close()

	image, err := files.single(e, "image")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	data, err := c.service.AddTemplate(e.Request().Context(), payload, image)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Template created", data)
}

func (c *TemplateController) UpdateTemplate(e echo.Context) error {
	payload := dto.TemplateUpdateRequest{}
	if err := bindAndValidate(e, "UpdateTemplate", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	payload.ID = e.Param("id")

	files := &uploads{}
	defer files.Close()

	image, err := files.single(e, "image")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	data, err := c.service.UpdateTemplate(e.Request().Context(), payload, image)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Template updated", data)
}

func (c *TemplateController) DeleteTemplate(e echo.Context) error {
	data, err := c.service.DeleteTemplate(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Template deleted", data)
}

func (c *TemplateController) UpdateTemplateFeatures(e echo.Context) error {
	payload := dto.FeatureSetRequest{}
	if err := bindAndValidate(e, "UpdateTemplateFeatures", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	payload.ID = e.Param("id")

	data, err := c.service.UpdateTemplateFeatures(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Template features updated", data)
}

func (c *TemplateController) UpdateTemplateSpecification(e echo.Context) error {
	payload := dto.SpecificationRequest{}
	if err := bindAndValidate(e, "UpdateTemplateSpecification", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	payload.ID = e.Param("id")

	data, err := c.service.UpdateTemplateSpecification(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Template specification updated", data)
}
