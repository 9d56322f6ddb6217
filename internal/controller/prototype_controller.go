package controller

import (
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/service"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/response"
	"github.com/labstack/echo/v4"
)

type PrototypeController struct {
	service service.PrototypeService
}

func CreatePrototypeController(e *echo.Group, service service.PrototypeService) {
	c := PrototypeController{
		service: service,
	}
	e.POST("/prototypes", c.AddPrototype)
	e.GET("/prototypes/templates/:template_id", c.GetPrototypeByTemplateID)
	e.PUT("/prototypes/templates/:template_id", c.UpdatePrototypeByTemplateID)
	e.DELETE("/prototypes/:id", c.DeletePrototype)
}

func (c *PrototypeController) AddPrototype(e echo.Context) error {
	payload := dto.PrototypeRequest{}
	if err := bindAndValidate(e, "AddPrototype", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	data, err := c.service.AddPrototype(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Prototype created", data)
}

func (c *PrototypeController) GetPrototypeByTemplateID(e echo.Context) error {
	data, err := c.service.GetPrototypeByTemplateID(e.Request().Context(), e.Param("template_id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *PrototypeController) UpdatePrototypeByTemplateID(e echo.Context) error {
	payload := dto.PrototypeRequest{}
	if err := bind(e, "UpdatePrototypeByTemplateID", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	payload.TemplateID = e.Param("template_id")

	if err := validate(&payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	data, err := c.service.UpdatePrototypeByTemplateID(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Prototype updated", data)
}

func (c *PrototypeController) DeletePrototype(e echo.Context) error {
	data, err := c.service.DeletePrototype(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Prototype deleted", data)
}
