package controller

import (
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/service"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/response"
	"github.com/labstack/echo/v4"
)

type FeatureController struct {
	service service.FeatureService
}

func CreateFeatureController(e *echo.Group, service service.FeatureService) {
	c := FeatureController{
		service: service,
	}
	e.GET("/features", c.GetFeatures)
	e.GET("/features/:id", c.GetFeatureByID)
	e.POST("/features", c.AddFeature)
	e.PUT("/features/:id", c.UpdateFeature)
	e.DELETE("/features/:id", c.DeleteFeature)
	e.POST("/features/:id/wireframes", c.AddWireframes)
	e.DELETE("/features/wireframes/:wireframe_id", c.DeleteWireframe)
}

func (c *FeatureController) GetFeatures(e echo.Context) error {
	data, err := c.service.GetFeatures(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *FeatureController) GetFeatureByID(e echo.Context) error {
	data, err := c.service.GetFeatureByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *FeatureController) AddFeature(e echo.Context) error {
	payload := dto.FeatureRequest{}
	if err := bindAndValidate(e, "AddFeature", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	files := &uploads{}
	defer files.Close()

	image, err := files.single(e, "image")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	wireframes, err := files.many(e, "wireframes")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	data, err := c.service.AddFeature(e.Request().Context(), payload, image, wireframes)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Feature created", data)
}

func (c *FeatureController) UpdateFeature(e echo.Context) error {
	payload := dto.FeatureUpdateRequest{}
	if err := bindAndValidate(e, "UpdateFeature", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	payload.ID = e.Param("id")

	files := &uploads{}
	defer files.Close()

	image, err := files.single(e, "image")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	data, err := c.service.UpdateFeature(e.Request().Context(), payload, image)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Feature updated", data)
}

func (c *FeatureController) DeleteFeature(e echo.Context) error {
	data, err := c.service.DeleteFeature(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Feature deleted", data)
}

func (c *FeatureController) AddWireframes(e echo.Context) error {
	files := &uploads{}
	defer files.Close()

	wireframes, err := files.many(e, "wireframes")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	data, err := c.service.AddWireframes(e.Request().Context(), e.Param("id"), wireframes)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Wireframes added", data)
}

func (c *FeatureController) DeleteWireframe(e echo.Context) error {
	data, err := c.service.DeleteWireframe(e.Request().Context(), e.Param("wireframe_id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Wireframe deleted", data)
}
