package controller

import (
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/service"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/response"
	"github.com/labstack/echo/v4"
)

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(e *echo.Group, service service.CategoryService) {
	c := CategoryController{
		service: service,
	}
	e.GET("/categories", c.GetCategories)
	e.GET("/categories/:id", c.GetCategoryByID)
	e.POST("/categories", c.AddCategory)
	e.PUT("/categories/:id", c.UpdateCategory)
	e.DELETE("/categories/:id", c.DeleteCategory)
}

func (c *CategoryController) GetCategories(e echo.Context) error {
	data, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *CategoryController) GetCategoryByID(e echo.Context) error {
	data, err := c.service.GetCategoryByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *CategoryController) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	if err := bindAndValidate(e, "AddCategory", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	files := &uploads{}
	defer files.Close()

	image, err := files.single(e, "image")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	data, err := c.service.AddCategory(e.Request().Context(), payload, image)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Category created", data)
}

func (c *CategoryController) UpdateCategory(e echo.Context) error {
	payload := dto.CategoryUpdateRequest{}
	if err := bindAndValidate(e, "UpdateCategory", &payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	payload.ID = e.Param("id")

	files := &uploads{}
	defer files.Close()

	image, err := files.single(e, "image")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	data, err := c.service.UpdateCategory(e.Request().Context(), payload, image)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Category updated", data)
}

func (c *CategoryController) DeleteCategory(e echo.Context) error {
	data, err := c.service.DeleteCategory(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Category deleted", data)
}
