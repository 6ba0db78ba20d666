package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"storefront-api/models"
	"storefront-api/repositories"
	"storefront-api/utils"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	repo        *repositories.CategoryRepository
	productRepo *repositories.ProductRepository
}

func NewCategoryController() *CategoryController {
	return &CategoryController{
		repo:        repositories.NewCategoryRepository(),
		productRepo: repositories.NewProductRepository(),
	}
}

// GetCategories godoc
// @Summary Get all categories
// @Description Get list of all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch categories",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    categories,
	})
}

// CreateCategory godoc
// @Summary Create category
// @Description Create a new category (admin only)
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body models.CategoryRequest true "Category data"
// @Security CookieAuth
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Name is required",
			Error:   err.Error(),
		})
		return
	}

	name := strings.TrimSpace(req.Name)
	slug := utils.Slugify(name)
	if slug == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Category name must contain letters or digits",
		})
		return
	}

	taken, err := ctrl.repo.SlugExists(slug)
	if err == nil && taken {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Category already exists",
		})
		return
	}

	cat := &models.Category{Name: name, Slug: slug}
	if err := ctrl.repo.Create(cat); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create category",
			Error:   err.Error(),
		})
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Category created",
		Data:    cat,
	})
}

// UpdateCategory godoc
// @Summary Update category
// @Description Rename a category; the slug is regenerated (admin only)
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body models.CategoryRequest true "Category data"
// @Security CookieAuth
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id} [patch]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid category id",
		})
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Name is required",
			Error:   err.Error(),
		})
		return
	}

	cat, err := ctrl.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Category not found",
		})
		return
	}

	cat.Name = strings.TrimSpace(req.Name)
	cat.Slug = utils.Slugify(cat.Name)

	if err := ctrl.repo.Update(cat); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update category",
			Error:   err.Error(),
		})
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Category updated",
		Data:    cat,
	})
}

// DeleteCategory godoc
// @Summary Delete category
// @Description Delete a category that no product references (admin only)
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Security CookieAuth
// @Success 204 "No Content"
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid category id",
		})
		return
	}

	inUse, err := ctrl.productRepo.CountByCategory(id)
	if err == nil && inUse > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Category still has products",
		})
		return
	}

	deleted, err := ctrl.repo.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete category",
			Error:   err.Error(),
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Category not found",
		})
		return
	}

	invalidateProductCache()
	c.Status(http.StatusNoContent)
}
