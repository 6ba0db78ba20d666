package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"storefront-api/models"
	"storefront-api/repositories"

	"github.com/gin-gonic/gin"
)

type CollectionController struct {
	repo *repositories.CollectionRepository
}

func NewCollectionController() *CollectionController {
	return &CollectionController{repo: repositories.NewCollectionRepository()}
}

// GetCollections godoc
// @Summary Get all collections
// @Description Get list of all collections
// @Tags Collections
// @Produce json
// @Success 200 {object} models.Response
// @Router /collections [get]
func (ctrl *CollectionController) GetCollections(c *gin.Context) {
	collections, err := ctrl.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch collections",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Collections retrieved",
		Data:    collections,
	})
}

// CreateCollection godoc
// @Summary Create collection
// @Description Create a new collection (admin only)
// @Tags Collections
// @Accept json
// @Produce json
// @Param request body models.CollectionRequest true "Collection data"
// @Security CookieAuth
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /collections [post]
func (ctrl *CollectionController) CreateCollection(c *gin.Context) {
	var req models.CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Name is required",
			Error:   err.Error(),
		})
		return
	}

	col := &models.Collection{Name: strings.TrimSpace(req.Name)}
	if err := ctrl.repo.Create(col); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create collection",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Collection created",
		Data:    col,
	})
}

// UpdateCollection godoc
// @Summary Update collection
// @Description Rename a collection (admin only)
// @Tags Collections
// @Accept json
// @Produce json
// @Param id path int true "Collection ID"
// @Param request body models.CollectionRequest true "Collection data"
// @Security CookieAuth
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /collections/{id} [patch]
func (ctrl *CollectionController) UpdateCollection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid collection id",
		})
		return
	}

	var req models.CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Name is required",
			Error:   err.Error(),
		})
		return
	}

	col, err := ctrl.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Collection not found",
		})
		return
	}

	col.Name = strings.TrimSpace(req.Name)
	if err := ctrl.repo.Update(col); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update collection",
			Error:   err.Error(),
		})
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Collection updated",
		Data:    col,
	})
}

// DeleteCollection godoc
// @Summary Delete collection
// @Description Delete a collection; product links are removed (admin only)
// @Tags Collections
// @Produce json
// @Param id path int true "Collection ID"
// @Security CookieAuth
// @Success 204 "No Content"
// @Failure 404 {object} models.ErrorResponse
// @Router /collections/{id} [delete]
func (ctrl *CollectionController) DeleteCollection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid collection id",
		})
		return
	}

	deleted, err := ctrl.repo.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete collection",
			Error:   err.Error(),
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Collection not found",
		})
		return
	}

	invalidateProductCache()
	c.Status(http.StatusNoContent)
}
