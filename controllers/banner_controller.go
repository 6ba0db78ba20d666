package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"storefront-api/models"
	"storefront-api/repositories"
	"storefront-api/services"

	"github.com/gin-gonic/gin"
)

type BannerController struct {
	repo *repositories.BannerRepository
}

func NewBannerController() *BannerController {
	return &BannerController{repo: repositories.NewBannerRepository()}
}

// GetBanners godoc
// @Summary Get landing page banners
// @Description Get active banners ordered for the landing page carousel
// @Tags Banners
// @Produce json
// @Param all query bool false "Include inactive banners (admin view)"
// @Success 200 {object} models.Response
// @Router /banners [get]
func (ctrl *BannerController) GetBanners(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	banners, err := ctrl.repo.GetAll(activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch banners",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Banners retrieved",
		Data:    banners,
	})
}

// CreateBanner godoc
// @Summary Create banner
// @Description Create a landing page banner (admin only)
// @Tags Banners
// @Accept json
// @Produce json
// @Param request body models.BannerRequest true "Banner data"
// @Security CookieAuth
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /banners [post]
func (ctrl *BannerController) CreateBanner(c *gin.Context) {
	var req models.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "An image URL is required",
			Error:   err.Error(),
		})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	banner := &models.Banner{
		Title:         req.Title,
		ImageURL:      req.ImageURL,
		ImagePublicID: req.ImagePublicID,
		LinkURL:       req.LinkURL,
		Order:         req.Order,
		IsActive:      isActive,
	}
	if err := ctrl.repo.Create(banner); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create banner",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Banner created",
		Data:    banner,
	})
}

// UpdateBanner godoc
// @Summary Update banner
// @Description Update banner fields (admin only)
// @Tags Banners
// @Accept json
// @Produce json
// @Param id path int true "Banner ID"
// @Param request body models.UpdateBannerRequest true "Fields to update"
// @Security CookieAuth
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /banners/{id} [patch]
func (ctrl *BannerController) UpdateBanner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid banner id",
		})
		return
	}

	var req models.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid banner data",
			Error:   err.Error(),
		})
		return
	}

	banner, err := ctrl.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Banner not found",
		})
		return
	}

	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.ImageURL != nil {
		banner.ImageURL = *req.ImageURL
	}
	if req.LinkURL != nil {
		banner.LinkURL = *req.LinkURL
	}
	if req.Order != nil {
		banner.Order = *req.Order
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := ctrl.repo.Update(banner); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update banner",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Banner updated",
		Data:    banner,
	})
}

// DeleteBanner godoc
// @Summary Delete banner
// @Description Delete a banner and clean up its hosted image (admin only)
// @Tags Banners
// @Produce json
// @Param id path int true "Banner ID"
// @Security CookieAuth
// @Success 204 "No Content"
// @Failure 404 {object} models.ErrorResponse
// @Router /banners/{id} [delete]
func (ctrl *BannerController) DeleteBanner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid banner id",
		})
		return
	}

	banner, err := ctrl.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Banner not found",
		})
		return
	}

	deleted, err := ctrl.repo.Delete(id)
	if err != nil || !deleted {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete banner",
		})
		return
	}

	// Asset cleanup is best effort; the banner row is already gone.
	if banner.ImagePublicID != "" {
		if cld, err := services.NewCloudinaryService(); err == nil {
			if _, err := cld.DeleteImage(context.Background(), banner.ImagePublicID); err != nil {
				log.Printf("Failed to delete banner image %s: %v", banner.ImagePublicID, err)
			}
		}
	}

	c.Status(http.StatusNoContent)
}
