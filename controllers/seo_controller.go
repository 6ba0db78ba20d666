package controllers

import (
	"net/http"

	"storefront-api/models"
	"storefront-api/repositories"

	"github.com/gin-gonic/gin"
)

type SeoController struct {
	repo *repositories.SeoRepository
}

func NewSeoController() *SeoController {
	return &SeoController{repo: repositories.NewSeoRepository()}
}

// GetPageSeo godoc
// @Summary Get page SEO metadata
// @Description Get SEO metadata for a page by its slug
// @Tags SEO
// @Produce json
// @Param pageSlug path string true "Page slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /seo/{pageSlug} [get]
func (ctrl *SeoController) GetPageSeo(c *gin.Context) {
	seo, err := ctrl.repo.GetByPageSlug(c.Param("pageSlug"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "No SEO settings for this page",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "SEO settings retrieved",
		Data:    seo,
	})
}

// UpsertPageSeo godoc
// @Summary Save page SEO metadata
// @Description Create or update SEO metadata for a page (admin only)
// @Tags SEO
// @Accept json
// @Produce json
// @Param pageSlug path string true "Page slug"
// @Param request body models.PageSeoRequest true "SEO fields"
// @Security CookieAuth
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /seo/{pageSlug} [put]
func (ctrl *SeoController) UpsertPageSeo(c *gin.Context) {
	var req models.PageSeoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Title and description are required",
			Error:   err.Error(),
		})
		return
	}

	pageType := req.PageType
	if pageType == "" {
		pageType = "static"
	}

	seo := &models.PageSeo{
		PageSlug:    c.Param("pageSlug"),
		PageType:    pageType,
		Title:       req.Title,
		Description: req.Description,
		Keywords:    req.Keywords,
		OgImage:     req.OgImage,
	}
	if err := ctrl.repo.Upsert(seo); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save SEO settings",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "SEO settings saved",
		Data:    seo,
	})
}
