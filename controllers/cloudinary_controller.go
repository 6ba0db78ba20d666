package controllers

import (
	"net/http"

	"storefront-api/models"
	"storefront-api/services"

	"github.com/gin-gonic/gin"
)

type CloudinaryController struct{}

func NewCloudinaryController() *CloudinaryController {
	return &CloudinaryController{}
}

// UploadImage godoc
// @Summary Upload image
// @Description Upload a product or banner image to the asset host (admin only)
// @Tags Cloudinary
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (jpg, jpeg, png, gif, webp; max 10MB)"
// @Param folder formData string false "Target folder" default(products)
// @Security CookieAuth
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cloudinary/upload [post]
func (ctrl *CloudinaryController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "An image file is required",
			Error:   err.Error(),
		})
		return
	}

	cld, err := services.NewCloudinaryService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Image hosting is not configured",
			Error:   err.Error(),
		})
		return
	}

	if err := cld.ValidateImageFile(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to read uploaded file",
			Error:   err.Error(),
		})
		return
	}
	defer file.Close()

	folder := c.DefaultPostForm("folder", "products")
	url, publicID, err := cld.UploadImage(c.Request.Context(), file, fileHeader.Filename, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Image uploaded",
		Data:    gin.H{"url": url, "publicId": publicID},
	})
}

// DeleteImage godoc
// @Summary Delete image
// @Description Delete a hosted asset by public id or delivery URL; a missing asset counts as deleted (admin only)
// @Tags Cloudinary
// @Accept json
// @Produce json
// @Param request body models.CloudinaryDeleteRequest true "Asset reference"
// @Security CookieAuth
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cloudinary/delete [post]
func (ctrl *CloudinaryController) DeleteImage(c *gin.Context) {
	var req models.CloudinaryDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	publicID := req.PublicID
	if publicID == "" {
		if req.URL == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "An image URL or publicId is required",
			})
			return
		}
		publicID = services.ExtractPublicIDFromURL(req.URL)
		if publicID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Could not extract publicId from URL",
			})
			return
		}
	}

	cld, err := services.NewCloudinaryService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Image hosting is not configured",
			Error:   err.Error(),
		})
		return
	}

	result, err := cld.DeleteImage(c.Request.Context(), publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Cloudinary API error",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"result":   gin.H{"result": result},
		"publicId": publicID,
	})
}
