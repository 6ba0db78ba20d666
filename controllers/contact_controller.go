package controllers

import (
	"net/http"

	"storefront-api/models"
	"storefront-api/services"

	"github.com/gin-gonic/gin"
)

type ContactController struct{}

func NewContactController() *ContactController {
	return &ContactController{}
}

// SendInquiry godoc
// @Summary Contact the store
// @Description Forward a contact form submission to the store inbox
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Inquiry"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /contact [post]
func (ctrl *ContactController) SendInquiry(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Name, email and message are required",
			Error:   err.Error(),
		})
		return
	}

	contactService, err := services.NewContactService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Contact form is not configured",
			Error:   err.Error(),
		})
		return
	}

	if err := contactService.SendInquiry(req); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to send inquiry",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Inquiry sent"})
}
