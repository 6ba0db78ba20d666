package controllers

import (
	"net/http"
	"strconv"

	"storefront-api/models"
	"storefront-api/repositories"

	"github.com/gin-gonic/gin"
)

// FAQStore is the persistence surface the FAQ endpoints need.
type FAQStore interface {
	GetAll() ([]models.FAQ, error)
	GetByID(id int) (*models.FAQ, error)
	Create(f *models.FAQ) error
	Update(f *models.FAQ) error
	Delete(id int) (bool, error)
}

type FAQController struct {
	repo FAQStore
}

func NewFAQController() *FAQController {
	return &FAQController{repo: repositories.NewFAQRepository()}
}

func NewFAQControllerWithStore(store FAQStore) *FAQController {
	return &FAQController{repo: store}
}

// GetFAQs godoc
// @Summary Get all FAQs
// @Description Get FAQs ordered by their admin-editable sort key
// @Tags FAQs
// @Produce json
// @Success 200 {object} models.Response
// @Router /faqs [get]
func (ctrl *FAQController) GetFAQs(c *gin.Context) {
	faqs, err := ctrl.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch FAQs",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "FAQs retrieved",
		Data:    faqs,
	})
}

// GetFAQByID godoc
// @Summary Get FAQ
// @Description Get a single FAQ by ID
// @Tags FAQs
// @Produce json
// @Param id path int true "FAQ ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /faqs/{id} [get]
func (ctrl *FAQController) GetFAQByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid FAQ id",
		})
		return
	}

	faq, err := ctrl.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "FAQ not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "FAQ retrieved",
		Data:    faq,
	})
}

// CreateFAQ godoc
// @Summary Create FAQ
// @Description Create a new FAQ entry (admin only)
// @Tags FAQs
// @Accept json
// @Produce json
// @Param request body models.CreateFAQRequest true "FAQ data"
// @Security CookieAuth
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /faqs [post]
func (ctrl *FAQController) CreateFAQ(c *gin.Context) {
	var req models.CreateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Question and answer are required",
			Error:   err.Error(),
		})
		return
	}

	faq := &models.FAQ{Question: req.Question, Answer: req.Answer, Order: req.Order}
	if err := ctrl.repo.Create(faq); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create FAQ",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "FAQ created",
		Data:    faq,
	})
}

// UpdateFAQ godoc
// @Summary Update FAQ
// @Description Update question, answer or order; at least one must be given (admin only)
// @Tags FAQs
// @Accept json
// @Produce json
// @Param id path int true "FAQ ID"
// @Param request body models.UpdateFAQRequest true "Fields to update"
// @Security CookieAuth
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /faqs/{id} [patch]
func (ctrl *FAQController) UpdateFAQ(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid FAQ id",
		})
		return
	}

	var req models.UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid FAQ data",
			Error:   err.Error(),
		})
		return
	}

	noFields := req.Question == nil && req.Answer == nil && req.Order == nil
	emptyText := (req.Question != nil && *req.Question == "") ||
		(req.Answer != nil && *req.Answer == "")
	if noFields || emptyText {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid data for update",
		})
		return
	}

	faq, err := ctrl.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "FAQ not found",
		})
		return
	}

	if req.Question != nil {
		faq.Question = *req.Question
	}
	if req.Answer != nil {
		faq.Answer = *req.Answer
	}
	if req.Order != nil {
		faq.Order = *req.Order
	}

	if err := ctrl.repo.Update(faq); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update FAQ",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "FAQ updated",
		Data:    faq,
	})
}

// DeleteFAQ godoc
// @Summary Delete FAQ
// @Description Delete an FAQ entry (admin only)
// @Tags FAQs
// @Produce json
// @Param id path int true "FAQ ID"
// @Security CookieAuth
// @Success 204 "No Content"
// @Failure 404 {object} models.ErrorResponse
// @Router /faqs/{id} [delete]
func (ctrl *FAQController) DeleteFAQ(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid FAQ id",
		})
		return
	}

	deleted, err := ctrl.repo.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete FAQ",
			Error:   err.Error(),
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "FAQ not found",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
