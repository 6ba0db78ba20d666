package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront-api/config"
	"storefront-api/models"
	"storefront-api/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{productService: services.NewProductService()}
}

func productCacheKey(opts models.ProductListOptions) string {
	return fmt.Sprintf("products_list_p%d_l%d_q%s_c%s_col%d_lab%s_s%s_v%t",
		opts.Page, opts.Limit, opts.Search, opts.CategorySlug,
		opts.CollectionID, opts.SpecialLabel, opts.SortBy, opts.IncludePriceVariants)
}

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// GetProducts godoc
// @Summary List products
// @Description Paginated product listing with conjunctive filters
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Case-insensitive name search"
// @Param categorySlug query string false "Filter by category slug"
// @Param collectionId query int false "Filter by collection id"
// @Param specialLabel query string false "Filter by label" Enums(new, best, sale)
// @Param sortBy query string false "Sort key" Enums(newest, oldest, name_asc, name_desc, price_asc, price_desc)
// @Param includePriceVariants query bool false "Include price variant detail"
// @Success 200 {object} models.ProductListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	collectionID, _ := strconv.Atoi(c.Query("collectionId"))

	opts := services.NormalizeListOptions(models.ProductListOptions{
		Page:                 page,
		Limit:                limit,
		Search:               strings.TrimSpace(c.Query("search")),
		CategorySlug:         strings.TrimSpace(c.Query("categorySlug")),
		CollectionID:         collectionID,
		SpecialLabel:         strings.TrimSpace(c.Query("specialLabel")),
		SortBy:               strings.TrimSpace(c.Query("sortBy")),
		IncludePriceVariants: c.Query("includePriceVariants") == "true",
	})

	cacheKey := productCacheKey(opts)
	ctx := context.Background()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	products, pagination, err := ctrl.productService.GetProducts(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch products",
			Error:   err.Error(),
		})
		return
	}

	response := models.ProductListResponse{
		Success:    true,
		Message:    "Products retrieved",
		Data:       products,
		Pagination: pagination,
	}

	if config.RedisClient != nil {
		if jsonData, err := json.Marshal(response); err == nil {
			config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetProductBySlug godoc
// @Summary Get product
// @Description Get a single product with its price variants
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{slug} [get]
func (ctrl *ProductController) GetProductBySlug(c *gin.Context) {
	product, err := ctrl.productService.GetProductBySlug(c.Param("slug"))
	if err != nil {
		if err == services.ErrProductNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch product",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data:    product,
	})
}

// CreateProduct godoc
// @Summary Create product
// @Description Create a new product (admin only)
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product data"
// @Security CookieAuth
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product data",
			Error:   err.Error(),
		})
		return
	}

	product, err := ctrl.productService.CreateProduct(req)
	if err != nil {
		switch err {
		case services.ErrInvalidProduct:
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Name, category and a price or variants are required",
			})
		case services.ErrSlugTaken:
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "A product with this slug already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to create product",
				Error:   err.Error(),
			})
		}
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Product created",
		Data:    product,
	})
}

// UpdateProduct godoc
// @Summary Update product
// @Description Partially update a product by slug (admin only)
// @Tags Products
// @Accept json
// @Produce json
// @Param slug path string true "Product slug"
// @Param request body models.UpdateProductRequest true "Fields to update"
// @Security CookieAuth
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{slug} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product data",
			Error:   err.Error(),
		})
		return
	}

	product, err := ctrl.productService.UpdateProduct(c.Param("slug"), req)
	if err != nil {
		switch err {
		case services.ErrProductNotFound:
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Product not found",
			})
		case services.ErrInvalidProduct:
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Update would leave the product without a valid price",
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to update product",
				Error:   err.Error(),
			})
		}
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product updated",
		Data:    product,
	})
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Soft-delete a product by slug (admin only)
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Security CookieAuth
// @Success 204 "No Content"
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{slug} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	err := ctrl.productService.DeleteProduct(c.Param("slug"))
	if err != nil {
		if err == services.ErrProductNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete product",
			Error:   err.Error(),
		})
		return
	}

	invalidateProductCache()
	c.Status(http.StatusNoContent)
}
