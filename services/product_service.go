package services

import (
	"errors"
	"math"

	"storefront-api/models"
	"storefront-api/repositories"
	"storefront-api/utils"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSlugTaken       = errors.New("slug already in use")
	ErrInvalidProduct  = errors.New("invalid product data")
)

// ProductStore is the persistence surface the service needs.
type ProductStore interface {
	List(opts models.ProductListOptions) ([]models.Product, int, error)
	GetBySlug(slug string) (*models.Product, error)
	SlugExists(slug string) (bool, error)
	Create(product *models.Product, collectionIDs []int) error
	Update(product *models.Product, collectionIDs []int, replaceVariants bool) error
	SoftDelete(slug string) (bool, error)
}

type ProductService struct {
	repo ProductStore
}

func NewProductService() *ProductService {
	return &ProductService{repo: repositories.NewProductRepository()}
}

func NewProductServiceWithStore(store ProductStore) *ProductService {
	return &ProductService{repo: store}
}

// NormalizeListOptions clamps malformed paging values instead of rejecting
// them, so stale client state never turns into an error.
func NormalizeListOptions(opts models.ProductListOptions) models.ProductListOptions {
	if opts.Page < 1 {
		opts.Page = defaultPage
	}
	if opts.Limit < 1 {
		opts.Limit = defaultLimit
	}
	if opts.Limit > maxLimit {
		opts.Limit = maxLimit
	}
	switch opts.SortBy {
	case models.SortNewest, models.SortOldest, models.SortNameAsc,
		models.SortNameDesc, models.SortPriceAsc, models.SortPriceDesc:
	default:
		opts.SortBy = models.SortNewest
	}
	return opts
}

func (s *ProductService) GetProducts(opts models.ProductListOptions) ([]models.Product, models.Pagination, error) {
	opts = NormalizeListOptions(opts)

	products, total, err := s.repo.List(opts)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	for i := range products {
		products[i].ResolveDisplayPrice()
		if !opts.IncludePriceVariants {
			products[i].PriceVariants = nil
		}
	}

	pagination := models.Pagination{
		Page:       opts.Page,
		Limit:      opts.Limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(opts.Limit))),
	}
	return products, pagination, nil
}

func (s *ProductService) GetProductBySlug(slug string) (*models.Product, error) {
	product, err := s.repo.GetBySlug(slug)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	product.ResolveDisplayPrice()
	return product, nil
}

func (s *ProductService) CreateProduct(req models.CreateProductRequest) (*models.Product, error) {
	if req.HasVariations {
		if len(req.PriceVariants) == 0 {
			return nil, ErrInvalidProduct
		}
	} else if req.BasePrice <= 0 {
		return nil, ErrInvalidProduct
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if slug == "" {
		return nil, ErrInvalidProduct
	}

	taken, err := s.repo.SlugExists(slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	product := &models.Product{
		Slug:          slug,
		Name:          req.Name,
		Description:   req.Description,
		BasePrice:     req.BasePrice,
		BaseStock:     req.BaseStock,
		HasVariations: req.HasVariations,
		SpecialLabel:  req.SpecialLabel,
		CategoryID:    req.CategoryID,
		ImagePublicID: req.ImagePublicID,
		IsActive:      true,
	}
	if req.ImageURL != "" {
		product.FeaturedImage = &models.ImageRef{URL: req.ImageURL, Alt: req.ImageAlt}
	}
	for _, v := range req.PriceVariants {
		product.PriceVariants = append(product.PriceVariants, models.PriceVariant{
			Name: v.Name, Price: v.Price, Stock: v.Stock,
		})
	}

	if err := s.repo.Create(product, req.CollectionIDs); err != nil {
		return nil, err
	}

	product.ResolveDisplayPrice()
	return product, nil
}

func (s *ProductService) UpdateProduct(slug string, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetBySlug(slug)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.BasePrice != nil {
		product.BasePrice = *req.BasePrice
	}
	if req.BaseStock != nil {
		product.BaseStock = req.BaseStock
	}
	if req.HasVariations != nil {
		product.HasVariations = *req.HasVariations
	}
	if req.SpecialLabel != nil {
		product.SpecialLabel = *req.SpecialLabel
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.ImageURL != nil {
		if *req.ImageURL == "" {
			product.FeaturedImage = nil
		} else {
			alt := ""
			if product.FeaturedImage != nil {
				alt = product.FeaturedImage.Alt
			}
			if req.ImageAlt != nil {
				alt = *req.ImageAlt
			}
			product.FeaturedImage = &models.ImageRef{URL: *req.ImageURL, Alt: alt}
		}
	} else if req.ImageAlt != nil && product.FeaturedImage != nil {
		product.FeaturedImage.Alt = *req.ImageAlt
	}
	if req.ImagePublicID != nil {
		product.ImagePublicID = *req.ImagePublicID
	}

	replaceVariants := req.PriceVariants != nil
	if replaceVariants {
		product.PriceVariants = nil
		for _, v := range req.PriceVariants {
			product.PriceVariants = append(product.PriceVariants, models.PriceVariant{
				Name: v.Name, Price: v.Price, Stock: v.Stock,
			})
		}
	}

	if product.HasVariations && len(product.PriceVariants) == 0 {
		return nil, ErrInvalidProduct
	}
	if !product.HasVariations && product.BasePrice <= 0 {
		return nil, ErrInvalidProduct
	}

	if err := s.repo.Update(product, req.CollectionIDs, replaceVariants); err != nil {
		return nil, err
	}

	product.ResolveDisplayPrice()
	return product, nil
}

func (s *ProductService) DeleteProduct(slug string) error {
	deleted, err := s.repo.SoftDelete(slug)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}
