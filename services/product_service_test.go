package services

import (
	"testing"

	"storefront-api/models"
)

type fakeProductStore struct {
	products    []models.Product
	total       int
	listOpts    models.ProductListOptions
	existing    map[string]*models.Product
	takenSlugs  map[string]bool
	created     *models.Product
	deleted     []string
	deleteFound bool
}

func (f *fakeProductStore) List(opts models.ProductListOptions) ([]models.Product, int, error) {
	f.listOpts = opts
	return f.products, f.total, nil
}

func (f *fakeProductStore) GetBySlug(slug string) (*models.Product, error) {
	if p, ok := f.existing[slug]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, errNoRows{}
}

func (f *fakeProductStore) SlugExists(slug string) (bool, error) {
	return f.takenSlugs[slug], nil
}

func (f *fakeProductStore) Create(product *models.Product, collectionIDs []int) error {
	product.ID = 101
	f.created = product
	return nil
}

func (f *fakeProductStore) Update(product *models.Product, collectionIDs []int, replaceVariants bool) error {
	return nil
}

func (f *fakeProductStore) SoftDelete(slug string) (bool, error) {
	f.deleted = append(f.deleted, slug)
	return f.deleteFound, nil
}

type errNoRows struct{}

func (errNoRows) Error() string { return "no rows in result set" }

func TestNormalizeListOptionsClamping(t *testing.T) {
	tests := []struct {
		name      string
		in        models.ProductListOptions
		wantPage  int
		wantLimit int
		wantSort  string
	}{
		{"defaults", models.ProductListOptions{}, 1, 10, models.SortNewest},
		{"negative page", models.ProductListOptions{Page: -3, Limit: 20}, 1, 20, models.SortNewest},
		{"zero limit", models.ProductListOptions{Page: 2}, 2, 10, models.SortNewest},
		{"limit capped", models.ProductListOptions{Page: 1, Limit: 5000}, 1, 100, models.SortNewest},
		{"known sort kept", models.ProductListOptions{SortBy: models.SortPriceAsc}, 1, 10, models.SortPriceAsc},
		{"unknown sort falls back", models.ProductListOptions{SortBy: "sideways"}, 1, 10, models.SortNewest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeListOptions(tt.in)
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit || got.SortBy != tt.wantSort {
				t.Errorf("got page=%d limit=%d sort=%q, want page=%d limit=%d sort=%q",
					got.Page, got.Limit, got.SortBy, tt.wantPage, tt.wantLimit, tt.wantSort)
			}
		})
	}
}

func TestGetProductsPaginationMeta(t *testing.T) {
	store := &fakeProductStore{total: 25}
	svc := NewProductServiceWithStore(store)

	_, pagination, err := svc.GetProducts(models.ProductListOptions{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("GetProducts: %v", err)
	}

	if pagination.Page != 3 || pagination.Limit != 10 {
		t.Errorf("pagination window = %d/%d", pagination.Page, pagination.Limit)
	}
	if pagination.Total != 25 {
		t.Errorf("Total = %d, want 25", pagination.Total)
	}
	if pagination.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want ceil(25/10)=3", pagination.TotalPages)
	}
}

func TestGetProductsPageBeyondRange(t *testing.T) {
	store := &fakeProductStore{products: []models.Product{}, total: 4}
	svc := NewProductServiceWithStore(store)

	products, pagination, err := svc.GetProducts(models.ProductListOptions{Page: 9, Limit: 10})
	if err != nil {
		t.Fatalf("GetProducts: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("expected empty page, got %d products", len(products))
	}
	if pagination.Page != 9 || pagination.Total != 4 || pagination.TotalPages != 1 {
		t.Errorf("pagination = %+v", pagination)
	}
}

func TestGetProductsVariantHandling(t *testing.T) {
	store := &fakeProductStore{
		products: []models.Product{
			{
				Name:          "Pour Over Kit",
				BasePrice:     50000,
				HasVariations: true,
				PriceVariants: []models.PriceVariant{
					{Name: "Full", Price: 80000},
					{Name: "Starter", Price: 45000},
				},
			},
		},
		total: 1,
	}
	svc := NewProductServiceWithStore(store)

	products, _, err := svc.GetProducts(models.ProductListOptions{})
	if err != nil {
		t.Fatalf("GetProducts: %v", err)
	}
	if products[0].DisplayPrice != 45000 {
		t.Errorf("DisplayPrice = %d, want cheapest variant 45000", products[0].DisplayPrice)
	}
	if products[0].PriceVariants != nil {
		t.Error("variants should be stripped when includePriceVariants is false")
	}

	store.products[0].PriceVariants = []models.PriceVariant{
		{Name: "Full", Price: 80000},
		{Name: "Starter", Price: 45000},
	}
	products, _, err = svc.GetProducts(models.ProductListOptions{IncludePriceVariants: true})
	if err != nil {
		t.Fatalf("GetProducts: %v", err)
	}
	if len(products[0].PriceVariants) != 2 {
		t.Errorf("variants = %d, want 2 when requested", len(products[0].PriceVariants))
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewProductServiceWithStore(&fakeProductStore{takenSlugs: map[string]bool{}})

	_, err := svc.CreateProduct(models.CreateProductRequest{Name: "No Price", CategoryID: 1})
	if err != ErrInvalidProduct {
		t.Errorf("missing price: err = %v, want ErrInvalidProduct", err)
	}

	_, err = svc.CreateProduct(models.CreateProductRequest{
		Name: "Varied", CategoryID: 1, HasVariations: true,
	})
	if err != ErrInvalidProduct {
		t.Errorf("variations without variants: err = %v, want ErrInvalidProduct", err)
	}
}

func TestCreateProductGeneratesSlug(t *testing.T) {
	store := &fakeProductStore{takenSlugs: map[string]bool{}}
	svc := NewProductServiceWithStore(store)

	product, err := svc.CreateProduct(models.CreateProductRequest{
		Name: "Single Origin Ethiopia", CategoryID: 2, BasePrice: 120000,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if product.Slug != "single-origin-ethiopia" {
		t.Errorf("Slug = %q", product.Slug)
	}
	if !product.IsActive {
		t.Error("created product must be active")
	}
	if store.created == nil {
		t.Fatal("store.Create was not called")
	}
}

func TestCreateProductRejectsTakenSlug(t *testing.T) {
	store := &fakeProductStore{takenSlugs: map[string]bool{"house-blend": true}}
	svc := NewProductServiceWithStore(store)

	_, err := svc.CreateProduct(models.CreateProductRequest{
		Name: "House Blend", CategoryID: 1, BasePrice: 10000,
	})
	if err != ErrSlugTaken {
		t.Errorf("err = %v, want ErrSlugTaken", err)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := NewProductServiceWithStore(&fakeProductStore{existing: map[string]*models.Product{}})

	name := "New Name"
	_, err := svc.UpdateProduct("ghost", models.UpdateProductRequest{Name: &name})
	if err == nil {
		t.Error("expected an error for an unknown slug")
	}
}

func TestDeleteProduct(t *testing.T) {
	store := &fakeProductStore{deleteFound: true}
	svc := NewProductServiceWithStore(store)

	if err := svc.DeleteProduct("house-blend"); err != nil {
		t.Errorf("DeleteProduct: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "house-blend" {
		t.Errorf("deleted = %v", store.deleted)
	}

	store.deleteFound = false
	if err := svc.DeleteProduct("ghost"); err != ErrProductNotFound {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}
