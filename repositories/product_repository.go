package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-api/config"
	"storefront-api/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `p.id, p.slug, p.name, p.description, p.base_price, p.base_stock,
	p.has_variations, p.special_label, p.category_id, p.image_url, p.image_alt,
	p.image_public_id, p.is_active, p.created_at, p.updated_at, c.id, c.name, c.slug`

// displayPriceExpr is the price used for ordering: the cheapest variant
// when variants exist, the base price otherwise.
const displayPriceExpr = `COALESCE((SELECT MIN(v.price) FROM price_variants v WHERE v.product_id = p.id), p.base_price)`

// BuildProductFilter translates listing options into a WHERE clause and its
// positional arguments. All constraints are conjunctive.
func BuildProductFilter(opts models.ProductListOptions) (string, []interface{}) {
	where := "WHERE p.is_active = TRUE"
	args := []interface{}{}
	paramIndex := 1

	if opts.Search != "" {
		where += fmt.Sprintf(" AND LOWER(p.name) LIKE LOWER($%d)", paramIndex)
		args = append(args, "%"+opts.Search+"%")
		paramIndex++
	}

	if opts.CategorySlug != "" {
		where += fmt.Sprintf(" AND c.slug = $%d", paramIndex)
		args = append(args, opts.CategorySlug)
		paramIndex++
	}

	if opts.CollectionID > 0 {
		where += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM product_collections pc WHERE pc.product_id = p.id AND pc.collection_id = $%d)", paramIndex)
		args = append(args, opts.CollectionID)
		paramIndex++
	}

	if opts.SpecialLabel != "" {
		where += fmt.Sprintf(" AND p.special_label = $%d", paramIndex)
		args = append(args, opts.SpecialLabel)
		paramIndex++
	}

	return where, args
}

// SortClause maps a sort key to its ORDER BY expression. Unknown keys sort
// by newest.
func SortClause(sortBy string) string {
	switch sortBy {
	case models.SortOldest:
		return "ORDER BY p.created_at ASC"
	case models.SortNameAsc:
		return "ORDER BY LOWER(p.name) ASC"
	case models.SortNameDesc:
		return "ORDER BY LOWER(p.name) DESC"
	case models.SortPriceAsc:
		return "ORDER BY " + displayPriceExpr + " ASC"
	case models.SortPriceDesc:
		return "ORDER BY " + displayPriceExpr + " DESC"
	default:
		return "ORDER BY p.created_at DESC"
	}
}

func (r *ProductRepository) List(opts models.ProductListOptions) ([]models.Product, int, error) {
	where, args := BuildProductFilter(opts)
	ctx := context.Background()

	var total int
	countQuery := "SELECT COUNT(*) FROM products p JOIN categories c ON c.id = p.category_id " + where
	if err := config.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (opts.Page - 1) * opts.Limit
	query := fmt.Sprintf(
		"SELECT %s FROM products p JOIN categories c ON c.id = p.category_id %s %s LIMIT $%d OFFSET $%d",
		productColumns, where, SortClause(opts.SortBy), len(args)+1, len(args)+2,
	)
	args = append(args, opts.Limit, offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachVariants(products); err != nil {
		return nil, 0, err
	}
	if err := r.attachCollections(products); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductRepository) GetBySlug(slug string) (*models.Product, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM products p JOIN categories c ON c.id = p.category_id WHERE p.slug = $1 AND p.is_active = TRUE",
		productColumns,
	)

	row := config.DB.QueryRow(context.Background(), query, slug)
	p, err := scanProduct(row)
	if err != nil {
		return nil, err
	}

	products := []models.Product{*p}
	if err := r.attachVariants(products); err != nil {
		return nil, err
	}
	if err := r.attachCollections(products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

func (r *ProductRepository) SlugExists(slug string) (bool, error) {
	var count int
	err := config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM products WHERE slug = $1", slug).Scan(&count)
	return count > 0, err
}

func (r *ProductRepository) Create(product *models.Product, collectionIDs []int) error {
	ctx := context.Background()
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	imageURL, imageAlt := "", ""
	if product.FeaturedImage != nil {
		imageURL = product.FeaturedImage.URL
		imageAlt = product.FeaturedImage.Alt
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO products (slug, name, description, base_price, base_stock, has_variations,
			special_label, category_id, image_url, image_alt, image_public_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE, $12, $12)
		RETURNING id, created_at, updated_at`,
		product.Slug, product.Name, product.Description, product.BasePrice, product.BaseStock,
		product.HasVariations, product.SpecialLabel, product.CategoryID,
		imageURL, imageAlt, product.ImagePublicID, now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range product.PriceVariants {
		v := &product.PriceVariants[i]
		v.ProductID = product.ID
		err = tx.QueryRow(ctx,
			"INSERT INTO price_variants (product_id, name, price, stock) VALUES ($1, $2, $3, $4) RETURNING id",
			v.ProductID, v.Name, v.Price, v.Stock,
		).Scan(&v.ID)
		if err != nil {
			return err
		}
	}

	for _, collectionID := range collectionIDs {
		if _, err := tx.Exec(ctx,
			"INSERT INTO product_collections (product_id, collection_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			product.ID, collectionID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Update persists the full product row. Variants are replaced when
// replaceVariants is set; collection links are replaced when collectionIDs
// is non-nil.
func (r *ProductRepository) Update(product *models.Product, collectionIDs []int, replaceVariants bool) error {
	ctx := context.Background()
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	imageURL, imageAlt := "", ""
	if product.FeaturedImage != nil {
		imageURL = product.FeaturedImage.URL
		imageAlt = product.FeaturedImage.Alt
	}

	_, err = tx.Exec(ctx, `
		UPDATE products SET name = $1, description = $2, base_price = $3, base_stock = $4,
			has_variations = $5, special_label = $6, category_id = $7,
			image_url = $8, image_alt = $9, image_public_id = $10, updated_at = $11
		WHERE id = $12`,
		product.Name, product.Description, product.BasePrice, product.BaseStock,
		product.HasVariations, product.SpecialLabel, product.CategoryID,
		imageURL, imageAlt, product.ImagePublicID, time.Now(), product.ID,
	)
	if err != nil {
		return err
	}

	if replaceVariants {
		if _, err := tx.Exec(ctx, "DELETE FROM price_variants WHERE product_id = $1", product.ID); err != nil {
			return err
		}
		for i := range product.PriceVariants {
			v := &product.PriceVariants[i]
			v.ProductID = product.ID
			err = tx.QueryRow(ctx,
				"INSERT INTO price_variants (product_id, name, price, stock) VALUES ($1, $2, $3, $4) RETURNING id",
				v.ProductID, v.Name, v.Price, v.Stock,
			).Scan(&v.ID)
			if err != nil {
				return err
			}
		}
	}

	if collectionIDs != nil {
		if _, err := tx.Exec(ctx, "DELETE FROM product_collections WHERE product_id = $1", product.ID); err != nil {
			return err
		}
		for _, collectionID := range collectionIDs {
			if _, err := tx.Exec(ctx,
				"INSERT INTO product_collections (product_id, collection_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
				product.ID, collectionID); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

// SoftDelete deactivates a product by slug. Returns false when no active
// product carries the slug.
func (r *ProductRepository) SoftDelete(slug string) (bool, error) {
	tag, err := config.DB.Exec(context.Background(),
		"UPDATE products SET is_active = FALSE, updated_at = $1 WHERE slug = $2 AND is_active = TRUE",
		time.Now(), slug)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ProductRepository) CountByCategory(categoryID int) (int, error) {
	var count int
	err := config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM products WHERE category_id = $1 AND is_active = TRUE",
		categoryID).Scan(&count)
	return count, err
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	var cat models.Category
	var imageURL, imageAlt string

	err := row.Scan(
		&p.ID, &p.Slug, &p.Name, &p.Description, &p.BasePrice, &p.BaseStock,
		&p.HasVariations, &p.SpecialLabel, &p.CategoryID, &imageURL, &imageAlt,
		&p.ImagePublicID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		&cat.ID, &cat.Name, &cat.Slug,
	)
	if err != nil {
		return nil, err
	}

	p.Category = &cat
	if imageURL != "" {
		p.FeaturedImage = &models.ImageRef{URL: imageURL, Alt: imageAlt}
	}
	return &p, nil
}

func (r *ProductRepository) attachVariants(products []models.Product) error {
	ids := productIDs(products)
	if len(ids) == 0 {
		return nil
	}

	rows, err := config.DB.Query(context.Background(),
		"SELECT id, product_id, name, price, stock FROM price_variants WHERE product_id = ANY($1) ORDER BY price",
		ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byProduct := map[int][]models.PriceVariant{}
	for rows.Next() {
		var v models.PriceVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.Price, &v.Stock); err != nil {
			return err
		}
		byProduct[v.ProductID] = append(byProduct[v.ProductID], v)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range products {
		products[i].PriceVariants = byProduct[products[i].ID]
	}
	return nil
}

func (r *ProductRepository) attachCollections(products []models.Product) error {
	ids := productIDs(products)
	if len(ids) == 0 {
		return nil
	}

	rows, err := config.DB.Query(context.Background(), `
		SELECT pc.product_id, col.id, col.name, col.created_at
		FROM product_collections pc
		JOIN collections col ON col.id = pc.collection_id
		WHERE pc.product_id = ANY($1)
		ORDER BY col.name`,
		ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byProduct := map[int][]models.Collection{}
	for rows.Next() {
		var productID int
		var col models.Collection
		if err := rows.Scan(&productID, &col.ID, &col.Name, &col.CreatedAt); err != nil {
			return err
		}
		byProduct[productID] = append(byProduct[productID], col)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range products {
		products[i].Collections = byProduct[products[i].ID]
	}
	return nil
}

func productIDs(products []models.Product) []int {
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

// IsNotFound reports whether err means the row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
