package models

// Sort keys accepted by the product listing. Anything else falls back to
// SortNewest.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// ProductListOptions carries every filter the product listing understands.
// Supplied constraints combine with AND.
type ProductListOptions struct {
	Page                 int
	Limit                int
	Search               string
	CategorySlug         string
	CollectionID         int
	SpecialLabel         string
	SortBy               string
	IncludePriceVariants bool
}
