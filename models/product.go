package models

import "time"

// Special labels are marketing tags affecting display only.
const (
	LabelNew  = "new"
	LabelBest = "best"
	LabelSale = "sale"
)

type ImageRef struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

type PriceVariant struct {
	ID        int    `json:"id"`
	ProductID int    `json:"-"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Stock     int    `json:"stock"`
}

type Product struct {
	ID            int            `json:"id"`
	Slug          string         `json:"slug"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	BasePrice     int            `json:"basePrice"`
	BaseStock     *int           `json:"baseStock"`
	HasVariations bool           `json:"hasVariations"`
	SpecialLabel  string         `json:"specialLabel,omitempty"`
	CategoryID    int            `json:"categoryId"`
	Category      *Category      `json:"category,omitempty"`
	Collections   []Collection   `json:"collections,omitempty"`
	FeaturedImage *ImageRef      `json:"featuredImage,omitempty"`
	ImagePublicID string         `json:"-"`
	DisplayPrice  int            `json:"displayPrice"`
	PriceVariants []PriceVariant `json:"priceVariants,omitempty"`
	IsActive      bool           `json:"isActive"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// ResolveDisplayPrice picks the price shown on cards and listings. When a
// product has variations the base price is not authoritative and the
// cheapest variant wins.
func (p *Product) ResolveDisplayPrice() {
	if !p.HasVariations || len(p.PriceVariants) == 0 {
		p.DisplayPrice = p.BasePrice
		return
	}

	min := p.PriceVariants[0].Price
	for _, v := range p.PriceVariants[1:] {
		if v.Price < min {
			min = v.Price
		}
	}
	p.DisplayPrice = min
}

// InStock reports whether the product can be sold: variant stock when
// variations exist, base stock otherwise (nil base stock means untracked).
func (p *Product) InStock() bool {
	if p.HasVariations {
		for _, v := range p.PriceVariants {
			if v.Stock > 0 {
				return true
			}
		}
		return false
	}
	return p.BaseStock == nil || *p.BaseStock > 0
}
