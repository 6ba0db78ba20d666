package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required,min=3"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PriceVariantRequest struct {
	Name  string `json:"name" binding:"required"`
	Price int    `json:"price" binding:"required,gt=0"`
	Stock int    `json:"stock" binding:"gte=0"`
}

type CreateProductRequest struct {
	Name          string                `json:"name" binding:"required"`
	Slug          string                `json:"slug"`
	Description   string                `json:"description"`
	BasePrice     int                   `json:"basePrice"`
	BaseStock     *int                  `json:"baseStock"`
	HasVariations bool                  `json:"hasVariations"`
	SpecialLabel  string                `json:"specialLabel" binding:"omitempty,oneof=new best sale"`
	CategoryID    int                   `json:"categoryId" binding:"required"`
	CollectionIDs []int                 `json:"collectionIds"`
	ImageURL      string                `json:"imageUrl"`
	ImageAlt      string                `json:"imageAlt"`
	ImagePublicID string                `json:"imagePublicId"`
	PriceVariants []PriceVariantRequest `json:"priceVariants"`
}

type UpdateProductRequest struct {
	Name          *string               `json:"name"`
	Description   *string               `json:"description"`
	BasePrice     *int                  `json:"basePrice"`
	BaseStock     *int                  `json:"baseStock"`
	HasVariations *bool                 `json:"hasVariations"`
	SpecialLabel  *string               `json:"specialLabel" binding:"omitempty,oneof=new best sale"`
	CategoryID    *int                  `json:"categoryId"`
	CollectionIDs []int                 `json:"collectionIds"`
	ImageURL      *string               `json:"imageUrl"`
	ImageAlt      *string               `json:"imageAlt"`
	ImagePublicID *string               `json:"imagePublicId"`
	PriceVariants []PriceVariantRequest `json:"priceVariants"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=2"`
}

type CollectionRequest struct {
	Name string `json:"name" binding:"required,min=2"`
}

type CreateFAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Order    int    `json:"order"`
}

type UpdateFAQRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Order    *int    `json:"order"`
}

type BannerRequest struct {
	Title         string `json:"title"`
	ImageURL      string `json:"imageUrl" binding:"required"`
	ImagePublicID string `json:"imagePublicId"`
	LinkURL       string `json:"linkUrl"`
	Order         int    `json:"order"`
	IsActive      *bool  `json:"isActive"`
}

type UpdateBannerRequest struct {
	Title    *string `json:"title"`
	ImageURL *string `json:"imageUrl"`
	LinkURL  *string `json:"linkUrl"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

type PageSeoRequest struct {
	PageType    string `json:"pageType"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Keywords    string `json:"keywords"`
	OgImage     string `json:"ogImage"`
}

type CloudinaryDeleteRequest struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
