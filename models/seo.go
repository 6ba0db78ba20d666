package models

import "time"

type PageSeo struct {
	ID          int       `json:"id"`
	PageSlug    string    `json:"pageSlug"`
	PageType    string    `json:"pageType"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    string    `json:"keywords,omitempty"`
	OgImage     string    `json:"ogImage,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
