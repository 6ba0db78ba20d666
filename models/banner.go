package models

import "time"

type Banner struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	ImageURL      string    `json:"imageUrl"`
	ImagePublicID string    `json:"-"`
	LinkURL       string    `json:"linkUrl,omitempty"`
	Order         int       `json:"order"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}
