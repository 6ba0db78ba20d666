package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ProductListResponse struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message"`
	Data       []Product  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	User    SessionUser `json:"user"`
}
