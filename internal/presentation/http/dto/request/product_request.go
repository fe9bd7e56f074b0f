package request

// CreateProductRequest represents a catalog creation request
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Type        int     `json:"type" binding:"min=0,max=5"`
	Technique   int     `json:"technique" binding:"min=0,max=3"`
	Price       float64 `json:"price" binding:"min=0"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
}

// UpdateProductRequest represents a catalog update request
type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Type        *int     `json:"type" binding:"omitempty,min=0,max=5"`
	Technique   *int     `json:"technique" binding:"omitempty,min=0,max=3"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}

// ProductFilterRequest represents catalog filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	Type      string `form:"type"`
	Technique string `form:"technique"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
