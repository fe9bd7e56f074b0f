package request

// CreateLeadRequest carries the public contact-form submission
type CreateLeadRequest struct {
	Name      string  `json:"name" binding:"required,min=2,max=255"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Service   *string `json:"service" binding:"omitempty,max=255"`
	EventDate *string `json:"event_date"` // YYYY-MM-DD
	Message   *string `json:"message"`
}

// UpdateLeadRequest represents a lead update request
type UpdateLeadRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Service   *string `json:"service" binding:"omitempty,max=255"`
	EventDate *string `json:"event_date"` // YYYY-MM-DD
	Message   *string `json:"message"`
}

// UpdateLeadStatusRequest moves a lead through the pipeline
type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// LeadFilterRequest represents lead filter parameters
type LeadFilterRequest struct {
	Search    string `form:"search"`
	Status    string `form:"status"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
