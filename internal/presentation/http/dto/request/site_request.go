package request

// ServiceItemRequest carries the editable fields of an offered service
type ServiceItemRequest struct {
	Title       string  `json:"title" binding:"required,min=2,max=255"`
	Description *string `json:"description"`
	IconName    *string `json:"icon_name" binding:"omitempty,max=100"`
	Image       *string `json:"image" binding:"omitempty,max=512"`
	CTA         *string `json:"cta" binding:"omitempty,max=255"`
}

// GalleryItemRequest carries the editable fields of a gallery photo
type GalleryItemRequest struct {
	URL      string  `json:"url" binding:"required,max=512"`
	Category *string `json:"category" binding:"omitempty,max=100"`
}

// UpsertContentRequest replaces a block of site copy
type UpsertContentRequest struct {
	Value string `json:"value"`
}

// GenerateDesignRequest asks for an AI-generated pollera design
type GenerateDesignRequest struct {
	Prompt string `json:"prompt" binding:"required,min=3"`
}
