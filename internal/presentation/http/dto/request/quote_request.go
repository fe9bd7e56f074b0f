package request

import "github.com/google/uuid"

// AddCatalogItemRequest adds a catalog pick to an open quote
type AddCatalogItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// AddServiceItemRequest adds a service pick to an open quote
type AddServiceItemRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
}

// AddManualItemRequest adds a hand-typed line item to an open quote.
// Quantity and price arrive as free text; broken values fall back
// instead of failing the request.
type AddManualItemRequest struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
}

// UpdateQuoteItemRequest edits a line item of an open quote
type UpdateQuoteItemRequest struct {
	Description *string `json:"description"`
	Quantity    *string `json:"quantity"`
	Price       *string `json:"price"`
}
