package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/masquepolleras/polleras-api/internal/application/service"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/dto/request"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/dto/response"
	"github.com/masquepolleras/polleras-api/pkg/utils"
)

// QuoteHandler handles quote composition HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// Open starts a quote session for a lead
// @Summary Open quote
// @Description Start composing a quote for an inquiry
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lead ID"
// @Success 201 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/leads/{id}/quote [post]
func (h *QuoteHandler) Open(c *gin.Context) {
	leadID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	session, err := h.quoteService.Open(c.Request.Context(), leadID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote session opened", gin.H{"session": session})
}

// Get returns the state of an open quote session
// @Summary Get quote session
// @Description Get the current state of an open quote
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	sessionID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	session, err := h.quoteService.Get(sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote session retrieved", gin.H{"session": session})
}

// AddProduct adds a catalog pick to the quote
// @Summary Add catalog item
// @Description Add a pollera from the catalog at its stored price
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request.AddCatalogItemRequest true "Catalog pick"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/quotes/{id}/items/product [post]
func (h *QuoteHandler) AddProduct(c *gin.Context) {
	sessionID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req request.AddCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.quoteService.AddProduct(c.Request.Context(), sessionID, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added", gin.H{"session": session})
}

// AddService adds a service pick to the quote at price zero
// @Summary Add service item
// @Description Add an offered service; its price is typed in afterwards
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request.AddServiceItemRequest true "Service pick"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/quotes/{id}/items/service [post]
func (h *QuoteHandler) AddService(c *gin.Context) {
	sessionID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req request.AddServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.quoteService.AddService(c.Request.Context(), sessionID, req.ServiceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added", gin.H{"session": session})
}

// AddManual adds a hand-typed line item to the quote
// @Summary Add manual item
// @Description Add a free-form line item with its own description and price
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request.AddManualItemRequest true "Line item"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /admin/quotes/{id}/items [post]
func (h *QuoteHandler) AddManual(c *gin.Context) {
	sessionID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req request.AddManualItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.quoteService.AddManual(sessionID, &service.AddManualItemInput{
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added", gin.H{"session": session})
}

// UpdateItem edits a line item
// @Summary Update line item
// @Description Edit a line item's description, quantity or price
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param itemId path string true "Item ID"
// @Param request body request.UpdateQuoteItemRequest true "Edits"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/quotes/{id}/items/{itemId} [patch]
func (h *QuoteHandler) UpdateItem(c *gin.Context) {
	sessionID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}
	itemID, err := utils.ParseUUID(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateQuoteItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.quoteService.UpdateItem(sessionID, itemID, &service.UpdateItemInput{
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated", gin.H{"session": session})
}

// RemoveItem deletes a line item
// @Summary Remove line item
// @Description Remove a line item; removing an absent item is a no-op
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/quotes/{id}/items/{itemId} [delete]
func (h *QuoteHandler) RemoveItem(c *gin.Context) {
	sessionID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}
	itemID, err := utils.ParseUUID(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	session, err := h.quoteService.RemoveItem(sessionID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed", gin.H{"session": session})
}

// ExportPDF renders the quote and commits its number
// @Summary Export quote PDF
// @Description Download the quote as a PDF; the quote number is committed on success
// @Tags quotes
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Session ID"
// @Success 200
// @Failure 400 {object} response.APIResponse
// @Router /admin/quotes/{id}/pdf [post]
func (h *QuoteHandler) ExportPDF(c *gin.Context) {
	sessionID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	export, err := h.quoteService.ExportPDF(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", export.Content)
}

// WhatsAppLink builds the WhatsApp handoff URL
// @Summary WhatsApp link
// @Description Get a wa.me link carrying the quote summary
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /admin/quotes/{id}/whatsapp [get]
func (h *QuoteHandler) WhatsAppLink(c *gin.Context) {
	sessionID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	link, err := h.quoteService.WhatsAppLink(sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "WhatsApp link generated", gin.H{"link": link})
}

// Close discards an open quote session
// @Summary Close quote session
// @Description Discard an open quote without issuing a number
// @Tags quotes
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204
// @Router /admin/quotes/{id} [delete]
func (h *QuoteHandler) Close(c *gin.Context) {
	sessionID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	h.quoteService.Close(sessionID)
	response.NoContent(c)
}
