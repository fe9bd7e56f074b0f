package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/masquepolleras/polleras-api/internal/config"
	"github.com/masquepolleras/polleras-api/internal/domain/entity"
	"github.com/masquepolleras/polleras-api/internal/domain/enum"
	"github.com/masquepolleras/polleras-api/internal/domain/repository"
	"github.com/masquepolleras/polleras-api/pkg/apperror"
	"github.com/masquepolleras/polleras-api/pkg/money"
	"github.com/masquepolleras/polleras-api/pkg/pdf"
	"github.com/masquepolleras/polleras-api/pkg/utils"
	"github.com/masquepolleras/polleras-api/pkg/whatsapp"
)

const businessTagline = "Alquiler y Confección de Polleras"

// quoteDateLayout matches es-PA day/month/year formatting
const quoteDateLayout = "02/01/2006"

// QuoteService drives the quote composition workflow: open a working
// session for a lead, add and edit line items, and hand the result off
// as a PDF download or a WhatsApp message.
type QuoteService struct {
	sessions     *QuoteSessionStore
	leadRepo     repository.LeadRepository
	productRepo  repository.ProductRepository
	serviceRepo  repository.ServiceItemRepository
	settingsRepo repository.SettingsRepository
	business     config.BusinessConfig
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	sessions *QuoteSessionStore,
	leadRepo repository.LeadRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceItemRepository,
	settingsRepo repository.SettingsRepository,
	business config.BusinessConfig,
) *QuoteService {
	return &QuoteService{
		sessions:     sessions,
		leadRepo:     leadRepo,
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
		settingsRepo: settingsRepo,
		business:     business,
	}
}

// FormatQuoteNumber renders a counter value as the printed quote number
func FormatQuoteNumber(n int) string {
	return fmt.Sprintf("%04d", n)
}

// AddManualItemInput carries the fields of a hand-typed line item.
// Quantity and price arrive as free text and fall back to safe values.
type AddManualItemInput struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
}

// UpdateItemInput carries a partial edit of an existing line item
type UpdateItemInput struct {
	Description *string `json:"description"`
	Quantity    *string `json:"quantity"`
	Price       *string `json:"price"`
}

// QuoteSessionView is the session state returned to the back office
type QuoteSessionView struct {
	ID          uuid.UUID            `json:"id"`
	Lead        *entity.Lead         `json:"lead"`
	Products    []entity.Product     `json:"products"`
	Services    []entity.ServiceItem `json:"services"`
	Items       []QuoteLineItemView  `json:"items"`
	Total       string               `json:"total"`
	TotalCents  int64                `json:"total_cents"`
	QuoteNumber string               `json:"quote_number"`
}

// QuoteLineItemView is a line item with its derived subtotal
type QuoteLineItemView struct {
	ID          uuid.UUID           `json:"id"`
	Description string              `json:"description"`
	Quantity    int                 `json:"quantity"`
	UnitPrice   string              `json:"unit_price"`
	Subtotal    string              `json:"subtotal"`
	Origin      enum.LineItemOrigin `json:"origin"`
}

// QuoteExport is a rendered PDF ready to send to the client
type QuoteExport struct {
	Filename string
	Content  []byte
}

// Open starts a quote session for a lead. Picker and counter loads are
// best effort: a failed catalog read leaves that picker empty, and a
// failed counter read previews from zero.
func (s *QuoteService) Open(ctx context.Context, leadID uuid.UUID) (*QuoteSessionView, error) {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		log.Printf("quote: failed to load product picker: %v", err)
		products = nil
	}

	services, err := s.serviceRepo.ListAll(ctx)
	if err != nil {
		log.Printf("quote: failed to load service picker: %v", err)
		services = nil
	}

	stored, err := s.settingsRepo.GetQuoteCounter(ctx)
	if err != nil {
		log.Printf("quote: failed to read quote counter: %v", err)
		stored = 0
	}

	session := &QuoteSession{
		ID:        utils.NewUUID(),
		Lead:      lead,
		Products:  products,
		Services:  services,
		Items:     []QuoteLineItem{},
		Preview:   stored + 1,
		CreatedAt: time.Now(),
	}
	s.sessions.Put(session)

	return s.view(session), nil
}

// Get returns the current state of an open session
func (s *QuoteService) Get(sessionID uuid.UUID) (*QuoteSessionView, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return nil, apperror.NewNotFoundError("Quote session")
	}
	return s.view(session), nil
}

// AddProduct appends a catalog piece at its stored rental price
func (s *QuoteService) AddProduct(ctx context.Context, sessionID, productID uuid.UUID) (*QuoteSessionView, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return nil, apperror.NewNotFoundError("Quote session")
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	product := findProduct(session.Products, productID)
	if product == nil {
		fetched, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if fetched == nil {
			return nil, apperror.NewNotFoundError("Product")
		}
		product = fetched
	}

	session.Items = append(session.Items, QuoteLineItem{
		ID:             utils.NewUUID(),
		Description:    product.Name,
		Quantity:       1,
		UnitPriceCents: product.Price,
		Origin:         enum.LineItemOriginProduct,
	})

	return s.viewLocked(session), nil
}

// AddService appends a service at price zero; the price is typed in
// afterwards because services have no fixed rate.
func (s *QuoteService) AddService(ctx context.Context, sessionID, serviceID uuid.UUID) (*QuoteSessionView, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return nil, apperror.NewNotFoundError("Quote session")
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	item := findService(session.Services, serviceID)
	if item == nil {
		fetched, err := s.serviceRepo.GetByID(ctx, serviceID)
		if err != nil {
			return nil, err
		}
		if fetched == nil {
			return nil, apperror.NewNotFoundError("Service")
		}
		item = fetched
	}

	session.Items = append(session.Items, QuoteLineItem{
		ID:             utils.NewUUID(),
		Description:    item.Title,
		Quantity:       1,
		UnitPriceCents: 0,
		Origin:         enum.LineItemOriginService,
	})

	return s.viewLocked(session), nil
}

// AddManual appends a hand-typed line item. Description and a positive
// price are required; quantity falls back to one when absent or broken.
func (s *QuoteService) AddManual(sessionID uuid.UUID, input *AddManualItemInput) (*QuoteSessionView, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return nil, apperror.NewNotFoundError("Quote session")
	}

	description := strings.TrimSpace(input.Description)
	var fieldErrors []apperror.FieldError
	if description == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "description",
			Message: "Description is required",
		})
	}

	priceCents := money.ParsePriceCents(input.Price)
	if priceCents <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "price",
			Message: "Price must be greater than zero",
		})
	}

	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.Items = append(session.Items, QuoteLineItem{
		ID:             utils.NewUUID(),
		Description:    description,
		Quantity:       money.ParseQuantity(input.Quantity),
		UnitPriceCents: priceCents,
		Origin:         enum.LineItemOriginCustom,
	})

	return s.viewLocked(session), nil
}

// UpdateItem edits a line item in place. Quantity and price edits pass
// through the same fallbacks as manual entry, so a cleared field never
// corrupts the total.
func (s *QuoteService) UpdateItem(sessionID, itemID uuid.UUID, input *UpdateItemInput) (*QuoteSessionView, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return nil, apperror.NewNotFoundError("Quote session")
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	idx := session.findItem(itemID)
	if idx < 0 {
		return nil, apperror.NewNotFoundError("Line item")
	}

	item := &session.Items[idx]
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, apperror.NewFieldValidationError("description", "Description is required")
		}
		item.Description = description
	}
	if input.Quantity != nil {
		item.Quantity = money.ParseQuantity(*input.Quantity)
	}
	if input.Price != nil {
		item.UnitPriceCents = money.ParsePriceCents(*input.Price)
	}

	return s.viewLocked(session), nil
}

// RemoveItem deletes a line item. Removing an id that is already gone
// leaves the session unchanged.
func (s *QuoteService) RemoveItem(sessionID, itemID uuid.UUID) (*QuoteSessionView, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return nil, apperror.NewNotFoundError("Quote session")
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	idx := session.findItem(itemID)
	if idx >= 0 {
		session.Items = append(session.Items[:idx], session.Items[idx+1:]...)
	}

	return s.viewLocked(session), nil
}

// ExportPDF renders the quote under the previewed number and, only
// after the render succeeds, commits the counter. A failed commit
// surfaces as an error and the session keeps its previewed number, so
// retrying prints the same number again.
func (s *QuoteService) ExportPDF(ctx context.Context, sessionID uuid.UUID) (*QuoteExport, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return nil, apperror.NewNotFoundError("Quote session")
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if len(session.Items) == 0 {
		return nil, apperror.NewBadRequestError("Quote has no line items")
	}

	data := s.buildQuoteData(session)

	content, err := pdf.RenderQuote(data)
	if err != nil {
		return nil, err
	}

	committed, err := s.settingsRepo.IncrementQuoteCounter(ctx)
	if err != nil {
		log.Printf("quote: failed to advance counter after rendering %s: %v",
			FormatQuoteNumber(session.Preview), err)
		return nil, apperror.NewAppError(http.StatusInternalServerError, "Failed to advance quote counter")
	}
	session.Preview = committed + 1

	return &QuoteExport{
		Filename: "Cotizacion_" + utils.FileSafeName(session.Lead.Name) + ".pdf",
		Content:  content,
	}, nil
}

// WhatsAppLink builds the wa.me handoff for the lead's phone. Sharing
// over WhatsApp never touches the counter.
func (s *QuoteService) WhatsAppLink(sessionID uuid.UUID) (string, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return "", apperror.NewNotFoundError("Quote session")
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if len(session.Items) == 0 {
		return "", apperror.NewBadRequestError("Quote has no line items")
	}
	if session.Lead.Phone == nil || strings.TrimSpace(*session.Lead.Phone) == "" {
		return "", apperror.NewBadRequestError("Lead has no phone number")
	}

	items := make([]whatsapp.LineItem, 0, len(session.Items))
	for _, item := range session.Items {
		items = append(items, whatsapp.LineItem{
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}

	message := whatsapp.BuildQuoteMessage(s.business.Name, session.Lead.Name, items, session.TotalCents())
	return whatsapp.Link(*session.Lead.Phone, message), nil
}

// Close discards an open session without touching the counter
func (s *QuoteService) Close(sessionID uuid.UUID) {
	s.sessions.Delete(sessionID)
}

// buildQuoteData assembles the renderer input from the session state.
// Caller holds the session lock.
func (s *QuoteService) buildQuoteData(session *QuoteSession) *pdf.QuoteData {
	lead := session.Lead

	data := &pdf.QuoteData{
		Number:       FormatQuoteNumber(session.Preview),
		Date:         time.Now().Format(quoteDateLayout),
		BusinessName: s.business.Name,
		Tagline:      businessTagline,
		Logo:         s.loadLogo(),
		ClientName:   lead.Name,
		TotalCents:   session.TotalCents(),
	}

	if lead.Service != nil {
		data.Service = *lead.Service
	}
	if lead.Phone != nil {
		data.Phone = *lead.Phone
	}
	if lead.Email != nil {
		data.Email = *lead.Email
	}
	if lead.EventDate != nil {
		data.EventDate = lead.EventDate.Format(quoteDateLayout)
	}

	for _, item := range session.Items {
		data.Items = append(data.Items, pdf.QuoteItem{
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}

	return data
}

// loadLogo reads the brand logo from disk. A missing file just means
// the quote renders without it.
func (s *QuoteService) loadLogo() []byte {
	if s.business.LogoPath == "" {
		return nil
	}
	logo, err := os.ReadFile(s.business.LogoPath)
	if err != nil {
		return nil
	}
	return logo
}

func (s *QuoteService) view(session *QuoteSession) *QuoteSessionView {
	session.mu.Lock()
	defer session.mu.Unlock()
	return s.viewLocked(session)
}

// viewLocked builds the response snapshot. Caller holds the session lock.
func (s *QuoteService) viewLocked(session *QuoteSession) *QuoteSessionView {
	items := make([]QuoteLineItemView, 0, len(session.Items))
	for _, item := range session.Items {
		items = append(items, QuoteLineItemView{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   money.FormatCents(item.UnitPriceCents),
			Subtotal:    money.FormatCents(item.SubtotalCents()),
			Origin:      item.Origin,
		})
	}

	total := session.TotalCents()
	return &QuoteSessionView{
		ID:          session.ID,
		Lead:        session.Lead,
		Products:    session.Products,
		Services:    session.Services,
		Items:       items,
		Total:       money.FormatCents(total),
		TotalCents:  total,
		QuoteNumber: FormatQuoteNumber(session.Preview),
	}
}

func findProduct(products []entity.Product, id uuid.UUID) *entity.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

func findService(services []entity.ServiceItem, id uuid.UUID) *entity.ServiceItem {
	for i := range services {
		if services[i].ID == id {
			return &services[i]
		}
	}
	return nil
}
