package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/masquepolleras/polleras-api/internal/config"
	"github.com/masquepolleras/polleras-api/internal/domain/entity"
	"github.com/masquepolleras/polleras-api/internal/domain/enum"
	"github.com/masquepolleras/polleras-api/internal/domain/repository"
	"github.com/masquepolleras/polleras-api/pkg/apperror"
)

type stubLeadRepo struct {
	leads map[uuid.UUID]*entity.Lead
}

func (s *stubLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	s.leads[lead.ID] = lead
	return nil
}

func (s *stubLeadRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	return s.leads[id], nil
}

func (s *stubLeadRepo) Update(ctx context.Context, lead *entity.Lead) error {
	s.leads[lead.ID] = lead
	return nil
}

func (s *stubLeadRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.LeadStatus) error {
	if lead, ok := s.leads[id]; ok {
		lead.Status = status
	}
	return nil
}

func (s *stubLeadRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.leads, id)
	return nil
}

func (s *stubLeadRepo) List(ctx context.Context, params *repository.LeadFilterParams) ([]entity.Lead, int64, error) {
	var out []entity.Lead
	for _, lead := range s.leads {
		out = append(out, *lead)
	}
	return out, int64(len(out)), nil
}

func (s *stubLeadRepo) ListAll(ctx context.Context) ([]entity.Lead, error) {
	var out []entity.Lead
	for _, lead := range s.leads {
		out = append(out, *lead)
	}
	return out, nil
}

func (s *stubLeadRepo) CountByStatus(ctx context.Context) (map[enum.LeadStatus]int64, error) {
	counts := make(map[enum.LeadStatus]int64)
	for _, lead := range s.leads {
		counts[lead.Status]++
	}
	return counts, nil
}

type stubProductRepo struct {
	products []entity.Product
}

func (s *stubProductRepo) Create(ctx context.Context, p *entity.Product) error { return nil }
func (s *stubProductRepo) Update(ctx context.Context, p *entity.Product) error { return nil }
func (s *stubProductRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func (s *stubProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, nil
}

func (s *stubProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return s.products, int64(len(s.products)), nil
}

func (s *stubProductRepo) ListAll(ctx context.Context) ([]entity.Product, error) {
	return s.products, nil
}

type stubServiceRepo struct {
	services []entity.ServiceItem
}

func (s *stubServiceRepo) Create(ctx context.Context, i *entity.ServiceItem) error { return nil }
func (s *stubServiceRepo) Update(ctx context.Context, i *entity.ServiceItem) error { return nil }
func (s *stubServiceRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

func (s *stubServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceItem, error) {
	for i := range s.services {
		if s.services[i].ID == id {
			return &s.services[i], nil
		}
	}
	return nil, nil
}

func (s *stubServiceRepo) ListAll(ctx context.Context) ([]entity.ServiceItem, error) {
	return s.services, nil
}

type stubSettingsRepo struct {
	count   int
	failInc bool
}

func (s *stubSettingsRepo) GetByKey(ctx context.Context, key string) (*entity.AppSetting, error) {
	return nil, nil
}

func (s *stubSettingsRepo) Upsert(ctx context.Context, setting *entity.AppSetting) error {
	return nil
}

func (s *stubSettingsRepo) GetQuoteCounter(ctx context.Context) (int, error) {
	return s.count, nil
}

func (s *stubSettingsRepo) IncrementQuoteCounter(ctx context.Context) (int, error) {
	if s.failInc {
		return 0, errors.New("connection refused")
	}
	s.count++
	return s.count, nil
}

type quoteFixture struct {
	svc      *QuoteService
	settings *stubSettingsRepo
	lead     *entity.Lead
	product  entity.Product
	service  entity.ServiceItem
}

func newQuoteFixture(t *testing.T, storedCount int) *quoteFixture {
	t.Helper()

	phone := "+50761234567"
	lead := &entity.Lead{
		ID:    uuid.New(),
		Name:  "María Fernández",
		Phone: &phone,
	}

	product := entity.Product{
		ID:    uuid.New(),
		Name:  "Pollera de Gala Santeña",
		Price: 45000,
	}
	svcItem := entity.ServiceItem{
		ID:    uuid.New(),
		Title: "Confección a Medida",
	}

	settings := &stubSettingsRepo{count: storedCount}
	store := NewQuoteSessionStore(time.Hour)
	t.Cleanup(store.Stop)

	svc := NewQuoteService(
		store,
		&stubLeadRepo{leads: map[uuid.UUID]*entity.Lead{lead.ID: lead}},
		&stubProductRepo{products: []entity.Product{product}},
		&stubServiceRepo{services: []entity.ServiceItem{svcItem}},
		settings,
		config.BusinessConfig{Name: "Más Que Polleras"},
	)

	return &quoteFixture{
		svc:      svc,
		settings: settings,
		lead:     lead,
		product:  product,
		service:  svcItem,
	}
}

func TestOpenQuotePreviewsNextNumber(t *testing.T) {
	tests := []struct {
		name       string
		stored     int
		wantNumber string
	}{
		{"fresh counter", 0, "0001"},
		{"mid sequence", 41, "0042"},
		{"four digit rollover", 9999, "10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newQuoteFixture(t, tt.stored)

			view, err := f.svc.Open(context.Background(), f.lead.ID)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if view.QuoteNumber != tt.wantNumber {
				t.Errorf("quote number = %q, want %q", view.QuoteNumber, tt.wantNumber)
			}
			if len(view.Items) != 0 {
				t.Errorf("new session has %d items, want 0", len(view.Items))
			}
		})
	}
}

func TestOpenQuoteUnknownLead(t *testing.T) {
	f := newQuoteFixture(t, 0)

	_, err := f.svc.Open(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error for unknown lead")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Errorf("status = %d, want 404", appErr.Code)
	}
}

func TestAddCatalogAndServiceItems(t *testing.T) {
	f := newQuoteFixture(t, 0)

	view, err := f.svc.Open(context.Background(), f.lead.ID)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	view, err = f.svc.AddProduct(context.Background(), view.ID, f.product.ID)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(view.Items))
	}
	item := view.Items[0]
	if item.Description != f.product.Name || item.Quantity != 1 || item.Origin != enum.LineItemOriginProduct {
		t.Errorf("catalog item = %+v, want name %q qty 1 origin product", item, f.product.Name)
	}
	if view.TotalCents != 45000 {
		t.Errorf("total = %d, want 45000", view.TotalCents)
	}

	// Services enter at price zero; the total must not move
	view, err = f.svc.AddService(context.Background(), view.ID, f.service.ID)
	if err != nil {
		t.Fatalf("AddService: %v", err)
	}
	if view.TotalCents != 45000 {
		t.Errorf("total after service add = %d, want 45000", view.TotalCents)
	}
	if got := view.Items[1]; got.Origin != enum.LineItemOriginService {
		t.Errorf("origin = %v, want service", got.Origin)
	}
}

func TestAddManualItemValidation(t *testing.T) {
	tests := []struct {
		name      string
		input     AddManualItemInput
		wantField string
	}{
		{"empty description", AddManualItemInput{Description: "  ", Quantity: "1", Price: "10"}, "description"},
		{"zero price", AddManualItemInput{Description: "Tembleques", Quantity: "1", Price: "0"}, "price"},
		{"negative price", AddManualItemInput{Description: "Tembleques", Quantity: "1", Price: "-5"}, "price"},
		{"broken price falls to zero", AddManualItemInput{Description: "Tembleques", Quantity: "1", Price: "abc"}, "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newQuoteFixture(t, 0)
			view, err := f.svc.Open(context.Background(), f.lead.ID)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}

			_, err = f.svc.AddManual(view.ID, &tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			appErr := apperror.GetAppError(err)
			if appErr.Code != 422 {
				t.Fatalf("status = %d, want 422", appErr.Code)
			}
			found := false
			for _, fe := range appErr.Errors {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("field errors %v missing %q", appErr.Errors, tt.wantField)
			}
		})
	}
}

func TestUpdateItemFallbacks(t *testing.T) {
	f := newQuoteFixture(t, 0)
	view, _ := f.svc.Open(context.Background(), f.lead.ID)
	view, err := f.svc.AddManual(view.ID, &AddManualItemInput{
		Description: "Alquiler tembleques",
		Quantity:    "2",
		Price:       "35.50",
	})
	if err != nil {
		t.Fatalf("AddManual: %v", err)
	}
	itemID := view.Items[0].ID
	if view.TotalCents != 7100 {
		t.Fatalf("total = %d, want 7100", view.TotalCents)
	}

	// A cleared quantity falls back to one, never to zero
	empty := ""
	view, err = f.svc.UpdateItem(view.ID, itemID, &UpdateItemInput{Quantity: &empty})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if view.Items[0].Quantity != 1 {
		t.Errorf("quantity = %d, want fallback 1", view.Items[0].Quantity)
	}
	if view.TotalCents != 3550 {
		t.Errorf("total = %d, want 3550", view.TotalCents)
	}

	// A broken price edit falls back to zero
	bad := "12,34abc"
	view, err = f.svc.UpdateItem(view.ID, itemID, &UpdateItemInput{Price: &bad})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if view.TotalCents != 0 {
		t.Errorf("total = %d, want 0 after broken price", view.TotalCents)
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	f := newQuoteFixture(t, 0)
	view, _ := f.svc.Open(context.Background(), f.lead.ID)
	view, _ = f.svc.AddProduct(context.Background(), view.ID, f.product.ID)
	itemID := view.Items[0].ID

	view, err := f.svc.RemoveItem(view.ID, itemID)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("items = %d, want 0", len(view.Items))
	}

	// Removing the same id again leaves the session unchanged
	view, err = f.svc.RemoveItem(view.ID, itemID)
	if err != nil {
		t.Fatalf("second RemoveItem: %v", err)
	}
	if len(view.Items) != 0 || view.TotalCents != 0 {
		t.Errorf("session changed on repeat remove: %d items, total %d", len(view.Items), view.TotalCents)
	}
}

func TestExportPDFCommitsCounter(t *testing.T) {
	f := newQuoteFixture(t, 7)
	view, _ := f.svc.Open(context.Background(), f.lead.ID)
	view, _ = f.svc.AddProduct(context.Background(), view.ID, f.product.ID)

	if view.QuoteNumber != "0008" {
		t.Fatalf("preview = %q, want 0008", view.QuoteNumber)
	}

	export, err := f.svc.ExportPDF(context.Background(), view.ID)
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if export.Filename != "Cotizacion_María_Fernández.pdf" {
		t.Errorf("filename = %q", export.Filename)
	}
	if len(export.Content) == 0 {
		t.Error("empty PDF content")
	}
	if f.settings.count != 8 {
		t.Errorf("stored counter = %d, want 8", f.settings.count)
	}

	// The session previews the next number after a successful export
	view, err = f.svc.Get(view.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if view.QuoteNumber != "0009" {
		t.Errorf("preview after export = %q, want 0009", view.QuoteNumber)
	}
}

func TestExportPDFWithoutItems(t *testing.T) {
	f := newQuoteFixture(t, 0)
	view, _ := f.svc.Open(context.Background(), f.lead.ID)

	_, err := f.svc.ExportPDF(context.Background(), view.ID)
	if err == nil {
		t.Fatal("expected error for empty quote")
	}
	if f.settings.count != 0 {
		t.Errorf("counter moved to %d on failed export", f.settings.count)
	}
}

func TestExportPDFRenderFailureLeavesCounter(t *testing.T) {
	logoPath := filepath.Join(t.TempDir(), "logo.png")
	if err := os.WriteFile(logoPath, []byte("this is not a png"), 0o644); err != nil {
		t.Fatalf("write logo: %v", err)
	}

	phone := "+50761234567"
	lead := &entity.Lead{ID: uuid.New(), Name: "María Fernández", Phone: &phone}
	product := entity.Product{ID: uuid.New(), Name: "Pollera de Gala Santeña", Price: 45000}
	settings := &stubSettingsRepo{count: 7}
	store := NewQuoteSessionStore(time.Hour)
	t.Cleanup(store.Stop)

	svc := NewQuoteService(
		store,
		&stubLeadRepo{leads: map[uuid.UUID]*entity.Lead{lead.ID: lead}},
		&stubProductRepo{products: []entity.Product{product}},
		&stubServiceRepo{},
		settings,
		config.BusinessConfig{Name: "Más Que Polleras", LogoPath: logoPath},
	)

	view, err := svc.Open(context.Background(), lead.ID)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	view, err = svc.AddProduct(context.Background(), view.ID, product.ID)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	export, err := svc.ExportPDF(context.Background(), view.ID)
	if err == nil {
		t.Fatal("expected render failure for malformed logo bytes")
	}
	if export != nil {
		t.Error("artifact produced despite render failure")
	}
	if settings.count != 7 {
		t.Errorf("stored counter = %d, want untouched 7", settings.count)
	}

	// The session still previews the same number for the next attempt
	view, err = svc.Get(view.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if view.QuoteNumber != "0008" {
		t.Errorf("preview = %q, want unchanged 0008", view.QuoteNumber)
	}
}

func TestExportPDFCounterFailureKeepsPreview(t *testing.T) {
	f := newQuoteFixture(t, 3)
	view, _ := f.svc.Open(context.Background(), f.lead.ID)
	view, _ = f.svc.AddProduct(context.Background(), view.ID, f.product.ID)

	f.settings.failInc = true
	_, err := f.svc.ExportPDF(context.Background(), view.ID)
	if err == nil {
		t.Fatal("expected error when counter commit fails")
	}

	// Retrying prints the same number again
	view, _ = f.svc.Get(view.ID)
	if view.QuoteNumber != "0004" {
		t.Errorf("preview = %q, want unchanged 0004", view.QuoteNumber)
	}

	f.settings.failInc = false
	export, err := f.svc.ExportPDF(context.Background(), view.ID)
	if err != nil {
		t.Fatalf("retry ExportPDF: %v", err)
	}
	if len(export.Content) == 0 {
		t.Error("empty PDF content on retry")
	}
	if f.settings.count != 4 {
		t.Errorf("stored counter = %d, want 4", f.settings.count)
	}
}

func TestWhatsAppLinkNeverTouchesCounter(t *testing.T) {
	f := newQuoteFixture(t, 5)
	view, _ := f.svc.Open(context.Background(), f.lead.ID)
	view, _ = f.svc.AddProduct(context.Background(), view.ID, f.product.ID)

	link, err := f.svc.WhatsAppLink(view.ID)
	if err != nil {
		t.Fatalf("WhatsAppLink: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/50761234567?text=") {
		t.Errorf("link = %q", link)
	}
	if f.settings.count != 5 {
		t.Errorf("counter = %d, want untouched 5", f.settings.count)
	}

	// And the previewed number is still the same afterwards
	view, _ = f.svc.Get(view.ID)
	if view.QuoteNumber != "0006" {
		t.Errorf("preview = %q, want 0006", view.QuoteNumber)
	}
}

func TestWhatsAppLinkRequiresPhone(t *testing.T) {
	f := newQuoteFixture(t, 0)
	f.lead.Phone = nil

	view, _ := f.svc.Open(context.Background(), f.lead.ID)
	view, _ = f.svc.AddProduct(context.Background(), view.ID, f.product.ID)

	_, err := f.svc.WhatsAppLink(view.ID)
	if err == nil {
		t.Fatal("expected error for lead without phone")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 400 {
		t.Errorf("status = %d, want 400", appErr.Code)
	}
}

func TestCloseDiscardsSession(t *testing.T) {
	f := newQuoteFixture(t, 0)
	view, _ := f.svc.Open(context.Background(), f.lead.ID)

	f.svc.Close(view.ID)

	if _, err := f.svc.Get(view.ID); err == nil {
		t.Error("expected not found after close")
	}
	if f.settings.count != 0 {
		t.Errorf("counter = %d, want 0 after abandoned session", f.settings.count)
	}
}
