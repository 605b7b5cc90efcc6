package terminal

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/pkg/invoice"
	"github.com/shopspring/decimal"
)

// ErrEmptyCart is returned when a sale is submitted with nothing in the cart
var ErrEmptyCart = errors.New("cart is empty")

// SaleErrorKind classifies a failed sale submission
type SaleErrorKind int

const (
	// SaleErrorStockConflict means the backend's authoritative stock check
	// rejected the sale
	SaleErrorStockConflict SaleErrorKind = iota
	// SaleErrorUnauthorized means the operator's role may not record sales
	SaleErrorUnauthorized
	// SaleErrorValidation means the backend rejected the submission payload
	SaleErrorValidation
	// SaleErrorOther covers network failures and unexpected responses
	SaleErrorOther
)

// SaleError is a classified sale-submission failure. The cart is always left
// intact so the operator can correct and resubmit.
type SaleError struct {
	Kind    SaleErrorKind
	Message string
	cause   error
}

func (e *SaleError) Error() string {
	return e.Message
}

func (e *SaleError) Unwrap() error {
	return e.cause
}

// Terminal is the point-of-sale engine: catalog mirror, cart, pricing, sale
// submission and post-sale reconciliation for one operator session.
type Terminal struct {
	client  *Client
	session *Session
	catalog *Catalog
	cart    *Cart
	summary *SummaryAggregator
	taxRate decimal.Decimal

	// idempotencyKey identifies the current cart's submission. It is minted
	// on the first RecordSale attempt and reused on retries, so a resend of
	// a submission that already persisted server-side replays the stored
	// result instead of recording a second sale. It rotates when the cart
	// is finished or abandoned.
	idempotencyKey string

	lastInvoice *invoice.Invoice
}

// New creates a terminal for an authenticated session
func New(client *Client, session *Session) *Terminal {
	catalog := NewCatalog()
	return &Terminal{
		client:  client,
		session: session,
		catalog: catalog,
		cart:    NewCart(catalog),
		summary: NewSummaryAggregator(client),
	}
}

// Session returns the operator session
func (t *Terminal) Session() *Session {
	return t.session
}

// Catalog returns the mirrored catalog
func (t *Terminal) Catalog() *Catalog {
	return t.catalog
}

// Cart returns the live cart
func (t *Terminal) Cart() *Cart {
	return t.cart
}

// Summary returns the daily summary aggregator
func (t *Terminal) Summary() *SummaryAggregator {
	return t.summary
}

// TaxRate returns the session's sales tax rate
func (t *Terminal) TaxRate() decimal.Decimal {
	return t.taxRate
}

// Totals computes the cart's current monetary figures
func (t *Terminal) Totals() Totals {
	return t.cart.GetTotals(t.taxRate)
}

// LastInvoice returns the invoice from the most recent successful sale, or
// nil if none is pending
func (t *Terminal) LastInvoice() *invoice.Invoice {
	return t.lastInvoice
}

// Start loads everything the terminal needs for a shift: the tax rate, the
// catalog and the day's summary. Tax rate and catalog failures are fatal
// since selling without them produces wrong figures; a summary failure only
// logs, the operator can still sell.
func (t *Terminal) Start(ctx context.Context) error {
	rate, err := t.client.FetchTaxRate(ctx)
	if err != nil {
		return err
	}
	t.taxRate = rate

	if err := t.RefreshCatalog(ctx); err != nil {
		return err
	}

	_ = t.summary.Fetch(ctx)
	return nil
}

// RefreshCatalog replaces the mirrored catalog with fresh server values
func (t *Terminal) RefreshCatalog(ctx context.Context) error {
	parts, err := t.client.FetchParts(ctx)
	if err != nil {
		return err
	}
	t.catalog.Replace(parts)
	return nil
}

// RecordSale submits the cart as a sale. On success the daily summary is
// overwritten with the backend's figures and the invoice is held for the
// operator to review; the cart stays reserved until FinalizeSale. On failure
// the cart and all reservations are untouched.
func (t *Terminal) RecordSale(ctx context.Context, customerName string) (*invoice.Invoice, error) {
	if t.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	lines := t.cart.Lines()
	items := make([]SaleItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, SaleItem{
			PartID:   line.Part.ID,
			Quantity: line.Quantity,
		})
	}

	if t.idempotencyKey == "" {
		t.idempotencyKey = uuid.New().String()
	}

	result, err := t.client.RecordSale(ctx, &SaleRequest{
		CustomerName: customerName,
		Items:        items,
	}, t.idempotencyKey)
	if err != nil {
		return nil, classifySaleError(err)
	}

	if result.UpdatedSummary != nil {
		t.summary.ApplyAuthoritative(result.UpdatedSummary)
	}

	t.lastInvoice = t.buildInvoice(result, lines)
	return t.lastInvoice, nil
}

// buildInvoice prefers the backend's persisted figures and falls back to the
// cart's locally computed totals when the response omits the invoice.
func (t *Terminal) buildInvoice(result *SaleResult, lines []*CartLine) *invoice.Invoice {
	inv := &invoice.Invoice{
		Date:  time.Now(),
		Lines: make([]invoice.Line, 0, len(lines)),
	}
	for _, line := range lines {
		unitPrice, _ := line.Part.UnitPrice.Float64()
		lineTotal, _ := line.LineTotal().Float64()
		inv.Lines = append(inv.Lines, invoice.Line{
			Name:      line.Part.Name,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
	}

	if result.Invoice != nil {
		inv.ID = result.Invoice.InvoiceNo
		inv.Subtotal = result.Invoice.SubTotal
		inv.Tax = result.Invoice.TaxAmount
		inv.Total = result.Invoice.GrandTotal
		return inv
	}

	totals := t.cart.GetTotals(t.taxRate)
	inv.ID = time.Now().Format("20060102150405")
	inv.Subtotal, _ = totals.Subtotal.Float64()
	inv.Tax, _ = totals.Tax.Float64()
	inv.Total, _ = totals.Total.Float64()
	return inv
}

// classifySaleError maps a backend failure to its operator-facing category
func classifySaleError(err error) error {
	switch {
	case IsStockConflict(err):
		return &SaleError{Kind: SaleErrorStockConflict, Message: err.Error(), cause: err}
	case IsUnauthorized(err):
		return &SaleError{Kind: SaleErrorUnauthorized, Message: "You are not authorized to record sales", cause: err}
	case IsValidation(err):
		return &SaleError{Kind: SaleErrorValidation, Message: "Invalid sale data or unavailable stock", cause: err}
	default:
		return &SaleError{Kind: SaleErrorOther, Message: "Could not record the sale, please try again", cause: err}
	}
}

// FinalizeSale is the single reconciliation point after a sale: the operator
// is done with the invoice, so the cart is cleared and the catalog and
// summary are re-read from the backend, discarding local optimistic state.
// Fetch failures are logged, not surfaced; the terminal continues with the
// last known values.
func (t *Terminal) FinalizeSale(ctx context.Context) {
	t.cart.Clear()
	t.lastInvoice = nil
	t.idempotencyKey = ""

	if err := t.RefreshCatalog(ctx); err != nil {
		log.Printf("Post-sale catalog refresh failed, keeping local mirror: %v", err)
	}
	if err := t.summary.Fetch(ctx); err != nil {
		log.Printf("Post-sale summary refresh failed: %v", err)
	}
}

// Reset abandons the current cart, releasing every reservation
func (t *Terminal) Reset() {
	t.cart.Clear()
	t.lastInvoice = nil
	t.idempotencyKey = ""
}
