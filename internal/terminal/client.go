package terminal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// APIError is a failure response from the backend
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsStockConflict reports whether the error is the backend rejecting a sale
// for insufficient stock. Matched on the message text, which is part of the
// API contract.
func IsStockConflict(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "insufficient stock")
}

// IsUnauthorized reports whether the backend refused the action for the
// caller's role
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden
}

// IsValidation reports whether the backend rejected the request payload
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest
}

// Client is the terminal's HTTP client for the shop backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken sets the bearer token sent on every request
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token
func (c *Client) Token() string {
	return c.token
}

// envelope is the backend's standard response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/v1"+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response data: %w", err)
		}
	}
	return nil
}

// Login authenticates and stores the returned access token
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out struct {
		AccessToken string `json:"accessToken"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil, &out)
	if err != nil {
		return err
	}
	c.token = out.AccessToken
	return nil
}

// partWire is a catalog part as the backend serializes it
type partWire struct {
	ID           uuid.UUID `json:"id"`
	PartName     string    `json:"partName"`
	Description  string    `json:"description"`
	ImageURL     *string   `json:"imageUrl"`
	UnitPrice    float64   `json:"unitPrice"`
	CurrentStock int       `json:"currentStock"`
	RackLocation *string   `json:"rackLocation"`
}

// toMirror validates the wire part before it enters the local mirror. A
// negative or non-finite price is a data error, never silently coerced.
func (w *partWire) toMirror() (PartMirror, error) {
	if math.IsNaN(w.UnitPrice) || math.IsInf(w.UnitPrice, 0) || w.UnitPrice < 0 {
		return PartMirror{}, fmt.Errorf("part %q has malformed unit price %v", w.PartName, w.UnitPrice)
	}

	m := PartMirror{
		ID:          w.ID,
		Name:        w.PartName,
		Description: w.Description,
		UnitPrice:   decimal.NewFromFloat(w.UnitPrice),
		ServerStock: w.CurrentStock,
	}
	if w.ImageURL != nil {
		m.ImageURL = *w.ImageURL
	}
	if w.RackLocation != nil {
		m.RackLocation = *w.RackLocation
	}
	return m, nil
}

func toMirrors(wires []partWire) ([]PartMirror, error) {
	mirrors := make([]PartMirror, 0, len(wires))
	for i := range wires {
		m, err := wires[i].toMirror()
		if err != nil {
			return nil, err
		}
		mirrors = append(mirrors, m)
	}
	return mirrors, nil
}

// FetchParts retrieves the full catalog
func (c *Client) FetchParts(ctx context.Context) ([]PartMirror, error) {
	var wires []partWire
	if err := c.do(ctx, http.MethodGet, "/inventory/parts", nil, nil, &wires); err != nil {
		return nil, err
	}
	return toMirrors(wires)
}

// SearchParts retrieves catalog parts matching the query
func (c *Client) SearchParts(ctx context.Context, query string) ([]PartMirror, error) {
	var wires []partWire
	path := "/inventory/parts/search?query=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &wires); err != nil {
		return nil, err
	}
	return toMirrors(wires)
}

// SaleItem is one line of a sale submission
type SaleItem struct {
	PartID   uuid.UUID `json:"partId"`
	Quantity int       `json:"quantity"`
}

// SaleRequest is the body posted to the sale-recording endpoint
type SaleRequest struct {
	CustomerName string     `json:"customerName"`
	Items        []SaleItem `json:"items"`
}

// InvoiceWire is the backend's persisted invoice record
type InvoiceWire struct {
	ID         uuid.UUID `json:"id"`
	InvoiceNo  string    `json:"invoiceNo"`
	SubTotal   float64   `json:"subTotal"`
	TaxAmount  float64   `json:"taxAmount"`
	GrandTotal float64   `json:"grandTotal"`
}

// SummaryWire is the backend's daily summary payload
type SummaryWire struct {
	Date               string  `json:"date"`
	GrossSalesAmount   float64 `json:"grossSalesAmount"`
	TaxCollectedAmount float64 `json:"taxCollectedAmount"`
	NetRevenueAmount   float64 `json:"netRevenueAmount"`
	TotalTransactions  int64   `json:"totalTransactions"`
}

// SaleResult is the backend's response to a recorded sale
type SaleResult struct {
	Invoice        *InvoiceWire `json:"invoice"`
	UpdatedSummary *SummaryWire `json:"updatedSummary"`
}

// RecordSale submits a sale. The idempotency key makes retries of the same
// submission safe: a replay returns the original result without recording a
// second sale.
func (c *Client) RecordSale(ctx context.Context, req *SaleRequest, idempotencyKey string) (*SaleResult, error) {
	var result SaleResult
	headers := map[string]string{"Idempotency-Key": idempotencyKey}
	if err := c.do(ctx, http.MethodPost, "/sales/record", req, headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchDailySummary retrieves today's aggregate figures
func (c *Client) FetchDailySummary(ctx context.Context) (*SummaryWire, error) {
	var summary SummaryWire
	if err := c.do(ctx, http.MethodGet, "/sales/summary/daily", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// FetchTaxRate reads the sales tax rate from system settings
func (c *Client) FetchTaxRate(ctx context.Context) (decimal.Decimal, error) {
	var setting struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := c.do(ctx, http.MethodGet, "/settings/SALES_TAX_RATE", nil, nil, &setting); err != nil {
		return decimal.Zero, err
	}
	rate, err := decimal.NewFromString(setting.Value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed tax rate %q: %w", setting.Value, err)
	}
	return rate, nil
}
