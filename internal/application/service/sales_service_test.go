package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	"github.com/jakindah/motorshop-api/internal/domain/repository"
	"github.com/jakindah/motorshop-api/pkg/apperror"
	"github.com/jakindah/motorshop-api/pkg/pagination"
)

// ---- in-memory fakes ----

type fakePartRepo struct {
	parts map[uuid.UUID]*entity.Part
}

func newFakePartRepo(parts ...*entity.Part) *fakePartRepo {
	r := &fakePartRepo{parts: make(map[uuid.UUID]*entity.Part)}
	for _, p := range parts {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.parts[p.ID] = p
	}
	return r
}

func (r *fakePartRepo) Create(ctx context.Context, part *entity.Part) error {
	if part.ID == uuid.Nil {
		part.ID = uuid.New()
	}
	r.parts[part.ID] = part
	return nil
}

func (r *fakePartRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Part, error) {
	if p, ok := r.parts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePartRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Part, error) {
	out := make([]entity.Part, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.parts[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePartRepo) GetByCode(ctx context.Context, code string) (*entity.Part, error) {
	for _, p := range r.parts {
		if p.PartCode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePartRepo) Update(ctx context.Context, part *entity.Part) error {
	r.parts[part.ID] = part
	return nil
}

func (r *fakePartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.parts, id)
	return nil
}

func (r *fakePartRepo) List(ctx context.Context) ([]entity.Part, error) {
	out := make([]entity.Part, 0, len(r.parts))
	for _, p := range r.parts {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePartRepo) Search(ctx context.Context, query string) ([]entity.Part, error) {
	return r.List(ctx)
}

func (r *fakePartRepo) GetLowStock(ctx context.Context) ([]entity.Part, error) {
	var out []entity.Part
	for _, p := range r.parts {
		if p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePartRepo) AtomicAdjustStock(ctx context.Context, id uuid.UUID, delta int) (bool, error) {
	p, ok := r.parts[id]
	if !ok {
		return false, nil
	}
	if p.CurrentStock+delta < 0 {
		return false, nil
	}
	p.CurrentStock += delta
	return true, nil
}

func (r *fakePartRepo) AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id, qty := range decrements {
		p, ok := r.parts[id]
		if !ok || p.CurrentStock < qty {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for id, qty := range decrements {
		r.parts[id].CurrentStock -= qty
	}
	return nil, nil
}

func (r *fakePartRepo) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	for id, qty := range increments {
		if p, ok := r.parts[id]; ok {
			p.CurrentStock += qty
		}
	}
	return nil
}

type fakeSaleRepo struct {
	sales      []*entity.Sale
	createErr  error
	summaryErr error
}

func (r *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if r.createErr != nil {
		return r.createErr
	}
	sale.ID = uuid.New()
	r.sales = append(r.sales, sale)
	return nil
}

func (r *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.GetWithItems(ctx, id)
}

func (r *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	out := make([]entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) SummaryBetween(ctx context.Context, from, to time.Time) (*repository.SalesSummary, error) {
	if r.summaryErr != nil {
		return nil, r.summaryErr
	}
	summary := &repository.SalesSummary{}
	for _, s := range r.sales {
		if s.TransactionDate.Before(from) || !s.TransactionDate.Before(to) {
			continue
		}
		summary.GrossSales += s.GrandTotal
		summary.TaxCollected += s.TaxAmount
		summary.NetRevenue += s.SubTotal
		summary.TotalTransactions++
	}
	return summary, nil
}

type fakeSaleItemRepo struct {
	items    []entity.SaleItem
	batchErr error
}

func (r *fakeSaleItemRepo) CreateBatch(ctx context.Context, items []entity.SaleItem) error {
	if r.batchErr != nil {
		return r.batchErr
	}
	r.items = append(r.items, items...)
	return nil
}

type fakeSettingRepo struct {
	settings map[string]*entity.SystemSetting
}

func (r *fakeSettingRepo) GetByKey(ctx context.Context, key string) (*entity.SystemSetting, error) {
	return r.settings[key], nil
}

func (r *fakeSettingRepo) List(ctx context.Context) ([]entity.SystemSetting, error) {
	var out []entity.SystemSetting
	for _, s := range r.settings {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSettingRepo) Upsert(ctx context.Context, setting *entity.SystemSetting) error {
	r.settings[setting.Key] = setting
	return nil
}

func (r *fakeSettingRepo) Delete(ctx context.Context, key string) error {
	delete(r.settings, key)
	return nil
}

type fakeAuditRepo struct {
	entries []entity.AuditLog
}

func (r *fakeAuditRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	r.entries = append(r.entries, *log)
	return nil
}

func (r *fakeAuditRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.AuditLog, int64, error) {
	return r.entries, int64(len(r.entries)), nil
}

func (r *fakeAuditRepo) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]entity.AuditLog, error) {
	var out []entity.AuditLog
	for _, e := range r.entries {
		if e.EntityType == entityType && e.EntityID != nil && *e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeAlertRepo struct {
	alerts []*entity.InventoryAlert
}

func (r *fakeAlertRepo) Create(ctx context.Context, alert *entity.InventoryAlert) error {
	alert.ID = uuid.New()
	r.alerts = append(r.alerts, alert)
	return nil
}

func (r *fakeAlertRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryAlert, error) {
	for _, a := range r.alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAlertRepo) GetOpenByPart(ctx context.Context, partID uuid.UUID) (*entity.InventoryAlert, error) {
	for _, a := range r.alerts {
		if a.PartID == partID && a.Status == enum.AlertStatusOpen {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAlertRepo) Update(ctx context.Context, alert *entity.InventoryAlert) error {
	for i, a := range r.alerts {
		if a.ID == alert.ID {
			r.alerts[i] = alert
			return nil
		}
	}
	return nil
}

func (r *fakeAlertRepo) ListByStatus(ctx context.Context, status enum.AlertStatus) ([]entity.InventoryAlert, error) {
	var out []entity.InventoryAlert
	for _, a := range r.alerts {
		if a.Status == status {
			out = append(out, *a)
		}
	}
	return out, nil
}

// ---- fixtures ----

type salesFixture struct {
	svc       *SalesService
	partRepo  *fakePartRepo
	saleRepo  *fakeSaleRepo
	itemRepo  *fakeSaleItemRepo
	alertRepo *fakeAlertRepo
	auditRepo *fakeAuditRepo
}

func newSalesFixture(taxRate string, parts ...*entity.Part) *salesFixture {
	partRepo := newFakePartRepo(parts...)
	saleRepo := &fakeSaleRepo{}
	itemRepo := &fakeSaleItemRepo{}
	alertRepo := &fakeAlertRepo{}
	auditRepo := &fakeAuditRepo{}
	settingRepo := &fakeSettingRepo{settings: map[string]*entity.SystemSetting{}}
	if taxRate != "" {
		settingRepo.settings[entity.SettingSalesTaxRate] = &entity.SystemSetting{
			Key:   entity.SettingSalesTaxRate,
			Value: taxRate,
		}
	}

	auditSvc := NewAuditService(auditRepo)
	settingsSvc := NewSettingsService(settingRepo, auditSvc)
	inventorySvc := NewInventoryService(partRepo, alertRepo, auditSvc, nil)

	return &salesFixture{
		svc:       NewSalesService(saleRepo, itemRepo, partRepo, settingsSvc, inventorySvc, auditSvc, nil),
		partRepo:  partRepo,
		saleRepo:  saleRepo,
		itemRepo:  itemRepo,
		alertRepo: alertRepo,
		auditRepo: auditRepo,
	}
}

func testPart(name string, priceCents int64, stock, threshold int) *entity.Part {
	return &entity.Part{
		ID:               uuid.New(),
		PartCode:         "PART-" + uuid.NewString()[:8],
		PartName:         name,
		UnitPrice:        priceCents,
		CurrentStock:     stock,
		ReorderThreshold: threshold,
	}
}

// ---- tests ----

func TestRecordSaleComputesTaxAndDecrementsStock(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 10, 2)
	filter := testPart("Air Filter", 1150, 10, 2)
	f := newSalesFixture("0.08", pad, filter)

	out, err := f.svc.RecordSale(context.Background(), &RecordSaleInput{
		CustomerName: "Walk-in",
		RecordedBy:   "cashier@shop.test",
		Items: []RecordSaleItemInput{
			{PartID: pad.ID, Quantity: 2},
			{PartID: filter.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out.Sale)

	assert.Equal(t, int64(3650), out.Sale.SubTotal)
	assert.Equal(t, int64(292), out.Sale.TaxAmount)
	assert.Equal(t, int64(3942), out.Sale.GrandTotal)
	assert.NotEmpty(t, out.Sale.InvoiceNo)
	require.Len(t, out.Sale.Items, 2)
	assert.Equal(t, 2, out.Sale.Items[0].QuantitySold)
	assert.Equal(t, int64(1250), out.Sale.Items[0].UnitPriceAtSale)
	assert.Equal(t, int64(2500), out.Sale.Items[0].LineTotal)

	// stock decremented once per line
	assert.Equal(t, 8, f.partRepo.parts[pad.ID].CurrentStock)
	assert.Equal(t, 9, f.partRepo.parts[filter.ID].CurrentStock)

	// the same round trip carries the refreshed summary
	require.NotNil(t, out.Summary)
	assert.Equal(t, int64(3942), out.Summary.GrossSales)
	assert.Equal(t, int64(292), out.Summary.TaxCollected)
	assert.Equal(t, int64(3650), out.Summary.NetRevenue)
	assert.Equal(t, int64(1), out.Summary.TotalTransactions)
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 1, 0)
	f := newSalesFixture("0.08", pad)

	_, err := f.svc.RecordSale(context.Background(), &RecordSaleInput{
		RecordedBy: "cashier@shop.test",
		Items:      []RecordSaleItemInput{{PartID: pad.ID, Quantity: 2}},
	})
	require.Error(t, err)

	require.True(t, apperror.IsAppError(err))
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Insufficient stock for part Brake Pad Set", appErr.Message)

	// rejection leaves stock and storage untouched
	assert.Equal(t, 1, f.partRepo.parts[pad.ID].CurrentStock)
	assert.Empty(t, f.saleRepo.sales)
	assert.Empty(t, f.itemRepo.items)
}

func TestRecordSaleMergesDuplicateLines(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 10, 2)
	f := newSalesFixture("0.08", pad)

	out, err := f.svc.RecordSale(context.Background(), &RecordSaleInput{
		RecordedBy: "cashier@shop.test",
		Items: []RecordSaleItemInput{
			{PartID: pad.ID, Quantity: 1},
			{PartID: pad.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Sale.Items, 1)
	assert.Equal(t, 3, out.Sale.Items[0].QuantitySold)
	assert.Equal(t, 7, f.partRepo.parts[pad.ID].CurrentStock)
}

func TestRecordSaleRejectsBadInput(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 10, 2)
	f := newSalesFixture("0.08", pad)

	_, err := f.svc.RecordSale(context.Background(), &RecordSaleInput{RecordedBy: "x"})
	assert.Error(t, err)

	_, err = f.svc.RecordSale(context.Background(), &RecordSaleInput{
		RecordedBy: "x",
		Items:      []RecordSaleItemInput{{PartID: pad.ID, Quantity: 0}},
	})
	assert.Error(t, err)

	_, err = f.svc.RecordSale(context.Background(), &RecordSaleInput{
		RecordedBy: "x",
		Items:      []RecordSaleItemInput{{PartID: uuid.New(), Quantity: 1}},
	})
	assert.Error(t, err)

	assert.Equal(t, 10, f.partRepo.parts[pad.ID].CurrentStock)
}

func TestRecordSaleSurvivesSummaryFailure(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 10, 2)
	f := newSalesFixture("0.08", pad)
	f.saleRepo.summaryErr = errors.New("summary query timed out")

	out, err := f.svc.RecordSale(context.Background(), &RecordSaleInput{
		CustomerName: "Walk-in",
		RecordedBy:   "cashier@shop.test",
		Items:        []RecordSaleItemInput{{PartID: pad.ID, Quantity: 1}},
	})
	require.NoError(t, err, "a committed sale must not fail on the summary recompute")
	require.NotNil(t, out.Sale)
	assert.Nil(t, out.Summary)

	// the sale and its stock movement stand
	require.Len(t, f.saleRepo.sales, 1)
	assert.Equal(t, 9, f.partRepo.parts[pad.ID].CurrentStock)
}

func TestRecordSaleRestoresStockWhenWriteFails(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 10, 2)
	f := newSalesFixture("0.08", pad)
	f.saleRepo.createErr = errors.New("write failed")

	_, err := f.svc.RecordSale(context.Background(), &RecordSaleInput{
		RecordedBy: "cashier@shop.test",
		Items:      []RecordSaleItemInput{{PartID: pad.ID, Quantity: 3}},
	})
	require.Error(t, err)
	assert.Equal(t, 10, f.partRepo.parts[pad.ID].CurrentStock)

	f.saleRepo.createErr = nil
	f.itemRepo.batchErr = errors.New("batch failed")
	_, err = f.svc.RecordSale(context.Background(), &RecordSaleInput{
		RecordedBy: "cashier@shop.test",
		Items:      []RecordSaleItemInput{{PartID: pad.ID, Quantity: 3}},
	})
	require.Error(t, err)
	assert.Equal(t, 10, f.partRepo.parts[pad.ID].CurrentStock)
}

func TestRecordSaleOpensLowStockAlert(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 5, 3)
	f := newSalesFixture("0.08", pad)

	_, err := f.svc.RecordSale(context.Background(), &RecordSaleInput{
		RecordedBy: "cashier@shop.test",
		Items:      []RecordSaleItemInput{{PartID: pad.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	open, err := f.alertRepo.GetOpenByPart(context.Background(), pad.ID)
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, 2, open.CurrentStock)
	assert.Equal(t, 3, open.Threshold)
}

func TestRecordSaleZeroTaxWhenRateMissing(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 10, 2)
	f := newSalesFixture("", pad)

	out, err := f.svc.RecordSale(context.Background(), &RecordSaleInput{
		RecordedBy: "cashier@shop.test",
		Items:      []RecordSaleItemInput{{PartID: pad.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Sale.TaxAmount)
	assert.Equal(t, out.Sale.SubTotal, out.Sale.GrandTotal)
}

func TestDailySummaryBoundsAreCalendarDay(t *testing.T) {
	f := newSalesFixture("0.08")
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	f.saleRepo.sales = []*entity.Sale{
		{ID: uuid.New(), TransactionDate: day.Add(5 * time.Hour), SubTotal: 1000, TaxAmount: 80, GrandTotal: 1080},
		{ID: uuid.New(), TransactionDate: day.Add(23 * time.Hour), SubTotal: 2000, TaxAmount: 160, GrandTotal: 2160},
		{ID: uuid.New(), TransactionDate: day.AddDate(0, 0, 1), SubTotal: 9999, TaxAmount: 800, GrandTotal: 10799},
		{ID: uuid.New(), TransactionDate: day.Add(-time.Hour), SubTotal: 9999, TaxAmount: 800, GrandTotal: 10799},
	}

	summary, err := f.svc.DailySummary(context.Background(), day.Add(12*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(3240), summary.GrossSales)
	assert.Equal(t, int64(240), summary.TaxCollected)
	assert.Equal(t, int64(3000), summary.NetRevenue)
	assert.Equal(t, int64(2), summary.TotalTransactions)
}

func TestGetSaleNotFound(t *testing.T) {
	f := newSalesFixture("0.08")
	_, err := f.svc.GetSale(context.Background(), uuid.New())
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
