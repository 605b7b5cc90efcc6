package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	"github.com/jakindah/motorshop-api/pkg/apperror"
)

type inventoryFixture struct {
	svc       *InventoryService
	partRepo  *fakePartRepo
	alertRepo *fakeAlertRepo
	auditRepo *fakeAuditRepo
}

func newInventoryFixture(parts ...*entity.Part) *inventoryFixture {
	partRepo := newFakePartRepo(parts...)
	alertRepo := &fakeAlertRepo{}
	auditRepo := &fakeAuditRepo{}
	return &inventoryFixture{
		svc:       NewInventoryService(partRepo, alertRepo, NewAuditService(auditRepo), nil),
		partRepo:  partRepo,
		alertRepo: alertRepo,
		auditRepo: auditRepo,
	}
}

func TestCreatePartGeneratesCode(t *testing.T) {
	f := newInventoryFixture()

	part, err := f.svc.CreatePart(context.Background(), &CreatePartInput{
		PartName:         "Brake Pad Set",
		UnitPrice:        12.50,
		CurrentStock:     10,
		ReorderThreshold: 2,
		CreatedBy:        "manager@shop.test",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, part.PartCode)
	assert.Equal(t, int64(1250), part.UnitPrice)
	assert.Len(t, f.auditRepo.entries, 1)
	assert.Equal(t, "PART_CREATED", f.auditRepo.entries[0].ActionType)
}

func TestCreatePartRejectsDuplicateCode(t *testing.T) {
	existing := testPart("Brake Pad Set", 1250, 10, 2)
	existing.PartCode = "PART-BRAKES01"
	f := newInventoryFixture(existing)

	_, err := f.svc.CreatePart(context.Background(), &CreatePartInput{
		PartCode:  "PART-BRAKES01",
		PartName:  "Other Pads",
		UnitPrice: 9.99,
	})
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestDeductStockRejectsOverdraw(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 2, 0)
	f := newInventoryFixture(pad)

	_, err := f.svc.DeductStock(context.Background(), &AdjustStockInput{
		PartID:     pad.ID,
		Quantity:   3,
		AdjustedBy: "manager@shop.test",
	})
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, "Insufficient stock for part Brake Pad Set", apperror.GetAppError(err).Message)
	assert.Equal(t, 2, f.partRepo.parts[pad.ID].CurrentStock)
}

func TestStockMovementAlertLifecycle(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 5, 3)
	f := newInventoryFixture(pad)
	ctx := context.Background()

	// deduct to the threshold opens an alert
	part, err := f.svc.DeductStock(ctx, &AdjustStockInput{
		PartID: pad.ID, Quantity: 2, Reason: "damaged", AdjustedBy: "manager@shop.test",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, part.CurrentStock)

	open, err := f.alertRepo.GetOpenByPart(ctx, pad.ID)
	require.NoError(t, err)
	require.NotNil(t, open)

	// a second deduction does not open a duplicate
	_, err = f.svc.DeductStock(ctx, &AdjustStockInput{PartID: pad.ID, Quantity: 1, AdjustedBy: "m"})
	require.NoError(t, err)
	openAlerts, _ := f.alertRepo.ListByStatus(ctx, enum.AlertStatusOpen)
	assert.Len(t, openAlerts, 1)

	// replenishing above the threshold resolves it
	part, err = f.svc.AddStock(ctx, &AdjustStockInput{PartID: pad.ID, Quantity: 10, AdjustedBy: "m"})
	require.NoError(t, err)
	assert.Equal(t, 12, part.CurrentStock)

	open, err = f.alertRepo.GetOpenByPart(ctx, pad.ID)
	require.NoError(t, err)
	assert.Nil(t, open)
	resolved, _ := f.alertRepo.ListByStatus(ctx, enum.AlertStatusResolved)
	require.Len(t, resolved, 1)
	assert.NotNil(t, resolved[0].ResolvedAt)
}

func TestAcknowledgeAlertOnlyWhenOpen(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 1, 3)
	f := newInventoryFixture(pad)
	ctx := context.Background()

	_, err := f.svc.DeductStock(ctx, &AdjustStockInput{PartID: pad.ID, Quantity: 1, AdjustedBy: "m"})
	require.NoError(t, err)

	open, err := f.alertRepo.GetOpenByPart(ctx, pad.ID)
	require.NoError(t, err)
	require.NotNil(t, open)

	ack, err := f.svc.AcknowledgeAlert(ctx, open.ID, "manager@shop.test")
	require.NoError(t, err)
	assert.Equal(t, enum.AlertStatusAcknowledged, ack.Status)

	_, err = f.svc.AcknowledgeAlert(ctx, open.ID, "manager@shop.test")
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdatePartNeverTouchesStock(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 7, 2)
	f := newInventoryFixture(pad)

	name := "Ceramic Brake Pad Set"
	price := 14.00
	part, err := f.svc.UpdatePart(context.Background(), &UpdatePartInput{
		ID:        pad.ID,
		PartName:  &name,
		UnitPrice: &price,
		UpdatedBy: "manager@shop.test",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ceramic Brake Pad Set", part.PartName)
	assert.Equal(t, int64(1400), part.UnitPrice)
	assert.Equal(t, 7, part.CurrentStock)
}

func TestGetPartNotFound(t *testing.T) {
	f := newInventoryFixture()
	_, err := f.svc.GetPart(context.Background(), uuid.New())
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
