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

type fakeVendorRepo struct {
	vendors map[uuid.UUID]*entity.Vendor
}

func newFakeVendorRepo(vendors ...*entity.Vendor) *fakeVendorRepo {
	r := &fakeVendorRepo{vendors: make(map[uuid.UUID]*entity.Vendor)}
	for _, v := range vendors {
		if v.ID == uuid.Nil {
			v.ID = uuid.New()
		}
		r.vendors[v.ID] = v
	}
	return r
}

func (r *fakeVendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	vendor.ID = uuid.New()
	r.vendors[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return r.vendors[id], nil
}

func (r *fakeVendorRepo) GetByName(ctx context.Context, name string) (*entity.Vendor, error) {
	for _, v := range r.vendors {
		if v.VendorName == name {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeVendorRepo) GetByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	for _, v := range r.vendors {
		if v.Email == email {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeVendorRepo) Update(ctx context.Context, vendor *entity.Vendor) error {
	r.vendors[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.vendors, id)
	return nil
}

func (r *fakeVendorRepo) List(ctx context.Context) ([]entity.Vendor, error) {
	out := make([]entity.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		out = append(out, *v)
	}
	return out, nil
}

type fakePORepo struct {
	orders map[uuid.UUID]*entity.PurchaseOrder
}

func newFakePORepo() *fakePORepo {
	return &fakePORepo{orders: make(map[uuid.UUID]*entity.PurchaseOrder)}
}

func (r *fakePORepo) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	po.ID = uuid.New()
	r.orders[po.ID] = po
	return nil
}

func (r *fakePORepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	return r.orders[id], nil
}

func (r *fakePORepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	return r.orders[id], nil
}

func (r *fakePORepo) Update(ctx context.Context, po *entity.PurchaseOrder) error {
	r.orders[po.ID] = po
	return nil
}

func (r *fakePORepo) List(ctx context.Context) ([]entity.PurchaseOrder, error) {
	out := make([]entity.PurchaseOrder, 0, len(r.orders))
	for _, po := range r.orders {
		out = append(out, *po)
	}
	return out, nil
}

func (r *fakePORepo) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]entity.PurchaseOrder, error) {
	var out []entity.PurchaseOrder
	for _, po := range r.orders {
		if po.VendorID == vendorID {
			out = append(out, *po)
		}
	}
	return out, nil
}

func (r *fakePORepo) ListByStatus(ctx context.Context, status enum.POStatus) ([]entity.PurchaseOrder, error) {
	var out []entity.PurchaseOrder
	for _, po := range r.orders {
		if po.Status == status {
			out = append(out, *po)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = uuid.New()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

type purchaseFixture struct {
	svc      *PurchaseService
	portal   *VendorPortalService
	poRepo   *fakePORepo
	partRepo *fakePartRepo
	userRepo *fakeUserRepo
	vendor   *entity.Vendor
}

func newPurchaseFixture(parts ...*entity.Part) *purchaseFixture {
	vendor := &entity.Vendor{VendorName: "Apex Auto Supplies", Email: "orders@apex.test", Status: "Active"}
	vendorRepo := newFakeVendorRepo(vendor)
	poRepo := newFakePORepo()
	partRepo := newFakePartRepo(parts...)
	userRepo := newFakeUserRepo()
	auditSvc := NewAuditService(&fakeAuditRepo{})
	inventorySvc := NewInventoryService(partRepo, &fakeAlertRepo{}, auditSvc, nil)

	return &purchaseFixture{
		svc:      NewPurchaseService(poRepo, vendorRepo, partRepo, inventorySvc, auditSvc, nil),
		portal:   NewVendorPortalService(poRepo, userRepo, auditSvc),
		poRepo:   poRepo,
		partRepo: partRepo,
		userRepo: userRepo,
		vendor:   vendor,
	}
}

func TestPurchaseOrderLifecycle(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 1, 3)
	f := newPurchaseFixture(pad)
	ctx := context.Background()

	po, err := f.svc.CreateOrder(ctx, &CreateOrderInput{
		VendorID: f.vendor.ID,
		PlacedBy: "manager@shop.test",
		Items:    []CreateOrderItemInput{{PartID: pad.ID, Quantity: 20, UnitCost: 7.25}},
	})
	require.NoError(t, err)
	assert.Equal(t, enum.POStatusPending, po.Status)
	assert.Equal(t, int64(14500), po.TotalOrderValue)
	assert.NotEmpty(t, po.OrderNo)

	received, err := f.svc.ReceiveOrder(ctx, po.ID, "manager@shop.test")
	require.NoError(t, err)
	assert.Equal(t, enum.POStatusReceived, received.Status)
	require.NotNil(t, received.ActualDeliveryDate)
	assert.Equal(t, 21, f.partRepo.parts[pad.ID].CurrentStock)

	_, err = f.svc.ReceiveOrder(ctx, po.ID, "manager@shop.test")
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Equal(t, 21, f.partRepo.parts[pad.ID].CurrentStock, "double receipt must not double stock")
}

func TestCreateOrderRejectsInactiveVendor(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 1, 3)
	f := newPurchaseFixture(pad)
	f.vendor.Status = "Inactive"

	_, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		VendorID: f.vendor.ID,
		PlacedBy: "manager@shop.test",
		Items:    []CreateOrderItemInput{{PartID: pad.ID, Quantity: 5, UnitCost: 7.25}},
	})
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCancelOrderOnlyWhenPending(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 1, 3)
	f := newPurchaseFixture(pad)
	ctx := context.Background()

	po, err := f.svc.CreateOrder(ctx, &CreateOrderInput{
		VendorID: f.vendor.ID,
		PlacedBy: "manager@shop.test",
		Items:    []CreateOrderItemInput{{PartID: pad.ID, Quantity: 5, UnitCost: 7.25}},
	})
	require.NoError(t, err)

	cancelled, err := f.svc.CancelOrder(ctx, po.ID, "manager@shop.test")
	require.NoError(t, err)
	assert.Equal(t, enum.POStatusCancelled, cancelled.Status)

	_, err = f.svc.ReceiveOrder(ctx, po.ID, "manager@shop.test")
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 1, f.partRepo.parts[pad.ID].CurrentStock)
}

func TestVendorPortalScopesToOwnOrders(t *testing.T) {
	pad := testPart("Brake Pad Set", 1250, 1, 3)
	f := newPurchaseFixture(pad)
	ctx := context.Background()

	po, err := f.svc.CreateOrder(ctx, &CreateOrderInput{
		VendorID: f.vendor.ID,
		PlacedBy: "manager@shop.test",
		Items:    []CreateOrderItemInput{{PartID: pad.ID, Quantity: 5, UnitCost: 7.25}},
	})
	require.NoError(t, err)

	linked := &entity.User{Email: "portal@apex.test", Role: enum.RoleVendor, VendorID: &f.vendor.ID}
	require.NoError(t, f.userRepo.Create(ctx, linked))
	otherVendorID := uuid.New()
	stranger := &entity.User{Email: "portal@other.test", Role: enum.RoleVendor, VendorID: &otherVendorID}
	require.NoError(t, f.userRepo.Create(ctx, stranger))
	unlinked := &entity.User{Email: "new@apex.test", Role: enum.RoleVendor}
	require.NoError(t, f.userRepo.Create(ctx, unlinked))

	orders, err := f.portal.MyOrders(ctx, linked.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	_, err = f.portal.MyOrders(ctx, unlinked.ID)
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 403, apperror.GetAppError(err).Code)

	// another vendor cannot see or ship the order
	_, err = f.portal.MarkShipped(ctx, &MarkShippedInput{
		UserID: stranger.ID, Username: "portal@other.test", OrderID: po.ID,
	})
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	shipped, err := f.portal.MarkShipped(ctx, &MarkShippedInput{
		UserID: linked.ID, Username: "portal@apex.test", OrderID: po.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.POStatusShipped, shipped.Status)

	// a shipped order cannot be shipped twice
	_, err = f.portal.MarkShipped(ctx, &MarkShippedInput{
		UserID: linked.ID, Username: "portal@apex.test", OrderID: po.ID,
	})
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
