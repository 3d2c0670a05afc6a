package serviceimpl

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
	"shop-backend/domain/repositories"
	"shop-backend/domain/services"
	"shop-backend/pkg/apperrors"
)

type orderFixture struct {
	svc       services.OrderService
	orders    *fakeOrderRepo
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	promos    *fakePromotionRepo
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{
		orders:    newFakeOrderRepo(),
		customers: newFakeCustomerRepo(),
		products:  newFakeProductRepo(),
		promos:    newFakePromotionRepo(),
	}
	promoService := NewPromotionService(f.promos)
	// nil publisher drops events, same as running without the broker
	f.svc = NewOrderService(f.orders, f.customers, f.products, promoService, nil)
	return f
}

func (f *orderFixture) seedProduct(t *testing.T, name string, price int64, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:       uuid.New(),
		Name:     name,
		Slug:     name,
		Price:    price,
		IsActive: active,
	}
	require.NoError(t, f.products.Create(context.Background(), product))
	return product
}

func TestOrderCreateSnapshotsItemsAndTotals(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	bouquet := f.seedProduct(t, "bouquet", 2500, true)
	card := f.seedProduct(t, "card", 300, true)

	order, err := f.svc.Create(ctx, &dto.CreateOrderRequest{
		CustomerName:  "Anna",
		CustomerPhone: "+70001112233",
		Items: []dto.OrderItemRequest{
			{ProductID: bouquet.ID, Quantity: 2},
			{ProductID: card.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusNew, order.Status)
	assert.Equal(t, int64(2*2500+300), order.Total)
	assert.True(t, strings.HasPrefix(order.Number, "ORD-"), "number = %s", order.Number)
	assert.True(t, strings.HasSuffix(order.Number, "-0001"), "number = %s", order.Number)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "bouquet", order.Items[0].Name)
	assert.Equal(t, int64(2500), order.Items[0].Price)

	// the item snapshot survives later product edits
	bouquet.Price = 9999
	require.NoError(t, f.products.Update(ctx, bouquet))
	stored, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), stored.Items[0].Price)
}

func TestOrderCreateMatchesRepeatCustomerByPhone(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "bouquet", 2500, true)

	first, err := f.svc.Create(ctx, &dto.CreateOrderRequest{
		CustomerName:  "Anna",
		CustomerPhone: "+70001112233",
		Items:         []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	second, err := f.svc.Create(ctx, &dto.CreateOrderRequest{
		CustomerName:  "A. Different Name",
		CustomerPhone: "+70001112233",
		Items:         []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, first.CustomerID, second.CustomerID)
	_, total, err := f.customers.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestOrderCreateRejectsInactiveProduct(t *testing.T) {
	f := newOrderFixture(t)
	product := f.seedProduct(t, "retired", 1000, false)

	_, err := f.svc.Create(context.Background(), &dto.CreateOrderRequest{
		CustomerName:  "Anna",
		CustomerPhone: "+70001112233",
		Items:         []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	})

	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestOrderCreateUnknownProduct(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.Create(context.Background(), &dto.CreateOrderRequest{
		CustomerName:  "Anna",
		CustomerPhone: "+70001112233",
		Items:         []dto.OrderItemRequest{{ProductID: uuid.New(), Quantity: 1}},
	})

	var refErr *apperrors.ReferenceError
	require.ErrorAs(t, err, &refErr)
}

func TestOrderCreateAppliesPromo(t *testing.T) {
	tests := []struct {
		name      string
		kind      models.PromotionKind
		value     int64
		price     int64
		wantTotal int64
	}{
		{"percent discount", models.PromotionKindPercent, 10, 2000, 1800},
		{"fixed discount", models.PromotionKindFixed, 500, 2000, 1500},
		{"fixed discount clamps at zero", models.PromotionKindFixed, 5000, 2000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			product := f.seedProduct(t, "bouquet", tt.price, true)
			f.promos.add(&models.Promotion{
				ID: uuid.New(), Code: "DEAL", Kind: tt.kind, Value: tt.value, IsActive: true,
			})

			order, err := f.svc.Create(context.Background(), &dto.CreateOrderRequest{
				CustomerName:  "Anna",
				CustomerPhone: "+70001112233",
				PromoCode:     "DEAL",
				Items:         []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, order.Total)
		})
	}
}

func TestOrderCreateInvalidPromoFailsOrder(t *testing.T) {
	f := newOrderFixture(t)
	product := f.seedProduct(t, "bouquet", 2000, true)

	_, err := f.svc.Create(context.Background(), &dto.CreateOrderRequest{
		CustomerName:  "Anna",
		CustomerPhone: "+70001112233",
		PromoCode:     "NOPE",
		Items:         []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	})
	require.Error(t, err)

	_, total, _ := f.orders.List(context.Background(), repositories.OrderFilter{}, 1, 10)
	assert.Equal(t, int64(0), total, "failed order must not persist")
}

func TestOrderCreateLostRedeemRaceLeavesNoOrder(t *testing.T) {
	f := newOrderFixture(t)
	product := f.seedProduct(t, "bouquet", 2000, true)
	promo := f.promos.add(&models.Promotion{
		ID: uuid.New(), Code: "LAST", Kind: models.PromotionKindFixed,
		Value: 500, UsageLimit: 10, IsActive: true,
	})

	// validation sees headroom but the increment loses to a concurrent order
	f.promos.incrementDenied = true
	_, err := f.svc.Create(context.Background(), &dto.CreateOrderRequest{
		CustomerName:  "Anna",
		CustomerPhone: "+70001112233",
		PromoCode:     "last",
		Items:         []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	})

	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)

	_, total, _ := f.orders.List(context.Background(), repositories.OrderFilter{}, 1, 10)
	assert.Equal(t, int64(0), total, "the discounted order must be unwound")

	stored, _ := f.promos.GetByID(context.Background(), promo.ID)
	assert.Equal(t, 0, stored.UsedCount)
}

func TestOrderCreateFailedInsertBurnsNoUsage(t *testing.T) {
	f := newOrderFixture(t)
	product := f.seedProduct(t, "bouquet", 2000, true)
	promo := f.promos.add(&models.Promotion{
		ID: uuid.New(), Code: "DEAL", Kind: models.PromotionKindFixed,
		Value: 500, UsageLimit: 10, IsActive: true,
	})
	f.orders.failCreate = true

	_, err := f.svc.Create(context.Background(), &dto.CreateOrderRequest{
		CustomerName:  "Anna",
		CustomerPhone: "+70001112233",
		PromoCode:     "DEAL",
		Items:         []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	})
	require.Error(t, err)

	stored, _ := f.promos.GetByID(context.Background(), promo.ID)
	assert.Equal(t, 0, stored.UsedCount, "usage increments only after the order persists")
}

func TestOrderUpdateStatus(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "bouquet", 2000, true)

	order, err := f.svc.Create(ctx, &dto.CreateOrderRequest{
		CustomerName:  "Anna",
		CustomerPhone: "+70001112233",
		Items:         []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(ctx, order.ID, models.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, updated.Status)

	// DELIVERED straight from CONFIRMED skips shipping
	_, err = f.svc.UpdateStatus(ctx, order.ID, models.OrderStatusDelivered)
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)

	stored, _ := f.orders.GetByID(ctx, order.ID)
	assert.Equal(t, models.OrderStatusConfirmed, stored.Status)
}
