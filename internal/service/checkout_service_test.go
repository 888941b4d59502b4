package service_test

import (
	"context"
	"strings"
	"testing"

	"boba-storefront/internal/models"
	"boba-storefront/internal/repository"
	"boba-storefront/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testRepos struct {
	repo     *repository.Repository
	users    *MockUserRepo
	addrs    *MockAddressRepo
	products *MockProductRepo
	cart     *MockCartRepo
	orders   *MockOrderRepo
	items    *MockOrderItemRepo
	payments *MockPaymentRepo
}

func newTestRepos() *testRepos {
	tr := &testRepos{
		users:    &MockUserRepo{},
		addrs:    &MockAddressRepo{},
		products: &MockProductRepo{},
		cart:     &MockCartRepo{},
		orders:   &MockOrderRepo{},
		items:    &MockOrderItemRepo{},
		payments: &MockPaymentRepo{},
	}
	tx := &MockTxRunner{}
	tr.repo = &repository.Repository{
		Tx:             tx,
		Users:          tr.users,
		Addresses:      tr.addrs,
		Products:       tr.products,
		Customizations: &MockCustomizationRepo{},
		Cart:           tr.cart,
		Orders:         tr.orders,
		OrderItems:     tr.items,
		Payments:       tr.payments,
	}
	tx.Repo = tr.repo
	return tr
}

func authedCtx(userID uuid.UUID, role models.Role) context.Context {
	ctx := service.WithUserID(context.Background(), userID)
	return service.WithRole(ctx, role)
}

func cartRow(variantID uuid.UUID, qty int, base, modifier int64, toppings ...string) models.CartItem {
	return models.CartItem{
		ID:        uuid.New(),
		VariantID: variantID,
		Quantity:  qty,
		Customizations: models.Customizations{
			SugarLevel: "regular",
			IceLevel:   "regular",
			Toppings:   toppings,
		},
		Variant: &models.ProductVariant{
			ID:            variantID,
			Name:          "Large",
			PriceModifier: modifier,
			Product: &models.Product{
				Name:      "Brown Sugar Milk Tea",
				BasePrice: base,
			},
		},
	}
}

func TestPlaceOrder_RequiresAuth(t *testing.T) {
	tr := newTestRepos()
	svc := service.NewCheckoutService(tr.repo, nil, zap.NewNop())

	_, err := svc.PlaceOrder(context.Background(), service.PlaceOrderInput{})
	if err != service.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized got %v", err)
	}
}

func TestPlaceOrder_EmptyCartWritesNothing(t *testing.T) {
	tr := newTestRepos()

	var orderCreates, itemCreates, cartDeletes int
	tr.cart.ListByUserFunc = func(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
		return nil, nil
	}
	tr.orders.CreateFunc = func(ctx context.Context, o *models.Order) error {
		orderCreates++
		return nil
	}
	tr.items.BulkCreateFunc = func(ctx context.Context, items []models.OrderItem) error {
		itemCreates++
		return nil
	}
	tr.cart.DeleteByUserFunc = func(ctx context.Context, userID uuid.UUID) (int64, error) {
		cartDeletes++
		return 0, nil
	}

	svc := service.NewCheckoutService(tr.repo, nil, zap.NewNop())
	_, err := svc.PlaceOrder(authedCtx(uuid.New(), models.RoleCustomer), service.PlaceOrderInput{})
	if err != service.ErrCartEmpty {
		t.Fatalf("expected ErrCartEmpty got %v", err)
	}
	if orderCreates != 0 || itemCreates != 0 || cartDeletes != 0 {
		t.Fatalf("empty cart must not write: orders=%d items=%d deletes=%d",
			orderCreates, itemCreates, cartDeletes)
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	tr := newTestRepos()
	userID := uuid.New()

	v1, v2 := uuid.New(), uuid.New()
	rows := []models.CartItem{
		cartRow(v1, 2, 28000, 0, "tapioca_pearl"),
		cartRow(v2, 1, 30000, 4000),
	}
	tr.cart.ListByUserFunc = func(ctx context.Context, uid uuid.UUID) ([]models.CartItem, error) {
		if uid != userID {
			t.Fatalf("wrong user id")
		}
		return rows, nil
	}

	var created *models.Order
	tr.orders.CreateFunc = func(ctx context.Context, o *models.Order) error {
		o.ID = uuid.New()
		created = o
		return nil
	}

	var createdItems []models.OrderItem
	tr.items.BulkCreateFunc = func(ctx context.Context, items []models.OrderItem) error {
		createdItems = items
		return nil
	}

	var cartCleared bool
	tr.cart.DeleteByUserFunc = func(ctx context.Context, uid uuid.UUID) (int64, error) {
		cartCleared = true
		return int64(len(rows)), nil
	}

	bus := &MockEventBus{}
	svc := service.NewCheckoutService(tr.repo, bus, zap.NewNop())

	order, err := svc.PlaceOrder(authedCtx(userID, models.RoleCustomer), service.PlaceOrderInput{})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	// 2x(28000+5000) + 1x34000 = 100000 -> free shipping, tax 11000
	if created.Subtotal != 100000 {
		t.Fatalf("subtotal expected 100000 got %d", created.Subtotal)
	}
	if created.TaxAmount != 11000 {
		t.Fatalf("tax expected 11000 got %d", created.TaxAmount)
	}
	if created.ShippingAmount != 0 {
		t.Fatalf("shipping expected 0 got %d", created.ShippingAmount)
	}
	if created.TotalAmount != 111000 {
		t.Fatalf("total expected 111000 got %d", created.TotalAmount)
	}
	if created.Status != models.OrderStatusPending {
		t.Fatalf("status expected pending got %s", created.Status)
	}
	if !strings.HasPrefix(created.OrderNumber, "BOBA-") {
		t.Fatalf("order number %q", created.OrderNumber)
	}

	if len(createdItems) != 2 {
		t.Fatalf("expected 2 order items got %d", len(createdItems))
	}
	var itemSum int64
	for _, it := range createdItems {
		itemSum += it.TotalPrice
	}
	if itemSum != created.Subtotal {
		t.Fatalf("item totals %d must equal subtotal %d", itemSum, created.Subtotal)
	}
	first := createdItems[0]
	if first.ProductName != "Brown Sugar Milk Tea" || first.UnitPrice != 28000 {
		t.Fatalf("snapshot mismatch: %+v", first)
	}
	if len(first.Customizations) != 1 || first.Customizations[0].PriceModifier != 5000 {
		t.Fatalf("customization snapshot mismatch: %+v", first.Customizations)
	}

	if !cartCleared {
		t.Fatal("cart was not cleared")
	}
	if len(bus.OrderCreated) != 1 || bus.OrderCreated[0].OrderNumber != order.OrderNumber {
		t.Fatalf("order created event missing: %+v", bus.OrderCreated)
	}
}

func TestPlaceOrder_RetriesOnDuplicateOrderNumber(t *testing.T) {
	tr := newTestRepos()
	userID := uuid.New()

	tr.cart.ListByUserFunc = func(ctx context.Context, uid uuid.UUID) ([]models.CartItem, error) {
		return []models.CartItem{cartRow(uuid.New(), 1, 25000, 0)}, nil
	}

	var attempts int
	var numbers []string
	tr.orders.CreateFunc = func(ctx context.Context, o *models.Order) error {
		attempts++
		numbers = append(numbers, o.OrderNumber)
		if attempts < 3 {
			return gorm.ErrDuplicatedKey
		}
		o.ID = uuid.New()
		return nil
	}

	svc := service.NewCheckoutService(tr.repo, nil, zap.NewNop())
	_, err := svc.PlaceOrder(authedCtx(userID, models.RoleCustomer), service.PlaceOrderInput{})
	if err != nil {
		t.Fatalf("expected success on third attempt, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts got %d", attempts)
	}
	if numbers[0] == numbers[1] && numbers[1] == numbers[2] {
		t.Fatalf("order number must be regenerated per attempt: %v", numbers)
	}
}

func TestPlaceOrder_GivesUpAfterThreeDuplicates(t *testing.T) {
	tr := newTestRepos()

	tr.cart.ListByUserFunc = func(ctx context.Context, uid uuid.UUID) ([]models.CartItem, error) {
		return []models.CartItem{cartRow(uuid.New(), 1, 25000, 0)}, nil
	}

	var attempts int
	tr.orders.CreateFunc = func(ctx context.Context, o *models.Order) error {
		attempts++
		return gorm.ErrDuplicatedKey
	}

	svc := service.NewCheckoutService(tr.repo, nil, zap.NewNop())
	_, err := svc.PlaceOrder(authedCtx(uuid.New(), models.RoleCustomer), service.PlaceOrderInput{})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if attempts != 3 {
		t.Fatalf("expected exactly 3 attempts got %d", attempts)
	}
}

func TestPlaceOrder_InvalidAddressRejected(t *testing.T) {
	tr := newTestRepos()
	svc := service.NewCheckoutService(tr.repo, nil, zap.NewNop())

	_, err := svc.PlaceOrder(authedCtx(uuid.New(), models.RoleCustomer), service.PlaceOrderInput{
		ShippingAddress: &service.AddressInput{
			FullName:      "A",
			Phone:         "1",
			StreetAddress: "x",
			City:          "J",
			PostalCode:    "1",
		},
	})
	if err != service.ErrAddressInvalid {
		t.Fatalf("expected ErrAddressInvalid got %v", err)
	}
}

func TestInitiatePayment_CashOnDeliveryConfirms(t *testing.T) {
	tr := newTestRepos()
	userID := uuid.New()
	orderID := uuid.New()

	tr.orders.GetByIDForUserFunc = func(ctx context.Context, id, uid uuid.UUID) (*models.Order, error) {
		return &models.Order{
			ID:          orderID,
			UserID:      userID,
			OrderNumber: "BOBA-20241230-AAAA",
			Status:      models.OrderStatusPending,
			TotalAmount: 53850,
		}, nil
	}

	var createdPayment *models.Payment
	tr.payments.CreateFunc = func(ctx context.Context, p *models.Payment) error {
		p.ID = uuid.New()
		createdPayment = p
		return nil
	}

	var newStatus models.OrderStatus
	tr.orders.UpdateStatusFunc = func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
		newStatus = status
		return nil
	}

	bus := &MockEventBus{}
	svc := service.NewCheckoutService(tr.repo, bus, zap.NewNop())

	payment, redirect, err := svc.InitiatePayment(
		authedCtx(userID, models.RoleCustomer), orderID, models.PaymentCashOnDelivery)
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}
	if payment.Status != models.PaymentStatusPending {
		t.Fatalf("cod payment expected pending got %s", payment.Status)
	}
	if createdPayment.Amount != 53850 || createdPayment.Currency != "IDR" {
		t.Fatalf("payment snapshot mismatch: %+v", createdPayment)
	}
	if newStatus != models.OrderStatusConfirmed {
		t.Fatalf("cod order expected confirmed got %s", newStatus)
	}
	if redirect != "/checkout/success?order=BOBA-20241230-AAAA" {
		t.Fatalf("redirect mismatch: %q", redirect)
	}
	if len(bus.PaymentsInitiated) != 1 {
		t.Fatalf("payment initiated event missing")
	}
}

func TestInitiatePayment_OnlineMethodStaysPending(t *testing.T) {
	tr := newTestRepos()
	userID := uuid.New()
	orderID := uuid.New()

	tr.orders.GetByIDForUserFunc = func(ctx context.Context, id, uid uuid.UUID) (*models.Order, error) {
		return &models.Order{ID: orderID, UserID: userID, Status: models.OrderStatusPending, TotalAmount: 40000}, nil
	}

	var statusUpdated bool
	tr.orders.UpdateStatusFunc = func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
		statusUpdated = true
		return nil
	}

	svc := service.NewCheckoutService(tr.repo, nil, zap.NewNop())
	payment, _, err := svc.InitiatePayment(
		authedCtx(userID, models.RoleCustomer), orderID, models.PaymentEWallet)
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}
	if payment.Status != models.PaymentStatusProcessing {
		t.Fatalf("expected processing got %s", payment.Status)
	}
	if statusUpdated {
		t.Fatal("online payment must not change the order status")
	}
}

func TestInitiatePayment_Rejections(t *testing.T) {
	tr := newTestRepos()
	userID := uuid.New()

	svc := service.NewCheckoutService(tr.repo, nil, zap.NewNop())
	ctx := authedCtx(userID, models.RoleCustomer)

	if _, _, err := svc.InitiatePayment(ctx, uuid.New(), "paypal"); err != service.ErrInvalidPaymentMethod {
		t.Fatalf("unknown method: expected ErrInvalidPaymentMethod got %v", err)
	}

	// not found (also covers ownership: the lookup is owner-scoped)
	if _, _, err := svc.InitiatePayment(ctx, uuid.New(), models.PaymentQRIS); err != service.ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound got %v", err)
	}

	tr.orders.GetByIDForUserFunc = func(c context.Context, id, uid uuid.UUID) (*models.Order, error) {
		return &models.Order{ID: id, Status: models.OrderStatusConfirmed}, nil
	}
	if _, _, err := svc.InitiatePayment(ctx, uuid.New(), models.PaymentQRIS); err != service.ErrOrderAlreadyProcessed {
		t.Fatalf("expected ErrOrderAlreadyProcessed got %v", err)
	}
}

func TestUpdateOrderStatus_RoleAndValidation(t *testing.T) {
	tr := newTestRepos()
	orderID := uuid.New()

	tr.orders.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
		return &models.Order{ID: orderID, OrderNumber: "BOBA-20241230-BBBB", Status: models.OrderStatusPending}, nil
	}

	bus := &MockEventBus{}
	svc := service.NewCheckoutService(tr.repo, bus, zap.NewNop())

	if _, err := svc.UpdateOrderStatus(
		authedCtx(uuid.New(), models.RoleCustomer), orderID, models.OrderStatusPreparing); err != service.ErrForbidden {
		t.Fatalf("customer: expected ErrForbidden got %v", err)
	}

	adminCtx := authedCtx(uuid.New(), models.RoleAdmin)
	if _, err := svc.UpdateOrderStatus(adminCtx, orderID, "shipped"); err != service.ErrInvalidOrderStatus {
		t.Fatalf("expected ErrInvalidOrderStatus got %v", err)
	}

	order, err := svc.UpdateOrderStatus(adminCtx, orderID, models.OrderStatusPreparing)
	if err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if order.Status != models.OrderStatusPreparing {
		t.Fatalf("status not applied: %s", order.Status)
	}
	if len(bus.StatusChanged) != 1 || bus.StatusChanged[0].OldStatus != models.OrderStatusPending {
		t.Fatalf("status changed event mismatch: %+v", bus.StatusChanged)
	}
}

func TestListOrders_ScopesByRole(t *testing.T) {
	tr := newTestRepos()
	userID := uuid.New()

	var gotFilter repository.OrderListFilter
	tr.orders.ListFunc = func(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error) {
		gotFilter = f
		return nil, 0, nil
	}

	svc := service.NewCheckoutService(tr.repo, nil, zap.NewNop())

	if _, _, err := svc.ListOrders(authedCtx(userID, models.RoleCustomer), service.OrderListFilter{}); err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if gotFilter.UserID == nil || *gotFilter.UserID != userID {
		t.Fatalf("customer list must be owner-scoped: %+v", gotFilter)
	}

	if _, _, err := svc.ListOrders(authedCtx(userID, models.RoleAdmin), service.OrderListFilter{}); err != nil {
		t.Fatalf("ListOrders admin: %v", err)
	}
	if gotFilter.UserID != nil {
		t.Fatalf("admin list must not be owner-scoped: %+v", gotFilter)
	}
}
