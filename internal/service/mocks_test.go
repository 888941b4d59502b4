package service_test

import (
	"context"
	"time"

	"boba-storefront/internal/models"
	"boba-storefront/internal/repository"
	"boba-storefront/internal/service"

	"github.com/google/uuid"
)

// Mocks for the repository and collaborator interfaces. A nil func field
// means "succeed and return the zero value".

type MockUserRepo struct {
	CreateFunc        func(ctx context.Context, u *models.User) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *MockUserRepo) Create(ctx context.Context, u *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

type MockAddressRepo struct {
	CreateFunc         func(ctx context.Context, a *models.Address) error
	GetByIDForUserFunc func(ctx context.Context, id, userID uuid.UUID) (*models.Address, error)
	ListByUserFunc     func(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
}

func (m *MockAddressRepo) Create(ctx context.Context, a *models.Address) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *MockAddressRepo) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Address, error) {
	if m.GetByIDForUserFunc != nil {
		return m.GetByIDForUserFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockAddressRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

type MockProductRepo struct {
	CreateFunc             func(ctx context.Context, p *models.Product) error
	CreateVariantFunc      func(ctx context.Context, v *models.ProductVariant) error
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlugFunc          func(ctx context.Context, slug string) (*models.Product, error)
	ExistsBySlugFunc       func(ctx context.Context, slug string) (bool, error)
	ListFunc               func(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error)
	UpdateFieldsFunc       func(ctx context.Context, id uuid.UUID, fields map[string]any) error
	GetVariantByIDFunc     func(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error)
	UpdateVariantStockFunc func(ctx context.Context, id uuid.UUID, stock int) error
}

func (m *MockProductRepo) Create(ctx context.Context, p *models.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockProductRepo) CreateVariant(ctx context.Context, v *models.ProductVariant) error {
	if m.CreateVariantFunc != nil {
		return m.CreateVariantFunc(ctx, v)
	}
	return nil
}

func (m *MockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockProductRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	if m.ExistsBySlugFunc != nil {
		return m.ExistsBySlugFunc(ctx, slug)
	}
	return false, nil
}

func (m *MockProductRepo) List(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockProductRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockProductRepo) GetVariantByID(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error) {
	if m.GetVariantByIDFunc != nil {
		return m.GetVariantByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepo) UpdateVariantStock(ctx context.Context, id uuid.UUID, stock int) error {
	if m.UpdateVariantStockFunc != nil {
		return m.UpdateVariantStockFunc(ctx, id, stock)
	}
	return nil
}

type MockCustomizationRepo struct {
	ListActiveFunc func(ctx context.Context) ([]models.CustomizationOption, error)
}

func (m *MockCustomizationRepo) ListActive(ctx context.Context) ([]models.CustomizationOption, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type MockCartRepo struct {
	CreateFunc            func(ctx context.Context, item *models.CartItem) error
	FindMatchingFunc      func(ctx context.Context, userID, variantID uuid.UUID, cust models.Customizations) (*models.CartItem, error)
	IncrementQuantityFunc func(ctx context.Context, id uuid.UUID, delta int) error
	UpdateQuantityFunc    func(ctx context.Context, id, userID uuid.UUID, quantity int) (int64, error)
	DeleteFunc            func(ctx context.Context, id, userID uuid.UUID) (int64, error)
	DeleteByUserFunc      func(ctx context.Context, userID uuid.UUID) (int64, error)
	ListByUserFunc        func(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	CountByUserFunc       func(ctx context.Context, userID uuid.UUID) (int64, error)
}

func (m *MockCartRepo) Create(ctx context.Context, item *models.CartItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *MockCartRepo) FindMatching(ctx context.Context, userID, variantID uuid.UUID, cust models.Customizations) (*models.CartItem, error) {
	if m.FindMatchingFunc != nil {
		return m.FindMatchingFunc(ctx, userID, variantID, cust)
	}
	return nil, nil
}

func (m *MockCartRepo) IncrementQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	if m.IncrementQuantityFunc != nil {
		return m.IncrementQuantityFunc(ctx, id, delta)
	}
	return nil
}

func (m *MockCartRepo) UpdateQuantity(ctx context.Context, id, userID uuid.UUID, quantity int) (int64, error) {
	if m.UpdateQuantityFunc != nil {
		return m.UpdateQuantityFunc(ctx, id, userID, quantity)
	}
	return 1, nil
}

func (m *MockCartRepo) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return 1, nil
}

func (m *MockCartRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.DeleteByUserFunc != nil {
		return m.DeleteByUserFunc(ctx, userID)
	}
	return 0, nil
}

func (m *MockCartRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockCartRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID)
	}
	return 0, nil
}

type MockOrderRepo struct {
	CreateFunc             func(ctx context.Context, o *models.Order) error
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByIDForUserFunc     func(ctx context.Context, id, userID uuid.UUID) (*models.Order, error)
	GetByNumberForUserFunc func(ctx context.Context, orderNumber string, userID uuid.UUID) (*models.Order, error)
	UpdateStatusFunc       func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	ListFunc               func(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error)
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderRepo) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Order, error) {
	if m.GetByIDForUserFunc != nil {
		return m.GetByIDForUserFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockOrderRepo) GetByNumberForUser(ctx context.Context, orderNumber string, userID uuid.UUID) (*models.Order, error) {
	if m.GetByNumberForUserFunc != nil {
		return m.GetByNumberForUserFunc(ctx, orderNumber, userID)
	}
	return nil, nil
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockOrderRepo) List(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

type MockOrderItemRepo struct {
	BulkCreateFunc     func(ctx context.Context, items []models.OrderItem) error
	GetByOrderIDFunc   func(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	CountByOrderIDFunc func(ctx context.Context, orderID uuid.UUID) (int64, error)
}

func (m *MockOrderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, items)
	}
	return nil
}

func (m *MockOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *MockOrderItemRepo) CountByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	if m.CountByOrderIDFunc != nil {
		return m.CountByOrderIDFunc(ctx, orderID)
	}
	return 0, nil
}

type MockPaymentRepo struct {
	CreateFunc       func(ctx context.Context, p *models.Payment) error
	GetByOrderIDFunc func(ctx context.Context, orderID uuid.UUID) (*models.Payment, error)
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockPaymentRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Payment, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, orderID)
	}
	return nil, nil
}

// MockTxRunner hands fn the same Repository, so tests observe the writes
// without a real transaction.
type MockTxRunner struct {
	Repo       *repository.Repository
	WithTxFunc func(ctx context.Context, fn func(tx *repository.Repository) error) error
}

func (m *MockTxRunner) WithTx(ctx context.Context, fn func(tx *repository.Repository) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, fn)
	}
	return fn(m.Repo)
}

type MockEventBus struct {
	OrderCreated       []service.OrderCreatedEvent
	StatusChanged      []service.OrderStatusChangedEvent
	PaymentsInitiated  []service.PaymentInitiatedEvent
	PublishCreatedFunc func(ctx context.Context, e service.OrderCreatedEvent) error
}

func (m *MockEventBus) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	if m.PublishCreatedFunc != nil {
		return m.PublishCreatedFunc(ctx, e)
	}
	m.OrderCreated = append(m.OrderCreated, e)
	return nil
}

func (m *MockEventBus) PublishOrderStatusChanged(ctx context.Context, e service.OrderStatusChangedEvent) error {
	m.StatusChanged = append(m.StatusChanged, e)
	return nil
}

func (m *MockEventBus) PublishPaymentInitiated(ctx context.Context, e service.PaymentInitiatedEvent) error {
	m.PaymentsInitiated = append(m.PaymentsInitiated, e)
	return nil
}

type MockHasher struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hash, password string) error
}

func (m *MockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *MockHasher) Compare(hash, password string) error {
	if m.CompareFunc != nil {
		return m.CompareFunc(hash, password)
	}
	if hash != "hashed:"+password {
		return service.ErrInvalidCredentials
	}
	return nil
}

type MockTokens struct {
	SignAccessFunc func(ctx context.Context, sub uuid.UUID, email, role string, ttl time.Duration) (string, time.Time, error)
	ParseFunc      func(ctx context.Context, token string) (*service.Claims, error)
}

func (m *MockTokens) SignAccess(ctx context.Context, sub uuid.UUID, email, role string, ttl time.Duration) (string, time.Time, error) {
	if m.SignAccessFunc != nil {
		return m.SignAccessFunc(ctx, sub, email, role, ttl)
	}
	return "token-" + sub.String(), time.Now().Add(ttl), nil
}

func (m *MockTokens) ParseAndValidateAccess(ctx context.Context, token string) (*service.Claims, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(ctx, token)
	}
	return nil, service.ErrUnauthorized
}
