package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pizzapos/internal/core/domain/model/cart"
	"pizzapos/internal/core/domain/model/catalog"
	"pizzapos/internal/core/domain/model/kernel"
	"pizzapos/internal/core/domain/model/order"
	"pizzapos/internal/core/domain/model/terminal"
	"pizzapos/internal/core/domain/services"
	"pizzapos/internal/core/ports"
)

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) Get(ctx context.Context) (*catalog.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Catalog), args.Error(1)
}

func (m *MockCatalogRepository) Update(ctx context.Context, aggregate *catalog.Catalog) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockTerminalRepository struct{ mock.Mock }

func (m *MockTerminalRepository) Get(ctx context.Context) (*terminal.Terminal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*terminal.Terminal), args.Error(1)
}

func (m *MockTerminalRepository) Update(ctx context.Context, aggregate *terminal.Terminal) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) AddLive(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateLive(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) GetLive(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllLive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetArchived(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Archive(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

func (m *MockUnitOfWork) TerminalRepository() ports.TerminalRepository {
	args := m.Called()
	return args.Get(0).(ports.TerminalRepository)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUnitOfWorkFactory struct{ mock.Mock }

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

// Shared fixtures.

func seededCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.NewSeededCatalog()
	require.NoError(t, err)
	return cat
}

func seededPricer(t *testing.T, cat *catalog.Catalog) *services.Pricer {
	t.Helper()
	pricer, err := services.NewPricer(cat, 0.05)
	require.NoError(t, err)
	return pricer
}

func emptyTerminal(t *testing.T, cat *catalog.Catalog) *terminal.Terminal {
	t.Helper()
	term, err := terminal.NewTerminal(seededPricer(t, cat))
	require.NoError(t, err)
	return term
}

func uowFactory(uow *MockUnitOfWork) *MockUnitOfWorkFactory {
	factory := &MockUnitOfWorkFactory{}
	factory.On("Create").Return(uow).Once()
	return factory
}

// expectRead wires the Begin/Commit/Rollback bracket every read handler uses.
func expectRead(ctx context.Context, uow *MockUnitOfWork) {
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
}

func liveOrder(t *testing.T, token string, placedAt time.Time) *order.Order {
	t.Helper()
	lines := []cart.Item{{
		CartID:    kernel.NewUUID().String(),
		ProductID: "p-cola",
		Name:      "Cola",
		Price:     2.5,
		BasePrice: 2.5,
		Quantity:  1,
		Category:  "drinks",
	}}
	totals := order.Totals{Subtotal: 2.5, Tax: 0.125, Total: 2.63}
	placed, err := order.NewOrder(
		kernel.NewUUID(),
		token,
		order.TypeDineIn,
		order.PaymentCash,
		lines,
		totals,
		placedAt,
	)
	require.NoError(t, err)
	return placed
}
