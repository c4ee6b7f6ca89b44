package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pizzapos/internal/core/application/usecases/commands"
	"pizzapos/internal/core/domain/model/catalog"
	"pizzapos/internal/core/domain/model/kernel"
	"pizzapos/internal/core/domain/model/order"
	"pizzapos/internal/core/domain/model/terminal"
	"pizzapos/internal/core/domain/services"
	"pizzapos/internal/core/ports"
)

// fixedRandom pins the uniform draw so probabilistic paths are deterministic.
type fixedRandom struct {
	value float64
}

func (f fixedRandom) Float64() float64 {
	return f.value
}

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

func (m *MockOrderRepository) GetLive(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetAllLive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetArchived(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Archive(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockUoW backs every unit-of-work flavor the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

func (m *MockUoW) TerminalRepository() ports.TerminalRepository {
	args := m.Called()
	return args.Get(0).(ports.TerminalRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockTerminalUoWFactory struct{ mock.Mock }

func (m *MockTerminalUoWFactory) Create() commands.TerminalUoW {
	args := m.Called()
	return args.Get(0).(commands.TerminalUoW)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockKitchenUoWFactory struct{ mock.Mock }

func (m *MockKitchenUoWFactory) Create() commands.KitchenUoW {
	args := m.Called()
	return args.Get(0).(commands.KitchenUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
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
