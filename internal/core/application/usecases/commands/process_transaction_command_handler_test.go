package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pizzapos/internal/core/application/usecases/commands"
	"pizzapos/internal/core/domain/model/order"
)

func TestProcessTransactionCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cat := seededCatalog(t)
	term := emptyTerminal(t, cat)

	product, ok := cat.ProductByID("p-cola")
	require.True(t, ok)
	stockBefore := product.Stock()
	_, err := term.AddToCart(product, nil, cat.Options().Defaults())
	require.NoError(t, err)

	cmd, err := commands.NewProcessTransactionCommand(order.PaymentCard)
	require.NoError(t, err)

	var placed *order.Order
	catalogRepo := new(MockCatalogRepository)
	terminalRepo := new(MockTerminalRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TerminalRepository").Return(terminalRepo).Once(),
		terminalRepo.On("Get", ctx).Return(term, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Count", ctx).Return(4, nil).Once(),
		orderRepo.On("AddLive", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				placed = args.Get(1).(*order.Order)
			}).
			Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("Get", ctx).Return(cat, nil).Once(),
		catalogRepo.On("Update", ctx, cat).Return(nil).Once(),
		terminalRepo.On("Update", ctx, term).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessTransactionCommandHandler(
		factory,
		seededPricer(t, cat),
		fixedRandom{value: 0.1},
		commands.CheckoutPolicy{DecrementStock: true},
	)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, placed)
	assert.Equal(t, "#005", placed.Token())
	assert.Equal(t, order.PaymentCard, placed.PaymentMethod())
	assert.Equal(t, order.TypeDineIn, placed.OrderType())
	require.Len(t, placed.Items(), 1)
	assert.Equal(t, order.ItemQueued, placed.Items()[0].Status)
	assert.InDelta(t, 2.5, placed.Totals().Subtotal, 1e-9)
	assert.InDelta(t, 0.125, placed.Totals().Tax, 1e-9)
	assert.InDelta(t, 2.63, placed.Totals().Total, 1e-9)

	// The cart is cleared and stock reduced by the sold quantity.
	assert.Empty(t, term.ActiveItems())
	assert.Equal(t, stockBefore-1, product.Stock())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProcessTransactionCommandHandler_Handle_EmptyCartIsNoop(t *testing.T) {
	ctx := context.Background()
	cat := seededCatalog(t)
	term := emptyTerminal(t, cat)
	cmd, err := commands.NewProcessTransactionCommand(order.PaymentCash)
	require.NoError(t, err)

	terminalRepo := new(MockTerminalRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TerminalRepository").Return(terminalRepo).Once(),
		terminalRepo.On("Get", ctx).Return(term, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessTransactionCommandHandler(
		factory,
		seededPricer(t, cat),
		fixedRandom{value: 0.1},
		commands.CheckoutPolicy{},
	)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestProcessTransactionCommandHandler_Handle_StockPolicyOff(t *testing.T) {
	ctx := context.Background()
	cat := seededCatalog(t)
	term := emptyTerminal(t, cat)

	product, ok := cat.ProductByID("p-cola")
	require.True(t, ok)
	stockBefore := product.Stock()
	_, err := term.AddToCart(product, nil, cat.Options().Defaults())
	require.NoError(t, err)

	cmd, err := commands.NewProcessTransactionCommand(order.PaymentUPI)
	require.NoError(t, err)

	terminalRepo := new(MockTerminalRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TerminalRepository").Return(terminalRepo).Once(),
		terminalRepo.On("Get", ctx).Return(term, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Count", ctx).Return(0, nil).Once(),
		orderRepo.On("AddLive", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		terminalRepo.On("Update", ctx, term).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessTransactionCommandHandler(
		factory,
		seededPricer(t, cat),
		fixedRandom{value: 0.9},
		commands.CheckoutPolicy{DecrementStock: false},
	)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, stockBefore, product.Stock())
	uow.AssertExpectations(t)
}

func TestNewProcessTransactionCommand_RejectsUnknownMethod(t *testing.T) {
	_, err := commands.NewProcessTransactionCommand(order.PaymentMethod("barter"))
	require.Error(t, err)
}
