package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzapos/internal/core/application/usecases/queries"
	"pizzapos/internal/core/domain/model/order"
)

func TestGetLiveOrdersQueryHandler_Handle_ReturnsInFlightOrders(t *testing.T) {
	ctx := context.Background()
	placedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	live := []*order.Order{liveOrder(t, "#001", placedAt)}

	orderRepo := &MockOrderRepository{}
	uow := &MockUnitOfWork{}
	expectRead(ctx, uow)
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetAllLive", ctx).Return(live, nil).Once()

	handler := queries.NewGetLiveOrdersQueryHandler(uowFactory(uow))
	response, err := handler.Handle(ctx, queries.NewGetLiveOrdersQuery())

	require.NoError(t, err)
	require.Len(t, response.Orders, 1)
	placed := response.Orders[0]
	assert.Equal(t, "#001", placed.Token)
	assert.Equal(t, order.TypeDineIn, placed.OrderType)
	assert.InDelta(t, 2.63, placed.Total, 1e-9)
	assert.InDelta(t, 12.0, placed.RemainingMinutes, 1e-9)
	assert.Equal(t, order.StationInProgress, placed.StationProgress[order.StationDough])
	require.Len(t, placed.Items, 1)
	assert.Equal(t, order.ItemQueued, placed.Items[0].Status)
	assert.False(t, placed.IsReady)
}

func TestGetOrdersArchiveQueryHandler_Handle_ReturnsCompletedOrders(t *testing.T) {
	ctx := context.Background()
	placedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	archived := []*order.Order{
		liveOrder(t, "#007", placedAt.Add(time.Hour)),
		liveOrder(t, "#003", placedAt),
	}

	orderRepo := &MockOrderRepository{}
	uow := &MockUnitOfWork{}
	expectRead(ctx, uow)
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetArchived", ctx).Return(archived, nil).Once()

	handler := queries.NewGetOrdersArchiveQueryHandler(uowFactory(uow))
	response, err := handler.Handle(ctx, queries.NewGetOrdersArchiveQuery())

	require.NoError(t, err)
	require.Len(t, response.Orders, 2)
	assert.Equal(t, "#007", response.Orders[0].Token)
	assert.Equal(t, "#003", response.Orders[1].Token)
}

func TestGetTabsQueryHandler_Handle_ListsOpenTabs(t *testing.T) {
	ctx := context.Background()
	cat := seededCatalog(t)
	term := emptyTerminal(t, cat)
	term.AddTab()

	terminalRepo := &MockTerminalRepository{}
	uow := &MockUnitOfWork{}
	expectRead(ctx, uow)
	uow.On("TerminalRepository").Return(terminalRepo).Once()
	terminalRepo.On("Get", ctx).Return(term, nil).Once()

	handler := queries.NewGetTabsQueryHandler(uowFactory(uow))
	response, err := handler.Handle(ctx, queries.NewGetTabsQuery())

	require.NoError(t, err)
	require.Len(t, response.Tabs, 2)
	assert.Equal(t, 1, response.ActiveIndex)
	assert.Equal(t, "Order 1", response.Tabs[0].Name)
	assert.Equal(t, "Order 2", response.Tabs[1].Name)
}

func TestGetHeldOrdersQueryHandler_Handle_ListsParkedOrders(t *testing.T) {
	ctx := context.Background()
	cat := seededCatalog(t)
	term := emptyTerminal(t, cat)

	product, ok := cat.ProductByID("p-cola")
	require.True(t, ok)
	_, err := term.AddToCart(product, nil, cat.Options().Defaults())
	require.NoError(t, err)
	heldAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, held := term.HoldOrder("phone call", heldAt)
	require.True(t, held)

	terminalRepo := &MockTerminalRepository{}
	uow := &MockUnitOfWork{}
	expectRead(ctx, uow)
	uow.On("TerminalRepository").Return(terminalRepo).Once()
	terminalRepo.On("Get", ctx).Return(term, nil).Once()

	handler := queries.NewGetHeldOrdersQueryHandler(uowFactory(uow))
	response, err := handler.Handle(ctx, queries.NewGetHeldOrdersQuery())

	require.NoError(t, err)
	require.Len(t, response.HeldOrders, 1)
	assert.Equal(t, "phone call", response.HeldOrders[0].Reason)
	assert.Equal(t, heldAt, response.HeldOrders[0].HeldAt)
}

func TestGetCustomizingSessionsQueryHandler_Handle_ReportsActiveSession(t *testing.T) {
	ctx := context.Background()
	cat := seededCatalog(t)
	term := emptyTerminal(t, cat)
	session := term.StartCustomizing("p-margherita")

	terminalRepo := &MockTerminalRepository{}
	uow := &MockUnitOfWork{}
	expectRead(ctx, uow)
	uow.On("TerminalRepository").Return(terminalRepo).Once()
	terminalRepo.On("Get", ctx).Return(term, nil).Once()

	handler := queries.NewGetCustomizingSessionsQueryHandler(uowFactory(uow))
	response, err := handler.Handle(ctx, queries.NewGetCustomizingSessionsQuery())

	require.NoError(t, err)
	require.Len(t, response.Sessions, 1)
	require.NotNil(t, response.ActiveSession)
	assert.Equal(t, session.TempID, response.ActiveSession.TempID)
	assert.Equal(t, "p-margherita", response.ActiveSession.ProductID)
}
