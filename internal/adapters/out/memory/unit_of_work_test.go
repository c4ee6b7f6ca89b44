package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzapos/internal/adapters/out/memory"
	"pizzapos/internal/core/domain/model/cart"
	"pizzapos/internal/core/domain/model/catalog"
	"pizzapos/internal/core/domain/model/kernel"
	"pizzapos/internal/core/domain/model/order"
	"pizzapos/internal/core/domain/model/terminal"
	"pizzapos/internal/core/domain/services"
	"pizzapos/internal/pkg/errs"
)

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	cat, err := catalog.NewSeededCatalog()
	require.NoError(t, err)
	pricer, err := services.NewPricer(cat, 0.05)
	require.NoError(t, err)
	term, err := terminal.NewTerminal(pricer)
	require.NoError(t, err)
	return memory.NewStore(cat, term)
}

func placedOrder(t *testing.T, token string) *order.Order {
	t.Helper()
	lines := []cart.Item{{
		CartID:    kernel.NewUUID().String(),
		ProductID: "p-cola",
		Name:      "Cola",
		Price:     2.5,
		BasePrice: 2.5,
		Quantity:  1,
	}}
	placed, err := order.NewOrder(
		kernel.NewUUID(),
		token,
		order.TypeTakeaway,
		order.PaymentCard,
		lines,
		order.Totals{Subtotal: 2.5, Tax: 0.125, Total: 2.63},
		time.Now(),
	)
	require.NoError(t, err)
	return placed
}

func TestUnitOfWork_Commit_KeepsMutations(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(newStore(t))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	term, err := uow.TerminalRepository().Get(ctx)
	require.NoError(t, err)
	term.AddTab()
	require.NoError(t, uow.TerminalRepository().Update(ctx, term))
	require.NoError(t, uow.Commit(ctx))

	uow = factory.Create()
	require.NoError(t, uow.Begin(ctx))
	term, err = uow.TerminalRepository().Get(ctx)
	require.NoError(t, err)
	assert.Len(t, term.Tabs(), 2)
	require.NoError(t, uow.Commit(ctx))
}

func TestUnitOfWork_Commit_WithoutBeginFails(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(newStore(t))

	uow := factory.Create()

	require.ErrorIs(t, uow.Commit(ctx), memory.ErrNoActiveUnitOfWork)
	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveUnitOfWork)
}

func TestUnitOfWork_Rollback_AfterCommitRejected(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(newStore(t))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit(ctx))

	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveUnitOfWork)
}

func TestUnitOfWork_SerializesOperations(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(newStore(t))

	first := factory.Create()
	require.NoError(t, first.Begin(ctx))

	entered := make(chan struct{})
	go func() {
		second := factory.Create()
		_ = second.Begin(ctx)
		close(entered)
		_ = second.Commit(ctx)
	}()

	select {
	case <-entered:
		t.Fatal("second unit of work entered before the first released the store")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, first.Commit(ctx))
	<-entered
}

func TestOrderRepository_Archive_MovesOrderToFrontOfHistory(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(newStore(t))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	repo := uow.OrderRepository()

	first := placedOrder(t, "#001")
	second := placedOrder(t, "#002")
	require.NoError(t, repo.AddLive(ctx, first))
	require.NoError(t, repo.AddLive(ctx, second))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.Archive(ctx, first.ID()))
	require.NoError(t, repo.Archive(ctx, second.ID()))

	live, err := repo.GetAllLive(ctx)
	require.NoError(t, err)
	assert.Empty(t, live)

	archived, err := repo.GetArchived(ctx)
	require.NoError(t, err)
	require.Len(t, archived, 2)
	assert.Equal(t, "#002", archived[0].Token())
	assert.Equal(t, "#001", archived[1].Token())

	// Archiving never loses an order from the count.
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, uow.Commit(ctx))
}

func TestOrderRepository_GetLive_ReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(newStore(t))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	_, err := uow.OrderRepository().GetLive(ctx, kernel.NewUUID())

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.NoError(t, uow.Commit(ctx))
}
