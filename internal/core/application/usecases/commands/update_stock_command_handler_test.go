package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pizzapos/internal/core/application/usecases/commands"
	"pizzapos/internal/core/domain/model/catalog"
)

func expectCatalogMutation(uow *MockUoW, catalogRepo *MockCatalogRepository, cat *catalog.Catalog) {
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("Get", mock.Anything).Return(cat, nil).Once(),
		catalogRepo.On("Update", mock.Anything, cat).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)
}

func catalogFactory(uow *MockUoW) *MockCatalogUoWFactory {
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory
}

func TestUpdateStockCommandHandler_Handle_RederivesStatus(t *testing.T) {
	ctx := context.Background()
	cat := seededCatalog(t)
	cmd, err := commands.NewUpdateStockCommand("p-margherita", 3)
	require.NoError(t, err)

	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)
	expectCatalogMutation(uow, catalogRepo, cat)

	h := commands.NewUpdateStockCommandHandler(catalogFactory(uow))
	require.NoError(t, h.Handle(ctx, cmd))

	product, ok := cat.ProductByID("p-margherita")
	require.True(t, ok)
	assert.Equal(t, 3, product.Stock())
	assert.Equal(t, catalog.StockLow, product.StockStatus())
	uow.AssertExpectations(t)
}

func TestUpdateStockCommandHandler_Handle_UnknownProductIsNoop(t *testing.T) {
	ctx := context.Background()
	cat := seededCatalog(t)
	cmd, err := commands.NewUpdateStockCommand("p-missing", 3)
	require.NoError(t, err)

	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)
	expectCatalogMutation(uow, catalogRepo, cat)

	h := commands.NewUpdateStockCommandHandler(catalogFactory(uow))
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestNewUpdateStockCommand_RejectsNegativeStock(t *testing.T) {
	_, err := commands.NewUpdateStockCommand("p-margherita", -1)
	assert.ErrorIs(t, err, commands.ErrStockIsInvalid)
}

func TestUpdateToppingStatusCommandHandler_Handle_SetsStatus(t *testing.T) {
	ctx := context.Background()
	cat := seededCatalog(t)
	cmd, err := commands.NewUpdateToppingStatusCommand("t-mushroom", catalog.StockOut)
	require.NoError(t, err)

	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)
	expectCatalogMutation(uow, catalogRepo, cat)

	h := commands.NewUpdateToppingStatusCommandHandler(catalogFactory(uow))
	require.NoError(t, h.Handle(ctx, cmd))

	topping, ok := cat.ToppingByID("t-mushroom")
	require.True(t, ok)
	assert.Equal(t, catalog.StockOut, topping.Status())
	uow.AssertExpectations(t)
}

func TestNewUpdateToppingStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateToppingStatusCommand("t-mushroom", catalog.StockStatus("plenty"))
	require.Error(t, err)
}
