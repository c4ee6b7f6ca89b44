package cmd

import (
	"math/rand"
	"time"

	"pizzapos/internal/adapters/out/memory"
	"pizzapos/internal/core/application/usecases/commands"
	"pizzapos/internal/core/application/usecases/queries"
	"pizzapos/internal/core/domain/model/catalog"
	"pizzapos/internal/core/domain/model/order"
	"pizzapos/internal/core/domain/model/terminal"
	"pizzapos/internal/core/domain/services"
	"pizzapos/internal/core/ports"
)

type CompositionRoot struct {
	config     Config
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	pricer     *services.Pricer
	random     order.RandomSource
}

func NewCompositionRoot(config Config) (CompositionRoot, error) {
	cat, err := catalog.NewSeededCatalog()
	if err != nil {
		return CompositionRoot{}, err
	}

	pricer, err := services.NewPricer(cat, config.TaxRate)
	if err != nil {
		return CompositionRoot{}, err
	}

	term, err := terminal.NewTerminal(pricer)
	if err != nil {
		return CompositionRoot{}, err
	}

	store := memory.NewStore(cat, term)

	return CompositionRoot{
		config:     config,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		pricer:     pricer,
		random:     mathRandom{},
	}, nil
}

func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return c.uowFactory
}

func (c *CompositionRoot) terminalUoWFactory() commands.TerminalUoWFactory {
	return FuncTerminalUoWFactory(func() commands.TerminalUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) kitchenUoWFactory() commands.KitchenUoWFactory {
	return FuncKitchenUoWFactory(func() commands.KitchenUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	return commands.NewAddToCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateApplyTemplateCommandHandler() commands.ApplyTemplateCommandHandler {
	return commands.NewApplyTemplateCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	return commands.NewUpdateCartItemCommandHandler(c.terminalUoWFactory())
}

func (c *CompositionRoot) CreateUpdateQuantityCommandHandler() commands.UpdateQuantityCommandHandler {
	return commands.NewUpdateQuantityCommandHandler(c.terminalUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.terminalUoWFactory())
}

func (c *CompositionRoot) CreateDuplicateItemCommandHandler() commands.DuplicateItemCommandHandler {
	return commands.NewDuplicateItemCommandHandler(c.terminalUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.terminalUoWFactory())
}

func (c *CompositionRoot) CreateUndoLastActionCommandHandler() commands.UndoLastActionCommandHandler {
	return commands.NewUndoLastActionCommandHandler(c.terminalUoWFactory())
}

func (c *CompositionRoot) CreateAddTabCommandHandler() commands.AddTabCommandHandler {
	return commands.NewAddTabCommandHandler(c.terminalUoWFactory())
}

func (c *CompositionRoot) CreateCloseTabCommandHandler() commands.CloseTabCommandHandler {
	return commands.NewCloseTabCommandHandler(c.terminalUoWFactory())
}

func (c *CompositionRoot) CreateSetActiveTabCommandHandler() commands.SetActiveTabCommandHandler {
	return commands.NewSetActiveTabCommandHandler(c.terminalUoWFactory())
}

func (c *CompositionRoot) CreateHoldOrderCommandHandler() commands.HoldOrderCommandHandler {
	return commands.NewHoldOrderCommandHandler(c.terminalUoWFactory())
}

func (c *CompositionRoot) CreateResumeOrderCommandHandler() commands.ResumeOrderCommandHandler {
	return commands.NewResumeOrderCommandHandler(c.terminalUoWFactory())
}

func (c *CompositionRoot) CreateStartCustomizingCommandHandler() commands.StartCustomizingCommandHandler {
	return commands.NewStartCustomizingCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateStartEditingCommandHandler() commands.StartEditingCommandHandler {
	return commands.NewStartEditingCommandHandler(c.terminalUoWFactory())
}

func (c *CompositionRoot) CreateCancelCustomizingCommandHandler() commands.CancelCustomizingCommandHandler {
	return commands.NewCancelCustomizingCommandHandler(c.terminalUoWFactory())
}

func (c *CompositionRoot) CreateUpdateStockCommandHandler() commands.UpdateStockCommandHandler {
	return commands.NewUpdateStockCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateToppingStatusCommandHandler() commands.UpdateToppingStatusCommandHandler {
	return commands.NewUpdateToppingStatusCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateProcessTransactionCommandHandler() commands.ProcessTransactionCommandHandler {
	policy := commands.CheckoutPolicy{
		PaymentDelay:   time.Duration(c.config.PaymentDelayMs) * time.Millisecond,
		DecrementStock: c.config.DecrementStockOnCheckout,
	}
	return commands.NewProcessTransactionCommandHandler(
		c.checkoutUoWFactory(),
		c.pricer,
		c.random,
		policy,
	)
}

func (c *CompositionRoot) CreateAdvanceKitchenCommandHandler() commands.AdvanceKitchenCommandHandler {
	return commands.NewAdvanceKitchenCommandHandler(c.kitchenUoWFactory(), c.random)
}

func (c *CompositionRoot) CreateUpdateTerminalSettingsCommandHandler() commands.UpdateTerminalSettingsCommandHandler {
	return commands.NewUpdateTerminalSettingsCommandHandler(c.terminalUoWFactory())
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetToppingsQueryHandler() queries.GetToppingsQueryHandler {
	return queries.NewGetToppingsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.uowFactory, c.pricer)
}

func (c *CompositionRoot) CreateGetTabsQueryHandler() queries.GetTabsQueryHandler {
	return queries.NewGetTabsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetHeldOrdersQueryHandler() queries.GetHeldOrdersQueryHandler {
	return queries.NewGetHeldOrdersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetCustomizingSessionsQueryHandler() queries.GetCustomizingSessionsQueryHandler {
	return queries.NewGetCustomizingSessionsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetLiveOrdersQueryHandler() queries.GetLiveOrdersQueryHandler {
	return queries.NewGetLiveOrdersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrdersArchiveQueryHandler() queries.GetOrdersArchiveQueryHandler {
	return queries.NewGetOrdersArchiveQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetKitchenStatusQueryHandler() queries.GetKitchenStatusQueryHandler {
	return queries.NewGetKitchenStatusQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.uowFactory)
}

// mathRandom draws from the shared math/rand source.
type mathRandom struct{}

func (mathRandom) Float64() float64 {
	return rand.Float64()
}

type FuncTerminalUoWFactory func() commands.TerminalUoW

func (f FuncTerminalUoWFactory) Create() commands.TerminalUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncKitchenUoWFactory func() commands.KitchenUoW

func (f FuncKitchenUoWFactory) Create() commands.KitchenUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
