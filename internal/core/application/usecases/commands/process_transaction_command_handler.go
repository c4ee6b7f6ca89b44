package commands

import (
	"context"
	"fmt"
	"time"

	"pizzapos/internal/core/domain/model/kernel"
	"pizzapos/internal/core/domain/model/order"
	"pizzapos/internal/core/domain/services"
)

// CheckoutPolicy tunes the transaction flow.
type CheckoutPolicy struct {
	// PaymentDelay is the simulated payment-processing time. It always
	// succeeds and is not cancelable once started.
	PaymentDelay time.Duration

	// DecrementStock controls whether checkout reduces product stock by
	// the sold quantities.
	DecrementStock bool
}

// ProcessTransactionCommandHandler turns the active cart into a live kitchen
// order: simulates the payment delay, freezes the totals, mints a token
// number, assigns a random order type and clears the cart. Checkout of an
// empty cart is a no-op.
type ProcessTransactionCommandHandler struct {
	uowFactory CheckoutUoWFactory
	pricer     *services.Pricer
	random     order.RandomSource
	policy     CheckoutPolicy
}

// NewProcessTransactionCommandHandler creates a handler for checkout.
func NewProcessTransactionCommandHandler(
	uowFactory CheckoutUoWFactory,
	pricer *services.Pricer,
	random order.RandomSource,
	policy CheckoutPolicy,
) ProcessTransactionCommandHandler {
	return ProcessTransactionCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
		random:     random,
		policy:     policy,
	}
}

// Handle processes the checkout. The payment delay runs before the store is
// acquired so the register is not locked while "the card machine spins".
func (h *ProcessTransactionCommandHandler) Handle(ctx context.Context, cmd ProcessTransactionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if h.policy.PaymentDelay > 0 {
		time.Sleep(h.policy.PaymentDelay)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	terminalRepo := uow.TerminalRepository()
	term, err := terminalRepo.Get(ctx)
	if err != nil {
		return err
	}

	items := term.ActiveItems()
	if len(items) == 0 {
		return uow.Commit(ctx)
	}

	subtotal := h.pricer.Subtotal(items)
	tax := h.pricer.Tax(subtotal)
	totals := order.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    h.pricer.Total(subtotal, tax),
	}

	orderRepo := uow.OrderRepository()
	count, err := orderRepo.Count(ctx)
	if err != nil {
		return err
	}

	placed, err := order.NewOrder(
		kernel.NewUUID(),
		fmt.Sprintf("#%03d", count+1),
		h.randomOrderType(),
		cmd.PaymentMethod(),
		items,
		totals,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.AddLive(ctx, placed); err != nil {
		return err
	}

	if h.policy.DecrementStock {
		if err = h.decrementStock(ctx, uow, placed); err != nil {
			return err
		}
	}

	term.CompleteCheckout()
	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *ProcessTransactionCommandHandler) randomOrderType() order.OrderType {
	types := order.OrderTypes()
	return types[int(h.random.Float64()*float64(len(types)))]
}

func (h *ProcessTransactionCommandHandler) decrementStock(
	ctx context.Context,
	uow CheckoutUoW,
	placed *order.Order,
) error {
	catalogRepo := uow.CatalogRepository()
	cat, err := catalogRepo.Get(ctx)
	if err != nil {
		return err
	}

	for _, item := range placed.Items() {
		product, ok := cat.ProductByID(item.ProductID)
		if !ok {
			continue
		}
		product.DecrementStock(item.Quantity)
	}

	return catalogRepo.Update(ctx, cat)
}
