package services

import (
	"github.com/shopspring/decimal"

	"pizzapos/internal/core/domain/model/cart"
	"pizzapos/internal/core/domain/model/catalog"
	"pizzapos/internal/core/domain/model/pizza"
	"pizzapos/internal/pkg/errs"
)

const (
	// sauceSurcharge is the flat charge for extra sauce (quantity above 1).
	sauceSurcharge = 0.50

	// cheeseSurcharge is the flat charge for extra cheese (quantity above 1).
	cheeseSurcharge = 1.50

	// seniorDiscountRate / seniorDiscountMin drive the display-only volume
	// discount for senior cashiers: 10% off the subtotal once it exceeds 50.
	seniorDiscountRate = 0.10
	seniorDiscountMin  = 50.0
)

var ErrCatalogIsRequired = errs.NewValueIsRequiredError("catalog")

// Pricer computes cart line prices and order totals. It is a pure
// calculator: the same product, customization and quantity always produce
// the same figures. All money math runs on decimals and is rounded to two
// places only at the documented points, so float drift never leaks into a
// stored price.
type Pricer struct {
	options       catalog.PizzaOptions
	toppingPrices map[string]float64
	taxRate       float64
}

// NewPricer snapshots the option and topping prices of the catalog. Option
// prices are fixed at seed time, so the snapshot never goes stale.
func NewPricer(cat *catalog.Catalog, taxRate float64) (*Pricer, error) {
	if cat == nil {
		return nil, ErrCatalogIsRequired
	}
	if taxRate < 0 {
		return nil, errs.NewValueIsOutOfRangeError("taxRate", taxRate, 0, 1)
	}

	prices := make(map[string]float64)
	for _, topping := range cat.Toppings() {
		prices[topping.ID()] = topping.Price()
	}

	return &Pricer{
		options:       cat.Options(),
		toppingPrices: prices,
		taxRate:       taxRate,
	}, nil
}

// Price returns the final per-unit price for a product with the given
// customization.
func (p *Pricer) Price(product *catalog.Product, customization *pizza.Customization) float64 {
	if product == nil {
		return 0
	}
	return p.PriceFromBase(product.Price(), customization)
}

// PriceFromBase prices a customization on top of a frozen base price, in
// order: size multiplier on the base only, then crust, sauce and cheese
// extras with their quantity surcharges, then per-topping charges. Base
// ingredients are charged only for quantity beyond the included first unit.
// The result is rounded to two decimal places. A nil customization prices
// as the bare base.
func (p *Pricer) PriceFromBase(base float64, customization *pizza.Customization) float64 {
	if customization == nil {
		return round2(decimal.NewFromFloat(base))
	}

	price := decimal.NewFromFloat(base)
	if size, ok := p.options.SizeByID(customization.SizeID); ok {
		price = price.Mul(decimal.NewFromFloat(size.PriceMultiplier))
	}
	if crust, ok := p.options.CrustByID(customization.CrustID); ok {
		price = price.Add(decimal.NewFromFloat(crust.ExtraPrice))
	}
	if sauce, ok := p.options.SauceByID(customization.Sauce.ID); ok {
		price = price.Add(decimal.NewFromFloat(sauce.ExtraPrice))
		if customization.Sauce.Quantity > 1 {
			price = price.Add(decimal.NewFromFloat(sauceSurcharge))
		}
	}
	if cheese, ok := p.options.CheeseByID(customization.Cheese.ID); ok {
		price = price.Add(decimal.NewFromFloat(cheese.ExtraPrice))
		if customization.Cheese.Quantity > 1 {
			price = price.Add(decimal.NewFromFloat(cheeseSurcharge))
		}
	}

	for _, topping := range customization.Toppings {
		if topping.Quantity <= 0 {
			continue
		}
		unit, ok := p.toppingPrices[topping.ToppingID]
		if !ok {
			continue
		}
		quantity := float64(topping.Quantity)
		if topping.IsBaseIngredient {
			// The first unit is already in the base price.
			quantity--
			if quantity <= 0 {
				continue
			}
		}
		price = price.Add(decimal.NewFromFloat(unit).
			Mul(decimal.NewFromFloat(quantity)).
			Mul(decimal.NewFromFloat(topping.Side.Factor())))
	}

	return round2(price)
}

// Subtotal sums price times quantity over the cart.
func (p *Pricer) Subtotal(items []cart.Item) float64 {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(decimal.NewFromFloat(item.Price).
			Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return round2(sum)
}

// Tax returns the tax on a subtotal, unrounded: rounding happens once in the
// total, not per component.
func (p *Pricer) Tax(subtotal float64) float64 {
	return decimal.NewFromFloat(subtotal).
		Mul(decimal.NewFromFloat(p.taxRate)).
		InexactFloat64()
}

// Total returns subtotal plus tax, rounded to two places.
func (p *Pricer) Total(subtotal, tax float64) float64 {
	return round2(decimal.NewFromFloat(subtotal).Add(decimal.NewFromFloat(tax)))
}

// DisplayTotal is the figure shown at checkout. Senior cashiers get the
// volume discount off the subtotal; the tax stays computed on the
// undiscounted subtotal, and the stored order totals are never discounted.
func (p *Pricer) DisplayTotal(subtotal, tax float64, seniorRole bool) float64 {
	if !seniorRole || subtotal <= seniorDiscountMin {
		return p.Total(subtotal, tax)
	}
	discounted := decimal.NewFromFloat(subtotal).
		Mul(decimal.NewFromFloat(1 - seniorDiscountRate))
	return round2(discounted.Add(decimal.NewFromFloat(tax)))
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
