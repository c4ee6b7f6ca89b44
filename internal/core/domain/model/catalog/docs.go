// Package catalog holds the reference data of the terminal: products,
// toppings, the pizza option matrix (sizes, crusts, sauces, cheeses, cooking
// preferences, quick presets), and predefined order templates.
//
// The Catalog aggregate is seeded at startup. The only mutable parts are
// product stock counts (whose stock status is a derived value) and topping
// statuses (set directly by kitchen staff). Mutations addressed at unknown
// ids are silent no-ops.
package catalog
