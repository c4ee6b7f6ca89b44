// Package pizza contains the customization value objects for customizable
// products: portions, topping quantities with their selection cycle, sauce and
// cheese selections, cooking overrides, and the Customization snapshot that
// cart lines carry.
//
// Values in this package are plain snapshots with behavior; they hold no
// references into the catalog (toppings and options are referenced by id) and
// own no shared state.
package pizza
