// Package services holds stateless domain services. The pricing engine lives
// here: it is pure computation over catalog options and customizations and
// keeps all money math in decimals.
package services
