// Package kernel provides core domain primitives shared by the POS domain
// model. Currently that is the UUID value object used to identify cart lines,
// customization sessions, and kitchen orders.
//
// Primitives in this package are immutable, validate themselves, and are safe
// for concurrent use.
package kernel
