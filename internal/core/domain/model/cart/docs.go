// Package cart holds the value objects shared by the terminal aggregate:
// cart lines, tabs, held-order snapshots and customization sessions.
package cart
