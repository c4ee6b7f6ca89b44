// Package terminal holds the register-side aggregate: multi-tab carts,
// customization sessions, held orders, recents, undo and terminal settings.
package terminal
