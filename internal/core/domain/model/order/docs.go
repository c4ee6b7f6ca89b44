// Package order models a checked-out order and its path through the kitchen:
// the station state machine, per-item statuses and the probabilistic
// advancement the simulator drives each tick.
package order
