// Package cart implements the ordered collection of committed pizzas.
//
// Lines are addressed by position; insertion order is display order.
// The running total equals the sum of unit price times quantity over all
// lines, except while a line is being edited: its contribution is taken out
// when the edit begins and put back (possibly changed) when it is committed
// or aborted.
//
// Add, delete and edit update the total incrementally. Quantity changes
// recompute it with a full pass over the lines; carts are small enough that
// the simpler code wins.
package cart
