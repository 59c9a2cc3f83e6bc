// Package catalog enumerates what can be ordered: pizza types, dough types
// and toppings. The sets are closed; every member carries a price in minor
// currency units and a display-name key resolved by the presentation layer.
//
// The zero value of each enumeration is its Unknown member and never passes
// Validate, so an unset field cannot be mistaken for a real choice.
//
// Listing functions return fresh slices in a fixed order that is safe to bind
// directly to selectable lists.
package catalog
