// Package order contains the Controller, the aggregate root of one ordering
// session. It owns the pizza being configured, the cart and the wizard's step
// graph, and is the only thing allowed to mutate them.
//
// Every operation runs synchronously and, on success, republishes the
// derived Signals to subscribers exactly once. Subscribers run in
// registration order.
//
// Errors returned by operations are recoverable: ErrActionNotAllowed for
// actions the current step does not offer, errs.ErrValueIsOutOfRange for
// stale cart positions, errs.ErrValueIsInvalid for bad input. A wiring defect
// in the step graph panics instead.
package order
