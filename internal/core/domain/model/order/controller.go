package order

import (
	"errors"
	"fmt"

	"pizza/internal/core/domain/model/cart"
	"pizza/internal/core/domain/model/catalog"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/navigation"
	"pizza/internal/core/domain/model/selection"
)

var (
	// ErrActionNotAllowed is returned when the current step does not offer the
	// requested action, typically because the caller acted on stale state.
	ErrActionNotAllowed = errors.New("action is not allowed in the current step")

	// ErrControllerIsNotConstructed is returned by Validate for controllers not
	// created through NewController.
	ErrControllerIsNotConstructed = errors.New("Controller must be created via NewController constructor")
)

// Controller drives one user's ordering session. It is the aggregate root
// owning the pizza being configured, the cart and the step graph.
//
// Controller follows these invariants:
//   - Must have a valid unique identifier
//   - A fresh selection starts at quantity 1, including after an abandoned edit
//   - The total never includes the line under edit
//   - Every mutation recomputes Signals and notifies subscribers once
//   - Can only be created through NewController constructor
//
// The wizard is wired as follows:
//   - Initial: no way back, no cancel
//   - ProductType: needs a pizza type to progress, backing out clears it
//   - BaseVariant: needs a dough type to progress, backing out clears it
//   - AddOns: toppings are optional, backing out clears them
//   - Summary: may cancel; progressing commits the pizza to the cart
//   - Cart: no way back, may cancel (which empties the cart), needs a line to progress
//   - Address: may cancel, needs a delivery address before PlaceOrder
//
// Controller is not safe for concurrent use; callers serialise access.
type Controller struct {
	id        kernel.UUID
	selection *selection.Selection
	cart      *cart.Cart
	graph     *navigation.Graph
	address   kernel.Address

	signals     Signals
	subscribers []Subscriber
}

// NewController creates a session positioned at the Initial step.
//
// Parameters:
//   - id: Unique identifier for the session (must be valid UUID)
//
// Returns:
//   - *Controller: The controller with an empty selection and cart
//   - error: Validation error if id is invalid, or a wrapped graph error if
//     the step table is inconsistent
//
// Example:
//
//	c, err := order.NewController(kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	c.Subscribe(render)
//	_ = c.Advance()
//	_ = c.SelectProductType(catalog.Margarita)
func NewController(id kernel.UUID) (*Controller, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		id:        id,
		selection: selection.New(),
		cart:      cart.New(),
	}

	graph, err := navigation.NewGraph(c.steps(), navigation.ProductType, navigation.Cart)
	if err != nil {
		return nil, fmt.Errorf("order steps are misconfigured: %w", err)
	}
	graph.SetCartClearer(c.cart.Clear)
	graph.AddObserver(c.recompute)
	c.graph = graph

	c.recompute()
	return c, nil
}

func (c *Controller) steps() []navigation.Step {
	return []navigation.Step{
		navigation.NewStep(navigation.Initial,
			navigation.WithoutBack(),
		),
		navigation.NewStep(navigation.ProductType,
			navigation.WithProgressGuard(c.selection.HasProductType),
			navigation.WithRollback(c.selection.ClearProductType),
		),
		navigation.NewStep(navigation.BaseVariant,
			navigation.WithProgressGuard(c.selection.HasBaseVariant),
			navigation.WithRollback(c.selection.ClearBaseVariant),
		),
		navigation.NewStep(navigation.AddOns,
			navigation.WithRollback(c.selection.ClearAddOns),
		),
		navigation.NewStep(navigation.Summary,
			navigation.WithCancel(),
		),
		navigation.NewStep(navigation.Cart,
			navigation.WithoutBack(),
			navigation.WithCancel(),
			navigation.WithProgressGuard(func() bool { return !c.cart.IsEmpty() }),
		),
		navigation.NewStep(navigation.Address,
			navigation.WithCancel(),
			navigation.WithProgressGuard(func() bool { return c.address.IsSet() }),
			navigation.WithRollback(c.clearAddress),
		),
	}
}

// Validate ensures the controller was created through NewController.
func (c *Controller) Validate() error {
	if c == nil || c.graph == nil {
		return ErrControllerIsNotConstructed
	}
	return nil
}

// ID returns the session identifier.
func (c *Controller) ID() kernel.UUID {
	return c.id
}

// Subscribe registers fn to receive signals after every successful operation.
func (c *Controller) Subscribe(fn Subscriber) {
	c.subscribers = append(c.subscribers, fn)
}

// Signals returns the current derived values.
func (c *Controller) Signals() Signals {
	return c.signals
}

// Selection returns a copy of the pizza being configured.
func (c *Controller) Selection() selection.Snapshot {
	return c.selection.Snapshot()
}

// Lines returns copies of the cart lines in display order.
func (c *Controller) Lines() []cart.Line {
	return c.cart.Lines()
}

// Address returns the delivery address, if one is set.
func (c *Controller) Address() (kernel.Address, bool) {
	return c.address, c.address.IsSet()
}

// ProductTypes lists the selectable pizza types.
func (c *Controller) ProductTypes() []catalog.ProductType {
	return catalog.ProductTypes()
}

// BaseVariants lists the selectable dough types.
func (c *Controller) BaseVariants() []catalog.BaseVariant {
	return catalog.BaseVariants()
}

// AddOns lists the selectable toppings.
func (c *Controller) AddOns() []catalog.AddOn {
	return catalog.AddOns()
}

// SelectProductType chooses the pizza type.
func (c *Controller) SelectProductType(p catalog.ProductType) error {
	if err := c.selection.SelectProductType(p); err != nil {
		return err
	}
	c.publish()
	return nil
}

// SelectBaseVariant chooses the dough type.
func (c *Controller) SelectBaseVariant(v catalog.BaseVariant) error {
	if err := c.selection.SelectBaseVariant(v); err != nil {
		return err
	}
	c.publish()
	return nil
}

// ToggleAddOn adds or removes a topping.
func (c *Controller) ToggleAddOn(a catalog.AddOn) error {
	if err := c.selection.ToggleAddOn(a); err != nil {
		return err
	}
	c.publish()
	return nil
}

// Advance moves to the next step when the current step's guard allows it.
// From Summary this commits the pizza, exactly like AddCurrentToCart.
// The Address step is final; use PlaceOrder there.
func (c *Controller) Advance() error {
	if !c.signals.ProgressAllowed || c.graph.IsLast() {
		return ErrActionNotAllowed
	}

	if c.graph.CurrentName() == navigation.Summary {
		return c.AddCurrentToCart()
	}

	c.graph.Progress()
	c.publish()
	return nil
}

// Retreat moves to the previous step, rolling back the current step's selection.
func (c *Controller) Retreat() error {
	if !c.signals.BackAllowed {
		return ErrActionNotAllowed
	}

	c.graph.GoBack()
	c.publish()
	return nil
}

// CancelCurrentFlow abandons the pizza being configured. A pending edit is
// aborted, leaving the edited line unchanged. From the cart step the cart is
// emptied as well.
func (c *Controller) CancelCurrentFlow() error {
	if !c.signals.CancelAllowed {
		return ErrActionNotAllowed
	}

	c.abortEdit()
	c.graph.Cancel()
	c.publish()
	return nil
}

// AddCurrentToCart commits the configured pizza (or the edit in progress)
// and shows the cart. Only the Summary step offers it.
func (c *Controller) AddCurrentToCart() error {
	if c.graph.CurrentName() != navigation.Summary {
		return ErrActionNotAllowed
	}

	if err := c.cart.Commit(c.selection); err != nil {
		return err
	}
	c.graph.JumpToCart()
	c.publish()
	return nil
}

// StartNewItem begins configuring another pizza from the first selection step.
func (c *Controller) StartNewItem() error {
	c.abortEdit()
	c.graph.ResetToFirstSelectionStep()
	c.publish()
	return nil
}

// GoToCart shows the cart. A pending edit is aborted and the half-configured
// pizza discarded. The cart must not be empty.
func (c *Controller) GoToCart() error {
	if c.cart.IsEmpty() {
		return ErrActionNotAllowed
	}

	c.abortEdit()
	c.graph.JumpToCart()
	c.publish()
	return nil
}

// RemoveFromCart deletes the line at index.
func (c *Controller) RemoveFromCart(index int) error {
	if err := c.cart.Delete(index); err != nil {
		return err
	}
	c.publish()
	return nil
}

// StartEdit loads the line at index into the builder and returns to the
// first selection step. The line stays in the cart until the edit is
// committed, cancelled or the line is removed.
func (c *Controller) StartEdit(index int) error {
	if err := c.cart.BeginEdit(index, c.selection); err != nil {
		return err
	}
	c.graph.JumpTo(navigation.ProductType)
	c.publish()
	return nil
}

// ChangeQuantity adds delta pizzas to the line at index. Quantities never
// drop below 1. A zero delta only validates the index. The line under edit
// is rejected with ErrActionNotAllowed since committing the edit replaces it.
func (c *Controller) ChangeQuantity(index, delta int) error {
	if _, err := c.cart.Line(index); err != nil {
		return err
	}
	if editIndex, editing := c.cart.EditIndex(); editing && editIndex == index {
		return ErrActionNotAllowed
	}

	for ; delta > 0; delta-- {
		if err := c.cart.IncreaseQuantity(index); err != nil {
			return err
		}
	}
	for ; delta < 0; delta++ {
		if err := c.cart.DecreaseQuantity(index); err != nil {
			return err
		}
	}

	c.publish()
	return nil
}

// abortEdit drops a pending edit and the line copy loaded into the builder,
// quantity included. It is a no-op when nothing is being edited.
func (c *Controller) abortEdit() {
	if _, editing := c.cart.EditIndex(); !editing {
		return
	}
	c.cart.AbortEdit()
	c.selection.Reset()
}

// SetAddress records the delivery address. Only the Address step offers it.
func (c *Controller) SetAddress(text string) error {
	if c.graph.CurrentName() != navigation.Address {
		return ErrActionNotAllowed
	}

	address, err := kernel.NewAddress(text)
	if err != nil {
		return err
	}

	c.address = address
	c.publish()
	return nil
}

// PlaceOrder finalises the cart: it returns a Confirmation, empties the
// cart and starts a fresh pizza from the first selection step. It requires
// the Address step with an address set and a non-empty cart.
func (c *Controller) PlaceOrder() (Confirmation, error) {
	if c.graph.CurrentName() != navigation.Address || !c.address.IsSet() || c.cart.IsEmpty() {
		return Confirmation{}, ErrActionNotAllowed
	}

	confirmation := Confirmation{
		id:      kernel.NewUUID(),
		lines:   c.cart.Lines(),
		total:   c.cart.Total(),
		address: c.address,
	}

	c.cart.Clear()
	c.graph.ResetToFirstSelectionStep()
	c.publish()
	return confirmation, nil
}

func (c *Controller) clearAddress() {
	c.address = kernel.Address{}
}

// recompute refreshes the signals from the current state. It also runs as
// the step graph's post-navigation observer.
func (c *Controller) recompute() {
	_, editing := c.cart.EditIndex()

	c.signals = Signals{
		Step:            c.graph.CurrentName(),
		BackAllowed:     c.graph.BackAllowed(),
		CancelAllowed:   c.graph.CancelAllowed(),
		ProgressAllowed: c.graph.ProgressAllowed(),
		CheckoutAllowed: !c.cart.IsEmpty(),
		UnitPrice:       c.selection.UnitPrice(),
		TotalPrice:      c.cart.Total(),
		LineCount:       c.cart.Len(),
		Editing:         editing,
	}
}

func (c *Controller) publish() {
	c.recompute()
	for _, subscriber := range c.subscribers {
		subscriber(c.signals)
	}
}
