package navigation

import (
	"errors"
	"fmt"

	"pizza/internal/pkg/errs"
)

// ErrTargetIndexIsInvalid is the panic value (wrapped) raised when a
// transition would leave the step list. It signals a wiring defect in the
// step configuration and is never returned as an error.
var ErrTargetIndexIsInvalid = errors.New("target navigation index is invalid")

// Observer is called after every successful transition.
type Observer func()

// Graph is the wizard's navigation state machine: an ordered list of steps
// and the index of the current one.
//
// Graph follows these invariants:
//   - 0 <= current index < number of steps; a transition that would break it
//     panics instead of clamping
//   - Step names are valid and unique
//   - Backing out of a step runs that step's rollback before moving
//   - Observers are notified after every index change, in registration order
//   - Can only be created through NewGraph constructor
//
// Graph is not safe for concurrent use.
type Graph struct {
	steps          []Step
	current        int
	firstSelection int
	cart           int
	clearCart      func()
	observers      []Observer
}

// NewGraph validates the step list and returns a graph positioned at the
// first step.
//
// Parameters:
//   - steps: Ordered wizard steps (must not be empty, names must be unique)
//   - firstSelection: Step that Cancel and ResetToFirstSelectionStep land on
//   - cart: Step that JumpToCart lands on and whose Cancel empties the cart
//
// Returns:
//   - *Graph: The graph positioned at steps[0]
//   - error: Validation error when steps is empty, a step name is invalid or
//     repeated, or firstSelection or cart do not name a configured step
func NewGraph(steps []Step, firstSelection, cart StepName) (*Graph, error) {
	if len(steps) == 0 {
		return nil, errs.NewValueIsRequiredError("steps")
	}

	seen := make(map[StepName]struct{}, len(steps))
	for _, step := range steps {
		if err := step.Name.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[step.Name]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"steps",
				fmt.Errorf("%s is configured twice", step.Name),
			)
		}
		seen[step.Name] = struct{}{}
	}

	g := &Graph{steps: append([]Step(nil), steps...)}

	g.firstSelection = g.indexOf(firstSelection)
	if g.firstSelection < 0 {
		return nil, errs.NewObjectNotFoundError("first selection step", firstSelection)
	}
	g.cart = g.indexOf(cart)
	if g.cart < 0 {
		return nil, errs.NewObjectNotFoundError("cart step", cart)
	}

	return g, nil
}

// SetCartClearer sets the hook used to empty the cart when the flow is
// cancelled from the cart step.
func (g *Graph) SetCartClearer(clearCart func()) {
	g.clearCart = clearCart
}

// AddObserver registers fn to run after every transition. Observers run in
// registration order.
func (g *Graph) AddObserver(fn Observer) {
	g.observers = append(g.observers, fn)
}

// Current returns the current step.
func (g *Graph) Current() Step {
	return g.steps[g.current]
}

// CurrentName returns the name of the current step.
func (g *Graph) CurrentName() StepName {
	return g.steps[g.current].Name
}

// IsLast reports whether the current step is the final one.
func (g *Graph) IsLast() bool {
	return g.current == len(g.steps)-1
}

// BackAllowed reports whether the current step allows going back.
func (g *Graph) BackAllowed() bool {
	return g.Current().AllowBack
}

// CancelAllowed reports whether the current step allows cancellation.
func (g *Graph) CancelAllowed() bool {
	return g.Current().AllowCancel
}

// ProgressAllowed evaluates the current step's progress guard.
func (g *Graph) ProgressAllowed() bool {
	return g.Current().ProgressAllowed()
}

// Progress moves to the next step.
func (g *Graph) Progress() {
	g.changeNavigation(g.current + 1)
}

// GoBack runs the current step's rollback and moves to the previous step.
func (g *Graph) GoBack() {
	g.Current().rollback()
	g.changeNavigation(g.current - 1)
}

// Cancel abandons the flow. From the cart step the cart is emptied first.
// Every step's rollback then runs in list order, whether or not the step was
// visited, and the first selection step becomes current.
func (g *Graph) Cancel() {
	if g.current == g.cart && g.clearCart != nil {
		g.clearCart()
	}

	g.rollbackAll()
	g.changeNavigation(g.firstSelection)
}

// ResetToFirstSelectionStep rolls back every step and moves to the first
// selection step, regardless of the current step.
func (g *Graph) ResetToFirstSelectionStep() {
	g.rollbackAll()
	g.changeNavigation(g.firstSelection)
}

// JumpToCart moves to the cart step without rolling anything back.
func (g *Graph) JumpToCart() {
	g.changeNavigation(g.cart)
}

// JumpTo moves to the named step without rolling anything back.
// Naming a step that is not configured panics.
func (g *Graph) JumpTo(name StepName) {
	g.changeNavigation(g.indexOf(name))
}

func (g *Graph) rollbackAll() {
	for _, step := range g.steps {
		step.rollback()
	}
}

func (g *Graph) changeNavigation(target int) {
	if target < 0 || target >= len(g.steps) {
		panic(fmt.Errorf("%w: current: %d, target: %d", ErrTargetIndexIsInvalid, g.current, target))
	}

	g.current = target

	for _, observer := range g.observers {
		observer()
	}
}

func (g *Graph) indexOf(name StepName) int {
	for i, step := range g.steps {
		if step.Name == name {
			return i
		}
	}
	return -1
}
