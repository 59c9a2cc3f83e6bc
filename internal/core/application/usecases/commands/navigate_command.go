package commands

import (
	"errors"
	"fmt"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"
	"pizza/internal/pkg/guard"
)

var ErrNavigateCommandIsNotConstructed = errors.New(
	"NavigateCommand must be created via NewNavigateCommand constructor",
)

// NavigationAction is a wizard-level action that takes no arguments.
type NavigationAction string

const (
	Advance   NavigationAction = "advance"
	Retreat   NavigationAction = "retreat"
	Cancel    NavigationAction = "cancel"
	AddToCart NavigationAction = "add-to-cart"
	NewItem   NavigationAction = "new-item"
	OpenCart  NavigationAction = "open-cart"
)

var navigationActions = []NavigationAction{Advance, Retreat, Cancel, AddToCart, NewItem, OpenCart}

// NavigateCommand moves a session through the wizard.
type NavigateCommand struct {
	sessionID kernel.UUID
	action    NavigationAction

	guard guard.ConstructorGuard
}

// NewNavigateCommand validates the session ID and action.
func NewNavigateCommand(sessionID kernel.UUID, action NavigationAction) (NavigateCommand, error) {
	var actionErr error
	if !isNavigationAction(action) {
		actionErr = errs.NewValueIsInvalidErrorWithCause(
			"navigation action",
			fmt.Errorf("%q is not a known action", action),
		)
	}

	if err := errors.Join(sessionID.Validate(), actionErr); err != nil {
		return NavigateCommand{}, err
	}

	return NavigateCommand{
		sessionID: sessionID,
		action:    action,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c NavigateCommand) Validate() error {
	return c.guard.Validate(ErrNavigateCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c NavigateCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Action returns the requested action.
func (c NavigateCommand) Action() NavigationAction {
	return c.action
}

func isNavigationAction(action NavigationAction) bool {
	for _, a := range navigationActions {
		if a == action {
			return true
		}
	}
	return false
}
