package ports

import (
	"context"
	"errors"
	"time"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
)

// ErrSessionAlreadyExists is returned when adding a controller whose ID is taken.
var ErrSessionAlreadyExists = errors.New("session already exists")

// SessionRepository stores the ordering sessions of every connected user.
//
// A Controller is single-threaded, so the repository serialises all access to
// it: callers never hold a controller outside Update or View callbacks.
// Missing sessions are reported with an errs.ObjectNotFoundError.
type SessionRepository interface {
	// Add stores a new session.
	Add(ctx context.Context, controller *order.Controller) error

	// Update runs fn with exclusive access to the session and records the
	// session as active.
	Update(ctx context.Context, id kernel.UUID, fn func(*order.Controller) error) error

	// View runs fn with exclusive access to the session without touching its
	// activity time. fn must not mutate the controller.
	View(ctx context.Context, id kernel.UUID, fn func(*order.Controller) error) error

	// Remove deletes a session.
	Remove(ctx context.Context, id kernel.UUID) error

	// RemoveIdle deletes every session last active before cutoff and returns
	// how many were removed.
	RemoveIdle(ctx context.Context, cutoff time.Time) (int, error)
}
