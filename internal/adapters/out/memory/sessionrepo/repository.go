package sessionrepo

import (
	"context"
	"sync"
	"time"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/ports"
	"pizza/internal/pkg/clock"
	"pizza/internal/pkg/errs"
)

var _ ports.SessionRepository = (*MemorySessionRepository)(nil)

type entry struct {
	mu         sync.Mutex
	controller *order.Controller
	lastActive time.Time
}

// MemorySessionRepository keeps sessions in process memory.
// Each session has its own lock, so requests for different sessions do not
// wait on each other.
type MemorySessionRepository struct {
	clock clock.Clock

	mu       sync.RWMutex
	sessions map[kernel.UUID]*entry
}

// NewMemorySessionRepository creates an empty repository.
func NewMemorySessionRepository(c clock.Clock) *MemorySessionRepository {
	return &MemorySessionRepository{
		clock:    c,
		sessions: make(map[kernel.UUID]*entry),
	}
}

// Add stores a new session.
func (r *MemorySessionRepository) Add(ctx context.Context, controller *order.Controller) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := controller.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[controller.ID()]; ok {
		return ports.ErrSessionAlreadyExists
	}

	r.sessions[controller.ID()] = &entry{
		controller: controller,
		lastActive: r.clock.Now(),
	}
	return nil
}

// Update runs fn under the session lock and refreshes its activity time,
// even when fn fails.
func (r *MemorySessionRepository) Update(
	ctx context.Context,
	id kernel.UUID,
	fn func(*order.Controller) error,
) error {
	return r.with(ctx, id, true, fn)
}

// View runs fn under the session lock.
func (r *MemorySessionRepository) View(
	ctx context.Context,
	id kernel.UUID,
	fn func(*order.Controller) error,
) error {
	return r.with(ctx, id, false, fn)
}

// Remove deletes a session.
func (r *MemorySessionRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return errs.NewObjectNotFoundError("sessionID", id)
	}
	delete(r.sessions, id)
	return nil
}

// RemoveIdle deletes sessions last active before cutoff.
func (r *MemorySessionRepository) RemoveIdle(ctx context.Context, cutoff time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.sessions {
		e.mu.Lock()
		idle := e.lastActive.Before(cutoff)
		e.mu.Unlock()

		if idle {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (r *MemorySessionRepository) with(
	ctx context.Context,
	id kernel.UUID,
	touch bool,
	fn func(*order.Controller) error,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return errs.NewObjectNotFoundError("sessionID", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if touch {
		e.lastActive = r.clock.Now()
	}
	return fn(e.controller)
}
