package navigation

// Step configures one node of the wizard.
//
// A step allows going back by default and forbids cancellation by default.
// CanProgress gates forward navigation; a nil guard always allows it.
// OnLeaveBackward undoes the step's selection when the user backs out of the
// step or cancels the flow.
type Step struct {
	Name            StepName
	AllowBack       bool
	AllowCancel     bool
	CanProgress     func() bool
	OnLeaveBackward func()
}

// StepOption customises a Step built by NewStep.
type StepOption func(*Step)

// NewStep returns a step with the default flags and opts applied.
//
// Example:
//
//	navigation.NewStep(navigation.ProductType,
//	    navigation.WithProgressGuard(sel.HasProductType),
//	    navigation.WithRollback(sel.ClearProductType),
//	)
func NewStep(name StepName, opts ...StepOption) Step {
	step := Step{Name: name, AllowBack: true}
	for _, opt := range opts {
		opt(&step)
	}
	return step
}

// WithoutBack forbids going back from the step.
func WithoutBack() StepOption {
	return func(s *Step) { s.AllowBack = false }
}

// WithCancel allows cancelling the flow from the step.
func WithCancel() StepOption {
	return func(s *Step) { s.AllowCancel = true }
}

// WithProgressGuard gates forward navigation on guard.
func WithProgressGuard(guard func() bool) StepOption {
	return func(s *Step) { s.CanProgress = guard }
}

// WithRollback sets the action run when leaving the step backward.
func WithRollback(rollback func()) StepOption {
	return func(s *Step) { s.OnLeaveBackward = rollback }
}

// ProgressAllowed evaluates the progress guard.
func (s Step) ProgressAllowed() bool {
	if s.CanProgress == nil {
		return true
	}
	return s.CanProgress()
}

func (s Step) rollback() {
	if s.OnLeaveBackward != nil {
		s.OnLeaveBackward()
	}
}
