package navigation_test

import (
	"fmt"
	"testing"

	"pizza/internal/core/domain/model/navigation"
	"pizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects rollback and observer calls in order.
type recorder struct {
	calls []string
}

func (r *recorder) record(name string) func() {
	return func() { r.calls = append(r.calls, name) }
}

type fixture struct {
	graph      *navigation.Graph
	rec        *recorder
	canProceed bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{rec: &recorder{}}
	steps := []navigation.Step{
		navigation.NewStep(navigation.Initial, navigation.WithoutBack()),
		navigation.NewStep(navigation.ProductType,
			navigation.WithProgressGuard(func() bool { return f.canProceed }),
			navigation.WithRollback(f.rec.record("rollback ProductType")),
		),
		navigation.NewStep(navigation.BaseVariant,
			navigation.WithRollback(f.rec.record("rollback BaseVariant")),
		),
		navigation.NewStep(navigation.Summary, navigation.WithCancel()),
		navigation.NewStep(navigation.Cart, navigation.WithoutBack(), navigation.WithCancel()),
	}

	g, err := navigation.NewGraph(steps, navigation.ProductType, navigation.Cart)
	require.NoError(t, err)
	g.SetCartClearer(f.rec.record("clear cart"))
	f.graph = g
	return f
}

func TestNewStep_Defaults(t *testing.T) {
	step := navigation.NewStep(navigation.AddOns)

	assert.True(t, step.AllowBack)
	assert.False(t, step.AllowCancel)
	assert.True(t, step.ProgressAllowed())
}

func TestNewGraph(t *testing.T) {
	t.Run("starts_at_first_step", func(t *testing.T) {
		f := newFixture(t)

		assert.Equal(t, navigation.Initial, f.graph.CurrentName())
		assert.False(t, f.graph.BackAllowed())
		assert.False(t, f.graph.CancelAllowed())
		assert.True(t, f.graph.ProgressAllowed())
	})

	t.Run("rejects_empty_steps", func(t *testing.T) {
		_, err := navigation.NewGraph(nil, navigation.ProductType, navigation.Cart)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_duplicate_steps", func(t *testing.T) {
		steps := []navigation.Step{
			navigation.NewStep(navigation.Cart),
			navigation.NewStep(navigation.Cart),
		}

		_, err := navigation.NewGraph(steps, navigation.Cart, navigation.Cart)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_unknown_step_name", func(t *testing.T) {
		steps := []navigation.Step{navigation.NewStep(navigation.UnknownStep)}

		_, err := navigation.NewGraph(steps, navigation.UnknownStep, navigation.UnknownStep)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_cart_step", func(t *testing.T) {
		steps := []navigation.Step{navigation.NewStep(navigation.ProductType)}

		_, err := navigation.NewGraph(steps, navigation.ProductType, navigation.Cart)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGraph_Progress(t *testing.T) {
	t.Run("moves_forward_and_notifies", func(t *testing.T) {
		// Given
		f := newFixture(t)
		f.graph.AddObserver(f.rec.record("observer 1"))
		f.graph.AddObserver(f.rec.record("observer 2"))

		// When
		f.graph.Progress()

		// Then
		assert.Equal(t, navigation.ProductType, f.graph.CurrentName())
		assert.Equal(t, []string{"observer 1", "observer 2"}, f.rec.calls)
	})

	t.Run("progress_flag_follows_guard", func(t *testing.T) {
		f := newFixture(t)
		f.graph.Progress()

		assert.False(t, f.graph.ProgressAllowed())

		f.canProceed = true
		assert.True(t, f.graph.ProgressAllowed())
	})

	t.Run("past_last_step_panics", func(t *testing.T) {
		f := newFixture(t)
		f.graph.JumpToCart()
		require.True(t, f.graph.IsLast())

		assert.PanicsWithError(t,
			fmt.Sprintf("%s: current: 4, target: 5", navigation.ErrTargetIndexIsInvalid),
			f.graph.Progress)
		assert.Equal(t, navigation.Cart, f.graph.CurrentName())
	})
}

func TestGraph_GoBack(t *testing.T) {
	t.Run("runs_rollback_of_current_step_only", func(t *testing.T) {
		// Given
		f := newFixture(t)
		f.graph.Progress()
		f.graph.Progress()

		// When
		f.graph.GoBack()

		// Then
		assert.Equal(t, navigation.ProductType, f.graph.CurrentName())
		assert.Equal(t, []string{"rollback BaseVariant"}, f.rec.calls)
	})

	t.Run("before_first_step_panics", func(t *testing.T) {
		f := newFixture(t)

		assert.Panics(t, f.graph.GoBack)
		assert.Equal(t, navigation.Initial, f.graph.CurrentName())
	})
}

func TestGraph_Cancel(t *testing.T) {
	t.Run("from_summary_rolls_back_everything", func(t *testing.T) {
		// Given
		f := newFixture(t)
		f.graph.JumpTo(navigation.Summary)

		// When
		f.graph.Cancel()

		// Then
		assert.Equal(t, navigation.ProductType, f.graph.CurrentName())
		assert.Equal(t, []string{"rollback ProductType", "rollback BaseVariant"}, f.rec.calls)
	})

	t.Run("from_cart_clears_cart_first", func(t *testing.T) {
		// Given
		f := newFixture(t)
		f.graph.JumpToCart()

		// When
		f.graph.Cancel()

		// Then
		assert.Equal(t, navigation.ProductType, f.graph.CurrentName())
		assert.Equal(t,
			[]string{"clear cart", "rollback ProductType", "rollback BaseVariant"},
			f.rec.calls)
	})

	t.Run("rolls_back_unvisited_steps", func(t *testing.T) {
		f := newFixture(t)
		f.graph.Progress()

		f.graph.Cancel()

		assert.Equal(t, []string{"rollback ProductType", "rollback BaseVariant"}, f.rec.calls)
	})
}

func TestGraph_ResetToFirstSelectionStep(t *testing.T) {
	// Given
	f := newFixture(t)
	f.graph.JumpToCart()

	// When
	f.graph.ResetToFirstSelectionStep()

	// Then
	assert.Equal(t, navigation.ProductType, f.graph.CurrentName())
	assert.Equal(t, []string{"rollback ProductType", "rollback BaseVariant"}, f.rec.calls)
}

func TestGraph_Jumps(t *testing.T) {
	t.Run("jump_to_cart_does_not_roll_back", func(t *testing.T) {
		f := newFixture(t)

		f.graph.JumpToCart()

		assert.Equal(t, navigation.Cart, f.graph.CurrentName())
		assert.False(t, f.graph.BackAllowed())
		assert.True(t, f.graph.CancelAllowed())
		assert.Empty(t, f.rec.calls)
	})

	t.Run("jump_to_unconfigured_step_panics", func(t *testing.T) {
		f := newFixture(t)

		assert.Panics(t, func() { f.graph.JumpTo(navigation.Address) })
	})
}

func TestStepName(t *testing.T) {
	assert.Equal(t, "Summary", navigation.Summary.String())
	assert.Equal(t, "Unknown", navigation.StepName(99).String())
	require.NoError(t, navigation.Address.Validate())
	require.ErrorIs(t, navigation.UnknownStep.Validate(), errs.ErrValueIsInvalid)
}
