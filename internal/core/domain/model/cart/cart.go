package cart

import (
	"errors"

	"pizza/internal/core/domain/model/selection"
	"pizza/internal/pkg/errs"
)

const noEdit = -1

var (
	// ErrSelectionIsIncomplete is returned when committing a selection without
	// a pizza type or a dough type.
	ErrSelectionIsIncomplete = errors.New("selection needs a pizza type and a dough type")
)

// Cart is the ordered list of committed lines plus a running total.
// It is not safe for concurrent use.
type Cart struct {
	lines     []*Line
	total     int
	editIndex int
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{editIndex: noEdit}
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total returns the running total in minor currency units.
func (c *Cart) Total() int {
	return c.total
}

// EditIndex returns the position of the line being edited, if any.
func (c *Cart) EditIndex() (int, bool) {
	return c.editIndex, c.editIndex != noEdit
}

// Lines returns copies of all lines in display order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	for i, l := range c.lines {
		out[i] = l.clone()
	}
	return out
}

// Line returns a copy of the line at index.
func (c *Cart) Line(index int) (Line, error) {
	if err := c.checkIndex(index); err != nil {
		return Line{}, err
	}
	return c.lines[index].clone(), nil
}

// Commit stores the selection in the cart and resets it. When an edit is
// pending the edited line is replaced in place; otherwise a new line is
// appended.
//
// Commit maintains these invariants:
//   - The committed line takes the selection's quantity, so an edit keeps
//     the quantity loaded by BeginEdit
//   - The total grows by exactly the committed line's subtotal
//   - No edit is pending afterwards and the selection is back at quantity 1
//
// Parameters:
//   - sel: Selection to commit (must have a product type and a base variant)
//
// Returns:
//   - error: ErrSelectionIsIncomplete when sel is missing a product type or
//     base variant; the cart and selection are left untouched
func (c *Cart) Commit(sel *selection.Selection) error {
	if !sel.HasProductType() || !sel.HasBaseVariant() {
		return ErrSelectionIsIncomplete
	}

	line := newLine(sel.Snapshot())
	if index, ok := c.EditIndex(); ok {
		c.lines[index] = line
		c.editIndex = noEdit
	} else {
		c.lines = append(c.lines, line)
	}

	c.total += line.Subtotal()
	sel.Reset()
	return nil
}

// Delete removes the line at index; later lines shift down by one.
func (c *Cart) Delete(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}

	if editIndex, ok := c.EditIndex(); ok {
		switch {
		case editIndex == index:
			// its contribution was already taken out when the edit began
			c.editIndex = noEdit
		case editIndex > index:
			c.editIndex--
			c.total -= c.lines[index].Subtotal()
		default:
			c.total -= c.lines[index].Subtotal()
		}
	} else {
		c.total -= c.lines[index].Subtotal()
	}

	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// BeginEdit loads the line at index into sel, marks it as being edited and
// takes its subtotal out of the total. A previous pending edit is aborted.
func (c *Cart) BeginEdit(index int, sel *selection.Selection) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}

	c.AbortEdit()

	line := c.lines[index]
	sel.Load(line.Snapshot())
	c.editIndex = index
	c.total -= line.Subtotal()
	return nil
}

// AbortEdit drops a pending edit and restores the line's subtotal.
// It does nothing when no edit is pending.
func (c *Cart) AbortEdit() {
	index, ok := c.EditIndex()
	if !ok {
		return
	}

	c.total += c.lines[index].Subtotal()
	c.editIndex = noEdit
}

// IncreaseQuantity adds one pizza to the line at index.
func (c *Cart) IncreaseQuantity(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}

	c.lines[index].quantity++
	c.recalculateTotal()
	return nil
}

// DecreaseQuantity removes one pizza from the line at index. The quantity
// never drops below 1; use Delete to remove a line.
func (c *Cart) DecreaseQuantity(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}

	if c.lines[index].quantity > 1 {
		c.lines[index].quantity--
	}
	c.recalculateTotal()
	return nil
}

// Clear removes all lines, drops any pending edit and zeroes the total.
func (c *Cart) Clear() {
	c.lines = nil
	c.total = 0
	c.editIndex = noEdit
}

func (c *Cart) recalculateTotal() {
	total := 0
	for i, l := range c.lines {
		if i == c.editIndex {
			continue
		}
		total += l.Subtotal()
	}
	c.total = total
}

func (c *Cart) checkIndex(index int) error {
	if index < 0 || index >= len(c.lines) {
		return errs.NewValueIsOutOfRangeError("cart line index", index, 0, len(c.lines)-1)
	}
	return nil
}
