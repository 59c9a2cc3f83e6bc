package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pizza/internal/pkg/errs"
	"pizza/internal/pkg/guard"
)

// MinAddressLength is the shortest delivery address accepted, in characters.
const MinAddressLength = 5

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is the free-form delivery address entered before placing an order.
// The text is trimmed and must contain at least MinAddressLength characters.
type Address struct {
	text  string
	guard guard.ConstructorGuard
}

// NewAddress validates and creates an Address.
//
// Returns:
//   - Address: the trimmed address
//   - error: ValueIsRequiredError for blank text, ValueIsInvalidError when too short
func NewAddress(text string) (Address, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}

	if n := utf8.RuneCountInString(trimmed); n < MinAddressLength {
		return Address{}, errs.NewValueIsInvalidErrorWithCause(
			"address",
			fmt.Errorf("%d characters is shorter than %d", n, MinAddressLength),
		)
	}

	return Address{text: trimmed, guard: guard.NewConstructorGuard()}, nil
}

// String returns the address text.
func (a Address) String() string {
	return a.text
}

// IsSet reports whether the address was created via NewAddress.
func (a Address) IsSet() bool {
	return a.Validate() == nil
}

// Validate returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
