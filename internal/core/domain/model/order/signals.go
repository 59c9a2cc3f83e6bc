package order

import "pizza/internal/core/domain/model/navigation"

// Signals are the derived values a presentation layer renders from.
type Signals struct {
	Step            navigation.StepName
	BackAllowed     bool
	CancelAllowed   bool
	ProgressAllowed bool
	CheckoutAllowed bool
	UnitPrice       int
	TotalPrice      int
	LineCount       int
	Editing         bool
}

// Subscriber receives the signals after every successful operation.
type Subscriber func(Signals)
