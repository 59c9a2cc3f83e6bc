package queries

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrGetSessionQueryIsNotConstructed = errors.New("GetSessionQuery must be created via NewGetSessionQuery constructor")

// GetSessionQuery asks for the current state of one session.
type GetSessionQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSessionQuery creates the query.
func NewGetSessionQuery(sessionID kernel.UUID) (GetSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionQuery{}, err
	}

	return GetSessionQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

// SessionID returns the session to read.
func (q GetSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetSessionQueryResponse is everything a client needs to render a session.
type GetSessionQueryResponse struct {
	SessionID string         `json:"sessionId"`
	Signals   SignalsView    `json:"signals"`
	Selection SelectionView  `json:"selection"`
	Lines     []CartLineView `json:"lines"`
	Address   string         `json:"address,omitempty"`
}

// SignalsView mirrors order.Signals with the step spelled out.
type SignalsView struct {
	Step            string `json:"step"`
	BackAllowed     bool   `json:"backAllowed"`
	CancelAllowed   bool   `json:"cancelAllowed"`
	ProgressAllowed bool   `json:"progressAllowed"`
	CheckoutAllowed bool   `json:"checkoutAllowed"`
	UnitPrice       int    `json:"unitPrice"`
	TotalPrice      int    `json:"totalPrice"`
	LineCount       int    `json:"lineCount"`
	Editing         bool   `json:"editing"`
}

// SelectionView is the pizza being built. Unset parts are empty strings.
type SelectionView struct {
	ProductType string   `json:"productType,omitempty"`
	BaseVariant string   `json:"baseVariant,omitempty"`
	AddOns      []string `json:"addOns"`
	UnitPrice   int      `json:"unitPrice"`
}

// CartLineView is one cart position.
type CartLineView struct {
	Index       int      `json:"index"`
	ProductType string   `json:"productType"`
	BaseVariant string   `json:"baseVariant"`
	AddOns      []string `json:"addOns"`
	UnitPrice   int      `json:"unitPrice"`
	Quantity    int      `json:"quantity"`
	Subtotal    int      `json:"subtotal"`
}
