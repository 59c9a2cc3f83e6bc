package queries

import (
	"context"

	"pizza/internal/core/domain/model/cart"
	"pizza/internal/core/domain/model/catalog"
	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/ports"
)

// GetSessionQueryHandler builds session views.
type GetSessionQueryHandler struct {
	sessions ports.SessionRepository
}

// NewGetSessionQueryHandler creates the handler.
func NewGetSessionQueryHandler(sessions ports.SessionRepository) GetSessionQueryHandler {
	return GetSessionQueryHandler{sessions: sessions}
}

// Handle reads the session without counting as activity.
func (h GetSessionQueryHandler) Handle(ctx context.Context, query GetSessionQuery) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	var resp GetSessionQueryResponse
	err := h.sessions.View(ctx, query.SessionID(), func(c *order.Controller) error {
		resp = newSessionView(c)
		return nil
	})
	if err != nil {
		return GetSessionQueryResponse{}, err
	}
	return resp, nil
}

// NewSessionView renders a controller. Callers must hold the session lock.
func NewSessionView(c *order.Controller) GetSessionQueryResponse {
	return newSessionView(c)
}

func newSessionView(c *order.Controller) GetSessionQueryResponse {
	s := c.Signals()
	resp := GetSessionQueryResponse{
		SessionID: c.ID().String(),
		Signals: SignalsView{
			Step:            s.Step.String(),
			BackAllowed:     s.BackAllowed,
			CancelAllowed:   s.CancelAllowed,
			ProgressAllowed: s.ProgressAllowed,
			CheckoutAllowed: s.CheckoutAllowed,
			UnitPrice:       s.UnitPrice,
			TotalPrice:      s.TotalPrice,
			LineCount:       s.LineCount,
			Editing:         s.Editing,
		},
		Lines: make([]CartLineView, 0, s.LineCount),
	}

	snap := c.Selection()
	resp.Selection = SelectionView{
		AddOns:    addOnNames(snap.AddOns),
		UnitPrice: snap.UnitPrice,
	}
	if snap.ProductType.Validate() == nil {
		resp.Selection.ProductType = snap.ProductType.String()
	}
	if snap.BaseVariant.Validate() == nil {
		resp.Selection.BaseVariant = snap.BaseVariant.String()
	}

	for i, line := range c.Lines() {
		resp.Lines = append(resp.Lines, lineView(i, line))
	}

	if address, ok := c.Address(); ok {
		resp.Address = address.String()
	}
	return resp
}

// NewCartLineViews renders lines in cart order.
func NewCartLineViews(lines []cart.Line) []CartLineView {
	views := make([]CartLineView, 0, len(lines))
	for i, line := range lines {
		views = append(views, lineView(i, line))
	}
	return views
}

func lineView(index int, line cart.Line) CartLineView {
	return CartLineView{
		Index:       index,
		ProductType: line.ProductType().String(),
		BaseVariant: line.BaseVariant().String(),
		AddOns:      addOnNames(line.AddOns()),
		UnitPrice:   line.UnitPrice(),
		Quantity:    line.Quantity(),
		Subtotal:    line.Subtotal(),
	}
}

func addOnNames(addOns []catalog.AddOn) []string {
	names := make([]string, 0, len(addOns))
	for _, a := range addOns {
		names = append(names, a.String())
	}
	return names
}
