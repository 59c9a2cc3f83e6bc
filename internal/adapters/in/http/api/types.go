package api

import "pizza/internal/core/application/usecases/queries"

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SelectItemRequest picks a catalog entry by name.
type SelectItemRequest struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// NavigateRequest names a wizard action.
type NavigateRequest struct {
	Action string `json:"action"`
}

// QuantityRequest changes a cart line's quantity by Delta.
type QuantityRequest struct {
	Delta int `json:"delta"`
}

// AddressRequest sets the delivery address.
type AddressRequest struct {
	Address string `json:"address"`
}

// Session is the state of one ordering session.
type Session = queries.GetSessionQueryResponse

// Catalog lists the orderable items.
type Catalog = queries.GetCatalogQueryResponse

// OrderConfirmation is returned when an order is placed.
type OrderConfirmation struct {
	OrderID string                 `json:"orderId"`
	Lines   []queries.CartLineView `json:"lines"`
	Total   int                    `json:"total"`
	Address string                 `json:"address"`
}
