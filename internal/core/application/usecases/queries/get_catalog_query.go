package queries

import (
	"errors"

	"pizza/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New("GetCatalogQuery must be created via NewGetCatalogQuery constructor")

// GetCatalogQuery asks for everything that can be ordered.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates the query.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// GetCatalogQueryResponse lists the catalog in display order.
type GetCatalogQueryResponse struct {
	ProductTypes []CatalogItem `json:"productTypes"`
	BaseVariants []CatalogItem `json:"baseVariants"`
	AddOns       []CatalogItem `json:"addOns"`
}

// CatalogItem is one orderable choice.
type CatalogItem struct {
	Name       string `json:"name"`
	DisplayKey string `json:"displayKey"`
	Price      int    `json:"price"`
}
