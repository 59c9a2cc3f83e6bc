package queries

import (
	"context"

	"pizza/internal/core/domain/model/catalog"
)

// GetCatalogQueryHandler lists the catalog. It needs no storage: the
// catalog is fixed at build time.
type GetCatalogQueryHandler struct{}

// NewGetCatalogQueryHandler creates the handler.
func NewGetCatalogQueryHandler() GetCatalogQueryHandler {
	return GetCatalogQueryHandler{}
}

// Handle returns the catalog.
func (h GetCatalogQueryHandler) Handle(_ context.Context, query GetCatalogQuery) (GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCatalogQueryResponse{}, err
	}

	resp := GetCatalogQueryResponse{}
	for _, p := range catalog.ProductTypes() {
		resp.ProductTypes = append(resp.ProductTypes, CatalogItem{Name: p.String(), DisplayKey: p.DisplayKey(), Price: p.Price()})
	}
	for _, v := range catalog.BaseVariants() {
		resp.BaseVariants = append(resp.BaseVariants, CatalogItem{Name: v.String(), DisplayKey: v.DisplayKey(), Price: v.Price()})
	}
	for _, a := range catalog.AddOns() {
		resp.AddOns = append(resp.AddOns, CatalogItem{Name: a.String(), DisplayKey: a.DisplayKey(), Price: a.Price()})
	}
	return resp, nil
}
