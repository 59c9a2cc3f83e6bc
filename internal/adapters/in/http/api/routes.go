package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface is implemented by the HTTP adapter. Every method maps to
// one operationId of the OpenAPI document.
type ServerInterface interface {
	// GET /catalog
	GetCatalog(ctx echo.Context) error
	// POST /sessions
	CreateSession(ctx echo.Context) error
	// GET /sessions/{id}
	GetSession(ctx echo.Context, id openapi_types.UUID) error
	// DELETE /sessions/{id}
	DeleteSession(ctx echo.Context, id openapi_types.UUID) error
	// POST /sessions/{id}/selection
	SelectItem(ctx echo.Context, id openapi_types.UUID) error
	// POST /sessions/{id}/navigation
	Navigate(ctx echo.Context, id openapi_types.UUID) error
	// DELETE /sessions/{id}/cart/{index}
	RemoveCartLine(ctx echo.Context, id openapi_types.UUID, index int) error
	// PATCH /sessions/{id}/cart/{index}
	ChangeCartLineQuantity(ctx echo.Context, id openapi_types.UUID, index int) error
	// POST /sessions/{id}/cart/{index}/edit
	EditCartLine(ctx echo.Context, id openapi_types.UUID, index int) error
	// PUT /sessions/{id}/address
	SetAddress(ctx echo.Context, id openapi_types.UUID) error
	// POST /sessions/{id}/orders
	PlaceOrder(ctx echo.Context, id openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetCatalog(ctx echo.Context) error {
	return w.Handler.GetCatalog(ctx)
}

func (w *ServerInterfaceWrapper) CreateSession(ctx echo.Context) error {
	return w.Handler.CreateSession(ctx)
}

func (w *ServerInterfaceWrapper) GetSession(ctx echo.Context) error {
	id, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetSession(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteSession(ctx echo.Context) error {
	id, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteSession(ctx, id)
}

func (w *ServerInterfaceWrapper) SelectItem(ctx echo.Context) error {
	id, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SelectItem(ctx, id)
}

func (w *ServerInterfaceWrapper) Navigate(ctx echo.Context) error {
	id, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.Navigate(ctx, id)
}

func (w *ServerInterfaceWrapper) RemoveCartLine(ctx echo.Context) error {
	id, index, err := bindLine(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RemoveCartLine(ctx, id, index)
}

func (w *ServerInterfaceWrapper) ChangeCartLineQuantity(ctx echo.Context) error {
	id, index, err := bindLine(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeCartLineQuantity(ctx, id, index)
}

func (w *ServerInterfaceWrapper) EditCartLine(ctx echo.Context) error {
	id, index, err := bindLine(ctx)
	if err != nil {
		return err
	}
	return w.Handler.EditCartLine(ctx, id, index)
}

func (w *ServerInterfaceWrapper) SetAddress(ctx echo.Context) error {
	id, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SetAddress(ctx, id)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	id, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PlaceOrder(ctx, id)
}

func bindSessionID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindLine(ctx echo.Context) (openapi_types.UUID, int, error) {
	id, err := bindSessionID(ctx)
	if err != nil {
		return id, 0, err
	}

	var index int
	err = runtime.BindStyledParameterWithOptions("simple", "index", ctx.Param("index"), &index,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter index: %s", err))
	}
	return id, index, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for routing.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL mounts every operation under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/catalog", w.GetCatalog)
	router.POST(baseURL+"/sessions", w.CreateSession)
	router.GET(baseURL+"/sessions/:id", w.GetSession)
	router.DELETE(baseURL+"/sessions/:id", w.DeleteSession)
	router.POST(baseURL+"/sessions/:id/selection", w.SelectItem)
	router.POST(baseURL+"/sessions/:id/navigation", w.Navigate)
	router.DELETE(baseURL+"/sessions/:id/cart/:index", w.RemoveCartLine)
	router.PATCH(baseURL+"/sessions/:id/cart/:index", w.ChangeCartLineQuantity)
	router.POST(baseURL+"/sessions/:id/cart/:index/edit", w.EditCartLine)
	router.PUT(baseURL+"/sessions/:id/address", w.SetAddress)
	router.POST(baseURL+"/sessions/:id/orders", w.PlaceOrder)
}
