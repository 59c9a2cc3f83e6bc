package http

import (
	"context"
	"errors"
	"net/http"

	"pizza/internal/adapters/in/http/api"
	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/core/application/usecases/queries"
	"pizza/internal/core/domain/model/cart"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/ports"
	"pizza/internal/pkg/errs"
	"pizza/internal/pkg/logger"
	"pizza/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

var _ api.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	StartSession commands.StartSessionCommandHandler
	EndSession   commands.EndSessionCommandHandler
	SelectItem   commands.SelectItemCommandHandler
	Navigate     commands.NavigateCommandHandler
	CartLine     commands.CartLineCommandHandler
	SetAddress   commands.SetAddressCommandHandler
	PlaceOrder   commands.PlaceOrderCommandHandler

	GetSession queries.GetSessionQueryHandler
	GetCatalog queries.GetCatalogQueryHandler
}

// Server implements api.ServerInterface.
// It translates HTTP requests into commands and queries and maps domain
// errors onto status codes. Mutating endpoints answer with the session
// state after the change so clients can re-render from one response.
type Server struct {
	handlers Handlers
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, m *metrics.Metrics, l *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  m,
		logger:   logger.OrNop(l).With(zap.String("component", "http_server")),
	}
}

// GetCatalog handles GET /api/v1/catalog.
func (s *Server) GetCatalog(ctx echo.Context) error {
	resp, err := s.handlers.GetCatalog.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, resp)
}

// CreateSession handles POST /api/v1/sessions.
func (s *Server) CreateSession(ctx echo.Context) error {
	cmd, err := commands.NewStartSessionCommand(kernel.NewUUID())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.StartSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	s.metrics.SessionsStarted.Inc()
	s.metrics.SessionsActive.Inc()
	return s.respondWithSession(ctx, http.StatusCreated, cmd.SessionID())
}

// GetSession handles GET /api/v1/sessions/{id}.
func (s *Server) GetSession(ctx echo.Context, id openapi_types.UUID) error {
	sessionID, err := toSessionID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, sessionID)
}

// DeleteSession handles DELETE /api/v1/sessions/{id}.
func (s *Server) DeleteSession(ctx echo.Context, id openapi_types.UUID) error {
	sessionID, err := toSessionID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewEndSessionCommand(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.EndSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	s.metrics.SessionsActive.Dec()
	return ctx.NoContent(http.StatusNoContent)
}

// SelectItem handles POST /api/v1/sessions/{id}/selection.
func (s *Server) SelectItem(ctx echo.Context, id openapi_types.UUID) error {
	var body api.SelectItemRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	sessionID, err := toSessionID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSelectItemCommand(sessionID, commands.ItemKind(body.Kind), body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.SelectItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, sessionID)
}

// Navigate handles POST /api/v1/sessions/{id}/navigation.
func (s *Server) Navigate(ctx echo.Context, id openapi_types.UUID) error {
	var body api.NavigateRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	sessionID, err := toSessionID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	action := commands.NavigationAction(body.Action)
	cmd, err := commands.NewNavigateCommand(sessionID, action)
	if err != nil {
		return s.fail(ctx, err)
	}

	before, err := s.session(ctx.Request().Context(), sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.Navigate.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, order.ErrActionNotAllowed) {
			s.metrics.ActionsRejected.WithLabelValues(body.Action).Inc()
		}
		return s.fail(ctx, err)
	}

	session, err := s.session(ctx.Request().Context(), sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	// Committing an edit replaces its line, so only a grown cart counts.
	if session.Signals.LineCount > before.Signals.LineCount {
		s.metrics.LinesAdded.Inc()
	}
	return ctx.JSON(http.StatusOK, session)
}

// RemoveCartLine handles DELETE /api/v1/sessions/{id}/cart/{index}.
func (s *Server) RemoveCartLine(ctx echo.Context, id openapi_types.UUID, index int) error {
	sessionID, err := toSessionID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveLineCommand(sessionID, index)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.handleCartLine(ctx, cmd)
}

// ChangeCartLineQuantity handles PATCH /api/v1/sessions/{id}/cart/{index}.
func (s *Server) ChangeCartLineQuantity(ctx echo.Context, id openapi_types.UUID, index int) error {
	var body api.QuantityRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	sessionID, err := toSessionID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeLineQuantityCommand(sessionID, index, body.Delta)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.handleCartLine(ctx, cmd)
}

// EditCartLine handles POST /api/v1/sessions/{id}/cart/{index}/edit.
func (s *Server) EditCartLine(ctx echo.Context, id openapi_types.UUID, index int) error {
	sessionID, err := toSessionID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewEditLineCommand(sessionID, index)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.handleCartLine(ctx, cmd)
}

// SetAddress handles PUT /api/v1/sessions/{id}/address.
func (s *Server) SetAddress(ctx echo.Context, id openapi_types.UUID) error {
	var body api.AddressRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	sessionID, err := toSessionID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetAddressCommand(sessionID, body.Address)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.SetAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, sessionID)
}

// PlaceOrder handles POST /api/v1/sessions/{id}/orders.
func (s *Server) PlaceOrder(ctx echo.Context, id openapi_types.UUID) error {
	sessionID, err := toSessionID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	confirmation := resp.Confirmation
	s.metrics.OrdersPlaced.Inc()
	s.metrics.OrderValue.Observe(float64(confirmation.Total()))

	return ctx.JSON(http.StatusCreated, api.OrderConfirmation{
		OrderID: confirmation.ID().String(),
		Lines:   queries.NewCartLineViews(confirmation.Lines()),
		Total:   confirmation.Total(),
		Address: confirmation.Address().String(),
	})
}

func (s *Server) handleCartLine(ctx echo.Context, cmd commands.CartLineCommand) error {
	if err := s.handlers.CartLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, cmd.SessionID())
}

func (s *Server) session(ctx context.Context, id kernel.UUID) (api.Session, error) {
	query, err := queries.NewGetSessionQuery(id)
	if err != nil {
		return api.Session{}, err
	}
	return s.handlers.GetSession.Handle(ctx, query)
}

func (s *Server) respondWithSession(ctx echo.Context, status int, id kernel.UUID) error {
	session, err := s.session(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, session)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, api.Error{Code: http.StatusBadRequest, Message: message})
}

// fail maps err onto a status code and writes the error body.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
		message = http.StatusText(status)
	}
	return ctx.JSON(status, api.Error{Code: status, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrActionNotAllowed),
		errors.Is(err, cart.ErrSelectionIsIncomplete),
		errors.Is(err, ports.ErrSessionAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toSessionID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromString(id.String())
}
