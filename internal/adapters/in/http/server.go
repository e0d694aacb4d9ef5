package http

import (
	"errors"
	"net/http"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/application/validation"
	"ordertrack/internal/generated/servers"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/health"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const healthyStatus = "ok"

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler

	// Query handlers
	getOrdersHandler queries.GetOrdersQueryHandler

	probe *health.Probe
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	probe *health.Probe,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		getOrdersHandler:   getOrdersHandler,
		probe:              probe,
	}
}

// GetHealth handles GET /health - reports process liveness.
func (s *Server) GetHealth(ctx echo.Context) error {
	if err := s.probe.Check(); err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
			Code:    http.StatusServiceUnavailable,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, servers.HealthResponse{Status: healthyStatus})
}

// GetOrders handles GET /api/v1/orders - lists orders with optional filters.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var customerName, status string
	if params.CustomerName != nil {
		customerName = *params.CustomerName
	}
	if params.Status != nil {
		status = *params.Status
	}

	query := queries.NewGetOrdersQuery(customerName, status)

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.storageError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			OrderId:      o.OrderID,
			CustomerName: o.CustomerName,
			OrderAmount:  o.OrderAmount,
			OrderDate:    o.OrderDate,
			Status:       o.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - validates and records a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.OrderCreate
	if err := ctx.Bind(&body); err != nil {
		malformed := errs.NewMalformedInputError([]string{"body"}, "Request body must be a JSON object.")
		return s.validationError(ctx, malformed)
	}

	var customerName string
	if body.CustomerName != nil {
		customerName = *body.CustomerName
	}
	var orderAmount any
	if body.OrderAmount != nil {
		orderAmount = *body.OrderAmount
	}

	draft, err := validation.ValidateCreateOrder(customerName, orderAmount)
	if err != nil {
		var validationErr *errs.ValidationError
		if errors.As(err, &validationErr) {
			return s.validationError(ctx, validationErr)
		}
		return s.internalError(ctx, "Failed to validate order")
	}

	cmd, err := commands.NewCreateOrderCommand(draft.CustomerName, draft.OrderAmount)
	if err != nil {
		return s.internalError(ctx, "Invalid order data")
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.storageError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Order{
		OrderId:      created.ID().String(),
		CustomerName: created.CustomerName(),
		OrderAmount:  created.OrderAmount(),
		OrderDate:    created.OrderDate(),
		Status:       created.Status().String(),
	})
}

// validationError renders the accumulated field violations in the shape the
// order form expects: 422 with a detail list.
func (s *Server) validationError(ctx echo.Context, validationErr *errs.ValidationError) error {
	detail := make([]servers.ValidationError, len(validationErr.Violations))
	for i, violation := range validationErr.Violations {
		detail[i] = servers.ValidationError{
			Loc:  violation.Loc,
			Msg:  violation.Message,
			Type: violation.Type,
		}
	}

	return ctx.JSON(http.StatusUnprocessableEntity, servers.HTTPValidationError{Detail: detail})
}

// storageError maps classified storage failures to HTTP statuses. Unavailable
// storage means the caller may retry later (503); a conflict is an internal
// inconsistency the caller cannot fix (500).
func (s *Server) storageError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrStorageUnavailable) {
		zap.L().Warn("storage unavailable", zap.Error(err))
		return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Storage is temporarily unavailable",
		})
	}

	zap.L().Error("request failed", zap.Error(err))
	return s.internalError(ctx, "Internal server error")
}

func (s *Server) internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

var _ servers.ServerInterface = (*Server)(nil)
