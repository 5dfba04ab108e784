package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"deliveryops/internal/core/application/usecases/commands"
	"deliveryops/internal/core/application/usecases/queries"
	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/ports"
	"deliveryops/internal/generated/servers"
	"deliveryops/internal/pkg/errs"
	"deliveryops/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	CreateOrder               commands.CreateOrderCommandHandler
	UpdateOrderStatus         commands.UpdateOrderStatusCommandHandler
	UpdateOrderField          commands.UpdateOrderFieldCommandHandler
	CreateDriverSlip          commands.CreateDriverSlipCommandHandler
	CreateMerchantSlip        commands.CreateMerchantSlipCommandHandler
	MarkMerchantSlipDelivered commands.MarkMerchantSlipDeliveredCommandHandler
	PublishDriverStatus       commands.PublishDriverStatusCommandHandler

	// Query handlers
	GetOrders           queries.GetOrdersQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	GetOrderTotals      queries.GetOrderTotalsQueryHandler
	GetUnclaimedReturns queries.GetUnclaimedReturnsQueryHandler
	DriverSlips         queries.DriverSlipQueryHandler
	MerchantSlips       queries.MerchantSlipQueryHandler
	GetStatuses         queries.GetStatusesQueryHandler
	GetSlipDocument     queries.GetSlipDocumentQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers  Handlers
	events    ports.EventSubscriber
	heartbeat time.Duration
	logger    *zap.Logger
}

// NewServer creates a new HTTP server. events feeds the /api/v1/events stream.
func NewServer(handlers Handlers, events ports.EventSubscriber, log *zap.Logger) *Server {
	return &Server{
		handlers:  handlers,
		events:    events,
		heartbeat: defaultHeartbeat,
		logger:    logger.Component(log, "http"),
	}
}

// ListStatuses handles GET /api/v1/statuses.
func (s *Server) ListStatuses(ctx echo.Context) error {
	defs := s.handlers.GetStatuses.Handle()

	response := make([]servers.StatusDefinition, len(defs))
	for i, d := range defs {
		response[i] = toStatusDefinition(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders. The server picks the id when the
// client does not send one.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if body.Id != nil {
		id, err := kernel.UUIDFromGoogle(*body.Id)
		if err != nil {
			return s.fail(ctx, err)
		}
		orderID = id
	}

	amounts, err := fromAmounts(body.Amounts)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, fromNewOrder(body), amounts)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Google()})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	query := queries.NewGetOrdersQuery(value(params.Driver), value(params.Merchant), values(params.Status))

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrderTotals handles GET /api/v1/orders/totals.
func (s *Server) GetOrderTotals(ctx echo.Context, params servers.GetOrderTotalsParams) error {
	query := queries.NewGetOrderTotalsQuery(value(params.Driver), value(params.Merchant), values(params.Status))

	totals, err := s.handlers.GetOrderTotals.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderTotals{
		Count:  totals.Count,
		Totals: toTotals(totals.Totals),
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrderField handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrderField(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.UpdateOrderFieldJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderFieldCommand(id, body.Field, body.Value)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.UpdateOrderField.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var role status.Role
	if body.Role != nil {
		role = status.Role(*body.Role)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, body.Status, value(body.Driver), role)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListUnclaimedReturns handles GET /api/v1/returns/unclaimed.
func (s *Server) ListUnclaimedReturns(ctx echo.Context, params servers.ListUnclaimedReturnsParams) error {
	query, err := queries.NewGetUnclaimedReturnsQuery(string(params.Stage), value(params.Party))
	if err != nil {
		return s.fail(ctx, err)
	}

	returns, err := s.handlers.GetUnclaimedReturns.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.UnclaimedReturns{
		Stage:  servers.Stage(returns.Stage),
		Orders: toOrders(returns.Orders),
		Totals: toTotals(returns.Totals),
	})
}

// ListDriverSlips handles GET /api/v1/driver-slips.
func (s *Server) ListDriverSlips(ctx echo.Context, params servers.ListDriverSlipsParams) error {
	slips, err := s.handlers.DriverSlips.List(ctx.Request().Context(), queries.NewListSlipsQuery(value(params.Driver)))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.DriverSlip, len(slips))
	for i, sl := range slips {
		response[i] = toDriverSlip(sl)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriverSlip handles POST /api/v1/driver-slips.
func (s *Server) CreateDriverSlip(ctx echo.Context) error {
	var body servers.CreateDriverSlipJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids, err := kernel.ParseUUIDs(body.OrderIds)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateDriverSlipCommand(body.DriverName, ids)
	if err != nil {
		return s.fail(ctx, err)
	}

	slipID, err := s.handlers.CreateDriverSlip.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.SlipCreated{Id: slipID})
}

// GetDriverSlip handles GET /api/v1/driver-slips/{slipId}.
func (s *Server) GetDriverSlip(ctx echo.Context, slipId servers.SlipId) error {
	query, err := queries.NewGetSlipQuery(slipId)
	if err != nil {
		return s.fail(ctx, err)
	}

	sl, err := s.handlers.DriverSlips.Get(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDriverSlip(sl))
}

// GetDriverSlipDocument handles GET /api/v1/driver-slips/{slipId}/document.
func (s *Server) GetDriverSlipDocument(ctx echo.Context, slipId servers.SlipId) error {
	if !slip.IsDriverSlipID(slipId) {
		return s.fail(ctx, errs.NewObjectNotFoundError("driverSlip", slipId))
	}
	return s.slipDocument(ctx, slipId)
}

// ListMerchantSlips handles GET /api/v1/merchant-slips.
func (s *Server) ListMerchantSlips(ctx echo.Context, params servers.ListMerchantSlipsParams) error {
	slips, err := s.handlers.MerchantSlips.List(ctx.Request().Context(), queries.NewListSlipsQuery(value(params.Merchant)))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.MerchantSlip, len(slips))
	for i, sl := range slips {
		response[i] = toMerchantSlip(sl)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMerchantSlip handles POST /api/v1/merchant-slips.
func (s *Server) CreateMerchantSlip(ctx echo.Context) error {
	var body servers.CreateMerchantSlipJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids, err := kernel.ParseUUIDs(body.OrderIds)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateMerchantSlipCommand(body.MerchantName, ids)
	if err != nil {
		return s.fail(ctx, err)
	}

	slipID, err := s.handlers.CreateMerchantSlip.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.SlipCreated{Id: slipID})
}

// GetMerchantSlip handles GET /api/v1/merchant-slips/{slipId}.
func (s *Server) GetMerchantSlip(ctx echo.Context, slipId servers.SlipId) error {
	query, err := queries.NewGetSlipQuery(slipId)
	if err != nil {
		return s.fail(ctx, err)
	}

	sl, err := s.handlers.MerchantSlips.Get(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMerchantSlip(sl))
}

// MarkMerchantSlipDelivered handles POST /api/v1/merchant-slips/{slipId}/delivered.
func (s *Server) MarkMerchantSlipDelivered(ctx echo.Context, slipId servers.SlipId) error {
	cmd, err := commands.NewMarkMerchantSlipDeliveredCommand(slipId)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.MarkMerchantSlipDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMerchantSlipDocument handles GET /api/v1/merchant-slips/{slipId}/document.
func (s *Server) GetMerchantSlipDocument(ctx echo.Context, slipId servers.SlipId) error {
	if !slip.IsMerchantSlipID(slipId) {
		return s.fail(ctx, errs.NewObjectNotFoundError("merchantSlip", slipId))
	}
	return s.slipDocument(ctx, slipId)
}

func (s *Server) slipDocument(ctx echo.Context, slipID string) error {
	query, err := queries.NewGetSlipQuery(slipID)
	if err != nil {
		return s.fail(ctx, err)
	}

	doc, err := s.handlers.GetSlipDocument.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	ext := "html"
	if doc.ContentType == queries.ContentTypePDF {
		ext = "pdf"
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", doc.SlipID+"."+ext))

	return ctx.Blob(http.StatusOK, doc.ContentType, doc.Body)
}

// UpdateDriverStatus handles POST /api/v1/drivers/{driverId}/status.
func (s *Server) UpdateDriverStatus(ctx echo.Context, driverId string) error {
	var body servers.UpdateDriverStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPublishDriverStatusCommand(driverId, body.IsOnline)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.PublishDriverStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// fail writes err as an Error body with the status code its kind maps to.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusCode(err)
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message = fmt.Sprint(httpErr.Message)
	}

	if code == http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

func statusCode(err error) int {
	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}
