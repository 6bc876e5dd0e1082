// Package http contains the inbound HTTP adapter: an echo server
// implementing the generated ServerInterface on top of the application's
// command and query handlers.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/generated/servers"
	"backoffice/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const defaultTopSellingLimit = 10

// CustomValidator wires validator/v10 into echo's request validation hook.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator creates the echo request validator.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	transitionOrderHandler *commands.TransitionOrderCommandHandler

	// Query handlers
	getMergedOrdersHandler  queries.GetMergedOrdersQueryHandler
	getOrderLocationHandler queries.GetOrderLocationQueryHandler
	getWeeklyReportHandler  queries.GetWeeklyReportQueryHandler
	getPeriodReportHandler  queries.GetPeriodReportQueryHandler
	getTodayReportHandler   queries.GetTodayReportQueryHandler
	getTopSellingHandler    queries.GetTopSellingQueryHandler
	getDriversHandler       queries.GetDriversQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	transitionOrderHandler *commands.TransitionOrderCommandHandler,
	getMergedOrdersHandler queries.GetMergedOrdersQueryHandler,
	getOrderLocationHandler queries.GetOrderLocationQueryHandler,
	getWeeklyReportHandler queries.GetWeeklyReportQueryHandler,
	getPeriodReportHandler queries.GetPeriodReportQueryHandler,
	getTodayReportHandler queries.GetTodayReportQueryHandler,
	getTopSellingHandler queries.GetTopSellingQueryHandler,
	getDriversHandler queries.GetDriversQueryHandler,
) *Server {
	return &Server{
		transitionOrderHandler:  transitionOrderHandler,
		getMergedOrdersHandler:  getMergedOrdersHandler,
		getOrderLocationHandler: getOrderLocationHandler,
		getWeeklyReportHandler:  getWeeklyReportHandler,
		getPeriodReportHandler:  getPeriodReportHandler,
		getTodayReportHandler:   getTodayReportHandler,
		getTopSellingHandler:    getTopSellingHandler,
		getDriversHandler:       getDriversHandler,
	}
}

// transitionRequest is the transition endpoint payload. The generated type
// carries no validation tags, so the endpoint binds into this local shape.
type transitionRequest struct {
	Target         string  `json:"target" validate:"required"`
	DriverID       *string `json:"driverId,omitempty"`
	IdempotencyKey *string `json:"idempotencyKey,omitempty"`
}

// targetStatuses maps the API's transition vocabulary onto lifecycle
// statuses. Waiting is accepted here and rejected by the lifecycle rules,
// which yields the more precise error.
var targetStatuses = map[string]order.Status{
	"waiting":    order.Waiting,
	"preparing":  order.Preparing,
	"ontheway":   order.OnTheWay,
	"on_the_way": order.OnTheWay,
	"delivered":  order.Delivered,
	"cancelled":  order.Cancelled,
}

func parseTargetStatus(raw string) (order.Status, error) {
	if s, ok := targetStatuses[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s, nil
	}
	return order.Unknown, errs.NewValueIsInvalidError("target")
}

// errorResponse maps application errors onto HTTP statuses.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, commands.ErrTransitionInFlight),
		errors.Is(err, commands.ErrDriverNotAvailable),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrMissingDeliveryAssignment):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: err.Error(),
	})
}

// parseAnchor interprets an optional RFC 3339 date query parameter, falling
// back to the current day.
func parseAnchor(raw *string) (time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return time.Now().UTC(), nil
	}

	anchor, err := time.Parse(time.DateOnly, strings.TrimSpace(*raw))
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("anchor", err)
	}
	return anchor, nil
}

// GetOrders handles GET /api/v1/orders - returns the merged normalized
// order list.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetMergedOrdersQuery()

	orders, err := s.getMergedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.MergedOrder, len(orders))
	for i, o := range orders {
		items := make([]servers.OrderItem, len(o.Items))
		for j, item := range o.Items {
			items[j] = servers.OrderItem{
				ProductId:  item.ProductID,
				Name:       item.Name,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice.String(),
				TotalPrice: item.TotalPrice.String(),
			}
		}

		response[i] = servers.MergedOrder{
			Id:              o.ID,
			Source:          o.Source,
			CreatedAt:       o.CreatedAt,
			CustomerName:    o.CustomerName,
			CustomerAddress: o.CustomerAddress,
			Status:          servers.MergedOrderStatus(o.Status),
			TotalPrice:      o.TotalPrice.String(),
			Quantity:        o.Quantity,
			PaymentMethod:   o.PaymentMethod,
			DriverId:        o.DriverID,
			DeliveryFee:     o.DeliveryFee.String(),
			GrandTotal:      o.GrandTotal.String(),
			Items:           items,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles POST /api/v1/orders/{source}/{orderId}/transition.
func (s *Server) TransitionOrder(ctx echo.Context, source string, orderId string) error {
	var req transitionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	parsedSource, err := kernel.ParseSource(source)
	if err != nil {
		return errorResponse(ctx, err)
	}
	ref, err := kernel.NewOrderRef(orderId, parsedSource)
	if err != nil {
		return errorResponse(ctx, err)
	}
	target, err := parseTargetStatus(req.Target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var driverID string
	if req.DriverID != nil {
		driverID = *req.DriverID
	}
	var idempotencyKey string
	if req.IdempotencyKey != nil {
		idempotencyKey = *req.IdempotencyKey
	}

	cmd, err := commands.NewTransitionOrderCommand(ref, target, driverID, idempotencyKey)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderLocation handles GET /api/v1/orders/{source}/{orderId}/location.
func (s *Server) GetOrderLocation(ctx echo.Context, source string, orderId string) error {
	parsedSource, err := kernel.ParseSource(source)
	if err != nil {
		return errorResponse(ctx, err)
	}
	ref, err := kernel.NewOrderRef(orderId, parsedSource)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderLocationQuery(ref)
	if err != nil {
		return errorResponse(ctx, err)
	}

	location, err := s.getOrderLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderLocation{
		Lat:       location.Lat,
		Lng:       location.Lng,
		IsDefault: location.IsDefault,
	})
}

// GetWeeklyReport handles GET /api/v1/reports/weekly.
func (s *Server) GetWeeklyReport(ctx echo.Context, params servers.GetWeeklyReportParams) error {
	anchor, err := parseAnchor(params.Anchor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetWeeklyReportQuery(anchor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	rows, err := s.getWeeklyReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.WeeklyReportRow, len(rows))
	for i, row := range rows {
		response[i] = servers.WeeklyReportRow{
			Day:          row.Day,
			TotalRevenue: row.TotalRevenue.String(),
			TotalExpense: row.TotalExpense.String(),
			TotalProfit:  row.TotalProfit.String(),
			ProfitMargin: row.ProfitMargin.String(),
			Records:      row.Records,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPeriodReport handles GET /api/v1/reports/{period}.
func (s *Server) GetPeriodReport(ctx echo.Context, period string, params servers.GetPeriodReportParams) error {
	anchor, err := parseAnchor(params.Anchor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetPeriodReportQuery(period, anchor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	report, err := s.getPeriodReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.PeriodReport{
		Period:       report.Period,
		From:         report.From.Format(time.DateOnly),
		To:           report.To.Format(time.DateOnly),
		TotalRevenue: report.TotalRevenue.String(),
		TotalExpense: report.TotalExpense.String(),
		TotalProfit:  report.TotalProfit.String(),
		ProfitMargin: report.ProfitMargin.String(),
		Records:      report.Records,
	})
}

// GetTodayReport handles GET /api/v1/reports/today.
func (s *Server) GetTodayReport(ctx echo.Context) error {
	query, err := queries.NewGetTodayReportQuery(time.Now().UTC())
	if err != nil {
		return errorResponse(ctx, err)
	}

	report, err := s.getTodayReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TodayReport{
		Date:         report.Date.Format(time.DateOnly),
		TotalRevenue: report.TotalRevenue.String(),
		TotalExpense: report.TotalExpense.String(),
		TotalProfit:  report.TotalProfit.String(),
		ProfitMargin: report.ProfitMargin.String(),
		Records:      report.Records,
	})
}

// GetTopSellingProducts handles GET /api/v1/products/top.
func (s *Server) GetTopSellingProducts(ctx echo.Context, params servers.GetTopSellingProductsParams) error {
	limit := defaultTopSellingLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetTopSellingQuery(limit)
	if err != nil {
		return errorResponse(ctx, err)
	}

	ranks, err := s.getTopSellingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.ProductRank, len(ranks))
	for i, rank := range ranks {
		response[i] = servers.ProductRank{
			ProductId:     rank.ProductID,
			Name:          rank.Name,
			TotalQuantity: rank.TotalQuantity,
			OrdersCount:   rank.OrdersCount,
			Revenue:       rank.Revenue.String(),
			Percentage:    rank.Percentage.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query := queries.NewGetDriversQuery()

	drivers, err := s.getDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Driver, len(drivers))
	for i, d := range drivers {
		response[i] = servers.Driver{
			Id:           d.ID,
			Name:         d.Name,
			Phone:        d.Phone,
			Salary:       d.Salary.String(),
			State:        d.State,
			IsActive:     d.IsActive,
			IsAssignable: d.IsAssignable,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
