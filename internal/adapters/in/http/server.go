// Package http exposes the marketplace order lifecycle over a REST API.
// It translates HTTP requests into commands and queries and maps the domain
// error taxonomy onto status codes; no business rules live here.
package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	claimNextHandler     commands.ClaimNextOrderCommandHandler
	claimOrderHandler    commands.ClaimOrderCommandHandler
	assignDriverHandler  commands.AssignDriverCommandHandler
	markDeliveredHandler commands.MarkDeliveredCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	hireDriverHandler    commands.HireDriverCommandHandler
	fireDriverHandler    commands.FireDriverCommandHandler

	// Query handlers
	getOrderQueueHandler       queries.GetOrderQueueQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
	getAllDriversHandler       queries.GetAllDriversQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimNextHandler commands.ClaimNextOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	hireDriverHandler commands.HireDriverCommandHandler,
	fireDriverHandler commands.FireDriverCommandHandler,
	getOrderQueueHandler queries.GetOrderQueueQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		claimNextHandler:           claimNextHandler,
		claimOrderHandler:          claimOrderHandler,
		assignDriverHandler:        assignDriverHandler,
		markDeliveredHandler:       markDeliveredHandler,
		cancelOrderHandler:         cancelOrderHandler,
		hireDriverHandler:          hireDriverHandler,
		fireDriverHandler:          fireDriverHandler,
		getOrderQueueHandler:       getOrderQueueHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
		getAllDriversHandler:       getAllDriversHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance. Mutating
// endpoints sit behind the staff authorization middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, authorizer StaffAuthorizer) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders/queue", s.GetOrderQueue)
	api.GET("/orders/active", s.GetActiveDeliveries)
	api.GET("/drivers", s.GetDrivers)

	staff := api.Group("", StaffOnly(authorizer))
	staff.POST("/orders", s.CreateOrder)
	staff.POST("/orders/claim-next", s.ClaimNextOrder)
	staff.POST("/orders/:number/claim", s.ClaimOrder)
	staff.POST("/orders/:number/assign-driver", s.AssignDriver)
	staff.POST("/orders/:number/deliver", s.MarkDelivered)
	staff.POST("/orders/:number/cancel", s.CancelOrder)
	staff.POST("/drivers", s.HireDriver)
	staff.DELETE("/drivers/:id", s.FireDriver)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order in Pending status.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, err)
	}

	number, err := kernel.NewOrderNumber(req.Number)
	if err != nil {
		return badRequestJSON(ctx, err)
	}
	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequestJSON(ctx, err)
	}
	address, err := kernel.NewAddress(req.Address.Street, req.Address.City, req.Address.Phone)
	if err != nil {
		return badRequestJSON(ctx, err)
	}
	total, err := kernel.NewMoney(req.Total.Amount, req.Total.Currency)
	if err != nil {
		return badRequestJSON(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		number, restaurantID, req.PlacedAt, req.EstimatedDeliveryAt, address, total)
	if err != nil {
		return badRequestJSON(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ClaimNextOrder handles POST /api/v1/orders/claim-next - claims the queue head.
// Returns 404 when the queue is empty.
func (s *Server) ClaimNextOrder(ctx echo.Context) error {
	cmd := commands.NewClaimNextOrderCommand()

	claimed, err := s.claimNextHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(claimed))
}

// ClaimOrder handles POST /api/v1/orders/:number/claim - claims one specific order.
// An unknown number yields 404; an order no longer Pending yields 409.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	number, err := kernel.NewOrderNumber(ctx.Param("number"))
	if err != nil {
		return badRequestJSON(ctx, err)
	}

	cmd, err := commands.NewClaimOrderCommand(number)
	if err != nil {
		return badRequestJSON(ctx, err)
	}

	claimed, err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(claimed))
}

// AssignDriver handles POST /api/v1/orders/:number/assign-driver - dispatches
// a confirmed order with a named driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	number, err := kernel.NewOrderNumber(ctx.Param("number"))
	if err != nil {
		return badRequestJSON(ctx, err)
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, err)
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequestJSON(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(number, driverID)
	if err != nil {
		return badRequestJSON(ctx, err)
	}

	dispatched, err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(dispatched))
}

// MarkDelivered handles POST /api/v1/orders/:number/deliver - confirms delivery.
// A timestamp preceding the order's placement yields 400.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	number, err := kernel.NewOrderNumber(ctx.Param("number"))
	if err != nil {
		return badRequestJSON(ctx, err)
	}

	var req DeliverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(number, req.DeliveredAt)
	if err != nil {
		return badRequestJSON(ctx, err)
	}

	delivered, err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(delivered))
}

// CancelOrder handles POST /api/v1/orders/:number/cancel - withdraws an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	number, err := kernel.NewOrderNumber(ctx.Param("number"))
	if err != nil {
		return badRequestJSON(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(number)
	if err != nil {
		return badRequestJSON(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(cancelled))
}

// GetOrderQueue handles GET /api/v1/orders/queue - the claim queue in claim order.
func (s *Server) GetOrderQueue(ctx echo.Context) error {
	query := queries.NewGetOrderQueueQuery()

	queue, err := s.getOrderQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]QueuedOrderResponse, len(queue))
	for i, queued := range queue {
		response[i] = QueuedOrderResponse{
			Number:              queued.Number.String(),
			PlacedAt:            queued.PlacedAt,
			EstimatedDeliveryAt: queued.EstimatedDeliveryAt,
			Street:              queued.Street,
			City:                queued.City,
			Total: MoneyPayload{
				Amount:   queued.Total.Amount(),
				Currency: queued.Total.Currency(),
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveDeliveries handles GET /api/v1/orders/active - deliveries in flight.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	deliveries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]ActiveDeliveryResponse, len(deliveries))
	for i, delivery := range deliveries {
		response[i] = ActiveDeliveryResponse{
			Number:              delivery.Number.String(),
			DriverID:            delivery.DriverID.String(),
			DriverName:          delivery.DriverName,
			PlacedAt:            delivery.PlacedAt,
			EstimatedDeliveryAt: delivery.EstimatedDeliveryAt,
			Street:              delivery.Street,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDrivers handles GET /api/v1/drivers - the driver roster with statuses.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query := queries.NewGetAllDriversQuery()

	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]DriverResponse, len(drivers))
	for i, roster := range drivers {
		response[i] = DriverResponse{
			ID:     roster.ID.String(),
			Name:   roster.Name,
			Status: roster.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// HireDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) HireDriver(ctx echo.Context) error {
	var req HireDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, err)
	}

	cmd, err := commands.NewHireDriverCommand(req.Name)
	if err != nil {
		return badRequestJSON(ctx, err)
	}

	if err := s.hireDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, HireDriverResponse{ID: cmd.DriverID().String()})
}

// FireDriver handles DELETE /api/v1/drivers/:id - removes a driver.
// A driver with a delivery in flight yields 409.
func (s *Server) FireDriver(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, err)
	}

	cmd, err := commands.NewFireDriverCommand(id)
	if err != nil {
		return badRequestJSON(ctx, err)
	}

	if err := s.fireDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
