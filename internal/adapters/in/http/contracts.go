package http

import (
	"time"

	"marketplace/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressPayload carries the delivery destination in requests and responses.
type AddressPayload struct {
	Street string `json:"street"`
	City   string `json:"city,omitempty"`
	Phone  string `json:"phone"`
}

// MoneyPayload carries a monetary amount in minor units plus currency code.
type MoneyPayload struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Number              string         `json:"number"`
	RestaurantID        string         `json:"restaurant_id"`
	PlacedAt            time.Time      `json:"placed_at"`
	EstimatedDeliveryAt time.Time      `json:"estimated_delivery_at"`
	Address             AddressPayload `json:"address"`
	Total               MoneyPayload   `json:"total"`
}

// AssignDriverRequest is the body of POST /api/v1/orders/:number/assign-driver.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

// DeliverRequest is the body of POST /api/v1/orders/:number/deliver.
type DeliverRequest struct {
	DeliveredAt time.Time `json:"delivered_at"`
}

// HireDriverRequest is the body of POST /api/v1/drivers.
type HireDriverRequest struct {
	Name string `json:"name"`
}

// HireDriverResponse returns the generated id of a newly hired driver.
type HireDriverResponse struct {
	ID string `json:"id"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	Number              string         `json:"number"`
	RestaurantID        string         `json:"restaurant_id"`
	Status              string         `json:"status"`
	PlacedAt            time.Time      `json:"placed_at"`
	EstimatedDeliveryAt time.Time      `json:"estimated_delivery_at"`
	DeliveredAt         *time.Time     `json:"delivered_at,omitempty"`
	DriverID            *string        `json:"driver_id,omitempty"`
	Address             AddressPayload `json:"address"`
	Total               MoneyPayload   `json:"total"`
}

// QueuedOrderResponse represents one entry of the claim queue view.
type QueuedOrderResponse struct {
	Number              string       `json:"number"`
	PlacedAt            time.Time    `json:"placed_at"`
	EstimatedDeliveryAt time.Time    `json:"estimated_delivery_at"`
	Street              string       `json:"street"`
	City                string       `json:"city,omitempty"`
	Total               MoneyPayload `json:"total"`
}

// ActiveDeliveryResponse represents one in-flight delivery on the dispatch board.
type ActiveDeliveryResponse struct {
	Number              string    `json:"number"`
	DriverID            string    `json:"driver_id"`
	DriverName          string    `json:"driver_name"`
	PlacedAt            time.Time `json:"placed_at"`
	EstimatedDeliveryAt time.Time `json:"estimated_delivery_at"`
	Street              string    `json:"street"`
}

// DriverResponse represents one driver on the roster.
type DriverResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func orderToResponse(o *order.Order) OrderResponse {
	var driverID *string
	if id := o.Driver(); id != nil {
		s := id.String()
		driverID = &s
	}

	return OrderResponse{
		Number:              o.Number().String(),
		RestaurantID:        o.RestaurantID().String(),
		Status:              o.Status().String(),
		PlacedAt:            o.PlacedAt(),
		EstimatedDeliveryAt: o.EstimatedDeliveryAt(),
		DeliveredAt:         o.DeliveredAt(),
		DriverID:            driverID,
		Address: AddressPayload{
			Street: o.Address().Street(),
			City:   o.Address().City(),
			Phone:  o.Address().Phone(),
		},
		Total: MoneyPayload{
			Amount:   o.Total().Amount(),
			Currency: o.Total().Currency(),
		},
	}
}
