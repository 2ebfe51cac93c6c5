package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus maps a client-supplied status string to its canonical
// form. "preparing" and "delivered" are accepted as aliases kept for older
// clients.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusDelivering,
		OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(s), true
	}
	switch s {
	case "preparing":
		return OrderStatusProcessing, true
	case "delivered":
		return OrderStatusCompleted, true
	}
	return "", false
}

type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	TotalAmount     int         `json:"totalAmount"`
	Status          OrderStatus `json:"status"`
	DeliveryAddress string      `json:"deliveryAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
}
