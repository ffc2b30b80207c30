package models

import "time"

// OrderStatus represents all possible states of a food delivery order
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "PLACED"
	StatusAccepted       OrderStatus = "ACCEPTED"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusReady          OrderStatus = "READY"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCancelled      OrderStatus = "CANCELLED"
)

// AllStatuses lists every status in progression order, terminal cancel last.
var AllStatuses = []OrderStatus{
	StatusPlaced,
	StatusAccepted,
	StatusPreparing,
	StatusReady,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// IsTerminal reports whether no further transition is possible from s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// OrderCustomer is the customer reference embedded in an order payload.
type OrderCustomer struct {
	ID           int64  `json:"id"`
	FullName     string `json:"fullName"`
	MobileNumber string `json:"mobileNumber"`
}

// OrderDeliveryBoy is the delivery-boy reference embedded in an order payload.
type OrderDeliveryBoy struct {
	ID           int64  `json:"id"`
	FullName     string `json:"fullName"`
	MobileNumber string `json:"mobileNumber"`
}

// MenuItemRef is the menu-item snapshot carried on an order line.
type MenuItemRef struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OrderItem struct {
	ID       int64       `json:"id"`
	MenuItem MenuItemRef `json:"menuItem"`
	Quantity int         `json:"quantity"`
	Price    float64     `json:"price"` // snapshot price at time of order
}

// Order is the canonical server-side order record as seen by the admin client.
// The client never mutates an Order in place; it replaces it wholesale with
// whatever the server returns.
type Order struct {
	ID                    int64             `json:"id"`
	OrderNumber           string            `json:"orderNumber"`
	Customer              OrderCustomer     `json:"customer"`
	DeliveryBoy           *OrderDeliveryBoy `json:"deliveryBoy"`
	Status                OrderStatus       `json:"status"`
	Subtotal              float64           `json:"subtotal"`
	DeliveryCharge        float64           `json:"deliveryCharge"`
	TotalAmount           float64           `json:"totalAmount"`
	PaymentMethod         string            `json:"paymentMethod"`
	DeliveryAddress       string            `json:"deliveryAddress"`
	SpecialInstructions   string            `json:"specialInstructions,omitempty"`
	EstimatedDeliveryTime *time.Time        `json:"estimatedDeliveryTime"`
	AcceptedAt            *time.Time        `json:"acceptedAt"`
	ReadyAt               *time.Time        `json:"readyAt"`
	OutForDeliveryAt      *time.Time        `json:"outForDeliveryAt"`
	DeliveredAt           *time.Time        `json:"deliveredAt"`
	CreatedAt             time.Time         `json:"createdAt"`
	Items                 []OrderItem       `json:"items,omitempty"`
}

// AssignedTo reports whether the order is assigned to the given delivery boy.
func (o *Order) AssignedTo(deliveryBoyID int64) bool {
	return o.DeliveryBoy != nil && o.DeliveryBoy.ID == deliveryBoyID
}
