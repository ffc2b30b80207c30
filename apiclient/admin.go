package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"food-delivery-admin/models"
)

type rejectOrderRequest struct {
	Reason string `json:"reason"`
}

type updateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

type assignDeliveryBoyRequest struct {
	DeliveryBoyID int64 `json:"deliveryBoyId"`
}

// DashboardStats is the admin dashboard aggregate.
type DashboardStats struct {
	Period             string  `json:"period"`
	TotalOrders        int     `json:"totalOrders"`
	TotalRevenue       float64 `json:"totalRevenue"`
	PendingOrders      int     `json:"pendingOrders"`
	PreparingOrders    int     `json:"preparingOrders"`
	ActiveDeliveryBoys int     `json:"activeDeliveryBoys"`
}

// ListOrders fetches the current order snapshot, optionally filtered by
// status.
func (c *Client) ListOrders(ctx context.Context, status string) ([]models.Order, error) {
	path := "/admin/orders"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches the canonical record for one order.
func (c *Client) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// AcceptOrder asks the server to accept a placed order. The returned record
// reflects whatever status the server decided on.
func (c *Client) AcceptOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/orders/%d/accept", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// RejectOrder cancels a non-terminal order with a reason.
func (c *Client) RejectOrder(ctx context.Context, id int64, reason string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/orders/%d/reject", id), rejectOrderRequest{Reason: reason}, nil)
}

// UpdateOrderStatus requests a transition; the server is the authority on
// whether it is legal.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/orders/%d/status", id), updateOrderStatusRequest{Status: status}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// AssignDeliveryBoy attaches a delivery boy to an order.
func (c *Client) AssignDeliveryBoy(ctx context.Context, orderID, deliveryBoyID int64) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/orders/%d/assign", orderID), assignDeliveryBoyRequest{DeliveryBoyID: deliveryBoyID}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListDeliveryBoys fetches the delivery personnel roster.
func (c *Client) ListDeliveryBoys(ctx context.Context) ([]models.DeliveryBoy, error) {
	var boys []models.DeliveryBoy
	if err := c.do(ctx, http.MethodGet, "/admin/delivery-boys", nil, &boys); err != nil {
		return nil, err
	}
	return boys, nil
}

// GetDashboardStats fetches the dashboard aggregate for a period
// ("today" when empty).
func (c *Client) GetDashboardStats(ctx context.Context, period string) (*DashboardStats, error) {
	path := "/admin/dashboard/stats"
	if period != "" {
		path += "?period=" + url.QueryEscape(period)
	}
	var stats DashboardStats
	if err := c.do(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
