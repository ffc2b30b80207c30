// Package store holds the client-side canonical order and delivery state.
// Stores never merge server payloads field-by-field; every successful fetch
// replaces the affected snapshot wholesale, so a duplicate in-flight fetch is
// at worst a wasted request, never a corruption.
package store

import (
	"context"

	"food-delivery-admin/apiclient"
	"food-delivery-admin/models"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_admin_api.go -package=mocks

// AdminAPI is the slice of the remote admin API the stores consume.
// *apiclient.Client satisfies it.
type AdminAPI interface {
	ListOrders(ctx context.Context, status string) ([]models.Order, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	AcceptOrder(ctx context.Context, id int64) (*models.Order, error)
	RejectOrder(ctx context.Context, id int64, reason string) error
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)
	AssignDeliveryBoy(ctx context.Context, orderID, deliveryBoyID int64) (*models.Order, error)
	ListDeliveryBoys(ctx context.Context) ([]models.DeliveryBoy, error)
}

var _ AdminAPI = (*apiclient.Client)(nil)
