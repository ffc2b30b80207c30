package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"food-delivery-admin/models"
)

// OrderStore owns the in-memory order collection and the currently selected
// order. Mutating operations issue exactly one request and, only on success,
// pull the authoritative post-mutation state back from the server; the local
// snapshot is never mutated optimistically, so a server-side business-rule
// rejection can never leave the client diverged.
type OrderStore struct {
	api AdminAPI
	log *zap.SugaredLogger

	mu       sync.RWMutex
	orders   []models.Order
	selected *models.Order
	loading  int // depth counter: stays >0 across a mutation's chained refetches
	lastErr  error
}

func NewOrderStore(api AdminAPI, log *zap.SugaredLogger) *OrderStore {
	return &OrderStore{api: api, log: log}
}

// Orders returns a copy of the current snapshot.
func (s *OrderStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// SelectedOrder returns a copy of the selected order, or nil.
func (s *OrderStore) SelectedOrder() *models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	o := *s.selected
	return &o
}

// IsLoading reports whether any operation is in flight. The UI uses this to
// gate duplicate submission; the store itself does not serialize callers that
// bypass the gate.
func (s *OrderStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}

// Err returns the failure recorded by the most recent operation, if any.
func (s *OrderStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *OrderStore) ClearError() {
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
}

func (s *OrderStore) begin() {
	s.mu.Lock()
	s.loading++
	s.lastErr = nil
	s.mu.Unlock()
}

func (s *OrderStore) end(err error) {
	s.mu.Lock()
	s.loading--
	if err != nil {
		s.lastErr = err
	}
	s.mu.Unlock()
}

// FetchOrders replaces the order collection with the server's current
// snapshot, optionally filtered by status. On failure the collection is left
// at its last-known-good value and the error is recorded.
func (s *OrderStore) FetchOrders(ctx context.Context, statusFilter string) error {
	s.begin()
	orders, err := s.api.ListOrders(ctx, statusFilter)
	if err != nil {
		s.end(err)
		return err
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	s.end(nil)
	return nil
}

// FetchOrderDetail replaces the selected-order slot with the server's
// canonical record for id.
func (s *OrderStore) FetchOrderDetail(ctx context.Context, id int64) error {
	s.begin()
	order, err := s.api.GetOrder(ctx, id)
	if err != nil {
		s.end(err)
		return err
	}
	s.mu.Lock()
	s.selected = order
	s.mu.Unlock()
	s.end(nil)
	return nil
}

// AcceptOrder accepts a placed order, then re-synchronizes the collection and
// the detail slot from the server.
func (s *OrderStore) AcceptOrder(ctx context.Context, id int64) error {
	s.begin()
	_, err := s.api.AcceptOrder(ctx, id)
	if err != nil {
		s.end(err)
		return err
	}
	err = s.refetch(ctx, id, true)
	s.end(err)
	return err
}

// RejectOrder cancels an order with a reason, then re-synchronizes the
// collection. The detail slot is not refetched: the rejected order leaves the
// actionable list.
func (s *OrderStore) RejectOrder(ctx context.Context, id int64, reason string) error {
	s.begin()
	if err := s.api.RejectOrder(ctx, id, reason); err != nil {
		s.end(err)
		return err
	}
	err := s.refetch(ctx, id, false)
	s.end(err)
	return err
}

// UpdateOrderStatus requests a transition and adopts whatever the server
// returns via the refetch; the client never computes transitions locally.
func (s *OrderStore) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	s.begin()
	_, err := s.api.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		s.end(err)
		return err
	}
	err = s.refetch(ctx, id, true)
	s.end(err)
	return err
}

// AssignDeliveryBoy attaches a delivery boy to an order, then re-synchronizes.
func (s *OrderStore) AssignDeliveryBoy(ctx context.Context, id, deliveryBoyID int64) error {
	s.begin()
	_, err := s.api.AssignDeliveryBoy(ctx, id, deliveryBoyID)
	if err != nil {
		s.end(err)
		return err
	}
	err = s.refetch(ctx, id, true)
	s.end(err)
	return err
}

func (s *OrderStore) refetch(ctx context.Context, id int64, detail bool) error {
	if err := s.FetchOrders(ctx, ""); err != nil {
		return err
	}
	if detail {
		return s.FetchOrderDetail(ctx, id)
	}
	return nil
}

// ActiveOrdersForDeliveryBoy returns the non-terminal orders currently
// assigned to the given delivery boy. Recomputed on every call rather than
// cached: the order snapshot stays the single source of truth.
func (s *OrderStore) ActiveOrdersForDeliveryBoy(deliveryBoyID int64) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.AssignedTo(deliveryBoyID) && !o.Status.IsTerminal() {
			out = append(out, o)
		}
	}
	return out
}

// AssignedOrdersCount returns the active workload of a delivery boy.
func (s *OrderStore) AssignedOrdersCount(deliveryBoyID int64) int {
	return len(s.ActiveOrdersForDeliveryBoy(deliveryBoyID))
}
