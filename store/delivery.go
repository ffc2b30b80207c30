package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"food-delivery-admin/models"
)

// DeliveryStore owns the delivery personnel roster. It is read-only from the
// OrderStore's perspective; workload is derived from the order snapshot, not
// stored here (see OrderStore.ActiveOrdersForDeliveryBoy).
type DeliveryStore struct {
	api AdminAPI
	log *zap.SugaredLogger

	mu      sync.RWMutex
	boys    []models.DeliveryBoy
	loading bool
	lastErr error
}

func NewDeliveryStore(api AdminAPI, log *zap.SugaredLogger) *DeliveryStore {
	return &DeliveryStore{api: api, log: log}
}

// FetchDeliveryBoys replaces the roster with the server's current snapshot.
// On failure the roster is left unchanged and the error recorded.
func (s *DeliveryStore) FetchDeliveryBoys(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()

	boys, err := s.api.ListDeliveryBoys(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err
		return err
	}
	s.boys = boys
	return nil
}

// DeliveryBoys returns a copy of the roster.
func (s *DeliveryStore) DeliveryBoys() []models.DeliveryBoy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DeliveryBoy, len(s.boys))
	copy(out, s.boys)
	return out
}

// AvailableDeliveryBoys filters the roster to on-duty, available personnel.
func (s *DeliveryStore) AvailableDeliveryBoys() []models.DeliveryBoy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.DeliveryBoy
	for _, b := range s.boys {
		if b.DerivedStatus() == models.DeliveryBoyAvailable {
			out = append(out, b)
		}
	}
	return out
}

func (s *DeliveryStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *DeliveryStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *DeliveryStore) ClearError() {
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
}
