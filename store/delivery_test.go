package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"food-delivery-admin/models"
	"food-delivery-admin/store"
	"food-delivery-admin/store/mocks"
)

func newDeliveryStore(t *testing.T) (*store.DeliveryStore, *mocks.MockAdminAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdminAPI(ctrl)
	return store.NewDeliveryStore(api, zap.NewNop().Sugar()), api
}

func TestFetchDeliveryBoysReplacesRoster(t *testing.T) {
	s, api := newDeliveryStore(t)
	ctx := context.Background()

	roster := []models.DeliveryBoy{
		{ID: 1, Name: "Ravi", IsOnDuty: true, IsAvailable: true},
		{ID: 2, Name: "Arjun", IsOnDuty: true, IsAvailable: false},
		{ID: 3, Name: "Kiran", IsOnDuty: false, IsAvailable: true},
	}
	api.EXPECT().ListDeliveryBoys(ctx).Return(roster, nil)

	require.NoError(t, s.FetchDeliveryBoys(ctx))
	assert.Equal(t, roster, s.DeliveryBoys())
	assert.False(t, s.IsLoading())
}

func TestFetchDeliveryBoysFailureRetainsRoster(t *testing.T) {
	s, api := newDeliveryStore(t)
	ctx := context.Background()

	roster := []models.DeliveryBoy{{ID: 1, Name: "Ravi"}}
	fetchErr := errors.New("timeout")
	gomock.InOrder(
		api.EXPECT().ListDeliveryBoys(ctx).Return(roster, nil),
		api.EXPECT().ListDeliveryBoys(ctx).Return(nil, fetchErr),
	)

	require.NoError(t, s.FetchDeliveryBoys(ctx))
	require.ErrorIs(t, s.FetchDeliveryBoys(ctx), fetchErr)

	assert.Equal(t, roster, s.DeliveryBoys())
	assert.ErrorIs(t, s.Err(), fetchErr)
}

func TestAvailableDeliveryBoysFiltersByDerivedStatus(t *testing.T) {
	s, api := newDeliveryStore(t)
	ctx := context.Background()

	api.EXPECT().ListDeliveryBoys(ctx).Return([]models.DeliveryBoy{
		{ID: 1, Name: "Ravi", IsOnDuty: true, IsAvailable: true},
		{ID: 2, Name: "Arjun", IsOnDuty: true, IsAvailable: false},
		{ID: 3, Name: "Kiran", IsOnDuty: false, IsAvailable: true}, // off duty: availability is meaningless
	}, nil)
	require.NoError(t, s.FetchDeliveryBoys(ctx))

	available := s.AvailableDeliveryBoys()
	require.Len(t, available, 1)
	assert.Equal(t, int64(1), available[0].ID)
}

func TestDerivedStatus(t *testing.T) {
	assert.Equal(t, models.DeliveryBoyOffline, models.DeliveryBoy{IsOnDuty: false, IsAvailable: true}.DerivedStatus())
	assert.Equal(t, models.DeliveryBoyAvailable, models.DeliveryBoy{IsOnDuty: true, IsAvailable: true}.DerivedStatus())
	assert.Equal(t, models.DeliveryBoyBusy, models.DeliveryBoy{IsOnDuty: true, IsAvailable: false}.DerivedStatus())
}
