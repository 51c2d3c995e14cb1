package rental

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrykkrzal/skirent/internal/apperrors"
	"github.com/patrykkrzal/skirent/internal/models"
	"github.com/patrykkrzal/skirent/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStore()

	return NewService(st), st
}

func addUser(t *testing.T, st *store.MemoryStore, login string) *models.User {
	t.Helper()

	u := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Login:        login,
		Email:        login + "@example.com",
		PasswordHash: "x",
		Role:         models.RoleUser,
	}
	require.NoError(t, st.Users().Create(context.Background(), u))

	return u
}

func TestAddEquipmentRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddEquipment(ctx, models.TypeSkis, models.SizeMedium, 130)
	require.NoError(t, err)

	listed, err := svc.ListEquipment(ctx, store.EquipmentFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	got := listed[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, models.TypeSkis, got.Type)
	assert.Equal(t, models.SizeMedium, got.Size)
	assert.Equal(t, 130.0, got.Price)
	assert.True(t, got.IsInWarehouse)
	assert.False(t, got.IsReserved)
}

func TestAddEquipmentCollectsEveryInvalidField(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddEquipment(context.Background(), "Sledge", "XXL", -5)
	require.Error(t, err)

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "type")
	assert.Contains(t, verr.Fields, "size")
	assert.Contains(t, verr.Fields, "price")
}

func TestListEquipmentFilters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddEquipment(ctx, models.TypeSkis, models.SizeSmall, 120)
	require.NoError(t, err)
	helmet, err := svc.AddEquipment(ctx, models.TypeHelmet, models.SizeUniversal, 40)
	require.NoError(t, err)

	typ := models.TypeHelmet
	listed, err := svc.ListEquipment(ctx, store.EquipmentFilter{Type: &typ})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, helmet.ID, listed[0].ID)
}

func TestPlaceOrderComputesPriceAndFlipsFlags(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := addUser(t, st, "pawel")

	skis, err := svc.AddEquipment(ctx, models.TypeSkis, models.SizeSmall, 120)
	require.NoError(t, err)
	helmet, err := svc.AddEquipment(ctx, models.TypeHelmet, models.SizeUniversal, 40)
	require.NoError(t, err)

	order, err := svc.PlaceOrder(ctx, user.ID, []uint{skis.ID, helmet.ID}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 160.0, order.Price)
	assert.Equal(t, "Skis Small, Helmet Universal", order.RentedItems)
	assert.False(t, order.WasReturned)
	assert.NotEmpty(t, order.Number)
	require.Len(t, order.OrderedItems, 2)

	for _, id := range []uint{skis.ID, helmet.ID} {
		e, err := st.Equipment().ByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, e.IsReserved)
		assert.False(t, e.IsInWarehouse)
	}
}

func TestPlaceOrderSubmissionDateIsUTCCalendarDay(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := addUser(t, st, "pawel")

	skis, err := svc.AddEquipment(ctx, models.TypeSkis, models.SizeSmall, 120)
	require.NoError(t, err)

	// 01:30 on May 3rd in UTC+3 is 22:30 on May 2nd in UTC. The stored
	// date is the UTC day, independent of the timestamp's zone.
	zone := time.FixedZone("UTC+3", 3*60*60)
	orderDate := time.Date(2026, time.May, 3, 1, 30, 0, 0, zone)

	order, err := svc.PlaceOrder(ctx, user.ID, []uint{skis.ID}, orderDate)
	require.NoError(t, err)

	want := time.Date(2026, time.May, 2, 0, 0, 0, 0, time.UTC)
	assert.True(t, order.SubmissionDate.Equal(want), "got %v", order.SubmissionDate)
	assert.Equal(t, time.UTC, order.SubmissionDate.Location())
}

func TestPlaceOrderConflictIsAtomic(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := addUser(t, st, "pawel")

	skis, err := svc.AddEquipment(ctx, models.TypeSkis, models.SizeSmall, 120)
	require.NoError(t, err)
	helmet, err := svc.AddEquipment(ctx, models.TypeHelmet, models.SizeUniversal, 40)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(ctx, user.ID, []uint{skis.ID}, time.Now())
	require.NoError(t, err)

	// skis already reserved: the whole second order must fail.
	_, err = svc.PlaceOrder(ctx, user.ID, []uint{helmet.ID, skis.ID}, time.Now())
	require.Error(t, err)

	var conflict *apperrors.ConflictError
	require.True(t, errors.As(err, &conflict))

	// helmet must be untouched and no second order recorded.
	e, err := st.Equipment().ByID(ctx, helmet.ID)
	require.NoError(t, err)
	assert.False(t, e.IsReserved)
	assert.True(t, e.IsInWarehouse)

	orders, err := st.Orders().List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestPlaceOrderRejectsDuplicateIDs(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := addUser(t, st, "pawel")

	skis, err := svc.AddEquipment(ctx, models.TypeSkis, models.SizeSmall, 120)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(ctx, user.ID, []uint{skis.ID, skis.ID}, time.Now())
	require.Error(t, err)

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "equipment_ids")
}

func TestPlaceOrderRejectsEmptySet(t *testing.T) {
	svc, st := newTestService(t)
	user := addUser(t, st, "pawel")

	_, err := svc.PlaceOrder(context.Background(), user.ID, nil, time.Now())
	require.Error(t, err)

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestPlaceOrderUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	skis, err := svc.AddEquipment(ctx, models.TypeSkis, models.SizeSmall, 120)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(ctx, 999, []uint{skis.ID}, time.Now())
	require.Error(t, err)

	var notFound *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestReturnOrderReleasesEquipment(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := addUser(t, st, "pawel")

	skis, err := svc.AddEquipment(ctx, models.TypeSkis, models.SizeSmall, 120)
	require.NoError(t, err)

	order, err := svc.PlaceOrder(ctx, user.ID, []uint{skis.ID}, time.Now())
	require.NoError(t, err)

	returned, err := svc.ReturnOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, returned.WasReturned)

	e, err := st.Equipment().ByID(ctx, skis.ID)
	require.NoError(t, err)
	assert.False(t, e.IsReserved)
	assert.True(t, e.IsInWarehouse)
}

func TestReturnOrderTwiceIsNotFound(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := addUser(t, st, "pawel")

	skis, err := svc.AddEquipment(ctx, models.TypeSkis, models.SizeSmall, 120)
	require.NoError(t, err)

	order, err := svc.PlaceOrder(ctx, user.ID, []uint{skis.ID}, time.Now())
	require.NoError(t, err)

	_, err = svc.ReturnOrder(ctx, order.ID)
	require.NoError(t, err)

	_, err = svc.ReturnOrder(ctx, order.ID)
	require.Error(t, err)

	var notFound *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFound))

	// Flags must not double-flip.
	e, err := st.Equipment().ByID(ctx, skis.ID)
	require.NoError(t, err)
	assert.False(t, e.IsReserved)
	assert.True(t, e.IsInWarehouse)
}

func TestReservedEquipmentAlwaysHasOpenOrder(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := addUser(t, st, "pawel")

	for _, row := range []struct {
		typ  models.EquipmentType
		size models.EquipmentSize
	}{
		{models.TypeSkis, models.SizeSmall},
		{models.TypeSkis, models.SizeMedium},
		{models.TypeHelmet, models.SizeUniversal},
	} {
		_, err := svc.AddEquipment(ctx, row.typ, row.size, 100)
		require.NoError(t, err)
	}

	all, err := svc.ListEquipment(ctx, store.EquipmentFilter{})
	require.NoError(t, err)

	_, err = svc.PlaceOrder(ctx, user.ID, []uint{all[0].ID, all[2].ID}, time.Now())
	require.NoError(t, err)

	all, err = svc.ListEquipment(ctx, store.EquipmentFilter{})
	require.NoError(t, err)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)

	for _, e := range all {
		if !e.IsReserved {
			continue
		}

		linked := false

		for _, o := range orders {
			if o.WasReturned {
				continue
			}
			for _, item := range o.OrderedItems {
				if item.EquipmentID == e.ID {
					linked = true
				}
			}
		}

		assert.True(t, linked, "reserved equipment %d has no open order", e.ID)
	}
}

func TestDeleteEquipmentReferencedByOrder(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := addUser(t, st, "pawel")

	skis, err := svc.AddEquipment(ctx, models.TypeSkis, models.SizeSmall, 120)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(ctx, user.ID, []uint{skis.ID}, time.Now())
	require.NoError(t, err)

	err = svc.DeleteEquipment(ctx, skis.ID)
	require.Error(t, err)

	var conflict *apperrors.ConflictError
	require.True(t, errors.As(err, &conflict))
}
