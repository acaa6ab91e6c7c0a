package room_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomly/booking-backend/internal/room"
)

func newService() room.Service {
	return room.NewService(room.NewMemoryRepository())
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an id and trims the name", func(t *testing.T) {
		svc := newService()
		r, err := svc.Create(ctx, room.CreateRequest{Name: "  War Room  ", BaseHourlyRate: 900, Capacity: 8})
		require.NoError(t, err)
		assert.Contains(t, r.ID, "room_")
		assert.Equal(t, "War Room", r.Name)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(ctx, room.CreateRequest{Name: "  ", BaseHourlyRate: 900, Capacity: 8})
		assert.ErrorIs(t, err, room.ErrEmptyName)

		_, err = svc.Create(ctx, room.CreateRequest{Name: "War Room", BaseHourlyRate: 0, Capacity: 8})
		assert.ErrorIs(t, err, room.ErrInvalidRate)

		_, err = svc.Create(ctx, room.CreateRequest{Name: "War Room", BaseHourlyRate: 900, Capacity: -1})
		assert.ErrorIs(t, err, room.ErrInvalidCapacity)
	})
}

func TestServiceListAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	first, err := svc.Create(ctx, room.CreateRequest{Name: "Focus Cabin", BaseHourlyRate: 500, Capacity: 2})
	require.NoError(t, err)
	second, err := svc.Create(ctx, room.CreateRequest{Name: "Townhall", BaseHourlyRate: 1500, Capacity: 20})
	require.NoError(t, err)

	t.Run("list preserves insertion order", func(t *testing.T) {
		rooms, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, rooms, 2)
		assert.Equal(t, first.ID, rooms[0].ID)
		assert.Equal(t, second.ID, rooms[1].ID)
	})

	t.Run("lookup by id", func(t *testing.T) {
		got, err := svc.GetByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "Townhall", got.Name)

		_, err = svc.GetByID(ctx, "room_missing")
		assert.ErrorIs(t, err, room.ErrNotFound)
	})

	t.Run("reset empties the catalog", func(t *testing.T) {
		require.NoError(t, svc.Reset(ctx))
		rooms, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, rooms)
	})
}

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	require.NoError(t, room.SeedDefaults(ctx, svc))
	rooms, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "Focus Cabin", rooms[0].Name)

	// Seeding again is a no-op on a populated catalog.
	require.NoError(t, room.SeedDefaults(ctx, svc))
	rooms, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
}
