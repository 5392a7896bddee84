//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/usecase"
	"stayhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelUseCase(t *testing.T) {
	ctx := context.Background()

	newUC := func(store *fakeStore) usecase.HotelUseCase {
		return usecase.NewHotelUseCase(store, &fakeHotelReads{store: store})
	}

	t.Run("create and get round-trip", func(t *testing.T) {
		store := newFakeStore()
		uc := newUC(store)

		city := "Lisbon"
		created, err := uc.CreateHotel(ctx, usecase.CreateHotelParams{Name: "Seaside Inn", City: &city})
		require.NoError(t, err)

		got, err := uc.GetHotel(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Seaside Inn", got.Name)
		require.NotNil(t, got.City)
		assert.Equal(t, "Lisbon", *got.City)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		store := newFakeStore()
		uc := newUC(store)

		_, err := uc.CreateHotel(ctx, usecase.CreateHotelParams{Name: "   "})
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		store := newFakeStore()
		uc := newUC(store)

		_, err := uc.CreateHotel(ctx, usecase.CreateHotelParams{Name: "Seaside Inn"})
		require.NoError(t, err)

		_, err = uc.CreateHotel(ctx, usecase.CreateHotelParams{Name: "Seaside Inn"})
		assert.ErrorIs(t, err, usecase.ErrHotelDuplicate)
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		store := newFakeStore()
		uc := newUC(store)

		city := "Lisbon"
		created, err := uc.CreateHotel(ctx, usecase.CreateHotelParams{Name: "Seaside Inn", City: &city})
		require.NoError(t, err)

		newName := "Seaside Grand"
		updated, err := uc.UpdateHotel(ctx, created.ID, usecase.UpdateHotelParams{Name: &newName})
		require.NoError(t, err)
		assert.Equal(t, "Seaside Grand", updated.Name)
		require.NotNil(t, updated.City)
		assert.Equal(t, "Lisbon", *updated.City)
	})

	t.Run("delete blocked while rooms exist", func(t *testing.T) {
		store := newFakeStore()
		uc := newUC(store)

		created, err := uc.CreateHotel(ctx, usecase.CreateHotelParams{Name: "Seaside Inn"})
		require.NoError(t, err)

		now := time.Now().UTC()
		roomID := uuid.New()
		store.rooms[roomID] = &readmodel.RoomRM{
			ID: roomID, HotelID: created.ID, Number: 1, Type: "single", Capacity: 1, Price: 50,
			CreatedAt: now, UpdatedAt: now,
		}

		err = uc.DeleteHotel(ctx, created.ID)
		assert.ErrorIs(t, err, usecase.ErrHotelInUse)

		delete(store.rooms, roomID)
		assert.NoError(t, uc.DeleteHotel(ctx, created.ID))

		_, err = uc.GetHotel(ctx, created.ID)
		assert.ErrorIs(t, err, usecase.ErrHotelNotFound)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		store := newFakeStore()
		uc := newUC(store)

		_, err := uc.GetHotel(ctx, uuid.New())
		assert.ErrorIs(t, err, usecase.ErrHotelNotFound)

		err = uc.DeleteHotel(ctx, uuid.New())
		assert.ErrorIs(t, err, usecase.ErrHotelNotFound)
	})
}

func TestRoomUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("create requires an existing hotel", func(t *testing.T) {
		store := newFakeStore()
		uc := usecase.NewRoomUseCase(store, nil)

		_, err := uc.CreateRoom(ctx, usecase.CreateRoomParams{
			HotelID: uuid.New(), Number: 101, Type: "double", Capacity: 2, Price: 120,
		})
		assert.ErrorIs(t, err, usecase.ErrHotelNotFound)
	})

	t.Run("number unique per hotel", func(t *testing.T) {
		store := newFakeStore()
		hotelID := uuid.New()
		now := time.Now().UTC()
		store.hotels[hotelID] = &readmodel.HotelRM{ID: hotelID, Name: "Seaside Inn", CreatedAt: now, UpdatedAt: now}
		uc := usecase.NewRoomUseCase(store, nil)

		_, err := uc.CreateRoom(ctx, usecase.CreateRoomParams{
			HotelID: hotelID, Number: 101, Type: "double", Capacity: 2, Price: 120,
		})
		require.NoError(t, err)

		_, err = uc.CreateRoom(ctx, usecase.CreateRoomParams{
			HotelID: hotelID, Number: 101, Type: "single", Capacity: 1, Price: 60,
		})
		assert.ErrorIs(t, err, usecase.ErrRoomDuplicate)
	})

	t.Run("invalid fields rejected", func(t *testing.T) {
		store := newFakeStore()
		hotelID := uuid.New()
		now := time.Now().UTC()
		store.hotels[hotelID] = &readmodel.HotelRM{ID: hotelID, Name: "Seaside Inn", CreatedAt: now, UpdatedAt: now}
		uc := usecase.NewRoomUseCase(store, nil)

		for _, params := range []usecase.CreateRoomParams{
			{HotelID: hotelID, Number: 0, Type: "double", Capacity: 2, Price: 120},
			{HotelID: hotelID, Number: 101, Type: "", Capacity: 2, Price: 120},
			{HotelID: hotelID, Number: 101, Type: "double", Capacity: 0, Price: 120},
			{HotelID: hotelID, Number: 101, Type: "double", Capacity: 2, Price: -1},
		} {
			_, err := uc.CreateRoom(ctx, params)
			assert.ErrorIs(t, err, usecase.ErrValidation)
		}
	})
}
