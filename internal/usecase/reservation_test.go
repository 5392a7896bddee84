//go:build unit

package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/readmodel"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testToday pins the reservation clock so the hardcoded stay dates below
// always sit in the future.
var testToday = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

func seedRoom(store *fakeStore) (roomID, hotelID uuid.UUID) {
	hotelID = uuid.New()
	roomID = uuid.New()
	now := time.Now().UTC()
	store.hotels[hotelID] = &readmodel.HotelRM{ID: hotelID, Name: "Grand Plaza", CreatedAt: now, UpdatedAt: now}
	store.rooms[roomID] = &readmodel.RoomRM{
		ID: roomID, HotelID: hotelID, Number: 101, Type: "double", Capacity: 2, Price: 120,
		CreatedAt: now, UpdatedAt: now,
	}
	return roomID, hotelID
}

func seedUser(store *fakeStore) uuid.UUID {
	id := uuid.New()
	now := time.Now().UTC()
	store.users[id] = &readmodel.UserRM{ID: id, Username: "guest", Role: "user", FullName: "Guest One", CreatedAt: now, UpdatedAt: now}
	return id
}

func newReservationUC(store *fakeStore) usecase.ReservationUseCase {
	return usecase.NewReservationUseCase(store, &fakeReservationReads{store: store}, clock.NewMockClock(testToday))
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a reservation for free dates", func(t *testing.T) {
		store := newFakeStore()
		roomID, _ := seedRoom(store)
		userID := seedUser(store)
		uc := newReservationUC(store)

		rm, err := uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID:       roomID,
			UserID:       userID,
			CheckInDate:  "2026-09-01",
			CheckOutDate: "2026-09-04",
			TotalAmount:  360,
		})
		require.NoError(t, err)
		require.NotNil(t, rm)
		assert.Equal(t, roomID, rm.RoomID)
		assert.Equal(t, userID, rm.UserID)
		assert.Equal(t, 360.0, rm.TotalAmount)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), rm.CheckInDate)
		assert.Equal(t, time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), rm.CheckOutDate)
	})

	t.Run("rejects an overlapping stay with a conflict", func(t *testing.T) {
		store := newFakeStore()
		roomID, _ := seedRoom(store)
		userID := seedUser(store)
		uc := newReservationUC(store)

		_, err := uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID: roomID, UserID: userID,
			CheckInDate: "2026-09-01", CheckOutDate: "2026-09-05", TotalAmount: 480,
		})
		require.NoError(t, err)

		_, err = uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID: roomID, UserID: userID,
			CheckInDate: "2026-09-04", CheckOutDate: "2026-09-06", TotalAmount: 240,
		})
		assert.ErrorIs(t, err, usecase.ErrReservationConflict)
		assert.Len(t, store.reservations, 1)
	})

	t.Run("allows back-to-back stays", func(t *testing.T) {
		store := newFakeStore()
		roomID, _ := seedRoom(store)
		userID := seedUser(store)
		uc := newReservationUC(store)

		_, err := uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID: roomID, UserID: userID,
			CheckInDate: "2026-09-01", CheckOutDate: "2026-09-03", TotalAmount: 240,
		})
		require.NoError(t, err)

		// Checkout day equals the next check-in day; no night is shared
		_, err = uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID: roomID, UserID: userID,
			CheckInDate: "2026-09-03", CheckOutDate: "2026-09-05", TotalAmount: 240,
		})
		assert.NoError(t, err)
	})

	t.Run("same dates on another room do not conflict", func(t *testing.T) {
		store := newFakeStore()
		roomID, hotelID := seedRoom(store)
		otherRoom := uuid.New()
		now := time.Now().UTC()
		store.rooms[otherRoom] = &readmodel.RoomRM{
			ID: otherRoom, HotelID: hotelID, Number: 102, Type: "double", Capacity: 2, Price: 120,
			CreatedAt: now, UpdatedAt: now,
		}
		userID := seedUser(store)
		uc := newReservationUC(store)

		_, err := uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID: roomID, UserID: userID,
			CheckInDate: "2026-09-01", CheckOutDate: "2026-09-05", TotalAmount: 480,
		})
		require.NoError(t, err)

		_, err = uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID: otherRoom, UserID: userID,
			CheckInDate: "2026-09-01", CheckOutDate: "2026-09-05", TotalAmount: 480,
		})
		assert.NoError(t, err)
	})

	t.Run("validation failures", func(t *testing.T) {
		store := newFakeStore()
		roomID, _ := seedRoom(store)
		userID := seedUser(store)
		uc := newReservationUC(store)

		cases := []struct {
			name   string
			params usecase.CreateReservationParams
		}{
			{
				name: "check-out before check-in",
				params: usecase.CreateReservationParams{
					RoomID: roomID, UserID: userID,
					CheckInDate: "2026-09-05", CheckOutDate: "2026-09-01", TotalAmount: 100,
				},
			},
			{
				name: "zero-night stay",
				params: usecase.CreateReservationParams{
					RoomID: roomID, UserID: userID,
					CheckInDate: "2026-09-01", CheckOutDate: "2026-09-01", TotalAmount: 100,
				},
			},
			{
				name: "bad date format",
				params: usecase.CreateReservationParams{
					RoomID: roomID, UserID: userID,
					CheckInDate: "01.09.2026", CheckOutDate: "2026-09-05", TotalAmount: 100,
				},
			},
			{
				name: "non-positive amount",
				params: usecase.CreateReservationParams{
					RoomID: roomID, UserID: userID,
					CheckInDate: "2026-09-01", CheckOutDate: "2026-09-05", TotalAmount: 0,
				},
			},
			{
				name: "check-in in the past",
				params: usecase.CreateReservationParams{
					RoomID: roomID, UserID: userID,
					CheckInDate: "2026-01-10", CheckOutDate: "2026-01-20", TotalAmount: 100,
				},
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.CreateReservation(ctx, tc.params)
				assert.ErrorIs(t, err, usecase.ErrValidation)
			})
		}
		assert.Empty(t, store.reservations)
	})

	t.Run("unknown room", func(t *testing.T) {
		store := newFakeStore()
		seedRoom(store)
		userID := seedUser(store)
		uc := newReservationUC(store)

		_, err := uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID: uuid.New(), UserID: userID,
			CheckInDate: "2026-09-01", CheckOutDate: "2026-09-05", TotalAmount: 480,
		})
		assert.ErrorIs(t, err, usecase.ErrRoomNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		store := newFakeStore()
		roomID, _ := seedRoom(store)
		uc := newReservationUC(store)

		_, err := uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID: roomID, UserID: uuid.New(),
			CheckInDate: "2026-09-01", CheckOutDate: "2026-09-05", TotalAmount: 480,
		})
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("exactly one of two concurrent creates wins", func(t *testing.T) {
		store := newFakeStore()
		roomID, _ := seedRoom(store)
		userID := seedUser(store)
		uc := newReservationUC(store)

		params := usecase.CreateReservationParams{
			RoomID: roomID, UserID: userID,
			CheckInDate: "2026-09-01", CheckOutDate: "2026-09-05", TotalAmount: 480,
		}

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = uc.CreateReservation(ctx, params)
			}(i)
		}
		wg.Wait()

		var conflicts, successes int
		for _, err := range errs {
			switch {
			case err == nil:
				successes++
			default:
				require.ErrorIs(t, err, usecase.ErrReservationConflict)
				conflicts++
			}
		}
		assert.Equal(t, 1, successes)
		assert.Equal(t, 1, conflicts)
		assert.Len(t, store.reservations, 1)
	})
}

func TestUpdateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the stay when the new dates are free", func(t *testing.T) {
		store := newFakeStore()
		roomID, _ := seedRoom(store)
		userID := seedUser(store)
		uc := newReservationUC(store)

		created, err := uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID: roomID, UserID: userID,
			CheckInDate: "2026-09-01", CheckOutDate: "2026-09-05", TotalAmount: 480,
		})
		require.NoError(t, err)

		newIn := "2026-09-10"
		newOut := "2026-09-12"
		updated, err := uc.UpdateReservation(ctx, created.ID, usecase.UpdateReservationParams{
			CheckInDate:  &newIn,
			CheckOutDate: &newOut,
		})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), updated.CheckInDate)
		assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), updated.CheckOutDate)
		// Untouched field carries over
		assert.Equal(t, 480.0, updated.TotalAmount)
	})

	t.Run("extending over its own dates is not a conflict", func(t *testing.T) {
		store := newFakeStore()
		roomID, _ := seedRoom(store)
		userID := seedUser(store)
		uc := newReservationUC(store)

		created, err := uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID: roomID, UserID: userID,
			CheckInDate: "2026-09-01", CheckOutDate: "2026-09-05", TotalAmount: 480,
		})
		require.NoError(t, err)

		newOut := "2026-09-07"
		_, err = uc.UpdateReservation(ctx, created.ID, usecase.UpdateReservationParams{
			CheckOutDate: &newOut,
		})
		assert.NoError(t, err)
	})

	t.Run("conflicts with another reservation on the room", func(t *testing.T) {
		store := newFakeStore()
		roomID, _ := seedRoom(store)
		userID := seedUser(store)
		uc := newReservationUC(store)

		first, err := uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID: roomID, UserID: userID,
			CheckInDate: "2026-09-01", CheckOutDate: "2026-09-03", TotalAmount: 240,
		})
		require.NoError(t, err)

		_, err = uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID: roomID, UserID: userID,
			CheckInDate: "2026-09-10", CheckOutDate: "2026-09-12", TotalAmount: 240,
		})
		require.NoError(t, err)

		newIn := "2026-09-11"
		newOut := "2026-09-13"
		_, err = uc.UpdateReservation(ctx, first.ID, usecase.UpdateReservationParams{
			CheckInDate:  &newIn,
			CheckOutDate: &newOut,
		})
		assert.ErrorIs(t, err, usecase.ErrReservationConflict)

		// Original dates survive the rollback
		current, err := uc.GetReservation(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), current.CheckInDate)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		store := newFakeStore()
		seedRoom(store)
		uc := newReservationUC(store)

		amount := 100.0
		_, err := uc.UpdateReservation(ctx, uuid.New(), usecase.UpdateReservationParams{TotalAmount: &amount})
		assert.ErrorIs(t, err, usecase.ErrReservationNotFound)
	})
}

func TestDeleteReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("frees the dates for rebooking", func(t *testing.T) {
		store := newFakeStore()
		roomID, _ := seedRoom(store)
		userID := seedUser(store)
		uc := newReservationUC(store)

		created, err := uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID: roomID, UserID: userID,
			CheckInDate: "2026-09-01", CheckOutDate: "2026-09-05", TotalAmount: 480,
		})
		require.NoError(t, err)

		require.NoError(t, uc.DeleteReservation(ctx, created.ID))

		_, err = uc.CreateReservation(ctx, usecase.CreateReservationParams{
			RoomID: roomID, UserID: userID,
			CheckInDate: "2026-09-02", CheckOutDate: "2026-09-04", TotalAmount: 240,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		store := newFakeStore()
		uc := newReservationUC(store)

		err := uc.DeleteReservation(ctx, uuid.New())
		assert.ErrorIs(t, err, usecase.ErrReservationNotFound)
	})
}

func TestListReservations(t *testing.T) {
	ctx := context.Background()

	seedMany := func(store *fakeStore, uc usecase.ReservationUseCase, roomIDs []uuid.UUID, userID uuid.UUID) {
		t.Helper()
		days := []struct {
			in, out string
			amount  float64
		}{
			{"2026-09-01", "2026-09-03", 200},
			{"2026-09-05", "2026-09-07", 300},
			{"2026-09-10", "2026-09-12", 400},
			{"2026-09-15", "2026-09-17", 500},
		}
		for i, d := range days {
			_, err := uc.CreateReservation(ctx, usecase.CreateReservationParams{
				RoomID: roomIDs[i%len(roomIDs)], UserID: userID,
				CheckInDate: d.in, CheckOutDate: d.out, TotalAmount: d.amount,
			})
			require.NoError(t, err)
		}
	}

	setup := func() (*fakeStore, usecase.ReservationUseCase) {
		store := newFakeStore()
		roomID, hotelID := seedRoom(store)
		second := uuid.New()
		now := time.Now().UTC()
		store.rooms[second] = &readmodel.RoomRM{
			ID: second, HotelID: hotelID, Number: 102, Type: "single", Capacity: 1, Price: 80,
			CreatedAt: now, UpdatedAt: now,
		}
		userID := seedUser(store)
		uc := newReservationUC(store)
		seedMany(store, uc, []uuid.UUID{roomID, second}, userID)
		return store, uc
	}

	t.Run("date window filter", func(t *testing.T) {
		_, uc := setup()

		from := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)
		list, err := uc.ListReservations(ctx, shared.ReservationFilter{
			CheckInFrom: &from,
			CheckInTo:   &to,
		})
		require.NoError(t, err)
		require.Len(t, list, 2)
		for _, rm := range list {
			assert.False(t, rm.CheckInDate.Before(from))
			assert.False(t, rm.CheckInDate.After(to))
		}
	})

	t.Run("amount filter", func(t *testing.T) {
		_, uc := setup()

		min := 300.0
		max := 400.0
		list, err := uc.ListReservations(ctx, shared.ReservationFilter{
			MinAmount: &min,
			MaxAmount: &max,
		})
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run("pages are disjoint and ordered", func(t *testing.T) {
		_, uc := setup()

		first, err := uc.ListReservations(ctx, shared.ReservationFilter{
			Page: shared.Page{Offset: 0, Limit: 2},
		})
		require.NoError(t, err)
		second, err := uc.ListReservations(ctx, shared.ReservationFilter{
			Page: shared.Page{Offset: 2, Limit: 2},
		})
		require.NoError(t, err)

		require.Len(t, first, 2)
		require.Len(t, second, 2)

		seen := map[uuid.UUID]bool{}
		for _, rm := range append(first, second...) {
			assert.False(t, seen[rm.ID])
			seen[rm.ID] = true
		}
		assert.True(t, first[1].CheckInDate.After(first[0].CheckInDate))
		assert.True(t, second[0].CheckInDate.After(first[1].CheckInDate))
	})
}
