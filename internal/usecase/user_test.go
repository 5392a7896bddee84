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

func TestUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("registration stores a hash, never the password", func(t *testing.T) {
		store := newFakeStore()
		uc := usecase.NewUserUseCase(store, nil)

		created, err := uc.CreateUser(ctx, usecase.CreateUserParams{
			Username: "bob",
			Password: "plain-pw",
			Role:     "user",
			FullName: "Bob Guest",
			Tags:     []string{"vip"},
		})
		require.NoError(t, err)
		assert.Equal(t, "bob", created.Username)
		assert.Equal(t, []string{"vip"}, created.Tags)

		hash := store.passwords[created.ID]
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "plain-pw", hash)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		store := newFakeStore()
		uc := usecase.NewUserUseCase(store, nil)

		_, err := uc.CreateUser(ctx, usecase.CreateUserParams{
			Username: "bob", Password: "pw1", Role: "user", FullName: "Bob",
		})
		require.NoError(t, err)

		_, err = uc.CreateUser(ctx, usecase.CreateUserParams{
			Username: "bob", Password: "pw2", Role: "admin", FullName: "Other Bob",
		})
		assert.ErrorIs(t, err, usecase.ErrUserDuplicate)
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		store := newFakeStore()
		uc := usecase.NewUserUseCase(store, nil)

		_, err := uc.CreateUser(ctx, usecase.CreateUserParams{
			Username: "bob", Password: "pw", Role: "superuser", FullName: "Bob",
		})
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})

	t.Run("password change rehashes", func(t *testing.T) {
		store := newFakeStore()
		uc := usecase.NewUserUseCase(store, nil)

		created, err := uc.CreateUser(ctx, usecase.CreateUserParams{
			Username: "bob", Password: "old-pw", Role: "user", FullName: "Bob",
		})
		require.NoError(t, err)
		oldHash := store.passwords[created.ID]

		newPw := "new-pw"
		_, err = uc.UpdateUser(ctx, created.ID, usecase.UpdateUserParams{Password: &newPw})
		require.NoError(t, err)
		assert.NotEqual(t, oldHash, store.passwords[created.ID])
	})

	t.Run("delete blocked while reservations exist", func(t *testing.T) {
		store := newFakeStore()
		uc := usecase.NewUserUseCase(store, nil)

		created, err := uc.CreateUser(ctx, usecase.CreateUserParams{
			Username: "bob", Password: "pw", Role: "user", FullName: "Bob",
		})
		require.NoError(t, err)

		now := time.Now().UTC()
		resID := uuid.New()
		store.reservations[resID] = &readmodel.ReservationRM{
			ID: resID, RoomID: uuid.New(), UserID: created.ID,
			CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
			TotalAmount:  200, CreatedAt: now, UpdatedAt: now,
		}

		err = uc.DeleteUser(ctx, created.ID)
		assert.ErrorIs(t, err, usecase.ErrUserInUse)
	})
}
