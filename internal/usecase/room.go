package usecase

import (
	"context"

	"stayhub/internal/domain/room"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/patch"
	"stayhub/internal/usecase/readmodel"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomDuplicate = errs.New("room number already exists in this hotel")
	ErrRoomInUse     = errs.New("room still has reservations and cannot be deleted")
)

type RoomReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error)
	List(ctx context.Context, page shared.Page) ([]*readmodel.RoomRM, error)
}

type CreateRoomParams struct {
	HotelID   uuid.UUID
	Number    int32
	Type      string
	Capacity  int32
	Price     float64
	Amenities *string
}

type UpdateRoomParams struct {
	Number    *int32
	Type      *string
	Capacity  *int32
	Price     *float64
	Amenities *string
}

type RoomUseCase interface {
	CreateRoom(ctx context.Context, params CreateRoomParams) (*readmodel.RoomRM, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error)
	ListRooms(ctx context.Context, page shared.Page) ([]*readmodel.RoomRM, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, params UpdateRoomParams) (*readmodel.RoomRM, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type roomUseCaseImpl struct {
	uow   shared.UnitOfWork
	reads RoomReads
}

func NewRoomUseCase(uow shared.UnitOfWork, reads RoomReads) RoomUseCase {
	return &roomUseCaseImpl{uow: uow, reads: reads}
}

func (r *roomUseCaseImpl) CreateRoom(ctx context.Context, params CreateRoomParams) (*readmodel.RoomRM, error) {
	entity, err := room.NewRoom(params.HotelID, params.Number, params.Type, params.Capacity, params.Price, params.Amenities)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var created *readmodel.RoomRM
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Hotels().FindByID(ctx, params.HotelID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrHotelNotFound)
			}
			return errs.Wrap(err, "failed to load hotel")
		}

		created, err = tx.Rooms().Create(ctx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrRoomDuplicate)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrHotelNotFound)
			}
			return errs.Wrap(err, "failed to create room")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *roomUseCaseImpl) GetRoom(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error) {
	rm, err := r.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Wrap(err, "failed to get room")
	}
	return rm, nil
}

func (r *roomUseCaseImpl) ListRooms(ctx context.Context, page shared.Page) ([]*readmodel.RoomRM, error) {
	list, err := r.reads.List(ctx, page)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}
	return list, nil
}

func (r *roomUseCaseImpl) UpdateRoom(ctx context.Context, id uuid.UUID, params UpdateRoomParams) (*readmodel.RoomRM, error) {
	var updated *readmodel.RoomRM
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Rooms().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomNotFound)
			}
			return errs.Wrap(err, "failed to load room")
		}

		amenities := current.Amenities
		if params.Amenities != nil {
			amenities = params.Amenities
		}

		entity, err := room.NewRoom(
			current.HotelID,
			patch.Coalesce(params.Number, current.Number),
			patch.Coalesce(params.Type, current.Type),
			patch.Coalesce(params.Capacity, current.Capacity),
			patch.Coalesce(params.Price, current.Price),
			amenities,
		)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}

		current.Number = entity.Number()
		current.Type = entity.Type()
		current.Capacity = entity.Capacity()
		current.Price = entity.Price()
		current.Amenities = entity.Amenities()

		if err := tx.Rooms().Update(ctx, current); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrRoomDuplicate)
			}
			return errs.Wrap(err, "failed to update room")
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *roomUseCaseImpl) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomNotFound)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrRoomInUse)
			}
			return errs.Wrap(err, "failed to delete room")
		}
		return nil
	})
}
