package usecase

import (
	"context"

	"stayhub/internal/domain/hotel"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/patch"
	"stayhub/internal/usecase/readmodel"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFound  = errs.New("hotel not found")
	ErrHotelDuplicate = errs.New("hotel with the same name already exists")
	ErrHotelInUse     = errs.New("hotel still has rooms and cannot be deleted")
)

type HotelReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.HotelRM, error)
	List(ctx context.Context, page shared.Page) ([]*readmodel.HotelRM, error)
}

type CreateHotelParams struct {
	Name    string
	Address *string
	City    *string
	State   *string
}

type UpdateHotelParams struct {
	Name    *string
	Address *string
	City    *string
	State   *string
}

type HotelUseCase interface {
	CreateHotel(ctx context.Context, params CreateHotelParams) (*readmodel.HotelRM, error)
	GetHotel(ctx context.Context, id uuid.UUID) (*readmodel.HotelRM, error)
	ListHotels(ctx context.Context, page shared.Page) ([]*readmodel.HotelRM, error)
	UpdateHotel(ctx context.Context, id uuid.UUID, params UpdateHotelParams) (*readmodel.HotelRM, error)
	DeleteHotel(ctx context.Context, id uuid.UUID) error
}

type hotelUseCaseImpl struct {
	uow   shared.UnitOfWork
	reads HotelReads
}

func NewHotelUseCase(uow shared.UnitOfWork, reads HotelReads) HotelUseCase {
	return &hotelUseCaseImpl{uow: uow, reads: reads}
}

func (h *hotelUseCaseImpl) CreateHotel(ctx context.Context, params CreateHotelParams) (*readmodel.HotelRM, error) {
	entity, err := hotel.NewHotel(params.Name, params.Address, params.City, params.State)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var created *readmodel.HotelRM
	err = h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err = tx.Hotels().Create(ctx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrHotelDuplicate)
			}
			return errs.Wrap(err, "failed to create hotel")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (h *hotelUseCaseImpl) GetHotel(ctx context.Context, id uuid.UUID) (*readmodel.HotelRM, error) {
	rm, err := h.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrHotelNotFound)
		}
		return nil, errs.Wrap(err, "failed to get hotel")
	}
	return rm, nil
}

func (h *hotelUseCaseImpl) ListHotels(ctx context.Context, page shared.Page) ([]*readmodel.HotelRM, error) {
	list, err := h.reads.List(ctx, page)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list hotels")
	}
	return list, nil
}

func (h *hotelUseCaseImpl) UpdateHotel(ctx context.Context, id uuid.UUID, params UpdateHotelParams) (*readmodel.HotelRM, error) {
	var updated *readmodel.HotelRM
	err := h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Hotels().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrHotelNotFound)
			}
			return errs.Wrap(err, "failed to load hotel")
		}

		name := patch.Coalesce(params.Name, current.Name)
		address := current.Address
		if params.Address != nil {
			address = params.Address
		}
		city := current.City
		if params.City != nil {
			city = params.City
		}
		state := current.State
		if params.State != nil {
			state = params.State
		}

		entity, err := hotel.NewHotel(name, address, city, state)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}

		current.Name = entity.Name()
		current.Address = entity.Address()
		current.City = entity.City()
		current.State = entity.State()

		if err := tx.Hotels().Update(ctx, current); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrHotelDuplicate)
			}
			return errs.Wrap(err, "failed to update hotel")
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (h *hotelUseCaseImpl) DeleteHotel(ctx context.Context, id uuid.UUID) error {
	return h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Hotels().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrHotelNotFound)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrHotelInUse)
			}
			return errs.Wrap(err, "failed to delete hotel")
		}
		return nil
	})
}
