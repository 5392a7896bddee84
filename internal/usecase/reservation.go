package usecase

import (
	"context"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/patch"
	"stayhub/internal/usecase/readmodel"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationConflict = errs.New("room already reserved for the requested dates")
	ErrRoomNotFound        = errs.New("room not found")
	ErrUserNotFound        = errs.New("user not found")
	ErrReservationInUse    = errs.New("reservation is referenced and cannot be deleted")
)

type ReservationReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	List(ctx context.Context, filter shared.ReservationFilter) ([]*readmodel.ReservationRM, error)
}

type CreateReservationParams struct {
	RoomID       uuid.UUID
	UserID       uuid.UUID
	CheckInDate  string
	CheckOutDate string
	TotalAmount  float64
}

type UpdateReservationParams struct {
	CheckInDate  *string
	CheckOutDate *string
	TotalAmount  *float64
}

type ReservationUseCase interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*readmodel.ReservationRM, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	ListReservations(ctx context.Context, filter shared.ReservationFilter) ([]*readmodel.ReservationRM, error)
	UpdateReservation(ctx context.Context, id uuid.UUID, params UpdateReservationParams) (*readmodel.ReservationRM, error)
	DeleteReservation(ctx context.Context, id uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow   shared.UnitOfWork
	reads ReservationReads
	clock clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, reads ReservationReads, clock clock.Clock) ReservationUseCase {
	return &reservationUseCaseImpl{
		uow:   uow,
		reads: reads,
		clock: clock,
	}
}

func (r *reservationUseCaseImpl) CreateReservation(ctx context.Context, params CreateReservationParams) (*readmodel.ReservationRM, error) {
	stay, err := reservation.ParseStayPeriod(params.CheckInDate, params.CheckOutDate)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	amount, err := reservation.NewAmount(params.TotalAmount)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	today := reservation.DayOf(r.clock.Now())
	if stay.CheckIn().Before(today) {
		return nil, errs.Mark(errs.New("check-in date is in the past"), ErrValidation)
	}
	res, err := reservation.NewReservation(params.RoomID, params.UserID, stay, amount)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var created *readmodel.ReservationRM
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The room row lock serializes competing bookings for the same room.
		if err := tx.Rooms().LockByID(ctx, params.RoomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomNotFound)
			}
			return errs.Wrap(err, "failed to lock room")
		}

		if _, err := tx.Users().FindByID(ctx, params.UserID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUserNotFound)
			}
			return errs.Wrap(err, "failed to load user")
		}

		count, err := tx.Reservations().CountOverlapping(ctx, params.RoomID, stay.CheckIn(), stay.CheckOut(), nil)
		if err != nil {
			return errs.Wrap(err, "failed to check for overlapping reservations")
		}
		if count > 0 {
			return ErrReservationConflict
		}

		created, err = tx.Reservations().Create(ctx, res)
		if err != nil {
			// The exclusion constraint is the backstop for the overlap check.
			if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrReservationConflict)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrRoomNotFound)
			}
			return errs.Wrap(err, "failed to create reservation")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *reservationUseCaseImpl) GetReservation(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	rm, err := r.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, errs.Wrap(err, "failed to get reservation")
	}
	return rm, nil
}

func (r *reservationUseCaseImpl) ListReservations(ctx context.Context, filter shared.ReservationFilter) ([]*readmodel.ReservationRM, error) {
	list, err := r.reads.List(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	return list, nil
}

func (r *reservationUseCaseImpl) UpdateReservation(ctx context.Context, id uuid.UUID, params UpdateReservationParams) (*readmodel.ReservationRM, error) {
	var updated *readmodel.ReservationRM
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return errs.Wrap(err, "failed to load reservation")
		}

		checkIn := patch.Coalesce(params.CheckInDate, current.CheckInDate.Format(reservation.DateLayout))
		checkOut := patch.Coalesce(params.CheckOutDate, current.CheckOutDate.Format(reservation.DateLayout))
		stay, err := reservation.ParseStayPeriod(checkIn, checkOut)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}
		amount, err := reservation.NewAmount(patch.Coalesce(params.TotalAmount, current.TotalAmount))
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}

		if err := tx.Rooms().LockByID(ctx, current.RoomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomNotFound)
			}
			return errs.Wrap(err, "failed to lock room")
		}

		count, err := tx.Reservations().CountOverlapping(ctx, current.RoomID, stay.CheckIn(), stay.CheckOut(), &id)
		if err != nil {
			return errs.Wrap(err, "failed to check for overlapping reservations")
		}
		if count > 0 {
			return ErrReservationConflict
		}

		current.CheckInDate = stay.CheckIn()
		current.CheckOutDate = stay.CheckOut()
		current.TotalAmount = amount.Value()

		if err := tx.Reservations().Update(ctx, current); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrReservationConflict)
			}
			return errs.Wrap(err, "failed to update reservation")
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *reservationUseCaseImpl) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrReservationInUse)
			}
			return errs.Wrap(err, "failed to delete reservation")
		}
		return nil
	})
}
