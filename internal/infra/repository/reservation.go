package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/usecase/readmodel"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationColumns = "id, room_id, user_id, check_in, check_out, total_amount, created_at, updated_at"

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*readmodel.ReservationRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO reservations (id, room_id, user_id, check_in, check_out, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+reservationColumns,
		res.ID(), res.RoomID(), res.UserID(),
		res.Stay().CheckIn(), res.Stay().CheckOut(), res.Amount().Value(),
	)

	rm, err := scanReservation(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return rm, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)

	rm, err := scanReservation(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by id", err)
	}
	return rm, nil
}

// CountOverlapping counts persisted reservations for the room whose
// [check_in, check_out) range intersects the given one. Called under the
// room row lock so the count stays valid until commit.
func (r *ReservationRepository) CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM reservations
		WHERE room_id = $1
		  AND check_in < $3
		  AND check_out > $2
		  AND ($4::uuid IS NULL OR id <> $4)`,
		roomID, checkIn, checkOut, excludeID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping reservations", err)
	}
	return count, nil
}

func (r *ReservationRepository) Update(ctx context.Context, rm *readmodel.ReservationRM) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET room_id = $2, user_id = $3, check_in = $4, check_out = $5, total_amount = $6, updated_at = now()
		WHERE id = $1`,
		rm.ID, rm.RoomID, rm.UserID, rm.CheckInDate, rm.CheckOutDate, rm.TotalAmount,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// List applies only the filter fields the caller supplied.
func (r *ReservationRepository) List(ctx context.Context, filter shared.ReservationFilter) ([]*readmodel.ReservationRM, error) {
	var (
		where strings.Builder
		args  []any
	)

	addCond := func(cond string, value any) {
		args = append(args, value)
		if where.Len() == 0 {
			where.WriteString("WHERE ")
		} else {
			where.WriteString(" AND ")
		}
		where.WriteString(fmt.Sprintf(cond, len(args)))
	}

	if filter.CheckInFrom != nil {
		addCond("check_in >= $%d", *filter.CheckInFrom)
	}
	if filter.CheckInTo != nil {
		addCond("check_in <= $%d", *filter.CheckInTo)
	}
	if filter.MinAmount != nil {
		addCond("total_amount >= $%d", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		addCond("total_amount <= $%d", *filter.MaxAmount)
	}

	page := filter.Page.Normalize()
	args = append(args, page.Offset, page.Limit)

	query := fmt.Sprintf(`
		SELECT %s
		FROM reservations
		%s
		ORDER BY check_in, id
		OFFSET $%d LIMIT $%d`,
		reservationColumns, where.String(), len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*readmodel.ReservationRM
	for rows.Next() {
		rm, scanErr := scanReservation(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return result, nil
}

func scanReservation(row pgx.Row) (*readmodel.ReservationRM, error) {
	var rm readmodel.ReservationRM
	err := row.Scan(&rm.ID, &rm.RoomID, &rm.UserID, &rm.CheckInDate, &rm.CheckOutDate, &rm.TotalAmount, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
