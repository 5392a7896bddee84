package repository

import (
	"context"

	"stayhub/internal/domain/room"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/usecase/readmodel"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const roomColumns = "id, hotel_id, number, type, capacity, price, amenities, created_at, updated_at"

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) (*readmodel.RoomRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO rooms (id, hotel_id, number, type, capacity, price, amenities)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+roomColumns,
		rm.ID(), rm.HotelID(), rm.Number(), rm.Type(), rm.Capacity(), rm.Price(), rm.Amenities(),
	)

	result, err := scanRoom(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create room", err)
	}
	return result, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)

	result, err := scanRoom(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room by id", err)
	}
	return result, nil
}

// LockByID acquires FOR UPDATE on the room row. Concurrent bookings for the
// same room queue here until the holding transaction commits or rolls back.
func (r *RoomRepository) LockByID(ctx context.Context, id uuid.UUID) error {
	var locked uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		return infra.WrapRepoErr("failed to lock room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *readmodel.RoomRM) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE rooms
		SET number = $2, type = $3, capacity = $4, price = $5, amenities = $6, updated_at = now()
		WHERE id = $1`,
		rm.ID, rm.Number, rm.Type, rm.Capacity, rm.Price, rm.Amenities,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) List(ctx context.Context, page shared.Page) ([]*readmodel.RoomRM, error) {
	page = page.Normalize()
	rows, err := r.db.Query(ctx, `
		SELECT `+roomColumns+`
		FROM rooms
		ORDER BY created_at, id
		OFFSET $1 LIMIT $2`,
		page.Offset, page.Limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*readmodel.RoomRM
	for rows.Next() {
		rm, scanErr := scanRoom(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}

	return result, nil
}

func scanRoom(row pgx.Row) (*readmodel.RoomRM, error) {
	var rm readmodel.RoomRM
	err := row.Scan(&rm.ID, &rm.HotelID, &rm.Number, &rm.Type, &rm.Capacity, &rm.Price, &rm.Amenities, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
