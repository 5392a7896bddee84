package repository

import (
	"context"

	"stayhub/internal/domain/hotel"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/usecase/readmodel"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const hotelColumns = "id, name, address, city, state, created_at, updated_at"

type HotelRepository struct {
	db db.DBTX
}

func NewHotelRepository(dbtx db.DBTX) *HotelRepository {
	return &HotelRepository{db: dbtx}
}

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) (*readmodel.HotelRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO hotels (id, name, address, city, state)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+hotelColumns,
		h.ID(), h.Name(), h.Address(), h.City(), h.State(),
	)

	rm, err := scanHotel(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create hotel", err)
	}
	return rm, nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.HotelRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE id = $1`, id)

	rm, err := scanHotel(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find hotel by id", err)
	}
	return rm, nil
}

func (r *HotelRepository) Update(ctx context.Context, rm *readmodel.HotelRM) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE hotels
		SET name = $2, address = $3, city = $4, state = $5, updated_at = now()
		WHERE id = $1`,
		rm.ID, rm.Name, rm.Address, rm.City, rm.State,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HotelRepository) List(ctx context.Context, page shared.Page) ([]*readmodel.HotelRM, error) {
	page = page.Normalize()
	rows, err := r.db.Query(ctx, `
		SELECT `+hotelColumns+`
		FROM hotels
		ORDER BY created_at, id
		OFFSET $1 LIMIT $2`,
		page.Offset, page.Limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	var result []*readmodel.HotelRM
	for rows.Next() {
		rm, scanErr := scanHotel(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read hotel rows", err)
	}

	return result, nil
}

func scanHotel(row pgx.Row) (*readmodel.HotelRM, error) {
	var rm readmodel.HotelRM
	err := row.Scan(&rm.ID, &rm.Name, &rm.Address, &rm.City, &rm.State, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
