package repository

import (
	"context"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/usecase/readmodel"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = "id, username, role, full_name, tags, created_at, updated_at"

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*readmodel.UserRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (id, username, password_hash, role, full_name, tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		u.ID(), u.Username().String(), u.PasswordHash(), u.Role().String(), u.FullName(), u.Tags(),
	)

	rm, err := scanUser(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	return rm, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	rm, err := scanUser(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return rm, nil
}

// FindByUsername also returns the stored password hash for credential checks.
// The hash never leaves the auth usecase.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*readmodel.UserRM, string, error) {
	var (
		rm   readmodel.UserRM
		hash string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password_hash, role, full_name, tags, created_at, updated_at
		FROM users
		WHERE username = $1`, username,
	).Scan(&rm.ID, &rm.Username, &hash, &rm.Role, &rm.FullName, &rm.Tags, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}
	return &rm, hash, nil
}

func (r *UserRepository) Update(ctx context.Context, rm *readmodel.UserRM, passwordHash *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET username = $2,
		    role = $3,
		    full_name = $4,
		    tags = $5,
		    password_hash = COALESCE($6, password_hash),
		    updated_at = now()
		WHERE id = $1`,
		rm.ID, rm.Username, rm.Role, rm.FullName, rm.Tags, passwordHash,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, page shared.Page) ([]*readmodel.UserRM, error) {
	page = page.Normalize()
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at, id
		OFFSET $1 LIMIT $2`, page.Offset, page.Limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []*readmodel.UserRM
	for rows.Next() {
		rm, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}

	return result, nil
}

func scanUser(row pgx.Row) (*readmodel.UserRM, error) {
	var rm readmodel.UserRM
	err := row.Scan(&rm.ID, &rm.Username, &rm.Role, &rm.FullName, &rm.Tags, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
