package usecase

import (
	"context"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/password"
	"stayhub/internal/usecase/readmodel"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserDuplicate = errs.New("username already taken")
	ErrUserInUse     = errs.New("user still has reservations and cannot be deleted")
)

type UserReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error)
	List(ctx context.Context, page shared.Page) ([]*readmodel.UserRM, error)
}

type CreateUserParams struct {
	Username string
	Password string
	Role     string
	FullName string
	Tags     []string
}

type UpdateUserParams struct {
	Username *string
	Password *string
	Role     *string
	FullName *string
	Tags     []string
}

type UserUseCase interface {
	CreateUser(ctx context.Context, params CreateUserParams) (*readmodel.UserRM, error)
	GetUser(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error)
	ListUsers(ctx context.Context, page shared.Page) ([]*readmodel.UserRM, error)
	UpdateUser(ctx context.Context, id uuid.UUID, params UpdateUserParams) (*readmodel.UserRM, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userUseCaseImpl struct {
	uow   shared.UnitOfWork
	reads UserReads
}

func NewUserUseCase(uow shared.UnitOfWork, reads UserReads) UserUseCase {
	return &userUseCaseImpl{uow: uow, reads: reads}
}

func (u *userUseCaseImpl) CreateUser(ctx context.Context, params CreateUserParams) (*readmodel.UserRM, error) {
	username, err := user.NewUsername(params.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if params.Password == "" {
		return nil, errs.Mark(user.ErrEmptyPassword, ErrValidation)
	}
	role, err := user.NewRole(params.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity, err := user.NewUser(username, hash, role, params.FullName, params.Tags)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var created *readmodel.UserRM
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err = tx.Users().Create(ctx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrUserDuplicate)
			}
			return errs.Wrap(err, "failed to create user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (u *userUseCaseImpl) GetUser(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error) {
	rm, err := u.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Wrap(err, "failed to get user")
	}
	return rm, nil
}

func (u *userUseCaseImpl) ListUsers(ctx context.Context, page shared.Page) ([]*readmodel.UserRM, error) {
	list, err := u.reads.List(ctx, page)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list users")
	}
	return list, nil
}

func (u *userUseCaseImpl) UpdateUser(ctx context.Context, id uuid.UUID, params UpdateUserParams) (*readmodel.UserRM, error) {
	var updated *readmodel.UserRM
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUserNotFound)
			}
			return errs.Wrap(err, "failed to load user")
		}

		if params.Username != nil {
			username, err := user.NewUsername(*params.Username)
			if err != nil {
				return errs.Mark(err, ErrValidation)
			}
			current.Username = username.String()
		}
		if params.Role != nil {
			role, err := user.NewRole(*params.Role)
			if err != nil {
				return errs.Mark(err, ErrValidation)
			}
			current.Role = role.String()
		}
		if params.FullName != nil {
			current.FullName = *params.FullName
		}
		if params.Tags != nil {
			current.Tags = params.Tags
		}

		var newHash *string
		if params.Password != nil {
			if *params.Password == "" {
				return errs.Mark(user.ErrEmptyPassword, ErrValidation)
			}
			hash, err := password.HashPassword(*params.Password)
			if err != nil {
				return errs.Wrap(err, "failed to hash password")
			}
			newHash = &hash
		}

		if err := tx.Users().Update(ctx, current, newHash); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrUserDuplicate)
			}
			return errs.Wrap(err, "failed to update user")
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *userUseCaseImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUserNotFound)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrUserInUse)
			}
			return errs.Wrap(err, "failed to delete user")
		}
		return nil
	})
}
