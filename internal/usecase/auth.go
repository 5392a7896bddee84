package usecase

import (
	"context"
	"log/slog"

	"stayhub/internal/domain/user"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/pkg/password"
	"stayhub/internal/usecase/readmodel"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

// AuthReads is the only consumer of stored password hashes.
type AuthReads interface {
	FindByUsername(ctx context.Context, username string) (*readmodel.UserRM, string, error)
}

type LoginResult struct {
	User  *readmodel.UserRM
	Token string
}

type AuthUseCase interface {
	Login(ctx context.Context, username, plainPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	reads      AuthReads
	jwtService *jwt.Service
}

func NewAuthUseCase(reads AuthReads, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		reads:      reads,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, username, plainPassword string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(username, plainPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	rm, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(rm.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(rm.ID, rm.Username, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{User: rm, Token: token}, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*readmodel.UserRM, error) {
	rm, hashedPassword, err := a.reads.FindByUsername(ctx, credentials.Username().String())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		slog.Info("login failed: unknown username", "username", credentials.Username().String())
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password()); err != nil {
		slog.Info("login failed: wrong password", "username", credentials.Username().String())
		return nil, ErrInvalidCredentials
	}

	return rm, nil
}
