package ports

import (
	"context"

	"mychecklist/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, email, passwordHash, nickname string) (uint64, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, userID uint64) (domain.User, error)
}

type AuthService interface {
	Signup(ctx context.Context, email, password, nickname string) error
	Login(ctx context.Context, email, password string) (string, error)
}
