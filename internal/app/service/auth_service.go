package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"mychecklist/internal/core/domain"
	"mychecklist/internal/core/ports"
	"mychecklist/pkg/jwtauth"
)

type AuthService struct {
	userRepository ports.UserRepository
	tokens         *jwtauth.Provider
}

func NewAuthService(userRepository ports.UserRepository, tokens *jwtauth.Provider) *AuthService {
	return &AuthService{userRepository: userRepository, tokens: tokens}
}

var _ ports.AuthService = (*AuthService)(nil)

func (s *AuthService) Signup(ctx context.Context, email, password, nickname string) error {
	_, err := s.userRepository.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.ErrDuplicateEmail
	case !errors.Is(err, domain.ErrUserNotFound):
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.userRepository.Create(ctx, email, string(hash), nickname)
	return err
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.CreateToken(user.ID)
}
