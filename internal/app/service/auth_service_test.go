package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mychecklist/internal/core/domain"
	"mychecklist/pkg/jwtauth"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Create(ctx context.Context, email, passwordHash, nickname string) (uint64, error) {
	args := m.Called(ctx, email, passwordHash, nickname)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *userRepositoryMock) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByID(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func testTokens() *jwtauth.Provider {
	return jwtauth.NewProvider("test-secret", time.Hour)
}

func TestSignup_HashesPasswordAndStoresUser(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "new@example.com").
		Return(domain.User{}, domain.ErrUserNotFound).Once()
	userRepo.On("Create", mock.Anything, "new@example.com", mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2hunter2")) == nil
	}), "newbie").Return(uint64(1), nil).Once()

	s := NewAuthService(userRepo, testTokens())
	require.NoError(t, s.Signup(context.Background(), "new@example.com", "hunter2hunter2", "newbie"))
	userRepo.AssertExpectations(t)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "dup@example.com").
		Return(domain.User{ID: 3, Email: "dup@example.com"}, nil).Once()

	s := NewAuthService(userRepo, testTokens())
	err := s.Signup(context.Background(), "dup@example.com", "hunter2hunter2", "dup")
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_IssuesTokenForUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "u@example.com").
		Return(domain.User{ID: 42, Email: "u@example.com", PasswordHash: string(hash)}, nil).Once()

	tokens := testTokens()
	s := NewAuthService(userRepo, tokens)

	token, err := s.Login(context.Background(), "u@example.com", "hunter2hunter2")
	require.NoError(t, err)

	userID, err := tokens.ParseUserID(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "u@example.com").
		Return(domain.User{ID: 42, PasswordHash: string(hash)}, nil).Once()

	s := NewAuthService(userRepo, testTokens())
	_, err = s.Login(context.Background(), "u@example.com", "wrong-password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(domain.User{}, domain.ErrUserNotFound).Once()

	s := NewAuthService(userRepo, testTokens())
	_, err := s.Login(context.Background(), "ghost@example.com", "whatever-password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
