package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mychecklist/internal/adapter/http/dto"
	"mychecklist/internal/core/domain"
	"mychecklist/pkg/apierrors"
)

func TestSignup_Created(t *testing.T) {
	authMock := new(authServiceMock)
	authMock.On("Signup", mock.Anything, "new@example.com", "hunter2hunter2", "newbie").
		Return(nil).Once()

	router := newTestRouter(t, new(taskServiceMock), authMock)
	rec := doRequest(t, router, http.MethodPost, "/api/auth/signup",
		`{"email":"new@example.com","password":"hunter2hunter2","nickname":"newbie"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	authMock.AssertExpectations(t)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	authMock := new(authServiceMock)
	authMock.On("Signup", mock.Anything, "dup@example.com", "hunter2hunter2", "dup").
		Return(domain.ErrDuplicateEmail).Once()

	router := newTestRouter(t, new(taskServiceMock), authMock)
	rec := doRequest(t, router, http.MethodPost, "/api/auth/signup",
		`{"email":"dup@example.com","password":"hunter2hunter2","nickname":"dup"}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "This email is already registered.", got.ErrDetails.Message)
}

func TestSignup_InvalidPayload(t *testing.T) {
	authMock := new(authServiceMock)
	router := newTestRouter(t, new(taskServiceMock), authMock)

	cases := []struct {
		name string
		body string
	}{
		{"not an email", `{"email":"not-an-email","password":"hunter2hunter2","nickname":"n"}`},
		{"short password", `{"email":"a@example.com","password":"short","nickname":"n"}`},
		{"missing nickname", `{"email":"a@example.com","password":"hunter2hunter2"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/auth/signup", tc.body, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	authMock.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_ReturnsToken(t *testing.T) {
	authMock := new(authServiceMock)
	authMock.On("Login", mock.Anything, "u@example.com", "hunter2hunter2").
		Return("signed-token", nil).Once()

	router := newTestRouter(t, new(taskServiceMock), authMock)
	rec := doRequest(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"u@example.com","password":"hunter2hunter2"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "signed-token", got.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	authMock := new(authServiceMock)
	authMock.On("Login", mock.Anything, "u@example.com", "wrong-password").
		Return("", domain.ErrInvalidCredentials).Once()

	router := newTestRouter(t, new(taskServiceMock), authMock)
	rec := doRequest(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"u@example.com","password":"wrong-password"}`, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The email or password is incorrect.", got.ErrDetails.Message)
}
