package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avorobev/chatlog/internal/adapter"
	"github.com/avorobev/chatlog/internal/app"
	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/mock"
	"github.com/avorobev/chatlog/internal/store"
	"github.com/avorobev/chatlog/models"
)

func newTestClientAuthSvc(t *testing.T, ctrl *gomock.Controller) (ClientAuthService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientAuthService(mockAdapter, logger.Nop()), mockAdapter
}

// serverError mimics the adapter's wrapped transport error with a JSON body.
func serverError(sentinel error, message string) error {
	return fmt.Errorf("%w: {\"message\":%q}", sentinel, message)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Register(ctx, models.RegisterRequest{Email: "alice@example.com", Password: "secret"}).
		Return(models.RegisterResponse{Message: app.MsgUserRegistered, UserID: "user-1"}, nil)

	err := svc.Register(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
}

func TestClientAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Register(ctx, gomock.Any()).
		Return(models.RegisterResponse{}, serverError(adapter.ErrBadRequest, app.MsgEmailAlreadyInUse))

	err := svc.Register(ctx, "alice@example.com", "secret")
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestClientAuthService_Register_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientAuthSvc(t, ctrl)

	err := svc.Register(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.Register(context.Background(), "alice@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "secret"}).
		Return(models.LoginResponse{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			UserID:       "user-1",
			Email:        "alice@example.com",
		}, nil)

	err := svc.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
}

func TestClientAuthService_Login_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.LoginResponse{}, serverError(adapter.ErrUnauthorized, app.MsgInvalidCredentials))

	err := svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientAuthService_Login_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientAuthSvc(t, ctrl)

	err := svc.Login(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
