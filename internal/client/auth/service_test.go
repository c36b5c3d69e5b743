package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/carlos0768/lexisync/internal/client/api"
	"github.com/carlos0768/lexisync/internal/client/storage"
	pkgapi "github.com/carlos0768/lexisync/pkg/api"
)

// sessionStore возвращает AuthStorageMock поверх одной изменяемой сессии
func sessionStore(session **storage.Session) *storage.AuthStorageMock {
	return &storage.AuthStorageMock{
		SaveSessionFunc: func(ctx context.Context, s *storage.Session) error {
			*session = s
			return nil
		},
		GetSessionFunc: func(ctx context.Context) (*storage.Session, error) {
			if *session == nil {
				return nil, storage.ErrSessionNotFound
			}
			return *session, nil
		},
		DeleteSessionFunc: func(ctx context.Context) error {
			*session = nil
			return nil
		},
	}
}

func metadataStore(cleared *bool) *storage.MetadataStorageMock {
	return &storage.MetadataStorageMock{
		ClearLastSyncFunc: func(ctx context.Context) error {
			*cleared = true
			return nil
		},
	}
}

func TestRegister(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error) {
			assert.Equal(t, "testuser", req.Username)
			assert.Equal(t, "password123", req.Password)
			return &pkgapi.RegisterResponse{UserID: "user-123"}, nil
		},
	}

	var session *storage.Session
	var cleared bool
	svc := NewService(mockAPI, sessionStore(&session), metadataStore(&cleared))

	result, err := svc.Register(context.Background(), "testuser", "password123")

	require.NoError(t, err)
	assert.Equal(t, "user-123", result.UserID)
	assert.Equal(t, "testuser", result.Username)
	assert.Nil(t, session, "register must not create a session")
}

func TestRegister_InvalidInput(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{}
	var session *storage.Session
	var cleared bool
	svc := NewService(mockAPI, sessionStore(&session), metadataStore(&cleared))

	_, err := svc.Register(context.Background(), "ab", "password123")
	require.Error(t, err, "short username must be rejected before the network call")

	_, err = svc.Register(context.Background(), "testuser", "short")
	require.Error(t, err)

	assert.Empty(t, mockAPI.RegisterCalls())
}

func TestLogin_SavesSession(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				UserID:       "user-123",
				Tier:         "active",
				ExpiresIn:    900,
			}, nil
		},
	}

	var session *storage.Session
	var cleared bool
	svc := NewService(mockAPI, sessionStore(&session), metadataStore(&cleared))

	result, err := svc.Login(context.Background(), "testuser", "password123")

	require.NoError(t, err)
	assert.Equal(t, "user-123", result.UserID)
	assert.Equal(t, "active", result.Tier)

	require.NotNil(t, session)
	assert.Equal(t, "testuser", session.Username)
	assert.Equal(t, "access-token", session.AccessToken)
	assert.Equal(t, "refresh-token", session.RefreshToken)
	assert.Equal(t, "active", session.Tier)
	assert.Greater(t, session.ExpiresAt, int64(0))
}

func TestLogin_ServerError(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return nil, clientapi.ErrUnauthorized
		},
	}

	var session *storage.Session
	var cleared bool
	svc := NewService(mockAPI, sessionStore(&session), metadataStore(&cleared))

	_, err := svc.Login(context.Background(), "testuser", "wrongpassword")

	require.Error(t, err)
	assert.ErrorIs(t, err, clientapi.ErrUnauthorized)
	assert.Nil(t, session)
}

func TestLogout(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		LogoutFunc: func(ctx context.Context) error { return nil },
	}

	session := &storage.Session{Username: "testuser", UserID: "user-123"}
	var cleared bool
	svc := NewService(mockAPI, sessionStore(&session), metadataStore(&cleared))

	err := svc.Logout(context.Background())

	require.NoError(t, err)
	assert.Nil(t, session, "session must be deleted")
	assert.True(t, cleared, "logout must reset sync metadata")
	assert.Len(t, mockAPI.LogoutCalls(), 1)
}

func TestLogout_ServerUnavailable(t *testing.T) {
	// Недоступный сервер не должен мешать локальному выходу
	mockAPI := &clientapi.ClientAPIMock{
		LogoutFunc: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	}

	session := &storage.Session{Username: "testuser", UserID: "user-123"}
	var cleared bool
	svc := NewService(mockAPI, sessionStore(&session), metadataStore(&cleared))

	err := svc.Logout(context.Background())

	require.NoError(t, err)
	assert.Nil(t, session)
	assert.True(t, cleared)
}

func TestLogout_NoSession(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{}

	var session *storage.Session
	var cleared bool
	svc := NewService(mockAPI, sessionStore(&session), metadataStore(&cleared))

	err := svc.Logout(context.Background())

	require.NoError(t, err)
	assert.Empty(t, mockAPI.LogoutCalls(), "no session means nothing to invalidate remotely")
	assert.True(t, cleared)
}

func TestIsAuthenticated(t *testing.T) {
	var session *storage.Session
	var cleared bool
	svc := NewService(&clientapi.ClientAPIMock{}, sessionStore(&session), metadataStore(&cleared))

	ok, err := svc.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	session = &storage.Session{Username: "testuser"}
	ok, err = svc.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}
