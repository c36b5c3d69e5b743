package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/carlos0768/lexisync/internal/models"
	"github.com/carlos0768/lexisync/internal/server/storage"
	"github.com/carlos0768/lexisync/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:          []byte("test-secret"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}
}

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users          map[string]*models.User // username -> User
	createError    error
	getUserError   error
	lastLoginCalls []string
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error {
	m.lastLoginCalls = append(m.lastLoginCalls, userID)
	return nil
}

// mockTokenStorage is a mock implementation of TokenStorage for testing
type mockTokenStorage struct {
	tokens        map[string]*models.RefreshToken // token -> RefreshToken
	saveError     error
	getError      error
	deleteError   error
	savedTokens   []*models.RefreshToken
	deletedTokens []string
}

func (m *mockTokenStorage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if m.saveError != nil {
		return m.saveError
	}
	m.tokens[token.Token] = token
	m.savedTokens = append(m.savedTokens, token)
	return nil
}

func (m *mockTokenStorage) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	rt, ok := m.tokens[token]
	if !ok {
		return nil, storage.ErrTokenNotFound
	}
	return rt, nil
}

func (m *mockTokenStorage) DeleteRefreshToken(ctx context.Context, token string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	if _, ok := m.tokens[token]; !ok {
		return storage.ErrTokenNotFound
	}
	delete(m.tokens, token)
	m.deletedTokens = append(m.deletedTokens, token)
	return nil
}

func (m *mockTokenStorage) DeleteUserTokens(ctx context.Context, userID string) (int, error) {
	if m.deleteError != nil {
		return 0, m.deleteError
	}
	count := 0
	for token, rt := range m.tokens {
		if rt.UserID == userID {
			delete(m.tokens, token)
			m.deletedTokens = append(m.deletedTokens, token)
			count++
		}
	}
	return count, nil
}

func (m *mockTokenStorage) DeleteExpiredTokens(ctx context.Context) (int, error) {
	return 0, nil
}

func newAuthHandler(users *mockUserStorage, tokens *mockTokenStorage) *AuthHandler {
	return NewAuthHandler(setupTestLogger(), users, tokens, testJWTConfig())
}

// testUser creates a user with a bcrypt hash of the given password
func testUser(t *testing.T, username, password string, tier models.SubscriptionTier) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           "user-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Tier:         tier,
		CreatedAt:    time.Now(),
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	userStorage := &mockUserStorage{users: make(map[string]*models.User)}
	tokenStorage := &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
	handler := newAuthHandler(userStorage, tokenStorage)

	body, err := json.Marshal(api.RegisterRequest{
		Username: "testuser",
		Password: "password123",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response api.RegisterResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.NotEmpty(t, response.UserID)

	// Verify user was created with a bcrypt hash, not the raw password
	user, err := userStorage.GetUserByUsername(context.Background(), "testuser")
	require.NoError(t, err)
	assert.Equal(t, models.TierFree, user.Tier)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	userStorage := &mockUserStorage{users: make(map[string]*models.User)}
	tokenStorage := &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
	handler := newAuthHandler(userStorage, tokenStorage)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_InvalidUsername(t *testing.T) {
	userStorage := &mockUserStorage{users: make(map[string]*models.User)}
	tokenStorage := &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
	handler := newAuthHandler(userStorage, tokenStorage)

	tests := []struct {
		name     string
		username string
	}{
		{"empty username", ""},
		{"too short", "ab"},
		{"invalid chars", "user@name"},
		{"spaces", "user name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(api.RegisterRequest{
				Username: tt.username,
				Password: "password123",
			})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
			w := httptest.NewRecorder()
			handler.Register(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	userStorage := &mockUserStorage{users: map[string]*models.User{
		"existing": testUser(t, "existing", "pass", models.TierFree),
	}}
	tokenStorage := &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
	handler := newAuthHandler(userStorage, tokenStorage)

	body, err := json.Marshal(api.RegisterRequest{
		Username: "existing",
		Password: "password123",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "username already taken")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	user := testUser(t, "alice", "correct-horse", models.TierActive)
	userStorage := &mockUserStorage{users: map[string]*models.User{"alice": user}}
	tokenStorage := &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
	handler := newAuthHandler(userStorage, tokenStorage)

	body, err := json.Marshal(api.LoginRequest{
		Username: "alice",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
	assert.Equal(t, user.ID, response.UserID)
	assert.Equal(t, "active", response.Tier)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), response.ExpiresIn)

	// Access token carries user identity and tier
	claims, err := ValidateAccessToken(testJWTConfig(), response.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "active", claims.Tier)

	// Refresh token persisted
	require.Len(t, tokenStorage.savedTokens, 1)
	assert.Equal(t, user.ID, tokenStorage.savedTokens[0].UserID)

	// Last login updated
	assert.Equal(t, []string{user.ID}, userStorage.lastLoginCalls)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	user := testUser(t, "alice", "correct-horse", models.TierFree)
	userStorage := &mockUserStorage{users: map[string]*models.User{"alice": user}}
	tokenStorage := &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
	handler := newAuthHandler(userStorage, tokenStorage)

	body, err := json.Marshal(api.LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
	assert.Empty(t, tokenStorage.savedTokens)
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	userStorage := &mockUserStorage{users: make(map[string]*models.User)}
	tokenStorage := &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
	handler := newAuthHandler(userStorage, tokenStorage)

	body, err := json.Marshal(api.LoginRequest{
		Username: "nobody",
		Password: "whatever1",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Login(w, req)

	// Несуществующий пользователь неотличим от неверного пароля
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	user := testUser(t, "alice", "pass", models.TierActive)
	userStorage := &mockUserStorage{users: map[string]*models.User{"alice": user}}
	tokenStorage := &mockTokenStorage{tokens: map[string]*models.RefreshToken{
		"old-refresh-token": {
			Token:     "old-refresh-token",
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(24 * time.Hour),
			CreatedAt: time.Now(),
		},
	}}
	handler := newAuthHandler(userStorage, tokenStorage)

	body, err := json.Marshal(api.RefreshRequest{RefreshToken: "old-refresh-token"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Refresh(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEqual(t, "old-refresh-token", response.RefreshToken)

	// Ротация: старый токен удален, новый сохранен
	assert.Contains(t, tokenStorage.deletedTokens, "old-refresh-token")
	require.Len(t, tokenStorage.savedTokens, 1)
	assert.Equal(t, response.RefreshToken, tokenStorage.savedTokens[0].Token)
}

func TestAuthHandler_Refresh_ExpiredToken(t *testing.T) {
	user := testUser(t, "alice", "pass", models.TierFree)
	userStorage := &mockUserStorage{users: map[string]*models.User{"alice": user}}
	tokenStorage := &mockTokenStorage{tokens: map[string]*models.RefreshToken{
		"expired-token": {
			Token:     "expired-token",
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(-time.Hour),
			CreatedAt: time.Now().Add(-48 * time.Hour),
		},
	}}
	handler := newAuthHandler(userStorage, tokenStorage)

	body, err := json.Marshal(api.RefreshRequest{RefreshToken: "expired-token"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Refresh(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "refresh token expired")
}

func TestAuthHandler_Refresh_UnknownToken(t *testing.T) {
	userStorage := &mockUserStorage{users: make(map[string]*models.User)}
	tokenStorage := &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
	handler := newAuthHandler(userStorage, tokenStorage)

	body, err := json.Marshal(api.RefreshRequest{RefreshToken: "no-such-token"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Refresh(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid refresh token")
}

func TestAuthHandler_Refresh_EmptyToken(t *testing.T) {
	userStorage := &mockUserStorage{users: make(map[string]*models.User)}
	tokenStorage := &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
	handler := newAuthHandler(userStorage, tokenStorage)

	body, err := json.Marshal(api.RefreshRequest{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Refresh(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	userStorage := &mockUserStorage{users: make(map[string]*models.User)}
	tokenStorage := &mockTokenStorage{tokens: map[string]*models.RefreshToken{
		"token-1": {Token: "token-1", UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour)},
		"token-2": {Token: "token-2", UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour)},
		"token-3": {Token: "token-3", UserID: "user-2", ExpiresAt: time.Now().Add(time.Hour)},
	}}
	handler := newAuthHandler(userStorage, tokenStorage)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	ctx := context.WithValue(req.Context(), UserIDKey, "user-1")
	req = req.WithContext(ctx)

	w := httptest.NewRecorder()
	handler.Logout(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	// Удалены только токены user-1
	assert.Len(t, tokenStorage.tokens, 1)
	assert.Contains(t, tokenStorage.tokens, "token-3")
}

func TestAuthHandler_Logout_NoAuth(t *testing.T) {
	userStorage := &mockUserStorage{users: make(map[string]*models.User)}
	tokenStorage := &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
	handler := newAuthHandler(userStorage, tokenStorage)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	handler.Logout(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
