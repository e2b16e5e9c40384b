package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/contacts-api/internal/handlers/dto"
)

func TestSignupConfirmLoginFlow(t *testing.T) {
	env := newTestEnv(t, generousLimiter())

	w := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"username": "alice77",
		"email":    "alice@test.com",
		"password": "secret12",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var signup dto.SignupResponse
	decodeJSON(t, w, &signup)
	assert.Equal(t, "alice@test.com", signup.User.Email)
	assert.Equal(t, 1, env.sender.calls)
	assert.Equal(t, "alice@test.com", env.sender.to)
	require.NotEmpty(t, env.sender.token)

	// Логин до подтверждения e-mail запрещён
	login := map[string]string{"email": "alice@test.com", "password": "secret12"}
	w = env.do(t, http.MethodPost, "/api/auth/login", "", login)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var errBody map[string]string
	decodeJSON(t, w, &errBody)
	assert.Equal(t, "Email not confirmed", errBody["detail"])

	w = env.do(t, http.MethodGet, "/api/auth/confirmed_email/"+env.sender.token, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Повторное подтверждение идемпотентно
	w = env.do(t, http.MethodGet, "/api/auth/confirmed_email/"+env.sender.token, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var msg map[string]string
	decodeJSON(t, w, &msg)
	assert.Equal(t, "Your email is already confirmed", msg["message"])

	w = env.do(t, http.MethodPost, "/api/auth/login", "", login)
	require.Equal(t, http.StatusOK, w.Code)

	var tokens dto.TokenResponse
	decodeJSON(t, w, &tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "bearer", tokens.TokenType)

	w = env.do(t, http.MethodGet, "/api/users/me", tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me dto.UserPayload
	decodeJSON(t, w, &me)
	assert.Equal(t, "alice@test.com", me.Email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t, generousLimiter())
	env.createConfirmedUser(t, "alice@test.com")

	w := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"username": "alice77",
		"email":    "alice@test.com",
		"password": "secret12",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginErrors(t *testing.T) {
	env := newTestEnv(t, generousLimiter())
	env.createConfirmedUser(t, "alice@test.com")

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "missing@test.com", "password": "password123",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var errBody map[string]string
	decodeJSON(t, w, &errBody)
	assert.Equal(t, "Invalid email", errBody["detail"])

	w = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "alice@test.com", "password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	decodeJSON(t, w, &errBody)
	assert.Equal(t, "Invalid password", errBody["detail"])
}

func TestRefreshTokenRotation(t *testing.T) {
	env := newTestEnv(t, generousLimiter())
	env.createConfirmedUser(t, "alice@test.com")

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "alice@test.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var tokens dto.TokenResponse
	decodeJSON(t, w, &tokens)

	w = env.do(t, http.MethodGet, "/api/auth/refresh_token", tokens.RefreshToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rotated dto.TokenResponse
	decodeJSON(t, w, &rotated)
	assert.NotEmpty(t, rotated.RefreshToken)

	// Старый refresh-токен больше не принимается
	w = env.do(t, http.MethodGet, "/api/auth/refresh_token", tokens.RefreshToken, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Access-токен в refresh-эндпоинте не работает
	w = env.do(t, http.MethodGet, "/api/auth/refresh_token", tokens.AccessToken, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestEmail(t *testing.T) {
	env := newTestEnv(t, generousLimiter())

	w := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"username": "alice77",
		"email":    "alice@test.com",
		"password": "secret12",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 1, env.sender.calls)

	w = env.do(t, http.MethodPost, "/api/auth/request_email", "", map[string]string{"email": "alice@test.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, env.sender.calls)

	var msg map[string]string
	decodeJSON(t, w, &msg)
	assert.Equal(t, "Check your email for confirmation.", msg["message"])

	// Несуществующий адрес получает тот же ответ, письмо не уходит
	w = env.do(t, http.MethodPost, "/api/auth/request_email", "", map[string]string{"email": "ghost@test.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, env.sender.calls)

	w = env.do(t, http.MethodGet, "/api/auth/confirmed_email/"+env.sender.token, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/auth/request_email", "", map[string]string{"email": "alice@test.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, env.sender.calls)
	decodeJSON(t, w, &msg)
	assert.Equal(t, "Your email is already confirmed", msg["message"])
}

func TestConfirmedEmail_InvalidToken(t *testing.T) {
	env := newTestEnv(t, generousLimiter())

	w := env.do(t, http.MethodGet, "/api/auth/confirmed_email/not-a-token", "", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var errBody map[string]string
	decodeJSON(t, w, &errBody)
	assert.Equal(t, "Invalid token for email verification", errBody["detail"])
}

func TestUpdateAvatar(t *testing.T) {
	env := newTestEnv(t, generousLimiter())
	_, token := env.createConfirmedUser(t, "alice@test.com")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not-really-a-png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPatch, "/api/users/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var me dto.UserPayload
	decodeJSON(t, w, &me)
	assert.Equal(t, "https://cdn.test/avatars/fixed", me.Avatar)
}
