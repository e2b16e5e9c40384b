package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	ScopeAccess  = "access_token"
	ScopeRefresh = "refresh_token"
	ScopeEmail   = "email_token"
)

var ErrInvalidScope = errors.New("invalid token scope")

type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secretKey       string
	accessDuration  time.Duration
	refreshDuration time.Duration
	emailDuration   time.Duration
}

func NewJWTManager(secret string, accessDuration, refreshDuration, emailDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:       secret,
		accessDuration:  accessDuration,
		refreshDuration: refreshDuration,
		emailDuration:   emailDuration,
	}
}

// GenerateAccessToken создаёт access-токен для email пользователя
func (m *JWTManager) GenerateAccessToken(email string) (string, error) {
	return m.generate(email, ScopeAccess, m.accessDuration)
}

// GenerateRefreshToken создаёт refresh-токен для email пользователя
func (m *JWTManager) GenerateRefreshToken(email string) (string, error) {
	return m.generate(email, ScopeRefresh, m.refreshDuration)
}

// GenerateEmailToken создаёт токен подтверждения e-mail
func (m *JWTManager) GenerateEmailToken(email string) (string, error) {
	return m.generate(email, ScopeEmail, m.emailDuration)
}

func (m *JWTManager) generate(email, scope string, duration time.Duration) (string, error) {
	claims := Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secretKey))
}

// Verify парсит токен и проверяет, что он выписан с ожидаемым scope
func (m *JWTManager) Verify(accessToken, scope string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Scope != scope {
		return nil, ErrInvalidScope
	}
	return claims, nil
}

// ExtractTokenFromHeader извлекает токен из Authorization header
func ExtractTokenFromHeader(r *http.Request) (string, error) {
	hdr := r.Header.Get("Authorization")
	parts := strings.SplitN(hdr, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid Authorization header")
	}
	return parts[1], nil
}
