// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trainease/internal/api"
	"trainease/internal/apperr"
	"trainease/internal/database"
	"trainease/internal/model"
	"trainease/internal/store"

	"github.com/golang-jwt/jwt/v5"
)

var (
	getUserByUsername = store.GetUserByUsername
	createUser        = store.CreateUser
	hashPassword      = HashPassword
)

const msgBadCredentials = "invalid username or password"

// SessionClaims 定義 session cookie 內的 JWT 負載，只攜帶 session id
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// AuthenticateUser 依使用者名稱查詢並驗證密碼，成功回傳使用者
func AuthenticateUser(ctx context.Context, db database.DB, username, password string) (*model.User, error) {
	user, err := getUserByUsername(ctx, db, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.Unauthorized(msgBadCredentials)
	}
	if err != nil {
		return nil, apperr.Internal("failed to load user", err)
	}
	if !VerifyPassword(user.PasswordHash, password) {
		return nil, apperr.Unauthorized(msgBadCredentials)
	}
	return user, nil
}

// RegisterUser 建立一般使用者；註冊永遠不會產生管理員
func RegisterUser(ctx context.Context, db database.DB, req api.RegisterRequest) (*model.User, error) {
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}
	user, err := createUser(ctx, db, &model.User{
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrDuplicate) {
		return nil, apperr.Validation("username already exists", map[string]any{"username": "taken"})
	}
	if err != nil {
		return nil, apperr.Internal("failed to create user", err)
	}
	return user, nil
}

// IssueSessionToken 簽發包含 session id 的 JWT
func IssueSessionToken(secret []byte, sessionID string, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("session secret not set")
	}
	now := time.Now()
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseSessionToken 驗證簽章與期限，回傳 session id
func ParseSessionToken(secret []byte, tokenString string) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("session secret not set")
	}
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", errors.New("invalid session token")
	}
	return claims.SessionID, nil
}
