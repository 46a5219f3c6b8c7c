// File: internal/service/password.go
package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltBytes    = 16
)

var (
	randRead  = rand.Read
	scryptKey = scrypt.Key
)

// HashPassword 以 scrypt 衍生密碼，回傳 "hex(衍生值).salt" 格式
func HashPassword(password string) (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := randRead(raw); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)

	key, err := scryptKey([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}
	return hex.EncodeToString(key) + "." + salt, nil
}

// VerifyPassword 以儲存的 salt 重新衍生並以常數時間比對；格式錯誤一律回傳 false
func VerifyPassword(stored, password string) bool {
	hashHex, salt, ok := strings.Cut(stored, ".")
	if !ok || salt == "" {
		return false
	}
	want, err := hex.DecodeString(hashHex)
	if err != nil || len(want) != scryptKeyLen {
		return false
	}
	got, err := scryptKey([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(got, want) == 1
}
