package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	require.NotEqual(t, "Secret123!", hash)
	require.True(t, strings.HasPrefix(hash, "$2"))
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Secret123!")))

	// 相同密碼雜湊兩次應產生不同鹽
	hash2, err := HashPassword("Secret123!")
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)
}

func TestHashPasswordTooLong(t *testing.T) {
	// bcrypt 限制輸入長度為 72 bytes
	_, err := HashPassword(strings.Repeat("x", 100))
	require.Error(t, err)
}
