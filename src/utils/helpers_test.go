package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestEncryptDecrypt(t *testing.T) {
	key := DeriveKey("qr-secret")
	enc, err := EncryptMessage(key, "482913")
	require.NoError(t, err)
	assert.NotContains(t, enc, "482913")

	dec, err := DecryptMessage(key, enc)
	require.NoError(t, err)
	assert.Equal(t, "482913", *dec)

	_, err = DecryptMessage(DeriveKey("other"), enc)
	assert.Error(t, err)

	_, err = DecryptMessage(key, "abcd")
	assert.ErrorIs(t, err, ErrCipherTextTooShort)

	_, err = DecryptMessage(key, "482913")
	assert.Error(t, err)
}

func TestAdminJWT(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateAdminJWT(secret, "admin@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(secret, token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, "admin@example.com", claims.Email)

	_, err = ParseJWT([]byte("wrong"), token)
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)

	expired, err := GenerateAdminJWT(secret, "admin@example.com", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(secret, expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = GenerateAdminJWT(nil, "admin@example.com", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword(string(hash), "s3cret"))
	assert.False(t, CheckPassword(string(hash), "nope"))
	assert.False(t, CheckPassword("", ""))
}
