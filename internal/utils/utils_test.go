package utils_test

import (
	"testing"
	"time"

	"github.com/fuelsquad/manquants_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatXOF(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "0 XOF"},
		{"800", "800 XOF"},
		{"40000", "40 000 XOF"},
		{"55000", "55 000 XOF"},
		{"1234567.6", "1 234 568 XOF"},
		{"999.4", "999 XOF"},
		{"-15000", "-15 000 XOF"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatXOF(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatVolume(t *testing.T) {
	assert.Equal(t, "10 000 L", utils.FormatVolume(10000))
	assert.Equal(t, "50 L", utils.FormatVolume(50))
}

func TestPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}

func TestJWT_RoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "transporteur", "T1", "secret", time.Hour, "manquants-test")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "transporteur", claims.Role)
	assert.Equal(t, "T1", claims.CarrierID)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "admin", "", "secret", -time.Minute, "manquants-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
