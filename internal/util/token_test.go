package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raids-lab/orbit/dao/model"
)

func testMessage() *JWTMessage {
	return &JWTMessage{
		UserID:       42,
		Username:     "alice",
		RolePlatform: model.RoleUser,
	}
}

func TestCreateAndCheckTokens(t *testing.T) {
	tm := newTokenManager("access-secret", "refresh-secret", 2, 48)

	accessToken, refreshToken, err := tm.CreateTokens(testMessage())
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	msg, err := tm.CheckToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), msg.UserID)
	assert.Equal(t, "alice", msg.Username)
	assert.Equal(t, model.RoleUser, msg.RolePlatform)

	msg, err = tm.CheckRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), msg.UserID)
}

func TestTokenSecretsAreNotInterchangeable(t *testing.T) {
	tm := newTokenManager("access-secret", "refresh-secret", 2, 48)

	accessToken, refreshToken, err := tm.CreateTokens(testMessage())
	require.NoError(t, err)

	// 两类令牌使用不同密钥签名，不能互相替代
	_, err = tm.CheckRefreshToken(accessToken)
	assert.Error(t, err)
	_, err = tm.CheckToken(refreshToken)
	assert.Error(t, err)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	tm := newTokenManager("access-secret", "refresh-secret", -1, -1)

	accessToken, _, err := tm.CreateTokens(testMessage())
	require.NoError(t, err)

	_, err = tm.CheckToken(accessToken)
	assert.Error(t, err)
}

func TestTamperedTokenIsRejected(t *testing.T) {
	tm := newTokenManager("access-secret", "refresh-secret", 2, 48)
	other := newTokenManager("different-secret", "refresh-secret", 2, 48)

	accessToken, _, err := other.CreateTokens(testMessage())
	require.NoError(t, err)

	_, err = tm.CheckToken(accessToken)
	assert.Error(t, err)
}
