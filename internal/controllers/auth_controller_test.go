package controllers

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTokenReturnsSignedAccessToken(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, "POST", "/jwt", map[string]interface{}{"email": "a@x.com"}, "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	accessToken, ok := body["AccessToken"].(string)
	require.True(t, ok)
	require.NotEmpty(t, accessToken)

	// Token verifies against the server secret and carries the claim
	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "a@x.com", claims["email"])
}

func TestCreateTokenAcceptsArbitraryClaimShape(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, "POST", "/jwt", map[string]interface{}{
		"email": "a@x.com",
		"name":  "A",
		"photo": "https://example.com/a.png",
	}, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["AccessToken"])
}

func TestCreateTokenRejectsMalformedBody(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, "POST", "/jwt", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
