package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bistroboss/bistro-api/internal/auth"
	"github.com/bistroboss/bistro-api/internal/models"
)

// AuthController issues access tokens for identity claims.
type AuthController struct {
	issuer *auth.TokenIssuer
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(issuer *auth.TokenIssuer) *AuthController {
	return &AuthController{issuer: issuer}
}

// CreateToken godoc
// @Summary Issue an access token
// @Description Signs the submitted identity claim into a bearer token with a 24h expiry
// @Tags auth
// @Accept json
// @Produce json
// @Param identity body object true "Identity claim (minimally an email)"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} map[string]string
// @Router /jwt [post]
func (ac *AuthController) CreateToken(c *gin.Context) {
	var identity map[string]interface{}
	if err := c.ShouldBindJSON(&identity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	token, err := ac.issuer.Issue(identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token})
}
