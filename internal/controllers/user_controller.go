package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bistroboss/bistro-api/internal/middleware"
	"github.com/bistroboss/bistro-api/internal/models"
	"github.com/bistroboss/bistro-api/internal/services"
)

// UserController handles HTTP requests for the users collection.
type UserController struct {
	users services.UserService
}

// NewUserController creates a new instance of UserController
func NewUserController(users services.UserService) *UserController {
	return &UserController{users: users}
}

// Register godoc
// @Summary Register a user
// @Description Stores a user keyed by email; registering an existing email is a no-op
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.User true "User"
// @Success 200 {object} models.InsertAck
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (uc *UserController) Register(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	ack, err := uc.users.RegisterUser(c.Request.Context(), user)
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, ack)
}

// CheckAdmin godoc
// @Summary Check whether a user is an admin
// @Description Self-lookup only: the path email must match the token's identity
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /allusers/checkAdmin/{email} [get]
func (uc *UserController) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	// Callers may only ask about themselves
	decoded, ok := middleware.DecodedEmail(c)
	if !ok || decoded != email {
		c.JSON(http.StatusForbidden, gin.H{"message": models.MsgForbidden})
		return
	}

	user, err := uc.users.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		respondStoreError(c)
		return
	}

	admin := user != nil && user.IsAdmin()
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// MakeAdmin godoc
// @Summary Elevate a user to admin
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.UpdateAck
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /allusers/makeAdmin/{id} [patch]
func (uc *UserController) MakeAdmin(c *gin.Context) {
	id, ok := pathObjectID(c)
	if !ok {
		return
	}

	ack, err := uc.users.MakeAdmin(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, ack)
}

// GetAllUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /allusers [get]
func (uc *UserController) GetAllUsers(c *gin.Context) {
	users, err := uc.users.GetAllUsers(c.Request.Context())
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.DeleteAck
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /allusers/{id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := pathObjectID(c)
	if !ok {
		return
	}

	ack, err := uc.users.DeleteUser(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, ack)
}
