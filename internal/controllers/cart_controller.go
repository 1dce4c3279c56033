package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bistroboss/bistro-api/internal/middleware"
	"github.com/bistroboss/bistro-api/internal/models"
	"github.com/bistroboss/bistro-api/internal/services"
)

// CartController handles HTTP requests for the cart collection.
type CartController struct {
	carts services.CartService
}

// NewCartController creates a new instance of CartController
func NewCartController(carts services.CartService) *CartController {
	return &CartController{carts: carts}
}

// GetEntries godoc
// @Summary List cart entries for an email
// @Tags cart
// @Produce json
// @Param email query string true "Owner email"
// @Success 200 {array} models.CartEntry
// @Failure 500 {object} map[string]string
// @Router /getallCard [get]
func (cc *CartController) GetEntries(c *gin.Context) {
	email := c.Query("email")

	entries, err := cc.carts.GetEntriesByEmail(c.Request.Context(), email)
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddEntry godoc
// @Summary Add an item to a cart
// @Tags cart
// @Accept json
// @Produce json
// @Param entry body models.CartEntry true "Cart entry"
// @Success 200 {object} models.InsertAck
// @Failure 400 {object} map[string]string
// @Router /addToCard [post]
func (cc *CartController) AddEntry(c *gin.Context) {
	var entry models.CartEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	ack, err := cc.carts.AddEntry(c.Request.Context(), entry)
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, ack)
}

// DeleteEntry godoc
// @Summary Remove an entry from the caller's cart
// @Description Deletion is scoped to the authenticated owner's email
// @Tags cart
// @Produce json
// @Param id path string true "Entry id"
// @Success 200 {object} models.DeleteAck
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /deleteitemfromMycart/{id} [delete]
func (cc *CartController) DeleteEntry(c *gin.Context) {
	id, ok := pathObjectID(c)
	if !ok {
		return
	}

	// Scope the delete to the token's identity so one caller cannot
	// remove another caller's entry by guessing its id.
	owner, _ := middleware.DecodedEmail(c)

	ack, err := cc.carts.DeleteEntry(c.Request.Context(), id, owner)
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, ack)
}
