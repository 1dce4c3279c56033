package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bistroboss/bistro-api/internal/models"
	"github.com/bistroboss/bistro-api/internal/services"
)

// MenuController handles HTTP requests for the menu collection.
type MenuController struct {
	menu services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(menu services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

// GetAllItems godoc
// @Summary Get the full menu
// @Tags menu
// @Produce json
// @Success 200 {array} models.MenuItem
// @Failure 500 {object} map[string]string
// @Router /menu [get]
func (mc *MenuController) GetAllItems(c *gin.Context) {
	items, err := mc.menu.GetAllItems(c.Request.Context())
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemByID godoc
// @Summary Get a single menu item
// @Description Returns null (not an error) when no item matches
// @Tags menu
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} models.MenuItem
// @Failure 400 {object} map[string]string
// @Router /menu/{id} [get]
func (mc *MenuController) GetItemByID(c *gin.Context) {
	id, ok := pathObjectID(c)
	if !ok {
		return
	}

	item, err := mc.menu.GetItemByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c)
		return
	}
	// Miss is a null result, distinguishable from a found record
	c.JSON(http.StatusOK, item)
}

// CreateItem godoc
// @Summary Add a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Param item body models.MenuItem true "Menu item"
// @Success 200 {object} models.InsertAck
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /menu [post]
func (mc *MenuController) CreateItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	ack, err := mc.menu.CreateItem(c.Request.Context(), item)
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, ack)
}

// UpdateItem godoc
// @Summary Update a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Item id"
// @Param item body models.MenuItem true "Menu item fields"
// @Success 200 {object} models.UpdateAck
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /menu/{id} [patch]
func (mc *MenuController) UpdateItem(c *gin.Context) {
	id, ok := pathObjectID(c)
	if !ok {
		return
	}

	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	ack, err := mc.menu.UpdateItem(c.Request.Context(), id, item)
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, ack)
}

// DeleteItem godoc
// @Summary Delete a menu item
// @Tags menu
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} models.DeleteAck
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /menu/{id} [delete]
func (mc *MenuController) DeleteItem(c *gin.Context) {
	id, ok := pathObjectID(c)
	if !ok {
		return
	}

	ack, err := mc.menu.DeleteItem(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, ack)
}
