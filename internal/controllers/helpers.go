package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// pathObjectID parses the :id path param as an ObjectID, rejecting the
// request with 400 before any store call when it is malformed.
func pathObjectID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondStoreError maps a downstream store failure to a generic 500.
func respondStoreError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
