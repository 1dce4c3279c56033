package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCartDeleteFilterRestrictive(t *testing.T) {
	id := primitive.NewObjectID()

	filter := cartDeleteFilter(id, "a@x.com")

	// Owner-scoped delete: another caller's entry never matches
	assert.Equal(t, bson.M{"_id": id, "email": "a@x.com"}, filter)
}

func TestCartDeleteFilterPermissive(t *testing.T) {
	id := primitive.NewObjectID()

	filter := cartDeleteFilter(id, "")

	// Empty owner reproduces the id-only delete
	assert.Equal(t, bson.M{"_id": id}, filter)
}
