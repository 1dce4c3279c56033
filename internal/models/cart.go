package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartEntry is a menu item placed in a user's cart, denormalized so the
// cart page renders without joining the menu collection. Email scopes
// the entry to its owner.
type CartEntry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuID   string             `bson:"menuId,omitempty" json:"menuId,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name" json:"name"`
	Recipe   string             `bson:"recipe,omitempty" json:"recipe,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	Price    float64            `bson:"price" json:"price"`
}
