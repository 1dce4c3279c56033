package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account keyed by its unique email.
// Role is empty for regular users and "admin" for elevated ones;
// it is only ever changed through the make-admin operation.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// RoleAdmin is the only role with elevated privileges.
const RoleAdmin = "admin"

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
