package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/bistro-api/internal/models"
)

// UserService provides operations over the users collection.
type UserService interface {
	// RegisterUser inserts a user unless one with the same email exists.
	// Idempotent: a second registration reports the existing state with
	// a nil inserted id instead of erroring.
	RegisterUser(ctx context.Context, user models.User) (*models.InsertAck, error)
	// GetUserByEmail returns the user with the given email, or (nil, nil)
	// when no record exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAllUsers returns every registered user.
	GetAllUsers(ctx context.Context) ([]models.User, error)
	// MakeAdmin elevates the user with the given id to the admin role.
	MakeAdmin(ctx context.Context, id primitive.ObjectID) (*models.UpdateAck, error)
	// DeleteUser removes the user with the given id.
	DeleteUser(ctx context.Context, id primitive.ObjectID) (*models.DeleteAck, error)
}

type userService struct {
	users *mongo.Collection
}

// NewUserService creates a new instance of UserService
func NewUserService(db *mongo.Database) UserService {
	return &userService{users: db.Collection("users")}
}

func (s *userService) RegisterUser(ctx context.Context, user models.User) (*models.InsertAck, error) {
	var existing models.User
	err := s.users.FindOne(ctx, bson.M{"email": user.Email}).Decode(&existing)
	if err == nil {
		return &models.InsertAck{Message: "User already exist", InsertedID: nil}, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	return &models.InsertAck{InsertedID: res.InsertedID}, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) MakeAdmin(ctx context.Context, id primitive.ObjectID) (*models.UpdateAck, error) {
	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
	)
	if err != nil {
		return nil, err
	}
	return &models.UpdateAck{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (s *userService) DeleteUser(ctx context.Context, id primitive.ObjectID) (*models.DeleteAck, error) {
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &models.DeleteAck{DeletedCount: res.DeletedCount}, nil
}
