package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/bistro-api/internal/models"
)

// CartService provides operations over the cart collection.
type CartService interface {
	// GetEntriesByEmail returns the cart entries for one owner email.
	GetEntriesByEmail(ctx context.Context, email string) ([]models.CartEntry, error)
	// AddEntry inserts a cart entry.
	AddEntry(ctx context.Context, entry models.CartEntry) (*models.InsertAck, error)
	// DeleteEntry removes the entry with the given id. A non-empty
	// ownerEmail additionally scopes the filter to that owner, so a
	// caller cannot delete another user's entry; an empty ownerEmail
	// deletes by id alone.
	DeleteEntry(ctx context.Context, id primitive.ObjectID, ownerEmail string) (*models.DeleteAck, error)
}

type cartService struct {
	carts *mongo.Collection
}

// NewCartService creates a new instance of CartService
func NewCartService(db *mongo.Database) CartService {
	return &cartService{carts: db.Collection("cartCollection")}
}

func (s *cartService) GetEntriesByEmail(ctx context.Context, email string) ([]models.CartEntry, error) {
	cursor, err := s.carts.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	entries := []models.CartEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *cartService) AddEntry(ctx context.Context, entry models.CartEntry) (*models.InsertAck, error) {
	res, err := s.carts.InsertOne(ctx, entry)
	if err != nil {
		return nil, err
	}
	return &models.InsertAck{InsertedID: res.InsertedID}, nil
}

// cartDeleteFilter builds the delete filter: by id alone when ownerEmail
// is empty (permissive), by id and owner otherwise (restrictive).
func cartDeleteFilter(id primitive.ObjectID, ownerEmail string) bson.M {
	filter := bson.M{"_id": id}
	if ownerEmail != "" {
		filter["email"] = ownerEmail
	}
	return filter
}

func (s *cartService) DeleteEntry(ctx context.Context, id primitive.ObjectID, ownerEmail string) (*models.DeleteAck, error) {
	res, err := s.carts.DeleteOne(ctx, cartDeleteFilter(id, ownerEmail))
	if err != nil {
		return nil, err
	}
	return &models.DeleteAck{DeletedCount: res.DeletedCount}, nil
}
