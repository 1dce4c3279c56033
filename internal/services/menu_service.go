package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/bistro-api/internal/models"
)

// MenuService provides operations over the menus collection.
type MenuService interface {
	// GetAllItems returns the full menu.
	GetAllItems(ctx context.Context) ([]models.MenuItem, error)
	// GetItemByID returns the item with the given id, or (nil, nil) when
	// no item matches. The miss case is a result, not an error.
	GetItemByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	// CreateItem inserts a new menu item.
	CreateItem(ctx context.Context, item models.MenuItem) (*models.InsertAck, error)
	// UpdateItem overwrites the mutable fields of an existing item.
	UpdateItem(ctx context.Context, id primitive.ObjectID, item models.MenuItem) (*models.UpdateAck, error)
	// DeleteItem removes the item with the given id.
	DeleteItem(ctx context.Context, id primitive.ObjectID) (*models.DeleteAck, error)
}

type menuService struct {
	menus *mongo.Collection
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *mongo.Database) MenuService {
	return &menuService{menus: db.Collection("menus")}
}

func (s *menuService) GetAllItems(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := s.menus.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *menuService) GetItemByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.menus.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *menuService) CreateItem(ctx context.Context, item models.MenuItem) (*models.InsertAck, error) {
	res, err := s.menus.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	return &models.InsertAck{InsertedID: res.InsertedID}, nil
}

func (s *menuService) UpdateItem(ctx context.Context, id primitive.ObjectID, item models.MenuItem) (*models.UpdateAck, error) {
	res, err := s.menus.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":     item.Name,
			"recipe":   item.Recipe,
			"image":    item.Image,
			"category": item.Category,
			"price":    item.Price,
		}},
	)
	if err != nil {
		return nil, err
	}
	return &models.UpdateAck{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (s *menuService) DeleteItem(ctx context.Context, id primitive.ObjectID) (*models.DeleteAck, error) {
	res, err := s.menus.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &models.DeleteAck{DeletedCount: res.DeletedCount}, nil
}
