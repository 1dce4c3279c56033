package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/bistro-api/internal/models"
)

// ReviewService provides read access to the reviews collection.
// There is no write path; reviews are seeded by operators.
type ReviewService interface {
	GetAllReviews(ctx context.Context) ([]models.Review, error)
}

type reviewService struct {
	reviews *mongo.Collection
}

// NewReviewService creates a new instance of ReviewService
func NewReviewService(db *mongo.Database) ReviewService {
	return &reviewService{reviews: db.Collection("reviews")}
}

func (s *reviewService) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	cursor, err := s.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
