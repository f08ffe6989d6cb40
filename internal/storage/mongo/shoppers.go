package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/migge/supershopcart/internal/models"
	"github.com/migge/supershopcart/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// SaveShopper создаёт нового шоппера.
// Конфликт по _id или email транслируется в storage.ErrAlreadyExists.
func (s *Storage) SaveShopper(ctx context.Context, shopper *models.Shopper) error {
	const op = "storage/mongo/SaveShopper"

	if _, err := s.shoppers.InsertOne(ctx, shopper); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateShopper перезаписывает документ шоппера целиком.
func (s *Storage) UpdateShopper(ctx context.Context, shopper *models.Shopper) error {
	const op = "storage/mongo/UpdateShopper"

	res, err := s.shoppers.ReplaceOne(ctx, bson.D{{Key: "_id", Value: shopper.ID}}, shopper)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ShopperByID находит шоппера по ID.
func (s *Storage) ShopperByID(ctx context.Context, id string) (*models.Shopper, error) {
	const op = "storage/mongo/ShopperByID"

	var shopper models.Shopper
	if err := s.shoppers.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&shopper); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &shopper, nil
}

// ShopperByEmail находит шоппера по email (точное совпадение, без нормализации:
// нормализацией владеет сервисный слой).
func (s *Storage) ShopperByEmail(ctx context.Context, email string) (*models.Shopper, error) {
	const op = "storage/mongo/ShopperByEmail"

	var shopper models.Shopper
	if err := s.shoppers.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&shopper); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &shopper, nil
}
