package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/migge/supershopcart/internal/models"
	"github.com/migge/supershopcart/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SaveCart создаёт новую корзину.
func (s *Storage) SaveCart(ctx context.Context, cart *models.Cart) error {
	const op = "storage/mongo/SaveCart"

	if _, err := s.carts.InsertOne(ctx, cart); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateCart перезаписывает документ корзины целиком.
func (s *Storage) UpdateCart(ctx context.Context, cart *models.Cart) error {
	const op = "storage/mongo/UpdateCart"

	res, err := s.carts.ReplaceOne(ctx, bson.D{{Key: "_id", Value: cart.ID}}, cart)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// CartByID находит корзину по ID.
func (s *Storage) CartByID(ctx context.Context, id string) (*models.Cart, error) {
	const op = "storage/mongo/CartByID"

	var cart models.Cart
	if err := s.carts.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&cart); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cart, nil
}

// CartsByShopper возвращает корзины, где шоппер числится участником,
// в порядке создания (свежие первыми).
func (s *Storage) CartsByShopper(ctx context.Context, shopperID string) ([]models.Cart, error) {
	const op = "storage/mongo/CartsByShopper"

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := s.carts.Find(ctx, bson.D{{Key: "shopper_ids", Value: shopperID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var carts []models.Cart
	if err := cur.All(ctx, &carts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return carts, nil
}

// DeleteCart удаляет корзину; ErrNotFound, если её нет.
func (s *Storage) DeleteCart(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteCart"

	res, err := s.carts.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
