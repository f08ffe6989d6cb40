package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/migge/supershopcart/internal/models"
	"github.com/migge/supershopcart/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// SaveRefreshToken сохраняет новую запись refresh-токена.
// Хэш секрета — это _id документа, поэтому коллизия хэшей даёт
// storage.ErrAlreadyExists (сервис перегенерирует секрет).
func (s *Storage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	const op = "storage/mongo/SaveRefreshToken"

	if _, err := s.refreshTokens.InsertOne(ctx, token); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RefreshTokenByHash находит запись по хэшу секрета.
func (s *Storage) RefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error) {
	const op = "storage/mongo/RefreshTokenByHash"

	var token models.RefreshToken
	if err := s.refreshTokens.FindOne(ctx, bson.D{{Key: "_id", Value: hash}}).Decode(&token); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &token, nil
}

// DeleteRefreshToken удаляет запись по хэшу. Удаление — единственный механизм
// отзыва, поэтому факт "записи не было" отличим от успешного удаления:
// вызывающий решает, ошибка это (ротация) или no-op (logout).
func (s *Storage) DeleteRefreshToken(ctx context.Context, hash string) error {
	const op = "storage/mongo/DeleteRefreshToken"

	res, err := s.refreshTokens.DeleteOne(ctx, bson.D{{Key: "_id", Value: hash}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteRefreshTokensByShopper удаляет все сессии шоппера.
func (s *Storage) DeleteRefreshTokensByShopper(ctx context.Context, shopperID string) (int64, error) {
	const op = "storage/mongo/DeleteRefreshTokensByShopper"

	res, err := s.refreshTokens.DeleteMany(ctx, bson.D{{Key: "shopper_id", Value: shopperID}})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.DeletedCount, nil
}

// DeleteExpiredRefreshTokens удаляет записи с expires_at < now одним bulk-вызовом;
// изоляция сбоев по отдельным документам — на стороне сервера БД.
func (s *Storage) DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	const op = "storage/mongo/DeleteExpiredRefreshTokens"

	filter := bson.D{{Key: "expires_at", Value: bson.D{{Key: "$lt", Value: now.UTC()}}}}

	res, err := s.refreshTokens.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.DeletedCount, nil
}

// DeleteAllRefreshTokens очищает коллекцию. Только тесты/сидинг.
func (s *Storage) DeleteAllRefreshTokens(ctx context.Context) error {
	const op = "storage/mongo/DeleteAllRefreshTokens"

	if _, err := s.refreshTokens.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
