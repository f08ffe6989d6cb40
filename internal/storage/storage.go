// storage задаёт контракты работы с документным хранилищем.
// Реализация (MongoDB) живёт в подпакете mongo; сервисный слой знает
// только эти интерфейсы и сентинельные ошибки.
package storage

//go:generate mockgen -source=storage.go -destination=../../mocks/mock_storage.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/migge/supershopcart/internal/models"
)

var (
	// ErrNotFound — документ не найден (шоппер/корзина/refresh-токен).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email/хэш refresh-токена).
	ErrAlreadyExists = errors.New("already exists")
)

// ShopperStorage выполняет операции над шопперами.
type ShopperStorage interface {
	// SaveShopper создаёт нового шоппера.
	SaveShopper(ctx context.Context, shopper *models.Shopper) error
	// UpdateShopper перезаписывает существующего шоппера.
	UpdateShopper(ctx context.Context, shopper *models.Shopper) error
	// ShopperByID находит шоппера по ID.
	ShopperByID(ctx context.Context, id string) (*models.Shopper, error)
	// ShopperByEmail находит шоппера по email.
	ShopperByEmail(ctx context.Context, email string) (*models.Shopper, error)
}

// CartStorage выполняет операции над корзинами.
type CartStorage interface {
	// SaveCart создаёт новую корзину.
	SaveCart(ctx context.Context, cart *models.Cart) error
	// UpdateCart перезаписывает существующую корзину.
	UpdateCart(ctx context.Context, cart *models.Cart) error
	// CartByID находит корзину по ID.
	CartByID(ctx context.Context, id string) (*models.Cart, error)
	// CartsByShopper возвращает корзины, в которых шоппер — участник.
	CartsByShopper(ctx context.Context, shopperID string) ([]models.Cart, error)
	// DeleteCart удаляет корзину.
	DeleteCart(ctx context.Context, id string) error
}

// RefreshTokenStorage выполняет операции над refresh-токенами.
// Удаление записи — единственный механизм отзыва токена.
type RefreshTokenStorage interface {
	// SaveRefreshToken сохраняет новую запись refresh-токена.
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error
	// RefreshTokenByHash находит запись по хэшу секрета.
	RefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	// DeleteRefreshToken удаляет запись; ErrNotFound, если её нет.
	DeleteRefreshToken(ctx context.Context, hash string) error
	// DeleteRefreshTokensByShopper удаляет все записи шоппера (logout-all).
	DeleteRefreshTokensByShopper(ctx context.Context, shopperID string) (int64, error)
	// DeleteExpiredRefreshTokens удаляет записи с expires_at < now.
	DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
	// DeleteAllRefreshTokens очищает коллекцию; только для тестов/сидинга.
	DeleteAllRefreshTokens(ctx context.Context) error
}

// Storage задаёт полный контракт работы с хранилищем.
type Storage interface {
	ShopperStorage
	CartStorage
	RefreshTokenStorage
	Close(ctx context.Context) error
}
