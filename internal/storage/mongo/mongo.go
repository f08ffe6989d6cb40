// mongo — реализация storage.Storage поверх MongoDB.
// Коллекции: shoppers, carts, refresh_tokens. Хранилище трактуется как
// опорный документный стор: по одной записи на документ, без многодокументных
// транзакций (операции сервиса к ним не чувствительны).
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	shoppersCollection      = "shoppers"
	cartsCollection         = "carts"
	refreshTokensCollection = "refresh_tokens"

	defaultDBName = "supershopcart"
)

// Storage — тонкий адаптер для подключения и коллекций MongoDB.
type Storage struct {
	client        *mongodriver.Client
	db            *mongodriver.Database
	shoppers      *mongodriver.Collection
	carts         *mongodriver.Collection
	refreshTokens *mongodriver.Collection
}

// New подключается к MongoDB, пингует её и обеспечивает индексацию.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("mongo: empty database url")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(dbURL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(databaseFromURI(dbURL))

	s := &Storage{
		client:        cli,
		db:            db,
		shoppers:      db.Collection(shoppersCollection),
		carts:         db.Collection(cartsCollection),
		refreshTokens: db.Collection(refreshTokensCollection),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		_ = s.Close(context.Background())
		return nil, err
	}

	return s, nil
}

// Close разрывает соединение с MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ensureIndexes создаёт индексы, необходимые сервису:
//   - уникальный email шоппера;
//   - участники корзины (shopper_ids) для выборки "мои корзины";
//   - expires_at refresh-токенов для свипера.
//
// TTL-индекс по expires_at сознательно не используется: удалением просроченных
// записей владеет свипер, а авторитетная проверка срока выполняется при
// валидации токена.
func (s *Storage) ensureIndexes(ctx context.Context) error {
	_, err := s.shoppers.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_email").SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo ensure shoppers indexes: %w", err)
	}

	_, err = s.carts.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "shopper_ids", Value: 1}},
		Options: options.Index().SetName("by_shopper"),
	})
	if err != nil {
		return fmt.Errorf("mongo ensure carts indexes: %w", err)
	}

	_, err = s.refreshTokens.Indexes().CreateMany(ctx, []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetName("by_expiry"),
		},
		{
			Keys:    bson.D{{Key: "shopper_id", Value: 1}},
			Options: options.Index().SetName("by_shopper"),
		},
	})
	if err != nil {
		return fmt.Errorf("mongo ensure refresh_tokens indexes: %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из пути mongodb-URI.
// Если его нет или URI не парсится — возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}

	return defaultDBName
}
