package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/migge/supershopcart/internal/models"
	logctx "github.com/migge/supershopcart/internal/pkg/log"
	"github.com/migge/supershopcart/internal/pkg/redact"
	"github.com/migge/supershopcart/internal/service"
	"github.com/migge/supershopcart/internal/transport/http/httperr"
)

// Authenticator — минимальный срез сервисного слоя, нужный воротам аутентификации.
type Authenticator interface {
	ValidateAccessToken(token string) (shopperID, deviceID string, err error)
	ShopperByID(ctx context.Context, id string) (*models.Shopper, error)
}

// Principal — аутентифицированный субъект запроса: документ шоппера
// и device_id из access-токена (пустой, если логин был без устройства).
type Principal struct {
	Shopper  *models.Shopper
	DeviceID string
}

type ctxKey struct{}

var principalKey ctxKey

// PrincipalFrom возвращает принципала из контекста запроса, если
// AuthBearer успешно аутентифицировал его.
func PrincipalFrom(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok
}

// WithPrincipal кладёт принципала в контекст. Экспортирован для тестов хендлеров.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// AuthBearer — ворота аутентификации. Извлекает Bearer-токен из Authorization,
// валидирует его и кладёт принципала в контекст. Порядок шагов:
//
//  1. если принципал уже есть в контексте — ничего не делаем;
//  2. нет заголовка / не Bearer-схема / пустой токен — пропускаем запрос
//     неаутентифицированным (решение об отказе принимает хендлер);
//  3. токен невалиден или истёк — тоже пропускаем неаутентифицированным,
//     лог на уровне debug;
//  4. subject не найден в хранилище (шоппер удалён после выпуска токена) —
//     пропускаем неаутентифицированным;
//  5. инфраструктурная ошибка (БД недоступна) — обрываем запрос 500;
//  6. успех — принципал уходит в контекст, вниз по цепочке.
func AuthBearer(auth Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := PrincipalFrom(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			shopperID, deviceID, err := auth.ValidateAccessToken(token)
			if err != nil {
				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelDebug, "auth_token_rejected",
					slog.String("token", redact.Token()),
					slog.String("reason", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}

			shopper, err := auth.ShopperByID(r.Context(), shopperID)
			if err != nil {
				if errors.Is(err, service.ErrShopperNotFound) {
					next.ServeHTTP(w, r)
					return
				}

				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "auth_lookup_failed",
					slog.String("err", err.Error()),
				)
				httperr.WriteError(w, r, err)
				return
			}

			ctx := WithPrincipal(r.Context(), &Principal{Shopper: shopper, DeviceID: deviceID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) || len(auth) <= len(prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
