// service содержит бизнес-логику supershopcart-бэкенда:
// вход через Google/пароль, выпуск и ротацию токенов, корзины и шаринг
// с проверкой уровней доступа, фоновую чистку refresh-токенов.
//
// Основные аспекты:
//   - Экземпляр Service безопасен для конкурентного использования из разных
//     горутин при условии, что хранилище (storage.Storage) потокобезопасно;
//     состояния запроса внутри Service нет.
//   - Ошибки возвращаются наверх и маппятся транспортом на HTTP-статусы
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/migge/supershopcart/internal/cache"
	"github.com/migge/supershopcart/internal/config"
	"github.com/migge/supershopcart/internal/identity"
	"github.com/migge/supershopcart/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrIdentityRejected — внешний identity-токен не прошёл верификацию.
	// Транспорт: HTTP 401, без повторов.
	ErrIdentityRejected = errors.New("identity token rejected")

	// ErrInvalidToken — access-токен некорректен по формату/подписи.
	// Транспорт: HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenNotFound — refresh-токен отсутствует в хранилище: никогда не
	// выпускался, был отозван или уже ротирован. Транспорт: HTTP 401.
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrEmailTaken — e-mail уже занят другим шоппером. Транспорт: HTTP 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidEmail — e-mail некорректного формата. Транспорт: HTTP 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword — пароль не удовлетворяет политике сложности.
	// Транспорт: HTTP 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmptyPassword — пароль пустой. Транспорт: HTTP 400.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrRefreshTokenCollision — исчерпаны попытки сгенерировать уникальный
	// refresh-токен. Транспорт: HTTP 500.
	ErrRefreshTokenCollision = errors.New("refresh token collision")

	// ErrDevLoginDisabled — dev-вход запрошен при выключенном unsafe_dev_login.
	// Транспорт: HTTP 401.
	ErrDevLoginDisabled = errors.New("dev login disabled")

	// ErrShopperNotFound — шоппер не найден (в т.ч. валидная подпись токена
	// для удалённого аккаунта). Транспорт: HTTP 401 на гейте, 404 в API.
	ErrShopperNotFound = errors.New("shopper not found")

	// ErrCartNotFound — корзина не найдена. Транспорт: HTTP 404.
	ErrCartNotFound = errors.New("cart not found")

	// ErrItemNotFound — позиция списка не найдена. Транспорт: HTTP 404.
	ErrItemNotFound = errors.New("item not found")

	// ErrForbidden — у действующего шоппера не хватает уровня доступа.
	// Транспорт: HTTP 403, без повторов.
	ErrForbidden = errors.New("permission denied")

	// ErrTargetNotFound — шоппер, которому шарят корзину, не найден по email.
	// Транспорт: HTTP 400.
	ErrTargetNotFound = errors.New("target shopper not found")

	// ErrCannotShareWithSelf — попытка расшарить корзину её же владельцу.
	// Транспорт: HTTP 400.
	ErrCannotShareWithSelf = errors.New("cannot share cart with its owner")

	// ErrInvalidPermission — неизвестный уровень доступа в запросе.
	// Транспорт: HTTP 400.
	ErrInvalidPermission = errors.New("invalid permission level")
)

// Service описывает бизнес-логику supershopcart.
type Service struct {
	storage  storage.Storage
	verifier identity.Verifier
	cfg      config.AuthConfig
	rcache   cache.RefreshCache // может быть nil, если кэш не сконфигурирован
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, verifier identity.Verifier, cfg config.AuthConfig) *Service {
	return &Service{
		storage:  storage,
		verifier: verifier,
		cfg:      cfg,
	}
}

// SetRefreshCache устанавливает кэш refresh-токенов (опционально).
func (s *Service) SetRefreshCache(c cache.RefreshCache) {
	s.rcache = c
}
