package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/migge/supershopcart/internal/identity"
	"github.com/migge/supershopcart/internal/models"
	"github.com/migge/supershopcart/internal/pkg/log"
	"github.com/migge/supershopcart/internal/pkg/redact"
	"github.com/migge/supershopcart/internal/storage"
)

// LoginWithGoogle выполняет вход по Google ID-токену.
// Шоппер создаётся при первом входе (provider "google", без пароля).
//
// Sentinel-ветка: при cfg.UnsafeDevLogin == true токен identity.DevSentinelToken
// принимается без криптопроверки и даёт фиксированную dev-личность. Ветка
// громко логируется и закрыта при выключенном флаге.
func (s *Service) LoginWithGoogle(ctx context.Context, identityToken, deviceID string) (*models.TokenPair, *models.Shopper, error) {
	const op = "service.auth.LoginWithGoogle"

	lg := log.From(ctx)

	var claims *identity.Claims

	if identityToken == identity.DevSentinelToken {
		if !s.cfg.UnsafeDevLogin {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrIdentityRejected)
		}

		lg.Warn("dev_sentinel_login_used", slog.String("op", op))
		claims = identity.DevClaims()
	} else {
		verified, err := s.verifier.Verify(ctx, identityToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrIdentityRejected)
		}
		claims = verified
	}

	shopper, err := s.findOrCreateShopper(ctx, claims.Email, claims.Name, models.ProviderGoogle)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issueTokenPair(ctx, shopper, deviceID, "")
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("google_login_ok",
		slog.String("op", op),
		slog.String("shopper_id", shopper.ID),
		slog.String("email", redact.Email(shopper.Email)),
	)

	return pair, shopper, nil
}

// DevLogin — вход по одному email без пароля; работает только при
// включённом unsafe_dev_login (иначе ErrDevLoginDisabled).
func (s *Service) DevLogin(ctx context.Context, email, deviceID string) (*models.TokenPair, *models.Shopper, error) {
	const op = "service.auth.DevLogin"

	if !s.cfg.UnsafeDevLogin {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrDevLoginDisabled)
	}

	email, err := validateEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	log.From(ctx).Warn("dev_login_used",
		slog.String("op", op),
		slog.String("email", redact.Email(email)),
	)

	shopper, err := s.findOrCreateShopper(ctx, email, "Dev Shopper", models.ProviderGoogle)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issueTokenPair(ctx, shopper, deviceID, "")
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, shopper, nil
}

// RegisterShopper регистрирует нового шоппера с локальным паролем.
func (s *Service) RegisterShopper(ctx context.Context, email, password, deviceID string) (*models.TokenPair, *models.Shopper, error) {
	const op = "service.auth.RegisterShopper"

	email, err := validateEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if err := validatePassword(password); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.storage.ShopperByEmail(ctx, email)
	if err == nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	shopper := &models.Shopper{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         nameFromEmail(email),
		PasswordHash: hashed,
		Provider:     models.ProviderManual,
		CartIDs:      []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveShopper(ctx, shopper); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issueTokenPair(ctx, shopper, deviceID, "")
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, shopper, nil
}

// LoginManual выполняет вход по email+паролю для provider == "manual".
func (s *Service) LoginManual(ctx context.Context, email, password, deviceID string) (*models.TokenPair, *models.Shopper, error) {
	const op = "service.auth.LoginManual"

	email, err := validateEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if len(password) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	shopper, err := s.storage.ShopperByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	// Google-аккаунт без пароля через эту ветку не входит.
	if shopper.PasswordHash == "" || !checkPassword(shopper.PasswordHash, password) {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.issueTokenPair(ctx, shopper, deviceID, "")
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, shopper, nil
}

// RefreshTokenPair обновляет пару токенов по refresh-токену с ротацией:
// старая запись удаляется, выпускается и сохраняется новая.
func (s *Service) RefreshTokenPair(ctx context.Context, refreshToken, deviceID string) (*models.TokenPair, *models.Shopper, error) {
	const op = "service.auth.RefreshTokenPair"

	now := time.Now().UTC()

	token, err := s.validateRefreshToken(ctx, refreshToken, deviceID, now)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	shopper, err := s.storage.ShopperByID(ctx, token.ShopperID)
	if err != nil {
		// Аккаунт удалён после выпуска токена: осиротевшую запись убираем,
		// клиенту отвечаем как на несуществующий токен.
		if errors.Is(err, storage.ErrNotFound) {
			_ = s.deleteRefreshRecord(ctx, token.TokenHash)
			return nil, nil, fmt.Errorf("%s: %w", op, ErrTokenNotFound)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issueTokenPair(ctx, shopper, deviceID, token.TokenHash)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("refresh_rotated",
		slog.String("op", op),
		slog.String("shopper_id", shopper.ID),
	)

	return pair, shopper, nil
}

// Logout отзывает refresh-токен. Идемпотентен: отзыв уже отсутствующего
// токена — успех.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	const op = "service.auth.Logout"

	if err := s.deleteRefreshRecord(ctx, hashToken(refreshToken)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// LogoutAll отзывает все refresh-токены шоппера (выход со всех устройств).
// Ключи кэша не перечисляются; их TTL ограничен TTL refresh-токена, и после
// массового отзыва валидация всё равно упирается в хранилище при ротации.
func (s *Service) LogoutAll(ctx context.Context, shopperID string) (int64, error) {
	const op = "service.auth.LogoutAll"

	deleted, err := s.storage.DeleteRefreshTokensByShopper(ctx, shopperID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("logout_all",
		slog.String("op", op),
		slog.String("shopper_id", shopperID),
		slog.Int64("sessions", deleted),
	)

	return deleted, nil
}

// ValidateAccessToken проверяет access-токен и возвращает shopperID и
// device_id из claims (пустой, если токен выпущен без устройства).
// Чистая операция: подпись + срок, без обращения к хранилищу.
func (s *Service) ValidateAccessToken(accessToken string) (string, string, error) {
	const op = "service.auth.ValidateAccessToken"

	shopperID, deviceID, err := s.validateAccessToken(accessToken)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	return shopperID, deviceID, nil
}

// ShopperByID возвращает шоппера по ID; ErrShopperNotFound, если записи нет.
func (s *Service) ShopperByID(ctx context.Context, id string) (*models.Shopper, error) {
	const op = "service.auth.ShopperByID"

	shopper, err := s.storage.ShopperByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrShopperNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shopper, nil
}

// findOrCreateShopper находит шоппера по email либо создаёт нового.
// Гонка двух первых входов разрешается повторным чтением после
// ErrAlreadyExists.
func (s *Service) findOrCreateShopper(ctx context.Context, email, name, provider string) (*models.Shopper, error) {
	const op = "service.auth.findOrCreateShopper"

	email, err := validateEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	shopper, err := s.storage.ShopperByEmail(ctx, email)
	if err == nil {
		return shopper, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	shopper = &models.Shopper{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Provider:  provider,
		CartIDs:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveShopper(ctx, shopper); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			existing, rerr := s.storage.ShopperByEmail(ctx, email)
			if rerr != nil {
				return nil, fmt.Errorf("%s: %w", op, rerr)
			}

			return existing, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("shopper_created",
		slog.String("op", op),
		slog.String("shopper_id", shopper.ID),
		slog.String("provider", provider),
	)

	return shopper, nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validateEmail проверяет базовый формат email и обрезает внешние пробелы.
// Регистр не трогаем: email хранится и ищется ровно в том виде, в каком его
// прислал клиент.
func validateEmail(raw string) (string, error) {
	const op = "service.auth.validateEmail"

	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	return email, nil
}

// validatePassword проверяет минимальные требования к паролю.
// Политика: длина >= 8, хотя бы одна строчная, заглавная, цифра и спецсимвол.
func validatePassword(pw string) error {
	const op = "service.auth.validatePassword"

	if len(pw) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyPassword)
	}

	if len([]rune(pw)) < 8 {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !(hasLower && hasUpper && hasDigit && hasSpecial) {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	return nil
}

// nameFromEmail — отображаемое имя по умолчанию для manual-аккаунтов.
func nameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}

	return email
}
