package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/migge/supershopcart/internal/models"
	"github.com/migge/supershopcart/internal/pkg/log"
	"github.com/migge/supershopcart/internal/storage"
)

type accessClaims struct {
	DeviceID string `json:"did,omitempty"`
	jwt.RegisteredClaims
}

// generateAccessToken генерирует access-токен.
func (s *Service) generateAccessToken(ctx context.Context, shopperID, deviceID string, now time.Time) (string, error) {
	const op = "service.token.generateAccessToken"

	lg := log.From(ctx)

	claims := accessClaims{
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.cfg.Issuer,
			Subject:   shopperID,
			Audience:  jwt.ClaimStrings(s.cfg.Audience),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		lg.Error("access_token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// validateAccessToken валидирует access-токен и возвращает subject (shopperID)
// и device id. Проверка чистая: подпись + срок, без обращения к хранилищу.
// Любой мусор на входе — ErrInvalidToken, паники наружу не выходят.
func (s *Service) validateAccessToken(tokenStr string) (string, string, error) {
	const op = "service.token.validateAccessToken"

	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience...),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return "", "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.Subject == "" {
		return "", "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return claims.Subject, claims.DeviceID, nil
}

// hashToken — SHA-256 хэш секрета в base64url; под этим ключом запись
// лежит в хранилище и кэше.
func hashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// generateRefreshToken создаёт и сохраняет новый refresh-токен,
// возвращает секрет в открытом виде.
func (s *Service) generateRefreshToken(ctx context.Context, shopperID, deviceID string, now time.Time) (string, error) {
	const (
		op          = "service.token.generateRefreshToken"
		maxAttempts = 5
	)

	lg := log.From(ctx)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			lg.Error("refresh_rand_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}
		plain := base64.RawURLEncoding.EncodeToString(b)

		token := &models.RefreshToken{
			TokenHash: hashToken(plain),
			ShopperID: shopperID,
			DeviceID:  deviceID,
			CreatedAt: now,
			ExpiresAt: now.Add(s.cfg.RefreshTokenTTL),
		}

		if err := s.storage.SaveRefreshToken(ctx, token); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				// Редкая коллизия — пробуем сгенерировать заново.
				continue
			}

			lg.Error("save_refresh_token_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}

		if s.rcache != nil {
			if cerr := s.rcache.Set(ctx, token, token.ExpiresAt.Sub(now)); cerr != nil {
				// Кэш best-effort: промах просто уводит чтение в хранилище.
				lg.Warn("refresh_cache_set_failed",
					slog.String("op", op),
					slog.String("err", cerr.Error()),
				)
			}
		}

		return plain, nil
	}

	lg.Error("refresh_collision_exceeded", slog.String("op", op))

	return "", fmt.Errorf("%s: %w", op, ErrRefreshTokenCollision)
}

// validateRefreshToken валидирует refresh-токен, now сэмплируется один раз
// вызывающим. Просроченная запись удаляется сразу на этом пути, не дожидаясь
// свипера; повторный вызов с тем же секретом даёт ErrTokenNotFound.
// Несовпадение device id неотличимо снаружи от отсутствия токена.
func (s *Service) validateRefreshToken(ctx context.Context, plain, deviceID string, now time.Time) (*models.RefreshToken, error) {
	const op = "service.token.validateRefreshToken"

	lg := log.From(ctx)

	hash := hashToken(plain)

	token, err := s.lookupRefreshToken(ctx, hash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("refresh_lookup_not_found", slog.String("op", op))
			return nil, fmt.Errorf("%s: %w", op, ErrTokenNotFound)
		}

		lg.Error("refresh_lookup_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if token.ExpiredAt(now) {
		lg.Warn("refresh_expired",
			slog.String("op", op),
			slog.String("shopper_id", token.ShopperID),
		)

		if derr := s.deleteRefreshRecord(ctx, hash); derr != nil && !errors.Is(derr, storage.ErrNotFound) {
			lg.Error("refresh_eager_delete_failed",
				slog.String("op", op),
				slog.String("err", derr.Error()),
			)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	if token.DeviceID != deviceID {
		lg.Warn("refresh_device_mismatch",
			slog.String("op", op),
			slog.String("shopper_id", token.ShopperID),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrTokenNotFound)
	}

	return token, nil
}

// lookupRefreshToken читает запись из кэша, при промахе — из хранилища
// с обратной записью в кэш.
func (s *Service) lookupRefreshToken(ctx context.Context, hash string) (*models.RefreshToken, error) {
	if s.rcache != nil {
		if token, ok, err := s.rcache.Get(ctx, hash); err == nil && ok {
			return token, nil
		}
	}

	token, err := s.storage.RefreshTokenByHash(ctx, hash)
	if err != nil {
		return nil, err
	}

	if s.rcache != nil {
		if ttl := time.Until(token.ExpiresAt); ttl > 0 {
			_ = s.rcache.Set(ctx, token, ttl)
		}
	}

	return token, nil
}

// deleteRefreshRecord удаляет запись из кэша и хранилища, в этом порядке:
// удалённый токен не должен провалидироваться по пережившему ключу кэша.
func (s *Service) deleteRefreshRecord(ctx context.Context, hash string) error {
	if s.rcache != nil {
		if err := s.rcache.Delete(ctx, hash); err != nil {
			return err
		}
	}

	return s.storage.DeleteRefreshToken(ctx, hash)
}

// issueTokenPair выпускает пару access+refresh для шоппера.
// Если oldHash != "" — это ротация: старая запись удаляется до выпуска новой.
// Короткое окно, в котором старая запись ещё существует рядом с новой,
// допустимо; окна, в котором обе валидны надолго, нет.
func (s *Service) issueTokenPair(ctx context.Context, shopper *models.Shopper, deviceID, oldHash string) (*models.TokenPair, error) {
	const op = "service.token.issueTokenPair"

	now := time.Now().UTC()

	accessToken, err := s.generateAccessToken(ctx, shopper.ID, deviceID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if oldHash != "" {
		if err := s.deleteRefreshRecord(ctx, oldHash); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Кто-то успел ротировать этот же токен параллельно —
				// вторую пару не выпускаем.
				return nil, fmt.Errorf("%s: %w", op, ErrTokenNotFound)
			}

			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	plain, err := s.generateRefreshToken(ctx, shopper.ID, deviceID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    plain,
		AccessExpiresAt: now.Add(s.cfg.AccessTokenTTL),
	}, nil
}
