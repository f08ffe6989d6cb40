// identity — проверка внешних identity-токенов (Google ID-токены).
// Пакет не знает ни о шопперах, ни о хранилище: на вход строка токена,
// на выход подтверждённые email/имя либо единая ошибка верификации.
package identity

//go:generate mockgen -source=identity.go -destination=../../mocks/mock_verifier.go -package=mocks

import (
	"context"
	"errors"
)

// ErrVerificationFailed — identity-токен не прошёл проверку: подпись,
// audience, формат или сетевой сбой при получении ключей провайдера.
// Наружу детали не различаются, чтобы не давать оракул злоумышленнику.
var ErrVerificationFailed = errors.New("identity token verification failed")

// Claims — подтверждённые провайдером атрибуты личности.
type Claims struct {
	Email string
	Name  string
}

// Verifier проверяет identity-токен стороннего провайдера.
type Verifier interface {
	Verify(ctx context.Context, identityToken string) (*Claims, error)
}

// RejectAllVerifier отклоняет любой identity-токен. Ставится, когда
// google_client_id не задан: внешний вход закрыт, остаётся только dev-вход.
type RejectAllVerifier struct{}

func (RejectAllVerifier) Verify(_ context.Context, _ string) (*Claims, error) {
	return nil, ErrVerificationFailed
}

// Sentinel-значения небезопасного dev-режима. Сам по себе токен ничего
// не открывает: ветка активна только при явном auth.unsafe_dev_login=true
// (см. service.LoginWithGoogle).
const (
	// DevSentinelToken — фиксированный токен, подменяющий Google-токен в dev.
	DevSentinelToken = "DEV_MAGIC_TOKEN"
	// DevSentinelEmail — email фиктивной dev-личности.
	DevSentinelEmail = "dev@supershopcart.local"
	// DevSentinelName — имя фиктивной dev-личности.
	DevSentinelName = "Dev Shopper"
)

// DevClaims возвращает фиктивную личность для sentinel-токена.
func DevClaims() *Claims {
	return &Claims{Email: DevSentinelEmail, Name: DevSentinelName}
}
