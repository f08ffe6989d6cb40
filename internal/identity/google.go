package identity

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/idtoken"

	"github.com/migge/supershopcart/internal/pkg/log"
	"github.com/migge/supershopcart/internal/pkg/redact"
)

// GoogleVerifier проверяет Google ID-токены: подпись по публичным ключам
// Google и audience, равный client ID приложения.
type GoogleVerifier struct {
	audience string
}

// NewGoogleVerifier создаёт верификатор для заданного client ID.
func NewGoogleVerifier(clientID string) (*GoogleVerifier, error) {
	if clientID == "" {
		return nil, fmt.Errorf("identity: empty google client id")
	}

	return &GoogleVerifier{audience: clientID}, nil
}

// Verify валидирует токен и извлекает подтверждённые email/имя.
// Любой сбой — криптографический, сетевой, парсинг — схлопывается
// в ErrVerificationFailed.
func (v *GoogleVerifier) Verify(ctx context.Context, identityToken string) (*Claims, error) {
	const op = "identity.google.Verify"

	lg := log.From(ctx)

	payload, err := idtoken.Validate(ctx, identityToken, v.audience)
	if err != nil {
		lg.Warn("google_token_rejected",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrVerificationFailed)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		lg.Warn("google_token_no_email", slog.String("op", op))
		return nil, fmt.Errorf("%s: %w", op, ErrVerificationFailed)
	}

	name, _ := payload.Claims["name"].(string)

	lg.Debug("google_token_verified",
		slog.String("op", op),
		slog.String("email", redact.Email(email)),
	)

	return &Claims{Email: email, Name: name}, nil
}
