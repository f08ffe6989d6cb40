package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/migge/supershopcart/internal/pkg/log"
)

// SweepExpiredTokens удаляет просроченные refresh-токены из хранилища.
//
// Чистка best-effort: авторитетная проверка срока выполняется при валидации
// токена, свипер лишь возвращает место. Сбой одного запуска логируется
// вызывающим и повторяется на следующем тике расписания, без ретраев внутри.
func (s *Service) SweepExpiredTokens(ctx context.Context) (int64, error) {
	const op = "service.sweeper.SweepExpiredTokens"

	now := time.Now().UTC()

	deleted, err := s.storage.DeleteExpiredRefreshTokens(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if deleted > 0 {
		log.From(ctx).Info("refresh_sweep_done",
			slog.String("op", op),
			slog.Int64("deleted", deleted),
		)
	}

	return deleted, nil
}
