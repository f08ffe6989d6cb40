package models

import "time"

// TokenPair — пара токенов, выдаваемая при входе/регистрации/обновлении.
//
//   - AccessToken — короткоживущий JWT для доступа к API;
//   - RefreshToken — случайный секрет для выпуска новой пары; на сервере
//     хранится только его хэш;
//   - AccessExpiresAt — момент истечения access-токена (UTC).
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}
