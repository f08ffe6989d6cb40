package models

import "time"

// RefreshToken — долгоживущая сессионная запись.
//
// В хранилище лежит только SHA-256 хэш секрета (TokenHash), сам секрет
// клиент хранит у себя. DeviceID позволяет держать несколько независимых
// сессий на устройствах одного шоппера; может быть пустым.
// Удаление записи — единственный механизм отзыва: после удаления секрет
// не проходит валидацию, отдельного denylist нет.
type RefreshToken struct {
	TokenHash string    `bson:"_id"`
	ShopperID string    `bson:"shopper_id"`
	DeviceID  string    `bson:"device_id,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// ExpiredAt сообщает, истекла ли запись на момент now.
func (t *RefreshToken) ExpiredAt(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
