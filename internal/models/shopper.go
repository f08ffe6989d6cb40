package models

import "time"

// Провайдеры аутентификации.
const (
	// ProviderGoogle — аккаунт создан по Google ID-токену, пароля нет.
	ProviderGoogle = "google"
	// ProviderManual — аккаунт с локальным паролем (bcrypt-хэш).
	ProviderManual = "manual"
)

// Shopper — пользователь системы.
//
// Запись создаётся при первом успешном входе через Google либо при явной
// регистрации; PasswordHash заполнен только для provider == "manual".
// CartIDs хранит идентификаторы корзин шоппера (своих и расшаренных ему),
// сами корзины лежат отдельными документами.
type Shopper struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`
	Provider     string    `bson:"provider" json:"provider"`
	CartIDs      []string  `bson:"cart_ids" json:"cart_ids"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// HasCart сообщает, привязана ли корзина к шопперу.
func (s *Shopper) HasCart(cartID string) bool {
	for _, id := range s.CartIDs {
		if id == cartID {
			return true
		}
	}

	return false
}

// AddCart привязывает корзину к шопперу (идемпотентно).
func (s *Shopper) AddCart(cartID string) {
	if !s.HasCart(cartID) {
		s.CartIDs = append(s.CartIDs, cartID)
	}
}

// RemoveCart отвязывает корзину от шоппера (отсутствие записи — no-op).
func (s *Shopper) RemoveCart(cartID string) {
	for i, id := range s.CartIDs {
		if id == cartID {
			s.CartIDs = append(s.CartIDs[:i], s.CartIDs[i+1:]...)
			return
		}
	}
}
