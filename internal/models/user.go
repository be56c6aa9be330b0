// Package models содержит доменные структуры сервиса: пользователя,
// тарифный план, подписку и результат расчёта выручки.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// После регистрации меняться может только хеш пароля.
type User struct {
	UUID         string    // Уникальный идентификатор пользователя
	Username     string    // Имя пользователя (уникальное, регистр учитывается)
	PasswordHash []byte    // bcrypt-хеш пароля вместе с солью
	CreatedAt    time.Time // Момент регистрации
}
