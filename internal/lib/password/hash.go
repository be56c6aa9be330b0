// Package password реализует хеширование и проверку паролей через bcrypt.
//
// Хеш хранится как непрозрачный набор байт: соль и стоимость входят в него,
// поэтому отдельного хранения соли не требуется.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash валидный bcrypt-хеш, с которым сравнивается пароль,
// когда пользователь не найден. Время ответа при этом совпадает
// со временем проверки существующего пользователя.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("health-subscriptions/dummy"), bcrypt.DefaultCost)

// GetHash принимает пароль пользователя и возвращает его bcrypt-хеш.
func GetHash(password string) ([]byte, error) {
	const op = "password.GetHash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return hashed, nil
}

// CompareHash сравнивает bcrypt-хеш с введённым паролем за постоянное время.
//
// Возвращает nil, если пароль соответствует хешу, иначе ошибку.
func CompareHash(hash []byte, password string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CompareDummy выполняет сравнение с фиктивным хешем и всегда возвращает ошибку.
func CompareDummy(password string) error {
	if err := CompareHash(dummyHash, password); err != nil {
		return err
	}
	return fmt.Errorf("password.CompareDummy: %w", bcrypt.ErrMismatchedHashAndPassword)
}
