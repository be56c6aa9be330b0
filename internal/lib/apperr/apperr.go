// Package apperr описывает таксономию ошибок бизнес-уровня.
//
// Все ошибки восстанавливаемы вызывающей стороной: слой HTTP/gRPC
// сопоставляет их со статусами через errors.Is, не заглядывая в детали.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation отсутствующие или некорректные поля запроса.
	ErrValidation = errors.New("validation error")
	// ErrAuthentication неверные учётные данные или недействительная сессия.
	ErrAuthentication = errors.New("authentication error")
	// ErrConflict нарушение уникальности (например, занятое имя пользователя).
	ErrConflict = errors.New("conflict")
	// ErrNotFound запрошенная запись отсутствует.
	ErrNotFound = errors.New("not found")
)

var kinds = []error{ErrValidation, ErrAuthentication, ErrConflict, ErrNotFound}

// Validation оборачивает ErrValidation сообщением для клиента.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Message возвращает текст ошибки без префикса категории,
// пригодный для отдачи клиенту. Для ошибок вне таксономии
// возвращает "internal error", чтобы не раскрывать детали.
func Message(err error) string {
	for _, kind := range kinds {
		if !errors.Is(err, kind) {
			continue
		}
		msg := err.Error()
		prefix := kind.Error() + ": "
		if i := strings.LastIndex(msg, prefix); i >= 0 {
			return msg[i+len(prefix):]
		}
		return kind.Error()
	}
	return "internal error"
}
