package crud

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError накапливает сообщения об ошибках по ключу поля формы
type ValidationError struct {
	Message string
	Errors  map[string]string
}

// NewValidationError создаёт пустой накопитель
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{
		Message: msg,
		Errors:  make(map[string]string),
	}
}

// Add регистрирует ошибку поля. Первое сообщение для поля сохраняется.
func (e *ValidationError) Add(field, msg string) {
	if _, ok := e.Errors[field]; ok {
		return
	}
	e.Errors[field] = msg
}

// Len возвращает количество полей с ошибками
func (e *ValidationError) Len() int {
	return len(e.Errors)
}

// Has сообщает, есть ли ошибка для поля
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Errors[field]
	return ok
}

// Err возвращает nil, если ошибок нет, иначе сам накопитель
func (e *ValidationError) Err() error {
	if e.Len() == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(fields, ", "))
}
