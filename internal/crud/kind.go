package crud

import (
	"context"
	"strconv"
	"strings"
)

// FieldType определяет вид поля ввода
type FieldType int

const (
	FieldText FieldType = iota
	FieldInteger
	FieldDecimal
	FieldDate
	FieldChoice
)

// Field описывает поле формы
type Field struct {
	Key       string
	Label     string
	Type      FieldType
	MaxLength int
	ReadOnly  bool
}

// Column описывает колонку списка
type Column[E any] struct {
	Title string
	Value func(E) string
}

// Option - вариант выбора для поля FieldChoice
type Option struct {
	ID    int64
	Label string
}

// OptionSource загружает варианты выбора (например, список отделов)
type OptionSource interface {
	Options(ctx context.Context) ([]Option, error)
}

// Lookup связывает поле выбора с источником вариантов
type Lookup struct {
	Field  string
	Source OptionSource
}

// Service - коллаборатор хранения для одного вида сущностей
type Service[E any] interface {
	FindAll(ctx context.Context) ([]E, error)
	SaveOrUpdate(ctx context.Context, entity *E) error
	Remove(ctx context.Context, entity E) error
}

// Values - текстовые значения полей формы по ключу
type Values map[string]string

// FormData - введённые данные, передаваемые в Kind.Parse
type FormData struct {
	values  Values
	options map[string][]Option
}

// NewFormData собирает FormData из значений и загруженных вариантов выбора
func NewFormData(values Values, options map[string][]Option) FormData {
	return FormData{values: values, options: options}
}

// Text возвращает значение поля как есть
func (f FormData) Text(key string) string {
	return f.values[key]
}

// Choice возвращает выбранный вариант поля выбора
func (f FormData) Choice(key string) (Option, bool) {
	raw := strings.TrimSpace(f.values[key])
	if raw == "" {
		return Option{}, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Option{}, false
	}
	for _, opt := range f.options[key] {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Kind описывает вид сущности: колонки списка, поля формы и правила
// преобразования между сущностью и введёнными значениями.
// Parse должен вернуть *ValidationError, если данные не прошли проверку.
type Kind[E any] struct {
	Name    string
	Plural  string
	Title   string
	Columns []Column[E]
	Fields  []Field
	New     func() E
	HasID   func(E) bool
	Format  func(E) Values
	Parse   func(FormData) (E, error)
}

// ParseID разбирает идентификатор. Пустое или нечисловое значение даёт 0,
// так как у несохранённой сущности поле id пустое.
func ParseID(s string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// FormatID форматирует идентификатор; у несохранённой сущности поле пустое
func FormatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
