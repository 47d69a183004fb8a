package crud

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
)

// Outcome - результат попытки сохранения формы
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSaved
	OutcomeInvalid
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeFailed:
		return "failed"
	default:
		return "none"
	}
}

// FormController управляет созданием и редактированием одной сущности в диалоге
type FormController[E any] struct {
	kind   *Kind[E]
	ui     UI
	logger *slog.Logger

	entity   *E
	service  Service[E]
	lookups  map[string]OptionSource
	options  map[string][]Option
	values   Values
	errors   map[string]string
	notifier Notifier

	view   FormView
	closed bool
}

// NewFormController создаёт контроллер формы для вида сущности
func NewFormController[E any](kind *Kind[E], ui UI, logger *slog.Logger) *FormController[E] {
	return &FormController[E]{
		kind:    kind,
		ui:      ui,
		logger:  logger,
		lookups: make(map[string]OptionSource),
		options: make(map[string][]Option),
		values:  make(Values),
		errors:  make(map[string]string),
	}
}

func (c *FormController[E]) SetEntity(entity E) {
	c.entity = &entity
}

// Entity возвращает рабочую копию сущности
func (c *FormController[E]) Entity() (E, bool) {
	if c.entity == nil {
		var zero E
		return zero, false
	}
	return *c.entity, true
}

// SetService внедряет сервис хранения и источники вариантов для полей выбора
func (c *FormController[E]) SetService(service Service[E], lookups ...Lookup) {
	c.service = service
	for _, l := range lookups {
		c.lookups[l.Field] = l.Source
	}
}

// Subscribe регистрирует подписчика, которого уведомят после успешного сохранения
func (c *FormController[E]) Subscribe(l Listener) {
	c.notifier.Subscribe(l)
}

// LoadAssociatedOptions загружает варианты для всех полей выбора.
// Вызывается до того, как диалог станет интерактивным.
func (c *FormController[E]) LoadAssociatedOptions(ctx context.Context) error {
	for _, f := range c.kind.Fields {
		if f.Type != FieldChoice {
			continue
		}
		src, ok := c.lookups[f.Key]
		if !ok || src == nil {
			return fmt.Errorf("%w: no lookup for field %q", ErrIllegalState, f.Key)
		}
		opts, err := src.Options(ctx)
		if err != nil {
			return fmt.Errorf("load options for %q: %w", f.Key, err)
		}
		c.options[f.Key] = opts
	}
	return nil
}

// LoadForEdit заполняет поля значениями сущности
func (c *FormController[E]) LoadForEdit(entity E) {
	c.entity = &entity
	c.values = c.kind.Format(entity)
	if c.values == nil {
		c.values = make(Values)
	}
	c.defaultChoices()
}

// LoadNew оставляет поля пустыми
func (c *FormController[E]) LoadNew() {
	c.values = make(Values)
	c.defaultChoices()
}

// defaultChoices выбирает первый вариант в полях выбора без значения
func (c *FormController[E]) defaultChoices() {
	for _, f := range c.kind.Fields {
		if f.Type != FieldChoice || c.values[f.Key] != "" {
			continue
		}
		if opts := c.options[f.Key]; len(opts) > 0 {
			c.values[f.Key] = strconv.FormatInt(opts[0].ID, 10)
		}
	}
}

func (c *FormController[E]) Fields() []Field {
	return c.kind.Fields
}

func (c *FormController[E]) Value(key string) string {
	return c.values[key]
}

func (c *FormController[E]) SetValue(key, value string) {
	c.values[key] = value
}

func (c *FormController[E]) Options(key string) []Option {
	return c.options[key]
}

// Errors возвращает сообщения об ошибках последней попытки сохранения
func (c *FormController[E]) Errors() map[string]string {
	return c.errors
}

func (c *FormController[E]) AttachView(v FormView) {
	c.view = v
}

// Closed сообщает, закрыт ли диалог
func (c *FormController[E]) Closed() bool {
	return c.closed
}

// Save проверяет введённые данные, сохраняет сущность, уведомляет подписчиков
// и закрывает диалог. Ошибки проверки и хранения не покидают контроллер:
// первые показываются у полей, вторые - блокирующим уведомлением.
func (c *FormController[E]) Save(ctx context.Context) (Outcome, error) {
	if c.entity == nil {
		return OutcomeNone, fmt.Errorf("%w: entity is nil", ErrIllegalState)
	}
	if c.service == nil {
		return OutcomeNone, fmt.Errorf("%w: service is nil", ErrIllegalState)
	}

	entity, err := c.kind.Parse(NewFormData(c.values, c.options))
	if err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return OutcomeNone, fmt.Errorf("parse %s form: %w", c.kind.Name, err)
		}
		c.setErrors(verr.Errors)
		c.logger.Debug("form validation failed",
			slog.String("kind", c.kind.Name),
			slog.Int("errors", verr.Len()),
		)
		return OutcomeInvalid, nil
	}
	c.setErrors(nil)
	c.entity = &entity

	if err := c.service.SaveOrUpdate(ctx, c.entity); err != nil {
		c.logger.Error("failed to save entity", slog.String("kind", c.kind.Name), slog.Any("error", err))
		c.ui.Alert(Alert{
			Title:    "Error saving " + c.kind.Name,
			Body:     err.Error(),
			Severity: SeverityError,
		})
		return OutcomeFailed, nil
	}

	c.notifier.NotifyAll(ctx)
	c.close()
	return OutcomeSaved, nil
}

// Cancel закрывает диалог без сохранения
func (c *FormController[E]) Cancel() {
	c.close()
}

// setErrors заменяет все сообщения: у полей без ошибки сообщение пустое
func (c *FormController[E]) setErrors(errs map[string]string) {
	c.errors = make(map[string]string, len(c.kind.Fields))
	for _, f := range c.kind.Fields {
		if f.ReadOnly {
			continue
		}
		c.errors[f.Key] = ""
	}
	for k, msg := range errs {
		c.errors[k] = msg
	}
	if c.view != nil {
		c.view.SetErrors(c.errors)
	}
}

func (c *FormController[E]) close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.view != nil {
		c.view.Close()
	}
}

// InvalidFields возвращает отсортированные ключи полей с непустым сообщением об ошибке
func (c *FormController[E]) InvalidFields() []string {
	var keys []string
	for k, msg := range c.errors {
		if msg != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
