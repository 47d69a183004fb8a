package crud

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/workshop-registry/internal/domain"
)

// ListController загружает и показывает все сущности вида, добавляя к каждой
// строке действия "Edit" и "Remove". После любого изменения данных список
// перезагружается целиком.
type ListController[E any] struct {
	kind     *Kind[E]
	ui       UI
	launcher *Launcher[E]
	logger   *slog.Logger

	service Service[E]
	items   []E
	rows    []Row
	view    ListView
}

// NewListController создаёт контроллер списка. Колонки берутся из Kind,
// данные не загружаются до вызова Refresh.
func NewListController[E any](kind *Kind[E], ui UI, launcher *Launcher[E], logger *slog.Logger) *ListController[E] {
	return &ListController[E]{
		kind:     kind,
		ui:       ui,
		launcher: launcher,
		logger:   logger,
	}
}

func (c *ListController[E]) SetService(service Service[E]) {
	c.service = service
}

func (c *ListController[E]) AttachView(v ListView) {
	c.view = v
}

// Title возвращает заголовок экрана списка
func (c *ListController[E]) Title() string {
	return c.kind.Plural
}

// Columns возвращает заголовки колонок
func (c *ListController[E]) Columns() []string {
	titles := make([]string, len(c.kind.Columns))
	for i, col := range c.kind.Columns {
		titles[i] = col.Title
	}
	return titles
}

// Items возвращает отображаемую коллекцию
func (c *ListController[E]) Items() []E {
	return c.items
}

// Rows возвращает строки с действиями
func (c *ListController[E]) Rows() []Row {
	return c.rows
}

// Refresh перечитывает все сущности и пересобирает строки.
// Действия строк создаются заново, так как замыкают конкретную сущность.
func (c *ListController[E]) Refresh(ctx context.Context) error {
	if c.service == nil {
		return fmt.Errorf("%w: service is nil", ErrIllegalState)
	}

	items, err := c.service.FindAll(ctx)
	if err != nil {
		c.logger.Error("failed to load list", slog.String("kind", c.kind.Name), slog.Any("error", err))
		c.ui.Alert(Alert{
			Title:    "Error loading " + c.kind.Name + " list",
			Body:     err.Error(),
			Severity: SeverityError,
		})
		return err
	}

	c.items = items
	c.rows = make([]Row, len(items))
	for i, item := range items {
		c.rows[i] = Row{
			Cells:   c.cells(item),
			Actions: c.actions(item),
		}
	}
	if c.view != nil {
		c.view.SetRows(c.rows)
	}
	return nil
}

func (c *ListController[E]) cells(item E) []string {
	cells := make([]string, len(c.kind.Columns))
	for i, col := range c.kind.Columns {
		cells[i] = col.Value(item)
	}
	return cells
}

func (c *ListController[E]) actions(item E) []Action {
	return []Action{
		{Label: "Edit", Handler: func(ctx context.Context) error { return c.Edit(ctx, item) }},
		{Label: "Remove", Handler: func(ctx context.Context) error { return c.Remove(ctx, item) }},
	}
}

// New открывает диалог для новой сущности
func (c *ListController[E]) New(ctx context.Context) error {
	return c.Edit(ctx, c.kind.New())
}

// Edit открывает диалог для сущности, подписывая список на её изменения
func (c *ListController[E]) Edit(ctx context.Context, entity E) error {
	if c.service == nil {
		return fmt.Errorf("%w: service is nil", ErrIllegalState)
	}
	c.launcher.Open(ctx, entity, c.service, c)
	return nil
}

// Remove запрашивает подтверждение и удаляет сущность.
// Закрытие окна подтверждения без ответа равносильно отказу.
func (c *ListController[E]) Remove(ctx context.Context, entity E) error {
	if c.service == nil {
		return fmt.Errorf("%w: service is nil", ErrIllegalState)
	}
	c.ui.Confirm("Confirmation", "Are you sure you want to delete?", func(choice Choice) {
		if choice != ChoiceYes {
			return
		}
		if err := c.service.Remove(ctx, entity); err != nil {
			c.handleRemoveError(err)
			return
		}
		if err := c.Refresh(ctx); err != nil {
			c.logger.Warn("refresh after remove failed", slog.Any("error", err))
		}
	})
	return nil
}

func (c *ListController[E]) handleRemoveError(err error) {
	alert := Alert{
		Title:    "Error removing " + c.kind.Name,
		Body:     err.Error(),
		Severity: SeverityError,
	}
	switch {
	case errors.Is(err, domain.ErrIntegrity):
		alert.Header = "The record is referenced by other records"
		c.logger.Warn("remove rejected", slog.String("kind", c.kind.Name), slog.Any("error", err))
	default:
		alert.Header = "Database error"
		c.logger.Error("failed to remove entity", slog.String("kind", c.kind.Name), slog.Any("error", err))
	}
	c.ui.Alert(alert)
}

// OnDataChanged перезагружает список целиком
func (c *ListController[E]) OnDataChanged(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil {
		c.logger.Warn("refresh after change failed", slog.Any("error", err))
	}
}
