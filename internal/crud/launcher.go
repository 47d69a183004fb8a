package crud

import (
	"context"
	"log/slog"
)

// Launcher создаёт контроллер формы, связывает его с сущностью, сервисом
// и подписчиками и показывает диалог модально
type Launcher[E any] struct {
	kind    *Kind[E]
	host    DialogHost
	ui      UI
	logger  *slog.Logger
	lookups []Lookup
}

// NewLauncher создаёт launcher. lookups - источники вариантов для полей выбора.
func NewLauncher[E any](kind *Kind[E], host DialogHost, ui UI, logger *slog.Logger, lookups ...Lookup) *Launcher[E] {
	return &Launcher[E]{
		kind:    kind,
		host:    host,
		ui:      ui,
		logger:  logger,
		lookups: lookups,
	}
}

// Open показывает диалог для сущности. Ошибка построения или загрузки
// диалога показывается уведомлением и не прерывает вызывающего;
// в этом случае возвращается nil.
func (l *Launcher[E]) Open(ctx context.Context, entity E, service Service[E], listeners ...Listener) *FormController[E] {
	form := NewFormController(l.kind, l.ui, l.logger)
	form.SetEntity(entity)
	form.SetService(service, l.lookups...)
	for _, listener := range listeners {
		form.Subscribe(listener)
	}

	if err := form.LoadAssociatedOptions(ctx); err != nil {
		l.fail(err)
		return nil
	}
	if l.kind.HasID(entity) {
		form.LoadForEdit(entity)
	} else {
		form.LoadNew()
	}

	if err := l.host.ShowModal(l.kind.Title, form); err != nil {
		l.fail(err)
		return nil
	}
	return form
}

func (l *Launcher[E]) fail(err error) {
	l.logger.Error("failed to open dialog", slog.String("kind", l.kind.Name), slog.Any("error", err))
	l.ui.Alert(Alert{
		Title:    "Error",
		Header:   "Error loading view",
		Body:     err.Error(),
		Severity: SeverityError,
	})
}
