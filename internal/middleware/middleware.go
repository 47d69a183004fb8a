package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/workshop-registry/internal/crud"
)

// ErrPanic - действие завершилось паникой
var ErrPanic = errors.New("panic recovered")

// Middleware оборачивает действие пользователя
type Middleware func(next crud.Action) crud.Action

// Chain применяет middleware так, что первый в списке выполняется первым
func Chain(action crud.Action, mws ...Middleware) crud.Action {
	for i := len(mws) - 1; i >= 0; i-- {
		action = mws[i](action)
	}
	return action
}

// Logger middleware для логирования действий пользователя
func Logger(logger *slog.Logger) Middleware {
	return func(next crud.Action) crud.Action {
		return crud.Action{
			Label: next.Label,
			Handler: func(ctx context.Context) error {
				start := time.Now()

				err := next.Handler(ctx)

				attrs := []any{
					slog.String("action", next.Label),
					slog.Duration("duration", time.Since(start)),
				}
				if err != nil {
					logger.Warn("UI action failed", append(attrs, slog.Any("error", err))...)
					return err
				}
				logger.Debug("UI action", attrs...)
				return nil
			},
		}
	}
}

// Recoverer middleware превращает панику в ошибку действия
func Recoverer(logger *slog.Logger) Middleware {
	return func(next crud.Action) crud.Action {
		return crud.Action{
			Label: next.Label,
			Handler: func(ctx context.Context) (err error) {
				defer func() {
					if r := recover(); r != nil {
						logger.Error("panic recovered",
							slog.Any("error", r),
							slog.String("action", next.Label),
							slog.String("stack", string(debug.Stack())),
						)
						err = fmt.Errorf("%w in %q: %v", ErrPanic, next.Label, r)
					}
				}()
				return next.Handler(ctx)
			},
		}
	}
}
