package service

import (
	"errors"
	"fmt"

	"github.com/workshop-registry/internal/domain"
)

// dbError помечает ошибку хранения как ErrDatabase, сохраняя исходную причину.
// Нарушение ссылочной целостности остаётся отдельной ошибкой.
func dbError(err error) error {
	if errors.Is(err, domain.ErrIntegrity) || errors.Is(err, domain.ErrDatabase) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrDatabase, err)
}
