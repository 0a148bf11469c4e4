package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
)

// storageError keeps domain error classes as they are and turns anything
// else into ErrStorage, logging the underlying detail.
func storageError(msg string, err error) error {
	if errors.Is(err, models.ErrValidation) ||
		errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrConflict) ||
		errors.Is(err, models.ErrStorage) {
		return err
	}
	logger.Log.Errorw(msg, "err", err)
	return fmt.Errorf("%w: %s", models.ErrStorage, msg)
}
