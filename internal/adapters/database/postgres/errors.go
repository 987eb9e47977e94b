package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/eventfindr/notifier/internal/domain/common/errorz"
)

// translate maps gorm errors to the domain sentinels so services never
// import gorm. Requires the session to run with TranslateError enabled.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errorz.NotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errorz.AlreadyExists
	}
	return err
}
