package postgres

import (
	"context"

	"sarahkyoga/internal/errors"
	"sarahkyoga/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or extends every table the models describe. It never drops columns.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
