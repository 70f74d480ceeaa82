package postgres

import (
	"sarahkyoga/internal/domain/repository"

	"gorm.io/gorm"
)

func paginate(db *gorm.DB, params repository.ListParams) *gorm.DB {
	if params.Limit > 0 {
		db = db.Limit(params.Limit)
	}
	if params.Offset > 0 {
		db = db.Offset(params.Offset)
	}

	return db
}
