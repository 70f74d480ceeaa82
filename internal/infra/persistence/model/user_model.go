package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email               string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name                string    `gorm:"type:varchar(100)"`
	PasswordHash        string    `gorm:"type:varchar(255)"`
	Role                string    `gorm:"type:varchar(20);not null"`
	ResetToken          *string   `gorm:"type:varchar(64);index"`
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Carts []CartModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
