// Package model holds the GORM-specific structs mirroring the database
// tables. Domain entities are mapped to and from these in the repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Avatar       string    `gorm:"type:varchar(255);not null;default:'default-avatar.png'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Orders    []OrderModel           `gorm:"foreignKey:UserID"`
	Addresses []ShippingAddressModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
