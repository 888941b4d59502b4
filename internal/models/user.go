package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Elevated reports whether the role may use the admin surface.
func (r Role) Elevated() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string    `gorm:"not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	FullName     string    `gorm:"type:varchar(255)"`
	Role         Role      `gorm:"type:text;not null;default:'customer';index"`
	CreatedAt    time.Time `gorm:"not null;default:now()"`
	UpdatedAt    time.Time `gorm:"not null;default:now()"`
}

func (User) TableName() string { return "users" }

type Address struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Label         string    `gorm:"type:varchar(50)"`
	FullName      string    `gorm:"type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(20);not null"`
	StreetAddress string    `gorm:"type:text;not null"`
	City          string    `gorm:"type:varchar(100);not null"`
	State         *string   `gorm:"type:varchar(100)"`
	PostalCode    string    `gorm:"type:varchar(20);not null"`
	Country       string    `gorm:"type:varchar(100);not null;default:'Indonesia'"`
	IsDefault     bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"not null;default:now()"`
}

func (Address) TableName() string { return "addresses" }
