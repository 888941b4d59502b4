package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description *string   `gorm:"type:text"`
	ImageURL    *string   `gorm:"type:text"`
	SortOrder   int       `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true;index"`
}

func (Category) TableName() string { return "categories" }

type Product struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID    *uuid.UUID `gorm:"type:uuid;index"`
	Name          string     `gorm:"type:varchar(255);not null"`
	Slug          string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description   *string    `gorm:"type:text"`
	BasePrice     int64      `gorm:"not null"` // IDR, no sub-units
	FeaturedImage *string    `gorm:"type:text"`
	IsActive      bool       `gorm:"not null;default:true;index"`
	IsFeatured    bool       `gorm:"not null;default:false;index"`
	CreatedAt     time.Time  `gorm:"not null;default:now()"`
	UpdatedAt     time.Time  `gorm:"not null;default:now()"`

	Category *Category        `gorm:"foreignKey:CategoryID"`
	Variants []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string { return "products" }

type ProductVariant struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SKU           string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Name          string    `gorm:"type:varchar(255);not null"`
	PriceModifier int64     `gorm:"not null;default:0"` // surcharge over product base price
	StockQuantity int       `gorm:"not null;default:0"`
	IsDefault     bool      `gorm:"not null;default:false"`
	IsActive      bool      `gorm:"not null;default:true;index"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (ProductVariant) TableName() string { return "product_variants" }

type CustomizationCategory string

const (
	CustomizationSugarLevel CustomizationCategory = "sugar_level"
	CustomizationIceLevel   CustomizationCategory = "ice_level"
	CustomizationTopping    CustomizationCategory = "topping"
)

type CustomizationOption struct {
	ID            uuid.UUID             `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Category      CustomizationCategory `gorm:"type:varchar(50);not null;index"`
	Name          string                `gorm:"type:varchar(100);not null"`
	DisplayName   string                `gorm:"type:varchar(100);not null"`
	PriceModifier int64                 `gorm:"not null;default:0"`
	SortOrder     int                   `gorm:"not null;default:0"`
	IsActive      bool                  `gorm:"not null;default:true;index"`
}

func (CustomizationOption) TableName() string { return "customization_options" }
