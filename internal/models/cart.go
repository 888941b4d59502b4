package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Customizations is the per-line selection stored as jsonb: sugar/ice are
// cosmetic, toppings carry surcharges at pricing time.
type Customizations struct {
	SugarLevel string   `json:"sugarLevel,omitempty"`
	IceLevel   string   `json:"iceLevel,omitempty"`
	Toppings   []string `json:"toppings,omitempty"`
}

func (c Customizations) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Customizations) Scan(value any) error {
	if value == nil {
		*c = Customizations{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return errors.New("unsupported type for customizations")
	}
}

type CartItem struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	VariantID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Quantity       int            `gorm:"not null;default:1"`
	Customizations Customizations `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"not null;default:now()"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()"`

	Variant *ProductVariant `gorm:"foreignKey:VariantID"`
}

func (CartItem) TableName() string { return "cart_items" }
