package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderItems is the jsonb cart snapshot frozen onto the order at placement.
type OrderItems []OrderItem

func (o OrderItems) Value() (driver.Value, error) {
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (o *OrderItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	default:
		return errors.New("unsupported type for order items")
	}
}

// Address holds the free-form delivery address fields submitted by the frontend.
type Address map[string]string

func (a Address) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *Address) Scan(value interface{}) error {
	if value == nil {
		*a = Address{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("unsupported type for address")
	}
}

type Order struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID  uuid.UUID  `json:"user_id"`
	Items   OrderItems `gorm:"type:jsonb" json:"items"`
	Amount  float64    `json:"amount"`
	Address Address    `gorm:"type:jsonb" json:"address"`
	Payment bool       `gorm:"default:false" json:"payment"`
	Status  string     `gorm:"default:'Food Processing'" json:"status"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
