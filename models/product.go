package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	Id          string  `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	Color       string  `json:"color"`
	UnitPrice   float64 `json:"unit_price" gorm:"type:numeric(12,2)"`
	Active      bool    `json:"active" gorm:"default:true"`
}

func (product *Product) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	product.Id = uuid.NewString()
	return
}

// UnitOfMeasure is the granularity a product is stocked/sold in (gallon, liter, unit).
type UnitOfMeasure struct {
	Id           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null;unique"`
	Abbreviation string `json:"abbreviation" gorm:"size:10"`
}
