package models

import "gorm.io/gorm"

// PaymentMethod is an enumerated lookup table; payment records reference a row
// here rather than inferring an id from a free-form string.
type PaymentMethod struct {
	Id   uint   `json:"id" gorm:"primaryKey"`
	Code string `json:"code" gorm:"size:20;not null;unique"`
	Name string `json:"name" gorm:"not null"`
}

const (
	PaymentMethodCash  = "efectivo"
	PaymentMethodCard  = "tarjeta"
	PaymentMethodCheck = "cheque"
)

// SeedPaymentMethods inserts the built-in methods if they are missing.
func SeedPaymentMethods(db *gorm.DB) error {
	seeds := []PaymentMethod{
		{Code: PaymentMethodCash, Name: "Efectivo"},
		{Code: PaymentMethodCard, Name: "Tarjeta"},
		{Code: PaymentMethodCheck, Name: "Cheque"},
	}
	for _, m := range seeds {
		method := m
		if err := db.Where("code = ?", method.Code).FirstOrCreate(&method).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetPaymentMethod resolves a method by id.
func GetPaymentMethod(db *gorm.DB, id uint) (*PaymentMethod, error) {
	var method PaymentMethod
	if err := db.First(&method, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &method, nil
}
