package models

type Supplier struct {
	Id          uint   `json:"id" gorm:"primaryKey"`
	CompanyName string `json:"company_name" gorm:"not null;unique"`
	ContactName string `json:"contact_name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Email       string `json:"email" gorm:"unique;not null"`
	PhoneNumber string `json:"phone_number" gorm:"not null"`
}
