package models

type Customer struct {
	Id          uint   `json:"id" gorm:"primaryKey"`
	FirstName   string `json:"first_name" gorm:"not null"`
	LastName    string `json:"last_name" gorm:"not null"`
	DocumentId  string `json:"document_id" gorm:"unique"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Active      bool   `json:"-" gorm:"default:true"`
}
