package controllers

import (
	"errors"
	"strconv"

	"pintureria-backend/database"
	"pintureria-backend/middlewares"
	"pintureria-backend/models"
	"pintureria-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SupplierCreateDTO struct {
	CompanyName string `json:"company_name" validate:"required,min=1"`
	ContactName string `json:"contact_name" validate:"omitempty"`
	Address     string `json:"address" validate:"omitempty"`
	City        string `json:"city" validate:"omitempty"`
	Country     string `json:"country" validate:"omitempty"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

type SupplierUpdateDTO struct {
	ContactName *string `json:"contact_name" validate:"omitempty"`
	Address     *string `json:"address" validate:"omitempty"`
	City        *string `json:"city" validate:"omitempty"`
	Country     *string `json:"country" validate:"omitempty"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty"`
}

// POST /api/supplier
func CreateSupplier(c *fiber.Ctx) error {
	var in SupplierCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	supplier := models.Supplier{
		CompanyName: in.CompanyName,
		ContactName: in.ContactName,
		Address:     in.Address,
		City:        in.City,
		Country:     in.Country,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
	}
	if err := database.DB.Create(&supplier).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create supplier")
	}
	return c.JSON(supplier)
}

// GET /api/suppliers
func GetSuppliers(c *fiber.Ctx) error {
	var suppliers []models.Supplier
	if err := database.DB.Order("company_name").Find(&suppliers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list suppliers")
	}
	return c.JSON(fiber.Map{"suppliers": suppliers, "message": "success"})
}

// PUT /api/supplier/:id
func UpdateSupplier(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid supplier id")
	}

	var in SupplierUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	var existing models.Supplier
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "supplier not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) > 0 {
		if err := database.DB.Model(&models.Supplier{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update supplier")
		}
	}

	var out models.Supplier
	if err := database.DB.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload supplier")
	}
	return c.JSON(out)
}
