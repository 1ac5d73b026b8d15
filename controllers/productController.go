package controllers

import (
	"errors"
	"strings"

	"pintureria-backend/database"
	"pintureria-backend/middlewares"
	"pintureria-backend/models"
	"pintureria-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductCreateDTO struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	Color       string  `json:"color"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

type ProductUpdateDTO struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Brand       *string  `json:"brand"`
	Color       *string  `json:"color"`
	UnitPrice   *float64 `json:"unit_price" validate:"omitempty,gte=0"`
	Active      *bool    `json:"active"`
}

// POST /api/product  (accepts a batch)
func CreateProducts(c *fiber.Ctx) error {
	var inputs []ProductCreateDTO
	err := middlewares.BindAndValidateEach(c, &inputs, func(in *ProductCreateDTO) {
		utils.NormalizeDTO(in)
	})
	if err != nil {
		return err
	}

	tx := database.DB.Begin()
	products := make([]models.Product, 0, len(inputs))
	for _, in := range inputs {
		product := models.Product{
			Name:        in.Name,
			Description: in.Description,
			Brand:       in.Brand,
			Color:       in.Color,
			UnitPrice:   in.UnitPrice,
			Active:      true,
		}
		if err := tx.Create(&product).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusBadRequest, "could not create product")
		}
		products = append(products, product)
	}
	tx.Commit()

	return c.JSON(fiber.Map{"products": products, "message": "success"})
}

// GET /api/products
func GetProducts(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Product{}).Order("name")
	if c.Query("active") != "" {
		query = query.Where("active = ?", c.Query("active") == "true")
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list products")
	}
	return c.JSON(fiber.Map{"products": products, "message": "success"})
}

// GET /api/product/:id
func GetProduct(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing product id in path")
	}

	var product models.Product
	if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(product)
}

// PUT /api/product/:id
func UpdateProduct(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing product id in path")
	}

	var in ProductUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	var existing models.Product
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) > 0 {
		if err := database.DB.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update product")
		}
	}

	var out models.Product
	if err := database.DB.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload product")
	}
	return c.JSON(out)
}

type UomCreateDTO struct {
	Name         string `json:"name" validate:"required,min=1"`
	Abbreviation string `json:"abbreviation" validate:"omitempty,max=10"`
}

// POST /api/uom
func CreateUom(c *fiber.Ctx) error {
	var in UomCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	uom := models.UnitOfMeasure{
		Name:         strings.TrimSpace(in.Name),
		Abbreviation: strings.TrimSpace(in.Abbreviation),
	}
	if err := database.DB.Create(&uom).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create unit of measure")
	}
	return c.JSON(uom)
}

// GET /api/uoms
func GetUoms(c *fiber.Ctx) error {
	var uoms []models.UnitOfMeasure
	if err := database.DB.Order("id").Find(&uoms).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list units of measure")
	}
	return c.JSON(fiber.Map{"uoms": uoms, "message": "success"})
}
