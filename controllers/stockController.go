package controllers

import (
	"strconv"
	"strings"

	"pintureria-backend/database"
	"pintureria-backend/middlewares"
	"pintureria-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockReceiveDTO struct {
	BranchId  uint    `json:"branch_id" validate:"required"`
	ProductId string  `json:"product_id" validate:"required"`
	UomId     uint    `json:"uom_id" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
}

// GET /api/stock/:branchId
func GetBranchStock(c *fiber.Ctx) error {
	branchId, err := strconv.Atoi(c.Params("branchId"))
	if err != nil || branchId <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid branch id")
	}

	var records []models.StockRecord
	if err := database.DB.Where("branch_id = ?", branchId).
		Order("product_id, uom_id").Find(&records).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list stock")
	}
	return c.JSON(fiber.Map{"stock": records, "message": "success"})
}

// GET /api/stock/:branchId/:productId/:uomId
func GetStockRecord(c *fiber.Ctx) error {
	branchId, err := strconv.Atoi(c.Params("branchId"))
	if err != nil || branchId <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid branch id")
	}
	uomId, err := strconv.Atoi(c.Params("uomId"))
	if err != nil || uomId <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid uom id")
	}
	productId := strings.TrimSpace(c.Params("productId"))
	if productId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing product id")
	}

	var record models.StockRecord
	err = database.DB.
		Where("branch_id = ? AND product_id = ? AND uom_id = ?", branchId, productId, uomId).
		First(&record).Error
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, models.ErrStockRecordNotFound.Error())
	}
	return c.JSON(record)
}

// POST /api/stock/receive
// Goods received from a supplier: credits actual stock under the same row lock
// the invoice paths use, creating the ledger row on first delivery.
func ReceiveStock(c *fiber.Ctx) error {
	var in StockReceiveDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	var updated *models.StockRecord
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Branch{}, "id = ?", in.BranchId).Error; err != nil {
			return models.ErrBranchNotFound
		}
		if err := tx.First(&models.Product{}, "id = ?", in.ProductId).Error; err != nil {
			return models.ErrProductNotFound
		}
		record, err := models.GetOrCreateStockForUpdate(tx, in.BranchId, in.ProductId, in.UomId)
		if err != nil {
			return err
		}
		if err := models.CreditStock(tx, record, in.Quantity); err != nil {
			return err
		}
		updated = record
		return nil
	})
	if err != nil {
		return coreErrorResponse(c, err)
	}
	return c.JSON(updated)
}
