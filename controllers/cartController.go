package controllers

import (
	"strconv"
	"strings"
	"time"

	"pintureria-backend/database"
	"pintureria-backend/middlewares"
	"pintureria-backend/models"

	"github.com/gofiber/fiber/v2"
)

const cartTTL = 7 * 24 * time.Hour

func cartKey(userID string) string {
	return "cart:" + userID
}

func loadCart(userID string) (*models.Cart, error) {
	cart := models.Cart{UserId: userID}
	if _, err := database.GetRedisObject(cartKey(userID), &cart); err != nil {
		return nil, err
	}
	cart.UserId = userID
	return &cart, nil
}

// GET /api/cart
func GetCart(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	cart, err := loadCart(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "cart unavailable")
	}
	return c.JSON(cart)
}

// POST /api/cart/items
func UpsertCartItem(c *fiber.Ctx) error {
	var in models.CartItem
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	// The product must exist before it enters a cart; price is pinned at add time.
	var product models.Product
	if err := database.DB.First(&product, "id = ?", in.ProductId).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}
	if in.UnitPrice <= 0 {
		in.UnitPrice = product.UnitPrice
	}

	userID, _ := c.Locals("userID").(string)
	cart, err := loadCart(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "cart unavailable")
	}
	cart.Upsert(in)
	if err := database.SetRedisObject(cartKey(userID), cart, cartTTL); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not store cart")
	}
	return c.JSON(cart)
}

// DELETE /api/cart/items/:productId/:uomId
func RemoveCartItem(c *fiber.Ctx) error {
	productId := strings.TrimSpace(c.Params("productId"))
	uomId, err := strconv.Atoi(c.Params("uomId"))
	if productId == "" || err != nil || uomId <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid cart item key")
	}

	userID, _ := c.Locals("userID").(string)
	cart, err := loadCart(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "cart unavailable")
	}
	cart.Remove(productId, uint(uomId))
	if err := database.SetRedisObject(cartKey(userID), cart, cartTTL); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not store cart")
	}
	return c.JSON(cart)
}

// DELETE /api/cart
func ClearCart(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	if err := database.DeleteRedisKey(cartKey(userID)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not clear cart")
	}
	return c.JSON(fiber.Map{"message": "success"})
}

type CartCheckoutDTO struct {
	BranchId     uint                  `json:"branch_id" validate:"required"`
	CustomerId   uint                  `json:"customer_id" validate:"required"`
	Payments     []models.PaymentInput `json:"payments" validate:"omitempty,dive"`
	Discount     float64               `json:"discount" validate:"omitempty,gte=0"`
	Observations string                `json:"observations"`
}

// POST /api/cart/checkout
// Builds an invoice from the cart; the cart is cleared only after the invoice
// committed, so a failed checkout leaves the cart intact.
func CheckoutCart(c *fiber.Ctx) error {
	var in CartCheckoutDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	userID, _ := c.Locals("userID").(string)
	cart, err := loadCart(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "cart unavailable")
	}
	if len(cart.Items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "cart is empty")
	}

	invoice, err := models.CreateInvoice(database.DB, models.CreateInvoiceInput{
		BranchId:      in.BranchId,
		CustomerId:    in.CustomerId,
		IssuingUserId: userID,
		LineItems:     cart.ToLineItems(),
		Payments:      in.Payments,
		Discount:      in.Discount,
		Observations:  in.Observations,
	})
	if err != nil {
		return coreErrorResponse(c, err)
	}

	_ = database.DeleteRedisKey(cartKey(userID))
	return c.Status(fiber.StatusCreated).JSON(invoice)
}
