package controllers

import (
	"errors"
	"strconv"
	"strings"

	"pintureria-backend/database"
	"pintureria-backend/middlewares"
	"pintureria-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BranchCreateDTO struct {
	Name    string `json:"name" validate:"required,min=1"`
	Address string `json:"address" validate:"omitempty"`
	City    string `json:"city" validate:"omitempty"`
	Phone   string `json:"phone" validate:"omitempty"`
}

// POST /api/branch
func CreateBranch(c *fiber.Ctx) error {
	var in BranchCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	branch := models.Branch{
		Name:    strings.TrimSpace(in.Name),
		Address: strings.TrimSpace(in.Address),
		City:    strings.TrimSpace(in.City),
		Phone:   strings.TrimSpace(in.Phone),
		Active:  true,
	}
	if err := database.DB.Create(&branch).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create branch")
	}
	return c.JSON(branch)
}

// GET /api/branches
func GetBranches(c *fiber.Ctx) error {
	var branches []models.Branch
	if err := database.DB.Order("id").Find(&branches).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list branches")
	}
	return c.JSON(fiber.Map{"branches": branches, "message": "success"})
}

// GET /api/branch/:id
func GetBranch(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid branch id")
	}

	var branch models.Branch
	if err := database.DB.First(&branch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "branch not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	// Series are informative here; they are created lazily by invoicing.
	var series []models.InvoiceSeries
	database.DB.Where("branch_id = ?", branch.Id).Order("letter").Find(&series)

	return c.JSON(fiber.Map{"branch": branch, "series": series})
}
