package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockRecord tracks inventory per (branch, product, unit of measure).
// AvailableStock is a stored generated column (actual - reserved) so the
// availability check can never read a stale derivation.
type StockRecord struct {
	Id             uint    `json:"id" gorm:"primaryKey"`
	BranchId       uint    `json:"branch_id" gorm:"not null;index:idx_stock_branch_product_uom,unique,priority:1"`
	ProductId      string  `json:"product_id" gorm:"not null;index:idx_stock_branch_product_uom,unique,priority:2"`
	UomId          uint    `json:"uom_id" gorm:"not null;index:idx_stock_branch_product_uom,unique,priority:3"`
	ActualStock    float64 `json:"actual_stock" gorm:"type:numeric(12,2);not null;default:0"`
	ReservedStock  float64 `json:"reserved_stock" gorm:"type:numeric(12,2);not null;default:0"`
	AvailableStock float64 `json:"available_stock" gorm:"->;type:numeric(12,2) GENERATED ALWAYS AS (actual_stock - reserved_stock) STORED"`
}

// Available reports the quantity open for sale. Checks run against this,
// debits hit ActualStock only (mirrors the upstream ledger behavior;
// ReservedStock is never touched by the invoice paths).
func (r *StockRecord) Available() float64 {
	return r.ActualStock - r.ReservedStock
}

// GetStockForUpdate loads the ledger row for (branch, product, uom) and holds a
// row lock on it until the caller's transaction ends, so concurrent debits against
// the same record serialize. Returns ErrStockRecordNotFound when the branch does
// not stock the product in that unit.
func GetStockForUpdate(tx *gorm.DB, branchId uint, productId string, uomId uint) (*StockRecord, error) {
	var record StockRecord
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("branch_id = ? AND product_id = ? AND uom_id = ?", branchId, productId, uomId).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStockRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

// DebitStock decrements ActualStock by qty inside the caller's transaction.
// Call only after the availability check succeeded under the same row lock.
func DebitStock(tx *gorm.DB, record *StockRecord, qty float64) error {
	if err := tx.Model(&StockRecord{}).Where("id = ?", record.Id).
		Update("actual_stock", gorm.Expr("actual_stock - ?", qty)).Error; err != nil {
		return err
	}
	record.ActualStock -= qty
	return nil
}

// CreditStock increments ActualStock by qty inside the caller's transaction.
// Used by voidance and by goods receiving.
func CreditStock(tx *gorm.DB, record *StockRecord, qty float64) error {
	if err := tx.Model(&StockRecord{}).Where("id = ?", record.Id).
		Update("actual_stock", gorm.Expr("actual_stock + ?", qty)).Error; err != nil {
		return err
	}
	record.ActualStock += qty
	return nil
}

// GetOrCreateStockForUpdate is the receiving-side variant: absent records are
// created at zero so a first delivery can be credited.
func GetOrCreateStockForUpdate(tx *gorm.DB, branchId uint, productId string, uomId uint) (*StockRecord, error) {
	record := StockRecord{BranchId: branchId, ProductId: productId, UomId: uomId}
	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("branch_id = ? AND product_id = ? AND uom_id = ?", branchId, productId, uomId).
		FirstOrCreate(&record)
	if result.Error != nil {
		return nil, result.Error
	}
	return &record, nil
}
