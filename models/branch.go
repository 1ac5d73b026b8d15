package models

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Branch struct {
	Id      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null;unique"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Active  bool   `json:"active" gorm:"default:true"`
}

// InvoiceSeries is a per-branch numbering stream. CurrentCorrelative is the last
// issued number; it only ever increases, and only inside the transaction that
// persists the invoice it was issued for.
type InvoiceSeries struct {
	Id                 uint   `json:"id" gorm:"primaryKey"`
	BranchId           uint   `json:"branch_id" gorm:"not null;index:idx_series_branch_letter,unique,priority:1"`
	Letter             string `json:"letter" gorm:"size:1;not null;index:idx_series_branch_letter,unique,priority:2"`
	CurrentCorrelative int64  `json:"current_correlative" gorm:"not null;default:0"`
}

// DefaultSeriesLetter is the series every branch issues from unless told otherwise.
const DefaultSeriesLetter = "A"

// GetOrCreateSeriesForUpdate resolves the series row for (branch, letter), creating
// it at correlative 0 if absent, and holds a row lock on it until the caller's
// transaction ends. Callers must be inside a transaction.
func GetOrCreateSeriesForUpdate(tx *gorm.DB, branchId uint, letter string) (*InvoiceSeries, error) {
	series := InvoiceSeries{BranchId: branchId, Letter: letter}
	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("branch_id = ? AND letter = ?", branchId, letter).
		FirstOrCreate(&series)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeriesUnavailable, result.Error)
	}
	return &series, nil
}

// NextCorrelative returns the number the next invoice on this series will take.
// Nothing is persisted until AdvanceSeries runs.
func (s *InvoiceSeries) NextCorrelative() int64 {
	return s.CurrentCorrelative + 1
}

// AdvanceSeries persists the allocation of NextCorrelative as part of the caller's
// transaction. The row lock taken by GetOrCreateSeriesForUpdate makes the
// read-increment-write safe against concurrent invoices on the same series.
func AdvanceSeries(tx *gorm.DB, s *InvoiceSeries) error {
	next := s.NextCorrelative()
	if err := tx.Model(&InvoiceSeries{}).Where("id = ?", s.Id).
		Update("current_correlative", next).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrSeriesUnavailable, err)
	}
	s.CurrentCorrelative = next
	return nil
}
