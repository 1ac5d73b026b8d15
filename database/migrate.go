package database

import (
	"fmt"

	"pintureria-backend/models"

	"gorm.io/gorm"
)

// Migrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns)
// - Money column types (NUMERIC(12,2))
// - Composite unique indexes (series per branch/letter, stock per branch/product/uom)
// - Basic CHECK constraints (non-negative stock and amounts)
func Migrate(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// --- AutoMigrate tables/columns/index tags (non-destructive) ---
		if err := tx.AutoMigrate(
			&models.Branch{},
			&models.InvoiceSeries{},
			&models.User{},
			&models.UnitOfMeasure{},
			&models.Product{},
			&models.Customer{},
			&models.Supplier{},
			&models.PaymentMethod{},
			&models.StockRecord{},
			&models.Invoice{},
			&models.InvoiceLineItem{},
			&models.PaymentRecord{},
			&models.Quotation{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// --- Enforce money columns as NUMERIC(12,2) (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE products           ALTER COLUMN unit_price TYPE numeric(12,2)`,
			`ALTER TABLE invoices           ALTER COLUMN subtotal   TYPE numeric(12,2)`,
			`ALTER TABLE invoices           ALTER COLUMN discount   TYPE numeric(12,2)`,
			`ALTER TABLE invoices           ALTER COLUMN tax        TYPE numeric(12,2)`,
			`ALTER TABLE invoices           ALTER COLUMN total      TYPE numeric(12,2)`,
			`ALTER TABLE invoice_line_items ALTER COLUMN unit_price TYPE numeric(12,2)`,
			`ALTER TABLE invoice_line_items ALTER COLUMN subtotal   TYPE numeric(12,2)`,
			`ALTER TABLE payment_records    ALTER COLUMN amount     TYPE numeric(12,2)`,
			`ALTER TABLE stock_records      ALTER COLUMN actual_stock   TYPE numeric(12,2)`,
			`ALTER TABLE stock_records      ALTER COLUMN reserved_stock TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Composite / helpful indexes (idempotent) ---
		indexes := []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_series_branch_letter ON invoice_series (branch_id, letter)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_stock_branch_product_uom ON stock_records (branch_id, product_id, uom_id)`,
			`CREATE INDEX IF NOT EXISTS idx_invoices_branch_status ON invoices (branch_id, status)`,
			`CREATE INDEX IF NOT EXISTS idx_invoice_line_items_invoice ON invoice_line_items (invoice_id)`,
			`CREATE INDEX IF NOT EXISTS idx_payment_records_invoice ON payment_records (invoice_id)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Basic CHECK constraints (idempotent) ---
		checks := []string{
			// Actual stock never goes negative; a debit below zero aborts the tx.
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'stock_records'::regclass
					  AND conname  = 'chk_stock_records_actual_nonneg'
				) THEN
					ALTER TABLE stock_records
					ADD CONSTRAINT chk_stock_records_actual_nonneg
					CHECK (actual_stock >= 0);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'payment_records'::regclass
					  AND conname  = 'chk_payment_records_amount_nonneg'
				) THEN
					ALTER TABLE payment_records
					ADD CONSTRAINT chk_payment_records_amount_nonneg
					CHECK (amount >= 0);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'invoice_line_items'::regclass
					  AND conname  = 'chk_invoice_line_items_qty_pos'
				) THEN
					ALTER TABLE invoice_line_items
					ADD CONSTRAINT chk_invoice_line_items_qty_pos
					CHECK (quantity > 0);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'invoice_series'::regclass
					  AND conname  = 'chk_invoice_series_correlative_nonneg'
				) THEN
					ALTER TABLE invoice_series
					ADD CONSTRAINT chk_invoice_series_correlative_nonneg
					CHECK (current_correlative >= 0);
				END IF;
			END $$;`,
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}

		return nil
	})
}
