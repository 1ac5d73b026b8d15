package models

// Cart lives in Redis, keyed by the authenticated user. It never touches the
// stock ledger; reservations happen only when the cart checks out into an
// invoice.
type Cart struct {
	UserId string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}

type CartItem struct {
	ProductId string  `json:"product_id" validate:"required"`
	UomId     uint    `json:"uom_id" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"omitempty,gte=0"`
}

// Upsert replaces the quantity for an existing (product, uom) pair or appends.
func (cart *Cart) Upsert(item CartItem) {
	for i, existing := range cart.Items {
		if existing.ProductId == item.ProductId && existing.UomId == item.UomId {
			cart.Items[i] = item
			return
		}
	}
	cart.Items = append(cart.Items, item)
}

// Remove drops the (product, uom) pair; removing a missing pair is a no-op.
func (cart *Cart) Remove(productId string, uomId uint) {
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductId == productId && item.UomId == uomId {
			continue
		}
		kept = append(kept, item)
	}
	cart.Items = kept
}

// ToLineItems converts the cart into invoice line inputs, preserving order.
func (cart *Cart) ToLineItems() []LineItemInput {
	lines := make([]LineItemInput, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, LineItemInput{
			ProductId: item.ProductId,
			UomId:     item.UomId,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return lines
}
