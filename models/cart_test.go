package models

import "testing"

func TestCartUpsertAppendsAndReplaces(t *testing.T) {
	var cart Cart
	cart.Upsert(CartItem{ProductId: "p1", UomId: 1, Quantity: 2})
	cart.Upsert(CartItem{ProductId: "p2", UomId: 1, Quantity: 1})
	if len(cart.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(cart.Items))
	}

	// Same (product, uom) replaces the quantity instead of appending.
	cart.Upsert(CartItem{ProductId: "p1", UomId: 1, Quantity: 5})
	if len(cart.Items) != 2 {
		t.Fatalf("items after replace = %d, want 2", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("quantity = %v, want 5", cart.Items[0].Quantity)
	}

	// Same product, different uom is a distinct line.
	cart.Upsert(CartItem{ProductId: "p1", UomId: 2, Quantity: 1})
	if len(cart.Items) != 3 {
		t.Fatalf("items after second uom = %d, want 3", len(cart.Items))
	}
}

func TestCartRemove(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ProductId: "p1", UomId: 1, Quantity: 2},
		{ProductId: "p2", UomId: 1, Quantity: 1},
	}}
	cart.Remove("p1", 1)
	if len(cart.Items) != 1 || cart.Items[0].ProductId != "p2" {
		t.Fatalf("unexpected items after remove: %+v", cart.Items)
	}

	// Removing a missing pair is a no-op.
	cart.Remove("p9", 1)
	if len(cart.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(cart.Items))
	}
}

func TestCartToLineItems(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ProductId: "p1", UomId: 1, Quantity: 2, UnitPrice: 45.50},
		{ProductId: "p2", UomId: 3, Quantity: 1},
	}}
	lines := cart.ToLineItems()
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0].ProductId != "p1" || lines[0].UomId != 1 || lines[0].Quantity != 2 || lines[0].UnitPrice != 45.50 {
		t.Fatalf("unexpected first line: %+v", lines[0])
	}
	if lines[1].UnitPrice != 0 {
		t.Fatalf("unit price should pass through as zero when unset, got %v", lines[1].UnitPrice)
	}
}
