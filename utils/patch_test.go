package utils

import (
	"reflect"
	"testing"
)

func TestUpdatesFromPtrDTO(t *testing.T) {
	type dto struct {
		Name      *string  `json:"name"`
		UnitPrice *float64 `json:"unit_price"`
		Hidden    *string  `json:"-"`
		Column    *string  `json:"ignored" gorm:"column:real_name"`
	}
	name := "Latex"
	price := 99.5
	hidden := "x"
	col := "y"
	got := UpdatesFromPtrDTO(&dto{Name: &name, UnitPrice: &price, Hidden: &hidden, Column: &col}, nil)
	want := map[string]any{"name": "Latex", "unit_price": 99.5, "real_name": "y"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("updates = %v, want %v", got, want)
	}
}

func TestUpdatesFromPtrDTOSkipsNils(t *testing.T) {
	type dto struct {
		Name   *string `json:"name"`
		Active *bool   `json:"active"`
	}
	active := true
	got := UpdatesFromPtrDTO(&dto{Active: &active}, nil)
	if len(got) != 1 || got["active"] != true {
		t.Fatalf("updates = %v, want only active", got)
	}
}

func TestUpdatesFromPtrDTORenames(t *testing.T) {
	type dto struct {
		CustomerId *uint `json:"customer_id"`
	}
	id := uint(4)
	got := UpdatesFromPtrDTO(&dto{CustomerId: &id}, map[string]string{"customer_id": "c_id"})
	if _, ok := got["c_id"]; !ok {
		t.Fatalf("rename not applied: %v", got)
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("25", 100); got != 25 {
		t.Fatalf("got %d, want 25", got)
	}
	if got := ParseIntDefault("", 100); got != 100 {
		t.Fatalf("got %d, want default 100", got)
	}
	if got := ParseIntDefault("-3", 100); got != 100 {
		t.Fatalf("negatives fall back to default, got %d", got)
	}
	if got := ParseIntDefault("abc", 7); got != 7 {
		t.Fatalf("got %d, want default 7", got)
	}
}

func TestNormalizeDTORecursesIntoSlices(t *testing.T) {
	type line struct {
		ProductId string
		UnitPrice float64
	}
	type body struct {
		Observations string
		Discount     float64
		Lines        []line
	}
	in := body{
		Observations: "  entrega en obra  ",
		Discount:     10.005,
		Lines:        []line{{ProductId: " p1 ", UnitPrice: 45.499}},
	}
	NormalizeDTO(&in)
	if in.Observations != "entrega en obra" {
		t.Fatalf("observations = %q", in.Observations)
	}
	if in.Lines[0].ProductId != "p1" {
		t.Fatalf("product id = %q", in.Lines[0].ProductId)
	}
	if in.Lines[0].UnitPrice != 45.50 {
		t.Fatalf("unit price = %v, want 45.50", in.Lines[0].UnitPrice)
	}
}

func TestNormalizePtrDTOLeavesNils(t *testing.T) {
	type dto struct {
		Name  *string
		Price *float64
	}
	name := "  Corona  "
	in := dto{Name: &name}
	NormalizePtrDTO(&in)
	if *in.Name != "Corona" {
		t.Fatalf("name = %q", *in.Name)
	}
	if in.Price != nil {
		t.Fatal("nil field was touched")
	}
}
