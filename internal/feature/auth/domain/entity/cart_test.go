package entity

import (
	"testing"
)

func TestNewCartData(t *testing.T) {
	t.Parallel()

	cart := NewCartData()

	if len(cart) != CartSlots {
		t.Fatalf("expected %d slots, got %d", CartSlots, len(cart))
	}
	for slot := 0; slot < CartSlots; slot++ {
		if qty, ok := cart[slot]; !ok || qty != 0 {
			t.Errorf("slot %d should exist with quantity 0, got %d (present=%v)", slot, qty, ok)
		}
	}
}

func TestCartData_ValueScanRoundTrip(t *testing.T) {
	t.Parallel()

	cart := NewCartData()
	cart[0] = 3
	cart[299] = 7

	v, err := cart.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := v.(string)
	if !ok {
		t.Fatalf("expected string driver value, got %T", v)
	}

	var restored CartData
	if err := restored.Scan(s); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if len(restored) != CartSlots {
		t.Errorf("expected %d slots after round trip, got %d", CartSlots, len(restored))
	}
	if restored[0] != 3 || restored[299] != 7 {
		t.Errorf("quantities lost in round trip: slot0=%d slot299=%d", restored[0], restored[299])
	}
}

func TestCartData_ScanSources(t *testing.T) {
	t.Parallel()

	t.Run("byte slice", func(t *testing.T) {
		var cart CartData
		if err := cart.Scan([]byte(`{"5":2}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart[5] != 2 {
			t.Errorf("expected slot 5 = 2, got %d", cart[5])
		}
	})

	t.Run("nil yields nil cart", func(t *testing.T) {
		var cart CartData
		if err := cart.Scan(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart != nil {
			t.Errorf("expected nil cart, got %v", cart)
		}
	})

	t.Run("unsupported type", func(t *testing.T) {
		var cart CartData
		if err := cart.Scan(42); err == nil {
			t.Error("expected an error for unsupported source type")
		}
	})
}
