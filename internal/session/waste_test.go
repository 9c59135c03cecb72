package session

import "testing"

func TestWasteReport(t *testing.T) {
	patty := newItem("patty", 10, "20.00", 50, 5) // per-unit 0.40
	report := NewWasteReport()

	cost := report.Add(patty, 100)
	if cost.StringFixed(2) != "40.00" {
		t.Errorf("Add() cost = %s, want 40.00", cost.StringFixed(2))
	}
	if report.Total().StringFixed(2) != "40.00" {
		t.Errorf("Total = %s, want 40.00", report.Total().StringFixed(2))
	}
	// Waste never touches stock
	if patty.Quantity != 10 {
		t.Errorf("Quantity = %d, want 10 (waste must not mutate stock)", patty.Quantity)
	}
}

func TestWasteReport_Accumulates(t *testing.T) {
	patty := newItem("patty", 10, "20.00", 50, 5) // per-unit 0.40
	bun := newItem("bun", 4, "12.00", 24, 6)      // per-unit 0.50
	report := NewWasteReport()

	report.Add(patty, 10) // 4.00
	report.Add(bun, 6)    // 3.00

	if report.Total().StringFixed(2) != "7.00" {
		t.Errorf("Total = %s, want 7.00", report.Total().StringFixed(2))
	}
	if len(report.Entries()) != 2 {
		t.Errorf("Entries() length = %d, want 2", len(report.Entries()))
	}
}

func TestWasteReport_ZeroUnits(t *testing.T) {
	report := NewWasteReport()
	report.Add(newItem("patty", 10, "20.00", 50, 5), 0)

	if report.Total().StringFixed(2) != "0.00" {
		t.Errorf("Total = %s, want 0.00", report.Total().StringFixed(2))
	}
}
