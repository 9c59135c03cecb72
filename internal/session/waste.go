package session

import (
	"github.com/shopspring/decimal"

	"github.com/JonMunkholm/stocktake/internal/inventory"
)

// WasteEntry records wasted units for one item and their cost in per-unit
// terms.
type WasteEntry struct {
	Item  string
	Units int
	Cost  decimal.Decimal
}

// WasteReport accumulates wasted units across one waste-logging pass. It is
// a report only: stock quantities are never touched and nothing is persisted.
type WasteReport struct {
	entries []WasteEntry
	total   decimal.Decimal
}

// NewWasteReport returns an empty report.
func NewWasteReport() *WasteReport {
	return &WasteReport{total: decimal.Zero}
}

// Add records units wasted of the given item and returns the cost of that
// entry, valued at the item's per-unit price.
func (w *WasteReport) Add(it *inventory.Item, units int) decimal.Decimal {
	cost := it.PerUnitPrice.Mul(decimal.NewFromInt(int64(units)))
	w.entries = append(w.entries, WasteEntry{Item: it.Name, Units: units, Cost: cost})
	w.total = w.total.Add(cost)
	return cost
}

// Entries returns the recorded entries in input order.
func (w *WasteReport) Entries() []WasteEntry {
	return w.entries
}

// Total returns the accumulated cost of all recorded waste.
func (w *WasteReport) Total() decimal.Decimal {
	return w.total
}
