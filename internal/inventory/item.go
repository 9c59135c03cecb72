// Package inventory provides the in-memory item table the whole application
// operates on. This package has no I/O dependencies and can be used by any
// frontend.
package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Item is a single stocked product. Items are keyed by their lower-cased
// name; BoxPrice, UnitsPerBox and CriticalLevel are fixed for the lifetime
// of a session, only Quantity changes.
type Item struct {
	Name          string          // lower-cased, unique within a table
	Quantity      int             // boxes currently on hand
	BoxPrice      decimal.Decimal // price per box, non-negative
	UnitsPerBox   int             // individual units per box, > 0
	CriticalLevel int             // low-stock threshold in boxes

	// PerUnitPrice is BoxPrice / UnitsPerBox. Derived at load time and
	// never persisted.
	PerUnitPrice decimal.Decimal
}

// DisplayName returns the title-cased name used in all operator-facing output.
func (it *Item) DisplayName() string {
	return titleCaser.String(it.Name)
}

// LowStock reports whether the item has dropped below its critical threshold.
func (it *Item) LowStock() bool {
	return it.Quantity < it.CriticalLevel
}

// DerivePerUnitPrice recomputes the per-unit price from the box price and
// box size. UnitsPerBox must be positive; the store layer rejects rows that
// would violate that before an Item is ever constructed.
func (it *Item) DerivePerUnitPrice() {
	it.PerUnitPrice = it.BoxPrice.Div(decimal.NewFromInt(int64(it.UnitsPerBox)))
}

// NormalizeName canonicalizes an item name for use as a table key.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
