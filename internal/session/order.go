// Package session holds the state that lives for a single operator session
// and is never persisted: in-flight orders, waste reports, and the audit log
// printed at save-and-exit.
package session

import (
	"github.com/shopspring/decimal"

	"github.com/JonMunkholm/stocktake/internal/inventory"
)

// OrderLine is one item's accumulated pick within an order.
type OrderLine struct {
	Item      string // normalized item name
	ItemTitle string // display name captured at pick time
	Boxes     int
	UnitPrice decimal.Decimal // box price at pick time
}

// Subtotal returns UnitPrice * Boxes.
func (l *OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Boxes)))
}

// Order collects picks for one invocation of the order flow. Lines keep the
// order in which items were first picked.
//
// Picking an item that already has a line accumulates into that line rather
// than replacing it. Live stock is incremented on every pick, so the invoice
// total always matches the stock actually added during the order.
type Order struct {
	lines   map[string]*OrderLine
	picked  []string
	gstRate decimal.Decimal
}

// NewOrder returns an empty order taxed at the given GST rate.
func NewOrder(gstRate decimal.Decimal) *Order {
	return &Order{
		lines:   make(map[string]*OrderLine),
		gstRate: gstRate,
	}
}

// Pick records boxes of the given item at its current box price and
// immediately increments the item's live quantity. boxes must be positive;
// the prompt layer enforces that before calling.
func (o *Order) Pick(it *inventory.Item, boxes int) *OrderLine {
	line, ok := o.lines[it.Name]
	if !ok {
		line = &OrderLine{
			Item:      it.Name,
			ItemTitle: it.DisplayName(),
			UnitPrice: it.BoxPrice,
		}
		o.lines[it.Name] = line
		o.picked = append(o.picked, it.Name)
	}
	line.Boxes += boxes
	it.Quantity += boxes
	return line
}

// Lines returns the order lines in first-pick order.
func (o *Order) Lines() []*OrderLine {
	out := make([]*OrderLine, 0, len(o.picked))
	for _, name := range o.picked {
		out = append(out, o.lines[name])
	}
	return out
}

// Empty reports whether no picks were recorded.
func (o *Order) Empty() bool {
	return len(o.picked) == 0
}

// Subtotal returns the sum of all line subtotals.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, name := range o.picked {
		total = total.Add(o.lines[name].Subtotal())
	}
	return total
}

// GST returns the tax on the subtotal.
func (o *Order) GST() decimal.Decimal {
	return o.Subtotal().Mul(o.gstRate)
}

// Total returns the GST-inclusive grand total.
func (o *Order) Total() decimal.Decimal {
	return o.Subtotal().Add(o.GST())
}
