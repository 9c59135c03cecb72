package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JonMunkholm/stocktake/internal/inventory"
	"github.com/JonMunkholm/stocktake/internal/session"
	"github.com/JonMunkholm/stocktake/internal/store"
)

// Controller runs the main menu loop. It owns the item table for the process
// lifetime: every operation borrows the table for one call and returns
// control here.
type Controller struct {
	table    *inventory.Table
	filePath string
	gstRate  decimal.Decimal
	audit    *session.AuditLog
	log      *slog.Logger

	prompt *prompter
	out    io.Writer
}

// New builds a controller for the given table. in and out carry all
// interactive I/O; pass os.Stdin/os.Stdout in production or scripted buffers
// in tests.
func New(table *inventory.Table, filePath string, gstRate decimal.Decimal, log *slog.Logger, in io.Reader, out io.Writer) *Controller {
	return &Controller{
		table:    table,
		filePath: filePath,
		gstRate:  gstRate,
		audit:    session.NewAuditLog(),
		log:      log,
		prompt:   &prompter{in: bufio.NewReader(in), out: out},
		out:      out,
	}
}

// Audit exposes the session audit log, mainly for tests.
func (c *Controller) Audit() *session.AuditLog {
	return c.audit
}

// Run shows the low-stock alerts once up front, then loops over the menu
// until the operator picks Save and Exit. The only other way out is the
// input stream ending.
func (c *Controller) Run() error {
	c.showLowStock()

	for {
		fmt.Fprint(c.out, renderMenu())

		choice, err := c.prompt.line("Choose an option: ")
		if err != nil {
			return fmt.Errorf("read menu choice: %w", err)
		}

		switch choice {
		case "1":
			c.showLowStock()
			fmt.Fprint(c.out, renderInventory(c.table))
		case "2":
			c.showLowStock()
			if err := c.dailyEntry(); err != nil {
				return err
			}
		case "3":
			c.showLowStock()
			if err := c.placeOrder(); err != nil {
				return err
			}
		case "4":
			if err := c.wasteEntry(); err != nil {
				return err
			}
		case "5":
			if err := c.saveAndExit(); err != nil {
				// Keep the session alive so the operator can retry
				// instead of losing every change made this shift.
				fmt.Fprintf(c.out, "Could not save: %v\n", err)
				continue
			}
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option.")
		}
	}
}

func (c *Controller) showLowStock() {
	fmt.Fprint(c.out, renderLowStock(c.table.LowStock()))
}

// dailyEntry overwrites each item's box count from operator input, one item
// at a time. A bad line skips that item and moves on; it never aborts the
// pass.
func (c *Controller) dailyEntry() error {
	fmt.Fprint(c.out, "\n"+titleStyle.Render("================= Daily Inventory Entry =================")+"\n")

	for i, it := range c.table.Items() {
		qty, ok, err := c.prompt.intLine(fmt.Sprintf("%d. %s - Boxes on hand: ", i+1, it.DisplayName()))
		if err != nil {
			return fmt.Errorf("read count for %s: %w", it.Name, err)
		}
		if !ok {
			fmt.Fprintln(c.out, "Invalid input, skipping.")
			continue
		}
		old := it.Quantity
		it.Quantity = qty
		c.audit.Record(session.ActionCountSet, it.Name,
			fmt.Sprintf("%s: %d -> %d boxes", it.DisplayName(), old, qty))
		c.log.Debug("count updated", "item", it.Name, "old", old, "new", qty)
	}
	return nil
}

// placeOrder collects picks by product number until the operator types
// "done", then prints the GST invoice. Stock is incremented at pick time;
// repeated picks of the same item accumulate into one invoice line so the
// invoice always matches the stock added.
func (c *Controller) placeOrder() error {
	fmt.Fprint(c.out, renderInventory(c.table))
	fmt.Fprint(c.out, "\n"+titleStyle.Render("================= Place Order =================")+"\n")

	order := session.NewOrder(c.gstRate)

	for {
		choice, err := c.prompt.line("Enter product number to order (or 'done'): ")
		if err != nil {
			return fmt.Errorf("read order choice: %w", err)
		}
		if strings.EqualFold(choice, "done") {
			break
		}

		idx, convOK := parseIndex(choice, c.table.Len())
		if !convOK {
			fmt.Fprintln(c.out, "Invalid choice.")
			continue
		}
		it, _ := c.table.At(idx)

		qty, ok, err := c.prompt.intLine(fmt.Sprintf("How many boxes of %s to order? ", it.DisplayName()))
		if err != nil {
			return fmt.Errorf("read order quantity: %w", err)
		}
		if !ok {
			fmt.Fprintln(c.out, "Invalid quantity.")
			continue
		}
		if qty <= 0 {
			fmt.Fprintln(c.out, "Must be > 0")
			continue
		}

		line := order.Pick(it, qty)
		c.audit.Record(session.ActionOrderPlaced, it.Name,
			fmt.Sprintf("%s: +%d boxes @ $%s", it.DisplayName(), qty, line.UnitPrice.StringFixed(2)))
		c.log.Debug("order pick", "item", it.Name, "boxes", qty, "stock", it.Quantity)
	}

	if order.Empty() {
		return nil
	}

	fmt.Fprint(c.out, renderInvoice(order, c.gstRate))
	c.log.Info("order placed",
		"lines", len(order.Lines()),
		"subtotal", order.Subtotal().StringFixed(2),
		"total", order.Total().StringFixed(2),
	)
	return nil
}

// wasteEntry collects wasted-unit counts per item and reports the total
// loss valued at per-unit prices. Stock quantities are never touched.
func (c *Controller) wasteEntry() error {
	fmt.Fprint(c.out, "\n"+titleStyle.Render("=== Waste Tracking ===")+"\n")

	report := session.NewWasteReport()
	for i, it := range c.table.Items() {
		units, ok, err := c.prompt.intLine(fmt.Sprintf("%d. %s - Units wasted: ", i+1, it.DisplayName()))
		if err != nil {
			return fmt.Errorf("read waste for %s: %w", it.Name, err)
		}
		if !ok || units < 0 {
			fmt.Fprintln(c.out, "Invalid input, skipping.")
			continue
		}
		cost := report.Add(it, units)
		if units > 0 {
			c.audit.Record(session.ActionWasteLogged, it.Name,
				fmt.Sprintf("%s: %d units wasted ($%s)", it.DisplayName(), units, cost.StringFixed(2)))
		}
	}

	fmt.Fprintf(c.out, "Total cost of waste: $%s\n", report.Total().StringFixed(2))
	c.log.Info("waste logged", "total_cost", report.Total().StringFixed(2))
	return nil
}

// saveAndExit persists the table and prints the session recap.
func (c *Controller) saveAndExit() error {
	if err := store.Save(c.filePath, c.table); err != nil {
		return err
	}
	c.audit.Record(session.ActionSave, "", fmt.Sprintf("saved %d items to %s", c.table.Len(), c.filePath))
	fmt.Fprintln(c.out, "Saved and exiting.")
	fmt.Fprint(c.out, renderSessionSummary(c.audit))
	c.log.Info("inventory saved", "path", c.filePath, "items", c.table.Len())
	return nil
}

// parseIndex converts a 1-based product number into a zero-based table
// index, rejecting non-numeric and out-of-range input.
func parseIndex(s string, length int) (int, bool) {
	n := 0
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
		if n > length {
			return 0, false
		}
	}
	if n < 1 || n > length {
		return 0, false
	}
	return n - 1, true
}
