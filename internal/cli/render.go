// Package cli implements the interactive menu the shop staff drive the
// program with. The controller owns the item table for the process lifetime
// and lends it to one operation at a time; all input and output go through
// an injected reader and writer so every flow is testable with scripted
// input.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/JonMunkholm/stocktake/internal/inventory"
	"github.com/JonMunkholm/stocktake/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	ruleStyle  = lipgloss.NewStyle().Faint(true)
)

// renderMenu returns the fixed main menu.
func renderMenu() string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("========== MENU ==========") + "\n")
	b.WriteString("1. View Inventory\n")
	b.WriteString("2. Daily Inventory Entry\n")
	b.WriteString("3. Place Order (with GST)\n")
	b.WriteString("4. Log Wasted Products\n")
	b.WriteString("5. Save and Exit\n")
	b.WriteString(titleStyle.Render("==========================") + "\n")
	return b.String()
}

// renderInventory returns the full listing: row number, title-cased name,
// boxes on hand, box price at 2 decimals, per-unit price at 3 decimals.
func renderInventory(table *inventory.Table) string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("======================== INVENTORY ========================") + "\n")
	b.WriteString(fmt.Sprintf("%-4s %-20s %-8s %-10s %-10s\n", "No.", "Item", "Boxes", "Box Price", "Per Unit"))
	for i, it := range table.Items() {
		b.WriteString(fmt.Sprintf("%-4d %-20s %-8d $%-9s $%-9s\n",
			i+1,
			it.DisplayName(),
			it.Quantity,
			it.BoxPrice.StringFixed(2),
			it.PerUnitPrice.StringFixed(3),
		))
	}
	b.WriteString(ruleStyle.Render(strings.Repeat("=", 40)) + "\n")
	return b.String()
}

// renderLowStock returns the low-stock alert block for the given items, or
// the all-clear line when none are low.
func renderLowStock(low []*inventory.Item) string {
	var b strings.Builder
	b.WriteString("\n" + alertStyle.Render(" !!! LOW STOCK ALERTS !!!") + "\n")
	if len(low) == 0 {
		b.WriteString(okStyle.Render("All products are sufficiently stocked.") + "\n")
		return b.String()
	}
	for _, it := range low {
		b.WriteString(warnStyle.Render(fmt.Sprintf("- %s: Only %d boxes left (Critical: %d)",
			it.DisplayName(), it.Quantity, it.CriticalLevel)) + "\n")
	}
	return b.String()
}

// renderInvoice returns the itemized order summary with subtotal, GST and
// grand total, all money at 2 decimals.
func renderInvoice(order *session.Order, gstRate decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("=== Order Summary ===") + "\n")
	b.WriteString(fmt.Sprintf("%-20s %-6s %-12s %-10s\n", "Item", "Boxes", "Unit Price", "Subtotal"))
	for _, line := range order.Lines() {
		b.WriteString(fmt.Sprintf("%-20s %-6d $%-11s $%-9s\n",
			line.ItemTitle,
			line.Boxes,
			line.UnitPrice.StringFixed(2),
			line.Subtotal().StringFixed(2),
		))
	}
	b.WriteString(ruleStyle.Render(strings.Repeat("-", 50)) + "\n")
	b.WriteString(fmt.Sprintf("Subtotal: $%s\n", order.Subtotal().StringFixed(2)))
	b.WriteString(fmt.Sprintf("GST (%s): $%s\n", gstLabel(gstRate), order.GST().StringFixed(2)))
	b.WriteString(fmt.Sprintf("Total: $%s\n", order.Total().StringFixed(2)))
	return b.String()
}

// gstLabel formats a rate like 0.05 as "5%". Trailing zeros are trimmed
// because decimal keeps the source exponent ("5.00" for 0.05 * 100).
func gstLabel(rate decimal.Decimal) string {
	s := rate.Mul(decimal.NewFromInt(100)).String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s + "%"
}

// renderSessionSummary returns the audit trail recap printed at save-and-exit.
func renderSessionSummary(audit *session.AuditLog) string {
	if audit.Len() == 0 {
		return "No changes were recorded this session.\n"
	}
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("=== Session Summary ===") + "\n")
	for _, e := range audit.Entries() {
		b.WriteString(fmt.Sprintf("%s  %-13s %s\n",
			e.CreatedAt.Format("15:04:05"), e.Action, e.Detail))
	}
	return b.String()
}
