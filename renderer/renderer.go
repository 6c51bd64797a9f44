// Package renderer builds markdown views of the store's catalog and ledger.
// It is purely presentational: no domain logic, no terminal handling.
package renderer

import (
	"fmt"
	"strings"

	"github.com/storekeep/storekeep"
)

// InventoryMarkdown renders the full catalog as a markdown table, one row
// per product in the catalog's deterministic order.
func InventoryMarkdown(c *storekeep.Catalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Inventory\n\n")
	if c.Len() == 0 {
		fmt.Fprintln(&b, "The catalog is empty.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Name | Price | Qty | Description |")
	fmt.Fprintln(&b, "|:---|---:|---:|:---|")
	for p := range c.Products() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", p.Name, p.Price, p.Quantity, p.Description)
	}
	return b.String()
}

// SalesMarkdown renders the sales report as a markdown table in
// chronological order, with a grand total footer.
func SalesMarkdown(l *storekeep.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sales Report\n\n")
	if l.SalesCount() == 0 {
		fmt.Fprintln(&b, "No sales recorded.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Date | Product | Qty | Unit Price | Total |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	for _, tx := range l.Sales() {
		writeTxRow(&b, tx)
	}
	fmt.Fprintf(&b, "\n**Total: %s**\n", l.SalesTotal())
	return b.String()
}

// PurchasesMarkdown renders the purchase report as a markdown table in
// chronological order, with a grand total footer.
func PurchasesMarkdown(l *storekeep.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Purchase Report\n\n")
	if l.PurchasesCount() == 0 {
		fmt.Fprintln(&b, "No purchases recorded.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Date | Product | Qty | Unit Price | Total |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	for _, tx := range l.Purchases() {
		writeTxRow(&b, tx)
	}
	fmt.Fprintf(&b, "\n**Total: %s**\n", l.PurchasesTotal())
	return b.String()
}

// ReportMarkdown renders the combined report: inventory, sales, purchases.
func ReportMarkdown(s *storekeep.Store) string {
	var b strings.Builder
	b.WriteString(InventoryMarkdown(s.Catalog()))
	b.WriteString("\n")
	b.WriteString(SalesMarkdown(s.Ledger()))
	b.WriteString("\n")
	b.WriteString(PurchasesMarkdown(s.Ledger()))
	return b.String()
}

// Transaction renders a transaction to a one-line confirmation string.
func Transaction(tx storekeep.Transaction) string {
	switch v := tx.(type) {
	case storekeep.SaleTransaction:
		return fmt.Sprintf("Sold %s of %q at %s (total %s)", v.Quantity(), v.Product(), v.UnitPrice(), v.Total())
	case storekeep.PurchaseTransaction:
		return fmt.Sprintf("Purchased %s of %q at %s (total %s)", v.Quantity(), v.Product(), v.UnitPrice(), v.Total())
	default:
		return string(tx.What())
	}
}

func writeTxRow(b *strings.Builder, tx interface {
	When() storekeep.Date
	Product() string
	Quantity() storekeep.Quantity
	UnitPrice() storekeep.Money
	Total() storekeep.Money
}) {
	fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n", tx.When(), tx.Product(), tx.Quantity(), tx.UnitPrice(), tx.Total())
}
