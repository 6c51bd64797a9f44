package renderer

import (
	"strings"
	"testing"

	"github.com/storekeep/storekeep"
)

// newTestStore builds a store with one purchase and one sale recorded.
func newTestStore(t *testing.T) *storekeep.Store {
	t.Helper()
	s := storekeep.NewStore()
	if err := s.Catalog().Add("widget", "a widget", storekeep.M(10, "USD"), storekeep.Q(10)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.RecordPurchase("gadget", storekeep.Q(5), storekeep.M(4, "USD")); err != nil {
		t.Fatalf("RecordPurchase failed: %v", err)
	}
	if _, err := s.RecordSale("widget", storekeep.Q(4), storekeep.M(6, "USD")); err != nil {
		t.Fatalf("RecordSale failed: %v", err)
	}
	return s
}

func TestInventoryMarkdown(t *testing.T) {
	s := newTestStore(t)
	got := InventoryMarkdown(s.Catalog())

	for _, want := range []string{
		"# Inventory",
		"| Name | Price | Qty | Description |",
		"| gadget | $4.00 | 5 |  |",
		"| widget | $10.00 | 6 | a widget |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("InventoryMarkdown() missing %q in:\n%s", want, got)
		}
	}
	// gadget sorts before widget.
	if strings.Index(got, "gadget") > strings.Index(got, "widget") {
		t.Errorf("InventoryMarkdown() rows are not sorted by name:\n%s", got)
	}
}

func TestInventoryMarkdown_empty(t *testing.T) {
	got := InventoryMarkdown(storekeep.NewCatalog())
	if !strings.Contains(got, "The catalog is empty.") {
		t.Errorf("InventoryMarkdown() on empty catalog:\n%s", got)
	}
}

func TestSalesMarkdown(t *testing.T) {
	s := newTestStore(t)
	got := SalesMarkdown(s.Ledger())

	for _, want := range []string{
		"# Sales Report",
		"| widget | 4 | $6.00 | $24.00 |",
		"**Total: $24.00**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SalesMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestPurchasesMarkdown(t *testing.T) {
	s := newTestStore(t)
	got := PurchasesMarkdown(s.Ledger())

	for _, want := range []string{
		"# Purchase Report",
		"| gadget | 5 | $4.00 | $20.00 |",
		"**Total: $20.00**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("PurchasesMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestReportMarkdown_emptyLedger(t *testing.T) {
	s := storekeep.NewStore()
	got := ReportMarkdown(s)
	for _, want := range []string{"No sales recorded.", "No purchases recorded.", "The catalog is empty."} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestTransaction(t *testing.T) {
	s := newTestStore(t)
	for _, tx := range s.Ledger().Sales() {
		got := Transaction(tx)
		if !strings.Contains(got, "Sold 4") || !strings.Contains(got, `"widget"`) {
			t.Errorf("Transaction(sale) = %q", got)
		}
	}
	for _, tx := range s.Ledger().Purchases() {
		got := Transaction(tx)
		if !strings.Contains(got, "Purchased 5") || !strings.Contains(got, `"gadget"`) {
			t.Errorf("Transaction(purchase) = %q", got)
		}
	}
}
