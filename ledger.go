package storekeep

import (
	"fmt"
	"iter"
)

// Ledger is the append-only history of sale and purchase events.
//
// In a Ledger transactions are always in chronological (insertion) order.
// Entries are never edited or removed: there is no refund or void operation.
type Ledger struct {
	sales     []SaleTransaction
	purchases []PurchaseTransaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		sales:     make([]SaleTransaction, 0),
		purchases: make([]PurchaseTransaction, 0),
	}
}

// checkTxArgs validates the arguments common to both record operations.
// Transaction quantities are strictly positive.
func checkTxArgs(name string, qty Quantity, unit Money) error {
	if name == "" {
		return fmt.Errorf("%w: product name is empty", ErrInvalidArgument)
	}
	if !qty.IsInteger() {
		return fmt.Errorf("%w: quantity %s is not a whole number", ErrInvalidArgument, qty)
	}
	if !qty.IsPositive() {
		return fmt.Errorf("%w: quantity %s is not positive", ErrInvalidArgument, qty)
	}
	return checkPrice(unit)
}

// RecordSale sells qty units of the named product at the given unit price.
//
// It fails with ErrNotFound if the product is unknown, and with
// ErrInsufficientStock if qty exceeds the quantity in stock. On success the
// catalog stock is decremented and the sale appended in one step; on any
// error both catalog and ledger are left untouched.
func (l *Ledger) RecordSale(c *Catalog, name string, qty Quantity, unit Money) (SaleTransaction, error) {
	if err := checkTxArgs(name, qty, unit); err != nil {
		return SaleTransaction{}, err
	}
	p, ok := c.products[name]
	if !ok {
		return SaleTransaction{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if qty.GreaterThan(p.quantity) {
		return SaleTransaction{}, fmt.Errorf("%w: %q has %s in stock, requested %s",
			ErrInsufficientStock, name, p.quantity, qty)
	}
	p.quantity = p.quantity.Sub(qty)
	tx := newSale(Today(), name, qty, unit)
	l.sales = append(l.sales, tx)
	return tx, nil
}

// RecordPurchase buys qty units of the named product at the given unit price.
//
// An unknown product is auto-provisioned: a new catalog entry is created with
// an empty description, the purchase price as its price, and qty as its
// stock. An existing product only gains stock; its price and description are
// untouched. Beyond argument validation there is no failure mode.
func (l *Ledger) RecordPurchase(c *Catalog, name string, qty Quantity, unit Money) (PurchaseTransaction, error) {
	if err := checkTxArgs(name, qty, unit); err != nil {
		return PurchaseTransaction{}, err
	}
	if p, ok := c.products[name]; ok {
		p.quantity = p.quantity.Add(qty)
	} else {
		c.products[name] = &product{name: name, price: unit, quantity: qty}
	}
	tx := newPurchase(Today(), name, qty, unit)
	l.purchases = append(l.purchases, tx)
	return tx, nil
}

// Sales returns an iterator over recorded sales in chronological order.
func (l *Ledger) Sales() iter.Seq2[int, SaleTransaction] {
	return func(yield func(int, SaleTransaction) bool) {
		for i, tx := range l.sales {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Purchases returns an iterator over recorded purchases in chronological order.
func (l *Ledger) Purchases() iter.Seq2[int, PurchaseTransaction] {
	return func(yield func(int, PurchaseTransaction) bool) {
		for i, tx := range l.purchases {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// SalesCount returns the number of recorded sales.
func (l *Ledger) SalesCount() int { return len(l.sales) }

// PurchasesCount returns the number of recorded purchases.
func (l *Ledger) PurchasesCount() int { return len(l.purchases) }

// SalesTotal sums the totals of all recorded sales.
func (l *Ledger) SalesTotal() Money {
	var total Money
	for _, tx := range l.sales {
		total = total.Add(tx.Total())
	}
	return total
}

// PurchasesTotal sums the totals of all recorded purchases.
func (l *Ledger) PurchasesTotal() Money {
	var total Money
	for _, tx := range l.purchases {
		total = total.Add(tx.Total())
	}
	return total
}
