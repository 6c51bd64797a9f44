package storekeep

// Store is the session-scoped container owning one Catalog and one Ledger.
//
// All state lives in process memory for the lifetime of the session; nothing
// is persisted. A Store has exactly one writer and is not safe for
// concurrent use: exposing it to concurrent callers would require a single
// mutual-exclusion scope around the combined Catalog and Ledger, because
// RecordSale's check-then-decrement must stay atomic with respect to other
// sales of the same product.
type Store struct {
	catalog *Catalog
	ledger  *Ledger
}

// NewStore creates a store with an empty catalog and ledger.
func NewStore() *Store {
	return &Store{catalog: NewCatalog(), ledger: NewLedger()}
}

// Catalog returns the store's catalog.
func (s *Store) Catalog() *Catalog { return s.catalog }

// Ledger returns the store's ledger.
func (s *Store) Ledger() *Ledger { return s.ledger }

// RecordSale records a sale against the store's own catalog.
func (s *Store) RecordSale(name string, qty Quantity, unit Money) (SaleTransaction, error) {
	return s.ledger.RecordSale(s.catalog, name, qty, unit)
}

// RecordPurchase records a purchase against the store's own catalog.
func (s *Store) RecordPurchase(name string, qty Quantity, unit Money) (PurchaseTransaction, error) {
	return s.ledger.RecordPurchase(s.catalog, name, qty, unit)
}
