package storekeep

// CommandType is a typed string for identifying transaction commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdSale     CommandType = "sale"
	CmdPurchase CommandType = "purchase"
)

// Transaction defines the common interface for the records kept in the ledger.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction (e.g., "sale").
	When() Date        // When returns the date on which the transaction was recorded.
}

// baseTx holds the fields common to all transactions.
type baseTx struct {
	command CommandType
	date    Date
	product string
	qty     Quantity
	unit    Money // unit price at transaction time, independent of the catalog price
	total   Money // unit * qty, computed once at record time
}

func (t baseTx) What() CommandType  { return t.command }
func (t baseTx) When() Date         { return t.date }
func (t baseTx) Product() string    { return t.product }
func (t baseTx) Quantity() Quantity { return t.qty }
func (t baseTx) UnitPrice() Money   { return t.unit }
func (t baseTx) Total() Money       { return t.total }

// SaleTransaction is the immutable record of a single sale event.
type SaleTransaction struct {
	baseTx
}

func newSale(day Date, product string, qty Quantity, unit Money) SaleTransaction {
	return SaleTransaction{baseTx{command: CmdSale, date: day, product: product, qty: qty, unit: unit, total: unit.Mul(qty)}}
}

// PurchaseTransaction is the immutable record of a single purchase event.
type PurchaseTransaction struct {
	baseTx
}

func newPurchase(day Date, product string, qty Quantity, unit Money) PurchaseTransaction {
	return PurchaseTransaction{baseTx{command: CmdPurchase, date: day, product: product, qty: qty, unit: unit, total: unit.Mul(qty)}}
}
