package storekeep

import "errors"

// Error kinds returned by Catalog and Ledger operations. Callers match them
// with errors.Is; the wrapped message carries the product name and details.
var (
	// ErrDuplicateName is returned by Catalog.Add when the name is already taken.
	ErrDuplicateName = errors.New("product already exists")
	// ErrNotFound is returned when an operation targets an unknown product name.
	ErrNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned by Ledger.RecordSale when the quantity
	// sold exceeds the quantity in stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidArgument is returned when an argument fails validation
	// (empty name, negative price, fractional or negative quantity).
	ErrInvalidArgument = errors.New("invalid argument")
)
